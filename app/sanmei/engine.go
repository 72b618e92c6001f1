package sanmei

import (
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"sanmei/app/calendar"
	"sanmei/app/common"
	"sanmei/app/compat"
	"sanmei/app/star"
	"sanmei/config"
	ml "sanmei/middleware"
)

// Engine 命式计算入口，结果按日期和选项缓存
type Engine struct {
	opts  star.Options
	cache *cache.Cache
}

func New(opts star.Options, ttl time.Duration) *Engine {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Engine{
		opts:  opts,
		cache: cache.New(ttl, 2*ttl),
	}
}

// OptionsFromConfig 配置里的字符串转成计算选项
func OptionsFromConfig(c config.Sanmei) (star.Options, error) {
	layout, err := star.ParseLayout(c.Layout)
	if err != nil {
		return star.Options{}, errors.WithMessage(err, "sanmei.layout")
	}
	model, err := star.ParseHiddenStemModel(c.HiddenStems)
	if err != nil {
		return star.Options{}, errors.WithMessage(err, "sanmei.hidden_stems")
	}
	return star.Options{Transform: c.Transform, Layout: layout, HiddenStems: model}, nil
}

func FromConfig(c *config.Config) (*Engine, error) {
	opts, err := OptionsFromConfig(c.Sanmei)
	if err != nil {
		return nil, err
	}
	return New(opts, c.Sanmei.CacheTTL), nil
}

var (
	engine     *Engine
	engineOnce sync.Once
)

// Get 进程内共用的 Engine
func Get() *Engine {
	engineOnce.Do(func() {
		e, err := FromConfig(config.Get())
		if err != nil {
			panic(err)
		}
		engine = e
	})
	return engine
}

func (e *Engine) Options() star.Options {
	return e.opts
}

// Destiny 计算某日出生的命式，transform 控制日干是否化气
func (e *Engine) Destiny(d calendar.Date, transform bool) (*star.Result, error) {
	opts := e.opts
	opts.Transform = transform
	key := d.String() + "|" + opts.Key()
	if v, ok := e.cache.Get(key); ok {
		return v.(*star.Result), nil
	}

	ps, err := calendar.Calculate(d)
	if err != nil {
		return nil, errors.WithMessagef(err, "destiny %s", d)
	}
	days, err := calendar.DaysSinceTerm(d)
	if err != nil {
		return nil, errors.WithMessagef(err, "destiny %s", d)
	}
	res, err := star.Derive(star.Input{Pillars: ps, DaysSinceTerm: days}, opts)
	if err != nil {
		return nil, errors.WithMessagef(err, "destiny %s", d)
	}

	e.cache.Set(key, res, cache.DefaultExpiration)
	ml.Log.WithField("date", d.String()).WithField("options", opts.Key()).Debug("destiny computed")
	return res, nil
}

// Compatibility 两人相性，transform 为 true 时两人的命式都按化气后的日干计算
func (e *Engine) Compatibility(d1, d2 calendar.Date, transform bool) (*compat.Result, error) {
	p1, err := e.Destiny(d1, transform)
	if err != nil {
		return nil, errors.WithMessage(err, "person1")
	}
	p2, err := e.Destiny(d2, transform)
	if err != nil {
		return nil, errors.WithMessage(err, "person2")
	}
	return compat.Calculate(p1, p2)
}

// ShareText 分享用文案
func ShareText(r *star.Result) string {
	return fmt.Sprintf("【算命学診断結果】\n私の中心星は「%s」でした！\n\n%s", r.CenterStar(), common.SHARE_HASHTAGS)
}

func CompatibilityShareText(r *compat.Result) string {
	return fmt.Sprintf("相性診断結果: %d点（%s）\n\n%s", r.Score, r.Relationship.Type, common.SHARE_COMPAT_HASHTAGS)
}
