package star

import (
	"strings"

	"github.com/pkg/errors"
)

// Layout 人体星図的主星数量
type Layout int

const (
	LayoutSix  Layout = iota // 含右肩
	LayoutFive               // 头 胸 腹 左手 右手
)

func (l Layout) String() string {
	if l == LayoutFive {
		return "five"
	}
	return "six"
}

func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "six", "6":
		return LayoutSix, nil
	case "five", "5":
		return LayoutFive, nil
	}
	return 0, errors.Wrapf(ErrUnknownLayout, "%q", s)
}

// HiddenStemModel 蔵干取法
type HiddenStemModel int

const (
	TwentyEight HiddenStemModel = iota // 二十八元，按节入天数
	Simple                             // 只取本元
)

func (m HiddenStemModel) String() string {
	if m == Simple {
		return "simple"
	}
	return "nijuhachigen"
}

func (m HiddenStemModel) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func ParseHiddenStemModel(s string) (HiddenStemModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nijuhachigen", "28":
		return TwentyEight, nil
	case "simple":
		return Simple, nil
	}
	return 0, errors.Wrapf(ErrUnknownModel, "%q", s)
}

type Options struct {
	Transform   bool            `json:"transform"`
	Layout      Layout          `json:"layout"`
	HiddenStems HiddenStemModel `json:"hidden_stems"`
}

func (o Options) Key() string {
	t := "0"
	if o.Transform {
		t = "1"
	}
	return o.Layout.String() + ":" + o.HiddenStems.String() + ":" + t
}
