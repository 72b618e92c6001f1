package star

import (
	"fmt"

	"github.com/pkg/errors"

	"sanmei/selflogic"
)

// Position 人体星図上的位置
type Position int

const (
	North     Position = iota // 頭
	Center                    // 胸
	South                     // 腹
	East                      // 左手
	West                      // 右手
	NorthWest                 // 右肩
)

var positionNames = [...]string{"north", "center", "south", "east", "west", "north_west"}
var positionLabels = [...]string{"北（頭）", "中央（胸）", "南（腹）", "東（左手）", "西（右手）", "右肩"}

func (p Position) String() string {
	if p < North || p > NorthWest {
		panic(fmt.Sprintf("star: position %d out of range", int(p)))
	}
	return positionNames[p]
}

func (p Position) Label() string {
	_ = p.String()
	return positionLabels[p]
}

func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Stage 十二大従星的人生阶段
type Stage int

const (
	Early  Stage = iota // 初年
	Middle              // 中年
	Late                // 晩年
)

var stageNames = [...]string{"early", "middle", "late"}

func (s Stage) String() string {
	if s < Early || s > Late {
		panic(fmt.Sprintf("star: stage %d out of range", int(s)))
	}
	return stageNames[s]
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Placement struct {
	Position Position       `json:"position"`
	Context  selflogic.Stem `json:"context"`
	Star     MainStar       `json:"star"`
}

type CompanionPlacement struct {
	Stage   Stage            `json:"stage"`
	Context selflogic.Branch `json:"context"`
	Star    CompanionStar    `json:"star"`
}

// Combination 干合
type Combination struct {
	Pair      [2]selflogic.Stem     `json:"pair"`
	Positions [2]selflogic.Position `json:"positions"`
	Element   selflogic.Element     `json:"element"`
}

type Tally struct {
	Element selflogic.Element `json:"element"`
	Count   int               `json:"count"`
}

// Input 三柱以及节入天数(二十八元用)
type Input struct {
	Pillars       selflogic.Pillars
	DaysSinceTerm int
}

// Result 一次计算的完整结果，计算后不再修改
type Result struct {
	Pillars     selflogic.Pillars    `json:"pillars"`
	DayStem     selflogic.Stem       `json:"day_stem"`
	Transformed bool                 `json:"transformed"`
	Combination *Combination         `json:"combination,omitempty"`
	MainStars   []Placement          `json:"main_stars"`
	Companions  []CompanionPlacement `json:"companion_stars"`
	Dominant    Tally                `json:"dominant"`
	Energy      int                  `json:"energy"`
}

// Main 取某个位置的主星，五星布局没有右肩
func (r *Result) Main(p Position) (MainStar, bool) {
	for _, pl := range r.MainStars {
		if pl.Position == p {
			return pl.Star, true
		}
	}
	return 0, false
}

// CenterStar 中心星
func (r *Result) CenterStar() MainStar {
	s, ok := r.Main(Center)
	if !ok {
		panic("star: result has no center star")
	}
	return s
}

func (r *Result) Companion(s Stage) CompanionStar {
	for _, c := range r.Companions {
		if c.Stage == s {
			return c.Star
		}
	}
	panic(fmt.Sprintf("star: result has no %s companion star", s))
}

// CheckCombination 按 年月 年日 月日 的顺序找第一组干合
func CheckCombination(ps selflogic.Pillars) *Combination {
	stems := ps.Stems()
	for _, pair := range (selflogic.Transform{}).UniqueCombination(2, len(stems)) {
		a, b := stems[pair[0]], stems[pair[1]]
		if e, ok := selflogic.Combine(a, b); ok {
			return &Combination{
				Pair:      [2]selflogic.Stem{a, b},
				Positions: [2]selflogic.Position{selflogic.Positions[pair[0]], selflogic.Positions[pair[1]]},
				Element:   e,
			}
		}
	}
	return nil
}

// EffectiveDayStem 干合变化后的日干，阴阳沿用原日干
func EffectiveDayStem(ps selflogic.Pillars, c *Combination, transform bool) selflogic.Stem {
	if !transform || c == nil {
		return ps.Day.Stem
	}
	return selflogic.StemOf(c.Element, ps.Day.Stem.Polarity())
}

type slot struct {
	pos Position
	ctx selflogic.Stem
}

// Derive 由三柱推出人体星図
func Derive(in Input, opts Options) (*Result, error) {
	ps := in.Pillars
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	if opts.HiddenStems == TwentyEight && in.DaysSinceTerm < 1 {
		return nil, errors.Wrapf(ErrInvalidDays, "got %d", in.DaysSinceTerm)
	}

	combination := CheckCombination(ps)
	day := EffectiveDayStem(ps, combination, opts.Transform)

	east := selflogic.PrincipalStem(ps.Year.Branch)
	if opts.HiddenStems == TwentyEight {
		east = selflogic.HiddenStemsOf(ps.Year.Branch).At(in.DaysSinceTerm)
	}

	contexts := []slot{
		{North, ps.Year.Stem},
		{Center, selflogic.PrincipalStem(ps.Month.Branch)},
		{South, ps.Month.Stem},
		{East, east},
		{West, selflogic.PrincipalStem(ps.Day.Branch)},
	}
	if opts.Layout == LayoutSix {
		contexts = append(contexts, slot{NorthWest, ps.Year.Stem})
	}

	res := &Result{
		Pillars:     ps,
		DayStem:     day,
		Transformed: opts.Transform && combination != nil,
		Combination: combination,
	}

	elements := make([]selflogic.Element, 0, len(contexts))
	for _, c := range contexts {
		s := MainStarOf(day, c.ctx)
		res.MainStars = append(res.MainStars, Placement{Position: c.pos, Context: c.ctx, Star: s})
		elements = append(elements, s.Element())
	}
	res.Dominant.Element, res.Dominant.Count = (selflogic.Transform{}).CalProsDec(elements)

	// 初年: 年支  中年: 月支  晩年: 日支
	stages := []CompanionPlacement{
		{Stage: Early, Context: ps.Year.Branch},
		{Stage: Middle, Context: ps.Month.Branch},
		{Stage: Late, Context: ps.Day.Branch},
	}
	for _, c := range stages {
		c.Star = CompanionStarOf(day, c.Context)
		res.Energy += c.Star.Energy()
		res.Companions = append(res.Companions, c)
	}

	return res, nil
}
