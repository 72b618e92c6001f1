package selflogic

import (
	"fmt"

	"github.com/pkg/errors"
)

// Stem 天干
type Stem int

const (
	StemJia  Stem = iota // 甲
	StemYi               // 乙
	StemBing             // 丙
	StemDing             // 丁
	StemWu               // 戊
	StemJi               // 己
	StemGeng             // 庚
	StemXin              // 辛
	StemRen              // 壬
	StemGui              // 癸
)

var tiangan = [...]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

func (s Stem) Valid() bool {
	return s >= StemJia && s <= StemGui
}

func (s Stem) String() string {
	mustStem(s)
	return tiangan[s]
}

// Element 甲乙木 丙丁火 戊己土 庚辛金 壬癸水
func (s Stem) Element() Element {
	mustStem(s)
	return Element(s / 2)
}

func (s Stem) Polarity() Polarity {
	mustStem(s)
	return Polarity(s % 2)
}

func (s Stem) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.Wrapf(ErrUnknownStem, "index %d", int(s))
	}
	return []byte(tiangan[s]), nil
}

func (s *Stem) UnmarshalText(text []byte) error {
	v, err := ParseStem(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStem 由字形解析天干
func ParseStem(glyph string) (Stem, error) {
	for i, v := range tiangan {
		if v == glyph {
			return Stem(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStem, "%q", glyph)
}

func mustStem(s Stem) {
	if !s.Valid() {
		panic(fmt.Sprintf("selflogic: stem %d out of range", int(s)))
	}
}

// Branch 地支
type Branch int

const (
	BranchZi   Branch = iota // 子
	BranchChou               // 丑
	BranchYin                // 寅
	BranchMao                // 卯
	BranchChen               // 辰
	BranchSi                 // 巳
	BranchWu                 // 午
	BranchWei                // 未
	BranchShen               // 申
	BranchYou                // 酉
	BranchXu                 // 戌
	BranchHai                // 亥
)

var dizhi = [...]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var branchElements = [...]Element{
	BranchZi:   Water,
	BranchChou: Earth,
	BranchYin:  Wood,
	BranchMao:  Wood,
	BranchChen: Earth,
	BranchSi:   Fire,
	BranchWu:   Fire,
	BranchWei:  Earth,
	BranchShen: Metal,
	BranchYou:  Metal,
	BranchXu:   Earth,
	BranchHai:  Water,
}

func (b Branch) Valid() bool {
	return b >= BranchZi && b <= BranchHai
}

func (b Branch) String() string {
	mustBranch(b)
	return dizhi[b]
}

func (b Branch) Element() Element {
	mustBranch(b)
	return branchElements[b]
}

func (b Branch) Polarity() Polarity {
	mustBranch(b)
	return Polarity(b % 2)
}

// Add 顺行(n>0)或逆行(n<0)n 位
func (b Branch) Add(n int) Branch {
	mustBranch(b)
	return Branch(((int(b)+n)%12 + 12) % 12)
}

func (b Branch) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, errors.Wrapf(ErrUnknownBranch, "index %d", int(b))
	}
	return []byte(dizhi[b]), nil
}

func (b *Branch) UnmarshalText(text []byte) error {
	v, err := ParseBranch(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseBranch 由字形解析地支
func ParseBranch(glyph string) (Branch, error) {
	for i, v := range dizhi {
		if v == glyph {
			return Branch(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownBranch, "%q", glyph)
}

func mustBranch(b Branch) {
	if !b.Valid() {
		panic(fmt.Sprintf("selflogic: branch %d out of range", int(b)))
	}
}

// Pillar 干支一柱
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// Index 六十甲子序号，阴阳不一致时返回 ErrInvalidPillar
func (p Pillar) Index() (int, error) {
	if !p.Stem.Valid() {
		return 0, errors.Wrapf(ErrUnknownStem, "index %d", int(p.Stem))
	}
	if !p.Branch.Valid() {
		return 0, errors.Wrapf(ErrUnknownBranch, "index %d", int(p.Branch))
	}
	if int(p.Stem)%2 != int(p.Branch)%2 {
		return 0, errors.Wrapf(ErrInvalidPillar, "%s%s", p.Stem, p.Branch)
	}
	return Normalize(6*int(p.Stem) - 5*int(p.Branch)), nil
}

func (p Pillar) Valid() bool {
	_, err := p.Index()
	return err == nil
}

func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}

func (p Pillar) MarshalText() ([]byte, error) {
	if _, err := p.Index(); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

func (p *Pillar) UnmarshalText(text []byte) error {
	v, err := ParsePillar(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePillar 解析 "甲子" 形式的干支
func ParsePillar(s string) (Pillar, error) {
	rs := []rune(s)
	if len(rs) != 2 {
		return Pillar{}, errors.Wrapf(ErrInvalidPillar, "%q", s)
	}
	stem, err := ParseStem(string(rs[0]))
	if err != nil {
		return Pillar{}, err
	}
	branch, err := ParseBranch(string(rs[1]))
	if err != nil {
		return Pillar{}, err
	}
	p := Pillar{Stem: stem, Branch: branch}
	if _, err := p.Index(); err != nil {
		return Pillar{}, err
	}
	return p, nil
}

// Position 年柱 月柱 日柱
type Position int

const (
	PositionYear Position = iota
	PositionMonth
	PositionDay
)

// Positions 固定的扫描顺序
var Positions = []Position{PositionYear, PositionMonth, PositionDay}

var positionNames = [...]string{"year", "month", "day"}

func (p Position) String() string {
	if p < PositionYear || p > PositionDay {
		panic(fmt.Sprintf("selflogic: position %d out of range", int(p)))
	}
	return positionNames[p]
}

func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Pillars 年月日三柱
type Pillars struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
}

func (ps Pillars) At(p Position) Pillar {
	switch p {
	case PositionYear:
		return ps.Year
	case PositionMonth:
		return ps.Month
	case PositionDay:
		return ps.Day
	}
	panic(fmt.Sprintf("selflogic: position %d out of range", int(p)))
}

// Stems 年干 月干 日干
func (ps Pillars) Stems() []Stem {
	return []Stem{ps.Year.Stem, ps.Month.Stem, ps.Day.Stem}
}

// Branches 年支 月支 日支
func (ps Pillars) Branches() []Branch {
	return []Branch{ps.Year.Branch, ps.Month.Branch, ps.Day.Branch}
}

// Validate 三柱都必须是六十甲子之一
func (ps Pillars) Validate() error {
	for _, pos := range Positions {
		if _, err := ps.At(pos).Index(); err != nil {
			return errors.WithMessagef(err, "%s pillar", pos)
		}
	}
	return nil
}

func (ps Pillars) String() string {
	return ps.Year.String() + " " + ps.Month.String() + " " + ps.Day.String()
}
