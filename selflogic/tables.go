package selflogic

import "fmt"

type combination struct {
	partner Stem
	element Element
}

// 干合: 甲己土 乙庚金 丙辛水 丁壬木 戊癸火
var combinations = [...]combination{
	StemJia:  {StemJi, Earth},
	StemYi:   {StemGeng, Metal},
	StemBing: {StemXin, Water},
	StemDing: {StemRen, Wood},
	StemWu:   {StemGui, Fire},
	StemJi:   {StemJia, Earth},
	StemGeng: {StemYi, Metal},
	StemXin:  {StemBing, Water},
	StemRen:  {StemDing, Wood},
	StemGui:  {StemWu, Fire},
}

// Combine 两干是否干合，合则返回化出的五行
func Combine(a, b Stem) (Element, bool) {
	mustStem(a)
	mustStem(b)
	c := combinations[a]
	if c.partner != b {
		return 0, false
	}
	return c.element, true
}

// StemOf 指定五行与阴阳的天干
func StemOf(e Element, p Polarity) Stem {
	mustElement(e)
	if p != Yang && p != Yin {
		panic(fmt.Sprintf("selflogic: polarity %d out of range", int(p)))
	}
	return Stem(int(e)*2 + int(p))
}

// 对冲: 子午 丑未 寅申 卯酉 辰戌 巳亥
var oppositions = [...]Branch{
	BranchZi:   BranchWu,
	BranchChou: BranchWei,
	BranchYin:  BranchShen,
	BranchMao:  BranchYou,
	BranchChen: BranchXu,
	BranchSi:   BranchHai,
	BranchWu:   BranchZi,
	BranchWei:  BranchChou,
	BranchShen: BranchYin,
	BranchYou:  BranchMao,
	BranchXu:   BranchChen,
	BranchHai:  BranchSi,
}

func Opposes(a, b Branch) bool {
	mustBranch(a)
	mustBranch(b)
	return oppositions[a] == b
}

// 支合: 子丑 寅亥 卯戌 辰酉 巳申 午未
var sixCombinations = [...]Branch{
	BranchZi:   BranchChou,
	BranchChou: BranchZi,
	BranchYin:  BranchHai,
	BranchMao:  BranchXu,
	BranchChen: BranchYou,
	BranchSi:   BranchShen,
	BranchWu:   BranchWei,
	BranchWei:  BranchWu,
	BranchShen: BranchSi,
	BranchYou:  BranchChen,
	BranchXu:   BranchMao,
	BranchHai:  BranchYin,
}

func SixCombines(a, b Branch) bool {
	mustBranch(a)
	mustBranch(b)
	return sixCombinations[a] == b
}

// Triad 三合会局
type Triad struct {
	Members [3]Branch
	Element Element
}

// Triads 寅午戌火 巳酉丑金 申子辰水 亥卯未木
var Triads = []Triad{
	{Members: [3]Branch{BranchYin, BranchWu, BranchXu}, Element: Fire},
	{Members: [3]Branch{BranchSi, BranchYou, BranchChou}, Element: Metal},
	{Members: [3]Branch{BranchShen, BranchZi, BranchChen}, Element: Water},
	{Members: [3]Branch{BranchHai, BranchMao, BranchWei}, Element: Wood},
}

func triadOf(b Branch) Triad {
	mustBranch(b)
	for _, t := range Triads {
		for _, m := range t.Members {
			if m == b {
				return t
			}
		}
	}
	panic(fmt.Sprintf("selflogic: branch %s has no triad", b))
}

// HalfTriad 两个不同地支属于同一三合局即为半会
func HalfTriad(a, b Branch) (Element, bool) {
	if a == b {
		mustBranch(a)
		return 0, false
	}
	ta, tb := triadOf(a), triadOf(b)
	if ta.Element != tb.Element {
		return 0, false
	}
	return ta.Element, true
}

// HiddenStems 蔵干，初元/中元/本元，天数为 0 表示没有该阶段
type HiddenStems struct {
	Early      Stem
	EarlyDays  int
	Middle     Stem
	MiddleDays int
	Principal  Stem
}

var hiddenStems = [...]HiddenStems{
	BranchZi:   {Principal: StemGui},
	BranchChou: {Early: StemGui, EarlyDays: 9, Middle: StemXin, MiddleDays: 3, Principal: StemJi},
	BranchYin:  {Early: StemWu, EarlyDays: 7, Middle: StemBing, MiddleDays: 7, Principal: StemJia},
	BranchMao:  {Principal: StemYi},
	BranchChen: {Early: StemYi, EarlyDays: 9, Middle: StemGui, MiddleDays: 3, Principal: StemWu},
	BranchSi:   {Early: StemWu, EarlyDays: 5, Middle: StemGeng, MiddleDays: 9, Principal: StemBing},
	BranchWu:   {Middle: StemJi, MiddleDays: 19, Principal: StemDing},
	BranchWei:  {Early: StemDing, EarlyDays: 9, Middle: StemYi, MiddleDays: 3, Principal: StemJi},
	BranchShen: {Early: StemWu, EarlyDays: 10, Middle: StemRen, MiddleDays: 3, Principal: StemGeng},
	BranchYou:  {Principal: StemXin},
	BranchXu:   {Early: StemXin, EarlyDays: 9, Middle: StemDing, MiddleDays: 3, Principal: StemWu},
	BranchHai:  {Early: StemJia, EarlyDays: 12, Principal: StemRen},
}

// HiddenStemsOf 二十八元表
func HiddenStemsOf(b Branch) HiddenStems {
	mustBranch(b)
	return hiddenStems[b]
}

// PrincipalStem 本元
func PrincipalStem(b Branch) Stem {
	return HiddenStemsOf(b).Principal
}

// At 按节入后天数选出当令蔵干
func (h HiddenStems) At(days int) Stem {
	if h.EarlyDays > 0 && days <= h.EarlyDays {
		return h.Early
	}
	if h.MiddleDays > 0 && days <= h.EarlyDays+h.MiddleDays {
		return h.Middle
	}
	return h.Principal
}
