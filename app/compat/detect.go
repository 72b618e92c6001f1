package compat

import "sanmei/selflogic"

// PillarPair 第一人的柱 x 第二人的柱
type PillarPair struct {
	Person1 selflogic.Position `json:"person1"`
	Person2 selflogic.Position `json:"person2"`
}

// 3x3 交叉扫描，顺序为 年月日 x 年月日
func crossPairs() []PillarPair {
	pairs := make([]PillarPair, 0, 9)
	for _, p1 := range selflogic.Positions {
		for _, p2 := range selflogic.Positions {
			pairs = append(pairs, PillarPair{Person1: p1, Person2: p2})
		}
	}
	return pairs
}

// Ritchin 律音: 同一位置干支完全相同
type Ritchin struct {
	Exists    bool                 `json:"exists"`
	Positions []selflogic.Position `json:"positions,omitempty"`
}

func CheckRitchin(a, b selflogic.Pillars) Ritchin {
	var r Ritchin
	for _, pos := range selflogic.Positions {
		if a.At(pos) == b.At(pos) {
			r.Positions = append(r.Positions, pos)
		}
	}
	r.Exists = len(r.Positions) > 0
	return r
}

// PairsResult 纳音 天剋地冲 共用
type PairsResult struct {
	Exists bool         `json:"exists"`
	Pairs  []PillarPair `json:"pairs,omitempty"`
}

func scanPairs(a, b selflogic.Pillars, match func(p1, p2 selflogic.Pillar) bool) PairsResult {
	var r PairsResult
	for _, pp := range crossPairs() {
		if match(a.At(pp.Person1), b.At(pp.Person2)) {
			r.Pairs = append(r.Pairs, pp)
		}
	}
	r.Exists = len(r.Pairs) > 0
	return r
}

// CheckNatchin 納音: 干相同且支对冲
func CheckNatchin(a, b selflogic.Pillars) PairsResult {
	return scanPairs(a, b, func(p1, p2 selflogic.Pillar) bool {
		return p1.Stem == p2.Stem && selflogic.Opposes(p1.Branch, p2.Branch)
	})
}

// CheckTenkoku 天剋地冲: 干相克(任一方向)且支对冲
func CheckTenkoku(a, b selflogic.Pillars) PairsResult {
	return scanPairs(a, b, func(p1, p2 selflogic.Pillar) bool {
		rel, _ := (selflogic.Transform{}).CalculateWuxingRelationship(p1.Stem.Element(), p2.Stem.Element())
		return restrictive(rel) && selflogic.Opposes(p1.Branch, p2.Branch)
	})
}

// Daihan 大半会: 干合且支半会，找到第一组即返回
type Daihan struct {
	Exists   bool                `json:"exists"`
	Pair     *PillarPair         `json:"pair,omitempty"`
	Stems    [2]selflogic.Stem   `json:"stems"`
	Branches [2]selflogic.Branch `json:"branches"`
	Element  selflogic.Element   `json:"element"`
}

func CheckDaihan(a, b selflogic.Pillars) Daihan {
	for _, pp := range crossPairs() {
		p1, p2 := a.At(pp.Person1), b.At(pp.Person2)
		if _, ok := selflogic.Combine(p1.Stem, p2.Stem); !ok {
			continue
		}
		if e, ok := selflogic.HalfTriad(p1.Branch, p2.Branch); ok {
			pair := pp
			return Daihan{
				Exists:   true,
				Pair:     &pair,
				Stems:    [2]selflogic.Stem{p1.Stem, p2.Stem},
				Branches: [2]selflogic.Branch{p1.Branch, p2.Branch},
				Element:  e,
			}
		}
	}
	return Daihan{}
}

// BranchMatch 支合 对冲 的一次命中
type BranchMatch struct {
	PillarPair
	Branch1 selflogic.Branch `json:"branch1"`
	Branch2 selflogic.Branch `json:"branch2"`
}

func scanBranches(a, b selflogic.Pillars, match func(x, y selflogic.Branch) bool) []BranchMatch {
	matches := []BranchMatch{}
	for _, pp := range crossPairs() {
		x, y := a.At(pp.Person1).Branch, b.At(pp.Person2).Branch
		if match(x, y) {
			matches = append(matches, BranchMatch{PillarPair: pp, Branch1: x, Branch2: y})
		}
	}
	return matches
}

// CheckShigo 支合，返回全部命中
func CheckShigo(a, b selflogic.Pillars) []BranchMatch {
	return scanBranches(a, b, selflogic.SixCombines)
}

// CheckTaichu 対冲，返回全部命中
func CheckTaichu(a, b selflogic.Pillars) []BranchMatch {
	return scanBranches(a, b, selflogic.Opposes)
}

type HankaiMatch struct {
	PillarPair
	Element selflogic.Element `json:"element"`
}

// CheckHankai 半会，返回全部命中
func CheckHankai(a, b selflogic.Pillars) []HankaiMatch {
	matches := []HankaiMatch{}
	for _, pp := range crossPairs() {
		if e, ok := selflogic.HalfTriad(a.At(pp.Person1).Branch, b.At(pp.Person2).Branch); ok {
			matches = append(matches, HankaiMatch{PillarPair: pp, Element: e})
		}
	}
	return matches
}

// DayKango 日干同士の干合
type DayKango struct {
	Exists  bool               `json:"exists"`
	Element *selflogic.Element `json:"element,omitempty"`
}

func CheckDayKango(a, b selflogic.Stem) DayKango {
	if e, ok := selflogic.Combine(a, b); ok {
		return DayKango{Exists: true, Element: &e}
	}
	return DayKango{}
}
