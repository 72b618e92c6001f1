package compat

import (
	"github.com/pkg/errors"

	"sanmei/app/star"
)

var ErrMissingChart = errors.New("compat: both charts are required")

// Result 两人相性诊断结果
type Result struct {
	Ritchin      Ritchin              `json:"ritchin"`
	Natchin      PairsResult          `json:"natchin"`
	Daihan       Daihan               `json:"daihan"`
	Tenkoku      PairsResult          `json:"tenkoku"`
	Shigo        []BranchMatch        `json:"shigo"`
	Taichu       []BranchMatch        `json:"taichu"`
	Hankai       []HankaiMatch        `json:"hankai"`
	DayKango     DayKango             `json:"day_kango"`
	DayStem      ElementCompatibility `json:"day_stem"`
	CenterStar   ElementCompatibility `json:"center_star"`
	Score        int                  `json:"score"`
	Relationship Classification       `json:"relationship"`
	Cosmic       Cosmic               `json:"cosmic"`
	Balance      Balance              `json:"balance"`
	Summary      string               `json:"summary"`
	Strengths    []string             `json:"strengths"`
	Challenges   []string             `json:"challenges"`
	Advice       string               `json:"advice"`
}

// Calculate 由两份命式计算相性
func Calculate(p1, p2 *star.Result) (*Result, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrMissingChart
	}
	a, b := p1.Pillars, p2.Pillars
	if err := a.Validate(); err != nil {
		return nil, errors.WithMessage(err, "person1")
	}
	if err := b.Validate(); err != nil {
		return nil, errors.WithMessage(err, "person2")
	}

	res := &Result{
		Ritchin:  CheckRitchin(a, b),
		Natchin:  CheckNatchin(a, b),
		Daihan:   CheckDaihan(a, b),
		Tenkoku:  CheckTenkoku(a, b),
		Shigo:    CheckShigo(a, b),
		Taichu:   CheckTaichu(a, b),
		Hankai:   CheckHankai(a, b),
		DayKango: CheckDayKango(p1.DayStem, p2.DayStem),
	}
	res.DayStem = elementCompatibility(p1.DayStem.Element(), p2.DayStem.Element())
	res.CenterStar = elementCompatibility(p1.CenterStar().Element(), p2.CenterStar().Element())

	sp := special{
		ritchin: res.Ritchin,
		natchin: res.Natchin,
		daihan:  res.Daihan,
		tenkoku: res.Tenkoku,
		kango:   res.DayKango,
		shigo:   len(res.Shigo),
		taichu:  len(res.Taichu),
	}
	res.Score = overallScore(res.DayStem, res.CenterStar, sp)
	res.Relationship = classify(res.DayStem, res.CenterStar, sp)

	t1, t2 := triangleOf(a), triangleOf(b)
	res.Cosmic = Cosmic{Person1: t1, Person2: t2, Overlap: overlapOf(t1, t2)}

	balance, err := balanceOf(a, b)
	if err != nil {
		return nil, err
	}
	res.Balance = balance

	res.Summary = summaryOf(res.Score, res.Relationship.Type, sp)
	res.Strengths = strengthsOf(sp, res.DayStem)
	res.Challenges = challengesOf(sp, res.DayStem)
	res.Advice = adviceOf(res.Relationship.Type, res.Score)
	return res, nil
}
