package compat

import (
	"github.com/pkg/errors"

	"sanmei/selflogic"
)

// ElementBalance 一个人六个干支字的五行分布
type ElementBalance struct {
	Counts  map[selflogic.Element]int `json:"counts"`
	Missing []selflogic.Element       `json:"missing"`
}

// Balance 两人的五行分布，Complements 是一方缺而另一方有的五行
type Balance struct {
	Person1     ElementBalance      `json:"person1"`
	Person2     ElementBalance      `json:"person2"`
	Complements []selflogic.Element `json:"complements"`
}

func glyphsOf(ps selflogic.Pillars) []string {
	glyphs := make([]string, 0, 6)
	for _, s := range ps.Stems() {
		glyphs = append(glyphs, s.String())
	}
	for _, b := range ps.Branches() {
		glyphs = append(glyphs, b.String())
	}
	return glyphs
}

func elementBalance(ps selflogic.Pillars) (ElementBalance, error) {
	elements, err := (selflogic.Transform{}).CalElements(glyphsOf(ps))
	if err != nil {
		return ElementBalance{}, errors.Wrapf(err, "elements of %s", ps)
	}
	eb := ElementBalance{Counts: make(map[selflogic.Element]int, len(selflogic.Elements))}
	for _, e := range elements {
		eb.Counts[e]++
	}
	for _, e := range selflogic.Elements {
		if eb.Counts[e] == 0 {
			eb.Missing = append(eb.Missing, e)
		}
	}
	return eb, nil
}

func balanceOf(a, b selflogic.Pillars) (Balance, error) {
	p1, err := elementBalance(a)
	if err != nil {
		return Balance{}, err
	}
	p2, err := elementBalance(b)
	if err != nil {
		return Balance{}, err
	}
	res := Balance{Person1: p1, Person2: p2}
	for _, e := range selflogic.Elements {
		if (p1.Counts[e] == 0) != (p2.Counts[e] == 0) {
			res.Complements = append(res.Complements, e)
		}
	}
	return res, nil
}
