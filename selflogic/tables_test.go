package selflogic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelateTable(t *testing.T) {
	for _, a := range Elements {
		assert.Equal(t, Same, Relate(a, a))
		assert.Equal(t, Generates, Relate(a, a.Generates()))
		assert.Equal(t, GeneratedBy, Relate(a.Generates(), a))
		assert.Equal(t, Restrains, Relate(a, a.Restrains()))
		assert.Equal(t, RestrainedBy, Relate(a.Restrains(), a))
	}
	assert.Equal(t, Generates, Relate(Metal, Water))
	assert.Equal(t, Restrains, Relate(Water, Fire))
	assert.Panics(t, func() { Relate(Element(7), Wood) })
}

func TestCombine(t *testing.T) {
	cases := []struct {
		a, b Stem
		e    Element
	}{
		{StemJia, StemJi, Earth},
		{StemGeng, StemYi, Metal},
		{StemBing, StemXin, Water},
		{StemRen, StemDing, Wood},
		{StemWu, StemGui, Fire},
	}
	for _, c := range cases {
		e, ok := Combine(c.a, c.b)
		assert.True(t, ok)
		assert.Equal(t, c.e, e)
		e, ok = Combine(c.b, c.a)
		assert.True(t, ok)
		assert.Equal(t, c.e, e)
	}
	_, ok := Combine(StemJia, StemYi)
	assert.False(t, ok)
}

func TestStemOf(t *testing.T) {
	for s := StemJia; s <= StemGui; s++ {
		assert.Equal(t, s, StemOf(s.Element(), s.Polarity()))
	}
}

func TestBranchRelations(t *testing.T) {
	assert.True(t, Opposes(BranchZi, BranchWu))
	assert.True(t, Opposes(BranchHai, BranchSi))
	assert.False(t, Opposes(BranchZi, BranchChou))

	assert.True(t, SixCombines(BranchYin, BranchHai))
	assert.True(t, SixCombines(BranchWei, BranchWu))
	assert.False(t, SixCombines(BranchZi, BranchWu))

	e, ok := HalfTriad(BranchYin, BranchXu)
	assert.True(t, ok)
	assert.Equal(t, Fire, e)
	_, ok = HalfTriad(BranchWu, BranchWu)
	assert.False(t, ok)
	_, ok = HalfTriad(BranchZi, BranchWu)
	assert.False(t, ok)

	for b := BranchZi; b <= BranchHai; b++ {
		assert.True(t, Opposes(b, b.Add(6)))
	}
}

func TestHiddenStems(t *testing.T) {
	h := HiddenStemsOf(BranchYou)
	assert.Equal(t, StemXin, h.At(1))
	assert.Equal(t, StemXin, h.At(30))

	h = HiddenStemsOf(BranchYin)
	assert.Equal(t, StemWu, h.At(7))
	assert.Equal(t, StemBing, h.At(8))
	assert.Equal(t, StemBing, h.At(14))
	assert.Equal(t, StemJia, h.At(15))

	h = HiddenStemsOf(BranchWu)
	assert.Equal(t, StemJi, h.At(1))
	assert.Equal(t, StemJi, h.At(19))
	assert.Equal(t, StemDing, h.At(20))

	h = HiddenStemsOf(BranchHai)
	assert.Equal(t, StemJia, h.At(12))
	assert.Equal(t, StemRen, h.At(13))

	assert.Equal(t, StemJi, PrincipalStem(BranchWei))
	assert.Equal(t, StemWu, PrincipalStem(BranchXu))
}
