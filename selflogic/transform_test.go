package selflogic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalElements(t *testing.T) {
	ts := Transform{}

	els, err := ts.CalElements([]string{"甲", "午", "辛", "亥"})
	require.NoError(t, err)
	assert.Equal(t, []Element{Wood, Fire, Metal, Water}, els)

	_, err = ts.CalElements([]string{"甲", "X"})
	assert.ErrorIs(t, err, ErrUnknownBranch)
}

func TestCalProsDec(t *testing.T) {
	ts := Transform{}

	e, n := ts.CalProsDec([]Element{Metal, Water, Water, Earth, Wood, Metal})
	assert.Equal(t, Metal, e, "ties resolve to the first element seen")
	assert.Equal(t, 2, n)

	e, n = ts.CalProsDec([]Element{Fire, Wood, Wood, Wood, Fire})
	assert.Equal(t, Wood, e)
	assert.Equal(t, 3, n)

	assert.Panics(t, func() { ts.CalProsDec(nil) })
}

func TestSort(t *testing.T) {
	ts := Transform{}
	in := []Branch{BranchHai, BranchChou, BranchChen, BranchZi, BranchWu}

	sh := ts.OutputSeq(in)
	assert.Equal(t, []Branch{BranchZi, BranchChou, BranchChen, BranchWu, BranchHai}, sh)
	assert.Equal(t, BranchHai, in[0], "input is not reordered")
}

func TestCalculateWuxingRelationship(t *testing.T) {
	ts := Transform{}

	cases := []struct {
		a, b Element
		rel  Relation
		side int
	}{
		{Wood, Wood, Same, 0},
		{Wood, Fire, Generates, 1},
		{Fire, Wood, GeneratedBy, 2},
		{Metal, Wood, Restrains, 1},
		{Wood, Metal, RestrainedBy, 2},
	}
	for _, c := range cases {
		rel, side := ts.CalculateWuxingRelationship(c.a, c.b)
		assert.Equal(t, c.rel, rel, "%s %s", c.a, c.b)
		assert.Equal(t, c.side, side, "%s %s", c.a, c.b)
	}
}

func TestComb(t *testing.T) {
	ts := Transform{}

	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 2}}, ts.UniqueCombination(2, 3))
	assert.Len(t, ts.UniqueCombination(3, 4), 4)
	assert.Empty(t, ts.UniqueCombination(3, 2))
}
