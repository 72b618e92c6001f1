package compat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanmei/app/calendar"
	"sanmei/app/star"
	"sanmei/selflogic"
)

func chartOf(t *testing.T, pillars ...string) *star.Result {
	t.Helper()
	require.Len(t, pillars, 3)
	var ps [3]selflogic.Pillar
	for i, s := range pillars {
		p, err := selflogic.ParsePillar(s)
		require.NoError(t, err)
		ps[i] = p
	}
	res, err := star.Derive(star.Input{Pillars: selflogic.Pillars{Year: ps[0], Month: ps[1], Day: ps[2]}}, star.Options{HiddenStems: star.Simple})
	require.NoError(t, err)
	return res
}

func chartOfDate(t *testing.T, d calendar.Date) *star.Result {
	t.Helper()
	ps, err := calendar.Calculate(d)
	require.NoError(t, err)
	days, err := calendar.DaysSinceTerm(d)
	require.NoError(t, err)
	res, err := star.Derive(star.Input{Pillars: ps, DaysSinceTerm: days}, star.Options{})
	require.NoError(t, err)
	return res
}

func TestCalculateGoldenPairs(t *testing.T) {
	a := chartOfDate(t, calendar.Date{Year: 1994, Month: 1, Day: 20})
	b := chartOfDate(t, calendar.Date{Year: 1997, Month: 2, Day: 26})
	c := chartOfDate(t, calendar.Date{Year: 1998, Month: 7, Day: 20})

	res, err := Calculate(a, b)
	require.NoError(t, err)
	assert.Equal(t, selflogic.Generates, res.DayStem.Relation)
	assert.Equal(t, selflogic.GeneratedBy, res.CenterStar.Relation)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, TypeComplementary, res.Relationship.Type)
	assert.Equal(t, 80, res.Relationship.Score)
	require.Len(t, res.Shigo, 1)
	assert.Equal(t, PillarPair{selflogic.PositionMonth, selflogic.PositionDay}, res.Shigo[0].PillarPair)
	assert.Len(t, res.Hankai, 2)
	assert.Empty(t, res.Taichu)
	assert.Equal(t, 1, res.Cosmic.Overlap.SharedPoints)
	assert.Equal(t, 33, res.Cosmic.Overlap.Percentage)
	assert.Equal(t, "火は土を生む関係（相生）。あなたが相手をサポートする傾向があります。", res.DayStem.Description)
	assert.Contains(t, res.Strengths, res.DayStem.Description)
	assert.Equal(t, "非常に良い相性です（100点）。関係性タイプは「相互補完型」です。", res.Summary)

	res, err = Calculate(b, c)
	require.NoError(t, err)
	assert.Equal(t, selflogic.Same, res.DayStem.Relation)
	assert.Equal(t, selflogic.Restrains, res.CenterStar.Relation)
	assert.Equal(t, 46, res.Score)
	assert.Equal(t, TypeStable, res.Relationship.Type)
	assert.Equal(t, 60, res.Relationship.Score)
	assert.Len(t, res.Shigo, 1)
	assert.Len(t, res.Taichu, 1)
	assert.Equal(t, []string{"対冲が1つあり、価値観の違いを感じることがあるかもしれません"}, res.Challenges)

	res, err = Calculate(a, c)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 85, res.Relationship.Score)
	assert.Equal(t, 39, res.Cosmic.Overlap.Percentage)
}

func TestBalance(t *testing.T) {
	a := chartOf(t, "癸酉", "甲寅", "丙午")
	b := chartOf(t, "丁丑", "壬寅", "己亥")

	res, err := Calculate(a, b)
	require.NoError(t, err)
	assert.Equal(t, map[selflogic.Element]int{
		selflogic.Wood:  2,
		selflogic.Fire:  2,
		selflogic.Metal: 1,
		selflogic.Water: 1,
	}, res.Balance.Person1.Counts)
	assert.Equal(t, []selflogic.Element{selflogic.Earth}, res.Balance.Person1.Missing)
	assert.Equal(t, []selflogic.Element{selflogic.Metal}, res.Balance.Person2.Missing)
	assert.Equal(t, []selflogic.Element{selflogic.Earth, selflogic.Metal}, res.Balance.Complements)

	res, err = Calculate(a, a)
	require.NoError(t, err)
	assert.Empty(t, res.Balance.Complements)
	assert.Equal(t, res.Balance.Person1, res.Balance.Person2)
}

func TestCalculateSameChart(t *testing.T) {
	a := chartOfDate(t, calendar.Date{Year: 1994, Month: 1, Day: 20})
	res, err := Calculate(a, a)
	require.NoError(t, err)

	assert.True(t, res.Ritchin.Exists)
	assert.Equal(t, selflogic.Positions, res.Ritchin.Positions)
	assert.Equal(t, 88, res.Score)
	assert.Equal(t, TypeSimilar, res.Relationship.Type)
	assert.Equal(t, 75, res.Relationship.Score)
	assert.Equal(t, 3, res.Cosmic.Overlap.SharedPoints)
	assert.Equal(t, 75, res.Cosmic.Overlap.Percentage)
	assert.Contains(t, res.Cosmic.Overlap.Interpretation, "完全一致")
	assert.Contains(t, res.Summary, "律音の関係があり")
}

func TestSpecialRelations(t *testing.T) {
	cases := []struct {
		name      string
		a, b      []string
		score     int
		typ       RelationshipType
		typeScore int
		check     func(t *testing.T, res *Result)
	}{
		{
			name: "natchin", a: []string{"甲子", "丙寅", "戊辰"}, b: []string{"甲午", "丁卯", "己巳"},
			score: 81, typ: TypeStimulating, typeScore: 70,
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, []PillarPair{{selflogic.PositionYear, selflogic.PositionYear}}, res.Natchin.Pairs)
				assert.False(t, res.Tenkoku.Exists)
			},
		},
		{
			name: "tenkoku", a: []string{"甲子", "丙寅", "戊辰"}, b: []string{"庚午", "丁卯", "己巳"},
			score: 58, typ: TypeChallenging, typeScore: 55,
			check: func(t *testing.T, res *Result) {
				assert.True(t, res.Tenkoku.Exists)
				assert.Contains(t, res.Challenges, "天剋地冲の関係があり、意見の衝突が起きやすいかもしれません")
			},
		},
		{
			name: "day kango", a: []string{"甲子", "丙寅", "甲辰"}, b: []string{"乙丑", "丁卯", "己巳"},
			score: 20, typ: TypeComplementary, typeScore: 90,
			check: func(t *testing.T, res *Result) {
				require.True(t, res.DayKango.Exists)
				assert.Equal(t, selflogic.Earth, *res.DayKango.Element)
				assert.Equal(t, "日干が干合し、深い絆で結ばれています", res.Strengths[0])
			},
		},
		{
			name: "similar fallback", a: []string{"庚辰", "甲辰", "癸巳"}, b: []string{"癸未", "辛丑", "壬寅"},
			score: 78, typ: TypeSimilar, typeScore: 70,
		},
		{
			name: "challenging fallback", a: []string{"辛丑", "庚寅", "辛丑"}, b: []string{"戊寅", "辛酉", "乙酉"},
			score: 53, typ: TypeChallenging, typeScore: 50,
		},
		{
			name: "stimulating fallback", a: []string{"戊寅", "甲辰", "癸酉"}, b: []string{"己未", "癸亥", "丁酉"},
			score: 50, typ: TypeStimulating, typeScore: 75,
			check: func(t *testing.T, res *Result) {
				assert.Len(t, res.Shigo, 2)
			},
		},
		{
			name: "complementary fallback", a: []string{"壬寅", "甲午", "甲辰"}, b: []string{"辛丑", "戊辰", "壬寅"},
			score: 54, typ: TypeComplementary, typeScore: 75,
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, 2, res.Cosmic.Overlap.SharedPoints)
				assert.Equal(t, 64, res.Cosmic.Overlap.Percentage)
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := Calculate(chartOf(t, c.a...), chartOf(t, c.b...))
			require.NoError(t, err)
			assert.Equal(t, c.score, res.Score)
			assert.Equal(t, c.typ, res.Relationship.Type)
			assert.Equal(t, c.typeScore, res.Relationship.Score)
			assert.Equal(t, c.typ.Info().LongDesc, res.Relationship.Description)
			assert.NotEmpty(t, res.Advice)
			if c.check != nil {
				c.check(t, res)
			}
		})
	}
}

func TestDaihan(t *testing.T) {
	// 干合两干阴阳相反，半会两支阴阳相同，合法干支之间不会出现
	for i := 0; i < selflogic.CycleLen; i++ {
		for j := 0; j < selflogic.CycleLen; j++ {
			p, q := selflogic.PillarAt(i), selflogic.PillarAt(j)
			a := selflogic.Pillars{Year: p, Month: p, Day: p}
			b := selflogic.Pillars{Year: q, Month: q, Day: q}
			require.False(t, CheckDaihan(a, b).Exists, "%s %s", p, q)
		}
	}

	jia := selflogic.Pillar{Stem: selflogic.StemJia, Branch: selflogic.BranchZi}
	ji := selflogic.Pillar{Stem: selflogic.StemJi, Branch: selflogic.BranchChen}
	filler := selflogic.Pillar{Stem: selflogic.StemBing, Branch: selflogic.BranchYin}
	d := CheckDaihan(
		selflogic.Pillars{Year: filler, Month: jia, Day: filler},
		selflogic.Pillars{Year: filler, Month: filler, Day: ji},
	)
	require.True(t, d.Exists)
	assert.Equal(t, PillarPair{selflogic.PositionMonth, selflogic.PositionDay}, *d.Pair)
	assert.Equal(t, selflogic.Water, d.Element)
}

func TestOverlap(t *testing.T) {
	tri := func(y, m, d selflogic.Branch) Triangle {
		return triangleOf(selflogic.Pillars{
			Year:  selflogic.Pillar{Branch: y},
			Month: selflogic.Pillar{Branch: m},
			Day:   selflogic.Pillar{Branch: d},
		})
	}
	t1 := tri(selflogic.BranchZi, selflogic.BranchMao, selflogic.BranchWu)
	t2 := tri(selflogic.BranchHai, selflogic.BranchChen, selflogic.BranchWei)
	o := overlapOf(t1, t2)
	assert.Equal(t, 0, o.SharedPoints)
	// 子亥 卯辰 午未 相邻各 5，午辰 隔一 3
	assert.Equal(t, 18, o.Percentage)
	assert.Contains(t, o.Interpretation, "異なる領域")

	assert.Equal(t, []selflogic.Branch{selflogic.BranchMao, selflogic.BranchWu, selflogic.BranchHai},
		tri(selflogic.BranchHai, selflogic.BranchMao, selflogic.BranchWu).Outline)

	assert.Equal(t, 1, circularDistance(0, 11))
	assert.Equal(t, 6, circularDistance(3, 9))
}

func TestScoreBounds(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	pick := func() *star.Result {
		ps := selflogic.Pillars{
			Year:  selflogic.PillarAt(r.Intn(60)),
			Month: selflogic.PillarAt(r.Intn(60)),
			Day:   selflogic.PillarAt(r.Intn(60)),
		}
		res, err := star.Derive(star.Input{Pillars: ps, DaysSinceTerm: 1 + r.Intn(30)}, star.Options{Transform: r.Intn(2) == 0})
		require.NoError(t, err)
		return res
	}
	for i := 0; i < 3000; i++ {
		res, err := Calculate(pick(), pick())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 100)
		assert.GreaterOrEqual(t, res.Relationship.Score, 0)
		assert.LessOrEqual(t, res.Relationship.Score, 100)
		assert.GreaterOrEqual(t, res.Cosmic.Overlap.Percentage, 0)
		assert.LessOrEqual(t, res.Cosmic.Overlap.Percentage, 100)
	}
}

func TestCalculateRejectsMissing(t *testing.T) {
	_, err := Calculate(nil, chartOf(t, "甲子", "丙寅", "戊辰"))
	assert.ErrorIs(t, err, ErrMissingChart)
}
