package star

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sanmei/selflogic"
)

func TestMainStarSelf(t *testing.T) {
	for s := selflogic.StemJia; s <= selflogic.StemGui; s++ {
		assert.Equal(t, Kansaku, MainStarOf(s, s), s.String())
	}
}

func TestMainStarDirectional(t *testing.T) {
	assert.Equal(t, Houkaku, MainStarOf(selflogic.StemJia, selflogic.StemBing))
	assert.Equal(t, Ryukou, MainStarOf(selflogic.StemBing, selflogic.StemJia))
	assert.Equal(t, Kengyu, MainStarOf(selflogic.StemBing, selflogic.StemGui))
	assert.Equal(t, Shiroku, MainStarOf(selflogic.StemGui, selflogic.StemBing))
	assert.Equal(t, Sekimon, MainStarOf(selflogic.StemJia, selflogic.StemYi))
	assert.Equal(t, Sekimon, MainStarOf(selflogic.StemYi, selflogic.StemJia))

	different := 0
	for a := selflogic.StemJia; a <= selflogic.StemGui; a++ {
		for b := selflogic.StemJia; b <= selflogic.StemGui; b++ {
			if a != b && MainStarOf(a, b) != MainStarOf(b, a) {
				different++
			}
		}
	}
	assert.Greater(t, different, 0)
}

func TestMainStarElementFollowsRelation(t *testing.T) {
	// 主星五行 = 日干五行经关系推出的五行
	for a := selflogic.StemJia; a <= selflogic.StemGui; a++ {
		for b := selflogic.StemJia; b <= selflogic.StemGui; b++ {
			s := MainStarOf(a, b)
			switch selflogic.Relate(a.Element(), b.Element()) {
			case selflogic.Same:
				assert.Equal(t, selflogic.Wood, s.Element())
			case selflogic.Generates:
				assert.Equal(t, selflogic.Fire, s.Element())
			case selflogic.Restrains:
				assert.Equal(t, selflogic.Earth, s.Element())
			case selflogic.RestrainedBy:
				assert.Equal(t, selflogic.Metal, s.Element())
			case selflogic.GeneratedBy:
				assert.Equal(t, selflogic.Water, s.Element())
			}
		}
	}
}

// 陽干从長生支顺行，陰干逆行
func TestCompanionTableWalk(t *testing.T) {
	start := []selflogic.Branch{
		selflogic.BranchHai, selflogic.BranchWu, selflogic.BranchYin, selflogic.BranchYou, selflogic.BranchYin,
		selflogic.BranchYou, selflogic.BranchSi, selflogic.BranchZi, selflogic.BranchShen, selflogic.BranchMao,
	}
	cycle := []CompanionStar{TenKi, TenKou, TenNan, TenRoku, TenShou, TenDou, TenKo, TenKyoku, TenKu, TenChi, TenPou, TenIn}

	for s := selflogic.StemJia; s <= selflogic.StemGui; s++ {
		assert.Equal(t, TenKi, CompanionStarOf(s, start[s]), s.String())
		for i, want := range cycle {
			step := i
			if s.Polarity() == selflogic.Yin {
				step = -i
			}
			assert.Equal(t, want, CompanionStarOf(s, start[s].Add(step)), "%s %d", s, i)
		}
	}
}

func TestCatalog(t *testing.T) {
	assert.Len(t, MainStars(), 10)
	assert.Len(t, CompanionStars(), 12)
	assert.Equal(t, "独立・自我", Kansaku.Info().Keyword)
	assert.Equal(t, 12, TenShou.Energy())
	assert.Equal(t, "大海", DayStemInfoOf(selflogic.StemRen).Nature)

	total := 0
	for _, s := range CompanionStars() {
		total += s.Energy()
	}
	assert.Equal(t, 78, total)

	assert.Panics(t, func() { _ = MainStar(10).String() })
	assert.Panics(t, func() { CompanionStarOf(selflogic.Stem(11), selflogic.BranchZi) })
}
