package compat

import "sanmei/selflogic"

const (
	cosmicPoints  = 12
	overlapPerHit = 25
	adjacentBonus = 5
	nearBonus     = 3
)

// Triangle 宇宙盤上年支 月支 日支 三个点
type Triangle struct {
	Points   [3]int              `json:"points"`
	Branches [3]selflogic.Branch `json:"branches"`
	Outline  []selflogic.Branch  `json:"outline"` // 按盘面顺序排列，作图用
}

func triangleOf(ps selflogic.Pillars) Triangle {
	t := Triangle{}
	for i, b := range ps.Branches() {
		t.Branches[i] = b
		t.Points[i] = int(b)
	}
	t.Outline = (selflogic.Transform{}).OutputSeq(t.Branches[:])
	return t
}

type Overlap struct {
	Percentage     int    `json:"percentage"`
	SharedPoints   int    `json:"shared_points"`
	Interpretation string `json:"interpretation"`
}

func circularDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if cosmicPoints-d < d {
		return cosmicPoints - d
	}
	return d
}

func overlapOf(t1, t2 Triangle) Overlap {
	shared := 0
	for _, p := range t1.Points {
		for _, q := range t2.Points {
			if p == q {
				shared++
				break
			}
		}
	}

	score := shared * overlapPerHit
	for _, p := range t1.Points {
		for _, q := range t2.Points {
			if p == q {
				continue
			}
			switch circularDistance(p, q) {
			case 1:
				score += adjacentBonus
			case 2:
				score += nearBonus
			}
		}
	}
	pct := minInt(scoreMax, score)

	var interpretation string
	switch {
	case shared == 3:
		interpretation = "完全一致：行動パターンが非常に似ています。理解し合いやすい反面、似すぎて刺激が少ないかもしれません。"
	case shared == 2:
		interpretation = "高い一致：多くの行動パターンが重なります。共感しやすく、良いパートナーシップが期待できます。"
	case shared == 1:
		interpretation = "部分的一致：一部の行動パターンが重なります。異なる視点を持ちながらも、共通点があります。"
	case pct > 40:
		interpretation = "近接関係：直接の重なりは少ないですが、行動領域が近く、互いに影響し合える関係です。"
	default:
		interpretation = "異なる領域：行動パターンが大きく異なります。新しい視点を得られる反面、理解に時間がかかることも。"
	}

	return Overlap{Percentage: pct, SharedPoints: shared, Interpretation: interpretation}
}

type Cosmic struct {
	Person1 Triangle `json:"person1"`
	Person2 Triangle `json:"person2"`
	Overlap Overlap  `json:"overlap"`
}
