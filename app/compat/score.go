package compat

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sanmei/selflogic"
)

var (
	baseScore     = decimal.NewFromInt(50)
	dayStemWeight = decimal.RequireFromString("1.5")
	centerWeight  = decimal.RequireFromString("1.25")
)

// 特殊关系的加减分
const (
	daihanBonus     = 15
	kangoBonus      = 12
	ritchinBonus    = 10
	natchinBonus    = 8
	tenkokuMalus    = 15
	perBranchPoints = 5
	maxShigoBonus   = 15
	maxTaichuMalus  = 15
	scoreMin        = 0
	scoreMax        = 100
)

type special struct {
	ritchin Ritchin
	natchin PairsResult
	daihan  Daihan
	tenkoku PairsResult
	kango   DayKango
	shigo   int
	taichu  int
}

func clamp(v int) int {
	if v < scoreMin {
		return scoreMin
	}
	if v > scoreMax {
		return scoreMax
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// overallScore 50 起算，日干 x1.5，中心星 x1.25，再加特殊关系，四舍五入后截到 [0,100]
func overallScore(dayStem, center ElementCompatibility, sp special) int {
	score := baseScore.
		Add(decimal.NewFromInt(int64(dayStem.Score)).Mul(dayStemWeight)).
		Add(decimal.NewFromInt(int64(center.Score)).Mul(centerWeight))

	bonus := 0
	if sp.daihan.Exists {
		bonus += daihanBonus
	}
	if sp.kango.Exists {
		bonus += kangoBonus
	}
	if sp.ritchin.Exists {
		bonus += ritchinBonus
	}
	if sp.natchin.Exists {
		bonus += natchinBonus
	}
	if sp.tenkoku.Exists {
		bonus -= tenkokuMalus
	}
	bonus += minInt(sp.shigo*perBranchPoints, maxShigoBonus)
	bonus -= minInt(sp.taichu*perBranchPoints, maxTaichuMalus)

	score = score.Add(decimal.NewFromInt(int64(bonus)))
	return clamp(int(score.Round(0).IntPart()))
}

// RelationshipType 関係性タイプ
type RelationshipType string

const (
	TypeComplementary RelationshipType = "相互補完型"
	TypeSimilar       RelationshipType = "類似型"
	TypeStimulating   RelationshipType = "刺激型"
	TypeStable        RelationshipType = "安定型"
	TypeGrowth        RelationshipType = "成長型"
	TypeChallenging   RelationshipType = "挑戦型"
)

type TypeInfo struct {
	Type      RelationshipType `json:"type"`
	Emoji     string           `json:"emoji"`
	ShortDesc string           `json:"short_desc"`
	LongDesc  string           `json:"long_desc"`
	Advice    string           `json:"advice"`
}

var typeInfos = map[RelationshipType]TypeInfo{
	TypeComplementary: {
		Type:      TypeComplementary,
		Emoji:     "🤝",
		ShortDesc: "異なる強みで補い合う関係",
		LongDesc:  "お互いの持つ強みが異なり、足りない部分を補い合える理想的な関係です。一人では難しいことも二人なら乗り越えられます。",
		Advice:    "相手の強みを認め、自分にないものを持っていることに感謝しましょう。役割分担を明確にすると、より良い関係を築けます。",
	},
	TypeSimilar: {
		Type:      TypeSimilar,
		Emoji:     "🪞",
		ShortDesc: "似た価値観を共有する関係",
		LongDesc:  "考え方や価値観が似ているため、お互いの気持ちを理解しやすい関係です。共感し合えることが多く、居心地の良さを感じられます。",
		Advice:    "似ているからこそ、意見がぶつかることもあります。違いを認め合い、時には新しい視点を取り入れることも大切です。",
	},
	TypeStimulating: {
		Type:      TypeStimulating,
		Emoji:     "⚡",
		ShortDesc: "互いに刺激を与え合う関係",
		LongDesc:  "お互いに良い刺激を与え合える関係です。マンネリになりにくく、常に新鮮な気持ちで向き合えます。",
		Advice:    "刺激が強すぎると疲れることも。適度な距離感を保ち、休息の時間も大切にしましょう。",
	},
	TypeStable: {
		Type:      TypeStable,
		Emoji:     "🏠",
		ShortDesc: "穏やかで安定した関係",
		LongDesc:  "穏やかで安定した関係を築けます。大きな波風は立ちにくく、長く続く関係になりやすいです。",
		Advice:    "安定しすぎるとマンネリ化することも。時には新しいことに二人でチャレンジしてみましょう。",
	},
	TypeGrowth: {
		Type:      TypeGrowth,
		Emoji:     "🌱",
		ShortDesc: "互いを成長させる関係",
		LongDesc:  "お互いの存在が成長の糧となる関係です。一緒にいることで、より良い自分になれる可能性を秘めています。",
		Advice:    "成長には痛みも伴います。相手を変えようとするのではなく、自分自身の成長に集中しましょう。",
	},
	TypeChallenging: {
		Type:      TypeChallenging,
		Emoji:     "🔥",
		ShortDesc: "課題を与え合う関係",
		LongDesc:  "お互いに課題を与え合う関係です。困難を乗り越えることで、絆が深まる可能性があります。",
		Advice:    "課題を避けずに向き合うことが大切です。ただし、無理はせず、時には専門家の助けを借りることも検討しましょう。",
	},
}

func (t RelationshipType) Info() TypeInfo {
	info, ok := typeInfos[t]
	if !ok {
		panic(fmt.Sprintf("compat: unknown relationship type %q", string(t)))
	}
	return info
}

// TypeInfos 按固定顺序列出
func TypeInfos() []TypeInfo {
	order := []RelationshipType{TypeComplementary, TypeSimilar, TypeStimulating, TypeStable, TypeGrowth, TypeChallenging}
	out := make([]TypeInfo, 0, len(order))
	for _, t := range order {
		out = append(out, t.Info())
	}
	return out
}

type Classification struct {
	Type        RelationshipType `json:"type"`
	Score       int              `json:"score"`
	Description string           `json:"description"`
	Advice      string           `json:"advice"`
}

// classify 自上而下，先命中者为准
func classify(dayStem, center ElementCompatibility, sp special) Classification {
	var (
		t     RelationshipType
		score int
	)

	switch {
	case sp.daihan.Exists:
		t, score = TypeGrowth, 85
	case sp.kango.Exists:
		t, score = TypeComplementary, 90
	case sp.ritchin.Exists:
		t, score = TypeSimilar, 75
	case sp.tenkoku.Exists:
		t, score = TypeChallenging, 55
	case sp.natchin.Exists:
		t, score = TypeStimulating, 70
	default:
		switch {
		case dayStem.Relation == selflogic.Same && center.Relation == selflogic.Same:
			t, score = TypeSimilar, 70
		case generative(dayStem.Relation):
			t, score = TypeComplementary, 75
		case restrictive(dayStem.Relation):
			if sp.shigo >= 2 {
				t, score = TypeStimulating, 65
			} else {
				t, score = TypeChallenging, 50
			}
		default:
			t, score = TypeStable, 60
		}
		score += sp.shigo * perBranchPoints
		score -= sp.taichu * perBranchPoints
	}

	info := t.Info()
	return Classification{
		Type:        t,
		Score:       clamp(score),
		Description: info.LongDesc,
		Advice:      info.Advice,
	}
}
