package compat

import (
	"fmt"

	"sanmei/selflogic"
)

// 五行关系得分，以本人为主体
var relationScores = map[selflogic.Relation]int{
	selflogic.Generates:    20,
	selflogic.GeneratedBy:  15,
	selflogic.Same:         10,
	selflogic.Restrains:    -15,
	selflogic.RestrainedBy: -20,
}

// 相性画面用的叫法
var relationLabels = map[selflogic.Relation]string{
	selflogic.Generates:    "相生",
	selflogic.GeneratedBy:  "被生",
	selflogic.Same:         "比和",
	selflogic.Restrains:    "相剋",
	selflogic.RestrainedBy: "被剋",
}

// ElementCompatibility 两人某一项的五行相性
type ElementCompatibility struct {
	Person1     selflogic.Element  `json:"person1"`
	Person2     selflogic.Element  `json:"person2"`
	Relation    selflogic.Relation `json:"relation"`
	Label       string             `json:"label"`
	Score       int                `json:"score"`
	Description string             `json:"description"`
}

func elementCompatibility(e1, e2 selflogic.Element) ElementCompatibility {
	rel := selflogic.Relate(e1, e2)
	return ElementCompatibility{
		Person1:     e1,
		Person2:     e2,
		Relation:    rel,
		Label:       relationLabels[rel],
		Score:       relationScores[rel],
		Description: elementDescription(e1, e2, rel),
	}
}

func elementDescription(e1, e2 selflogic.Element, rel selflogic.Relation) string {
	switch rel {
	case selflogic.Generates:
		return fmt.Sprintf("%sは%sを生む関係（相生）。あなたが相手をサポートする傾向があります。", e1, e2)
	case selflogic.GeneratedBy:
		return fmt.Sprintf("%sは%sを生む関係（被生）。相手があなたをサポートする傾向があります。", e2, e1)
	case selflogic.Same:
		return fmt.Sprintf("%sと%sは同じ五行（比和）。似た者同士で理解し合えます。", e1, e2)
	case selflogic.Restrains:
		return fmt.Sprintf("%sは%sを剋す関係（相剋）。あなたが相手をリードする傾向があります。", e1, e2)
	case selflogic.RestrainedBy:
		return fmt.Sprintf("%sは%sを剋す関係（被剋）。相手があなたをリードする傾向があります。", e2, e1)
	}
	panic(fmt.Sprintf("compat: relation %d out of range", int(rel)))
}

func generative(r selflogic.Relation) bool {
	return r == selflogic.Generates || r == selflogic.GeneratedBy
}

func restrictive(r selflogic.Relation) bool {
	return r == selflogic.Restrains || r == selflogic.RestrainedBy
}
