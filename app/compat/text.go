package compat

import (
	"fmt"

	"sanmei/selflogic"
)

func scoreComment(score int) string {
	switch {
	case score >= 80:
		return "非常に良い相性"
	case score >= 60:
		return "良い相性"
	case score >= 40:
		return "まずまずの相性"
	}
	return "課題のある相性"
}

func summaryOf(score int, t RelationshipType, sp special) string {
	s := fmt.Sprintf("%sです（%d点）。関係性タイプは「%s」です。", scoreComment(score), score, t)
	if sp.kango.Exists {
		s += "日干同士が干合しており、強い結びつきがあります。"
	}
	if sp.daihan.Exists {
		s += "大半会の関係があり、非常に強い縁があります。"
	}
	if sp.ritchin.Exists {
		s += "律音の関係があり、深い縁で結ばれています。"
	}
	return s
}

func strengthsOf(sp special, dayStem ElementCompatibility) []string {
	var out []string
	if sp.kango.Exists {
		out = append(out, "日干が干合し、深い絆で結ばれています")
	}
	if sp.daihan.Exists {
		out = append(out, "大半会の関係があり、お互いを高め合えます")
	}
	if sp.ritchin.Exists {
		out = append(out, "律音の関係があり、魂レベルでの繋がりがあります")
	}
	if sp.natchin.Exists {
		out = append(out, "納音の関係があり、補完し合える関係です")
	}
	if sp.shigo > 0 {
		out = append(out, fmt.Sprintf("支合が%dつあり、自然と惹かれ合う関係です", sp.shigo))
	}
	if generative(dayStem.Relation) {
		out = append(out, dayStem.Description)
	}
	if dayStem.Relation == selflogic.Same {
		out = append(out, "同じ五行を持ち、価値観が近いです")
	}
	if len(out) == 0 {
		out = append(out, "お互いの違いを認め合うことで成長できます")
	}
	return out
}

func challengesOf(sp special, dayStem ElementCompatibility) []string {
	var out []string
	if sp.tenkoku.Exists {
		out = append(out, "天剋地冲の関係があり、意見の衝突が起きやすいかもしれません")
	}
	if sp.taichu > 0 {
		out = append(out, fmt.Sprintf("対冲が%dつあり、価値観の違いを感じることがあるかもしれません", sp.taichu))
	}
	if restrictive(dayStem.Relation) {
		out = append(out, "五行の相剋関係があり、時に緊張関係が生まれることがあります")
	}
	if len(out) == 0 {
		out = append(out, "大きな課題は見当たりません")
	}
	return out
}

func adviceOf(t RelationshipType, score int) string {
	base := t.Info().Advice
	switch {
	case score >= 80:
		return base + " この関係を大切に育ててください。"
	case score >= 60:
		return base + " お互いの良さを認め合うことで、さらに良い関係を築けます。"
	case score >= 40:
		return base + " 違いを受け入れる心の余裕を持つことが大切です。"
	}
	return base + " 無理をせず、自分らしさを大切にしながら関係を築いてください。"
}
