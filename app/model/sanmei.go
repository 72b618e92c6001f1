package model

import (
	"sanmei/app/calendar"
	"sanmei/app/compat"
	"sanmei/app/star"
	"sanmei/selflogic"
)

type DestinyQuery struct {
	Date      string `form:"date" binding:"required"`
	Transform *bool  `form:"transform"` // 不传时使用配置
}

type CompatibilityQuery struct {
	Date1     string `form:"date1" binding:"required"`
	Date2     string `form:"date2" binding:"required"`
	Transform bool   `form:"transform"` // 默认不化气
}

// DestinyView 命式接口返回
type DestinyView struct {
	Date    calendar.Date    `json:"date"`
	DayStem star.DayStemInfo `json:"day_stem"`
	Options star.Options     `json:"options"`
	Result  *star.Result     `json:"result"`
}

type CompatibilityView struct {
	Date1     calendar.Date  `json:"date1"`
	Date2     calendar.Date  `json:"date2"`
	Transform bool           `json:"transform"`
	Result    *compat.Result `json:"result"`
}

type ShareView struct {
	Text string `json:"text"`
}

type MainStarView struct {
	Star star.MainStar `json:"star"`
	star.MainStarInfo
}

type CompanionStarView struct {
	Star star.CompanionStar `json:"star"`
	star.CompanionStarInfo
}

// CatalogView 星的一览
type CatalogView struct {
	MainStars         []MainStarView      `json:"main_stars"`
	CompanionStars    []CompanionStarView `json:"companion_stars"`
	DayStems          []star.DayStemInfo  `json:"day_stems"`
	RelationshipTypes []compat.TypeInfo   `json:"relationship_types"`
	Sexagenary        []selflogic.Pillar  `json:"sexagenary"` // 六十甲子，按序号排列
}

func NewCatalogView() CatalogView {
	v := CatalogView{
		DayStems:          star.DayStemInfos(),
		RelationshipTypes: compat.TypeInfos(),
		Sexagenary:        selflogic.Cycle(),
	}
	for _, s := range star.MainStars() {
		v.MainStars = append(v.MainStars, MainStarView{Star: s, MainStarInfo: s.Info()})
	}
	for _, s := range star.CompanionStars() {
		v.CompanionStars = append(v.CompanionStars, CompanionStarView{Star: s, CompanionStarInfo: s.Info()})
	}
	return v
}
