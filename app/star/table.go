package star

import (
	"fmt"

	"sanmei/selflogic"
)

// 十大主星: 五行关系 x 阴阳是否相同
var mainStarTable = [5][2]MainStar{
	selflogic.Same:         {Kansaku, Sekimon},
	selflogic.Generates:    {Houkaku, Chouju},
	selflogic.Restrains:    {Rokuzon, Shiroku},
	selflogic.RestrainedBy: {Shaki, Kengyu},
	selflogic.GeneratedBy:  {Ryukou, Gyokudou},
}

// MainStarOf 日干对 context 干的十大主星
func MainStarOf(day, context selflogic.Stem) MainStar {
	rel := selflogic.Relate(day.Element(), context.Element())
	if day.Polarity() == context.Polarity() {
		return mainStarTable[rel][0]
	}
	return mainStarTable[rel][1]
}

// 十二大従星: 日干 x 地支(子..亥)
var companionTable = [10][12]CompanionStar{
	selflogic.StemJia:  {TenKou, TenNan, TenRoku, TenShou, TenDou, TenKo, TenKyoku, TenKu, TenChi, TenPou, TenIn, TenKi}, // 甲
	selflogic.StemYi:   {TenKo, TenDou, TenShou, TenRoku, TenNan, TenKou, TenKi, TenIn, TenPou, TenChi, TenKu, TenKyoku}, // 乙
	selflogic.StemBing: {TenPou, TenIn, TenKi, TenKou, TenNan, TenRoku, TenShou, TenDou, TenKo, TenKyoku, TenKu, TenChi}, // 丙
	selflogic.StemDing: {TenChi, TenKu, TenKyoku, TenKo, TenDou, TenShou, TenRoku, TenNan, TenKou, TenKi, TenIn, TenPou}, // 丁
	selflogic.StemWu:   {TenPou, TenIn, TenKi, TenKou, TenNan, TenRoku, TenShou, TenDou, TenKo, TenKyoku, TenKu, TenChi}, // 戊
	selflogic.StemJi:   {TenChi, TenKu, TenKyoku, TenKo, TenDou, TenShou, TenRoku, TenNan, TenKou, TenKi, TenIn, TenPou}, // 己
	selflogic.StemGeng: {TenKyoku, TenKu, TenChi, TenPou, TenIn, TenKi, TenKou, TenNan, TenRoku, TenShou, TenDou, TenKo}, // 庚
	selflogic.StemXin:  {TenKi, TenIn, TenPou, TenChi, TenKu, TenKyoku, TenKo, TenDou, TenShou, TenRoku, TenNan, TenKou}, // 辛
	selflogic.StemRen:  {TenShou, TenDou, TenKo, TenKyoku, TenKu, TenChi, TenPou, TenIn, TenKi, TenKou, TenNan, TenRoku}, // 壬
	selflogic.StemGui:  {TenRoku, TenNan, TenKou, TenKi, TenIn, TenPou, TenChi, TenKu, TenKyoku, TenKo, TenDou, TenShou}, // 癸
}

// CompanionStarOf 日干对 context 支的十二大従星
func CompanionStarOf(day selflogic.Stem, context selflogic.Branch) CompanionStar {
	if !day.Valid() || !context.Valid() {
		panic(fmt.Sprintf("star: no companion star for %d/%d", int(day), int(context)))
	}
	return companionTable[day][context]
}
