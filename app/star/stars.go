package star

import (
	"fmt"

	"sanmei/selflogic"
)

// MainStar 十大主星
type MainStar int

const (
	Kansaku  MainStar = iota // 貫索星
	Sekimon                  // 石門星
	Houkaku                  // 鳳閣星
	Chouju                   // 調舒星
	Rokuzon                  // 禄存星
	Shiroku                  // 司禄星
	Shaki                    // 車騎星
	Kengyu                   // 牽牛星
	Ryukou                   // 龍高星
	Gyokudou                 // 玉堂星
)

type MainStarInfo struct {
	Name    string            `json:"name"`
	Keyword string            `json:"keyword"`
	Element selflogic.Element `json:"element"`
}

var mainStarInfos = [...]MainStarInfo{
	Kansaku:  {"貫索星", "独立・自我", selflogic.Wood},
	Sekimon:  {"石門星", "協調・社交", selflogic.Wood},
	Houkaku:  {"鳳閣星", "楽観・表現", selflogic.Fire},
	Chouju:   {"調舒星", "感性・孤高", selflogic.Fire},
	Rokuzon:  {"禄存星", "魅力・奉仕", selflogic.Earth},
	Shiroku:  {"司禄星", "堅実・蓄積", selflogic.Earth},
	Shaki:    {"車騎星", "行動・闘争", selflogic.Metal},
	Kengyu:   {"牽牛星", "名誉・責任", selflogic.Metal},
	Ryukou:   {"龍高星", "冒険・改革", selflogic.Water},
	Gyokudou: {"玉堂星", "知性・伝統", selflogic.Water},
}

func (s MainStar) Info() MainStarInfo {
	if s < Kansaku || s > Gyokudou {
		panic(fmt.Sprintf("star: main star %d out of range", int(s)))
	}
	return mainStarInfos[s]
}

func (s MainStar) String() string {
	return s.Info().Name
}

func (s MainStar) Element() selflogic.Element {
	return s.Info().Element
}

func (s MainStar) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MainStars 全部十大主星
func MainStars() []MainStar {
	out := make([]MainStar, 0, len(mainStarInfos))
	for s := Kansaku; s <= Gyokudou; s++ {
		out = append(out, s)
	}
	return out
}

// CompanionStar 十二大従星
type CompanionStar int

const (
	TenPou   CompanionStar = iota // 天報星
	TenIn                         // 天印星
	TenKi                         // 天貴星
	TenKou                        // 天恍星
	TenNan                        // 天南星
	TenRoku                       // 天禄星
	TenShou                       // 天将星
	TenDou                        // 天堂星
	TenKo                         // 天胡星
	TenKyoku                      // 天極星
	TenKu                         // 天庫星
	TenChi                        // 天馳星
)

type CompanionStarInfo struct {
	Name   string `json:"name"`
	Energy int    `json:"energy"`
	Phase  string `json:"phase"`
}

var companionStarInfos = [...]CompanionStarInfo{
	TenPou:   {"天報星", 1, "胎児"},
	TenIn:    {"天印星", 3, "赤ちゃん"},
	TenKi:    {"天貴星", 5, "幼児"},
	TenKou:   {"天恍星", 7, "少年少女"},
	TenNan:   {"天南星", 10, "青年"},
	TenRoku:  {"天禄星", 11, "壮年"},
	TenShou:  {"天将星", 12, "頂点"},
	TenDou:   {"天堂星", 9, "老人"},
	TenKo:    {"天胡星", 6, "病人"},
	TenKyoku: {"天極星", 2, "死人"},
	TenKu:    {"天庫星", 4, "入墓"},
	TenChi:   {"天馳星", 8, "転生"},
}

func (s CompanionStar) Info() CompanionStarInfo {
	if s < TenPou || s > TenChi {
		panic(fmt.Sprintf("star: companion star %d out of range", int(s)))
	}
	return companionStarInfos[s]
}

func (s CompanionStar) String() string {
	return s.Info().Name
}

func (s CompanionStar) Energy() int {
	return s.Info().Energy
}

func (s CompanionStar) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CompanionStars 按胎→絶的顺序
func CompanionStars() []CompanionStar {
	out := make([]CompanionStar, 0, len(companionStarInfos))
	for s := TenPou; s <= TenChi; s++ {
		out = append(out, s)
	}
	return out
}

// DayStemInfo 日干的性格
type DayStemInfo struct {
	Stem    selflogic.Stem `json:"stem"`
	Reading string         `json:"reading"`
	Nature  string         `json:"nature"`
}

var dayStemInfos = [...]DayStemInfo{
	{selflogic.StemJia, "甲木（こうぼく）", "大木"},
	{selflogic.StemYi, "乙木（おつぼく）", "草花"},
	{selflogic.StemBing, "丙火（へいか）", "太陽"},
	{selflogic.StemDing, "丁火（ていか）", "灯火"},
	{selflogic.StemWu, "戊土（ぼど）", "山岳"},
	{selflogic.StemJi, "己土（きど）", "田畑"},
	{selflogic.StemGeng, "庚金（こうきん）", "鉄鋼"},
	{selflogic.StemXin, "辛金（しんきん）", "宝石"},
	{selflogic.StemRen, "壬水（じんすい）", "大海"},
	{selflogic.StemGui, "癸水（きすい）", "雨露"},
}

func DayStemInfoOf(s selflogic.Stem) DayStemInfo {
	if !s.Valid() {
		panic(fmt.Sprintf("star: stem %d out of range", int(s)))
	}
	return dayStemInfos[s]
}

func DayStemInfos() []DayStemInfo {
	out := make([]DayStemInfo, len(dayStemInfos))
	copy(out, dayStemInfos[:])
	return out
}
