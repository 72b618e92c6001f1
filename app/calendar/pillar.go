package calendar

import (
	"fmt"
	"time"

	"sanmei/selflogic"
)

const (
	yearAnchor      = 1924 // 甲子年
	yearAnchorIndex = 0
	dayAnchorIndex  = 10 // 1900-01-01 甲戌日
)

var dayAnchor = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// 年干 -> 寅月的月干 (甲己之年丙作首)
var monthStemBase = [10]selflogic.Stem{
	selflogic.StemBing, selflogic.StemWu, selflogic.StemGeng, selflogic.StemRen, selflogic.StemJia,
	selflogic.StemBing, selflogic.StemWu, selflogic.StemGeng, selflogic.StemRen, selflogic.StemJia,
}

// Date 公历日期，合法性由调用方保证
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AddDays 按公历加减天数
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// YearPillar 以立春为界
func YearPillar(d Date) (selflogic.Pillar, error) {
	spring, err := TermDay(d.Year, 2)
	if err != nil {
		return selflogic.Pillar{}, err
	}
	year := d.Year
	if d.Month < 2 || (d.Month == 2 && d.Day < spring) {
		year--
	}
	return selflogic.PillarAt(yearAnchorIndex + year - yearAnchor), nil
}

// MonthPillar 以各月节入日为界
func MonthPillar(d Date) (selflogic.Pillar, error) {
	term, err := TermDay(d.Year, d.Month)
	if err != nil {
		return selflogic.Pillar{}, err
	}

	adjMonth, adjYear := d.Month, d.Year
	if d.Day < term {
		adjMonth--
		if adjMonth == 0 {
			adjMonth = 12
			adjYear--
		}
	}

	sanmeiMonth := adjMonth - 1
	if adjMonth == 1 {
		sanmeiMonth = 1
	}

	var yp selflogic.Pillar
	if adjMonth == 12 && d.Month == 1 {
		// 一月回退到上年十二月，用上一年的年干
		yp, err = YearPillar(Date{Year: adjYear, Month: 2, Day: 15})
	} else {
		yp, err = YearPillar(d)
	}
	if err != nil {
		return selflogic.Pillar{}, err
	}

	stem := selflogic.Stem((int(monthStemBase[yp.Stem]) + sanmeiMonth - 1) % 10)
	branch := selflogic.Branch((sanmeiMonth + 1) % 12)
	return selflogic.Pillar{Stem: stem, Branch: branch}, nil
}

// DayPillar 与节气无关
func DayPillar(d Date) selflogic.Pillar {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	days := int((t.Unix() - dayAnchor.Unix()) / 86400)
	return selflogic.PillarAt(dayAnchorIndex + days)
}

// DaysSinceTerm 节入后第几天(从 1 开始)，节入前按上月延续近似加 30 天
func DaysSinceTerm(d Date) (int, error) {
	term, err := TermDay(d.Year, d.Month)
	if err != nil {
		return 0, err
	}
	days := d.Day - term + 1
	if days <= 0 {
		days = d.Day + (30 - term) + 1
	}
	return days, nil
}

// Calculate 计算年月日三柱
func Calculate(d Date) (selflogic.Pillars, error) {
	yp, err := YearPillar(d)
	if err != nil {
		return selflogic.Pillars{}, err
	}
	mp, err := MonthPillar(d)
	if err != nil {
		return selflogic.Pillars{}, err
	}
	return selflogic.Pillars{Year: yp, Month: mp, Day: DayPillar(d)}, nil
}
