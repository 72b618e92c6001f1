package calendar

import "github.com/pkg/errors"

//go:generate go run ../../test/gen_solarterm -out solarterm_data.go

var termNames = [12]string{"小寒", "立春", "啓蟄", "清明", "立夏", "芒種", "小暑", "立秋", "白露", "寒露", "立冬", "大雪"}

// Term 某年某个节的节入日
type Term struct {
	Month int    `json:"month"`
	Name  string `json:"name"`
	Day   int    `json:"day"`
}

// YearTerms 一年十二节
type YearTerms struct {
	Year  int    `json:"year"`
	Terms []Term `json:"terms"`
}

// Range 节入表覆盖的年份
func Range() (int, int) {
	return MinYear, MaxYear
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return errors.Wrapf(ErrYearOutOfRange, "year %d not in %d..%d", year, MinYear, MaxYear)
	}
	return nil
}

func checkMonth(month int) error {
	if month < 1 || month > 12 {
		return errors.Wrapf(ErrMonthOutOfRange, "month %d", month)
	}
	return nil
}

// TermDay 公历 month 月的节入日，表外年份直接报错不外推
func TermDay(year, month int) (int, error) {
	if err := checkYear(year); err != nil {
		return 0, err
	}
	if err := checkMonth(month); err != nil {
		return 0, err
	}
	return int(termDays[year-MinYear][month-1]), nil
}

// TermName 公历 month 月所含的节名
func TermName(month int) (string, error) {
	if err := checkMonth(month); err != nil {
		return "", err
	}
	return termNames[month-1], nil
}

// TermsOf 某一年的十二节
func TermsOf(year int) (YearTerms, error) {
	if err := checkYear(year); err != nil {
		return YearTerms{}, err
	}
	yt := YearTerms{Year: year, Terms: make([]Term, 0, 12)}
	for m := 1; m <= 12; m++ {
		yt.Terms = append(yt.Terms, Term{Month: m, Name: termNames[m-1], Day: int(termDays[year-MinYear][m-1])})
	}
	return yt, nil
}

// Years 按年份升序列出 [from, to] 的节入表，两端会被裁到表的范围内
func Years(from, to int) []YearTerms {
	if from < MinYear {
		from = MinYear
	}
	if to > MaxYear {
		to = MaxYear
	}
	var out []YearTerms
	for y := from; y <= to; y++ {
		yt, _ := TermsOf(y)
		out = append(out, yt)
	}
	return out
}
