package util

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"sanmei/app/calendar"
)

var ErrBadDate = errors.New("util: date must be YYYY-MM-DD")

// ParseDate 解析 YYYY-MM-DD，不存在的日期(2月30日等)也视为错误
func ParseDate(s string) (calendar.Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return calendar.Date{}, errors.Wrapf(ErrBadDate, "%q", s)
	}
	return calendar.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}
