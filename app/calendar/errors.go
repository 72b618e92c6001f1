package calendar

import "github.com/pkg/errors"

var (
	ErrYearOutOfRange  = errors.New("calendar: year outside solar term table")
	ErrMonthOutOfRange = errors.New("calendar: month must be within 1..12")
)
