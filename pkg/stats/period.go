package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/zerowasteroad/zerowaste/internal/utils"
)

type Period string

const (
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

var Periods = []Period{Week, Month, Year}

func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Week, Month, Year:
		return p, nil
	}
	return "", fmt.Errorf("unknown stats period %q", s)
}

// Range returns the inclusive window ending at now: the last seven calendar
// days for Week, one calendar month back for Month and one year back for
// Year. Month and year steps clamp to the end of shorter months.
func (p Period) Range(now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	switch p {
	case Week:
		return utils.StartOfDay(now, loc).AddDate(0, 0, -6), now, nil
	case Month:
		return addMonthsClamped(now, -1, loc), now, nil
	case Year:
		return addMonthsClamped(now, -12, loc), now, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown stats period %q", string(p))
}

func addMonthsClamped(t time.Time, months int, loc *time.Location) time.Time {
	local := t.In(loc)
	firstOfTarget := time.Date(local.Year(), local.Month()+time.Month(months), 1, 0, 0, 0, 0, loc)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := min(local.Day(), lastDay)
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), loc)
}
