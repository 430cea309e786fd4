package account

import (
	"fmt"
	"strings"
	"time"
)

// Countdown is a calendar decomposition of the time remaining until a
// ban lifts. Each unit is floor-truncated: 2h30m remaining reports
// 2 hours, 30 minutes.
type Countdown struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// CountdownUntil decomposes the span between now and until. Calendar
// units come first so that month-length differences are respected: one
// month from Jan 31 is Feb 28, not 30 days.
func CountdownUntil(until, now time.Time) Countdown {
	if !until.After(now) {
		return Countdown{}
	}

	var c Countdown

	c.Years = until.Year() - now.Year()
	if c.Years > 0 && now.AddDate(c.Years, 0, 0).After(until) {
		c.Years--
	}
	cursor := now.AddDate(c.Years, 0, 0)

	for cursor.AddDate(0, c.Months+1, 0).Compare(until) <= 0 {
		c.Months++
	}
	cursor = cursor.AddDate(0, c.Months, 0)

	for cursor.AddDate(0, 0, c.Days+1).Compare(until) <= 0 {
		c.Days++
	}
	cursor = cursor.AddDate(0, 0, c.Days)

	rest := until.Sub(cursor)
	c.Hours = int(rest / time.Hour)
	rest -= time.Duration(c.Hours) * time.Hour
	c.Minutes = int(rest / time.Minute)
	rest -= time.Duration(c.Minutes) * time.Minute
	c.Seconds = int(rest / time.Second)

	return c
}

// String renders the non-zero units, largest first, like
// "1 year, 2 months, 5 hours".
func (c Countdown) String() string {
	parts := make([]string, 0, 6)
	appendUnit := func(n int, unit string) {
		if n == 0 {
			return
		}
		if n == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", unit))
			return
		}
		parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
	}

	appendUnit(c.Years, "year")
	appendUnit(c.Months, "month")
	appendUnit(c.Days, "day")
	appendUnit(c.Hours, "hour")
	appendUnit(c.Minutes, "minute")
	appendUnit(c.Seconds, "second")

	if len(parts) == 0 {
		return "less than a second"
	}
	return strings.Join(parts, ", ")
}
