package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Minutes in a local calendar day.
const MinutesPerDay = 24 * 60

// DaySchedule is the recurring opening window for one weekday.
// DayOfWeek uses 0=Sunday .. 6=Saturday. OpenTime/CloseTime are local
// 24-hour "HH:MM" strings and are only meaningful while IsClosed is false.
// SpansMidnight marks windows whose close time falls on the next calendar
// day (e.g. open 22:00, close 02:00).
type DaySchedule struct {
	DayOfWeek     int    `json:"day_of_week"`
	IsClosed      bool   `json:"is_closed"`
	OpenTime      string `json:"open_time,omitempty"`
	CloseTime     string `json:"close_time,omitempty"`
	SpansMidnight bool   `json:"spans_midnight,omitempty"`
}

// OpenWindow is a day's opening window in minutes since local midnight.
// CloseMin stays in the 0..1439 range even when the window spans midnight;
// consumers add a day when comparing across the boundary.
type OpenWindow struct {
	OpenMin       int
	CloseMin      int
	SpansMidnight bool
}

// Window returns the day's opening window. ok is false when the day is
// closed or the entry is malformed (unparseable times, or open >= close
// on a same-day window). Malformed entries evaluate as closed days; data
// quality is a concern for upstream validation, not this package.
func (d DaySchedule) Window() (OpenWindow, bool) {
	if d.IsClosed {
		return OpenWindow{}, false
	}

	openMin, err := ParseClock(d.OpenTime)
	if err != nil {
		return OpenWindow{}, false
	}
	closeMin, err := ParseClock(d.CloseTime)
	if err != nil {
		return OpenWindow{}, false
	}

	if !d.SpansMidnight && openMin >= closeMin {
		return OpenWindow{}, false
	}

	return OpenWindow{
		OpenMin:       openMin,
		CloseMin:      closeMin,
		SpansMidnight: d.SpansMidnight,
	}, true
}

// ParseClock converts a 24-hour "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in clock time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in clock time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hour*60 + minute, nil
}
