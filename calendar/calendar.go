package calendar

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"oh-server/models/holiday"
)

// Calendar is a read-only lookup over the static per-country holiday
// reference data. Built once at startup; lookups share no mutable state
// and are safe for concurrent use.
type Calendar struct {
	byCountry map[string][]entry
}

// entry pairs a holiday with its parsed calendar date so lookups never
// re-parse.
type entry struct {
	holiday holiday.Entry
	day     time.Time
}

// New builds a Calendar from raw holiday entries. Entries with unparseable
// dates are dropped with a log line; per-country lists are sorted ascending
// by date regardless of source order.
func New(entries []holiday.Entry) *Calendar {
	byCountry := make(map[string][]entry)
	for _, h := range entries {
		day, err := h.Day()
		if err != nil {
			log.Printf("[Calendar] Skipping holiday %q with bad date %q: %v", h.Name, h.Date, err)
			continue
		}
		cc := normalizeCountry(h.CountryCode)
		byCountry[cc] = append(byCountry[cc], entry{holiday: h, day: day})
	}

	for cc := range byCountry {
		es := byCountry[cc]
		sort.Slice(es, func(i, j int) bool { return es[i].day.Before(es[j].day) })
	}

	return &Calendar{byCountry: byCountry}
}

// Upcoming returns the country's holidays falling within
// [today, today+withinDays], both bounds inclusive, ascending by date.
// An unknown country code yields an empty result, not an error. The instant
// is reduced to its calendar date in its own zone before comparing.
func (c *Calendar) Upcoming(countryCode string, withinDays int, today time.Time) []holiday.Entry {
	es := c.byCountry[normalizeCountry(countryCode)]
	if len(es) == 0 {
		return nil
	}

	start := calendarDate(today)
	end := start.AddDate(0, 0, withinDays)

	var out []holiday.Entry
	for _, e := range es {
		if e.day.Before(start) || e.day.After(end) {
			continue
		}
		out = append(out, e.holiday)
	}
	return out
}

// Advisory is the rendering-ready form of the nearest upcoming holiday.
type Advisory struct {
	Holiday   holiday.Entry `json:"holiday"`
	DaysUntil int           `json:"days_until"`
	Message   string        `json:"message"`
}

// NearestAdvisory returns an advisory for the country's nearest holiday
// within the window, phrased as "today" / "tomorrow" / "in N days".
// AffectsAll holidays get the strong closed wording; the rest get the soft
// reduced-hours one. ok is false when no holiday falls inside the window.
func (c *Calendar) NearestAdvisory(countryCode string, withinDays int, today time.Time) (Advisory, bool) {
	upcoming := c.Upcoming(countryCode, withinDays, today)
	if len(upcoming) == 0 {
		return Advisory{}, false
	}

	nearest := upcoming[0]
	day, _ := nearest.Day()
	daysUntil := int(day.Sub(calendarDate(today)).Hours() / 24)

	var when string
	switch daysUntil {
	case 0:
		when = "today"
	case 1:
		when = "tomorrow"
	default:
		when = fmt.Sprintf("in %d days", daysUntil)
	}

	var msg string
	if nearest.AffectsAll {
		msg = fmt.Sprintf("%s is %s. Most locations will be closed.", nearest.Name, when)
	} else {
		msg = fmt.Sprintf("%s is %s. Some locations may have reduced hours.", nearest.Name, when)
	}

	return Advisory{Holiday: nearest, DaysUntil: daysUntil, Message: msg}, true
}

// calendarDate drops the time-of-day component, keeping the date the
// instant has in its own zone, re-anchored at midnight UTC to match parsed
// holiday dates.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalizeCountry(cc string) string {
	return strings.ToUpper(strings.TrimSpace(cc))
}
