package services

import (
	"time"

	"oh-server/calendar"
	"oh-server/config"
	"oh-server/models/holiday"
)

// HolidayService exposes the advisory holiday calendar to handlers.
// Advisory only: holiday data never overrides the schedule-computed status.
type HolidayService struct {
	calendar *calendar.Calendar
}

// NewHolidayService constructs a HolidayService over a built calendar.
func NewHolidayService(cal *calendar.Calendar) *HolidayService {
	return &HolidayService{calendar: cal}
}

// UpcomingHolidays returns the country's holidays within the next
// withinDays days, ascending by date.
func (hs *HolidayService) UpcomingHolidays(countryCode string, withinDays int, now time.Time) []holiday.Entry {
	return hs.calendar.Upcoming(countryCode, withinDays, now)
}

// NearestAdvisory returns the banner advisory for the country's nearest
// holiday inside the configured window, if any.
func (hs *HolidayService) NearestAdvisory(countryCode string, now time.Time) (calendar.Advisory, bool) {
	return hs.calendar.NearestAdvisory(countryCode, config.HOLIDAY_ADVISORY_WINDOW_DAYS, now)
}
