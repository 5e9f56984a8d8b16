package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oh-server/models/holiday"
)

// today is fixed so windows are deterministic.
var today = time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

// entries are deliberately out of date order to confirm the ascending sort.
func testEntries() []holiday.Entry {
	return []holiday.Entry{
		{Date: "2026-09-17", Name: "Far Holiday", CountryCode: "US", AffectsAll: true},
		{Date: "2026-08-29", Name: "Near Holiday", CountryCode: "US", AffectsAll: true},
		{Date: "2026-09-02", Name: "Middle Holiday", CountryCode: "US", AffectsAll: false},
		{Date: "2026-09-01", Name: "Fete Nationale", CountryCode: "fr", AffectsAll: true},
	}
}

func TestCalendar_Upcoming_WindowAndOrder(t *testing.T) {
	cal := New(testEntries())

	// 14-day window ends 2026-09-11: the 20-day holiday stays out.
	got := cal.Upcoming("US", 14, today)

	if len(got) != 2 {
		t.Fatalf("Expected 2 holidays, got %d", len(got))
	}
	assert.Equal(t, "Near Holiday", got[0].Name)
	assert.Equal(t, "Middle Holiday", got[1].Name)
}

func TestCalendar_Upcoming_InclusiveBounds(t *testing.T) {
	cal := New([]holiday.Entry{
		{Date: "2026-08-28", Name: "Today Holiday", CountryCode: "US"},
		{Date: "2026-09-11", Name: "Edge Holiday", CountryCode: "US"},
		{Date: "2026-09-12", Name: "Past Edge", CountryCode: "US"},
		{Date: "2026-08-27", Name: "Yesterday", CountryCode: "US"},
	})

	got := cal.Upcoming("US", 14, today)

	if len(got) != 2 {
		t.Fatalf("Expected 2 holidays, got %d", len(got))
	}
	assert.Equal(t, "Today Holiday", got[0].Name)
	assert.Equal(t, "Edge Holiday", got[1].Name)
}

func TestCalendar_Upcoming_UnknownCountryIsEmpty(t *testing.T) {
	cal := New(testEntries())

	if got := cal.Upcoming("ZZ", 14, today); len(got) != 0 {
		t.Errorf("Expected empty result for unknown country, got %d entries", len(got))
	}
}

func TestCalendar_Upcoming_CountryCodeCaseInsensitive(t *testing.T) {
	cal := New(testEntries())

	got := cal.Upcoming("fr", 14, today)
	if len(got) != 1 || got[0].Name != "Fete Nationale" {
		t.Fatalf("Expected lowercase-stored country to match, got %+v", got)
	}
	got = cal.Upcoming("FR", 14, today)
	if len(got) != 1 {
		t.Fatalf("Expected uppercase query to match, got %d entries", len(got))
	}
}

func TestCalendar_New_SkipsBadDates(t *testing.T) {
	cal := New([]holiday.Entry{
		{Date: "not-a-date", Name: "Broken", CountryCode: "US"},
		{Date: "2026-08-30", Name: "Valid", CountryCode: "US"},
	})

	got := cal.Upcoming("US", 14, today)
	if len(got) != 1 || got[0].Name != "Valid" {
		t.Errorf("Expected only the valid entry, got %+v", got)
	}
}

func TestCalendar_NearestAdvisory_Phrasing(t *testing.T) {
	tests := []struct {
		name          string
		entry         holiday.Entry
		wantDaysUntil int
		wantMessage   string
	}{
		{
			name:          "holiday today with affects_all",
			entry:         holiday.Entry{Date: "2026-08-28", Name: "Big Day", CountryCode: "US", AffectsAll: true},
			wantDaysUntil: 0,
			wantMessage:   "Big Day is today. Most locations will be closed.",
		},
		{
			name:          "holiday tomorrow without affects_all",
			entry:         holiday.Entry{Date: "2026-08-29", Name: "Minor Day", CountryCode: "US", AffectsAll: false},
			wantDaysUntil: 1,
			wantMessage:   "Minor Day is tomorrow. Some locations may have reduced hours.",
		},
		{
			name:          "holiday in several days",
			entry:         holiday.Entry{Date: "2026-09-04", Name: "Festival", CountryCode: "US", AffectsAll: true},
			wantDaysUntil: 7,
			wantMessage:   "Festival is in 7 days. Most locations will be closed.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cal := New([]holiday.Entry{test.entry})

			adv, ok := cal.NearestAdvisory("US", 14, today)
			if !ok {
				t.Fatal("Expected an advisory, got none")
			}
			assert.Equal(t, test.wantDaysUntil, adv.DaysUntil)
			assert.Equal(t, test.wantMessage, adv.Message)
			assert.Equal(t, test.entry.Name, adv.Holiday.Name)
		})
	}
}

func TestCalendar_NearestAdvisory_NoneInWindow(t *testing.T) {
	cal := New([]holiday.Entry{
		{Date: "2026-12-25", Name: "Christmas Day", CountryCode: "US", AffectsAll: true},
	})

	if _, ok := cal.NearestAdvisory("US", 14, today); ok {
		t.Error("Expected no advisory for a holiday outside the window")
	}
}
