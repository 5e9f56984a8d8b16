package schedule

import "fmt"

// WeeklySchedule holds exactly one DaySchedule per weekday, indexed by
// DayOfWeek (0=Sunday). Fixed-size so the "yesterday" lookup is a plain
// wraparound subtraction. Value semantics; the engine never mutates it.
type WeeklySchedule [7]DaySchedule

// NewWeeklySchedule places the given entries by DayOfWeek and rejects
// duplicates, gaps, and out-of-range day indexes.
func NewWeeklySchedule(days []DaySchedule) (WeeklySchedule, error) {
	var ws WeeklySchedule
	if len(days) != 7 {
		return ws, fmt.Errorf("weekly schedule needs 7 days, got %d", len(days))
	}

	seen := [7]bool{}
	for _, d := range days {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return ws, fmt.Errorf("day_of_week %d out of range", d.DayOfWeek)
		}
		if seen[d.DayOfWeek] {
			return ws, fmt.Errorf("duplicate day_of_week %d", d.DayOfWeek)
		}
		seen[d.DayOfWeek] = true
		ws[d.DayOfWeek] = d
	}
	return ws, nil
}

// Day returns the schedule for the given day index with cyclic wraparound,
// so Day(today-1) is always yesterday even when today is Sunday.
func (ws WeeklySchedule) Day(i int) DaySchedule {
	return ws[((i%7)+7)%7]
}

// Validate checks that each slot holds the entry for its own weekday.
// Catches fixtures whose entries were unmarshaled out of order.
func (ws WeeklySchedule) Validate() error {
	for i, d := range ws {
		if d.DayOfWeek != i {
			return fmt.Errorf("slot %d holds day_of_week %d", i, d.DayOfWeek)
		}
	}
	return nil
}
