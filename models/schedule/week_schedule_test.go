package schedule

import "testing"

func sevenDays() []DaySchedule {
	days := make([]DaySchedule, 7)
	for i := range days {
		days[i] = DaySchedule{DayOfWeek: i, IsClosed: true}
	}
	return days
}

func TestNewWeeklySchedule_ReindexesOutOfOrderDays(t *testing.T) {
	days := sevenDays()
	days[0], days[6] = days[6], days[0]
	days[2].OpenTime = "10:00" // now carries day_of_week 2's entry

	ws, err := NewWeeklySchedule(days)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 0; i < 7; i++ {
		if ws[i].DayOfWeek != i {
			t.Errorf("slot %d holds day_of_week %d", i, ws[i].DayOfWeek)
		}
	}
	if err := ws.Validate(); err != nil {
		t.Errorf("Validate failed on reindexed schedule: %v", err)
	}
}

func TestNewWeeklySchedule_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]DaySchedule) []DaySchedule
	}{
		{
			name:   "too few days",
			mutate: func(d []DaySchedule) []DaySchedule { return d[:6] },
		},
		{
			name: "duplicate day leaves a gap",
			mutate: func(d []DaySchedule) []DaySchedule {
				d[3].DayOfWeek = 2
				return d
			},
		},
		{
			name: "day index out of range",
			mutate: func(d []DaySchedule) []DaySchedule {
				d[0].DayOfWeek = 7
				return d
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := NewWeeklySchedule(test.mutate(sevenDays())); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestWeeklySchedule_DayWrapsAround(t *testing.T) {
	ws, err := NewWeeklySchedule(sevenDays())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := ws.Day(-1).DayOfWeek; got != 6 {
		t.Errorf("Day(-1).DayOfWeek = %d, want 6", got)
	}
	if got := ws.Day(7).DayOfWeek; got != 0 {
		t.Errorf("Day(7).DayOfWeek = %d, want 0", got)
	}
	if got := ws.Day(13).DayOfWeek; got != 6 {
		t.Errorf("Day(13).DayOfWeek = %d, want 6", got)
	}
}
