package schedule

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:30", 450, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
		{"", 0, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseClock(test.input)
			if test.wantErr {
				if err == nil {
					t.Errorf("ParseClock(%q) expected error, got %d", test.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) returned error: %v", test.input, err)
			}
			if got != test.want {
				t.Errorf("ParseClock(%q) = %d, want %d", test.input, got, test.want)
			}
		})
	}
}

func TestDaySchedule_Window(t *testing.T) {
	tests := []struct {
		name   string
		day    DaySchedule
		want   OpenWindow
		wantOk bool
	}{
		{
			name:   "regular same-day window",
			day:    DaySchedule{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "17:00"},
			want:   OpenWindow{OpenMin: 540, CloseMin: 1020},
			wantOk: true,
		},
		{
			name:   "midnight-spanning window keeps raw close minutes",
			day:    DaySchedule{DayOfWeek: 5, OpenTime: "22:00", CloseTime: "02:00", SpansMidnight: true},
			want:   OpenWindow{OpenMin: 1320, CloseMin: 120, SpansMidnight: true},
			wantOk: true,
		},
		{
			name:   "closed day has no window",
			day:    DaySchedule{DayOfWeek: 0, IsClosed: true, OpenTime: "09:00", CloseTime: "17:00"},
			wantOk: false,
		},
		{
			name:   "missing times are malformed",
			day:    DaySchedule{DayOfWeek: 2},
			wantOk: false,
		},
		{
			name:   "inverted same-day window is malformed",
			day:    DaySchedule{DayOfWeek: 3, OpenTime: "17:00", CloseTime: "09:00"},
			wantOk: false,
		},
		{
			name:   "zero-length window is malformed",
			day:    DaySchedule{DayOfWeek: 4, OpenTime: "09:00", CloseTime: "09:00"},
			wantOk: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := test.day.Window()
			if ok != test.wantOk {
				t.Fatalf("ok = %v, want %v", ok, test.wantOk)
			}
			if ok && got != test.want {
				t.Errorf("Window() = %+v, want %+v", got, test.want)
			}
		})
	}
}
