package hours

import "time"

// MockWallClock returns canned wall-clock components regardless of the
// instant or timezone, for testing the evaluator in isolation.
type MockWallClock struct {
	Weekday int
	Minutes int
	Err     error
}

// NewMockWallClock initializes a new MockWallClock.
func NewMockWallClock(weekday, minutes int, err error) *MockWallClock {
	return &MockWallClock{
		Weekday: weekday,
		Minutes: minutes,
		Err:     err,
	}
}

func (c *MockWallClock) Resolve(instant time.Time, timezone string) (int, int, error) {
	if c.Err != nil {
		return 0, 0, c.Err
	}
	return c.Weekday, c.Minutes, nil
}
