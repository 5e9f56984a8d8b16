package hours

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimezone signals an unresolvable IANA timezone identifier.
var ErrInvalidTimezone = errors.New("invalid timezone")

// WallClock converts an absolute instant into local wall-clock components
// for a given IANA timezone: weekday (0=Sunday .. 6=Saturday) and minutes
// since local midnight (0..1439).
type WallClock interface {
	Resolve(instant time.Time, timezone string) (weekday int, minutesSinceMidnight int, err error)
}

// SystemWallClock resolves wall-clock time through the system timezone
// database. Pure given its inputs; the instant is always passed in.
type SystemWallClock struct{}

// NewSystemWallClock returns a resolver backed by time.LoadLocation.
func NewSystemWallClock() *SystemWallClock {
	return &SystemWallClock{}
}

func (c *SystemWallClock) Resolve(instant time.Time, timezone string) (int, int, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}

	local := instant.In(loc)
	weekday := int(local.Weekday())
	minutes := local.Hour()*60 + local.Minute()
	return weekday, minutes, nil
}
