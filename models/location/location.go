package location

import (
	"fmt"

	"oh-server/models/schedule"
)

// Location represents a physical location with its opening hours data.
type Location struct {
	LocationID      string  `json:"location_id"`
	LocationName    string  `json:"location_name"`
	LocationAddress string  `json:"location_address"`
	LocationLat     float64 `json:"location_lat"`
	LocationLon     float64 `json:"location_lng"`

	CountryCode string `json:"country_code"`
	Timezone    string `json:"timezone"` // IANA identifier, e.g. "America/New_York"
	AlwaysOpen  bool   `json:"always_open"`

	WeeklySchedule schedule.WeeklySchedule `json:"weekly_schedule"`
}

func (l *Location) ToString() string {
	return fmt.Sprintf("Location(name=%s, address=%s, tz=%s, lat=%f, lon=%f)",
		l.LocationName, l.LocationAddress, l.Timezone, l.LocationLat, l.LocationLon)
}
