package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"

	"oh-server/models/holiday"
	"oh-server/models/location"
	"oh-server/models/schedule"
)

// ReadLocationsFromJSON loads the static location catalog from JSON on disk.
// Each location's weekly schedule is re-indexed by day_of_week so fixtures
// may list days in any order; catalogs that cannot be re-indexed (duplicate
// or missing days) are kept as-is with a warning, and malformed days simply
// evaluate as closed.
func ReadLocationsFromJSON(filePath string) ([]location.Location, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var locations []location.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal locations: %w", err)
	}

	for i := range locations {
		l := &locations[i]
		reindexed, err := schedule.NewWeeklySchedule(l.WeeklySchedule[:])
		if err != nil {
			log.Printf("[Util] Keeping raw schedule for location %s: %v", l.LocationID, err)
			continue
		}
		l.WeeklySchedule = reindexed
	}
	return locations, nil
}

// ReadHolidaysFromJSON loads the static holiday reference data from JSON on disk.
func ReadHolidaysFromJSON(filePath string) ([]holiday.Entry, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var entries []holiday.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal holidays: %w", err)
	}
	return entries, nil
}
