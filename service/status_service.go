package services

import (
	"time"

	"oh-server/dao/redis"
	"oh-server/hours"
	"oh-server/models"
	"oh-server/models/location"
)

// StatusService combines the location catalog with the status evaluator.
type StatusService struct {
	locationDao *redis.RedisLocationDAO
	evaluator   *hours.Evaluator
}

// NewStatusService constructs a new StatusService with its dependencies.
func NewStatusService(
	locationDao *redis.RedisLocationDAO,
	evaluator *hours.Evaluator) *StatusService {

	return &StatusService{
		locationDao: locationDao,
		evaluator:   evaluator,
	}
}

func (ss *StatusService) GetNearbyLocations(lat, lon, radius float64) ([]location.Location, error) {
	return ss.locationDao.GetNearbyLocations(lat, lon, radius)
}

func (ss *StatusService) GetLocation(locationID string) (*location.Location, error) {
	return ss.locationDao.GetLocation(locationID)
}

// EvaluateLocation computes a location's open/closed status at the given
// instant. Never fails: bad timezones and malformed schedules come back as
// closed with no countdown.
func (ss *StatusService) EvaluateLocation(l location.Location, at time.Time) models.StatusResult {
	return ss.evaluator.Evaluate(l.WeeklySchedule, l.Timezone, l.AlwaysOpen, at)
}
