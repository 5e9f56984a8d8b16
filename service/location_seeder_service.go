package services

import (
	"log"
	"time"

	"oh-server/dao/redis"
	"oh-server/util"
)

// LocationSeederService loads the static location catalog into Redis and
// keeps re-seeding it on a fixed interval so catalog edits roll out without
// a restart.
type LocationSeederService struct {
	locationDao *redis.RedisLocationDAO
	catalogPath string
}

// NewLocationSeederService constructs a new seeder with its dependencies.
func NewLocationSeederService(
	locationDao *redis.RedisLocationDAO,
	catalogPath string,
) *LocationSeederService {
	return &LocationSeederService{
		locationDao: locationDao,
		catalogPath: catalogPath,
	}
}

// SeedLocations reads the catalog fixture and upserts every location.
// Individual upsert failures are logged and skipped; a failed catalog read
// is returned so startup can abort.
func (ls *LocationSeederService) SeedLocations() error {
	locations, err := util.ReadLocationsFromJSON(ls.catalogPath)
	if err != nil {
		log.Printf("[LocationSeederService] Failed to read catalog %s: %v", ls.catalogPath, err)
		return err
	}

	log.Printf("[LocationSeederService] Seeding %d locations", len(locations))
	for _, l := range locations {
		if err := ls.locationDao.UpsertLocation(l); err != nil {
			log.Printf("[LocationSeederService] Upsert failed for %s: %v", l.LocationID, err)
			continue
		}
	}
	log.Println("[LocationSeederService] Seeding completed")
	return nil
}

// StartPeriodicJob launches the background re-seed loop at the given interval.
func (ls *LocationSeederService) StartPeriodicJob(interval time.Duration) {
	go ls.startPeriodicJob(interval)
}

func (ls *LocationSeederService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[LocationSeederService] Running periodic catalog re-seed.")
		if err := ls.SeedLocations(); err != nil {
			log.Printf("[LocationSeederService] Re-seed returned error: %v", err)
		}
	}
}
