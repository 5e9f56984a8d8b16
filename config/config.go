package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const SERVER_LISTEN_ADDRESS = ":8080"

// Location seeder config
// Re-seeds the geo index from the static catalog twice a day.
const LOCATIONS_SEEDER_SCHEDULE_MINUTES = 60 * 12

// Holiday advisory config
// Only holidays within this many days feed the advisory banner.
const HOLIDAY_ADVISORY_WINDOW_DAYS = 14

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const LOCATIONS_CATALOG_RESOURCE = "locations.json"
const HOLIDAYS_RESOURCE = "holidays.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
