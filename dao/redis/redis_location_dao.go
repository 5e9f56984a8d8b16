package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"oh-server/db"
	"oh-server/models/location"
)

const LOCATIONS_GEO_KEY_V1 = "locations_geo_v1"
const LOCATIONS_GEO_MEMBER_FORMAT_V1 = "locations_geo_place_v1:%s"

// RedisLocationDAO handles location catalog operations using Redis.
type RedisLocationDAO struct {
	client db.RedisClient
}

// NewRedisLocationDAO initializes a RedisLocationDAO with the Redis client.
func NewRedisLocationDAO(client db.RedisClient) *RedisLocationDAO {
	return &RedisLocationDAO{client: client}
}

// UpsertLocation stores the location as a geo member with its JSON record.
func (dao *RedisLocationDAO) UpsertLocation(l location.Location) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(LOCATIONS_GEO_MEMBER_FORMAT_V1, l.LocationID)
	return dao.client.AddLocationWithJSON(ctx, LOCATIONS_GEO_KEY_V1, memberKey, l.LocationLat, l.LocationLon, l)
}

// GetLocation retrieves a single location record by its ID. A missing ID
// yields (nil, nil) rather than an error.
func (dao *RedisLocationDAO) GetLocation(locationID string) (*location.Location, error) {
	key := fmt.Sprintf(LOCATIONS_GEO_MEMBER_FORMAT_V1, locationID)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "nil") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location from redis: %w", err)
	}
	var l location.Location
	if err := json.Unmarshal([]byte(str), &l); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location JSON: %w", err)
	}
	return &l, nil
}

// GetNearbyLocations retrieves locations within a given radius (in km).
func (dao *RedisLocationDAO) GetNearbyLocations(lat, lon, radius float64) ([]location.Location, error) {
	locationsJSON, err := dao.client.GetLocationsWithinRadius(LOCATIONS_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisLocationDAO] failed to get locations: %v", err)
	}

	locations := make([]location.Location, len(locationsJSON))
	for i, locationJSON := range locationsJSON {
		if err := json.Unmarshal([]byte(locationJSON), &locations[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal location JSON: %v", err)
		}
	}
	return locations, nil
}

// ListAllLocationIDs returns all location IDs present in the catalog.
func (dao *RedisLocationDAO) ListAllLocationIDs() ([]string, error) {
	pattern := fmt.Sprintf(LOCATIONS_GEO_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list location keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(LOCATIONS_GEO_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteLocation removes a location's record. The geo index entry is left
// behind; nearby queries skip members whose record key is gone.
func (dao *RedisLocationDAO) DeleteLocation(locationID string) error {
	key := fmt.Sprintf(LOCATIONS_GEO_MEMBER_FORMAT_V1, locationID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete location key %s: %w", key, err)
	}
	return nil
}
