package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/devang404/bangalore-house-price-predictor/internal/cache"
	"github.com/devang404/bangalore-house-price-predictor/internal/model"

	"github.com/redis/go-redis/v9"
)

// geocodeKey normalizes a location name into its cache key: trimmed,
// lowercased, exact match only.
func geocodeKey(location string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(location))
}

// GetGeocode looks up cached coordinates for a location name. A cache miss
// returns (nil, nil); only a malformed cached value is an error.
func GetGeocode(ctx context.Context, rdb cache.Cache, location string) (*model.Coordinates, error) {
	raw, err := rdb.Get(ctx, geocodeKey(location)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetGeocode: %w", err)
	}
	var coords model.Coordinates
	if err := json.Unmarshal([]byte(raw), &coords); err != nil {
		return nil, fmt.Errorf("GetGeocode: %w", err)
	}
	return &coords, nil
}

// PutGeocode stores coordinates under the normalized key. Entries never
// expire; the cache is append-only.
func PutGeocode(ctx context.Context, rdb cache.Cache, location string, coords model.Coordinates) error {
	raw, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("PutGeocode: %w", err)
	}
	if err := rdb.Set(ctx, geocodeKey(location), raw, 0).Err(); err != nil {
		return fmt.Errorf("PutGeocode: %w", err)
	}
	return nil
}
