package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devang404/bangalore-house-price-predictor/internal/cache"
	"github.com/devang404/bangalore-house-price-predictor/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func stringCmd(val string, err error) *redis.StringCmd {
	cmd := redis.NewStringCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func statusCmd(err error) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	}
	return cmd
}

func TestGeocodeKey(t *testing.T) {
	require.Equal(t, "geocode:whitefield", geocodeKey("  Whitefield "))
	require.Equal(t, "geocode:electronic city", geocodeKey("Electronic City"))
}

func TestGetGeocode(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, "geocode:whitefield", key)
				return stringCmd(`{"lat":12.9698,"lon":77.75}`, nil)
			},
		}
		coords, err := GetGeocode(context.Background(), rdb, "Whitefield")
		require.NoError(t, err)
		require.NotNil(t, coords)
		require.Equal(t, 12.9698, coords.Lat)
		require.Equal(t, 77.75, coords.Lon)
	})

	t.Run("miss", func(t *testing.T) {
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, _ string) *redis.StringCmd {
				return stringCmd("", redis.Nil)
			},
		}
		coords, err := GetGeocode(context.Background(), rdb, "Whitefield")
		require.NoError(t, err)
		require.Nil(t, coords)
	})

	t.Run("transport err", func(t *testing.T) {
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, _ string) *redis.StringCmd {
				return stringCmd("", errors.New("connection refused"))
			},
		}
		_, err := GetGeocode(context.Background(), rdb, "Whitefield")
		require.Error(t, err)
	})

	t.Run("malformed value", func(t *testing.T) {
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, _ string) *redis.StringCmd {
				return stringCmd("not json", nil)
			},
		}
		_, err := GetGeocode(context.Background(), rdb, "Whitefield")
		require.Error(t, err)
	})
}

func TestPutGeocode(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		rdb := &cache.FakeCache{
			SetFn: func(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
				require.Equal(t, "geocode:whitefield", key)
				require.JSONEq(t, `{"lat":12.9698,"lon":77.75}`, string(value.([]byte)))
				require.Equal(t, time.Duration(0), ttl)
				return statusCmd(nil)
			},
		}
		err := PutGeocode(context.Background(), rdb, " Whitefield ", model.Coordinates{Lat: 12.9698, Lon: 77.75})
		require.NoError(t, err)
	})

	t.Run("set err", func(t *testing.T) {
		rdb := &cache.FakeCache{
			SetFn: func(_ context.Context, _ string, _ any, _ time.Duration) *redis.StatusCmd {
				return statusCmd(errors.New("readonly replica"))
			},
		}
		err := PutGeocode(context.Background(), rdb, "Whitefield", model.Coordinates{})
		require.Error(t, err)
	})
}
