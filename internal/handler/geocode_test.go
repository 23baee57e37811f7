package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devang404/bangalore-house-price-predictor/internal/cache"
	"github.com/devang404/bangalore-house-price-predictor/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// stubGeocoder returns fixed coordinates and records whether it was called.
type stubGeocoder struct {
	lat, lon float64
	ok       bool
	called   bool
}

func (s *stubGeocoder) Geocode(_ context.Context, _ string) (float64, float64, bool) {
	s.called = true
	return s.lat, s.lon, s.ok
}

// syncPool runs submitted tasks inline so tests can assert on their effects.
type syncPool struct{}

func (syncPool) Submit(t worker.Task) { t() }
func (syncPool) Stop()                {}

func getCoords(location string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	target := "/get_location_coords"
	if location != "" {
		target += "?location=" + location
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func cachedValue(val string, err error) *redis.StringCmd {
	cmd := redis.NewStringCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func TestGetLocationCoordsHandler(t *testing.T) {
	t.Run("missing location", func(t *testing.T) {
		c, rec := getCoords("")
		h := GetLocationCoordsHandler(&cache.FakeCache{}, &stubGeocoder{}, syncPool{})

		require.NoError(t, h(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Location not provided"}`, rec.Body.String())
	})

	t.Run("cache hit skips geocoder", func(t *testing.T) {
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, "geocode:whitefield", key)
				return cachedValue(`{"lat":12.9698,"lon":77.75}`, nil)
			},
		}
		geocoder := &stubGeocoder{}
		c, rec := getCoords("Whitefield")

		require.NoError(t, GetLocationCoordsHandler(rdb, geocoder, syncPool{})(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"lat":12.9698,"lon":77.75}`, rec.Body.String())
		require.False(t, geocoder.called)
	})

	t.Run("cache miss resolves and persists", func(t *testing.T) {
		var persistedKey string
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, _ string) *redis.StringCmd {
				return cachedValue("", redis.Nil)
			},
			SetFn: func(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
				persistedKey = key
				require.JSONEq(t, `{"lat":12.9698,"lon":77.75}`, string(value.([]byte)))
				return redis.NewStatusCmd(context.Background())
			},
		}
		geocoder := &stubGeocoder{lat: 12.9698, lon: 77.75, ok: true}
		c, rec := getCoords("Whitefield")

		require.NoError(t, GetLocationCoordsHandler(rdb, geocoder, syncPool{})(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"lat":12.9698,"lon":77.75}`, rec.Body.String())
		require.True(t, geocoder.called)
		require.Equal(t, "geocode:whitefield", persistedKey)
	})

	t.Run("cache error treated as miss", func(t *testing.T) {
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, _ string) *redis.StringCmd {
				return cachedValue("", errors.New("connection refused"))
			},
			SetFn: func(_ context.Context, _ string, _ any, _ time.Duration) *redis.StatusCmd {
				return redis.NewStatusCmd(context.Background())
			},
		}
		geocoder := &stubGeocoder{lat: 1, lon: 2, ok: true}
		c, rec := getCoords("Whitefield")

		require.NoError(t, GetLocationCoordsHandler(rdb, geocoder, syncPool{})(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, geocoder.called)
	})

	t.Run("geocoder miss", func(t *testing.T) {
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, _ string) *redis.StringCmd {
				return cachedValue("", redis.Nil)
			},
		}
		c, rec := getCoords("nowhere")

		require.NoError(t, GetLocationCoordsHandler(rdb, &stubGeocoder{}, syncPool{})(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"Coordinates not found"}`, rec.Body.String())
	})
}
