package handler

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/devang404/bangalore-house-price-predictor/internal/api"
	"github.com/devang404/bangalore-house-price-predictor/internal/cache"
	"github.com/devang404/bangalore-house-price-predictor/internal/model"
	"github.com/devang404/bangalore-house-price-predictor/internal/store"
	"github.com/devang404/bangalore-house-price-predictor/internal/worker"

	"github.com/labstack/echo/v4"
)

// Geocoder resolves a place name to coordinates. *osm.NominatimClient
// implements it; tests pass a stub.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (lat, lon float64, ok bool)
}

// GetLocationCoordsHandler resolves a location name to coordinates: cache
// first, external geocoder on miss, write-through on success.
// @Summary     Geocode a location name
// @Description Checks the local cache, then the external geocoding API; new results are persisted for future lookups
// @Tags        geo
// @Produce     json
// @Param       location query string true "Location name"
// @Success     200 {object} api.CoordsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /get_location_coords [get]
func GetLocationCoordsHandler(rdb cache.Cache, geocoder Geocoder, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		location := strings.TrimSpace(c.QueryParam("location"))
		if location == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Location not provided"})
		}

		coords, err := store.GetGeocode(c.Request().Context(), rdb, location)
		if err != nil {
			// Cache trouble is a miss, not a failure.
			log.Printf("[geocode] cache lookup failed for %q: %v", location, err)
		}
		if coords != nil {
			return c.JSON(http.StatusOK, api.CoordsResponse{Lat: coords.Lat, Lon: coords.Lon})
		}

		lat, lon, ok := geocoder.Geocode(c.Request().Context(), location)
		if !ok {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Coordinates not found"})
		}

		wp.Submit(func() {
			if err := store.PutGeocode(context.Background(), rdb, location, model.Coordinates{Lat: lat, Lon: lon}); err != nil {
				log.Printf("[geocode] failed to persist %q: %v", location, err)
			}
		})

		return c.JSON(http.StatusOK, api.CoordsResponse{Lat: lat, Lon: lon})
	}
}
