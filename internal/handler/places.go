package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/devang404/bangalore-house-price-predictor/internal/api"
	"github.com/devang404/bangalore-house-price-predictor/internal/model"
	"github.com/devang404/bangalore-house-price-predictor/internal/osm"

	"github.com/labstack/echo/v4"
)

const (
	defaultRadiusM = 5000
	maxRadiusM     = 10000
)

// PlaceFinder searches for points of interest around a coordinate.
// *osm.Finder implements it; tests pass a stub.
type PlaceFinder interface {
	Nearby(ctx context.Context, lat, lon float64, placeType string, radius int) []model.Place
}

// GetNearbyPlacesHandler finds amenities near a coordinate.
// @Summary     Find nearby places
// @Description Queries map-data sources for points of interest near the given coordinate, deduplicated and sorted
// @Tags        geo
// @Produce     json
// @Param       lat    query number true  "Latitude"
// @Param       lon    query number true  "Longitude"
// @Param       type   query string false "Category keyword (default amenity)"
// @Param       radius query int    false "Radius in meters (default 5000, max 10000)"
// @Param       sort   query string false "Sort key: distance (default) or name"
// @Success     200 {object} api.PlacesResponse
// @Failure     400 {object} api.ErrorResponse
// @Router      /get_nearby_places [get]
func GetNearbyPlacesHandler(finder PlaceFinder) echo.HandlerFunc {
	return func(c echo.Context) error {
		lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
		lon, errLon := strconv.ParseFloat(c.QueryParam("lon"), 64)
		if errLat != nil || errLon != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid or missing lat/lon parameters"})
		}

		placeType := c.QueryParam("type")
		if placeType == "" {
			placeType = c.QueryParam("place_type")
		}
		if placeType == "" {
			placeType = "amenity"
		}

		radius := defaultRadiusM
		if raw := c.QueryParam("radius"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				radius = v
			}
		}
		if radius <= 0 {
			radius = defaultRadiusM
		}
		if radius > maxRadiusM {
			radius = maxRadiusM
		}

		sortBy := c.QueryParam("sort")
		if sortBy == "" {
			sortBy = "distance"
		}

		places := finder.Nearby(c.Request().Context(), lat, lon, placeType, radius)
		if places == nil {
			places = []model.Place{}
		}
		osm.SortPlaces(places, sortBy)

		return c.JSON(http.StatusOK, api.PlacesResponse{Places: places})
	}
}
