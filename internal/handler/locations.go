package handler

import (
	"net/http"

	"github.com/devang404/bangalore-house-price-predictor/internal/api"
	"github.com/devang404/bangalore-house-price-predictor/internal/estimator"

	"github.com/labstack/echo/v4"
)

// GetLocationsHandler lists the model's known location names.
// @Summary     List known locations
// @Description Returns the one-hot location names from the model artifact, for the location dropdown
// @Tags        predict
// @Produce     json
// @Success     200 {object} api.LocationsResponse
// @Router      /get_locations [get]
func GetLocationsHandler(art *estimator.Artifact) echo.HandlerFunc {
	return func(c echo.Context) error {
		locations := []string{}
		if art != nil && len(art.Columns) > estimator.NumFixedColumns {
			locations = append(locations, art.Locations()...)
		}
		return c.JSON(http.StatusOK, api.LocationsResponse{Locations: locations})
	}
}
