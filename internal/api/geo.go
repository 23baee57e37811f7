package api

import "github.com/devang404/bangalore-house-price-predictor/internal/model"

// swagger:model api.CoordsResponse
type CoordsResponse struct {
	Lat float64 `json:"lat" example:"12.9716"`
	Lon float64 `json:"lon" example:"77.5946"`
}

// swagger:model api.LocationsResponse
type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// swagger:model api.PlacesResponse
type PlacesResponse struct {
	Places []model.Place `json:"places"`
}
