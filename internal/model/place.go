// File: internal/model/place.go
package model

// Coordinates is a geocoded point for a location name.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a point of interest near a query coordinate. DistanceM is nil
// when the distance to the query point could not be computed.
type Place struct {
	Name      string   `json:"name"`
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	Type      string   `json:"type"`
	DistanceM *float64 `json:"distance_m"`
}
