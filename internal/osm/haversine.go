// Package osm talks to external OpenStreetMap services: Overpass mirrors for
// point-of-interest queries and Nominatim for geocoding and keyword search.
// Every external failure is absorbed and degrades to "try the next source"
// or an empty result.
package osm

import "math"

// earthRadiusM is the mean Earth radius in meters.
const earthRadiusM = 6371000

// HaversineMeters returns the great-circle distance between two points on a
// spherical earth.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusM * c
}
