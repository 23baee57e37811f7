package osm

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/devang404/bangalore-house-price-predictor/internal/model"
)

// maxPlaces caps the result list; discovery order decides which entries
// survive the cap.
const maxPlaces = 50

// minPrimaryResults is the threshold below which the Nominatim fallback
// search kicks in.
const minPrimaryResults = 5

// Finder combines the primary Overpass source with the Nominatim fallback.
type Finder struct {
	Overpass  *OverpassClient
	Nominatim *NominatimClient
}

// Nearby returns up to 50 deduplicated points of interest around the query
// coordinate. Source failures never surface as errors; the worst case is an
// empty slice.
func (f *Finder) Nearby(ctx context.Context, lat, lon float64, placeType string, radius int) []model.Place {
	query := BuildQuery(radius, lat, lon, CategoryFilters(placeType))
	elements := f.Overpass.Query(ctx, query)

	places := Dedup(ShapeElements(elements, lat, lon, placeType))

	if len(places) < minPrimaryResults {
		results, err := f.Nominatim.SearchNearby(ctx, lat, lon, radius, searchKeyword(placeType))
		if err != nil {
			log.Printf("[osm] nominatim fallback failed: %v", err)
			return places
		}
		places = Dedup(append(places, shapeSearchResults(results, lat, lon, placeType)...))
	}
	return places
}

// ShapeElements turns raw Overpass elements into places: resolves a
// representative point, derives a display name from a priority-ordered tag
// set, and computes the distance to the query point. Elements with no
// resolvable point are skipped.
func ShapeElements(elements []Element, lat, lon float64, placeType string) []model.Place {
	places := make([]model.Place, 0, len(elements))
	for _, el := range elements {
		var pLat, pLon float64
		switch {
		case el.Lat != nil && el.Lon != nil:
			pLat, pLon = *el.Lat, *el.Lon
		case el.Center != nil:
			pLat, pLon = el.Center.Lat, el.Center.Lon
		default:
			continue
		}

		name := displayName(el.Tags, placeType)
		if detail := tagDetail(el.Tags); detail != "" {
			name = fmt.Sprintf("%s (%s)", name, detail)
		}

		dist := round2(HaversineMeters(lat, lon, pLat, pLon))
		places = append(places, model.Place{
			Name:      name,
			Lat:       pLat,
			Lon:       pLon,
			Type:      placeType,
			DistanceM: &dist,
		})
	}
	return places
}

func shapeSearchResults(results []nominatimResult, lat, lon float64, placeType string) []model.Place {
	places := make([]model.Place, 0, len(results))
	for _, r := range results {
		pLat, errLat := parseFloat(r.Lat)
		pLon, errLon := parseFloat(r.Lon)
		if errLat != nil || errLon != nil {
			continue
		}

		// Keep the leading segment of the display name, not the full address.
		name := strings.TrimSpace(strings.SplitN(r.DisplayName, ",", 2)[0])
		if name == "" {
			name = "Unnamed " + titleCase(placeType)
		}

		dist := round2(HaversineMeters(lat, lon, pLat, pLon))
		places = append(places, model.Place{
			Name:      name,
			Lat:       pLat,
			Lon:       pLon,
			Type:      placeType,
			DistanceM: &dist,
		})
	}
	return places
}

// displayName picks the first available of name, operator, brand,
// healthcare, amenity, else a generated label.
func displayName(tags map[string]string, placeType string) string {
	for _, key := range []string{"name", "operator", "brand", "healthcare", "amenity"} {
		if v := tags[key]; v != "" {
			return v
		}
	}
	return "Unnamed " + titleCase(placeType)
}

func tagDetail(tags map[string]string) string {
	var details []string
	for _, key := range []string{"healthcare", "amenity", "medical_system"} {
		if v := tags[key]; v != "" {
			details = append(details, v)
		}
	}
	return strings.Join(details, " - ")
}

// Dedup collapses places sharing the same (5-decimal lat, 5-decimal lon,
// name) tuple, keeping discovery order, capped at 50.
func Dedup(places []model.Place) []model.Place {
	seen := make(map[string]struct{}, len(places))
	out := make([]model.Place, 0, len(places))
	for _, p := range places {
		key := fmt.Sprintf("%.5f|%.5f|%s", p.Lat, p.Lon, p.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
		if len(out) >= maxPlaces {
			break
		}
	}
	return out
}

// SortPlaces orders by ascending distance (unknown distances last) or
// case-insensitively by name. Unrecognized keys leave discovery order
// untouched.
func SortPlaces(places []model.Place, sortBy string) {
	switch sortBy {
	case "name":
		sort.SliceStable(places, func(i, j int) bool {
			return strings.ToLower(places[i].Name) < strings.ToLower(places[j].Name)
		})
	case "distance", "":
		sort.SliceStable(places, func(i, j int) bool {
			di, dj := places[i].DistanceM, places[j].DistanceM
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
