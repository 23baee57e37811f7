package osm

import (
	"fmt"
	"strings"
)

// CategoryFilters maps a place-type keyword to the Overpass tag filters it
// expands to, case-insensitively. The four named categories get curated
// sets; anything else falls back to generic single-tag filters built from
// the keyword.
func CategoryFilters(placeType string) []string {
	switch strings.ToLower(placeType) {
	case "school":
		return []string{
			`amenity~"school|college|university|kindergarten"`,
			`building~"school|college|university|education"`,
			`education=*`,
		}
	case "hospital":
		return []string{
			`amenity~"hospital|clinic|doctors|healthcare"`,
			`healthcare=*`,
			`medical=*`,
			`building=hospital`,
			`amenity=pharmacy`,
			`shop=pharmacy`,
		}
	case "restaurant":
		return []string{
			`amenity~"restaurant|cafe|fast_food|food_court"`,
			`cuisine=*`,
			`shop~"food|bakery"`,
		}
	case "mall":
		return []string{
			`shop~"mall|department_store|supermarket"`,
			`amenity=marketplace`,
			`building=retail`,
			`building=commercial`,
		}
	default:
		keyword := strings.ToLower(placeType)
		return []string{
			fmt.Sprintf("amenity=%s", keyword),
			fmt.Sprintf("building=%s", keyword),
			fmt.Sprintf("shop=%s", keyword),
		}
	}
}

// searchKeyword maps a place type to a more search-friendly Nominatim
// keyword, case-insensitively.
func searchKeyword(placeType string) string {
	switch keyword := strings.ToLower(placeType); keyword {
	case "hospital":
		return "healthcare"
	case "restaurant":
		return "food"
	case "mall":
		return "shop"
	default:
		return keyword
	}
}
