package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// NominatimClient wraps the Nominatim search API for geocoding and for the
// keyword-based nearby-places fallback.
type NominatimClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewNominatimClient builds a client against the given search endpoint.
func NewNominatimClient(baseURL string) *NominatimClient {
	return &NominatimClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{},
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a place name to coordinates, taking the first result.
// A miss or any transport failure returns false.
func (c *NominatimClient) Geocode(ctx context.Context, name string) (lat, lon float64, ok bool) {
	params := url.Values{
		"q":      {name},
		"format": {"json"},
	}
	results, err := c.search(ctx, params, 5*time.Second)
	if err != nil || len(results) == 0 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// SearchNearby runs a keyword search bounded to a viewbox derived from the
// radius; when the bounded search yields nothing it retries unbounded to
// increase recall.
func (c *NominatimClient) SearchNearby(ctx context.Context, lat, lon float64, radius int, keyword string) ([]nominatimResult, error) {
	// Rough conversion from meters to degrees.
	delta := float64(radius) / 111000.0
	viewbox := fmt.Sprintf("%f,%f,%f,%f", lon-delta, lat+delta, lon+delta, lat-delta)

	params := url.Values{
		"q":       {keyword},
		"format":  {"json"},
		"limit":   {"50"},
		"viewbox": {viewbox},
		"bounded": {"1"},
	}
	results, err := c.search(ctx, params, 20*time.Second)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		return results, nil
	}

	params = url.Values{
		"q":      {keyword},
		"format": {"json"},
		"limit":  {"50"},
	}
	return c.search(ctx, params, 20*time.Second)
}

func (c *NominatimClient) search(ctx context.Context, params url.Values, timeout time.Duration) ([]nominatimResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	return results, nil
}
