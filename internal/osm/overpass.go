package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "Bangalore Property App/1.0"

// Element is one Overpass result. Nodes carry lat/lon directly; ways and
// relations carry a representative center point instead.
type Element struct {
	Type   string            `json:"type"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *ElementCenter    `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type ElementCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassResponse struct {
	Elements []Element `json:"elements"`
}

// OverpassClient queries a sequence of capability-equivalent Overpass
// mirrors in order until one returns a non-empty result set.
type OverpassClient struct {
	Endpoints []string
	HTTP      *http.Client
}

// NewOverpassClient builds a client over the given mirror list with the
// standard per-call timeout.
func NewOverpassClient(endpoints []string) *OverpassClient {
	return &OverpassClient{
		Endpoints: endpoints,
		HTTP:      &http.Client{Timeout: 30 * time.Second},
	}
}

// BuildQuery renders the Overpass QL query: nodes, ways and relations within
// the radius matching any of the category's tag filters.
func BuildQuery(radius int, lat, lon float64, filters []string) string {
	var parts strings.Builder
	for _, f := range filters {
		inner := strings.TrimSpace(f)
		inner = strings.TrimPrefix(inner, "[")
		inner = strings.TrimSuffix(inner, "]")
		for _, kind := range []string{"node", "way", "relation"} {
			fmt.Fprintf(&parts, "%s(around:%d,%f,%f)[%s];", kind, radius, lat, lon, inner)
		}
	}
	return fmt.Sprintf("[out:json][timeout:60];(%s)\nout center qt;", parts.String())
}

// Query posts the query to each mirror in turn, returning the first
// non-empty element set. Mirror failures are logged and skipped; when every
// mirror fails or comes back empty, an empty slice is returned.
func (c *OverpassClient) Query(ctx context.Context, query string) []Element {
	for _, endpoint := range c.Endpoints {
		elements, err := c.queryOne(ctx, endpoint, query)
		if err != nil {
			log.Printf("[osm] overpass endpoint %s failed: %v", endpoint, err)
			continue
		}
		if len(elements) > 0 {
			return elements
		}
	}
	return nil
}

func (c *OverpassClient) queryOne(ctx context.Context, endpoint, query string) ([]Element, error) {
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return parsed.Elements, nil
}
