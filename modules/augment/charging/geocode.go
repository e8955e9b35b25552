package charging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// coordinates is a geographic point resolved from a place name.
type coordinates struct {
	Lat float64
	Lon float64
}

// nominatimResult is a single entry from the Nominatim search response.
// Nominatim returns coordinates as JSON strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// geocode resolves a place name to coordinates using Nominatim. Returns
// ok=false when the place is unknown; an error only for transport or
// decoding failures.
func (a *Augmenter) geocode(ctx context.Context, place string) (coordinates, bool, error) {
	query := url.Values{}
	query.Set("q", place)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.config.NominatimURL+"?"+query.Encode(), nil)
	if err != nil {
		return coordinates{}, false, fmt.Errorf("create geocode request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", a.config.UserAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return coordinates{}, false, fmt.Errorf("geocode %q: %w", place, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return coordinates{}, false, fmt.Errorf("geocode %q: unexpected status %d", place, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return coordinates{}, false, fmt.Errorf("decode geocode response for %q: %w", place, err)
	}
	if len(results) == 0 {
		return coordinates{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return coordinates{}, false, fmt.Errorf("parse latitude for %q: %w", place, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return coordinates{}, false, fmt.Errorf("parse longitude for %q: %w", place, err)
	}

	return coordinates{Lat: lat, Lon: lon}, true, nil
}
