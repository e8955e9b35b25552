package charging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// station is a charging station with the fields shown to the user.
type station struct {
	Name      string
	Address   string
	Connector []string
}

// poiResult mirrors the subset of the Open Charge Map POI response the
// formatter needs.
type poiResult struct {
	AddressInfo struct {
		Title        string `json:"Title"`
		AddressLine1 string `json:"AddressLine1"`
	} `json:"AddressInfo"`
	Connections []struct {
		ConnectionType struct {
			Title string `json:"Title"`
		} `json:"ConnectionType"`
	} `json:"Connections"`
}

// nearbyStations queries Open Charge Map for stations around the given
// point. A failed or empty lookup yields an empty slice; the caller renders
// that as "none found" for the route segment.
func (a *Augmenter) nearbyStations(ctx context.Context, point coordinates) ([]station, error) {
	query := url.Values{}
	query.Set("output", "json")
	query.Set("key", a.config.APIKey)
	query.Set("latitude", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(point.Lon, 'f', -1, 64))
	query.Set("distance", strconv.Itoa(a.config.RadiusKM))
	query.Set("distanceunit", "KM")
	query.Set("maxresults", strconv.Itoa(a.config.MaxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.config.StationsURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create stations request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stations lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stations lookup: unexpected status %d", resp.StatusCode)
	}

	var results []poiResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode stations response: %w", err)
	}

	stations := make([]station, 0, len(results))
	for _, r := range results {
		s := station{
			Name:    r.AddressInfo.Title,
			Address: r.AddressInfo.AddressLine1,
		}
		for _, conn := range r.Connections {
			title := conn.ConnectionType.Title
			if title == "" {
				title = "?"
			}
			s.Connector = append(s.Connector, title)
		}
		stations = append(stations, s)
	}
	return stations, nil
}
