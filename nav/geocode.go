// Package nav talks to the routing provider: destination geocoding and
// turn-by-turn walking directions.
package nav

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
)

var (
	// BaseURL is a var so tests can point at a local server.
	BaseURL = "https://maps.googleapis.com"

	Key = os.Getenv("GOOGLE_MAPS_API_KEY")

	// City scopes every lookup to the service area.
	City = cityContext()
)

func cityContext() string {
	if v := os.Getenv("ASSIST_CITY"); len(v) > 0 {
		return v
	}
	return "San Miguel de Tucumán, Tucumán, Argentina"
}

// Geocode resolves a destination name to coordinates within the service
// city. Results are cached; the retry after a missing-location response
// hits the cache instead of the provider.
func Geocode(ctx context.Context, name string) (float64, float64, error) {
	if lat, lon, ok := geoCache.get(name); ok {
		return lat, lon, nil
	}

	u := fmt.Sprintf("%s/maps/api/geocode/json?address=%s&key=%s",
		BaseURL, url.QueryEscape(name+", "+City), url.QueryEscape(Key))

	resp, err := GeocodeGet(ctx, u)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding failed: %v", err)
	}
	defer resp.Body.Close()

	var data struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, 0, fmt.Errorf("decode failed: %v", err)
	}

	if data.Status != "OK" || len(data.Results) == 0 {
		return 0, 0, fmt.Errorf("no location for %q", name)
	}

	loc := data.Results[0].Geometry.Location
	geoCache.put(name, loc.Lat, loc.Lng)
	return loc.Lat, loc.Lng, nil
}
