package nav

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// ExternalClient wraps http.Client with a bounded timeout and call logging
type ExternalClient struct {
	client     *http.Client
	defaultAPI string
}

// Global external client - use this for all external API calls
var External = &ExternalClient{
	client: &http.Client{
		Timeout: 15 * time.Second,
	},
	defaultAPI: "http",
}

// Get executes a GET with tracking. The context bounds the whole call on
// top of the client timeout.
func (c *ExternalClient) Get(ctx context.Context, apiName, url string) (*http.Response, error) {
	if apiName == "" {
		apiName = c.defaultAPI
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Lazarillo/1.0")

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	log.Printf("[http] %s GET %s (%dms)", apiName, truncateURL(url), duration.Milliseconds())

	if err != nil {
		return nil, err
	}

	if resp.StatusCode == 429 {
		resp.Body.Close()
		return nil, fmt.Errorf("%s rate limited (429)", apiName)
	}

	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("%s returned HTTP %d", apiName, resp.StatusCode)
	}

	return resp, nil
}

func truncateURL(url string) string {
	if len(url) > 80 {
		return url[:77] + "..."
	}
	return url
}

// GeocodeGet makes a geocoding API call
func GeocodeGet(ctx context.Context, url string) (*http.Response, error) {
	return External.Get(ctx, "geocode", url)
}

// DirectionsGet makes a directions API call
func DirectionsGet(ctx context.Context, url string) (*http.Response, error) {
	return External.Get(ctx, "directions", url)
}
