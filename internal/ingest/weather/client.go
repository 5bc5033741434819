package weather

import (
	"context"
	"net/url"

	"github.com/fortuna/dugout/internal/ingest"
)

const (
	BaseURL  = "https://api.openweathermap.org/data/2.5"
	Provider = "openweathermap"
)

// Current is the subset of the /weather response we read.
type Current struct {
	Name string `json:"name"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Client wraps the OpenWeatherMap current-weather endpoint.
type Client struct {
	http       *ingest.Client
	configured bool
}

// New creates a weather client. An empty apiKey yields an unconfigured client.
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	client := ingest.New(Provider, baseURL)
	client.SetQueryParam("appid", apiKey)
	return &Client{http: client, configured: apiKey != ""}
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.configured
}

// FetchCurrent fetches current conditions for a city in metric units.
func (c *Client) FetchCurrent(ctx context.Context, city string) (*Current, error) {
	params := url.Values{"q": {city}, "units": {"metric"}}
	var resp Current
	if err := c.http.Get(ctx, "/weather", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
