package youtube

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fortuna/dugout/internal/ingest"
)

const (
	BaseURL  = "https://www.googleapis.com/youtube/v3"
	Provider = "youtube"
)

type Thumbnail struct {
	URL string `json:"url"`
}

// SearchItem is one result of the /search endpoint.
type SearchItem struct {
	ID struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		PublishedAt string `json:"publishedAt"`
		Thumbnails  struct {
			Default Thumbnail `json:"default"`
			Medium  Thumbnail `json:"medium"`
			High    Thumbnail `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
}

type searchResponse struct {
	Items []SearchItem `json:"items"`
}

// Client wraps the YouTube Data API search endpoint.
type Client struct {
	http       *ingest.Client
	configured bool
}

// New creates a video search client. An empty apiKey yields an unconfigured client.
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	client := ingest.New(Provider, baseURL)
	client.SetQueryParam("key", apiKey)
	return &Client{http: client, configured: apiKey != ""}
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.configured
}

// SearchVideos runs a relevance-ordered, video-only search.
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int) ([]SearchItem, error) {
	params := url.Values{
		"part":       {"snippet"},
		"q":          {query},
		"type":       {"video"},
		"order":      {"relevance"},
		"maxResults": {strconv.Itoa(maxResults)},
	}
	var resp searchResponse
	if err := c.http.Get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
