package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const userAgent = "dugout/1.0"

// UpstreamError reports a failed call to a third-party provider.
// Status is zero when the request never produced an HTTP response.
type UpstreamError struct {
	Provider string
	Status   int
	Message  string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Message)
}

// IsStatus reports whether err is an UpstreamError carrying the given HTTP status.
func IsStatus(err error, status int) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr) && upstreamErr.Status == status
}

// Client is the shared JSON-over-HTTP transport used by every provider.
type Client struct {
	provider   string
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	query      url.Values
}

// New creates a client for a provider rooted at baseURL.
func New(provider, baseURL string) *Client {
	return &Client{
		provider:   provider,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		headers:    make(map[string]string),
		query:      url.Values{},
	}
}

// SetHeader adds a header sent with every request.
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetQueryParam adds a query parameter sent with every request, typically an API key.
func (c *Client) SetQueryParam(key, value string) {
	c.query.Set(key, value)
}

// SetHTTPClient swaps the underlying http.Client.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// Get issues a GET to path with params and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	for key, values := range c.query {
		query[key] = values
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &UpstreamError{Provider: c.provider, Message: fmt.Sprintf("creating request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Str("provider", c.provider).Str("path", path).Err(err).Msg("upstream request failed")
		return &UpstreamError{Provider: c.provider, Message: fmt.Sprintf("making request: %v", err)}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("provider", c.provider).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("upstream request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &UpstreamError{
			Provider: c.provider,
			Status:   resp.StatusCode,
			Message:  truncate(strings.TrimSpace(string(body)), 200),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Provider: c.provider, Message: fmt.Sprintf("decoding response: %v", err)}
	}
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
