package news

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/fortuna/dugout/internal/ingest"
)

const (
	BaseURL  = "https://newsapi.org/v2"
	Provider = "newsapi"

	apiKeyHeader = "X-Api-Key"
)

// Domains is the fixed set of sports outlets queried for baseball coverage.
var Domains = []string{
	"espn.com",
	"mlb.com",
	"cbssports.com",
	"foxsports.com",
	"nbcsports.com",
	"si.com",
	"bleacherreport.com",
	"theathletic.com",
	"sports.yahoo.com",
	"usatoday.com",
}

// Article is one entry of the /everything response.
type Article struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

type everythingResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Client wraps the NewsAPI /everything endpoint.
type Client struct {
	http       *ingest.Client
	configured bool
}

// New creates a news client. An empty apiKey yields an unconfigured client.
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	client := ingest.New(Provider, baseURL)
	client.SetHeader(apiKeyHeader, apiKey)
	return &Client{http: client, configured: apiKey != ""}
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.configured
}

// FetchBaseball fetches up to pageSize recent English baseball articles.
func (c *Client) FetchBaseball(ctx context.Context, pageSize int) ([]Article, error) {
	params := url.Values{
		"q":        {"baseball"},
		"language": {"en"},
		"sortBy":   {"publishedAt"},
		"pageSize": {strconv.Itoa(pageSize)},
		"domains":  {strings.Join(Domains, ",")},
	}
	var resp everythingResponse
	if err := c.http.Get(ctx, "/everything", params, &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}
