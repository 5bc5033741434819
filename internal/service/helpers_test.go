package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/fortuna/dugout/internal/config"
	"github.com/jonboulle/clockwork"
)

var testNow = time.Date(2025, 7, 4, 15, 0, 0, 0, time.UTC)

type fakeRoute struct {
	status int
	body   string
}

// fakeUpstream serves canned JSON per path and records every hit.
type fakeUpstream struct {
	mu      sync.Mutex
	routes  map[string]fakeRoute
	hits    map[string]int
	queries map[string]url.Values
	server  *httptest.Server
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{
		routes:  make(map[string]fakeRoute),
		hits:    make(map[string]int),
		queries: make(map[string]url.Values),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeUpstream) handle(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = fakeRoute{status: status, body: body}
}

func (f *fakeUpstream) ok(path, body string) {
	f.handle(path, http.StatusOK, body)
}

func (f *fakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.URL.Path]++
	f.queries[r.URL.Path] = r.URL.Query()
	route, ok := f.routes[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"message":"unexpected path %s"}`, r.URL.Path)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(route.status)
	w.Write([]byte(route.body))
}

func (f *fakeUpstream) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeUpstream) totalHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.hits {
		total += n
	}
	return total
}

func (f *fakeUpstream) query(path string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[path]
}

func (f *fakeUpstream) URL() string {
	return f.server.URL
}

// newTestServices wires services against fake upstreams. Nil upstreams
// leave that provider pointed at an unreachable base with no key.
func newTestServices(t *testing.T, stats, weather, news, video *fakeUpstream) *Services {
	t.Helper()
	cfg := config.Config{
		StatsAPIBase:   "http://127.0.0.1:1",
		WeatherAPIBase: "http://127.0.0.1:1",
		NewsAPIBase:    "http://127.0.0.1:1",
		YouTubeAPIBase: "http://127.0.0.1:1",
	}
	if stats != nil {
		cfg.StatsAPIBase = stats.URL()
	}
	if weather != nil {
		cfg.WeatherAPIBase = weather.URL()
		cfg.WeatherAPIKey = "weather-key"
	}
	if news != nil {
		cfg.NewsAPIBase = news.URL()
		cfg.NewsAPIKey = "news-key"
	}
	if video != nil {
		cfg.YouTubeAPIBase = video.URL()
		cfg.YouTubeAPIKey = "video-key"
	}

	services, err := NewServices(cfg, clockwork.NewFakeClockAt(testNow))
	if err != nil {
		t.Fatalf("NewServices: %v", err)
	}
	return services
}
