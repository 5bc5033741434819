package service

import (
	"context"
	"encoding/json"

	"github.com/fortuna/dugout/internal/config"
	"github.com/fortuna/dugout/internal/ingest/news"
	"github.com/fortuna/dugout/internal/ingest/statsapi"
	"github.com/fortuna/dugout/internal/ingest/weather"
	"github.com/fortuna/dugout/internal/ingest/youtube"
	"github.com/fortuna/dugout/internal/relevance"
	"github.com/jonboulle/clockwork"
)

// StatsProvider is the sports-statistics upstream.
type StatsProvider interface {
	FetchSchedule(ctx context.Context, date string) (*statsapi.ScheduleResponse, error)
	SearchPeople(ctx context.Context, names string) ([]statsapi.Person, error)
	FetchPeople(ctx context.Context, ids []int) ([]statsapi.Person, error)
	FetchPerson(ctx context.Context, id int) ([]statsapi.Person, error)
	FetchPlayerStats(ctx context.Context, id int) (*statsapi.StatsResponse, error)
	FetchTeams(ctx context.Context) ([]statsapi.Team, error)
	FetchTeam(ctx context.Context, id int) ([]statsapi.Team, error)
	FetchRoster(ctx context.Context, teamID int) ([]statsapi.RosterEntry, error)
	FetchLeaders(ctx context.Context, group string, categories []string, season, limit int) ([]statsapi.LeaderCategory, error)
	FetchStandings(ctx context.Context, season int) ([]statsapi.StandingsRecord, error)
	FetchLiveFeed(ctx context.Context, gamePk int) (*statsapi.LiveFeed, error)
	FetchContextMetrics(ctx context.Context, gamePk int) (*statsapi.ContextMetrics, error)
	FetchLinescore(ctx context.Context, gamePk int) (json.RawMessage, error)
	FetchBoxscore(ctx context.Context, gamePk int) (*statsapi.Boxscore, error)
}

// WeatherProvider is the current-conditions upstream.
type WeatherProvider interface {
	Configured() bool
	FetchCurrent(ctx context.Context, city string) (*weather.Current, error)
}

// NewsProvider is the news-aggregation upstream.
type NewsProvider interface {
	Configured() bool
	FetchBaseball(ctx context.Context, pageSize int) ([]news.Article, error)
}

// VideoProvider is the video-search upstream.
type VideoProvider interface {
	Configured() bool
	SearchVideos(ctx context.Context, query string, maxResults int) ([]youtube.SearchItem, error)
}

// Services bundles every reshaping service behind the REST layer.
type Services struct {
	Games      *GameService
	Players    *PlayerService
	Teams      *TeamService
	Leaders    *LeaderService
	Weather    *WeatherService
	News       *NewsService
	Highlights *HighlightService
}

// NewServices builds provider clients from cfg and wires them into services.
func NewServices(cfg config.Config, clock clockwork.Clock) (*Services, error) {
	scorer, err := relevance.NewScorer()
	if err != nil {
		return nil, err
	}

	stats := statsapi.New(cfg.StatsAPIBase)
	weatherSvc := NewWeatherService(weather.New(cfg.WeatherAPIBase, cfg.WeatherAPIKey))

	return &Services{
		Games:      NewGameService(stats, clock),
		Players:    NewPlayerService(stats),
		Teams:      NewTeamService(stats, weatherSvc, clock),
		Leaders:    NewLeaderService(stats, clock),
		Weather:    weatherSvc,
		News:       NewNewsService(news.New(cfg.NewsAPIBase, cfg.NewsAPIKey), scorer),
		Highlights: NewHighlightService(youtube.New(cfg.YouTubeAPIBase, cfg.YouTubeAPIKey)),
	}, nil
}
