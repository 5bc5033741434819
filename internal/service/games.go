package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/fortuna/dugout/internal/ingest"
	"github.com/fortuna/dugout/internal/ingest/statsapi"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const dateLayout = "2006-01-02"

// GameService handles schedule and game-level lookups
type GameService struct {
	stats StatsProvider
	clock clockwork.Clock
}

// NewGameService creates a new game service
func NewGameService(stats StatsProvider, clock clockwork.Clock) *GameService {
	return &GameService{stats: stats, clock: clock}
}

// Game is one schedule entry
type Game struct {
	ID        int    `json:"id"`
	Status    string `json:"status"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Venue     string `json:"venue"`
	Time      string `json:"time"`
	GameType  string `json:"game_type"`
	AwayLogo  string `json:"away_logo"`
	HomeLogo  string `json:"home_logo"`
}

// Schedule returns the games for a YYYY-MM-DD date, defaulting to today.
// Upstream failures are logged and yield an empty list.
func (s *GameService) Schedule(ctx context.Context, date string) []Game {
	if date == "" {
		date = s.clock.Now().Format(dateLayout)
	}

	games := []Game{}
	resp, err := s.stats.FetchSchedule(ctx, date)
	if err != nil {
		log.Warn().Err(err).Str("date", date).Msg("schedule fetch failed, returning empty list")
		return games
	}
	if len(resp.Dates) == 0 {
		return games
	}

	for _, g := range resp.Dates[0].Games {
		games = append(games, Game{
			ID:        g.GamePk,
			Status:    g.Status.DetailedState,
			HomeTeam:  g.Teams.Home.Team.Name,
			AwayTeam:  g.Teams.Away.Team.Name,
			HomeScore: scoreOrZero(g.Teams.Home.Score),
			AwayScore: scoreOrZero(g.Teams.Away.Score),
			Venue:     g.Venue.Name,
			Time:      g.GameDate,
			GameType:  g.GameType,
			AwayLogo:  TeamLogoURL(g.Teams.Away.Team.ID),
			HomeLogo:  TeamLogoURL(g.Teams.Home.Team.ID),
		})
	}
	return games
}

func scoreOrZero(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}

// GameTeam identifies one side of a game
type GameTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// GamePlayer is one boxscore line
type GamePlayer struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	JerseyNumber string          `json:"jerseyNumber"`
	Position     string          `json:"position"`
	Stats        PlayerGameStats `json:"stats"`
}

// PlayerGameStats carries the upstream batting and pitching blocks unchanged
type PlayerGameStats struct {
	Batting  json.RawMessage `json:"batting,omitempty"`
	Pitching json.RawMessage `json:"pitching,omitempty"`
}

// GameDetails is the normalized view of a single game
type GameDetails struct {
	GamePk    int             `json:"gamePk"`
	Status    string          `json:"status"`
	Venue     string          `json:"venue"`
	HomeTeam  GameTeam        `json:"homeTeam"`
	AwayTeam  GameTeam        `json:"awayTeam"`
	Linescore json.RawMessage `json:"linescore"`
	Players   struct {
		Home []GamePlayer `json:"home"`
		Away []GamePlayer `json:"away"`
	} `json:"players"`
}

// GameDetails fetches the live feed, falling back to the split endpoints
// when the feed index does not know the game.
func (s *GameService) GameDetails(ctx context.Context, gamePk int) (*GameDetails, error) {
	feed, err := s.stats.FetchLiveFeed(ctx, gamePk)
	if err == nil {
		details := &GameDetails{
			GamePk:    gamePk,
			Status:    feed.GameData.Status.DetailedState,
			Venue:     feed.GameData.Venue.Name,
			HomeTeam:  gameTeam(feed.GameData.Teams.Home),
			AwayTeam:  gameTeam(feed.GameData.Teams.Away),
			Linescore: feed.LiveData.Linescore,
		}
		fillPlayers(details, &feed.LiveData.Boxscore)
		return details, nil
	}
	if !ingest.IsStatus(err, http.StatusNotFound) {
		return nil, fmt.Errorf("fetching live feed for game %d: %w", gamePk, err)
	}

	log.Info().Int("game_pk", gamePk).Msg("live feed missing, assembling from split endpoints")
	return s.assembleGameDetails(ctx, gamePk)
}

func (s *GameService) assembleGameDetails(ctx context.Context, gamePk int) (*GameDetails, error) {
	metrics, err := s.stats.FetchContextMetrics(ctx, gamePk)
	if err != nil {
		return nil, fmt.Errorf("fetching context metrics for game %d: %w", gamePk, err)
	}
	linescore, err := s.stats.FetchLinescore(ctx, gamePk)
	if err != nil {
		return nil, fmt.Errorf("fetching linescore for game %d: %w", gamePk, err)
	}
	boxscore, err := s.stats.FetchBoxscore(ctx, gamePk)
	if err != nil {
		return nil, fmt.Errorf("fetching boxscore for game %d: %w", gamePk, err)
	}

	home := metrics.Game.Teams.Home.Team
	if home.ID == 0 {
		home = boxscore.Teams.Home.Team
	}
	away := metrics.Game.Teams.Away.Team
	if away.ID == 0 {
		away = boxscore.Teams.Away.Team
	}

	details := &GameDetails{
		GamePk:    gamePk,
		Status:    metrics.Game.Status.DetailedState,
		Venue:     metrics.Game.Venue.Name,
		HomeTeam:  gameTeam(home),
		AwayTeam:  gameTeam(away),
		Linescore: linescore,
	}
	fillPlayers(details, boxscore)
	return details, nil
}

func gameTeam(ref statsapi.Ref) GameTeam {
	return GameTeam{ID: ref.ID, Name: ref.Name, Logo: TeamLogoURL(ref.ID)}
}

func fillPlayers(details *GameDetails, box *statsapi.Boxscore) {
	details.Players.Home = boxscorePlayers(box.Teams.Home.Players)
	details.Players.Away = boxscorePlayers(box.Teams.Away.Players)
}

// boxscorePlayers flattens the upstream id-keyed map, ordered by player id.
func boxscorePlayers(players map[string]statsapi.BoxscorePlayer) []GamePlayer {
	out := make([]GamePlayer, 0, len(players))
	for _, p := range players {
		out = append(out, GamePlayer{
			ID:           p.Person.ID,
			Name:         p.Person.FullName,
			JerseyNumber: p.JerseyNumber,
			Position:     p.Position.Abbreviation,
			Stats: PlayerGameStats{
				Batting:  p.Stats.Batting,
				Pitching: p.Stats.Pitching,
			},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
