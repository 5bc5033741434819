package service

import (
	"context"
	"fmt"

	"github.com/fortuna/dugout/internal/ingest/statsapi"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// TeamService handles team details and standings
type TeamService struct {
	stats   StatsProvider
	weather *WeatherService
	clock   clockwork.Clock
}

// NewTeamService creates a new team service
func NewTeamService(stats StatsProvider, weather *WeatherService, clock clockwork.Clock) *TeamService {
	return &TeamService{stats: stats, weather: weather, clock: clock}
}

// RosterPlayer is one roster line
type RosterPlayer struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	JerseyNumber string `json:"jerseyNumber"`
	Position     string `json:"position"`
}

// TeamDetails is a team with roster and host-city weather.
// Weather is nil whenever it could not be resolved.
type TeamDetails struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Logo      string         `json:"logo"`
	Venue     string         `json:"venue"`
	League    string         `json:"league"`
	Division  string         `json:"division"`
	City      string         `json:"city"`
	FirstYear string         `json:"firstYear"`
	Roster    []RosterPlayer `json:"roster"`
	Weather   *Weather       `json:"weather"`
}

// TeamDetails fetches the team, then its roster, then its city's weather.
func (s *TeamService) TeamDetails(ctx context.Context, teamID int) (*TeamDetails, error) {
	teams, err := s.stats.FetchTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetching team %d: %w", teamID, err)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("team %d: %w", teamID, ErrNotFound)
	}
	team := teams[0]

	roster, err := s.stats.FetchRoster(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetching roster for team %d: %w", teamID, err)
	}

	query := weatherQuery(team)
	details := &TeamDetails{
		ID:        team.ID,
		Name:      team.Name,
		Logo:      TeamLogoURL(team.ID),
		Venue:     team.Venue.Name,
		League:    team.League.Name,
		Division:  team.Division.Name,
		City:      resolveCity(query),
		FirstYear: team.FirstYearOfPlay,
		Roster:    make([]RosterPlayer, 0, len(roster)),
	}
	for _, entry := range roster {
		jersey := entry.JerseyNumber
		if jersey == "" {
			jersey = "-"
		}
		details.Roster = append(details.Roster, RosterPlayer{
			ID:           entry.Person.ID,
			Name:         entry.Person.FullName,
			JerseyNumber: jersey,
			Position:     entry.Position.Abbreviation,
		})
	}

	if w, err := s.weather.WeatherForCity(ctx, query); err != nil {
		log.Info().Err(err).Int("team_id", teamID).Msg("weather unknown for team")
	} else {
		details.Weather = w
	}
	return details, nil
}

// weatherQuery picks the franchise nickname when it has a city override and
// the upstream location name otherwise.
func weatherQuery(team statsapi.Team) string {
	if _, ok := cityOverrides[team.TeamName]; ok {
		return team.TeamName
	}
	return team.LocationName
}

// StandingTeam is one row of a division table
type StandingTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Pct       string `json:"pct"`
	GamesBack string `json:"gamesBack"`
	Streak    string `json:"streak"`
}

// DivisionStandings is one division table
type DivisionStandings struct {
	League   string         `json:"league"`
	Division string         `json:"division"`
	Teams    []StandingTeam `json:"teams"`
}

// Standings returns regular-season division tables; season 0 means the current year.
func (s *TeamService) Standings(ctx context.Context, season int) ([]DivisionStandings, error) {
	if season == 0 {
		season = s.clock.Now().Year()
	}

	records, err := s.stats.FetchStandings(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("fetching standings for %d: %w", season, err)
	}

	out := make([]DivisionStandings, 0, len(records))
	for _, rec := range records {
		division := DivisionStandings{
			League:   rec.League.Name,
			Division: rec.Division.Name,
			Teams:    make([]StandingTeam, 0, len(rec.TeamRecords)),
		}
		for _, tr := range rec.TeamRecords {
			division.Teams = append(division.Teams, StandingTeam{
				ID:        tr.Team.ID,
				Name:      tr.Team.Name,
				Logo:      TeamLogoURL(tr.Team.ID),
				Wins:      tr.Wins,
				Losses:    tr.Losses,
				Pct:       tr.WinningPercentage,
				GamesBack: tr.GamesBack,
				Streak:    tr.Streak.StreakCode,
			})
		}
		out = append(out, division)
	}
	return out, nil
}
