package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fortuna/dugout/internal/ingest/statsapi"
	"golang.org/x/sync/errgroup"
)

// PlayerService handles player search and player lookups
type PlayerService struct {
	stats StatsProvider
}

// NewPlayerService creates a new player service
func NewPlayerService(stats StatsProvider) *PlayerService {
	return &PlayerService{stats: stats}
}

// SearchResult is either a *PlayerResult or a *TeamResult.
type SearchResult interface {
	ResultType() string
}

// PlayerResult is a player as it appears in search results
type PlayerResult struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Photo    string  `json:"photo"`
	Age      *int    `json:"age"`
	Team     *string `json:"team"`
	Position *string `json:"position"`
}

func (p *PlayerResult) ResultType() string { return p.Type }

// TeamResult is a team as it appears in search results
type TeamResult struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Logo     string  `json:"logo"`
	Venue    *string `json:"venue"`
	League   *string `json:"league"`
	Division *string `json:"division"`
}

func (t *TeamResult) ResultType() string { return t.Type }

// PlayerDetails extends the search view with jersey and birth date
type PlayerDetails struct {
	PlayerResult
	JerseyNumber string `json:"jerseyNumber"`
	BirthDate    string `json:"birthDate"`
}

// Search returns matching players followed by matching teams.
func (s *PlayerService) Search(ctx context.Context, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required: %w", ErrInvalidInput)
	}

	var players, teams []SearchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.searchPlayers(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = s.searchTeams(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(players)+len(teams))
	results = append(results, players...)
	results = append(results, teams...)
	return results, nil
}

func (s *PlayerService) searchPlayers(ctx context.Context, query string) ([]SearchResult, error) {
	candidates, err := s.stats.SearchPeople(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}

	ids := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if c.ID != 0 {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	people, err := s.stats.FetchPeople(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrating players: %w", err)
	}
	byID := make(map[int]statsapi.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}

	results := make([]SearchResult, 0, len(ids))
	for _, id := range ids {
		person, ok := byID[id]
		if !ok {
			continue
		}
		results = append(results, playerResult(person))
	}
	return results, nil
}

func (s *PlayerService) searchTeams(ctx context.Context, query string) ([]SearchResult, error) {
	teams, err := s.stats.FetchTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	needle := strings.ToLower(query)
	var results []SearchResult
	for _, t := range teams {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.TeamName), needle) {
			results = append(results, &TeamResult{
				ID:       fmt.Sprintf("team-%d", t.ID),
				Type:     "team",
				Name:     t.Name,
				Logo:     TeamLogoURL(t.ID),
				Venue:    optional(t.Venue.Name),
				League:   optional(t.League.Name),
				Division: optional(t.Division.Name),
			})
		}
	}
	return results, nil
}

// PlayerDetails fetches one hydrated player.
func (s *PlayerService) PlayerDetails(ctx context.Context, playerID int) (*PlayerDetails, error) {
	people, err := s.stats.FetchPerson(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching player %d: %w", playerID, err)
	}
	if len(people) == 0 {
		return nil, fmt.Errorf("player %d: %w", playerID, ErrNotFound)
	}

	person := people[0]
	return &PlayerDetails{
		PlayerResult: *playerResult(person),
		JerseyNumber: person.PrimaryNumber,
		BirthDate:    person.BirthDate,
	}, nil
}

func playerResult(p statsapi.Person) *PlayerResult {
	name := p.FullName
	if name == "" {
		name = "N/A"
	}
	return &PlayerResult{
		ID:       fmt.Sprintf("player-%d", p.ID),
		Type:     "player",
		Name:     name,
		Photo:    PlayerPhotoURL(p.ID),
		Age:      p.CurrentAge,
		Team:     optional(p.CurrentTeam.Name),
		Position: optional(p.PrimaryPosition.Abbreviation),
	}
}

// optional maps an absent upstream string to JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
