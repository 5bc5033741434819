package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

const leadersPerCategory = 5

var (
	hittingCategories = []string{
		"homeRuns", "battingAverage", "runsBattedIn", "hits", "stolenBases", "onBasePlusSlugging",
	}
	pitchingCategories = []string{
		"earnedRunAverage", "strikeouts", "wins", "saves", "walksAndHitsPerInningPitched", "inningsPitched",
	}
)

// LeaderService handles league leaderboards
type LeaderService struct {
	stats StatsProvider
	clock clockwork.Clock
}

// NewLeaderService creates a new leader service
func NewLeaderService(stats StatsProvider, clock clockwork.Clock) *LeaderService {
	return &LeaderService{stats: stats, clock: clock}
}

// LeaderEntry is one ranked player in a category
type LeaderEntry struct {
	Rank  int    `json:"rank"`
	Value string `json:"value"`
	ID    int    `json:"id"`
	Name  string `json:"name"`
}

// LeagueLeaders groups leaderboards by stat group and category
type LeagueLeaders struct {
	Hitting  map[string][]LeaderEntry `json:"hitting"`
	Pitching map[string][]LeaderEntry `json:"pitching"`
}

// Leaders fetches the current season's hitting and pitching leaders.
func (s *LeaderService) Leaders(ctx context.Context) (*LeagueLeaders, error) {
	season := s.clock.Now().Year()
	result := &LeagueLeaders{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		board, err := s.leaderboard(gctx, groupHitting, hittingCategories, season)
		result.Hitting = board
		return err
	})
	g.Go(func() error {
		board, err := s.leaderboard(gctx, groupPitching, pitchingCategories, season)
		result.Pitching = board
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *LeaderService) leaderboard(ctx context.Context, group string, categories []string, season int) (map[string][]LeaderEntry, error) {
	resp, err := s.stats.FetchLeaders(ctx, group, categories, season, leadersPerCategory)
	if err != nil {
		return nil, fmt.Errorf("fetching %s leaders: %w", group, err)
	}

	board := make(map[string][]LeaderEntry, len(resp))
	for _, cat := range resp {
		leaders := cat.Leaders
		if len(leaders) > leadersPerCategory {
			leaders = leaders[:leadersPerCategory]
		}
		entries := make([]LeaderEntry, 0, len(leaders))
		for _, l := range leaders {
			entries = append(entries, LeaderEntry{
				Rank:  l.Rank,
				Value: l.Value,
				ID:    l.Person.ID,
				Name:  l.Person.FullName,
			})
		}
		board[cat.LeaderCategory] = entries
	}
	return board, nil
}
