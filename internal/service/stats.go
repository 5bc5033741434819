package service

import (
	"context"
	"fmt"
)

const (
	groupHitting  = "hitting"
	groupPitching = "pitching"
)

// SeasonStats holds one season's stat blocks. Each block is the upstream
// stat object with a "team" key naming the stint's club.
type SeasonStats struct {
	Hitting  map[string]any `json:"hitting,omitempty"`
	Pitching map[string]any `json:"pitching,omitempty"`
}

// PlayerStats returns year-by-year hitting and pitching keyed by season.
// When a season has several splits for a group, the last one wins.
func (s *PlayerService) PlayerStats(ctx context.Context, playerID int) (map[string]*SeasonStats, error) {
	resp, err := s.stats.FetchPlayerStats(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching stats for player %d: %w", playerID, err)
	}

	seasons := make(map[string]*SeasonStats)
	for _, group := range resp.Stats {
		name := group.Group.DisplayName
		if name != groupHitting && name != groupPitching {
			continue
		}
		for _, split := range group.Splits {
			if split.Season == "" {
				continue
			}

			block := make(map[string]any, len(split.Stat)+1)
			for k, v := range split.Stat {
				block[k] = v
			}
			block["team"] = split.Team.Name

			season, ok := seasons[split.Season]
			if !ok {
				season = &SeasonStats{}
				seasons[split.Season] = season
			}
			if name == groupHitting {
				season.Hitting = block
			} else {
				season.Pitching = block
			}
		}
	}

	if len(seasons) == 0 {
		return nil, fmt.Errorf("no statistical data for player %d: %w", playerID, ErrNotFound)
	}
	return seasons, nil
}
