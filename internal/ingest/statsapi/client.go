package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fortuna/dugout/internal/ingest"
)

const (
	BaseURL  = "https://statsapi.mlb.com/api"
	Provider = "mlb-statsapi"

	// MLBSportID selects Major League Baseball.
	MLBSportID = "1"
	// AmericanLeagueID and NationalLeagueID are the two MLB leagues.
	AmericanLeagueID = "103"
	NationalLeagueID = "104"

	playerHydrate = "currentTeam,primaryPosition"
)

// Client handles MLB StatsAPI requests
type Client struct {
	http *ingest.Client
}

// New creates a StatsAPI client with a custom base URL
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{http: ingest.New(Provider, baseURL)}
}

// FetchSchedule fetches all MLB games for a YYYY-MM-DD date
func (c *Client) FetchSchedule(ctx context.Context, date string) (*ScheduleResponse, error) {
	params := url.Values{"sportId": {MLBSportID}, "date": {date}}
	var resp ScheduleResponse
	if err := c.http.Get(ctx, "/v1/schedule", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchPeople runs a name search and returns unhydrated candidates
func (c *Client) SearchPeople(ctx context.Context, names string) ([]Person, error) {
	var resp PeopleResponse
	if err := c.http.Get(ctx, "/v1/people/search", url.Values{"names": {names}}, &resp); err != nil {
		return nil, err
	}
	return resp.People, nil
}

// FetchPeople fetches several players in one batched, hydrated request
func (c *Client) FetchPeople(ctx context.Context, ids []int) ([]Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	params := url.Values{
		"personIds": {strings.Join(parts, ",")},
		"hydrate":   {playerHydrate},
	}
	var resp PeopleResponse
	if err := c.http.Get(ctx, "/v1/people", params, &resp); err != nil {
		return nil, err
	}
	return resp.People, nil
}

// FetchPerson fetches one hydrated player; the slice is empty when the id is unknown
func (c *Client) FetchPerson(ctx context.Context, id int) ([]Person, error) {
	var resp PeopleResponse
	path := fmt.Sprintf("/v1/people/%d", id)
	if err := c.http.Get(ctx, path, url.Values{"hydrate": {playerHydrate}}, &resp); err != nil {
		return nil, err
	}
	return resp.People, nil
}

// FetchPlayerStats fetches year-by-year hitting and pitching splits
func (c *Client) FetchPlayerStats(ctx context.Context, id int) (*StatsResponse, error) {
	params := url.Values{"stats": {"yearByYear"}, "group": {"hitting,pitching"}}
	var resp StatsResponse
	if err := c.http.Get(ctx, fmt.Sprintf("/v1/people/%d/stats", id), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchTeams fetches every MLB team
func (c *Client) FetchTeams(ctx context.Context) ([]Team, error) {
	var resp TeamsResponse
	if err := c.http.Get(ctx, "/v1/teams", url.Values{"sportId": {MLBSportID}}, &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

// FetchTeam fetches a single team; the slice is empty when the id is unknown
func (c *Client) FetchTeam(ctx context.Context, id int) ([]Team, error) {
	var resp TeamsResponse
	if err := c.http.Get(ctx, fmt.Sprintf("/v1/teams/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

// FetchRoster fetches a team's active roster
func (c *Client) FetchRoster(ctx context.Context, teamID int) ([]RosterEntry, error) {
	var resp RosterResponse
	if err := c.http.Get(ctx, fmt.Sprintf("/v1/teams/%d/roster", teamID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Roster, nil
}

// FetchLeaders fetches regular-season leaderboards for one stat group
func (c *Client) FetchLeaders(ctx context.Context, group string, categories []string, season, limit int) ([]LeaderCategory, error) {
	params := url.Values{
		"leaderCategories": {strings.Join(categories, ",")},
		"statGroup":        {group},
		"season":           {strconv.Itoa(season)},
		"gameTypes":        {"R"},
		"limit":            {strconv.Itoa(limit)},
	}
	var resp LeadersResponse
	if err := c.http.Get(ctx, "/v1/stats/leaders", params, &resp); err != nil {
		return nil, err
	}
	return resp.LeagueLeaders, nil
}

// FetchStandings fetches regular-season standings for both leagues
func (c *Client) FetchStandings(ctx context.Context, season int) ([]StandingsRecord, error) {
	params := url.Values{
		"leagueId":       {AmericanLeagueID + "," + NationalLeagueID},
		"season":         {strconv.Itoa(season)},
		"standingsTypes": {"regularSeason"},
		"hydrate":        {"team,league,division"},
	}
	var resp StandingsResponse
	if err := c.http.Get(ctx, "/v1/standings", params, &resp); err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// FetchLiveFeed fetches the combined live feed for a game
func (c *Client) FetchLiveFeed(ctx context.Context, gamePk int) (*LiveFeed, error) {
	var feed LiveFeed
	if err := c.http.Get(ctx, fmt.Sprintf("/v1.1/game/%d/feed/live", gamePk), nil, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// FetchContextMetrics fetches game metadata (status, venue, teams)
func (c *Client) FetchContextMetrics(ctx context.Context, gamePk int) (*ContextMetrics, error) {
	var resp ContextMetrics
	if err := c.http.Get(ctx, fmt.Sprintf("/v1/game/%d/contextMetrics", gamePk), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchLinescore fetches the raw linescore document for a game
func (c *Client) FetchLinescore(ctx context.Context, gamePk int) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.http.Get(ctx, fmt.Sprintf("/v1/game/%d/linescore", gamePk), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// FetchBoxscore fetches the boxscore for a game
func (c *Client) FetchBoxscore(ctx context.Context, gamePk int) (*Boxscore, error) {
	var resp Boxscore
	if err := c.http.Get(ctx, fmt.Sprintf("/v1/game/%d/boxscore", gamePk), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
