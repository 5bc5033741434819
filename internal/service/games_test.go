package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/fortuna/dugout/internal/ingest"
)

const scheduleBody = `{
  "totalGames": 2,
  "dates": [{
    "date": "2025-07-04",
    "games": [
      {
        "gamePk": 777001,
        "gameDate": "2025-07-04T17:05:00Z",
        "gameType": "R",
        "status": {"detailedState": "Final"},
        "teams": {
          "away": {"score": 3, "team": {"id": 147, "name": "New York Yankees"}},
          "home": {"score": 5, "team": {"id": 111, "name": "Boston Red Sox"}}
        },
        "venue": {"id": 3, "name": "Fenway Park"}
      },
      {
        "gamePk": 777002,
        "gameDate": "2025-07-04T23:10:00Z",
        "gameType": "R",
        "status": {"detailedState": "Scheduled"},
        "teams": {
          "away": {"team": {"id": 119, "name": "Los Angeles Dodgers"}},
          "home": {"team": {"id": 135, "name": "San Diego Padres"}}
        },
        "venue": {"id": 2680, "name": "Petco Park"}
      }
    ]
  }]
}`

func TestScheduleMapsGames(t *testing.T) {
	stats := newFakeUpstream(t)
	stats.ok("/v1/schedule", scheduleBody)
	svc := newTestServices(t, stats, nil, nil, nil)

	games := svc.Games.Schedule(context.Background(), "2025-07-04")
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}

	first := games[0]
	if first.ID != 777001 || first.Status != "Final" || first.HomeTeam != "Boston Red Sox" ||
		first.AwayTeam != "New York Yankees" || first.HomeScore != 5 || first.AwayScore != 3 ||
		first.Venue != "Fenway Park" || first.GameType != "R" || first.Time != "2025-07-04T17:05:00Z" {
		t.Errorf("unexpected first game: %+v", first)
	}
	if first.HomeLogo != "https://www.mlbstatic.com/team-logos/111.svg" {
		t.Errorf("HomeLogo = %q", first.HomeLogo)
	}
	if first.AwayLogo != "https://www.mlbstatic.com/team-logos/147.svg" {
		t.Errorf("AwayLogo = %q", first.AwayLogo)
	}

	second := games[1]
	if second.HomeScore != 0 || second.AwayScore != 0 {
		t.Errorf("missing scores should default to 0: %+v", second)
	}

	q := stats.query("/v1/schedule")
	if q.Get("sportId") != "1" || q.Get("date") != "2025-07-04" {
		t.Errorf("unexpected schedule query: %v", q)
	}
}

func TestScheduleDefaultsToClockDate(t *testing.T) {
	stats := newFakeUpstream(t)
	stats.ok("/v1/schedule", `{"dates": []}`)
	svc := newTestServices(t, stats, nil, nil, nil)

	games := svc.Games.Schedule(context.Background(), "")
	if games == nil || len(games) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", games)
	}
	if got := stats.query("/v1/schedule").Get("date"); got != "2025-07-04" {
		t.Errorf("date = %q, want 2025-07-04", got)
	}
}

func TestScheduleSwallowsUpstreamFailure(t *testing.T) {
	stats := newFakeUpstream(t)
	stats.handle("/v1/schedule", http.StatusBadGateway, `{}`)
	svc := newTestServices(t, stats, nil, nil, nil)

	games := svc.Games.Schedule(context.Background(), "2025-07-04")
	if games == nil || len(games) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", games)
	}
}

const liveFeedBody = `{
  "gamePk": 745001,
  "gameData": {
    "status": {"detailedState": "Final"},
    "venue": {"id": 1, "name": "Yankee Stadium"},
    "teams": {
      "away": {"id": 111, "name": "Boston Red Sox"},
      "home": {"id": 147, "name": "New York Yankees"}
    }
  },
  "liveData": {
    "linescore": {"currentInning": 9, "innings": [{"num": 1}]},
    "boxscore": {
      "teams": {
        "away": {"team": {"id": 111}, "players": {
          "ID500": {"person": {"id": 500, "fullName": "Away Two"}, "jerseyNumber": "7", "position": {"abbreviation": "SS"}, "stats": {"batting": {"hits": 1}, "pitching": {}}},
          "ID400": {"person": {"id": 400, "fullName": "Away One"}, "jerseyNumber": "45", "position": {"abbreviation": "P"}, "stats": {"batting": {}, "pitching": {"strikeOuts": 9}}}
        }},
        "home": {"team": {"id": 147}, "players": {
          "ID592450": {"person": {"id": 592450, "fullName": "Aaron Judge"}, "jerseyNumber": "99", "position": {"abbreviation": "RF"}, "stats": {"batting": {"homeRuns": 2}}}
        }}
      }
    }
  }
}`

func TestGameDetailsFromLiveFeed(t *testing.T) {
	stats := newFakeUpstream(t)
	stats.ok("/v1.1/game/745001/feed/live", liveFeedBody)
	svc := newTestServices(t, stats, nil, nil, nil)

	details, err := svc.Games.GameDetails(context.Background(), 745001)
	if err != nil {
		t.Fatalf("GameDetails: %v", err)
	}
	if details.Status != "Final" || details.Venue != "Yankee Stadium" {
		t.Errorf("unexpected header: %+v", details)
	}
	if details.HomeTeam.ID != 147 || details.HomeTeam.Logo != "https://www.mlbstatic.com/team-logos/147.svg" {
		t.Errorf("unexpected home team: %+v", details.HomeTeam)
	}
	if details.AwayTeam.Name != "Boston Red Sox" {
		t.Errorf("unexpected away team: %+v", details.AwayTeam)
	}

	var linescore map[string]any
	if err := json.Unmarshal(details.Linescore, &linescore); err != nil {
		t.Fatalf("linescore not passed through: %v", err)
	}
	if linescore["currentInning"] != float64(9) {
		t.Errorf("linescore = %v", linescore)
	}

	away := details.Players.Away
	if len(away) != 2 || away[0].ID != 400 || away[1].ID != 500 {
		t.Fatalf("away players not ordered by id: %+v", away)
	}
	if away[0].Position != "P" || away[0].JerseyNumber != "45" {
		t.Errorf("unexpected player: %+v", away[0])
	}
	if len(details.Players.Home) != 1 || details.Players.Home[0].Name != "Aaron Judge" {
		t.Errorf("unexpected home players: %+v", details.Players.Home)
	}

	for _, path := range []string{"/v1/game/745001/contextMetrics", "/v1/game/745001/linescore", "/v1/game/745001/boxscore"} {
		if n := stats.hitCount(path); n != 0 {
			t.Errorf("fallback %s called %d times", path, n)
		}
	}
}

func TestGameDetailsFallsBackOn404(t *testing.T) {
	stats := newFakeUpstream(t)
	stats.handle("/v1.1/game/530001/feed/live", http.StatusNotFound, `{"message":"not found"}`)
	stats.ok("/v1/game/530001/contextMetrics", `{"game": {
		"gamePk": 530001,
		"status": {"detailedState": "Final"},
		"venue": {"name": "Wrigley Field"},
		"teams": {"away": {"team": {"id": 138, "name": "St. Louis Cardinals"}}, "home": {"team": {"id": 112, "name": "Chicago Cubs"}}}
	}}`)
	stats.ok("/v1/game/530001/linescore", `{"currentInning": 9}`)
	stats.ok("/v1/game/530001/boxscore", `{"teams": {
		"away": {"team": {"id": 138}, "players": {}},
		"home": {"team": {"id": 112}, "players": {"ID1": {"person": {"id": 1, "fullName": "Old Timer"}, "position": {"abbreviation": "C"}, "stats": {"batting": {"hits": 2}}}}}
	}}`)
	svc := newTestServices(t, stats, nil, nil, nil)

	details, err := svc.Games.GameDetails(context.Background(), 530001)
	if err != nil {
		t.Fatalf("GameDetails: %v", err)
	}
	for _, path := range []string{"/v1/game/530001/contextMetrics", "/v1/game/530001/linescore", "/v1/game/530001/boxscore"} {
		if n := stats.hitCount(path); n != 1 {
			t.Errorf("%s called %d times, want 1", path, n)
		}
	}
	if details.Venue != "Wrigley Field" || details.HomeTeam.Name != "Chicago Cubs" || details.AwayTeam.ID != 138 {
		t.Errorf("unexpected details: %+v", details)
	}
	if string(details.Linescore) != `{"currentInning": 9}` {
		t.Errorf("linescore = %s", details.Linescore)
	}
	if len(details.Players.Home) != 1 || details.Players.Home[0].Position != "C" {
		t.Errorf("unexpected home players: %+v", details.Players.Home)
	}
	if details.Players.Away == nil || len(details.Players.Away) != 0 {
		t.Errorf("away players should be an empty list: %#v", details.Players.Away)
	}
}

func TestGameDetailsOtherStatusDoesNotFallBack(t *testing.T) {
	stats := newFakeUpstream(t)
	stats.handle("/v1.1/game/1/feed/live", http.StatusServiceUnavailable, `{}`)
	svc := newTestServices(t, stats, nil, nil, nil)

	_, err := svc.Games.GameDetails(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	var upstreamErr *ingest.UpstreamError
	if !errors.As(err, &upstreamErr) || upstreamErr.Status != http.StatusServiceUnavailable {
		t.Errorf("expected upstream 503, got %v", err)
	}
	if stats.totalHits() != 1 {
		t.Errorf("expected only the live feed call, got %d hits", stats.totalHits())
	}
}

func TestGameDetailsFallbackFailureAborts(t *testing.T) {
	stats := newFakeUpstream(t)
	stats.handle("/v1.1/game/2/feed/live", http.StatusNotFound, `{}`)
	stats.ok("/v1/game/2/contextMetrics", `{"game": {}}`)
	stats.handle("/v1/game/2/linescore", http.StatusInternalServerError, `{}`)
	svc := newTestServices(t, stats, nil, nil, nil)

	if _, err := svc.Games.GameDetails(context.Background(), 2); err == nil {
		t.Fatal("expected error")
	}
	if n := stats.hitCount("/v1/game/2/boxscore"); n != 0 {
		t.Errorf("boxscore called %d times after linescore failure", n)
	}
}

func TestGameDetailsIsIdempotent(t *testing.T) {
	stats := newFakeUpstream(t)
	stats.ok("/v1.1/game/745001/feed/live", liveFeedBody)
	svc := newTestServices(t, stats, nil, nil, nil)

	first, err := svc.Games.GameDetails(context.Background(), 745001)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Games.GameDetails(context.Background(), 745001)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("repeated calls differ:\n%s\n%s", a, b)
	}
}
