package statsapi

import "encoding/json"

// Every field is optional on the wire; absent values decode to zero values.

// Ref is the common {id, name} reference StatsAPI embeds everywhere.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PersonRef is a player reference as it appears in rosters, leaders and boxscores.
type PersonRef struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type Position struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type GameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

// ScheduleResponse is returned by /v1/schedule.
type ScheduleResponse struct {
	TotalGames int            `json:"totalGames"`
	Dates      []ScheduleDate `json:"dates"`
}

type ScheduleDate struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

// ScheduleGame is one game record. The contextMetrics endpoint embeds the same shape.
type ScheduleGame struct {
	GamePk   int        `json:"gamePk"`
	GameDate string     `json:"gameDate"`
	GameType string     `json:"gameType"`
	Status   GameStatus `json:"status"`
	Teams    struct {
		Away ScheduleTeam `json:"away"`
		Home ScheduleTeam `json:"home"`
	} `json:"teams"`
	Venue Ref `json:"venue"`
}

type ScheduleTeam struct {
	Score *int `json:"score"`
	Team  Ref  `json:"team"`
}

// PeopleResponse is returned by /v1/people, /v1/people/{id} and /v1/people/search.
type PeopleResponse struct {
	People []Person `json:"people"`
}

type Person struct {
	ID              int      `json:"id"`
	FullName        string   `json:"fullName"`
	CurrentAge      *int     `json:"currentAge"`
	BirthDate       string   `json:"birthDate"`
	PrimaryNumber   string   `json:"primaryNumber"`
	CurrentTeam     Ref      `json:"currentTeam"`
	PrimaryPosition Position `json:"primaryPosition"`
}

// TeamsResponse is returned by /v1/teams and /v1/teams/{id}.
type TeamsResponse struct {
	Teams []Team `json:"teams"`
}

type Team struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	TeamName        string `json:"teamName"`
	LocationName    string `json:"locationName"`
	FirstYearOfPlay string `json:"firstYearOfPlay"`
	Venue           Ref    `json:"venue"`
	League          Ref    `json:"league"`
	Division        Ref    `json:"division"`
}

// RosterResponse is returned by /v1/teams/{id}/roster.
type RosterResponse struct {
	Roster []RosterEntry `json:"roster"`
}

type RosterEntry struct {
	Person       PersonRef `json:"person"`
	JerseyNumber string    `json:"jerseyNumber"`
	Position     Position  `json:"position"`
}

// StatsResponse is returned by /v1/people/{id}/stats.
type StatsResponse struct {
	Stats []StatGroup `json:"stats"`
}

type StatGroup struct {
	Group  DisplayName `json:"group"`
	Type   DisplayName `json:"type"`
	Splits []Split     `json:"splits"`
}

type DisplayName struct {
	DisplayName string `json:"displayName"`
}

type Split struct {
	Season string         `json:"season"`
	Stat   map[string]any `json:"stat"`
	Team   Ref            `json:"team"`
}

// LeadersResponse is returned by /v1/stats/leaders.
type LeadersResponse struct {
	LeagueLeaders []LeaderCategory `json:"leagueLeaders"`
}

type LeaderCategory struct {
	LeaderCategory string   `json:"leaderCategory"`
	StatGroup      string   `json:"statGroup"`
	Leaders        []Leader `json:"leaders"`
}

type Leader struct {
	Rank   int       `json:"rank"`
	Value  string    `json:"value"`
	Person PersonRef `json:"person"`
}

// StandingsResponse is returned by /v1/standings.
type StandingsResponse struct {
	Records []StandingsRecord `json:"records"`
}

type StandingsRecord struct {
	League      Ref          `json:"league"`
	Division    Ref          `json:"division"`
	TeamRecords []TeamRecord `json:"teamRecords"`
}

type TeamRecord struct {
	Team              Ref    `json:"team"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	WinningPercentage string `json:"winningPercentage"`
	GamesBack         string `json:"gamesBack"`
	Streak            struct {
		StreakCode string `json:"streakCode"`
	} `json:"streak"`
}

// LiveFeed is returned by /v1.1/game/{id}/feed/live.
type LiveFeed struct {
	GamePk   int `json:"gamePk"`
	GameData struct {
		Status GameStatus `json:"status"`
		Venue  Ref        `json:"venue"`
		Teams  struct {
			Away Ref `json:"away"`
			Home Ref `json:"home"`
		} `json:"teams"`
	} `json:"gameData"`
	LiveData struct {
		Linescore json.RawMessage `json:"linescore"`
		Boxscore  Boxscore        `json:"boxscore"`
	} `json:"liveData"`
}

// ContextMetrics is returned by /v1/game/{id}/contextMetrics.
type ContextMetrics struct {
	Game ScheduleGame `json:"game"`
}

// Boxscore is returned by /v1/game/{id}/boxscore and embedded in the live feed.
type Boxscore struct {
	Teams struct {
		Away BoxscoreTeam `json:"away"`
		Home BoxscoreTeam `json:"home"`
	} `json:"teams"`
}

type BoxscoreTeam struct {
	Team    Ref                       `json:"team"`
	Players map[string]BoxscorePlayer `json:"players"`
}

type BoxscorePlayer struct {
	Person       PersonRef `json:"person"`
	JerseyNumber string    `json:"jerseyNumber"`
	Position     Position  `json:"position"`
	Stats        struct {
		Batting  json.RawMessage `json:"batting"`
		Pitching json.RawMessage `json:"pitching"`
	} `json:"stats"`
}
