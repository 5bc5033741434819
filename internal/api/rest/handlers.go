package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fortuna/dugout/internal/service"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const (
	serviceName    = "dugout"
	serviceVersion = "1.0.0"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	games      *service.GameService
	players    *service.PlayerService
	teams      *service.TeamService
	leaders    *service.LeaderService
	news       *service.NewsService
	highlights *service.HighlightService
}

// NewHandler creates a new handler
func NewHandler(services *service.Services) *Handler {
	return &Handler{
		games:      services.Games,
		players:    services.Players,
		teams:      services.Teams,
		leaders:    services.Leaders,
		news:       services.News,
		highlights: services.Highlights,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// GetSchedule returns the games for a date, or today when none is given.
// Upstream failures degrade to an empty list.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	respondJSON(w, http.StatusOK, h.games.Schedule(r.Context(), date))
}

// Search returns players then teams matching q
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'q'", nil)
		return
	}

	results, err := h.players.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Missing query parameter 'q'", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch data from external provider", err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// GetPlayerStats returns year-by-year stats keyed by season
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(mux.Vars(r)["playerID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	stats, err := h.players.PlayerStats(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(w, http.StatusNotFound, "No statistical data found for player", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch player stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetPlayerDetails returns a single player's profile
func (h *Handler) GetPlayerDetails(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(mux.Vars(r)["playerID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	player, err := h.players.PlayerDetails(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// GetTeamDetails returns a team with roster and weather
func (h *Handler) GetTeamDetails(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(mux.Vars(r)["teamID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team ID", err)
		return
	}

	team, err := h.teams.TeamDetails(r.Context(), teamID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Team not found", err)
		return
	}

	respondJSON(w, http.StatusOK, team)
}

// GetLeaders returns the current season's leaderboards
func (h *Handler) GetLeaders(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.leaders.Leaders(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch league leaders", err)
		return
	}

	respondJSON(w, http.StatusOK, leaders)
}

// GetStandings returns division standings for ?season=YYYY, defaulting to this year
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	season := 0
	if raw := r.URL.Query().Get("season"); raw != "" {
		s, err := strconv.Atoi(raw)
		if err != nil || s < 1876 {
			respondError(w, http.StatusBadRequest, "Invalid season (use YYYY)", err)
			return
		}
		season = s
	}

	standings, err := h.teams.Standings(r.Context(), season)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch standings", err)
		return
	}

	respondJSON(w, http.StatusOK, standings)
}

// GetGameDetails returns the boxscore view of a game
func (h *Handler) GetGameDetails(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(mux.Vars(r)["gameID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	details, err := h.games.GameDetails(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch game details", err)
		return
	}

	respondJSON(w, http.StatusOK, details)
}

// GetNews returns a page of ranked baseball news; bad page values mean page 1
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.news.News(r.Context(), page)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "News service unavailable", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetHighlights returns MLB video highlights for an optional q
func (h *Handler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	videos, err := h.highlights.Highlights(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "Highlights service unavailable", err)
		return
	}

	respondJSON(w, http.StatusOK, videos)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encoding response")
	}
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
		log.Warn().Err(err).Int("status", status).Msg(message)
	}

	respondJSON(w, status, response)
}
