package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fortuna/dugout/internal/config"
	"github.com/fortuna/dugout/internal/service"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(cfg config.Config, services *service.Services) *Server {
	handler := NewHandler(services)

	return &Server{
		port:    cfg.Port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Port),
			Handler: NewRouter(handler, cfg.AllowedOrigins),
		},
	}
}

// NewRouter builds the route table wrapped in the middleware chain
func NewRouter(handler *Handler, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Schedule
	api.HandleFunc("/schedule", handler.GetSchedule).Methods("GET")
	api.HandleFunc("/schedule/{date}", handler.GetSchedule).Methods("GET")

	// Search
	api.HandleFunc("/search", handler.Search).Methods("GET")

	// Players
	api.HandleFunc("/player/{playerID:[0-9]+}/stats", handler.GetPlayerStats).Methods("GET")
	api.HandleFunc("/player/{playerID:[0-9]+}/details", handler.GetPlayerDetails).Methods("GET")

	// Teams and league
	api.HandleFunc("/team/{teamID:[0-9]+}/details", handler.GetTeamDetails).Methods("GET")
	api.HandleFunc("/leaders", handler.GetLeaders).Methods("GET")
	api.HandleFunc("/standings", handler.GetStandings).Methods("GET")

	// Games
	api.HandleFunc("/game/{gameID:[0-9]+}/details", handler.GetGameDetails).Methods("GET")

	// Media
	api.HandleFunc("/news", handler.GetNews).Methods("GET")
	api.HandleFunc("/highlights", handler.GetHighlights).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(router)
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
