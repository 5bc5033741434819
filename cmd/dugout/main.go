package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/dugout/internal/api/rest"
	"github.com/fortuna/dugout/internal/config"
	"github.com/fortuna/dugout/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	serviceName    = "dugout"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)

	log.Info().Str("version", serviceVersion).Msgf("starting %s - MLB data aggregation service", serviceName)

	services, err := service.NewServices(cfg, clockwork.NewRealClock())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build services")
	}

	for name, key := range map[string]string{
		"weather":    cfg.WeatherAPIKey,
		"news":       cfg.NewsAPIKey,
		"highlights": cfg.YouTubeAPIKey,
	} {
		if key == "" {
			log.Warn().Str("provider", name).Msg("no API key configured, feature disabled")
		}
	}

	restServer := rest.NewServer(cfg, services)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting REST API server")
		if err := restServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("REST server error")
		}
	}()

	log.Info().Strs("allowed_origins", cfg.AllowedOrigins).Msgf("REST API: http://0.0.0.0:%s/api", cfg.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("REST API server shutdown error")
	}

	log.Info().Msgf("%s stopped", serviceName)
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
