package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DefaultStatsAPIBase = "https://statsapi.mlb.com/api"
	DefaultWeatherBase  = "https://api.openweathermap.org/data/2.5"
	DefaultNewsBase     = "https://newsapi.org/v2"
	DefaultYouTubeBase  = "https://www.googleapis.com/youtube/v3"
)

// Config holds process-wide settings. It is built once at startup and
// passed by value to the components that need it.
type Config struct {
	Port           string
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string

	StatsAPIBase string

	WeatherAPIBase string
	WeatherAPIKey  string

	NewsAPIBase string
	NewsAPIKey  string

	YouTubeAPIBase string
	YouTubeAPIKey  string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:8080")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		StatsAPIBase:   getEnv("MLB_API_BASE", DefaultStatsAPIBase),
		WeatherAPIBase: getEnv("WEATHER_API_BASE", DefaultWeatherBase),
		WeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		NewsAPIBase:    getEnv("NEWS_API_BASE", DefaultNewsBase),
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		YouTubeAPIBase: getEnv("YOUTUBE_API_BASE", DefaultYouTubeBase),
		YouTubeAPIKey:  os.Getenv("YOUTUBE_API_KEY"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
