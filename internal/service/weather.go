package service

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/fortuna/dugout/internal/ingest"
)

// cityOverrides maps franchises whose location name is not the city a
// weather lookup should use.
var cityOverrides = map[string]string{
	"Yankees":   "New York",
	"Mets":      "New York",
	"Cubs":      "Chicago",
	"White Sox": "Chicago",
}

// resolveCity applies the franchise override table to a city or team name.
func resolveCity(name string) string {
	if city, ok := cityOverrides[name]; ok {
		return city
	}
	return name
}

// Weather is a current-conditions snapshot
type Weather struct {
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WeatherService resolves current weather for a city
type WeatherService struct {
	provider WeatherProvider
}

// NewWeatherService creates a new weather service
func NewWeatherService(provider WeatherProvider) *WeatherService {
	return &WeatherService{provider: provider}
}

// WeatherForCity returns current conditions. It fails with ErrNotConfigured,
// ErrInvalidCredential or ErrWeatherUnavailable; callers treat all three as
// "weather unknown".
func (s *WeatherService) WeatherForCity(ctx context.Context, name string) (*Weather, error) {
	if !s.provider.Configured() {
		return nil, ErrNotConfigured
	}

	city := resolveCity(name)
	current, err := s.provider.FetchCurrent(ctx, city)
	if err != nil {
		if ingest.IsStatus(err, http.StatusUnauthorized) {
			return nil, fmt.Errorf("weather for %s: %w", city, ErrInvalidCredential)
		}
		return nil, fmt.Errorf("weather for %s: %w: %w", city, ErrWeatherUnavailable, err)
	}

	w := &Weather{Temperature: int(math.Round(current.Main.Temp))}
	if len(current.Weather) > 0 {
		w.Description = current.Weather[0].Description
		w.Icon = current.Weather[0].Icon
	}
	return w, nil
}
