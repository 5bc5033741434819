package service

import "errors"

var (
	// ErrInvalidInput is returned when a caller parameter is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when the upstream has no matching resource.
	ErrNotFound = errors.New("not found")
	// ErrNotConfigured is returned when a provider credential is missing.
	ErrNotConfigured = errors.New("provider not configured")
	// ErrInvalidCredential is returned when a provider rejects the configured key.
	ErrInvalidCredential = errors.New("provider rejected credential")
	// ErrWeatherUnavailable covers every other weather provider failure.
	ErrWeatherUnavailable = errors.New("weather unavailable")
)
