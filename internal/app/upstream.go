package app

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/guttosm/stockprice/config"
	"github.com/guttosm/stockprice/internal/rapidapi"
)

// ErrMissingAPIKey is returned when no RapidAPI key is configured.
var ErrMissingAPIKey = errors.New("rapidapi key is not configured")

// InitUpstream builds the RapidAPI client from the provided configuration.
//
// Parameters:
//   - cfg (config.Config): The application configuration object containing RapidAPI settings.
//
// Behavior:
//   - Validates that an API key is present and that the base URL is absolute.
//   - Applies base URL, host header and timeout from cfg.RapidAPI.
//   - Does not contact the API; every call to it consumes quota.
//
// Returns:
//   - *rapidapi.Client: a client safe for concurrent use.
//   - error: if the configuration cannot produce a usable client.
//
// Example usage:
//
//	client, err := app.InitUpstream(config.AppConfig)
//	if err != nil {
//	    log.Fatalf("❌ upstream: %v", err)
//	}
//	defer client.CloseIdleConnections()
func InitUpstream(cfg config.Config) (*rapidapi.Client, error) {
	if cfg.RapidAPI.Key == "" {
		return nil, ErrMissingAPIKey
	}

	u, err := url.Parse(cfg.RapidAPI.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid rapidapi base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid rapidapi base url %q: scheme and host are required", cfg.RapidAPI.BaseURL)
	}

	opts := []rapidapi.Option{rapidapi.WithBaseURL(cfg.RapidAPI.BaseURL)}
	if cfg.RapidAPI.Host != "" {
		opts = append(opts, rapidapi.WithHost(cfg.RapidAPI.Host))
	}
	if cfg.RapidAPI.Timeout > 0 {
		opts = append(opts, rapidapi.WithTimeout(cfg.RapidAPI.Timeout))
	}

	return rapidapi.NewClient(cfg.RapidAPI.Key, opts...), nil
}
