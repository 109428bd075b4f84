package config

import (
	"log"
	"time"

	"github.com/spf13/viper"

	"github.com/guttosm/stockprice/internal/rapidapi"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the upstream RapidAPI connection.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	RATE_LIMIT_PER_MINUTE=60
//	RAPIDAPI_KEY=xxxxxxxx
//	RAPIDAPI_BASE_URL=https://latest-stock-price.p.rapidapi.com
//	RAPIDAPI_HOST=latest-stock-price.p.rapidapi.com
//	RAPIDAPI_TIMEOUT=15s
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	RapidAPI RapidAPIConfig // Upstream price API settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMinute int    // Requests allowed per client IP per minute
}

// RapidAPIConfig defines how the price listing is fetched.
//
// Fields:
//   - Key: RapidAPI key sent as X-RapidAPI-Key.
//   - BaseURL: API root; the listing is read from <BaseURL>/any.
//   - Host: value of the X-RapidAPI-Host header.
//   - Timeout: per-request timeout of the upstream HTTP client.
type RapidAPIConfig struct {
	Key     string
	BaseURL string
	Host    string
	Timeout time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("RAPIDAPI_BASE_URL", rapidapi.DefaultBaseURL)
	viper.SetDefault("RAPIDAPI_HOST", rapidapi.DefaultHost)
	viper.SetDefault("RAPIDAPI_TIMEOUT", rapidapi.DefaultTimeout)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		RapidAPI: RapidAPIConfig{
			Key:     viper.GetString("RAPIDAPI_KEY"),
			BaseURL: viper.GetString("RAPIDAPI_BASE_URL"),
			Host:    viper.GetString("RAPIDAPI_HOST"),
			Timeout: viper.GetDuration("RAPIDAPI_TIMEOUT"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.RapidAPI.Key == "" {
		missing = append(missing, "RAPIDAPI_KEY")
	}
	if AppConfig.RapidAPI.BaseURL == "" {
		missing = append(missing, "RAPIDAPI_BASE_URL")
	}
	if AppConfig.RapidAPI.Host == "" {
		missing = append(missing, "RAPIDAPI_HOST")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}
