package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Quote source (ExchangeRate-API compatible)
	ExchangeRateAPIKey     string
	ExchangeRateAPIBaseURL string
	HTTPClientTimeout      time.Duration

	// Snapshot refresh cadence
	RefreshInterval time.Duration

	// HTTP surface
	RateLimit          string // ulule/limiter format, e.g. "60-M"
	CORSAllowedOrigins string // comma-separated, "*" allows all

	// Analytics (optional)
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("EXCHANGE_RATE_API_KEY", "")
	viper.SetDefault("EXCHANGE_RATE_API_BASE_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("HTTP_CLIENT_TIMEOUT", "10s")
	viper.SetDefault("REFRESH_INTERVAL", "5m")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	// The quote source settings are allowed to be absent: fetches then fail
	// with a configuration error, the dashboard itself still serves.
	cfg.ExchangeRateAPIKey = viper.GetString("EXCHANGE_RATE_API_KEY")
	if cfg.ExchangeRateAPIKey == "" {
		log.Println("Warning: EXCHANGE_RATE_API_KEY not set. Rate fetches will fail until it is provided.")
	}

	cfg.ExchangeRateAPIBaseURL = viper.GetString("EXCHANGE_RATE_API_BASE_URL")
	if cfg.ExchangeRateAPIBaseURL == "" {
		log.Println("Warning: EXCHANGE_RATE_API_BASE_URL not set. Rate fetches will fail until it is provided.")
	}

	// Load HTTP client timeout for outbound quote requests (e.g., "10s")
	httpTimeoutStr := viper.GetString("HTTP_CLIENT_TIMEOUT")
	httpTimeout, err := time.ParseDuration(httpTimeoutStr)
	if err != nil {
		httpTimeout = 10 * time.Second
		if httpTimeoutStr != "" {
			log.Printf("Warning: Invalid value for HTTP_CLIENT_TIMEOUT ('%s'). Defaulting to %s.\n", httpTimeoutStr, httpTimeout.String())
		}
	}
	cfg.HTTPClientTimeout = httpTimeout

	// Load refresh interval (e.g., "5m"); the scheduler re-fetches on this cadence
	refreshIntervalStr := viper.GetString("REFRESH_INTERVAL")
	refreshInterval, err := time.ParseDuration(refreshIntervalStr)
	if err != nil || refreshInterval <= 0 {
		refreshInterval = 5 * time.Minute
		if refreshIntervalStr != "" {
			log.Printf("Warning: Invalid value for REFRESH_INTERVAL ('%s'). Defaulting to %s.\n", refreshIntervalStr, refreshInterval.String())
		}
	}
	cfg.RefreshInterval = refreshInterval

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "60-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	cfg.CORSAllowedOrigins = viper.GetString("CORS_ALLOWED_ORIGINS")
	if cfg.CORSAllowedOrigins == "" {
		cfg.CORSAllowedOrigins = "*"
	}

	// Optional: analytics stay off when the key is absent
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
