package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

var ErrMissingAPIKey = errors.New("TMDB_API_KEY is not set")

type Config struct {
	TMDBAPIKey       string
	TMDBBaseURL      string
	TMDBImageBaseURL string
	TMDBLanguage     string
	TMDBTimeout      time.Duration
	SessionSecret    string
	ServerPort       string
	Environment      string
	StaticDir        string
	RateLimit        int
	RateLimitWindow  time.Duration
	Debug            bool
}

// Load reads the configuration from the environment. A missing TMDB API key
// is fatal: the application is useless without one.
func Load() (*Config, error) {
	cfg := &Config{
		TMDBAPIKey:       getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:      getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3/"),
		TMDBImageBaseURL: getEnv("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p/"),
		TMDBLanguage:     getEnv("TMDB_LANGUAGE", "en-US"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production"),
		ServerPort:       getEnv("PORT", "5000"),
		Environment:      getEnv("ENV", "development"),
		StaticDir:        getEnv("STATIC_DIR", "static"),
		Debug:            getEnv("DEBUG", "false") == "true",
	}

	var err error
	if cfg.TMDBTimeout, err = time.ParseDuration(getEnv("TMDB_TIMEOUT", "15s")); err != nil {
		return nil, fmt.Errorf("invalid TMDB_TIMEOUT: %w", err)
	}
	if cfg.RateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "0")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %w", err)
	}
	if cfg.RateLimitWindow, err = time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields Load cannot default.
func (c *Config) Validate() error {
	if c.TMDBAPIKey == "" {
		return ErrMissingAPIKey
	}
	for name, raw := range map[string]string{
		"TMDB_BASE_URL":       c.TMDBBaseURL,
		"TMDB_IMAGE_BASE_URL": c.TMDBImageBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}
	if c.TMDBTimeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive, got %s", c.TMDBTimeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative, got %d", c.RateLimit)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
