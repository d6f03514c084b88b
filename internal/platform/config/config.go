// Package config loads the dashboard configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config contains all runtime settings for the dashboard process.
type Config struct {
	// Addr is the listen address of the dashboard HTTP server.
	Addr string `env:"ADDR" envDefault:":8080"`

	// BackendURL is the base URL of the trading backend REST API.
	BackendURL string `env:"BACKEND_URL" envDefault:"http://localhost:5000"`

	// RequestTimeout bounds every backend call. A request that exceeds it
	// is reported as a timeout, not a generic failure.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// SessionSecret signs the session cookie. Must be set in production.
	SessionSecret string `env:"SESSION_SECRET,required,notEmpty"`

	// SessionTTL is how long an issued session cookie stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
