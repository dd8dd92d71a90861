package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for both binaries.
type Config struct {
	APIAddr       string `envconfig:"API_ADDR" default:":8080"`
	DashboardAddr string `envconfig:"DASHBOARD_ADDR" default:":8081"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	PostgresDSN string `envconfig:"POSTGRES_DSN"`

	RedisAddr string        `envconfig:"REDIS_ADDR" default:""`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"60s"`

	// Base URL the dashboard uses to reach the analytics API.
	APIBaseURL  string        `envconfig:"API_BASE_URL" default:"http://127.0.0.1:8080"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// Shown as the at-risk KPI when the risk-list fetch fails.
	RiskFallbackCount int `envconfig:"RISK_FALLBACK_COUNT" default:"0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RequirePostgres fails when the API binary starts without a DSN.
func (c *Config) RequirePostgres() error {
	if c.PostgresDSN == "" {
		return errors.New("POSTGRES_DSN is not set")
	}
	return nil
}
