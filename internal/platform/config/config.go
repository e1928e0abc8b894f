// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (store, analyzer) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Store Drivers

const (
	// DriverFile keeps one file per key under DataDir.
	DriverFile = "file"
	// DriverMemory keeps everything in process memory (tests, demos).
	DriverMemory = "memory"
	// DriverRedis stores keys in Redis under RedisPrefix.
	DriverRedis = "redis"
	// DriverPostgres stores keys in the kv_entries table.
	DriverPostgres = "postgres"
)

// # Analyzer Modes

const (
	// AnalyzerNone disables automatic attribute detection.
	AnalyzerNone = "none"
	// AnalyzerVision uses Google Cloud Vision label and color detection.
	AnalyzerVision = "vision"
	// AnalyzerHTTP posts the photo to a JSON endpoint returning garment attributes.
	AnalyzerHTTP = "http"
)

// # Configuration Schema

// Config holds all runtime configuration for the closet server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Key-value store backing the three aggregates
	StoreDriver string `env:"STORE_DRIVER"      envDefault:"file"`
	DataDir     string `env:"DATA_DIR"          envDefault:"./data/closet"`
	QuotaBytes  int64  `env:"STORE_QUOTA_BYTES" envDefault:"5242880"`

	// SeedSampleData fills an empty catalog with the sample wardrobe on first start.
	SeedSampleData bool `env:"SEED_SAMPLE_DATA" envDefault:"true"`

	// Relational Database (PostgreSQL), used when StoreDriver is "postgres"
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath overrides the embedded SQL migrations with a directory on disk.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value Cache (Redis), used when StoreDriver is "redis"
	RedisURL    string `env:"REDIS_URL"`
	RedisPrefix string `env:"REDIS_PREFIX" envDefault:"closet:"`

	// Image analysis collaborator
	Analyzer         string        `env:"ANALYZER"          envDefault:"none"`
	AnalyzerEndpoint string        `env:"ANALYZER_ENDPOINT"`
	AnalyzerAPIKey   string        `env:"ANALYZER_API_KEY"`
	AnalysisTimeout  time.Duration `env:"ANALYSIS_TIMEOUT"  envDefault:"30s"`

	// Per-IP request throttling
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates
// the driver-specific requirements.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks cross-field requirements that struct tags cannot express.
func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverFile, DriverMemory:
	case DriverRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config: REDIS_URL is required for store driver %q", c.StoreDriver)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for store driver %q", c.StoreDriver)
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.Analyzer {
	case AnalyzerNone, AnalyzerVision:
	case AnalyzerHTTP:
		if c.AnalyzerEndpoint == "" {
			return fmt.Errorf("config: ANALYZER_ENDPOINT is required for analyzer %q", c.Analyzer)
		}
	default:
		return fmt.Errorf("config: unknown ANALYZER %q", c.Analyzer)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("config: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	if c.QuotaBytes < 0 {
		return fmt.Errorf("config: STORE_QUOTA_BYTES must not be negative")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigins returns the comma-separated EXTRA_ORIGINS as a trimmed list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
