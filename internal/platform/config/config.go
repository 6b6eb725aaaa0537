// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

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
  - DI-Friendly: Passed to core components (DB, Redis, geo resolver) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/periplus-travel/periplus/pkg/query"
)

// # Feature Flags

// Flag is a lenient boolean for feature toggles.
//
// Only the tokens "1", "true", "yes" and "on" (case-insensitive) enable the
// flag. Any other value — including absence — leaves it disabled. Flags never
// fail configuration loading.
type Flag bool

// ParseFlag maps a raw environment value to a [Flag].
func ParseFlag(raw string) Flag {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Enabled reports whether the flag is set.
func (f Flag) Enabled() bool { return bool(f) }

// # Configuration Schema

// Config holds all runtime configuration for the Periplus API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL).
	//
	// Two DSNs, two privilege levels: the admin DSN connects as the service
	// role used for CMS writes; the public DSN connects as a restricted
	// read-only role used for publicly cacheable queries. Which one a store
	// uses is decided by the calling operation, never inferred.
	AdminDatabaseURL  string `env:"ADMIN_DATABASE_URL,required"`
	PublicDatabaseURL string `env:"PUBLIC_DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Cryptographic keys for editor identity signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Geo resolver source selection: read from the precomputed, pre-joined
	// view tables instead of the raw normalized tables.
	UseGeoViews Flag `env:"USE_GEO_VIEWS"`

	// Object Storage (content images)
	StorageBaseURL string `env:"STORAGE_BASE_URL" envDefault:"https://storage.periplus.travel"`
	StorageBucket  string `env:"STORAGE_BUCKET"   envDefault:"content"`

	// ImageHosts is the comma-separated allow-list of external image hosts
	// that may be served as-is (in addition to the storage host).
	ImageHosts string `env:"IMAGE_HOSTS"`

	// Geocoding provider (optional; the admin geocode endpoint degrades
	// gracefully when unset)
	GeocoderURL    string `env:"GEOCODER_URL"`
	GeocoderAPIKey string `env:"GEOCODER_API_KEY"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Map environment variables to struct fields. This fails if any field
	// marked 'required' is missing, naming the variable in the error.
	// Flag fields use the lenient truthy-token parser and never fail.
	options := env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(Flag(false)): func(raw string) (interface{}, error) {
				return ParseFlag(raw), nil
			},
		},
	}

	if err := env.ParseWithOptions(cfg, options); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// ImageHostAllowlist returns the parsed external image host allow-list.
func (c *Config) ImageHostAllowlist() []string {
	return query.StringSlice(c.ImageHosts)
}

// ExtraOriginList returns the parsed additional CORS origins.
func (c *Config) ExtraOriginList() []string {
	return query.StringSlice(c.ExtraOrigins)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
