// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/platform/config"
)

/*
TestParseFlag verifies the truthy-token semantics of feature flags.
*/
func TestParseFlag(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		enabled bool
	}{
		{"numeric_one", "1", true},
		{"lower_true", "true", true},
		{"upper_true", "TRUE", true},
		{"yes", "yes", true},
		{"on", "On", true},
		{"padded", "  true  ", true},
		{"empty", "", false},
		{"zero", "0", false},
		{"no", "no", false},
		{"garbage", "enabled", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.enabled, config.ParseFlag(tt.raw).Enabled())
		})
	}
}

/*
TestLoad_RequiredAndFlags loads a full environment and checks required
variables, flag parsing, and the image host allow-list splitting.
*/
func TestLoad_RequiredAndFlags(t *testing.T) {
	t.Setenv("ADMIN_DATABASE_URL", "postgres://service@localhost:5432/periplus")
	t.Setenv("PUBLIC_DATABASE_URL", "postgres://anon@localhost:5432/periplus")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "/tmp/priv.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/tmp/pub.pem")
	t.Setenv("USE_GEO_VIEWS", "yes")
	t.Setenv("IMAGE_HOSTS", "images.unsplash.com, photos.example.org ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.UseGeoViews.Enabled())
	assert.Equal(t, []string{"images.unsplash.com", "photos.example.org"}, cfg.ImageHostAllowlist())
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_MissingRequired asserts that a missing required variable fails fast
and names the variable.
*/
func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("ADMIN_DATABASE_URL", "postgres://service@localhost:5432/periplus")
	t.Setenv("PUBLIC_DATABASE_URL", "placeholder")
	os.Unsetenv("PUBLIC_DATABASE_URL")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "/tmp/priv.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/tmp/pub.pem")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PUBLIC_DATABASE_URL")
}
