// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package media_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/platform/media"
)

func newResolver() *media.Resolver {
	return media.NewResolver(
		"https://storage.periplus.travel",
		"content",
		[]string{"images.unsplash.com"},
	)
}

/*
TestResolve covers the three input classes: absolute URLs (allow-listed and
not), bare storage keys, and empty values.
*/
func TestResolve(t *testing.T) {
	resolver := newResolver()

	tests := []struct {
		name string
		raw  string
		want *string
	}{
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{
			"bare_key",
			"sights/acropolis.jpg",
			ptr("https://storage.periplus.travel/content/sights/acropolis.jpg"),
		},
		{
			"bare_key_leading_slash",
			"/sights/acropolis.jpg",
			ptr("https://storage.periplus.travel/content/sights/acropolis.jpg"),
		},
		{
			"absolute_storage_host",
			"https://storage.periplus.travel/content/a.jpg",
			ptr("https://storage.periplus.travel/content/a.jpg"),
		},
		{
			"absolute_external_allowlisted",
			"https://images.unsplash.com/photo-123",
			ptr("https://images.unsplash.com/photo-123"),
		},
		{"absolute_unknown_host", "https://evil.example.com/a.jpg", nil},
		{"malformed_url", "https://%zz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

/*
TestResolve_Idempotent asserts that resolving an already-resolved URL is a
no-op: resolve(resolve(x)) == resolve(x).
*/
func TestResolve_Idempotent(t *testing.T) {
	resolver := newResolver()

	inputs := []string{
		"sights/acropolis.jpg",
		"https://images.unsplash.com/photo-123",
		"https://storage.periplus.travel/content/a.jpg",
	}

	for _, input := range inputs {
		once := resolver.Resolve(input)
		require.NotNil(t, once)

		twice := resolver.Resolve(*once)
		require.NotNil(t, twice)
		assert.Equal(t, *once, *twice)
	}
}

/*
TestFirstImageRef verifies that all three historical storage shapes of the
images column yield the same underlying path.
*/
func TestFirstImageRef(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain_string", `"a.jpg"`, "a.jpg"},
		{"string_array", `["a.jpg", "b.jpg"]`, "a.jpg"},
		{"object_array_url", `[{"url": "a.jpg"}]`, "a.jpg"},
		{"object_array_src", `[{"src": "a.jpg"}]`, "a.jpg"},
		{"empty_array", `[]`, ""},
		{"empty_value", ``, ""},
		{"null", `null`, ""},
		{"number", `42`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, media.FirstImageRef(json.RawMessage(tt.raw)))
		})
	}
}

/*
TestFirstImage resolves through the full pipeline for each shape.
*/
func TestFirstImage(t *testing.T) {
	resolver := newResolver()
	want := "https://storage.periplus.travel/content/a.jpg"

	for _, raw := range []string{`"a.jpg"`, `["a.jpg"]`, `[{"url": "a.jpg"}]`} {
		got := resolver.FirstImage(json.RawMessage(raw))
		require.NotNil(t, got, raw)
		assert.Equal(t, want, *got)
	}

	assert.Nil(t, resolver.FirstImage(nil))
}

func ptr(s string) *string { return &s }
