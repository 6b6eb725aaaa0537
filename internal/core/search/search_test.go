// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package search_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/core/search"
)

func staticSource(kind string, names ...string) search.Source {
	return search.NewSource(kind, func(_ context.Context, query string, limit int) ([]search.Hit, error) {
		var hits []search.Hit
		for index, name := range names {
			if query != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
				continue
			}
			hits = append(hits, search.Hit{Kind: kind, ID: int64(index + 1), Name: name})
			if len(hits) == limit {
				break
			}
		}
		return hits, nil
	})
}

func failingSource(kind string) search.Source {
	return search.NewSource(kind, func(context.Context, string, int) ([]search.Hit, error) {
		return nil, errors.New("connection refused")
	})
}

func newTestService(sources ...search.Source) *search.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return search.NewService(logger, sources...)
}

/*
TestService_FanOut checks the concatenation contract: results arrive grouped
by source in registration order, each source capped at the limit.
*/
func TestService_FanOut(t *testing.T) {
	service := newTestService(
		staticSource("sight", "Acropolis", "Agora"),
		staticSource("tour", "Acropolis Walking Tour"),
	)

	hits := service.Search(context.Background(), "a", 5)
	require.Len(t, hits, 3)
	assert.Equal(t, "sight", hits[0].Kind)
	assert.Equal(t, "sight", hits[1].Kind)
	assert.Equal(t, "tour", hits[2].Kind)
}

/*
TestService_SourceFailureDegrades pins the uniform degrade policy: one
failing source contributes nothing and the others still answer.
*/
func TestService_SourceFailureDegrades(t *testing.T) {
	service := newTestService(
		failingSource("sight"),
		staticSource("tour", "Acropolis Walking Tour"),
	)

	hits := service.Search(context.Background(), "acropolis", 5)
	require.Len(t, hits, 1)
	assert.Equal(t, "tour", hits[0].Kind)
}

func TestService_LimitCaps(t *testing.T) {
	var names []string
	for i := 0; i < 30; i++ {
		names = append(names, fmt.Sprintf("Sight %02d", i))
	}

	service := newTestService(
		staticSource("sight", names...),
		staticSource("tour", names...),
	)

	t.Run("per_source_cap", func(t *testing.T) {
		hits := service.Search(context.Background(), "sight", 3)
		assert.Len(t, hits, 6)
	})

	t.Run("default_limit", func(t *testing.T) {
		hits := service.Search(context.Background(), "", 0)
		assert.Len(t, hits, 2*search.DefaultLimit)
	})

	t.Run("limit_clamped_to_max", func(t *testing.T) {
		hits := service.Search(context.Background(), "", 500)
		assert.Len(t, hits, 2*search.MaxLimit)
	})
}

func TestService_NoSources(t *testing.T) {
	service := newTestService()
	assert.Empty(t, service.Search(context.Background(), "anything", 5))
}
