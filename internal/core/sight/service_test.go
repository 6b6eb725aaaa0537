// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package sight_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/core/sight"
	"github.com/periplus-travel/periplus/internal/platform/apperr"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/media"
)

type fakeRepo struct {
	sights  map[int64]*sight.Sight
	fail    bool
	created *sight.Sight
	updated *sight.Sight
}

var errStorage = errors.New("connection refused")

func (repo *fakeRepo) ListPublished(_ context.Context, _ sight.Filter, _, _ int) ([]*sight.Sight, int, error) {
	if repo.fail {
		return nil, 0, errStorage
	}
	var out []*sight.Sight
	for _, item := range repo.sights {
		out = append(out, item)
	}
	return out, len(out), nil
}

func (repo *fakeRepo) GetPublishedBySlug(_ context.Context, slug string) (*sight.Sight, error) {
	if repo.fail {
		return nil, errStorage
	}
	for _, item := range repo.sights {
		if item.Slug == slug {
			return item, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) Get(_ context.Context, id int64) (*sight.Sight, error) {
	if item, ok := repo.sights[id]; ok {
		return item, nil
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) Create(_ context.Context, item *sight.Sight) error {
	if repo.fail {
		return errStorage
	}
	item.ID = int64(len(repo.sights) + 1)
	repo.created = item
	return nil
}

func (repo *fakeRepo) Update(_ context.Context, item *sight.Sight) error {
	repo.updated = item
	return nil
}

func (repo *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(repo.sights, id)
	return nil
}

func newTestService(repo *fakeRepo) *sight.Service {
	resolver := media.NewResolver("https://storage.periplus.travel", "content", nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sight.NewService(repo, resolver, logger)
}

/*
TestService_PublishedDegrades pins the public read contract: a storage
failure yields an empty listing and a nil detail row, never an error.
*/
func TestService_PublishedDegrades(t *testing.T) {
	service := newTestService(&fakeRepo{fail: true})

	sights, total := service.Published(context.Background(), sight.Filter{}, 20, 0)
	assert.Empty(t, sights)
	assert.Zero(t, total)

	assert.Nil(t, service.PublishedBySlug(context.Background(), "white-tower"))
}

/*
TestService_ImageResolution checks that read paths attach the resolved first
image without touching the stored collection.
*/
func TestService_ImageResolution(t *testing.T) {
	repo := &fakeRepo{sights: map[int64]*sight.Sight{
		1: {
			ID:     1,
			Slug:   "white-tower",
			Status: "published",
			Images: json.RawMessage(`["towers/white.jpg"]`),
		},
	}}
	service := newTestService(repo)

	got := service.PublishedBySlug(context.Background(), "white-tower")
	require.NotNil(t, got)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://storage.periplus.travel/content/towers/white.jpg", *got.ImageURL)
	assert.JSONEq(t, `["towers/white.jpg"]`, string(got.Images))
}

func TestService_Create(t *testing.T) {
	note := "last entry 30min before close"

	t.Run("valid_with_children", func(t *testing.T) {
		repo := &fakeRepo{sights: map[int64]*sight.Sight{}}
		service := newTestService(repo)

		created, err := service.Create(context.Background(), sight.Input{
			DestinationID: 9,
			Name:          "White Tower",
			Slug:          "white-tower",
			Status:        "published",
			OpeningHours: []sight.OpeningHourInput{
				{Weekday: 1, Opens: "09:00", Closes: "17:00", Note: &note},
			},
			OpeningExceptions: []sight.OpeningExceptionInput{
				{Date: "2026-12-25", Closed: true},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, repo.created)

		require.Len(t, created.OpeningHours, 1)
		assert.Equal(t, 1, created.OpeningHours[0].Weekday)

		require.Len(t, created.OpeningExceptions, 1)
		assert.True(t, created.OpeningExceptions[0].Closed)
		assert.Equal(t, 2026, created.OpeningExceptions[0].Date.Year())
	})

	t.Run("derives_slug_from_name", func(t *testing.T) {
		repo := &fakeRepo{sights: map[int64]*sight.Sight{}}
		service := newTestService(repo)

		created, err := service.Create(context.Background(), sight.Input{
			DestinationID: 9,
			Name:          "Cap Drastis Viewpoint",
		})
		require.NoError(t, err)
		assert.Equal(t, "cap-drastis-viewpoint", created.Slug)
	})

	t.Run("defaults_to_draft", func(t *testing.T) {
		repo := &fakeRepo{sights: map[int64]*sight.Sight{}}
		service := newTestService(repo)

		created, err := service.Create(context.Background(), sight.Input{
			DestinationID: 9,
			Name:          "White Tower",
			Slug:          "white-tower",
		})
		require.NoError(t, err)
		assert.Equal(t, "draft", created.Status)
	})

	t.Run("rejects_bad_weekday", func(t *testing.T) {
		service := newTestService(&fakeRepo{sights: map[int64]*sight.Sight{}})

		_, err := service.Create(context.Background(), sight.Input{
			DestinationID: 9,
			Name:          "White Tower",
			Slug:          "white-tower",
			OpeningHours:  []sight.OpeningHourInput{{Weekday: 7}},
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("rejects_bad_exception_date", func(t *testing.T) {
		service := newTestService(&fakeRepo{sights: map[int64]*sight.Sight{}})

		_, err := service.Create(context.Background(), sight.Input{
			DestinationID:     9,
			Name:              "White Tower",
			Slug:              "white-tower",
			OpeningExceptions: []sight.OpeningExceptionInput{{Date: "25/12/2026"}},
		})
		require.Error(t, err)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		service := newTestService(&fakeRepo{sights: map[int64]*sight.Sight{}})

		_, err := service.Create(context.Background(), sight.Input{
			DestinationID: 9,
			Name:          "White Tower",
			Slug:          "white-tower",
			Status:        "archived",
		})
		require.Error(t, err)
	})
}
