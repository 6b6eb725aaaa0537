// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package item_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/core/item"
	"github.com/periplus-travel/periplus/internal/platform/apperr"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/media"
)

type fakeRepo struct {
	items   []*item.Item
	fail    bool
	created *item.Item
}

func (repo *fakeRepo) ListPublished(context.Context, item.Filter, int, int) ([]*item.Item, int, error) {
	if repo.fail {
		return nil, 0, errors.New("connection refused")
	}
	return repo.items, len(repo.items), nil
}

func (repo *fakeRepo) GetPublishedBySlug(_ context.Context, slug string) (*item.Item, error) {
	for _, existing := range repo.items {
		if existing.Slug == slug {
			return existing, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) Get(_ context.Context, id int64) (*item.Item, error) {
	for _, existing := range repo.items {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) Create(_ context.Context, created *item.Item) error {
	created.ID = int64(len(repo.items) + 1)
	repo.created = created
	return nil
}

func (repo *fakeRepo) Update(context.Context, *item.Item) error { return nil }
func (repo *fakeRepo) Delete(context.Context, int64) error      { return nil }

func newTestService(repo *fakeRepo) *item.Service {
	resolver := media.NewResolver("https://storage.periplus.travel", "content", nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return item.NewService(item.KindAccommodation, repo, resolver, logger)
}

func TestService_PublishedDegrades(t *testing.T) {
	service := newTestService(&fakeRepo{fail: true})

	items, total := service.Published(context.Background(), item.Filter{}, 20, 0)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestService_Create(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		repo := &fakeRepo{}
		service := newTestService(repo)

		lodging := "guesthouse"
		created, err := service.Create(context.Background(), item.Input{
			DestinationID: 3,
			Name:          "Porto Vecchio Suites",
			Slug:          "porto-vecchio-suites",
			Status:        "published",
			Category:      &lodging,
		})
		require.NoError(t, err)
		require.NotNil(t, repo.created)
		assert.Equal(t, "guesthouse", *created.Category)
	})

	t.Run("blank_category_stored_as_null", func(t *testing.T) {
		repo := &fakeRepo{}
		service := newTestService(repo)

		blank := "  "
		created, err := service.Create(context.Background(), item.Input{
			DestinationID: 3,
			Name:          "Porto Vecchio Suites",
			Slug:          "porto-vecchio-suites",
			Category:      &blank,
		})
		require.NoError(t, err)
		assert.Nil(t, created.Category)
	})

	t.Run("missing_destination_rejected", func(t *testing.T) {
		service := newTestService(&fakeRepo{})

		_, err := service.Create(context.Background(), item.Input{
			Name: "Porto Vecchio Suites",
			Slug: "porto-vecchio-suites",
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}
