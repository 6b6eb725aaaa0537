// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package geo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/geo"
	"github.com/periplus-travel/periplus/internal/platform/apperr"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
)

// fakeRepo is an in-memory Repository for service tests. Any method whose
// fail flag is set returns a generic storage error.
type fakeRepo struct {
	regions      []geo.Row
	prefectures  []geo.Row
	divisions    []geo.Row
	destinations []geo.Destination
	fail         bool

	created *geo.Destination
	deleted []int64
}

var errStorage = errors.New("connection refused")

func (repo *fakeRepo) Regions(context.Context) ([]geo.Row, error) {
	if repo.fail {
		return nil, errStorage
	}
	return repo.regions, nil
}

func (repo *fakeRepo) PrefectureRows(context.Context) ([]geo.Row, error) {
	if repo.fail {
		return nil, errStorage
	}
	return repo.prefectures, nil
}

func (repo *fakeRepo) DivisionRows(context.Context) ([]geo.Row, error) {
	if repo.fail {
		return nil, errStorage
	}
	return repo.divisions, nil
}

func (repo *fakeRepo) RegionBySlug(_ context.Context, slug string) (*geo.Row, error) {
	if repo.fail {
		return nil, errStorage
	}
	for _, row := range repo.regions {
		if row.Slug == slug {
			return &row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) PrefectureBySlugInRegion(_ context.Context, slug, regionSlug string) (*geo.Row, error) {
	for _, row := range repo.prefectures {
		if row.Slug == slug && row.ParentSlug == regionSlug {
			return &row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) DivisionBySlugInPrefecture(_ context.Context, slug, prefectureSlug string) (*geo.Row, error) {
	for _, row := range repo.divisions {
		if row.Slug == slug && row.ParentSlug == prefectureSlug {
			return &row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) DestinationBySlugInDivision(_ context.Context, slug, divisionSlug string) (*geo.Destination, error) {
	division, err := repo.DivisionBySlugLoose(context.Background(), divisionSlug)
	if err != nil {
		return nil, err
	}
	for _, destination := range repo.destinations {
		if destination.Slug == slug && destination.DivisionID == division.ID {
			return &destination, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) PrefectureBySlugLoose(_ context.Context, slug string) (*geo.Row, error) {
	for _, row := range repo.prefectures {
		if row.Slug == slug {
			return &row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) DivisionBySlugLoose(_ context.Context, slug string) (*geo.Row, error) {
	for _, row := range repo.divisions {
		if row.Slug == slug {
			return &row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) DestinationBySlugLoose(_ context.Context, slug string) (*geo.Destination, error) {
	for _, destination := range repo.destinations {
		if destination.Slug == slug {
			return &destination, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) DestinationsByDivision(_ context.Context, divisionID int64) ([]geo.Destination, error) {
	if repo.fail {
		return nil, errStorage
	}
	var out []geo.Destination
	for _, destination := range repo.destinations {
		if destination.DivisionID == divisionID {
			out = append(out, destination)
		}
	}
	return out, nil
}

func (repo *fakeRepo) DestinationByID(_ context.Context, id int64) (*geo.Destination, error) {
	for _, destination := range repo.destinations {
		if destination.ID == id {
			return &destination, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) CreateDestination(_ context.Context, destination *geo.Destination) error {
	if repo.fail {
		return errStorage
	}
	destination.ID = int64(len(repo.destinations) + 1)
	repo.created = destination
	return nil
}

func (repo *fakeRepo) UpdateDestination(_ context.Context, destination *geo.Destination) error {
	if repo.fail {
		return errStorage
	}
	return nil
}

func (repo *fakeRepo) DeleteDestination(_ context.Context, id int64) error {
	repo.deleted = append(repo.deleted, id)
	return nil
}

func (repo *fakeRepo) UpdateGeocode(context.Context, int64, *float64, *float64, string, time.Time) error {
	return nil
}

func newTestService(repo *fakeRepo) *geo.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return geo.NewService(repo, nil, logger)
}

func seededRepo() *fakeRepo {
	return &fakeRepo{
		regions: []geo.Row{
			{ID: 1, Name: "Aegean", Slug: "aegean"},
		},
		prefectures: []geo.Row{
			{ID: 7, Name: "Crete", Slug: "crete", ParentID: 1, ParentSlug: "aegean"},
			{ID: 8, Name: "Cyclades", Slug: "cyclades", ParentID: 1, ParentSlug: "aegean"},
		},
		divisions: []geo.Row{
			{ID: 41, Name: "Chania", Slug: "chania", ParentID: 7, ParentSlug: "crete"},
		},
		destinations: []geo.Destination{
			{ID: 100, DivisionID: 41, Name: "Seitan Limania", Slug: "seitan-limania"},
		},
	}
}

/*
TestService_PublicReadsDegrade verifies the public read contract: storage
failures surface as empty results, never as errors or panics.
*/
func TestService_PublicReadsDegrade(t *testing.T) {
	service := newTestService(&fakeRepo{fail: true})
	ctx := context.Background()

	assert.Empty(t, service.Regions(ctx))
	assert.Empty(t, service.Prefectures(ctx))
	assert.Empty(t, service.Divisions(ctx))
	assert.Empty(t, service.DestinationsOf(ctx, 41))
	assert.Nil(t, service.ResolveRegion(ctx, "aegean"))
}

func TestService_FilterByParent(t *testing.T) {
	service := newTestService(seededRepo())
	ctx := context.Background()

	prefectures := service.PrefecturesOf(ctx, "aegean")
	require.Len(t, prefectures, 2)

	assert.Empty(t, service.PrefecturesOf(ctx, "ionian"))

	divisions := service.DivisionsOf(ctx, "crete")
	require.Len(t, divisions, 1)
	assert.Equal(t, "chania", divisions[0].Slug)
}

/*
TestService_Resolution covers strict versus loose slug lookup: strict
resolution honours the parent scope, loose resolution matches globally and
still returns some valid row.
*/
func TestService_Resolution(t *testing.T) {
	service := newTestService(seededRepo())
	ctx := context.Background()

	t.Run("strict_scoped", func(t *testing.T) {
		prefecture := service.ResolvePrefecture(ctx, "crete", "aegean")
		require.NotNil(t, prefecture)
		assert.Equal(t, int64(7), prefecture.ID)

		assert.Nil(t, service.ResolvePrefecture(ctx, "crete", "ionian"))
	})

	t.Run("loose_fallback", func(t *testing.T) {
		prefecture := service.ResolvePrefecture(ctx, "crete", "")
		require.NotNil(t, prefecture)
		assert.Equal(t, "crete", prefecture.Slug)
	})

	t.Run("miss_is_nil", func(t *testing.T) {
		assert.Nil(t, service.ResolveDivision(ctx, "nowhere", ""))
	})
}

/*
TestService_ResolveDestinationPage checks the breadcrumb chain assembly and
its partial behaviour when an ancestor is missing.
*/
func TestService_ResolveDestinationPage(t *testing.T) {
	repo := seededRepo()
	service := newTestService(repo)
	ctx := context.Background()

	t.Run("full_chain", func(t *testing.T) {
		page := service.ResolveDestinationPage(ctx, "chania", "seitan-limania")
		require.NotNil(t, page)
		require.NotNil(t, page.Destination)
		assert.Equal(t, int64(100), page.Destination.ID)
		require.NotNil(t, page.Division)
		require.NotNil(t, page.Prefecture)
		require.NotNil(t, page.Region)
		assert.Equal(t, "aegean", page.Region.Slug)
	})

	t.Run("unknown_destination", func(t *testing.T) {
		assert.Nil(t, service.ResolveDestinationPage(ctx, "chania", "atlantis"))
	})

	t.Run("orphaned_ancestors", func(t *testing.T) {
		repo.regions = nil
		page := service.ResolveDestinationPage(ctx, "chania", "seitan-limania")
		require.NotNil(t, page)
		assert.NotNil(t, page.Prefecture)
		assert.Nil(t, page.Region)
	})
}

func TestService_CreateDestination(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		repo := seededRepo()
		service := newTestService(repo)

		destination := &geo.Destination{Name: "Balos Lagoon", Slug: "balos-lagoon", DivisionID: 41}
		require.NoError(t, service.CreateDestination(context.Background(), destination))
		require.NotNil(t, repo.created)
		assert.NotZero(t, destination.ID)
	})

	t.Run("missing_parent_rejected", func(t *testing.T) {
		service := newTestService(seededRepo())

		err := service.CreateDestination(context.Background(), &geo.Destination{
			Name: "Balos Lagoon",
			Slug: "balos-lagoon",
		})
		require.Error(t, err)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	})

	t.Run("bad_slug_rejected", func(t *testing.T) {
		service := newTestService(seededRepo())

		err := service.CreateDestination(context.Background(), &geo.Destination{
			Name:       "Balos Lagoon",
			Slug:       "Balos Lagoon!",
			DivisionID: 41,
		})
		require.Error(t, err)
	})
}
