// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package trip_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/core/trip"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/media"
)

// fakeRepo keeps trips and days in memory, mirroring the store's day-index
// contract: the index is whatever the service assigns, never recomputed.
type fakeRepo struct {
	trips  map[int64]*trip.Trip
	days   []trip.Day
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{trips: map[int64]*trip.Trip{}, nextID: 1}
}

func (repo *fakeRepo) ListPublished(context.Context, trip.Filter, int, int) ([]*trip.Trip, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepo) GetPublishedBySlug(context.Context, string) (*trip.Trip, error) {
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) Get(_ context.Context, id int64) (*trip.Trip, error) {
	if existing, ok := repo.trips[id]; ok {
		return existing, nil
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) Create(_ context.Context, created *trip.Trip) error {
	created.ID = repo.nextID
	repo.nextID++
	repo.trips[created.ID] = created
	return nil
}

func (repo *fakeRepo) Update(context.Context, *trip.Trip) error { return nil }
func (repo *fakeRepo) Delete(context.Context, int64) error      { return nil }

func (repo *fakeRepo) MaxDayIndex(_ context.Context, tripID int64) (int, error) {
	max := 0
	for _, day := range repo.days {
		if day.TripID == tripID && day.DayIndex > max {
			max = day.DayIndex
		}
	}
	return max, nil
}

func (repo *fakeRepo) AddDay(_ context.Context, day *trip.Day) error {
	day.ID = repo.nextID
	repo.nextID++
	repo.days = append(repo.days, *day)
	return nil
}

func (repo *fakeRepo) UpdateDay(context.Context, *trip.Day) error { return nil }

func (repo *fakeRepo) DeleteDay(_ context.Context, tripID, dayID int64) error {
	for index, day := range repo.days {
		if day.TripID == tripID && day.ID == dayID {
			repo.days = append(repo.days[:index], repo.days[index+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (repo *fakeRepo) indexesFor(tripID int64) []int {
	var indexes []int
	for _, day := range repo.days {
		if day.TripID == tripID {
			indexes = append(indexes, day.DayIndex)
		}
	}
	return indexes
}

func newTestService(repo *fakeRepo) *trip.Service {
	resolver := media.NewResolver("https://storage.periplus.travel", "content", nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return trip.NewService(repo, resolver, logger)
}

/*
TestService_DaySequence walks the full day lifecycle: three sequential adds
produce indexes 1, 2, 3; deleting the middle day preserves the gap, so the
survivors keep indexes 1 and 3; and the next add continues from the maximum,
not from the count.
*/
func TestService_DaySequence(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, trip.Input{Name: "Crete in a Week", Slug: "crete-in-a-week"})
	require.NoError(t, err)

	var days []*trip.Day
	for i := 0; i < 3; i++ {
		day, err := service.AddDay(ctx, created.ID, trip.DayInput{})
		require.NoError(t, err)
		days = append(days, day)
	}
	require.Equal(t, []int{1, 2, 3}, repo.indexesFor(created.ID))

	require.NoError(t, service.DeleteDay(ctx, created.ID, days[1].ID))
	assert.Equal(t, []int{1, 3}, repo.indexesFor(created.ID))

	next, err := service.AddDay(ctx, created.ID, trip.DayInput{})
	require.NoError(t, err)
	assert.Equal(t, 4, next.DayIndex)
}

func TestService_AddDay_FirstDay(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	created, err := service.Create(context.Background(), trip.Input{Name: "Crete in a Week", Slug: "crete-in-a-week"})
	require.NoError(t, err)

	day, err := service.AddDay(context.Background(), created.ID, trip.DayInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, day.DayIndex)
}

func TestService_Create_Validation(t *testing.T) {
	service := newTestService(newFakeRepo())

	_, err := service.Create(context.Background(), trip.Input{Name: "", Slug: "crete-in-a-week"})
	require.Error(t, err)

	_, err = service.Create(context.Background(), trip.Input{Name: "Crete", Slug: "Not A Slug"})
	require.Error(t, err)
}
