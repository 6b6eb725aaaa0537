// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package geocode_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/core/geocode"
	"github.com/periplus-travel/periplus/internal/geo"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
)

type fakeStore struct {
	destination *geo.Destination

	wroteLat    *float64
	wroteLon    *float64
	wroteStatus string
	wroteAt     time.Time
}

func (store *fakeStore) DestinationByID(_ context.Context, id int64) (*geo.Destination, error) {
	if store.destination == nil || store.destination.ID != id {
		return nil, dberr.ErrNotFound
	}
	return store.destination, nil
}

func (store *fakeStore) UpdateGeocode(_ context.Context, _ int64, lat, lon *float64, status string, at time.Time) error {
	store.wroteLat = lat
	store.wroteLon = lon
	store.wroteStatus = status
	store.wroteAt = at
	return nil
}

type stubProvider struct {
	outcome geocode.Outcome
	err     error
}

func (provider stubProvider) Geocode(context.Context, string) (geocode.Outcome, error) {
	return provider.outcome, provider.err
}

func newTestService(store *fakeStore, provider geocode.Provider) *geocode.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return geocode.NewService(store, provider, logger)
}

func seitanLimania() *geo.Destination {
	return &geo.Destination{ID: 100, DivisionID: 41, Name: "Seitan Limania", Slug: "seitan-limania"}
}

func TestService_PersistsCoordinatesOnOK(t *testing.T) {
	lat, lon := 35.51, 24.02
	store := &fakeStore{destination: seitanLimania()}
	service := newTestService(store, stubProvider{
		outcome: geocode.Outcome{Status: geocode.StatusOK, Lat: &lat, Lon: &lon},
	})

	_, err := service.GeocodeDestination(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, geocode.StatusOK, store.wroteStatus)
	require.NotNil(t, store.wroteLat)
	assert.InDelta(t, 35.51, *store.wroteLat, 0.001)
	assert.False(t, store.wroteAt.IsZero())
}

/*
TestService_PersistsNonOKVerdict pins the partial-failure contract: a
provider verdict without coordinates still writes geocode_status and
geocoded_at to the row.
*/
func TestService_PersistsNonOKVerdict(t *testing.T) {
	store := &fakeStore{destination: seitanLimania()}
	service := newTestService(store, stubProvider{
		outcome: geocode.Outcome{Status: geocode.StatusZeroResults},
	})

	_, err := service.GeocodeDestination(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, geocode.StatusZeroResults, store.wroteStatus)
	assert.Nil(t, store.wroteLat)
	assert.False(t, store.wroteAt.IsZero())
}

func TestService_TransportErrorRecordedAsError(t *testing.T) {
	store := &fakeStore{destination: seitanLimania()}
	service := newTestService(store, stubProvider{err: errors.New("dial tcp: timeout")})

	_, err := service.GeocodeDestination(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, geocode.StatusError, store.wroteStatus)
	assert.False(t, store.wroteAt.IsZero())
}

func TestService_UnknownDestination(t *testing.T) {
	service := newTestService(&fakeStore{}, stubProvider{})

	_, err := service.GeocodeDestination(context.Background(), 100)
	require.Error(t, err)
}

/*
TestHTTPProvider exercises the wire client against a stub endpoint: the ok
path, a 200 without coordinates, and an upstream 500.
*/
func TestHTTPProvider(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "Seitan Limania", request.URL.Query().Get("q"))
			assert.Equal(t, "test-key", request.URL.Query().Get("api_key"))
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"status":"ok","lat":35.51,"lon":24.02}`))
		}))
		defer server.Close()

		provider := geocode.NewHTTPProvider(server.URL, "test-key")
		outcome, err := provider.Geocode(context.Background(), "Seitan Limania")
		require.NoError(t, err)

		assert.Equal(t, geocode.StatusOK, outcome.Status)
		require.NotNil(t, outcome.Lat)
		assert.InDelta(t, 35.51, *outcome.Lat, 0.001)
	})

	t.Run("zero_results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(`{"status":"zero_results"}`))
		}))
		defer server.Close()

		provider := geocode.NewHTTPProvider(server.URL, "")
		outcome, err := provider.Geocode(context.Background(), "Atlantis")
		require.NoError(t, err)
		assert.Equal(t, geocode.StatusZeroResults, outcome.Status)
		assert.Nil(t, outcome.Lat)
	})

	t.Run("upstream_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		provider := geocode.NewHTTPProvider(server.URL, "")
		outcome, err := provider.Geocode(context.Background(), "Seitan Limania")
		require.NoError(t, err)
		assert.Equal(t, geocode.StatusError, outcome.Status)
	})
}
