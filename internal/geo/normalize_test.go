// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/geo"
)

/*
TestNormalizePrefectureRow verifies that both source shapes — the raw table
with parent_* join aliases and the prefixed view table — collapse into the
same canonical row, and that every numeric representation the drivers
produce coerces cleanly.
*/
func TestNormalizePrefectureRow(t *testing.T) {
	order := 3

	tests := []struct {
		name   string
		source map[string]any
		want   geo.Row
	}{
		{
			name: "raw_table_shape",
			source: map[string]any{
				"id":          int64(7),
				"name":        "Crete",
				"slug":        "crete",
				"parent_id":   int64(2),
				"parent_name": "Aegean",
				"parent_slug": "aegean",
				"order_index": int32(3),
			},
			want: geo.Row{
				ID: 7, Name: "Crete", Slug: "crete",
				ParentID: 2, ParentName: "Aegean", ParentSlug: "aegean",
				OrderIndex: &order,
			},
		},
		{
			name: "view_table_shape",
			source: map[string]any{
				"prefecture_id":   int64(7),
				"prefecture_name": "Crete",
				"prefecture_slug": "crete",
				"region_id":       int64(2),
				"region_name":     "Aegean",
				"region_slug":     "aegean",
				"order_index":     int64(3),
			},
			want: geo.Row{
				ID: 7, Name: "Crete", Slug: "crete",
				ParentID: 2, ParentName: "Aegean", ParentSlug: "aegean",
				OrderIndex: &order,
			},
		},
		{
			name: "view_wins_when_both_present",
			source: map[string]any{
				"prefecture_id": int64(7),
				"id":            int64(99),
				"name":          "Crete",
				"slug":          "crete",
			},
			want: geo.Row{ID: 7, Name: "Crete", Slug: "crete"},
		},
		{
			name: "numeric_coercion_from_export",
			source: map[string]any{
				"id":   float64(7),
				"name": "Crete",
				"slug": "crete",
			},
			want: geo.Row{ID: 7, Name: "Crete", Slug: "crete"},
		},
		{
			name: "string_id_coercion",
			source: map[string]any{
				"id":   " 7 ",
				"name": "Crete",
				"slug": "crete",
			},
			want: geo.Row{ID: 7, Name: "Crete", Slug: "crete"},
		},
		{
			name: "nil_values_skipped",
			source: map[string]any{
				"prefecture_id": nil,
				"id":            int64(7),
				"name":          "Crete",
				"slug":          "crete",
				"order_index":   nil,
			},
			want: geo.Row{ID: 7, Name: "Crete", Slug: "crete"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.NormalizePrefectureRow(tt.source)
			assert.Equal(t, tt.want, got)
			assert.NotZero(t, got.ID)
			assert.NotEmpty(t, got.Name)
			assert.NotEmpty(t, got.Slug)
		})
	}
}

/*
TestNormalizeDivisionRow pins the parent-key disambiguation: the division
view carries prefecture_id as the PARENT id, while the raw division table
uses parent_id, and neither may leak into the division's own id.
*/
func TestNormalizeDivisionRow(t *testing.T) {
	t.Run("view_shape", func(t *testing.T) {
		got := geo.NormalizeDivisionRow(map[string]any{
			"division_id":     int64(41),
			"division_name":   "Chania Old Town",
			"division_slug":   "chania-old-town",
			"prefecture_id":   int64(7),
			"prefecture_name": "Crete",
			"prefecture_slug": "crete",
		})

		require.Equal(t, int64(41), got.ID)
		assert.Equal(t, int64(7), got.ParentID)
		assert.Equal(t, "crete", got.ParentSlug)
	})

	t.Run("raw_shape", func(t *testing.T) {
		got := geo.NormalizeDivisionRow(map[string]any{
			"id":          int64(41),
			"name":        "Chania Old Town",
			"slug":        "chania-old-town",
			"parent_id":   int64(7),
			"parent_slug": "crete",
		})

		require.Equal(t, int64(41), got.ID)
		assert.Equal(t, int64(7), got.ParentID)
	})
}

/*
TestSortRows covers the display ordering contract: order_index ascending,
rows without an index trailing all indexed rows, ties broken by name, and
idempotence under repeated sorting.
*/
func TestSortRows(t *testing.T) {
	index := func(n int) *int { return &n }

	rows := []geo.Row{
		{ID: 1, Name: "Zeta", OrderIndex: nil},
		{ID: 2, Name: "Beta", OrderIndex: index(2)},
		{ID: 3, Name: "Alpha", OrderIndex: index(2)},
		{ID: 4, Name: "Gamma", OrderIndex: index(1)},
		{ID: 5, Name: "Alpha", OrderIndex: nil},
	}

	geo.SortRows(rows)

	wantIDs := []int64{4, 3, 2, 5, 1}
	gotIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		gotIDs = append(gotIDs, row.ID)
	}
	require.Equal(t, wantIDs, gotIDs)

	// Sorting an already-sorted slice must not reorder anything.
	geo.SortRows(rows)
	secondIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		secondIDs = append(secondIDs, row.ID)
	}
	assert.Equal(t, wantIDs, secondIDs)
}
