// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package geo

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Candidate column names per logical field, in priority order: the
// view-table prefixed name first, then the raw-table name. Normalization
// takes the first key that is present and non-nil.
var (
	prefectureIDKeys   = []string{"prefecture_id", "id"}
	prefectureNameKeys = []string{"prefecture_name", "name"}
	prefectureSlugKeys = []string{"prefecture_slug", "slug"}
	regionIDKeys       = []string{"region_id", "parent_id"}
	regionNameKeys     = []string{"region_name", "parent_name"}
	regionSlugKeys     = []string{"region_slug", "parent_slug"}

	divisionIDKeys       = []string{"division_id", "id"}
	divisionNameKeys     = []string{"division_name", "name"}
	divisionSlugKeys     = []string{"division_slug", "slug"}
	parentPrefectureKeys = []string{"prefecture_id", "parent_id"}
	parentPrefNameKeys   = []string{"prefecture_name", "parent_name"}
	parentPrefSlugKeys   = []string{"prefecture_slug", "parent_slug"}

	orderIndexKeys = []string{"order_index", "orderindex"}
)

// NormalizePrefectureRow maps a prefecture row from either source (raw table
// or prefecture_view) into the canonical [Row] shape.
func NormalizePrefectureRow(source map[string]any) Row {
	return Row{
		ID:         pickInt64(source, prefectureIDKeys),
		Name:       pickString(source, prefectureNameKeys),
		Slug:       pickString(source, prefectureSlugKeys),
		ParentID:   pickInt64(source, regionIDKeys),
		ParentName: pickString(source, regionNameKeys),
		ParentSlug: pickString(source, regionSlugKeys),
		OrderIndex: pickIntPtr(source, orderIndexKeys),
	}
}

// NormalizeDivisionRow maps a division row from either source (raw table or
// division_view) into the canonical [Row] shape.
//
// The division_view also carries prefecture_id as the parent key, which
// collides with the raw prefecture table's own id column name — the per-level
// key lists keep the two from ever being confused.
func NormalizeDivisionRow(source map[string]any) Row {
	return Row{
		ID:         pickInt64(source, divisionIDKeys),
		Name:       pickString(source, divisionNameKeys),
		Slug:       pickString(source, divisionSlugKeys),
		ParentID:   pickInt64(source, parentPrefectureKeys),
		ParentName: pickString(source, parentPrefNameKeys),
		ParentSlug: pickString(source, parentPrefSlugKeys),
		OrderIndex: pickIntPtr(source, orderIndexKeys),
	}
}

// SortRows orders rows for display: order_index ascending with NULLs last,
// ties broken by case-sensitive name comparison. The sort is stable, so
// applying it twice yields the same order.
func SortRows(rows []Row) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		left, right := sortKey(a), sortKey(b)
		if left != right {
			if left < right {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// sortKey maps a missing order_index to the maximum sentinel so unindexed
// rows always trail indexed ones.
func sortKey(row Row) int {
	if row.OrderIndex == nil {
		return math.MaxInt
	}
	return *row.OrderIndex
}

// # Value Coercion

// firstDefined returns the first present, non-nil value among keys.
func firstDefined(source map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if value, ok := source[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func pickString(source map[string]any, keys []string) string {
	value, ok := firstDefined(source, keys)
	if !ok {
		return ""
	}
	switch typed := value.(type) {
	case string:
		return typed
	case []byte:
		return string(typed)
	}
	return ""
}

// pickInt64 tolerates every numeric representation the two sources produce:
// pgx scans integer columns as int32 or int64 depending on width, and view
// tables built from JSON exports can surface float64 or string ids.
func pickInt64(source map[string]any, keys []string) int64 {
	value, ok := firstDefined(source, keys)
	if !ok {
		return 0
	}
	n, _ := asInt64(value)
	return n
}

func pickIntPtr(source map[string]any, keys []string) *int {
	value, ok := firstDefined(source, keys)
	if !ok {
		return nil
	}
	n, ok := asInt64(value)
	if !ok {
		return nil
	}
	index := int(n)
	return &index
}

func asInt64(value any) (int64, bool) {
	switch typed := value.(type) {
	case int64:
		return typed, true
	case int32:
		return int64(typed), true
	case int16:
		return int64(typed), true
	case int:
		return int64(typed), true
	case float64:
		return int64(typed), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
