// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

/*
Package geo resolves the place hierarchy used for routing and breadcrumbs:

	Region → Prefecture → Division → Destination

Rows can be read from the raw normalized tables or from precomputed,
pre-joined view tables; the two sources disagree on column naming (views
prefix columns with the entity name), so everything funnels through the
normalizers in this package before any caller sees a row.

Slug resolution comes in two flavours. Strict resolution scopes the slug to a
known parent and is what breadcrumb-scoped URLs use. Loose resolution matches
the slug globally with first-match semantics — slugs are only unique within
their parent scope, so a loose match across two prefectures sharing a
division slug is deliberately undefined beyond "some valid row".
*/
package geo

import (
	"encoding/json"
	"time"
)

// Level identifies a tier of the hierarchy.
type Level string

const (
	LevelRegion      Level = "region"
	LevelPrefecture  Level = "prefecture"
	LevelDivision    Level = "division"
	LevelDestination Level = "destination"
)

// Row is the canonical shape every geo source is normalized into.
//
// OrderIndex is a pointer because rows without an explicit display order
// must sort after every row that has one.
type Row struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	ParentID   int64  `json:"parent_id,omitempty"`
	ParentSlug string `json:"parent_slug,omitempty"`
	ParentName string `json:"parent_name,omitempty"`
	OrderIndex *int   `json:"order_index"`
}

// Destination is the leaf of the hierarchy, carrying presentation and
// geocoding fields beyond the canonical row shape.
type Destination struct {
	ID            int64           `json:"id"`
	DivisionID    int64           `json:"division_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	OrderIndex    *int            `json:"order_index"`
	Summary       *string         `json:"summary"`
	HeroImage     json.RawMessage `json:"hero_image,omitempty"`
	Lat           *float64        `json:"lat"`
	Lon           *float64        `json:"lon"`
	GeocodeStatus *string         `json:"geocode_status,omitempty"`
	GeocodedAt    *time.Time      `json:"geocoded_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

const (
	FieldName       = "name"
	FieldSlug       = "slug"
	FieldOrderIndex = "order_index"
)
