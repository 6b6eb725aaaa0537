// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package geo

import (
	"context"
	"time"
)

// Repository is the storage contract for the place hierarchy.
//
// Read methods run on the restricted public handle. The admin destination
// methods run on the privileged handle — the split is fixed per operation,
// never inferred from the request.
type Repository interface {
	// Hierarchy lists, normalized and client-side sorted.
	Regions(context context.Context) ([]Row, error)
	PrefectureRows(context context.Context) ([]Row, error)
	DivisionRows(context context.Context) ([]Row, error)

	// Strict slug resolution: scoped to the named parent.
	RegionBySlug(context context.Context, slug string) (*Row, error)
	PrefectureBySlugInRegion(context context.Context, slug, regionSlug string) (*Row, error)
	DivisionBySlugInPrefecture(context context.Context, slug, prefectureSlug string) (*Row, error)
	DestinationBySlugInDivision(context context.Context, slug, divisionSlug string) (*Destination, error)

	// Loose slug resolution: global first match, scope-ambiguous when slugs
	// collide across parents.
	PrefectureBySlugLoose(context context.Context, slug string) (*Row, error)
	DivisionBySlugLoose(context context.Context, slug string) (*Row, error)
	DestinationBySlugLoose(context context.Context, slug string) (*Destination, error)

	DestinationsByDivision(context context.Context, divisionID int64) ([]Destination, error)
	DestinationByID(context context.Context, id int64) (*Destination, error)

	// Admin writes (privileged handle).
	CreateDestination(context context.Context, destination *Destination) error
	UpdateDestination(context context.Context, destination *Destination) error
	DeleteDestination(context context.Context, id int64) error
	UpdateGeocode(context context.Context, id int64, lat, lon *float64, status string, at time.Time) error
}
