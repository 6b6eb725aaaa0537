/*
Package item implements the four flat content kinds: experiences,
accommodations, food & drink, and day itineraries.

Their tables are column-for-column identical apart from one kind-specific
attribute (lodging type, cuisine, theme), so a single repository, service,
and handler serve all four, parameterized by a [Kind]. Each kind still gets
its own route subtree and its own service instance at wiring time.
*/
package item

import (
	"encoding/json"
	"time"

	"github.com/periplus-travel/periplus/internal/platform/database/schema"
)

// Kind binds one flat content kind to its table and API surface.
type Kind struct {
	// Singular is the client-facing resource name used in error messages.
	Singular string
	// Path is the URL segment the kind is mounted under.
	Path string
	// Table is the kind's schema definition, including the kind-specific
	// attribute column.
	Table schema.ContentItemTable
}

var (
	KindExperience    = Kind{Singular: "Experience", Path: "experiences", Table: schema.ContentExperience}
	KindAccommodation = Kind{Singular: "Accommodation", Path: "accommodations", Table: schema.ContentAccommodation}
	KindFoodDrink     = Kind{Singular: "Food & drink spot", Path: "food-drink", Table: schema.ContentFoodDrink}
	KindDayItinerary  = Kind{Singular: "Day itinerary", Path: "day-itineraries", Table: schema.ContentDayItinerary}
)

// Item is one row of any flat content kind. Category carries the
// kind-specific attribute (lodging type, cuisine, theme) under one name.
type Item struct {
	ID            int64           `json:"id"`
	DestinationID int64           `json:"destination_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Status        string          `json:"status"`
	Summary       *string         `json:"summary"`
	Images        json.RawMessage `json:"images,omitempty"`
	ImageURL      *string         `json:"image_url"`
	Category      *string         `json:"category"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Filter holds the parameters for a published listing.
type Filter struct {
	Query         string
	DestinationID int64
}

// Input is the explicit admin write payload.
type Input struct {
	DestinationID int64           `json:"destination_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Status        string          `json:"status"`
	Summary       *string         `json:"summary"`
	Images        json.RawMessage `json:"images"`
	Category      *string         `json:"category"`
}

const (
	FieldName          = "name"
	FieldSlug          = "slug"
	FieldStatus        = "status"
	FieldDestinationID = "destination_id"
)
