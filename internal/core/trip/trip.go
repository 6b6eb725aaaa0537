package trip

import (
	"encoding/json"
	"time"
)

// Trip is a multi-day route sold as an editorial product. It owns an ordered
// list of days keyed by day_index.
type Trip struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Status    string          `json:"status"`
	Summary   *string         `json:"summary"`
	Images    json.RawMessage `json:"images,omitempty"`
	ImageURL  *string         `json:"image_url"`
	Days      []Day           `json:"days"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Day is one entry of a trip's itinerary.
//
// DayIndex is 1-based and assigned as the trip's current maximum plus one on
// insert. Deleting a day never renumbers the survivors, so the sequence can
// carry gaps; clients must order by DayIndex and tolerate holes.
type Day struct {
	ID              int64   `json:"id"`
	TripID          int64   `json:"-"`
	DayIndex        int     `json:"day_index"`
	Title           *string `json:"title"`
	Notes           *string `json:"notes"`
	DestinationID   *int64  `json:"destination_id"`
	AccommodationID *int64  `json:"accommodation_id"`
	ItineraryID     *int64  `json:"itinerary_id"`
}

// Filter holds the parameters for a published trip listing.
type Filter struct {
	Query string
}

// Input is the explicit admin write payload for the trip row itself. Days
// are managed through their own endpoints, not embedded here.
type Input struct {
	Name    string          `json:"name"`
	Slug    string          `json:"slug"`
	Status  string          `json:"status"`
	Summary *string         `json:"summary"`
	Images  json.RawMessage `json:"images"`
}

// DayInput is the admin payload for adding or editing a single day.
// DayIndex is never client-supplied; the store assigns it.
type DayInput struct {
	Title           *string `json:"title"`
	Notes           *string `json:"notes"`
	DestinationID   *int64  `json:"destination_id"`
	AccommodationID *int64  `json:"accommodation_id"`
	ItineraryID     *int64  `json:"itinerary_id"`
}

const (
	FieldName   = "name"
	FieldSlug   = "slug"
	FieldStatus = "status"
)
