package tour

import (
	"encoding/json"
	"time"
)

// Tour is a bookable guided activity attached to a destination.
type Tour struct {
	ID            int64           `json:"id"`
	DestinationID int64           `json:"destination_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Status        string          `json:"status"`
	Summary       *string         `json:"summary"`
	Images        json.RawMessage `json:"images,omitempty"`
	ImageURL      *string         `json:"image_url"`
	DurationMin   *int            `json:"duration_min"`
	PriceCents    *int64          `json:"price_cents"`

	AvailabilityRules []AvailabilityRule `json:"availability_rules"`
	Exceptions        []Exception        `json:"exceptions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailabilityRule is one recurring departure slot. Weekday is 0 (Sunday)
// through 6.
type AvailabilityRule struct {
	ID       int64  `json:"id"`
	TourID   int64  `json:"-"`
	Weekday  int    `json:"weekday"`
	StartsAt string `json:"starts_at"`
	Capacity int    `json:"capacity"`
}

// Exception cancels or annotates departures on a specific date.
type Exception struct {
	ID        int64     `json:"id"`
	TourID    int64     `json:"-"`
	Date      time.Time `json:"date"`
	Cancelled bool      `json:"cancelled"`
	Note      *string   `json:"note"`
}

// Filter holds the parameters for a published tour listing.
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
	DurationMin   *int            `json:"duration_min"`
	PriceCents    *int64          `json:"price_cents"`

	AvailabilityRules []AvailabilityRuleInput `json:"availability_rules"`
	Exceptions        []ExceptionInput        `json:"exceptions"`
}

type AvailabilityRuleInput struct {
	Weekday  int    `json:"weekday"`
	StartsAt string `json:"starts_at"`
	Capacity int    `json:"capacity"`
}

type ExceptionInput struct {
	Date      string  `json:"date"`
	Cancelled bool    `json:"cancelled"`
	Note      *string `json:"note"`
}

const (
	FieldName          = "name"
	FieldSlug          = "slug"
	FieldStatus        = "status"
	FieldDestinationID = "destination_id"
	FieldWeekday       = "weekday"
	FieldCapacity      = "capacity"
	FieldDate          = "date"
)
