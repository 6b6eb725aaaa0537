package sight

import (
	"encoding/json"
	"time"
)

// Sight is a visitable place of interest attached to a destination.
//
// Images holds the raw stored collection, which has accumulated several
// shapes over the life of the CMS; ImageURL is the resolved first image and
// is never persisted.
type Sight struct {
	ID            int64           `json:"id"`
	DestinationID int64           `json:"destination_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Status        string          `json:"status"`
	Summary       *string         `json:"summary"`
	Images        json.RawMessage `json:"images,omitempty"`
	ImageURL      *string         `json:"image_url"`

	OpeningHours      []OpeningHour      `json:"opening_hours"`
	OpeningExceptions []OpeningException `json:"opening_exceptions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OpeningHour is one weekly schedule row. Weekday is 0 (Sunday) through 6.
type OpeningHour struct {
	ID      int64   `json:"id"`
	SightID int64   `json:"-"`
	Weekday int     `json:"weekday"`
	Opens   string  `json:"opens"`
	Closes  string  `json:"closes"`
	Note    *string `json:"note"`
}

// OpeningException overrides the weekly schedule for a specific date.
type OpeningException struct {
	ID      int64     `json:"id"`
	SightID int64     `json:"-"`
	Date    time.Time `json:"date"`
	Closed  bool      `json:"closed"`
	Opens   *string   `json:"opens"`
	Closes  *string   `json:"closes"`
	Note    *string   `json:"note"`
}

// Filter holds the parameters for a published sight listing.
type Filter struct {
	Query         string
	DestinationID int64
}

// Input is the explicit admin write payload. Fields absent from this struct
// are dropped on decode rather than forwarded to storage.
type Input struct {
	DestinationID int64           `json:"destination_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Status        string          `json:"status"`
	Summary       *string         `json:"summary"`
	Images        json.RawMessage `json:"images"`

	OpeningHours      []OpeningHourInput      `json:"opening_hours"`
	OpeningExceptions []OpeningExceptionInput `json:"opening_exceptions"`
}

type OpeningHourInput struct {
	Weekday int     `json:"weekday"`
	Opens   string  `json:"opens"`
	Closes  string  `json:"closes"`
	Note    *string `json:"note"`
}

// OpeningExceptionInput carries the date as a plain YYYY-MM-DD string, the
// shape the admin forms submit.
type OpeningExceptionInput struct {
	Date   string  `json:"date"`
	Closed bool    `json:"closed"`
	Opens  *string `json:"opens"`
	Closes *string `json:"closes"`
	Note   *string `json:"note"`
}

const (
	FieldName          = "name"
	FieldSlug          = "slug"
	FieldStatus        = "status"
	FieldDestinationID = "destination_id"
	FieldWeekday       = "weekday"
	FieldDate          = "date"
)
