/*
Package settings manages the homepage hero singleton.

Exactly one row exists, at a fixed well-known id; every write upserts that
row in place. There is no history and no draft state.
*/
package settings

import (
	"encoding/json"
	"time"
)

// Settings is the singleton homepage configuration.
type Settings struct {
	HeroHeadline *string         `json:"hero_headline"`
	HeroTagline  *string         `json:"hero_tagline"`
	HeroImages   json.RawMessage `json:"hero_images,omitempty"`
	HeroImageURL *string         `json:"hero_image_url"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Input is the explicit admin write payload.
type Input struct {
	HeroHeadline *string         `json:"hero_headline"`
	HeroTagline  *string         `json:"hero_tagline"`
	HeroImages   json.RawMessage `json:"hero_images"`
}
