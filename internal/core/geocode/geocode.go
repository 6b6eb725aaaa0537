/*
Package geocode resolves destination coordinates through an external
geocoding provider.

The provider's verdict is always persisted: a lookup that comes back without
coordinates still writes geocode_status and geocoded_at to the destination
row, so editors can see when and how the last attempt ended.
*/
package geocode

import "context"

// Statuses persisted to the destination row.
const (
	StatusOK          = "ok"
	StatusZeroResults = "zero_results"
	StatusError       = "error"
)

// Outcome is one provider verdict. Lat and Lon are set only when Status is
// [StatusOK].
type Outcome struct {
	Status string
	Lat    *float64
	Lon    *float64
}

// Provider answers geocoding queries. Implementations return an error only
// for transport-level failures; a provider that answered with no result
// reports it through the Outcome status instead.
type Provider interface {
	Geocode(context context.Context, query string) (Outcome, error)
}
