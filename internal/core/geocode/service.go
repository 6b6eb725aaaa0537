package geocode

import (
	"context"
	"log/slog"
	"time"

	"github.com/periplus-travel/periplus/internal/geo"
)

// DestinationStore is the slice of the geo repository this service needs.
type DestinationStore interface {
	DestinationByID(context context.Context, id int64) (*geo.Destination, error)
	UpdateGeocode(context context.Context, id int64, lat, lon *float64, status string, at time.Time) error
}

// Service runs one geocoding attempt for a destination and records the
// verdict on its row.
type Service struct {
	destinations DestinationStore
	provider     Provider
	logger       *slog.Logger
}

func NewService(destinations DestinationStore, provider Provider, logger *slog.Logger) *Service {
	return &Service{
		destinations: destinations,
		provider:     provider,
		logger:       logger,
	}
}

// GeocodeDestination looks the destination up with the provider and persists
// the outcome. Non-OK verdicts still write geocode_status and geocoded_at —
// a failed attempt is information the editor needs, not a write to discard.
func (service *Service) GeocodeDestination(context context.Context, id int64) (*geo.Destination, error) {
	destination, err := service.destinations.DestinationByID(context, id)
	if err != nil {
		return nil, err
	}

	outcome, err := service.provider.Geocode(context, destination.Name)
	if err != nil {
		service.logger.ErrorContext(context, "geocode_provider_failed",
			slog.Int64("destination_id", id),
			slog.Any("error", err),
		)
		outcome = Outcome{Status: StatusError}
	}

	now := time.Now().UTC()
	if err := service.destinations.UpdateGeocode(context, id, outcome.Lat, outcome.Lon, outcome.Status, now); err != nil {
		return nil, err
	}

	service.logger.Info("geocode_recorded",
		slog.Int64("destination_id", id),
		slog.String("status", outcome.Status),
	)

	return service.destinations.DestinationByID(context, id)
}
