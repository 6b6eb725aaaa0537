package trip

import (
	"context"
	"errors"
	"log/slog"

	"github.com/periplus-travel/periplus/internal/platform/constants"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/media"
	"github.com/periplus-travel/periplus/internal/platform/validate"
	urlslug "github.com/periplus-travel/periplus/pkg/slug"
)

// Service applies publication rules for trips and manages their day
// sequence. Public reads degrade to empty results; admin writes propagate
// errors.
type Service struct {
	repo   Repository
	media  *media.Resolver
	logger *slog.Logger
}

func NewService(repo Repository, mediaResolver *media.Resolver, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		media:  mediaResolver,
		logger: logger,
	}
}

// # Public

func (service *Service) Published(context context.Context, filter Filter, limit, offset int) ([]*Trip, int) {
	trips, total, err := service.repo.ListPublished(context, filter, limit, offset)
	if err != nil {
		service.degrade(context, "list_trips", err)
		return nil, 0
	}

	for _, trip := range trips {
		trip.ImageURL = service.media.FirstImage(trip.Images)
	}
	return trips, total
}

func (service *Service) PublishedBySlug(context context.Context, slug string) *Trip {
	trip, err := service.repo.GetPublishedBySlug(context, slug)
	if err != nil {
		service.degrade(context, "get_trip", err)
		return nil
	}

	trip.ImageURL = service.media.FirstImage(trip.Images)
	return trip
}

func (service *Service) degrade(context context.Context, action string, err error) {
	if errors.Is(err, dberr.ErrNotFound) {
		return
	}
	service.logger.WarnContext(context, "trip_read_degraded",
		slog.String("action", action),
		slog.Any("error", err),
	)
}

// # Admin

func (service *Service) Get(context context.Context, id int64) (*Trip, error) {
	trip, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}
	trip.ImageURL = service.media.FirstImage(trip.Images)
	return trip, nil
}

func (service *Service) Create(context context.Context, input Input) (*Trip, error) {
	trip, err := fromInput(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, trip); err != nil {
		return nil, err
	}

	service.logger.Info("trip_created",
		slog.Int64("trip_id", trip.ID),
		slog.String("slug", trip.Slug),
	)
	return trip, nil
}

func (service *Service) Update(context context.Context, id int64, input Input) (*Trip, error) {
	trip, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	trip.ID = id

	if err := service.repo.Update(context, trip); err != nil {
		return nil, err
	}

	service.logger.Info("trip_updated", slog.Int64("trip_id", id))
	return trip, nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}
	service.logger.Warn("trip_deleted", slog.Int64("trip_id", id))
	return nil
}

// # Days

// AddDay appends a day at the next index: current max plus one, 1 for the
// first day. The max read and the insert are separate statements, so two
// concurrent adds for the same trip can race onto the same index; tolerated
// for a single-editor CMS.
func (service *Service) AddDay(context context.Context, tripID int64, input DayInput) (*Day, error) {
	maxIndex, err := service.repo.MaxDayIndex(context, tripID)
	if err != nil {
		return nil, err
	}

	day := &Day{
		TripID:          tripID,
		DayIndex:        maxIndex + 1,
		Title:           input.Title,
		Notes:           input.Notes,
		DestinationID:   input.DestinationID,
		AccommodationID: input.AccommodationID,
		ItineraryID:     input.ItineraryID,
	}

	if err := service.repo.AddDay(context, day); err != nil {
		return nil, err
	}

	service.logger.Info("trip_day_added",
		slog.Int64("trip_id", tripID),
		slog.Int("day_index", day.DayIndex),
	)
	return day, nil
}

func (service *Service) UpdateDay(context context.Context, tripID, dayID int64, input DayInput) (*Day, error) {
	day := &Day{
		ID:              dayID,
		TripID:          tripID,
		Title:           input.Title,
		Notes:           input.Notes,
		DestinationID:   input.DestinationID,
		AccommodationID: input.AccommodationID,
		ItineraryID:     input.ItineraryID,
	}

	if err := service.repo.UpdateDay(context, day); err != nil {
		return nil, err
	}
	return day, nil
}

func (service *Service) DeleteDay(context context.Context, tripID, dayID int64) error {
	if err := service.repo.DeleteDay(context, tripID, dayID); err != nil {
		return err
	}

	service.logger.Info("trip_day_deleted",
		slog.Int64("trip_id", tripID),
		slog.Int64("day_id", dayID),
	)
	return nil
}

func fromInput(input Input) (*Trip, error) {
	if input.Status == "" {
		input.Status = constants.StatusDraft
	}
	if input.Slug == "" {
		input.Slug = urlslug.From(input.Name)
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.Required(FieldSlug, input.Slug).Slug(FieldSlug, input.Slug)
	validator.OneOf(FieldStatus, input.Status, constants.StatusDraft, constants.StatusPublished)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Trip{
		Name:    input.Name,
		Slug:    input.Slug,
		Status:  input.Status,
		Summary: input.Summary,
		Images:  input.Images,
	}, nil
}
