package tour

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/periplus-travel/periplus/internal/platform/constants"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/media"
	"github.com/periplus-travel/periplus/internal/platform/validate"
	urlslug "github.com/periplus-travel/periplus/pkg/slug"
)

// Service applies publication rules for tours. Public reads degrade to empty
// results; admin writes propagate errors.
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

func (service *Service) Published(context context.Context, filter Filter, limit, offset int) ([]*Tour, int) {
	tours, total, err := service.repo.ListPublished(context, filter, limit, offset)
	if err != nil {
		service.degrade(context, "list_tours", err)
		return nil, 0
	}

	for _, tour := range tours {
		tour.ImageURL = service.media.FirstImage(tour.Images)
	}
	return tours, total
}

func (service *Service) PublishedBySlug(context context.Context, slug string) *Tour {
	tour, err := service.repo.GetPublishedBySlug(context, slug)
	if err != nil {
		service.degrade(context, "get_tour", err)
		return nil
	}

	tour.ImageURL = service.media.FirstImage(tour.Images)
	return tour
}

func (service *Service) degrade(context context.Context, action string, err error) {
	if errors.Is(err, dberr.ErrNotFound) {
		return
	}
	service.logger.WarnContext(context, "tour_read_degraded",
		slog.String("action", action),
		slog.Any("error", err),
	)
}

// # Admin

func (service *Service) Get(context context.Context, id int64) (*Tour, error) {
	tour, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}
	tour.ImageURL = service.media.FirstImage(tour.Images)
	return tour, nil
}

func (service *Service) Create(context context.Context, input Input) (*Tour, error) {
	tour, err := fromInput(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, tour); err != nil {
		return nil, err
	}

	service.logger.Info("tour_created",
		slog.Int64("tour_id", tour.ID),
		slog.String("slug", tour.Slug),
	)
	return tour, nil
}

func (service *Service) Update(context context.Context, id int64, input Input) (*Tour, error) {
	tour, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	tour.ID = id

	if err := service.repo.Update(context, tour); err != nil {
		return nil, err
	}

	service.logger.Info("tour_updated", slog.Int64("tour_id", id))
	return tour, nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}
	service.logger.Warn("tour_deleted", slog.Int64("tour_id", id))
	return nil
}

func fromInput(input Input) (*Tour, error) {
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
	validator.Custom(FieldDestinationID, input.DestinationID <= 0, "A parent destination is required")

	tour := &Tour{
		DestinationID: input.DestinationID,
		Name:          input.Name,
		Slug:          input.Slug,
		Status:        input.Status,
		Summary:       input.Summary,
		Images:        input.Images,
		DurationMin:   input.DurationMin,
		PriceCents:    input.PriceCents,
	}

	for _, rule := range input.AvailabilityRules {
		validator.Custom(FieldWeekday, rule.Weekday < 0 || rule.Weekday > 6, "Weekday must be between 0 and 6")
		validator.Custom(FieldCapacity, rule.Capacity < 0, "Capacity cannot be negative")
		tour.AvailabilityRules = append(tour.AvailabilityRules, AvailabilityRule{
			Weekday:  rule.Weekday,
			StartsAt: rule.StartsAt,
			Capacity: rule.Capacity,
		})
	}

	for _, exception := range input.Exceptions {
		date, err := time.Parse("2006-01-02", exception.Date)
		if err != nil {
			validator.Custom(FieldDate, true, "Exception dates must be YYYY-MM-DD")
			continue
		}
		tour.Exceptions = append(tour.Exceptions, Exception{
			Date:      date,
			Cancelled: exception.Cancelled,
			Note:      exception.Note,
		})
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return tour, nil
}
