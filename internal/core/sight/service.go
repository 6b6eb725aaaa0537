package sight

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

// Service applies the publication rules for sights. Public reads degrade to
// empty results; admin writes propagate their errors to the editor.
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

func (service *Service) Published(context context.Context, filter Filter, limit, offset int) ([]*Sight, int) {
	sights, total, err := service.repo.ListPublished(context, filter, limit, offset)
	if err != nil {
		service.degrade(context, "list_sights", err)
		return nil, 0
	}

	for _, sight := range sights {
		service.resolveImage(sight)
	}
	return sights, total
}

func (service *Service) PublishedBySlug(context context.Context, slug string) *Sight {
	sight, err := service.repo.GetPublishedBySlug(context, slug)
	if err != nil {
		service.degrade(context, "get_sight", err)
		return nil
	}

	service.resolveImage(sight)
	return sight
}

func (service *Service) degrade(context context.Context, action string, err error) {
	if errors.Is(err, dberr.ErrNotFound) {
		return
	}
	service.logger.WarnContext(context, "sight_read_degraded",
		slog.String("action", action),
		slog.Any("error", err),
	)
}

func (service *Service) resolveImage(sight *Sight) {
	sight.ImageURL = service.media.FirstImage(sight.Images)
}

// # Admin

func (service *Service) Get(context context.Context, id int64) (*Sight, error) {
	sight, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}
	service.resolveImage(sight)
	return sight, nil
}

func (service *Service) Create(context context.Context, input Input) (*Sight, error) {
	sight, err := fromInput(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, sight); err != nil {
		return nil, err
	}

	service.logger.Info("sight_created",
		slog.Int64("sight_id", sight.ID),
		slog.String("slug", sight.Slug),
	)
	return sight, nil
}

func (service *Service) Update(context context.Context, id int64, input Input) (*Sight, error) {
	sight, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	sight.ID = id

	if err := service.repo.Update(context, sight); err != nil {
		return nil, err
	}

	service.logger.Info("sight_updated", slog.Int64("sight_id", id))
	return sight, nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}
	service.logger.Warn("sight_deleted", slog.Int64("sight_id", id))
	return nil
}

// fromInput validates the admin payload and maps it onto the storage model.
// Unknown fields never reach here: the Input struct is the allow-list.
func fromInput(input Input) (*Sight, error) {
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

	for _, hour := range input.OpeningHours {
		validator.Custom(FieldWeekday, hour.Weekday < 0 || hour.Weekday > 6, "Weekday must be between 0 and 6")
	}

	sight := &Sight{
		DestinationID: input.DestinationID,
		Name:          input.Name,
		Slug:          input.Slug,
		Status:        input.Status,
		Summary:       input.Summary,
		Images:        input.Images,
	}

	for _, hour := range input.OpeningHours {
		sight.OpeningHours = append(sight.OpeningHours, OpeningHour{
			Weekday: hour.Weekday,
			Opens:   hour.Opens,
			Closes:  hour.Closes,
			Note:    hour.Note,
		})
	}

	for _, exception := range input.OpeningExceptions {
		date, err := time.Parse("2006-01-02", exception.Date)
		if err != nil {
			validator.Custom(FieldDate, true, "Exception dates must be YYYY-MM-DD")
			continue
		}
		sight.OpeningExceptions = append(sight.OpeningExceptions, OpeningException{
			Date:   date,
			Closed: exception.Closed,
			Opens:  exception.Opens,
			Closes: exception.Closes,
			Note:   exception.Note,
		})
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return sight, nil
}
