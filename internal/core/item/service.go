package item

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/periplus-travel/periplus/internal/platform/constants"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/media"
	"github.com/periplus-travel/periplus/internal/platform/validate"
	urlslug "github.com/periplus-travel/periplus/pkg/slug"
)

// Service applies publication rules for one flat content kind. Public reads
// degrade to empty results; admin writes propagate errors.
type Service struct {
	kind   Kind
	repo   Repository
	media  *media.Resolver
	logger *slog.Logger
}

func NewService(kind Kind, repo Repository, mediaResolver *media.Resolver, logger *slog.Logger) *Service {
	return &Service{
		kind:   kind,
		repo:   repo,
		media:  mediaResolver,
		logger: logger,
	}
}

// Kind exposes the kind binding for route mounting.
func (service *Service) Kind() Kind { return service.kind }

// # Public

func (service *Service) Published(context context.Context, filter Filter, limit, offset int) ([]*Item, int) {
	items, total, err := service.repo.ListPublished(context, filter, limit, offset)
	if err != nil {
		service.degrade(context, "list", err)
		return nil, 0
	}

	for _, item := range items {
		item.ImageURL = service.media.FirstImage(item.Images)
	}
	return items, total
}

func (service *Service) PublishedBySlug(context context.Context, slug string) *Item {
	item, err := service.repo.GetPublishedBySlug(context, slug)
	if err != nil {
		service.degrade(context, "get", err)
		return nil
	}

	item.ImageURL = service.media.FirstImage(item.Images)
	return item
}

func (service *Service) degrade(context context.Context, action string, err error) {
	if errors.Is(err, dberr.ErrNotFound) {
		return
	}
	service.logger.WarnContext(context, "content_read_degraded",
		slog.String("kind", service.kind.Path),
		slog.String("action", action),
		slog.Any("error", err),
	)
}

// # Admin

func (service *Service) Get(context context.Context, id int64) (*Item, error) {
	item, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}
	item.ImageURL = service.media.FirstImage(item.Images)
	return item, nil
}

func (service *Service) Create(context context.Context, input Input) (*Item, error) {
	item, err := service.fromInput(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("content_created",
		slog.String("kind", service.kind.Path),
		slog.Int64("id", item.ID),
		slog.String("slug", item.Slug),
	)
	return item, nil
}

func (service *Service) Update(context context.Context, id int64, input Input) (*Item, error) {
	item, err := service.fromInput(input)
	if err != nil {
		return nil, err
	}
	item.ID = id

	if err := service.repo.Update(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("content_updated",
		slog.String("kind", service.kind.Path),
		slog.Int64("id", id),
	)
	return item, nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}
	service.logger.Warn("content_deleted",
		slog.String("kind", service.kind.Path),
		slog.Int64("id", id),
	)
	return nil
}

func (service *Service) fromInput(input Input) (*Item, error) {
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

	if err := validator.Err(); err != nil {
		return nil, err
	}

	category := input.Category
	if category != nil && strings.TrimSpace(*category) == "" {
		category = nil
	}

	return &Item{
		DestinationID: input.DestinationID,
		Name:          input.Name,
		Slug:          input.Slug,
		Status:        input.Status,
		Summary:       input.Summary,
		Images:        input.Images,
		Category:      category,
	}, nil
}
