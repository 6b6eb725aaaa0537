package settings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/media"
)

// Service reads and rewrites the homepage singleton. The public read
// degrades to an empty settings block; the admin upsert propagates errors.
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

// Get returns the singleton, or an empty block when the row is missing or
// the query fails. The homepage renders defaults rather than erroring.
func (service *Service) Get(context context.Context) *Settings {
	settings, err := service.repo.Get(context)
	if err != nil {
		if !errors.Is(err, dberr.ErrNotFound) {
			service.logger.WarnContext(context, "settings_read_degraded", slog.Any("error", err))
		}
		return &Settings{}
	}

	settings.HeroImageURL = service.media.FirstImage(settings.HeroImages)
	return settings
}

func (service *Service) Upsert(context context.Context, input Input) (*Settings, error) {
	settings := &Settings{
		HeroHeadline: input.HeroHeadline,
		HeroTagline:  input.HeroTagline,
		HeroImages:   input.HeroImages,
	}

	if err := service.repo.Upsert(context, settings); err != nil {
		return nil, err
	}

	settings.HeroImageURL = service.media.FirstImage(settings.HeroImages)
	service.logger.Info("settings_updated")
	return settings, nil
}
