// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package geo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/validate"
	urlslug "github.com/periplus-travel/periplus/pkg/slug"
)

// Service exposes the hierarchy to the public site and the CMS.
//
// # Error Contract
//
// Public read methods never return an error: a failed query degrades to an
// empty list or nil row with a warning log, because a public page must render
// a partial view rather than a 500. Admin write methods return errors — an
// editor must see a failed save. The split is structural here, not a
// call-site convention.
type Service struct {
	repo   Repository
	cache  *rowCache
	logger *slog.Logger
}

func NewService(repo Repository, cacheClient *redis.Client, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  newRowCache(cacheClient),
		logger: logger,
	}
}

// # Public Reads (degrading)

func (service *Service) Regions(context context.Context) []Row {
	if rows, ok := service.cache.get(context, "regions"); ok {
		return rows
	}

	rows, err := service.repo.Regions(context)
	if err != nil {
		service.degrade(context, "list_regions", err)
		return nil
	}

	service.cache.set(context, "regions", rows)
	return rows
}

func (service *Service) Prefectures(context context.Context) []Row {
	if rows, ok := service.cache.get(context, "prefectures"); ok {
		return rows
	}

	rows, err := service.repo.PrefectureRows(context)
	if err != nil {
		service.degrade(context, "list_prefectures", err)
		return nil
	}

	service.cache.set(context, "prefectures", rows)
	return rows
}

func (service *Service) Divisions(context context.Context) []Row {
	if rows, ok := service.cache.get(context, "divisions"); ok {
		return rows
	}

	rows, err := service.repo.DivisionRows(context)
	if err != nil {
		service.degrade(context, "list_divisions", err)
		return nil
	}

	service.cache.set(context, "divisions", rows)
	return rows
}

// PrefecturesOf returns the prefectures of one region, preserving the
// canonical sort of the full list.
func (service *Service) PrefecturesOf(context context.Context, regionSlug string) []Row {
	return filterByParent(service.Prefectures(context), regionSlug)
}

// DivisionsOf returns the divisions of one prefecture.
func (service *Service) DivisionsOf(context context.Context, prefectureSlug string) []Row {
	return filterByParent(service.Divisions(context), prefectureSlug)
}

func filterByParent(rows []Row, parentSlug string) []Row {
	var children []Row
	for _, row := range rows {
		if row.ParentSlug == parentSlug {
			children = append(children, row)
		}
	}
	return children
}

// ResolveRegion returns the region for a slug, or nil when absent.
func (service *Service) ResolveRegion(context context.Context, slug string) *Row {
	region, err := service.repo.RegionBySlug(context, slug)
	if err != nil {
		service.degrade(context, "resolve_region", err)
		return nil
	}
	return region
}

// ResolvePrefecture resolves a prefecture slug. With a region slug the
// lookup is strict; without one it falls back to loose first-match
// resolution, which is undefined across regions sharing a slug.
func (service *Service) ResolvePrefecture(context context.Context, slug, regionSlug string) *Row {
	var (
		prefecture *Row
		err        error
	)
	if regionSlug != "" {
		prefecture, err = service.repo.PrefectureBySlugInRegion(context, slug, regionSlug)
	} else {
		prefecture, err = service.repo.PrefectureBySlugLoose(context, slug)
	}
	if err != nil {
		service.degrade(context, "resolve_prefecture", err)
		return nil
	}
	return prefecture
}

// ResolveDivision resolves a division slug, strict when a prefecture slug is
// supplied, loose otherwise.
func (service *Service) ResolveDivision(context context.Context, slug, prefectureSlug string) *Row {
	var (
		division *Row
		err      error
	)
	if prefectureSlug != "" {
		division, err = service.repo.DivisionBySlugInPrefecture(context, slug, prefectureSlug)
	} else {
		division, err = service.repo.DivisionBySlugLoose(context, slug)
	}
	if err != nil {
		service.degrade(context, "resolve_division", err)
		return nil
	}
	return division
}

// ResolveDestination resolves a destination slug, strict within a division
// when its slug is supplied.
func (service *Service) ResolveDestination(context context.Context, slug, divisionSlug string) *Destination {
	var (
		destination *Destination
		err         error
	)
	if divisionSlug != "" {
		destination, err = service.repo.DestinationBySlugInDivision(context, slug, divisionSlug)
	} else {
		destination, err = service.repo.DestinationBySlugLoose(context, slug)
	}
	if err != nil {
		service.degrade(context, "resolve_destination", err)
		return nil
	}
	return destination
}

// DestinationsOf lists the destinations under a division.
func (service *Service) DestinationsOf(context context.Context, divisionID int64) []Destination {
	destinations, err := service.repo.DestinationsByDivision(context, divisionID)
	if err != nil {
		service.degrade(context, "list_destinations", err)
		return nil
	}
	return destinations
}

// # Breadcrumb Pages

// DestinationPage is a destination with its full ancestor chain resolved.
type DestinationPage struct {
	Destination *Destination `json:"destination"`
	Division    *Row         `json:"division,omitempty"`
	Prefecture  *Row         `json:"prefecture,omitempty"`
	Region      *Row         `json:"region,omitempty"`
}

// ResolveDestinationPage builds the breadcrumb chain for a destination URL.
// Missing ancestors leave their slot nil; the page still renders.
func (service *Service) ResolveDestinationPage(context context.Context, divisionSlug, destinationSlug string) *DestinationPage {
	destination := service.ResolveDestination(context, destinationSlug, divisionSlug)
	if destination == nil {
		return nil
	}

	page := &DestinationPage{Destination: destination}

	page.Division = service.ResolveDivision(context, divisionSlug, "")
	if page.Division == nil {
		return page
	}

	page.Prefecture = service.ResolvePrefecture(context, page.Division.ParentSlug, "")
	if page.Prefecture == nil {
		return page
	}

	page.Region = service.ResolveRegion(context, page.Prefecture.ParentSlug)
	return page
}

// degrade logs unexpected query failures. Plain not-found is the expected
// miss case and stays quiet.
func (service *Service) degrade(context context.Context, action string, err error) {
	if errors.Is(err, dberr.ErrNotFound) {
		return
	}
	service.logger.WarnContext(context, "geo_read_degraded",
		slog.String("action", action),
		slog.Any("error", err),
	)
}

// # Admin Writes (propagating)

func (service *Service) DestinationByID(context context.Context, id int64) (*Destination, error) {
	return service.repo.DestinationByID(context, id)
}

func (service *Service) CreateDestination(context context.Context, destination *Destination) error {
	if err := validateDestination(destination); err != nil {
		return err
	}
	if err := service.repo.CreateDestination(context, destination); err != nil {
		return err
	}

	service.cache.invalidate(context)
	service.logger.Info("destination_created",
		slog.Int64("destination_id", destination.ID),
		slog.String("slug", destination.Slug),
	)
	return nil
}

func (service *Service) UpdateDestination(context context.Context, id int64, destination *Destination) error {
	destination.ID = id
	if err := validateDestination(destination); err != nil {
		return err
	}
	if err := service.repo.UpdateDestination(context, destination); err != nil {
		return err
	}

	service.cache.invalidate(context)
	service.logger.Info("destination_updated", slog.Int64("destination_id", id))
	return nil
}

func (service *Service) DeleteDestination(context context.Context, id int64) error {
	if err := service.repo.DeleteDestination(context, id); err != nil {
		return err
	}

	service.cache.invalidate(context)
	service.logger.Warn("destination_deleted", slog.Int64("destination_id", id))
	return nil
}

func validateDestination(destination *Destination) error {
	if destination.Slug == "" {
		destination.Slug = urlslug.From(destination.Name)
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, destination.Name).MaxLen(FieldName, destination.Name, 200)
	validator.Required(FieldSlug, destination.Slug).Slug(FieldSlug, destination.Slug)
	validator.Custom("division_id", destination.DivisionID <= 0, "A parent division is required")
	return validator.Err()
}
