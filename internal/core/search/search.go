/*
Package search implements the cross-entity search box.

A query fans out to every registered content source in parallel, caps each
source at the caller's limit, and concatenates the per-source results in
registration order. There is no relevance ranking beyond each source's own
alphabetical order; the response is capped at limit times the number of
sources.
*/
package search

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultLimit is the per-source cap when the caller supplies none.
	DefaultLimit = 5
	// MaxLimit bounds the per-source cap a caller may request.
	MaxLimit = 20
)

// Hit is one search result row, shaped for the autocomplete dropdown.
type Hit struct {
	Kind     string  `json:"kind"`
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ImageURL *string `json:"image_url"`
}

// Source produces hits of one content kind for a query.
type Source interface {
	Kind() string
	Search(context context.Context, query string, limit int) ([]Hit, error)
}

// Func adapts a plain function into a [Source].
type Func func(context context.Context, query string, limit int) ([]Hit, error)

type funcSource struct {
	kind string
	fn   Func
}

func NewSource(kind string, fn Func) Source {
	return funcSource{kind: kind, fn: fn}
}

func (source funcSource) Kind() string { return source.kind }

func (source funcSource) Search(context context.Context, query string, limit int) ([]Hit, error) {
	return source.fn(context, query, limit)
}

// Service owns the fan-out. A failing source degrades to an empty slice for
// that kind and never aborts the other sources; the policy is uniform across
// every kind.
type Service struct {
	sources []Source
	logger  *slog.Logger
}

func NewService(logger *slog.Logger, sources ...Source) *Service {
	return &Service{
		sources: sources,
		logger:  logger,
	}
}

func (service *Service) Search(ctx context.Context, query string, limit int) []Hit {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	perSource := make([][]Hit, len(service.sources))

	group, groupContext := errgroup.WithContext(ctx)
	for index, source := range service.sources {
		group.Go(func() error {
			hits, err := source.Search(groupContext, query, limit)
			if err != nil {
				service.logger.WarnContext(groupContext, "search_source_degraded",
					slog.String("kind", source.Kind()),
					slog.Any("error", err),
				)
				return nil
			}
			if len(hits) > limit {
				hits = hits[:limit]
			}
			perSource[index] = hits
			return nil
		})
	}
	_ = group.Wait()

	results := make([]Hit, 0, limit*len(service.sources))
	for _, hits := range perSource {
		results = append(results, hits...)
	}

	if maxResults := limit * len(service.sources); len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
