package tour

import "context"

// Repository is the storage contract for tours and their availability rows.
// Published* methods use the restricted public handle; the rest use the
// privileged handle.
type Repository interface {
	ListPublished(context context.Context, filter Filter, limit, offset int) ([]*Tour, int, error)
	GetPublishedBySlug(context context.Context, slug string) (*Tour, error)

	Get(context context.Context, id int64) (*Tour, error)
	Create(context context.Context, tour *Tour) error
	Update(context context.Context, tour *Tour) error
	Delete(context context.Context, id int64) error
}
