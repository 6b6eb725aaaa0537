package sight

import "context"

// Repository is the storage contract for sights and their schedule rows.
//
// Published* methods run on the restricted public handle and filter
// status=published unconditionally. The remaining methods run on the
// privileged handle.
type Repository interface {
	ListPublished(context context.Context, filter Filter, limit, offset int) ([]*Sight, int, error)
	GetPublishedBySlug(context context.Context, slug string) (*Sight, error)

	Get(context context.Context, id int64) (*Sight, error)
	Create(context context.Context, sight *Sight) error
	Update(context context.Context, sight *Sight) error
	Delete(context context.Context, id int64) error
}
