package item

import "context"

// Repository is the storage contract shared by all flat content kinds.
// Published* methods use the restricted public handle; the rest use the
// privileged handle.
type Repository interface {
	ListPublished(context context.Context, filter Filter, limit, offset int) ([]*Item, int, error)
	GetPublishedBySlug(context context.Context, slug string) (*Item, error)

	Get(context context.Context, id int64) (*Item, error)
	Create(context context.Context, item *Item) error
	Update(context context.Context, item *Item) error
	Delete(context context.Context, id int64) error
}
