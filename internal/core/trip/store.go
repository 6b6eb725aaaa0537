package trip

import "context"

// Repository is the storage contract for trips and their days. Published*
// methods use the restricted public handle; the rest use the privileged
// handle.
type Repository interface {
	ListPublished(context context.Context, filter Filter, limit, offset int) ([]*Trip, int, error)
	GetPublishedBySlug(context context.Context, slug string) (*Trip, error)

	Get(context context.Context, id int64) (*Trip, error)
	Create(context context.Context, trip *Trip) error
	Update(context context.Context, trip *Trip) error
	Delete(context context.Context, id int64) error

	// MaxDayIndex returns the highest day_index for a trip, 0 when it has
	// no days yet.
	MaxDayIndex(context context.Context, tripID int64) (int, error)
	AddDay(context context.Context, day *Day) error
	UpdateDay(context context.Context, day *Day) error
	DeleteDay(context context.Context, tripID, dayID int64) error
}
