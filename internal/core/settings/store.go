package settings

import "context"

// Repository is the storage contract for the settings singleton. Get runs on
// the restricted public handle, Upsert on the privileged handle.
type Repository interface {
	Get(context context.Context) (*Settings, error)
	Upsert(context context.Context, settings *Settings) error
}
