// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package editors

import (
	"context"
	"time"
)

// Repository looks up editor accounts. All queries run on the privileged
// handle; the public anon role cannot see the editors schema at all.
type Repository interface {
	FindByEmail(context context.Context, email string) (*Editor, error)
	FindByID(context context.Context, id int64) (*Editor, error)
}

// SessionStore tracks refresh tokens by hash. A missing hash means the
// session is expired, rotated away, or never existed — callers cannot tell
// which, and must not need to.
type SessionStore interface {
	Set(context context.Context, tokenHash string, editorID int64, ttl time.Duration) error
	Get(context context.Context, tokenHash string) (int64, error)
	Delete(context context.Context, tokenHash string) error
}
