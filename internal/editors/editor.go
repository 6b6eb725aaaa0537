// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

/*
Package editors implements CMS editor authentication.

Editors sign in with email and password; a successful login issues a
short-lived RS256 access token plus an opaque refresh token. The refresh
token is stored hashed in Redis with a TTL and rotated on every refresh, so
a replayed token is dead on arrival. Accounts are provisioned out of band —
there is no self-registration, and the public site never authenticates.
*/
package editors

import (
	"time"

	"github.com/periplus-travel/periplus/internal/platform/sec"
)

// Editor is one CMS account.
type Editor struct {
	ID           int64        `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

const (
	// AccessTokenTTL is kept short to bound the damage of a leaked token.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL keeps an editor signed in across working sessions.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshTokenLength is the byte length of the opaque refresh token.
	RefreshTokenLength = 32
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)
