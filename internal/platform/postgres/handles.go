// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Handles bundles the two privilege levels the application connects with.
//
// # Selection Contract
//
// Public is a restricted role used for publicly cacheable reads; Admin is the
// service role used for CMS writes and unfiltered reads. A store picks the
// handle per operation — choosing the wrong one is a caller bug this type
// does not self-check, so the split is kept visible at every call site
// instead of hidden behind a single pool.
type Handles struct {
	// Public serves published-content reads under the restricted role.
	Public *pgxpool.Pool

	// Admin serves privileged CMS reads and writes under the service role.
	Admin *pgxpool.Pool
}

// NewHandles dials both pools and verifies connectivity on each.
//
// Both pools are stateless per request: no session persistence is configured
// beyond pgx's connection reuse.
func NewHandles(ctx context.Context, publicDSN, adminDSN string, logger *slog.Logger) (Handles, error) {
	publicPool, err := NewPool(ctx, publicDSN, logger.With(slog.String("role", "public")))
	if err != nil {
		return Handles{}, err
	}

	adminPool, err := NewPool(ctx, adminDSN, logger.With(slog.String("role", "admin")))
	if err != nil {
		publicPool.Close()
		return Handles{}, err
	}

	return Handles{Public: publicPool, Admin: adminPool}, nil
}

// Close releases both pools.
func (h Handles) Close() {
	if h.Public != nil {
		h.Public.Close()
	}
	if h.Admin != nil {
		h.Admin.Close()
	}
}
