// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Architecture
//
// Stores never hand a raw pgx error to a handler. Every storage error passes
// through [Wrap], which classifies the Postgres SQLSTATE and produces a
// client-safe [apperr.AppError]. The original error is retained as the
// hidden cause for server-side logging.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/periplus-travel/periplus/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Classification
//
//   - pgx.ErrNoRows → 404 NOT_FOUND
//   - SQLSTATE 23503 (foreign key) → 409 CONFLICT, "other records still reference"
//   - SQLSTATE 23505 (unique) → 409 CONFLICT, duplicate value
//   - anything else → 500 INTERNAL_ERROR with the cause attached
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. SQLSTATE classification
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.ForeignKeyViolation:
			// Hard deletes blocked by dependents surface as an actionable
			// conflict, not a generic failure.
			return apperr.Conflict("Other records still reference this item. Remove the dependent records first.")
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A record with the same value already exists")
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
