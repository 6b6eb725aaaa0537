// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/platform/apperr"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
)

/*
TestWrap_Classification maps the raw database error space onto the
client-facing error taxonomy.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"nil_passthrough", nil, 0, ""},
		{"no_rows", pgx.ErrNoRows, http.StatusNotFound, "NOT_FOUND"},
		{
			"foreign_key_violation",
			&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			http.StatusConflict,
			"CONFLICT",
		},
		{
			"unique_violation",
			&pgconn.PgError{Code: pgerrcode.UniqueViolation},
			http.StatusConflict,
			"CONFLICT",
		},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")

			if tt.err == nil {
				assert.NoError(t, wrapped)
				return
			}

			appError := apperr.As(wrapped)
			require.NotNil(t, appError)
			assert.Equal(t, tt.wantStatus, appError.HTTPStatus)
			assert.Equal(t, tt.wantCode, appError.Code)
		})
	}
}

/*
TestWrap_ForeignKeyMessage asserts the dependent-record guidance is surfaced
to the editor instead of the raw constraint name.
*/
func TestWrap_ForeignKeyMessage(t *testing.T) {
	cause := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "trip_day_destination_id_fkey"}

	appError := apperr.As(dberr.Wrap(cause, "delete_destination"))
	require.NotNil(t, appError)

	assert.Contains(t, appError.Message, "still reference")
	assert.NotContains(t, appError.Message, "fkey")
}
