// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package editors

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/periplus-travel/periplus/internal/platform/database/schema"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Handles
}

func NewPostgresRepository(db postgres.Handles) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func editorColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		schema.EditorsAccount.ID, schema.EditorsAccount.Email, schema.EditorsAccount.PasswordHash,
		schema.EditorsAccount.DisplayName, schema.EditorsAccount.Role,
		schema.EditorsAccount.CreatedAt, schema.EditorsAccount.UpdatedAt,
	)
}

func scanEditor(row pgx.Row) (*Editor, error) {
	editor := &Editor{}
	err := row.Scan(
		&editor.ID, &editor.Email, &editor.PasswordHash,
		&editor.DisplayName, &editor.Role, &editor.CreatedAt, &editor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return editor, nil
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Editor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE LOWER(%s) = LOWER($1)
	`, editorColumns(), schema.EditorsAccount.Table, schema.EditorsAccount.Email)

	editor, err := scanEditor(repository.db.Admin.QueryRow(context, query, email))
	return editor, dberr.Wrap(err, "find_editor_by_email")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Editor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, editorColumns(), schema.EditorsAccount.Table, schema.EditorsAccount.ID)

	editor, err := scanEditor(repository.db.Admin.QueryRow(context, query, id))
	return editor, dberr.Wrap(err, "find_editor_by_id")
}
