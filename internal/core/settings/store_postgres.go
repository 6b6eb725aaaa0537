package settings

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) Get(context context.Context) (*Settings, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.SiteSetting.HeroHeadline, schema.SiteSetting.HeroTagline,
		schema.SiteSetting.HeroImages, schema.SiteSetting.UpdatedAt,
		schema.SiteSetting.Table, schema.SiteSetting.ID,
	)

	settings := &Settings{}
	err := repository.db.Public.QueryRow(context, query, schema.SiteSettingRowID).Scan(
		&settings.HeroHeadline, &settings.HeroTagline, &settings.HeroImages, &settings.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_settings")
	}
	return settings, nil
}

// Upsert overwrites the singleton row in place; the fixed id makes the
// insert path only ever fire on a fresh database.
func (repository *PostgresRepository) Upsert(context context.Context, settings *Settings) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s
	`,
		schema.SiteSetting.Table, schema.SiteSetting.ID, schema.SiteSetting.HeroHeadline,
		schema.SiteSetting.HeroTagline, schema.SiteSetting.HeroImages, schema.SiteSetting.UpdatedAt,
		schema.SiteSetting.ID,
		schema.SiteSetting.HeroHeadline, schema.SiteSetting.HeroHeadline,
		schema.SiteSetting.HeroTagline, schema.SiteSetting.HeroTagline,
		schema.SiteSetting.HeroImages, schema.SiteSetting.HeroImages,
		schema.SiteSetting.UpdatedAt,
		schema.SiteSetting.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		schema.SiteSettingRowID, settings.HeroHeadline, settings.HeroTagline, settings.HeroImages,
	).Scan(&settings.UpdatedAt)
	return dberr.Wrap(err, "upsert_settings")
}
