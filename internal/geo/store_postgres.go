// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package geo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/periplus-travel/periplus/internal/platform/database/schema"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/postgres"
)

// PostgresRepository implements [Repository] against the raw geo tables or,
// when useViews is set, the precomputed view tables for list reads.
//
// useViews is injected at construction so tests and deployments can exercise
// either branch without process-wide state.
type PostgresRepository struct {
	db       postgres.Handles
	useViews bool
}

func NewPostgresRepository(db postgres.Handles, useViews bool) *PostgresRepository {
	return &PostgresRepository{db: db, useViews: useViews}
}

// # Hierarchy Lists

func (repository *PostgresRepository) Regions(context context.Context) ([]Row, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s NULLS LAST, %s
	`,
		schema.GeoRegion.ID, schema.GeoRegion.Name, schema.GeoRegion.Slug, schema.GeoRegion.OrderIndex,
		schema.GeoRegion.Table, schema.GeoRegion.OrderIndex, schema.GeoRegion.Name,
	)

	rows, err := repository.db.Public.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_regions")
	}
	defer rows.Close()

	var regions []Row
	for rows.Next() {
		var region Row
		if err := rows.Scan(&region.ID, &region.Name, &region.Slug, &region.OrderIndex); err != nil {
			return nil, dberr.Wrap(err, "scan_region")
		}
		regions = append(regions, region)
	}

	return regions, nil
}

// PrefectureRows returns every prefecture with its parent region attached,
// from whichever source is configured. The view table carries no order
// guarantee, so rows are always re-sorted client-side.
func (repository *PostgresRepository) PrefectureRows(context context.Context) ([]Row, error) {
	var query string
	if repository.useViews {
		view := schema.GeoPrefectureView
		query = fmt.Sprintf(`
			SELECT %s, %s, %s, %s, %s, %s, %s
			FROM %s
		`,
			view.PrefectureID, view.PrefectureName, view.PrefectureSlug,
			view.RegionID, view.RegionName, view.RegionSlug, view.OrderIndex,
			view.Table,
		)
	} else {
		p, r := schema.GeoPrefecture, schema.GeoRegion
		query = fmt.Sprintf(`
			SELECT p.%s AS id, p.%s AS name, p.%s AS slug, p.%s AS order_index,
			       p.%s AS region_id, r.%s AS region_name, r.%s AS region_slug
			FROM %s p
			JOIN %s r ON r.%s = p.%s
			ORDER BY p.%s
		`,
			p.ID, p.Name, p.Slug, p.OrderIndex,
			p.RegionID, r.Name, r.Slug,
			p.Table, r.Table, r.ID, p.RegionID,
			p.OrderIndex,
		)
	}

	return repository.collectNormalized(context, query, NormalizePrefectureRow, "list_prefectures")
}

// DivisionRows mirrors [PrefectureRows] one level down.
func (repository *PostgresRepository) DivisionRows(context context.Context) ([]Row, error) {
	var query string
	if repository.useViews {
		view := schema.GeoDivisionView
		query = fmt.Sprintf(`
			SELECT %s, %s, %s, %s, %s, %s, %s
			FROM %s
		`,
			view.DivisionID, view.DivisionName, view.DivisionSlug,
			view.PrefectureID, view.PrefectureName, view.PrefectureSlug, view.OrderIndex,
			view.Table,
		)
	} else {
		d, p := schema.GeoDivision, schema.GeoPrefecture
		query = fmt.Sprintf(`
			SELECT d.%s AS id, d.%s AS name, d.%s AS slug, d.%s AS order_index,
			       d.%s AS prefecture_id, p.%s AS parent_name, p.%s AS parent_slug
			FROM %s d
			JOIN %s p ON p.%s = d.%s
			ORDER BY d.%s
		`,
			d.ID, d.Name, d.Slug, d.OrderIndex,
			d.PrefectureID, p.Name, p.Slug,
			d.Table, p.Table, p.ID, d.PrefectureID,
			d.OrderIndex,
		)
	}

	return repository.collectNormalized(context, query, NormalizeDivisionRow, "list_divisions")
}

// collectNormalized runs a list query, funnels every row through the given
// normalizer, and applies the canonical sort.
func (repository *PostgresRepository) collectNormalized(
	context context.Context,
	query string,
	normalize func(map[string]any) Row,
	action string,
) ([]Row, error) {
	rows, err := repository.db.Public.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	sources, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	normalized := make([]Row, 0, len(sources))
	for _, source := range sources {
		normalized = append(normalized, normalize(source))
	}

	SortRows(normalized)
	return normalized, nil
}

// # Strict Slug Resolution

func (repository *PostgresRepository) RegionBySlug(context context.Context, slug string) (*Row, error) {
	r := schema.GeoRegion
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s FROM %s WHERE %s = $1
	`, r.ID, r.Name, r.Slug, r.OrderIndex, r.Table, r.Slug)

	var region Row
	err := repository.db.Public.QueryRow(context, query, slug).
		Scan(&region.ID, &region.Name, &region.Slug, &region.OrderIndex)
	if err != nil {
		return nil, dberr.Wrap(err, "region_by_slug")
	}
	return &region, nil
}

func (repository *PostgresRepository) PrefectureBySlugInRegion(context context.Context, slug, regionSlug string) (*Row, error) {
	p, r := schema.GeoPrefecture, schema.GeoRegion
	query := fmt.Sprintf(`
		SELECT p.%s AS id, p.%s AS name, p.%s AS slug, p.%s AS order_index,
		       p.%s AS region_id, r.%s AS region_name, r.%s AS region_slug
		FROM %s p
		JOIN %s r ON r.%s = p.%s
		WHERE p.%s = $1 AND r.%s = $2
	`,
		p.ID, p.Name, p.Slug, p.OrderIndex, p.RegionID, r.Name, r.Slug,
		p.Table, r.Table, r.ID, p.RegionID,
		p.Slug, r.Slug,
	)

	return repository.oneNormalized(context, query, NormalizePrefectureRow, "prefecture_by_slug_strict", slug, regionSlug)
}

func (repository *PostgresRepository) DivisionBySlugInPrefecture(context context.Context, slug, prefectureSlug string) (*Row, error) {
	d, p := schema.GeoDivision, schema.GeoPrefecture
	query := fmt.Sprintf(`
		SELECT d.%s AS id, d.%s AS name, d.%s AS slug, d.%s AS order_index,
		       d.%s AS prefecture_id, p.%s AS parent_name, p.%s AS parent_slug
		FROM %s d
		JOIN %s p ON p.%s = d.%s
		WHERE d.%s = $1 AND p.%s = $2
	`,
		d.ID, d.Name, d.Slug, d.OrderIndex, d.PrefectureID, p.Name, p.Slug,
		d.Table, p.Table, p.ID, d.PrefectureID,
		d.Slug, p.Slug,
	)

	return repository.oneNormalized(context, query, NormalizeDivisionRow, "division_by_slug_strict", slug, prefectureSlug)
}

// # Loose Slug Resolution

// PrefectureBySlugLoose matches the slug globally. No ORDER BY on purpose:
// first-match semantics are whatever the engine returns first, and callers
// that need a defined answer must use the strict variant.
func (repository *PostgresRepository) PrefectureBySlugLoose(context context.Context, slug string) (*Row, error) {
	p, r := schema.GeoPrefecture, schema.GeoRegion
	query := fmt.Sprintf(`
		SELECT p.%s AS id, p.%s AS name, p.%s AS slug, p.%s AS order_index,
		       p.%s AS region_id, r.%s AS region_name, r.%s AS region_slug
		FROM %s p
		JOIN %s r ON r.%s = p.%s
		WHERE p.%s = $1
		LIMIT 1
	`,
		p.ID, p.Name, p.Slug, p.OrderIndex, p.RegionID, r.Name, r.Slug,
		p.Table, r.Table, r.ID, p.RegionID,
		p.Slug,
	)

	return repository.oneNormalized(context, query, NormalizePrefectureRow, "prefecture_by_slug_loose", slug)
}

func (repository *PostgresRepository) DivisionBySlugLoose(context context.Context, slug string) (*Row, error) {
	d, p := schema.GeoDivision, schema.GeoPrefecture
	query := fmt.Sprintf(`
		SELECT d.%s AS id, d.%s AS name, d.%s AS slug, d.%s AS order_index,
		       d.%s AS prefecture_id, p.%s AS parent_name, p.%s AS parent_slug
		FROM %s d
		JOIN %s p ON p.%s = d.%s
		WHERE d.%s = $1
		LIMIT 1
	`,
		d.ID, d.Name, d.Slug, d.OrderIndex, d.PrefectureID, p.Name, p.Slug,
		d.Table, p.Table, p.ID, d.PrefectureID,
		d.Slug,
	)

	return repository.oneNormalized(context, query, NormalizeDivisionRow, "division_by_slug_loose", slug)
}

func (repository *PostgresRepository) oneNormalized(
	context context.Context,
	query string,
	normalize func(map[string]any) Row,
	action string,
	args ...any,
) (*Row, error) {
	rows, err := repository.db.Public.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	source, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	row := normalize(source)
	return &row, nil
}

// # Destinations

const destinationColumns = `d.id, d.division_id, d.name, d.slug, d.order_index, d.summary,
       d.hero_image, d.lat, d.lon, d.geocode_status, d.geocoded_at, d.created_at, d.updated_at`

func scanDestination(row pgx.Row) (*Destination, error) {
	var destination Destination
	err := row.Scan(
		&destination.ID, &destination.DivisionID, &destination.Name, &destination.Slug,
		&destination.OrderIndex, &destination.Summary, &destination.HeroImage,
		&destination.Lat, &destination.Lon, &destination.GeocodeStatus, &destination.GeocodedAt,
		&destination.CreatedAt, &destination.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

func (repository *PostgresRepository) DestinationsByDivision(context context.Context, divisionID int64) ([]Destination, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s d
		WHERE d.%s = $1
		ORDER BY d.%s NULLS LAST, d.%s
	`,
		destinationColumns, schema.GeoDestination.Table,
		schema.GeoDestination.DivisionID,
		schema.GeoDestination.OrderIndex, schema.GeoDestination.Name,
	)

	rows, err := repository.db.Public.Query(context, query, divisionID)
	if err != nil {
		return nil, dberr.Wrap(err, "destinations_by_division")
	}
	defer rows.Close()

	var destinations []Destination
	for rows.Next() {
		destination, err := scanDestination(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_destination")
		}
		destinations = append(destinations, *destination)
	}

	return destinations, nil
}

func (repository *PostgresRepository) DestinationBySlugInDivision(context context.Context, slug, divisionSlug string) (*Destination, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s d
		JOIN %s v ON v.%s = d.%s
		WHERE d.%s = $1 AND v.%s = $2
	`,
		destinationColumns, schema.GeoDestination.Table,
		schema.GeoDivision.Table, schema.GeoDivision.ID, schema.GeoDestination.DivisionID,
		schema.GeoDestination.Slug, schema.GeoDivision.Slug,
	)

	destination, err := scanDestination(repository.db.Public.QueryRow(context, query, slug, divisionSlug))
	return destination, dberr.Wrap(err, "destination_by_slug_strict")
}

func (repository *PostgresRepository) DestinationBySlugLoose(context context.Context, slug string) (*Destination, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s d
		WHERE d.%s = $1
		LIMIT 1
	`, destinationColumns, schema.GeoDestination.Table, schema.GeoDestination.Slug)

	destination, err := scanDestination(repository.db.Public.QueryRow(context, query, slug))
	return destination, dberr.Wrap(err, "destination_by_slug_loose")
}

func (repository *PostgresRepository) DestinationByID(context context.Context, id int64) (*Destination, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s d
		WHERE d.%s = $1
	`, destinationColumns, schema.GeoDestination.Table, schema.GeoDestination.ID)

	// Admin handle: geocoding and CMS forms read drafts-in-progress by id.
	destination, err := scanDestination(repository.db.Admin.QueryRow(context, query, id))
	return destination, dberr.Wrap(err, "destination_by_id")
}

// # Admin Writes

func (repository *PostgresRepository) CreateDestination(context context.Context, destination *Destination) error {
	d := schema.GeoDestination
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		d.Table, d.DivisionID, d.Name, d.Slug, d.OrderIndex, d.Summary, d.CreatedAt, d.UpdatedAt,
		d.ID, d.CreatedAt, d.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		destination.DivisionID, destination.Name, destination.Slug,
		destination.OrderIndex, destination.Summary,
	).Scan(&destination.ID, &destination.CreatedAt, &destination.UpdatedAt)
	return dberr.Wrap(err, "create_destination")
}

func (repository *PostgresRepository) UpdateDestination(context context.Context, destination *Destination) error {
	d := schema.GeoDestination
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		d.Table, d.DivisionID, d.Name, d.Slug, d.OrderIndex, d.Summary, d.UpdatedAt,
		d.ID, d.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		destination.ID, destination.DivisionID, destination.Name, destination.Slug,
		destination.OrderIndex, destination.Summary,
	).Scan(&destination.UpdatedAt)
	return dberr.Wrap(err, "update_destination")
}

// DeleteDestination is a hard delete. Dependent content rows surface as a
// foreign-key conflict via dberr, never as a cascade.
func (repository *PostgresRepository) DeleteDestination(context context.Context, id int64) error {
	d := schema.GeoDestination
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, d.Table, d.ID)

	cmd, err := repository.db.Admin.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_destination")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// UpdateGeocode persists a geocoding outcome. Status and timestamp are
// written even when the provider returned nothing usable, so a failed
// attempt is still visible in the CMS.
func (repository *PostgresRepository) UpdateGeocode(context context.Context, id int64, lat, lon *float64, status string, at time.Time) error {
	d := schema.GeoDestination
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s), %s = COALESCE($3, %s), %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
	`,
		d.Table, d.Lat, d.Lat, d.Lon, d.Lon, d.GeocodeStatus, d.GeocodedAt, d.UpdatedAt,
		d.ID,
	)

	cmd, err := repository.db.Admin.Exec(context, query, id, lat, lon, status, at)
	if err != nil {
		return dberr.Wrap(err, "update_geocode")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
