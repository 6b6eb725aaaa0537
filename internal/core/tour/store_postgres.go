package tour

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/periplus-travel/periplus/internal/platform/constants"
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

func tourColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentTour.ID, schema.ContentTour.DestinationID, schema.ContentTour.Name,
		schema.ContentTour.Slug, schema.ContentTour.Status, schema.ContentTour.Summary,
		schema.ContentTour.Images, schema.ContentTour.DurationMin, schema.ContentTour.PriceCents,
		schema.ContentTour.CreatedAt, schema.ContentTour.UpdatedAt,
	)
}

func scanTour(row pgx.Row) (*Tour, error) {
	tour := &Tour{}
	err := row.Scan(
		&tour.ID, &tour.DestinationID, &tour.Name, &tour.Slug, &tour.Status,
		&tour.Summary, &tour.Images, &tour.DurationMin, &tour.PriceCents,
		&tour.CreatedAt, &tour.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tour, nil
}

// # Public Reads

func (repository *PostgresRepository) ListPublished(context context.Context, filter Filter, limit, offset int) ([]*Tour, int, error) {
	baseWhere := fmt.Sprintf("WHERE %s = $1", schema.ContentTour.Status)
	args := []any{constants.StatusPublished}

	if filter.DestinationID > 0 {
		baseWhere += fmt.Sprintf(" AND %s = $%d", schema.ContentTour.DestinationID, len(args)+1)
		args = append(args, filter.DestinationID)
	}
	if filter.Query != "" {
		baseWhere += fmt.Sprintf(" AND %s ILIKE $%d", schema.ContentTour.Name, len(args)+1)
		args = append(args, "%"+filter.Query+"%")
	}

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s %s", schema.ContentTour.Table, baseWhere)

	var total int
	if err := repository.db.Public.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tours")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		ORDER BY %s ASC
		LIMIT $%s OFFSET $%s
	`, tourColumns(), schema.ContentTour.Table, baseWhere, schema.ContentTour.Name,
		strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Public.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tours")
	}
	defer rows.Close()

	var tours []*Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_tour")
		}
		tours = append(tours, tour)
	}

	return tours, total, nil
}

func (repository *PostgresRepository) GetPublishedBySlug(context context.Context, slug string) (*Tour, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		LIMIT 1
	`, tourColumns(), schema.ContentTour.Table, schema.ContentTour.Slug, schema.ContentTour.Status)

	tour, err := scanTour(repository.db.Public.QueryRow(context, query, slug, constants.StatusPublished))
	if err != nil {
		return nil, dberr.Wrap(err, "get_tour_by_slug")
	}

	if err := repository.loadChildren(context, repository.db.Public, tour); err != nil {
		return nil, err
	}
	return tour, nil
}

// # Admin

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Tour, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, tourColumns(), schema.ContentTour.Table, schema.ContentTour.ID)

	tour, err := scanTour(repository.db.Admin.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_tour")
	}

	if err := repository.loadChildren(context, repository.db.Admin, tour); err != nil {
		return nil, err
	}
	return tour, nil
}

// Create inserts the parent first for its id, then batch-inserts the
// availability rows. Not transactional across the two steps.
func (repository *PostgresRepository) Create(context context.Context, tour *Tour) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.ContentTour.Table, schema.ContentTour.DestinationID, schema.ContentTour.Name,
		schema.ContentTour.Slug, schema.ContentTour.Status, schema.ContentTour.Summary,
		schema.ContentTour.Images, schema.ContentTour.DurationMin, schema.ContentTour.PriceCents,
		schema.ContentTour.CreatedAt, schema.ContentTour.UpdatedAt,
		schema.ContentTour.ID, schema.ContentTour.CreatedAt, schema.ContentTour.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		tour.DestinationID, tour.Name, tour.Slug, tour.Status, tour.Summary,
		tour.Images, tour.DurationMin, tour.PriceCents,
	).Scan(&tour.ID, &tour.CreatedAt, &tour.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_tour")
	}

	return repository.replaceChildren(context, tour)
}

// Update rewrites the parent and replaces the availability rows wholesale.
func (repository *PostgresRepository) Update(context context.Context, tour *Tour) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentTour.Table, schema.ContentTour.DestinationID, schema.ContentTour.Name,
		schema.ContentTour.Slug, schema.ContentTour.Status, schema.ContentTour.Summary,
		schema.ContentTour.Images, schema.ContentTour.DurationMin, schema.ContentTour.PriceCents,
		schema.ContentTour.UpdatedAt, schema.ContentTour.ID, schema.ContentTour.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		tour.ID, tour.DestinationID, tour.Name, tour.Slug, tour.Status, tour.Summary,
		tour.Images, tour.DurationMin, tour.PriceCents,
	).Scan(&tour.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_tour")
	}

	deleteRules := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.TourAvailabilityRule.Table, schema.TourAvailabilityRule.TourID)
	if _, err := repository.db.Admin.Exec(context, deleteRules, tour.ID); err != nil {
		return dberr.Wrap(err, "clear_tour_rules")
	}

	deleteExceptions := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.TourException.Table, schema.TourException.TourID)
	if _, err := repository.db.Admin.Exec(context, deleteExceptions, tour.ID); err != nil {
		return dberr.Wrap(err, "clear_tour_exceptions")
	}

	return repository.replaceChildren(context, tour)
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.ContentTour.Table, schema.ContentTour.ID)

	cmd, err := repository.db.Admin.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tour")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Child Batches

func (repository *PostgresRepository) replaceChildren(context context.Context, tour *Tour) error {
	if len(tour.AvailabilityRules) > 0 {
		batch := &pgx.Batch{}
		for index := range tour.AvailabilityRules {
			rule := &tour.AvailabilityRules[index]
			rule.TourID = tour.ID
			batch.Queue(fmt.Sprintf(`
				INSERT INTO %s (%s, %s, %s, %s)
				VALUES ($1, $2, $3, $4)
			`, schema.TourAvailabilityRule.Table, schema.TourAvailabilityRule.TourID,
				schema.TourAvailabilityRule.Weekday, schema.TourAvailabilityRule.StartsAt,
				schema.TourAvailabilityRule.Capacity),
				rule.TourID, rule.Weekday, rule.StartsAt, rule.Capacity)
		}
		if err := sendBatch(context, repository.db.Admin, batch); err != nil {
			return dberr.Wrap(err, "insert_tour_rules")
		}
	}

	if len(tour.Exceptions) > 0 {
		batch := &pgx.Batch{}
		for index := range tour.Exceptions {
			exception := &tour.Exceptions[index]
			exception.TourID = tour.ID
			batch.Queue(fmt.Sprintf(`
				INSERT INTO %s (%s, %s, %s, %s)
				VALUES ($1, $2, $3, $4)
			`, schema.TourException.Table, schema.TourException.TourID,
				schema.TourException.Date, schema.TourException.Cancelled,
				schema.TourException.Note),
				exception.TourID, exception.Date, exception.Cancelled, exception.Note)
		}
		if err := sendBatch(context, repository.db.Admin, batch); err != nil {
			return dberr.Wrap(err, "insert_tour_exceptions")
		}
	}

	return nil
}

func sendBatch(context context.Context, pool *pgxpool.Pool, batch *pgx.Batch) error {
	result := pool.SendBatch(context, batch)
	defer result.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := result.Exec(); err != nil {
			return fmt.Errorf("batch statement %d: %w", i, err)
		}
	}
	return nil
}

func (repository *PostgresRepository) loadChildren(context context.Context, pool *pgxpool.Pool, tour *Tour) error {
	rulesQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC
	`,
		schema.TourAvailabilityRule.ID, schema.TourAvailabilityRule.TourID,
		schema.TourAvailabilityRule.Weekday, schema.TourAvailabilityRule.StartsAt,
		schema.TourAvailabilityRule.Capacity,
		schema.TourAvailabilityRule.Table, schema.TourAvailabilityRule.TourID,
		schema.TourAvailabilityRule.Weekday, schema.TourAvailabilityRule.StartsAt,
	)

	rows, err := pool.Query(context, rulesQuery, tour.ID)
	if err != nil {
		return dberr.Wrap(err, "load_tour_rules")
	}
	defer rows.Close()

	for rows.Next() {
		var rule AvailabilityRule
		if err := rows.Scan(&rule.ID, &rule.TourID, &rule.Weekday, &rule.StartsAt, &rule.Capacity); err != nil {
			return dberr.Wrap(err, "scan_tour_rule")
		}
		tour.AvailabilityRules = append(tour.AvailabilityRules, rule)
	}
	rows.Close()

	exceptionsQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.TourException.ID, schema.TourException.TourID, schema.TourException.Date,
		schema.TourException.Cancelled, schema.TourException.Note,
		schema.TourException.Table, schema.TourException.TourID, schema.TourException.Date,
	)

	exceptionRows, err := pool.Query(context, exceptionsQuery, tour.ID)
	if err != nil {
		return dberr.Wrap(err, "load_tour_exceptions")
	}
	defer exceptionRows.Close()

	for exceptionRows.Next() {
		var exception Exception
		err := exceptionRows.Scan(
			&exception.ID, &exception.TourID, &exception.Date,
			&exception.Cancelled, &exception.Note,
		)
		if err != nil {
			return dberr.Wrap(err, "scan_tour_exception")
		}
		tour.Exceptions = append(tour.Exceptions, exception)
	}

	return nil
}
