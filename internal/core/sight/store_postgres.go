package sight

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

func sightColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentSight.ID, schema.ContentSight.DestinationID, schema.ContentSight.Name,
		schema.ContentSight.Slug, schema.ContentSight.Status, schema.ContentSight.Summary,
		schema.ContentSight.Images, schema.ContentSight.CreatedAt, schema.ContentSight.UpdatedAt,
	)
}

func scanSight(row pgx.Row) (*Sight, error) {
	sight := &Sight{}
	err := row.Scan(
		&sight.ID, &sight.DestinationID, &sight.Name, &sight.Slug, &sight.Status,
		&sight.Summary, &sight.Images, &sight.CreatedAt, &sight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sight, nil
}

// # Public Reads

func (repository *PostgresRepository) ListPublished(context context.Context, filter Filter, limit, offset int) ([]*Sight, int, error) {
	baseWhere := fmt.Sprintf("WHERE %s = $1", schema.ContentSight.Status)
	args := []any{constants.StatusPublished}

	if filter.DestinationID > 0 {
		baseWhere += fmt.Sprintf(" AND %s = $%d", schema.ContentSight.DestinationID, len(args)+1)
		args = append(args, filter.DestinationID)
	}
	if filter.Query != "" {
		baseWhere += fmt.Sprintf(" AND %s ILIKE $%d", schema.ContentSight.Name, len(args)+1)
		args = append(args, "%"+filter.Query+"%")
	}

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s %s", schema.ContentSight.Table, baseWhere)

	var total int
	if err := repository.db.Public.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_sights")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		ORDER BY %s ASC
		LIMIT $%s OFFSET $%s
	`, sightColumns(), schema.ContentSight.Table, baseWhere, schema.ContentSight.Name,
		strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Public.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_sights")
	}
	defer rows.Close()

	var sights []*Sight
	for rows.Next() {
		sight, err := scanSight(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_sight")
		}
		sights = append(sights, sight)
	}

	return sights, total, nil
}

func (repository *PostgresRepository) GetPublishedBySlug(context context.Context, slug string) (*Sight, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		LIMIT 1
	`, sightColumns(), schema.ContentSight.Table, schema.ContentSight.Slug, schema.ContentSight.Status)

	sight, err := scanSight(repository.db.Public.QueryRow(context, query, slug, constants.StatusPublished))
	if err != nil {
		return nil, dberr.Wrap(err, "get_sight_by_slug")
	}

	if err := repository.loadChildren(context, repository.db.Public, sight); err != nil {
		return nil, err
	}
	return sight, nil
}

// # Admin

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Sight, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, sightColumns(), schema.ContentSight.Table, schema.ContentSight.ID)

	sight, err := scanSight(repository.db.Admin.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_sight")
	}

	if err := repository.loadChildren(context, repository.db.Admin, sight); err != nil {
		return nil, err
	}
	return sight, nil
}

// Create inserts the parent row first to obtain its id, then bulk-inserts the
// schedule rows referencing it. The two steps are not transactional: a child
// batch failure leaves the parent in place.
func (repository *PostgresRepository) Create(context context.Context, sight *Sight) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.ContentSight.Table, schema.ContentSight.DestinationID, schema.ContentSight.Name,
		schema.ContentSight.Slug, schema.ContentSight.Status, schema.ContentSight.Summary,
		schema.ContentSight.Images, schema.ContentSight.CreatedAt, schema.ContentSight.UpdatedAt,
		schema.ContentSight.ID, schema.ContentSight.CreatedAt, schema.ContentSight.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		sight.DestinationID, sight.Name, sight.Slug, sight.Status, sight.Summary, sight.Images,
	).Scan(&sight.ID, &sight.CreatedAt, &sight.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_sight")
	}

	return repository.replaceChildren(context, sight)
}

// Update rewrites the parent row and replaces the schedule rows as a whole
// batch. Existing children are never diffed against the submission.
func (repository *PostgresRepository) Update(context context.Context, sight *Sight) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentSight.Table, schema.ContentSight.DestinationID, schema.ContentSight.Name,
		schema.ContentSight.Slug, schema.ContentSight.Status, schema.ContentSight.Summary,
		schema.ContentSight.Images, schema.ContentSight.UpdatedAt,
		schema.ContentSight.ID, schema.ContentSight.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		sight.ID, sight.DestinationID, sight.Name, sight.Slug, sight.Status, sight.Summary, sight.Images,
	).Scan(&sight.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_sight")
	}

	deleteHours := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.SightOpeningHour.Table, schema.SightOpeningHour.SightID)
	if _, err := repository.db.Admin.Exec(context, deleteHours, sight.ID); err != nil {
		return dberr.Wrap(err, "clear_sight_hours")
	}

	deleteExceptions := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.SightOpeningException.Table, schema.SightOpeningException.SightID)
	if _, err := repository.db.Admin.Exec(context, deleteExceptions, sight.ID); err != nil {
		return dberr.Wrap(err, "clear_sight_exceptions")
	}

	return repository.replaceChildren(context, sight)
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.ContentSight.Table, schema.ContentSight.ID)

	cmd, err := repository.db.Admin.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_sight")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Child Batches

func (repository *PostgresRepository) replaceChildren(context context.Context, sight *Sight) error {
	if len(sight.OpeningHours) > 0 {
		batch := &pgx.Batch{}
		for index := range sight.OpeningHours {
			hour := &sight.OpeningHours[index]
			hour.SightID = sight.ID
			batch.Queue(fmt.Sprintf(`
				INSERT INTO %s (%s, %s, %s, %s, %s)
				VALUES ($1, $2, $3, $4, $5)
			`, schema.SightOpeningHour.Table, schema.SightOpeningHour.SightID,
				schema.SightOpeningHour.Weekday, schema.SightOpeningHour.Opens,
				schema.SightOpeningHour.Closes, schema.SightOpeningHour.Note),
				hour.SightID, hour.Weekday, hour.Opens, hour.Closes, hour.Note)
		}
		if err := sendBatch(context, repository.db.Admin, batch); err != nil {
			return dberr.Wrap(err, "insert_sight_hours")
		}
	}

	if len(sight.OpeningExceptions) > 0 {
		batch := &pgx.Batch{}
		for index := range sight.OpeningExceptions {
			exception := &sight.OpeningExceptions[index]
			exception.SightID = sight.ID
			batch.Queue(fmt.Sprintf(`
				INSERT INTO %s (%s, %s, %s, %s, %s, %s)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, schema.SightOpeningException.Table, schema.SightOpeningException.SightID,
				schema.SightOpeningException.Date, schema.SightOpeningException.Closed,
				schema.SightOpeningException.Opens, schema.SightOpeningException.Closes,
				schema.SightOpeningException.Note),
				exception.SightID, exception.Date, exception.Closed,
				exception.Opens, exception.Closes, exception.Note)
		}
		if err := sendBatch(context, repository.db.Admin, batch); err != nil {
			return dberr.Wrap(err, "insert_sight_exceptions")
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

func (repository *PostgresRepository) loadChildren(context context.Context, pool *pgxpool.Pool, sight *Sight) error {
	hoursQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.SightOpeningHour.ID, schema.SightOpeningHour.SightID, schema.SightOpeningHour.Weekday,
		schema.SightOpeningHour.Opens, schema.SightOpeningHour.Closes, schema.SightOpeningHour.Note,
		schema.SightOpeningHour.Table, schema.SightOpeningHour.SightID, schema.SightOpeningHour.Weekday,
	)

	rows, err := pool.Query(context, hoursQuery, sight.ID)
	if err != nil {
		return dberr.Wrap(err, "load_sight_hours")
	}
	defer rows.Close()

	for rows.Next() {
		var hour OpeningHour
		if err := rows.Scan(&hour.ID, &hour.SightID, &hour.Weekday, &hour.Opens, &hour.Closes, &hour.Note); err != nil {
			return dberr.Wrap(err, "scan_sight_hour")
		}
		sight.OpeningHours = append(sight.OpeningHours, hour)
	}
	rows.Close()

	exceptionsQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.SightOpeningException.ID, schema.SightOpeningException.SightID,
		schema.SightOpeningException.Date, schema.SightOpeningException.Closed,
		schema.SightOpeningException.Opens, schema.SightOpeningException.Closes,
		schema.SightOpeningException.Note,
		schema.SightOpeningException.Table, schema.SightOpeningException.SightID,
		schema.SightOpeningException.Date,
	)

	exceptionRows, err := pool.Query(context, exceptionsQuery, sight.ID)
	if err != nil {
		return dberr.Wrap(err, "load_sight_exceptions")
	}
	defer exceptionRows.Close()

	for exceptionRows.Next() {
		var exception OpeningException
		err := exceptionRows.Scan(
			&exception.ID, &exception.SightID, &exception.Date, &exception.Closed,
			&exception.Opens, &exception.Closes, &exception.Note,
		)
		if err != nil {
			return dberr.Wrap(err, "scan_sight_exception")
		}
		sight.OpeningExceptions = append(sight.OpeningExceptions, exception)
	}

	return nil
}
