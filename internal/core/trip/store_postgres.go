package trip

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

func tripColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentTrip.ID, schema.ContentTrip.Name, schema.ContentTrip.Slug,
		schema.ContentTrip.Status, schema.ContentTrip.Summary, schema.ContentTrip.Images,
		schema.ContentTrip.CreatedAt, schema.ContentTrip.UpdatedAt,
	)
}

func scanTrip(row pgx.Row) (*Trip, error) {
	trip := &Trip{}
	err := row.Scan(
		&trip.ID, &trip.Name, &trip.Slug, &trip.Status,
		&trip.Summary, &trip.Images, &trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// # Public Reads

func (repository *PostgresRepository) ListPublished(context context.Context, filter Filter, limit, offset int) ([]*Trip, int, error) {
	baseWhere := fmt.Sprintf("WHERE %s = $1", schema.ContentTrip.Status)
	args := []any{constants.StatusPublished}

	if filter.Query != "" {
		baseWhere += fmt.Sprintf(" AND %s ILIKE $%d", schema.ContentTrip.Name, len(args)+1)
		args = append(args, "%"+filter.Query+"%")
	}

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s %s", schema.ContentTrip.Table, baseWhere)

	var total int
	if err := repository.db.Public.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_trips")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		ORDER BY %s ASC
		LIMIT $%s OFFSET $%s
	`, tripColumns(), schema.ContentTrip.Table, baseWhere, schema.ContentTrip.Name,
		strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Public.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_trips")
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_trip")
		}
		trips = append(trips, trip)
	}

	return trips, total, nil
}

func (repository *PostgresRepository) GetPublishedBySlug(context context.Context, slug string) (*Trip, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		LIMIT 1
	`, tripColumns(), schema.ContentTrip.Table, schema.ContentTrip.Slug, schema.ContentTrip.Status)

	trip, err := scanTrip(repository.db.Public.QueryRow(context, query, slug, constants.StatusPublished))
	if err != nil {
		return nil, dberr.Wrap(err, "get_trip_by_slug")
	}

	if err := repository.loadDays(context, repository.db.Public, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// # Admin

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Trip, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, tripColumns(), schema.ContentTrip.Table, schema.ContentTrip.ID)

	trip, err := scanTrip(repository.db.Admin.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_trip")
	}

	if err := repository.loadDays(context, repository.db.Admin, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (repository *PostgresRepository) Create(context context.Context, trip *Trip) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.ContentTrip.Table, schema.ContentTrip.Name, schema.ContentTrip.Slug,
		schema.ContentTrip.Status, schema.ContentTrip.Summary, schema.ContentTrip.Images,
		schema.ContentTrip.CreatedAt, schema.ContentTrip.UpdatedAt,
		schema.ContentTrip.ID, schema.ContentTrip.CreatedAt, schema.ContentTrip.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		trip.Name, trip.Slug, trip.Status, trip.Summary, trip.Images,
	).Scan(&trip.ID, &trip.CreatedAt, &trip.UpdatedAt)
	return dberr.Wrap(err, "create_trip")
}

func (repository *PostgresRepository) Update(context context.Context, trip *Trip) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentTrip.Table, schema.ContentTrip.Name, schema.ContentTrip.Slug,
		schema.ContentTrip.Status, schema.ContentTrip.Summary, schema.ContentTrip.Images,
		schema.ContentTrip.UpdatedAt, schema.ContentTrip.ID, schema.ContentTrip.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		trip.ID, trip.Name, trip.Slug, trip.Status, trip.Summary, trip.Images,
	).Scan(&trip.UpdatedAt)
	return dberr.Wrap(err, "update_trip")
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.ContentTrip.Table, schema.ContentTrip.ID)

	cmd, err := repository.db.Admin.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_trip")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Days

func dayColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		schema.TripDay.ID, schema.TripDay.TripID, schema.TripDay.DayIndex,
		schema.TripDay.Title, schema.TripDay.Notes, schema.TripDay.DestinationID,
		schema.TripDay.AccommodationID, schema.TripDay.ItineraryID,
	)
}

func (repository *PostgresRepository) MaxDayIndex(context context.Context, tripID int64) (int, error) {
	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) FROM %s WHERE %s = $1",
		schema.TripDay.DayIndex, schema.TripDay.Table, schema.TripDay.TripID)

	var max int
	if err := repository.db.Admin.QueryRow(context, query, tripID).Scan(&max); err != nil {
		return 0, dberr.Wrap(err, "max_day_index")
	}
	return max, nil
}

func (repository *PostgresRepository) AddDay(context context.Context, day *Day) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`,
		schema.TripDay.Table, schema.TripDay.TripID, schema.TripDay.DayIndex,
		schema.TripDay.Title, schema.TripDay.Notes, schema.TripDay.DestinationID,
		schema.TripDay.AccommodationID, schema.TripDay.ItineraryID,
		schema.TripDay.ID,
	)

	err := repository.db.Admin.QueryRow(context, query,
		day.TripID, day.DayIndex, day.Title, day.Notes,
		day.DestinationID, day.AccommodationID, day.ItineraryID,
	).Scan(&day.ID)
	return dberr.Wrap(err, "add_trip_day")
}

func (repository *PostgresRepository) UpdateDay(context context.Context, day *Day) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.TripDay.Table, schema.TripDay.Title, schema.TripDay.Notes,
		schema.TripDay.DestinationID, schema.TripDay.AccommodationID, schema.TripDay.ItineraryID,
		schema.TripDay.ID, schema.TripDay.TripID, schema.TripDay.DayIndex,
	)

	err := repository.db.Admin.QueryRow(context, query,
		day.ID, day.TripID, day.Title, day.Notes,
		day.DestinationID, day.AccommodationID, day.ItineraryID,
	).Scan(&day.DayIndex)
	return dberr.Wrap(err, "update_trip_day")
}

// DeleteDay removes one day without renumbering the remainder; gaps in
// day_index are part of the data contract.
func (repository *PostgresRepository) DeleteDay(context context.Context, tripID, dayID int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.TripDay.Table, schema.TripDay.ID, schema.TripDay.TripID)

	cmd, err := repository.db.Admin.Exec(context, query, dayID, tripID)
	if err != nil {
		return dberr.Wrap(err, "delete_trip_day")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) loadDays(context context.Context, pool *pgxpool.Pool, trip *Trip) error {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`, dayColumns(), schema.TripDay.Table, schema.TripDay.TripID, schema.TripDay.DayIndex)

	rows, err := pool.Query(context, query, trip.ID)
	if err != nil {
		return dberr.Wrap(err, "load_trip_days")
	}
	defer rows.Close()

	for rows.Next() {
		var day Day
		err := rows.Scan(
			&day.ID, &day.TripID, &day.DayIndex, &day.Title, &day.Notes,
			&day.DestinationID, &day.AccommodationID, &day.ItineraryID,
		)
		if err != nil {
			return dberr.Wrap(err, "scan_trip_day")
		}
		trip.Days = append(trip.Days, day)
	}

	return nil
}
