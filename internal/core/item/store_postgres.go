package item

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/periplus-travel/periplus/internal/platform/constants"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/postgres"
)

// PostgresRepository serves one content kind; the kind's table binding is
// fixed at construction.
type PostgresRepository struct {
	db   postgres.Handles
	kind Kind
}

func NewPostgresRepository(db postgres.Handles, kind Kind) *PostgresRepository {
	return &PostgresRepository{db: db, kind: kind}
}

func (repository *PostgresRepository) columns() string {
	table := repository.kind.Table
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		table.ID, table.DestinationID, table.Name, table.Slug, table.Status,
		table.Summary, table.Images, table.Category, table.CreatedAt, table.UpdatedAt,
	)
}

func scanItem(row pgx.Row) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID, &item.DestinationID, &item.Name, &item.Slug, &item.Status,
		&item.Summary, &item.Images, &item.Category, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (repository *PostgresRepository) action(verb string) string {
	return verb + "_" + repository.kind.Table.Table
}

// # Public Reads

func (repository *PostgresRepository) ListPublished(context context.Context, filter Filter, limit, offset int) ([]*Item, int, error) {
	table := repository.kind.Table

	baseWhere := fmt.Sprintf("WHERE %s = $1", table.Status)
	args := []any{constants.StatusPublished}

	if filter.DestinationID > 0 {
		baseWhere += fmt.Sprintf(" AND %s = $%d", table.DestinationID, len(args)+1)
		args = append(args, filter.DestinationID)
	}
	if filter.Query != "" {
		baseWhere += fmt.Sprintf(" AND %s ILIKE $%d", table.Name, len(args)+1)
		args = append(args, "%"+filter.Query+"%")
	}

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s %s", table.Table, baseWhere)

	var total int
	if err := repository.db.Public.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, repository.action("count"))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		ORDER BY %s ASC
		LIMIT $%s OFFSET $%s
	`, repository.columns(), table.Table, baseWhere, table.Name,
		strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Public.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, repository.action("list"))
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, repository.action("scan"))
		}
		items = append(items, item)
	}

	return items, total, nil
}

func (repository *PostgresRepository) GetPublishedBySlug(context context.Context, slug string) (*Item, error) {
	table := repository.kind.Table

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		LIMIT 1
	`, repository.columns(), table.Table, table.Slug, table.Status)

	item, err := scanItem(repository.db.Public.QueryRow(context, query, slug, constants.StatusPublished))
	return item, dberr.Wrap(err, repository.action("get_by_slug"))
}

// # Admin

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Item, error) {
	table := repository.kind.Table

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, repository.columns(), table.Table, table.ID)

	item, err := scanItem(repository.db.Admin.QueryRow(context, query, id))
	return item, dberr.Wrap(err, repository.action("get"))
}

func (repository *PostgresRepository) Create(context context.Context, item *Item) error {
	table := repository.kind.Table

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		table.Table, table.DestinationID, table.Name, table.Slug, table.Status,
		table.Summary, table.Images, table.Category, table.CreatedAt, table.UpdatedAt,
		table.ID, table.CreatedAt, table.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		item.DestinationID, item.Name, item.Slug, item.Status,
		item.Summary, item.Images, item.Category,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	return dberr.Wrap(err, repository.action("create"))
}

func (repository *PostgresRepository) Update(context context.Context, item *Item) error {
	table := repository.kind.Table

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		table.Table, table.DestinationID, table.Name, table.Slug, table.Status,
		table.Summary, table.Images, table.Category, table.UpdatedAt,
		table.ID, table.UpdatedAt,
	)

	err := repository.db.Admin.QueryRow(context, query,
		item.ID, item.DestinationID, item.Name, item.Slug, item.Status,
		item.Summary, item.Images, item.Category,
	).Scan(&item.UpdatedAt)
	return dberr.Wrap(err, repository.action("update"))
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	table := repository.kind.Table

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Table, table.ID)

	cmd, err := repository.db.Admin.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, repository.action("delete"))
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
