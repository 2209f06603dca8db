package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creative-pulse/internal/core/domain"
)

// ListRepository implements port.ListRepository using pgxpool for PostgreSQL.
type ListRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewListRepository returns a new repository instance.
func NewListRepository(pool *pgxpool.Pool) *ListRepository {
	return &ListRepository{pool: pool, now: time.Now}
}

const listColumns = `id::text, name, created_at, updated_at`

func scanList(row pgx.Row) (*domain.TodoList, error) {
	var l domain.TodoList
	err := row.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return &l, nil
}

// List returns every list, newest first.
func (r *ListRepository) List(ctx context.Context) ([]domain.TodoList, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+listColumns+` FROM todo_lists ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TodoList, error) {
		l, err := scanList(row)
		if err != nil {
			return domain.TodoList{}, err
		}
		return *l, nil
	})
}

// Get returns a list by id. Ids that are not UUIDs cannot exist and yield
// nil without a round trip.
func (r *ListRepository) Get(ctx context.Context, id string) (*domain.TodoList, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	return scanList(r.pool.QueryRow(ctx, `SELECT `+listColumns+` FROM todo_lists WHERE id = $1`, key))
}

func (r *ListRepository) Create(ctx context.Context, name string) (*domain.TodoList, error) {
	now := r.now().UTC()
	return scanList(r.pool.QueryRow(ctx,
		`INSERT INTO todo_lists (id, name, created_at, updated_at) VALUES ($1, $2, $3, $3) RETURNING `+listColumns,
		uuid.NewString(), name, now))
}

// Rename sets the name and bumps updated_at.
func (r *ListRepository) Rename(ctx context.Context, id, name string) (*domain.TodoList, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	return scanList(r.pool.QueryRow(ctx,
		`UPDATE todo_lists SET name = $2, updated_at = $3 WHERE id = $1 RETURNING `+listColumns,
		key, name, r.now().UTC()))
}

// Delete removes the list. Its todos go with it through the foreign key.
func (r *ListRepository) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := parseID(id)
	if !ok {
		return false, nil
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM todo_lists WHERE id = $1`, key)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// parseID normalizes a UUID string for use as a query argument.
func parseID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}
