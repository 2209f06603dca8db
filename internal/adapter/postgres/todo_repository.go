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

// TodoRepository implements port.TodoRepository using pgxpool for PostgreSQL.
type TodoRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewTodoRepository returns a new repository instance.
func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool, now: time.Now}
}

const todoColumns = `id::text, list_id::text, text, completed, created_at`

func scanTodo(row pgx.Row) (*domain.Todo, error) {
	var t domain.Todo
	err := row.Scan(&t.ID, &t.ListID, &t.Text, &t.Completed, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return &t, nil
}

func collectTodos(rows pgx.Rows) ([]domain.Todo, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Todo, error) {
		t, err := scanTodo(row)
		if err != nil {
			return domain.Todo{}, err
		}
		return *t, nil
	})
}

// List returns every todo, newest first.
func (r *TodoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+todoColumns+` FROM todos ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	return collectTodos(rows)
}

// ListByList returns the todos of one list, newest first.
func (r *TodoRepository) ListByList(ctx context.Context, listID string) ([]domain.Todo, error) {
	key, ok := parseID(listID)
	if !ok {
		return []domain.Todo{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+todoColumns+` FROM todos WHERE list_id = $1 ORDER BY created_at DESC, id`, key)
	if err != nil {
		return nil, err
	}
	return collectTodos(rows)
}

func (r *TodoRepository) Get(ctx context.Context, id string) (*domain.Todo, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	return scanTodo(r.pool.QueryRow(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = $1`, key))
}

// Create inserts an open todo. The list must exist; the caller checks that.
func (r *TodoRepository) Create(ctx context.Context, listID, text string) (*domain.Todo, error) {
	key, ok := parseID(listID)
	if !ok {
		return nil, errors.New("list id is not a uuid")
	}
	return scanTodo(r.pool.QueryRow(ctx,
		`INSERT INTO todos (id, list_id, text, completed, created_at) VALUES ($1, $2, $3, false, $4) RETURNING `+todoColumns,
		uuid.NewString(), key, text, r.now().UTC()))
}

// Update writes the set fields of p. Unset fields keep their stored value.
func (r *TodoRepository) Update(ctx context.Context, id string, p domain.TodoPatch) (*domain.Todo, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	return scanTodo(r.pool.QueryRow(ctx,
		`UPDATE todos SET text = COALESCE($2, text), completed = COALESCE($3, completed) WHERE id = $1 RETURNING `+todoColumns,
		key, p.Text, p.Completed))
}

func (r *TodoRepository) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := parseID(id)
	if !ok {
		return false, nil
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, key)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TodoRepository) DeleteByList(ctx context.Context, listID string) (int, error) {
	key, ok := parseID(listID)
	if !ok {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE list_id = $1`, key)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
