package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"creative-pulse/internal/core/domain"
)

// TodoRepository implements port.TodoRepository in memory.
type TodoRepository struct {
	todos *collection[domain.Todo]
	now   func() time.Time
}

// NewTodoRepository returns an empty repository.
func NewTodoRepository() *TodoRepository {
	return &TodoRepository{todos: newCollection[domain.Todo](), now: time.Now}
}

// List returns every todo, newest first.
func (r *TodoRepository) List(_ context.Context) ([]domain.Todo, error) {
	todos := r.todos.filter(nil)
	newestFirst(todos, func(t domain.Todo) time.Time { return t.CreatedAt })
	return todos, nil
}

// ListByList returns the todos of one list, newest first.
func (r *TodoRepository) ListByList(_ context.Context, listID string) ([]domain.Todo, error) {
	todos := r.todos.filter(func(t domain.Todo) bool { return t.ListID == listID })
	newestFirst(todos, func(t domain.Todo) time.Time { return t.CreatedAt })
	return todos, nil
}

func (r *TodoRepository) Get(_ context.Context, id string) (*domain.Todo, error) {
	t, ok := r.todos.get(id)
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// Create stores a new, incomplete todo under a fresh UUID.
func (r *TodoRepository) Create(_ context.Context, listID, text string) (*domain.Todo, error) {
	t := domain.Todo{
		ID:        uuid.NewString(),
		ListID:    listID,
		Text:      text,
		CreatedAt: r.now().UTC(),
	}
	for !r.todos.insert(t.ID, t) {
		t.ID = uuid.NewString()
	}
	return &t, nil
}

func (r *TodoRepository) Update(_ context.Context, id string, p domain.TodoPatch) (*domain.Todo, error) {
	t, ok := r.todos.modify(id, p.Apply)
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TodoRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.todos.remove(id), nil
}

func (r *TodoRepository) DeleteByList(_ context.Context, listID string) (int, error) {
	return r.todos.removeWhere(func(t domain.Todo) bool { return t.ListID == listID }), nil
}
