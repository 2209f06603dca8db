package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"creative-pulse/internal/core/domain"
	"creative-pulse/internal/core/port"
)

// DefaultListName is the list every fresh store starts with.
const DefaultListName = "Personal"

// TodoUseCase implements port.TodoUseCase.
type TodoUseCase struct {
	lists port.ListRepository
	todos port.TodoRepository
	log   *slog.Logger
}

// NewTodoUseCase wires the use case to its repositories.
func NewTodoUseCase(lists port.ListRepository, todos port.TodoRepository, log *slog.Logger) *TodoUseCase {
	return &TodoUseCase{lists: lists, todos: todos, log: log}
}

// EnsureDefaultList creates the default list when the store holds none. It
// reports whether a list was created.
func (u *TodoUseCase) EnsureDefaultList(ctx context.Context) (bool, error) {
	lists, err := u.lists.List(ctx)
	if err != nil {
		return false, err
	}
	if len(lists) > 0 {
		return false, nil
	}
	if _, err = u.CreateList(ctx, DefaultListName); err != nil {
		return false, err
	}
	return true, nil
}

func (u *TodoUseCase) ListLists(ctx context.Context) ([]domain.TodoList, error) {
	return u.lists.List(ctx)
}

func (u *TodoUseCase) GetList(ctx context.Context, id string) (*domain.TodoList, error) {
	l, err := u.lists.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("list %q: %w", id, port.ErrNotFound)
	}
	return l, nil
}

func (u *TodoUseCase) CreateList(ctx context.Context, name string) (*domain.TodoList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}
	l, err := u.lists.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "list created", slog.String("list_id", l.ID), slog.String("name", l.Name))
	return l, nil
}

func (u *TodoUseCase) RenameList(ctx context.Context, id, name string) (*domain.TodoList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name must not be blank")
	}
	l, err := u.lists.Rename(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("list %q: %w", id, port.ErrNotFound)
	}
	return l, nil
}

// DeleteList removes the list, then its todos. A failure between the two
// steps leaves orphaned todos on the in-memory backend; the postgres
// schema cascades on its own.
func (u *TodoUseCase) DeleteList(ctx context.Context, id string) error {
	ok, err := u.lists.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("list %q: %w", id, port.ErrNotFound)
	}
	n, err := u.todos.DeleteByList(ctx, id)
	if err != nil {
		return fmt.Errorf("delete todos of list %q: %w", id, err)
	}
	u.log.InfoContext(ctx, "list deleted", slog.String("list_id", id), slog.Int("todos_removed", n))
	return nil
}

// ListTodos returns the todos of an existing list, newest first.
func (u *TodoUseCase) ListTodos(ctx context.Context, listID string) ([]domain.Todo, error) {
	if _, err := u.GetList(ctx, listID); err != nil {
		return nil, err
	}
	return u.todos.ListByList(ctx, listID)
}

func (u *TodoUseCase) GetTodo(ctx context.Context, id string) (*domain.Todo, error) {
	t, err := u.todos.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("todo %q: %w", id, port.ErrNotFound)
	}
	return t, nil
}

// CreateTodo adds an open todo to an existing list. A missing list is
// reported before blank text.
func (u *TodoUseCase) CreateTodo(ctx context.Context, listID, text string) (*domain.Todo, error) {
	if _, err := u.GetList(ctx, listID); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("todo text is required")
	}
	t, err := u.todos.Create(ctx, listID, text)
	if err != nil {
		return nil, err
	}
	u.log.DebugContext(ctx, "todo created", slog.String("todo_id", t.ID), slog.String("list_id", listID))
	return t, nil
}

func (u *TodoUseCase) UpdateTodo(ctx context.Context, id string, p domain.TodoPatch) (*domain.Todo, error) {
	if p.Text != nil {
		text := strings.TrimSpace(*p.Text)
		if text == "" {
			return nil, invalid("text must not be blank")
		}
		p.Text = &text
	}
	t, err := u.todos.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("todo %q: %w", id, port.ErrNotFound)
	}
	return t, nil
}

func (u *TodoUseCase) DeleteTodo(ctx context.Context, id string) error {
	ok, err := u.todos.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("todo %q: %w", id, port.ErrNotFound)
	}
	return nil
}
