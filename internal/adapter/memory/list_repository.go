package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"creative-pulse/internal/core/domain"
)

// ListRepository implements port.ListRepository in memory.
type ListRepository struct {
	lists *collection[domain.TodoList]
	now   func() time.Time
}

// NewListRepository returns an empty repository.
func NewListRepository() *ListRepository {
	return &ListRepository{lists: newCollection[domain.TodoList](), now: time.Now}
}

// List returns every list, newest first.
func (r *ListRepository) List(_ context.Context) ([]domain.TodoList, error) {
	lists := r.lists.filter(nil)
	newestFirst(lists, func(l domain.TodoList) time.Time { return l.CreatedAt })
	return lists, nil
}

func (r *ListRepository) Get(_ context.Context, id string) (*domain.TodoList, error) {
	l, ok := r.lists.get(id)
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// Create stores a new list under a fresh UUID.
func (r *ListRepository) Create(_ context.Context, name string) (*domain.TodoList, error) {
	now := r.now().UTC()
	l := domain.TodoList{ID: uuid.NewString(), Name: name, CreatedAt: now, UpdatedAt: now}
	for !r.lists.insert(l.ID, l) {
		l.ID = uuid.NewString()
	}
	return &l, nil
}

// Rename sets the name and bumps UpdatedAt.
func (r *ListRepository) Rename(_ context.Context, id, name string) (*domain.TodoList, error) {
	now := r.now().UTC()
	l, ok := r.lists.modify(id, func(l domain.TodoList) domain.TodoList {
		l.Name = name
		l.UpdatedAt = now
		return l
	})
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *ListRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.lists.remove(id), nil
}

// newestFirst orders items from an insertion-ordered slice by descending
// timestamp; equal timestamps put the later insertion first.
func newestFirst[T any](items []T, at func(T) time.Time) {
	slices.Reverse(items)
	slices.SortStableFunc(items, func(a, b T) int {
		return at(b).Compare(at(a))
	})
}
