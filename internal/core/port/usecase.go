package port

import (
	"context"

	"creative-pulse/internal/core/domain"
)

// DashboardUseCase is the primary port for the creative analytics side of
// the service: creatives, their performance, platform roll-ups and A/B
// tests.
type DashboardUseCase interface {
	ListCreatives(ctx context.Context, f domain.CreativeFilter) ([]domain.Creative, error)
	GetCreative(ctx context.Context, id string) (*domain.Creative, error)
	CreateCreative(ctx context.Context, c domain.Creative) (*domain.Creative, error)
	UpdateCreative(ctx context.Context, id string, p domain.CreativePatch) (*domain.Creative, error)
	DeleteCreative(ctx context.Context, id string) error

	// CreativePerformance returns derived metrics for each row of the
	// creative inside the window. ErrNotFound if the creative is unknown.
	CreativePerformance(ctx context.Context, id string, r domain.DateRange) ([]domain.PerformanceMetrics, error)
	// CreativeAggregate collapses every row of the creative into one
	// record. ErrNotFound if the creative or its rows are missing.
	CreativeAggregate(ctx context.Context, id string) (*domain.PerformanceMetrics, error)
	Summary(ctx context.Context, r domain.DateRange) (domain.DashboardSummary, error)
	Platforms(ctx context.Context, r domain.DateRange) ([]domain.PlatformPerformance, error)

	ListTests(ctx context.Context, f domain.ABTestFilter) ([]domain.ABTest, error)
	GetTest(ctx context.Context, id string) (*domain.ABTest, error)
	CreateTest(ctx context.Context, t domain.ABTest) (*domain.ABTest, error)
	UpdateTest(ctx context.Context, id string, p domain.ABTestPatch) (*domain.ABTest, error)
	// CompleteTest moves a running test to completed with the given
	// winner. ErrConflict if it was already completed, ErrInvalidInput if
	// the winner does not take part in the test.
	CompleteTest(ctx context.Context, id, winner string) (*domain.ABTest, error)
	DeleteTest(ctx context.Context, id string) error
}

// TodoUseCase is the primary port for lists and todos.
type TodoUseCase interface {
	ListLists(ctx context.Context) ([]domain.TodoList, error)
	GetList(ctx context.Context, id string) (*domain.TodoList, error)
	CreateList(ctx context.Context, name string) (*domain.TodoList, error)
	RenameList(ctx context.Context, id, name string) (*domain.TodoList, error)
	// DeleteList removes the list and then all of its todos. The two steps
	// are not atomic on the in-memory backend.
	DeleteList(ctx context.Context, id string) error

	ListTodos(ctx context.Context, listID string) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id string) (*domain.Todo, error)
	CreateTodo(ctx context.Context, listID, text string) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, id string, p domain.TodoPatch) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}

// SheetUseCase reads the configured spreadsheet as keyed rows.
type SheetUseCase interface {
	// Rows reads readRange (or the configured default when empty) and
	// keys each row after the header row.
	Rows(ctx context.Context, readRange string) ([]map[string]string, error)
}
