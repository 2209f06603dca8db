package port

import (
	"context"

	"creative-pulse/internal/core/domain"
)

// The repositories below are outbound ports. Lookups signal absence with a
// nil result and a nil error; errors are reserved for infrastructure
// failures. Updates replace the stored value; the last writer wins.

// CreativeRepository stores creatives keyed by their caller-supplied id.
type CreativeRepository interface {
	List(ctx context.Context, f domain.CreativeFilter) ([]domain.Creative, error)
	Get(ctx context.Context, id string) (*domain.Creative, error)
	// Create inserts c. It returns false if the id is already taken.
	Create(ctx context.Context, c domain.Creative) (bool, error)
	Update(ctx context.Context, id string, p domain.CreativePatch) (*domain.Creative, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PerformanceRepository stores daily performance rows.
type PerformanceRepository interface {
	List(ctx context.Context) ([]domain.CreativePerformance, error)
	Get(ctx context.Context, id string) (*domain.CreativePerformance, error)
	ListByCreative(ctx context.Context, creativeID string) ([]domain.CreativePerformance, error)
	// ListByDateRange returns rows whose day lies within r, ends included.
	ListByDateRange(ctx context.Context, r domain.DateRange) ([]domain.CreativePerformance, error)
	ListByCreativeAndDateRange(ctx context.Context, creativeID string, r domain.DateRange) ([]domain.CreativePerformance, error)
	Create(ctx context.Context, p domain.CreativePerformance) error
	Delete(ctx context.Context, id string) (bool, error)
}

// TestRepository stores A/B tests keyed by their caller-supplied id.
type TestRepository interface {
	List(ctx context.Context, f domain.ABTestFilter) ([]domain.ABTest, error)
	Get(ctx context.Context, id string) (*domain.ABTest, error)
	Create(ctx context.Context, t domain.ABTest) (bool, error)
	Update(ctx context.Context, id string, p domain.ABTestPatch) (*domain.ABTest, error)
	// Replace stores t over an existing test with the same id. It returns
	// false if the test does not exist.
	Replace(ctx context.Context, t domain.ABTest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ListRepository stores todo lists. Ids are generated by the repository.
// List returns newest first.
type ListRepository interface {
	List(ctx context.Context) ([]domain.TodoList, error)
	Get(ctx context.Context, id string) (*domain.TodoList, error)
	Create(ctx context.Context, name string) (*domain.TodoList, error)
	Rename(ctx context.Context, id, name string) (*domain.TodoList, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// TodoRepository stores todos. Ids are generated by the repository.
// Listings return newest first.
type TodoRepository interface {
	List(ctx context.Context) ([]domain.Todo, error)
	ListByList(ctx context.Context, listID string) ([]domain.Todo, error)
	Get(ctx context.Context, id string) (*domain.Todo, error)
	Create(ctx context.Context, listID, text string) (*domain.Todo, error)
	Update(ctx context.Context, id string, p domain.TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, id string) (bool, error)
	// DeleteByList removes every todo of the list and returns how many
	// were removed.
	DeleteByList(ctx context.Context, listID string) (int, error)
}

// SheetReader reads a rectangular range of cells as strings.
type SheetReader interface {
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}
