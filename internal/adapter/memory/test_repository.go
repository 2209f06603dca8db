package memory

import (
	"context"
	"slices"

	"creative-pulse/internal/core/domain"
)

// TestRepository implements port.TestRepository in memory.
type TestRepository struct {
	tests *collection[domain.ABTest]
}

// NewTestRepository returns an empty repository.
func NewTestRepository() *TestRepository {
	return &TestRepository{tests: newCollection[domain.ABTest]()}
}

func (r *TestRepository) List(_ context.Context, f domain.ABTestFilter) ([]domain.ABTest, error) {
	tests := r.tests.filter(func(t domain.ABTest) bool {
		if f.Status != "" && t.Status != f.Status {
			return false
		}
		if f.CreativeID != "" && !t.HasCreative(f.CreativeID) {
			return false
		}
		return true
	})
	for i := range tests {
		tests[i] = cloneTest(tests[i])
	}
	return tests, nil
}

func (r *TestRepository) Get(_ context.Context, id string) (*domain.ABTest, error) {
	t, ok := r.tests.get(id)
	if !ok {
		return nil, nil
	}
	t = cloneTest(t)
	return &t, nil
}

func (r *TestRepository) Create(_ context.Context, t domain.ABTest) (bool, error) {
	return r.tests.insert(t.ID, cloneTest(t)), nil
}

func (r *TestRepository) Update(_ context.Context, id string, p domain.ABTestPatch) (*domain.ABTest, error) {
	t, ok := r.tests.modify(id, p.Apply)
	if !ok {
		return nil, nil
	}
	t = cloneTest(t)
	return &t, nil
}

func (r *TestRepository) Replace(_ context.Context, t domain.ABTest) (bool, error) {
	stored := cloneTest(t)
	_, ok := r.tests.modify(t.ID, func(domain.ABTest) domain.ABTest { return stored })
	return ok, nil
}

func (r *TestRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.tests.remove(id), nil
}

func cloneTest(t domain.ABTest) domain.ABTest {
	t.CreativeIDs = slices.Clone(t.CreativeIDs)
	if t.EndDate != nil {
		end := *t.EndDate
		t.EndDate = &end
	}
	return t
}
