package memory

import (
	"context"

	"creative-pulse/internal/core/domain"
)

// PerformanceRepository implements port.PerformanceRepository in memory.
// Every filter is a full scan.
type PerformanceRepository struct {
	rows *collection[domain.CreativePerformance]
}

// NewPerformanceRepository returns an empty repository.
func NewPerformanceRepository() *PerformanceRepository {
	return &PerformanceRepository{rows: newCollection[domain.CreativePerformance]()}
}

func (r *PerformanceRepository) List(_ context.Context) ([]domain.CreativePerformance, error) {
	return r.rows.filter(nil), nil
}

func (r *PerformanceRepository) Get(_ context.Context, id string) (*domain.CreativePerformance, error) {
	p, ok := r.rows.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PerformanceRepository) ListByCreative(_ context.Context, creativeID string) ([]domain.CreativePerformance, error) {
	return r.rows.filter(func(p domain.CreativePerformance) bool {
		return p.CreativeID == creativeID
	}), nil
}

func (r *PerformanceRepository) ListByDateRange(_ context.Context, dr domain.DateRange) ([]domain.CreativePerformance, error) {
	return r.rows.filter(func(p domain.CreativePerformance) bool {
		return dr.Contains(p.Date)
	}), nil
}

func (r *PerformanceRepository) ListByCreativeAndDateRange(_ context.Context, creativeID string, dr domain.DateRange) ([]domain.CreativePerformance, error) {
	return r.rows.filter(func(p domain.CreativePerformance) bool {
		return p.CreativeID == creativeID && dr.Contains(p.Date)
	}), nil
}

// Create stores p, replacing any row with the same id.
func (r *PerformanceRepository) Create(_ context.Context, p domain.CreativePerformance) error {
	r.rows.put(p.ID, p)
	return nil
}

func (r *PerformanceRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.rows.remove(id), nil
}

// Len reports the number of stored rows.
func (r *PerformanceRepository) Len() int {
	return r.rows.len()
}
