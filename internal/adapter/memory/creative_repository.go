package memory

import (
	"context"
	"strings"

	"creative-pulse/internal/core/domain"
)

// CreativeRepository implements port.CreativeRepository in memory.
type CreativeRepository struct {
	creatives *collection[domain.Creative]
}

// NewCreativeRepository returns an empty repository.
func NewCreativeRepository() *CreativeRepository {
	return &CreativeRepository{creatives: newCollection[domain.Creative]()}
}

// List returns creatives matching every set field of f, in insertion order.
func (r *CreativeRepository) List(_ context.Context, f domain.CreativeFilter) ([]domain.Creative, error) {
	if f.Empty() {
		return cloneCreatives(r.creatives.filter(nil)), nil
	}
	search := strings.ToLower(f.Search)
	return cloneCreatives(r.creatives.filter(func(c domain.Creative) bool {
		if f.Status != "" && c.Status != f.Status {
			return false
		}
		if f.Platform != "" && c.Platform != f.Platform {
			return false
		}
		if f.Type != "" && c.Type != f.Type {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Elements.Hook), search) &&
			!strings.Contains(strings.ToLower(c.Elements.Theme), search) {
			return false
		}
		return true
	})), nil
}

// Get returns the creative or nil if absent.
func (r *CreativeRepository) Get(_ context.Context, id string) (*domain.Creative, error) {
	c, ok := r.creatives.get(id)
	if !ok {
		return nil, nil
	}
	c = cloneCreative(c)
	return &c, nil
}

// Create inserts c; false if the id already exists.
func (r *CreativeRepository) Create(_ context.Context, c domain.Creative) (bool, error) {
	return r.creatives.insert(c.ID, cloneCreative(c)), nil
}

// Update merges p over the stored creative; nil if absent.
func (r *CreativeRepository) Update(_ context.Context, id string, p domain.CreativePatch) (*domain.Creative, error) {
	c, ok := r.creatives.modify(id, p.Apply)
	if !ok {
		return nil, nil
	}
	c = cloneCreative(c)
	return &c, nil
}

// Delete removes the creative. Performance rows that reference it are left
// in place.
func (r *CreativeRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.creatives.remove(id), nil
}

func cloneCreative(c domain.Creative) domain.Creative {
	if c.Duration != nil {
		d := *c.Duration
		c.Duration = &d
	}
	return c
}

func cloneCreatives(cs []domain.Creative) []domain.Creative {
	for i := range cs {
		cs[i] = cloneCreative(cs[i])
	}
	return cs
}
