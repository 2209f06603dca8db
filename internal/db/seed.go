package db

import (
	"context"
	"fmt"

	"creative-pulse/internal/core/port"
)

// Dataset is the generated demo data.
type Dataset struct {
	Creatives   int
	Performance int
	Tests       int
}

// Seed fills the creative, performance and test repositories from g. It
// generates creatives first, then days of performance per creative, then
// the A/B tests, so the draw order and therefore the data are fixed for a
// given seed and clock.
func Seed(ctx context.Context, g *Generator, creativeCount, days int,
	creatives port.CreativeRepository,
	performance port.PerformanceRepository,
	tests port.TestRepository,
) (Dataset, error) {
	var ds Dataset

	generated := g.Creatives(creativeCount)
	for _, c := range generated {
		ok, err := creatives.Create(ctx, c)
		if err != nil {
			return ds, fmt.Errorf("seed creative %s: %w", c.ID, err)
		}
		if ok {
			ds.Creatives++
		}
	}

	for _, c := range generated {
		for _, p := range g.Performance(c, days) {
			if err := performance.Create(ctx, p); err != nil {
				return ds, fmt.Errorf("seed performance %s: %w", p.ID, err)
			}
			ds.Performance++
		}
	}

	for _, t := range g.ABTests(generated) {
		ok, err := tests.Create(ctx, t)
		if err != nil {
			return ds, fmt.Errorf("seed test %s: %w", t.ID, err)
		}
		if ok {
			ds.Tests++
		}
	}
	return ds, nil
}
