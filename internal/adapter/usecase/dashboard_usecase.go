package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"creative-pulse/internal/core/domain"
	"creative-pulse/internal/core/kpi"
	"creative-pulse/internal/core/port"
)

// DashboardUseCase implements port.DashboardUseCase. It validates input,
// resolves references between creatives, rows and tests, and hands the
// arithmetic to the kpi package.
type DashboardUseCase struct {
	creatives   port.CreativeRepository
	performance port.PerformanceRepository
	tests       port.TestRepository
	log         *slog.Logger
	now         func() time.Time
}

// NewDashboardUseCase wires the use case to its repositories.
func NewDashboardUseCase(
	creatives port.CreativeRepository,
	performance port.PerformanceRepository,
	tests port.TestRepository,
	log *slog.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		creatives:   creatives,
		performance: performance,
		tests:       tests,
		log:         log,
		now:         time.Now,
	}
}

func (u *DashboardUseCase) ListCreatives(ctx context.Context, f domain.CreativeFilter) ([]domain.Creative, error) {
	return u.creatives.List(ctx, f)
}

func (u *DashboardUseCase) GetCreative(ctx context.Context, id string) (*domain.Creative, error) {
	c, err := u.creatives.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("creative %q: %w", id, port.ErrNotFound)
	}
	return c, nil
}

// CreateCreative stores c after filling the status and creation date
// defaults.
func (u *DashboardUseCase) CreateCreative(ctx context.Context, c domain.Creative) (*domain.Creative, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	switch {
	case c.ID == "":
		return nil, invalid("id is required")
	case c.Name == "":
		return nil, invalid("name is required")
	case c.Type == "":
		return nil, invalid("type is required")
	case c.Platform == "":
		return nil, invalid("platform is required")
	}
	if c.Status == "" {
		c.Status = domain.StatusActive
	}
	if err := validateCreative(c); err != nil {
		return nil, err
	}
	if c.CreatedDate.IsZero() {
		c.CreatedDate = u.now().UTC()
	}

	ok, err := u.creatives.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("creative %q already exists: %w", c.ID, port.ErrConflict)
	}
	return &c, nil
}

func (u *DashboardUseCase) UpdateCreative(ctx context.Context, id string, p domain.CreativePatch) (*domain.Creative, error) {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, invalid("name must not be blank")
	}
	if p.Type != nil && !p.Type.Valid() {
		return nil, invalid("unknown type %q", *p.Type)
	}
	if p.Platform != nil && !p.Platform.Valid() {
		return nil, invalid("unknown platform %q", *p.Platform)
	}
	if p.Status != nil && !p.Status.Valid() {
		return nil, invalid("unknown status %q", *p.Status)
	}
	c, err := u.creatives.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("creative %q: %w", id, port.ErrNotFound)
	}
	return c, nil
}

// DeleteCreative removes the creative only. Its performance rows and the
// tests that reference it are left in place.
func (u *DashboardUseCase) DeleteCreative(ctx context.Context, id string) error {
	ok, err := u.creatives.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("creative %q: %w", id, port.ErrNotFound)
	}
	u.log.DebugContext(ctx, "creative deleted", slog.String("creative_id", id))
	return nil
}

// CreativePerformance returns the creative's rows inside r with derived
// ratios, in store order.
func (u *DashboardUseCase) CreativePerformance(ctx context.Context, id string, r domain.DateRange) ([]domain.PerformanceMetrics, error) {
	if _, err := u.GetCreative(ctx, id); err != nil {
		return nil, err
	}
	rows, err := u.performance.ListByCreativeAndDateRange(ctx, id, r)
	if err != nil {
		return nil, err
	}
	return kpi.DeriveAll(rows), nil
}

func (u *DashboardUseCase) CreativeAggregate(ctx context.Context, id string) (*domain.PerformanceMetrics, error) {
	if _, err := u.GetCreative(ctx, id); err != nil {
		return nil, err
	}
	rows, err := u.performance.ListByCreative(ctx, id)
	if err != nil {
		return nil, err
	}
	agg, ok := kpi.AggregateByCreative(id, rows, u.now().UTC())
	if !ok {
		return nil, fmt.Errorf("performance of creative %q: %w", id, port.ErrNotFound)
	}
	return &agg, nil
}

func (u *DashboardUseCase) Summary(ctx context.Context, r domain.DateRange) (domain.DashboardSummary, error) {
	rows, err := u.performance.ListByDateRange(ctx, r)
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	return kpi.Summarize(rows), nil
}

// Platforms aggregates the window per platform. Rows of deleted creatives
// have no platform and are left out.
func (u *DashboardUseCase) Platforms(ctx context.Context, r domain.DateRange) ([]domain.PlatformPerformance, error) {
	rows, err := u.performance.ListByDateRange(ctx, r)
	if err != nil {
		return nil, err
	}
	creatives, err := u.creatives.List(ctx, domain.CreativeFilter{})
	if err != nil {
		return nil, err
	}
	platformOf := make(map[string]domain.Platform, len(creatives))
	for _, c := range creatives {
		platformOf[c.ID] = c.Platform
	}
	return kpi.ByPlatform(rows, platformOf), nil
}

func (u *DashboardUseCase) ListTests(ctx context.Context, f domain.ABTestFilter) ([]domain.ABTest, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid("unknown status %q", f.Status)
	}
	return u.tests.List(ctx, f)
}

func (u *DashboardUseCase) GetTest(ctx context.Context, id string) (*domain.ABTest, error) {
	t, err := u.tests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("test %q: %w", id, port.ErrNotFound)
	}
	return t, nil
}

// CreateTest stores t. A new test runs unless told otherwise and starts now
// when no start date is given.
func (u *DashboardUseCase) CreateTest(ctx context.Context, t domain.ABTest) (*domain.ABTest, error) {
	t.ID = strings.TrimSpace(t.ID)
	t.Name = strings.TrimSpace(t.Name)
	switch {
	case t.ID == "":
		return nil, invalid("id is required")
	case t.Name == "":
		return nil, invalid("name is required")
	case len(t.CreativeIDs) < 2:
		return nil, invalid("at least 2 creative ids are required")
	}
	if t.Status == "" {
		t.Status = domain.TestRunning
	}
	if !t.Status.Valid() {
		return nil, invalid("unknown status %q", t.Status)
	}
	if t.StartDate.IsZero() {
		t.StartDate = u.now().UTC()
	}
	t.CreativeIDs = slices.Clone(t.CreativeIDs)

	ok, err := u.tests.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("test %q already exists: %w", t.ID, port.ErrConflict)
	}
	return &t, nil
}

func (u *DashboardUseCase) UpdateTest(ctx context.Context, id string, p domain.ABTestPatch) (*domain.ABTest, error) {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, invalid("name must not be blank")
	}
	if p.Status != nil && !p.Status.Valid() {
		return nil, invalid("unknown status %q", *p.Status)
	}
	if p.CreativeIDs != nil && len(*p.CreativeIDs) < 2 {
		return nil, invalid("at least 2 creative ids are required")
	}

	cur, err := u.GetTest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = checkLifecycle(*cur, p); err != nil {
		return nil, err
	}
	if next := p.Apply(*cur); next.Winner != "" && !next.HasCreative(next.Winner) {
		return nil, invalid("winner %q does not take part in test %q", next.Winner, id)
	}

	t, err := u.tests.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("test %q: %w", id, port.ErrNotFound)
	}
	return t, nil
}

// checkLifecycle rejects patches that move a test between states. Only
// CompleteTest finishes a test, and a completed test keeps its status,
// winner and end date.
func checkLifecycle(cur domain.ABTest, p domain.ABTestPatch) error {
	if cur.Status == domain.TestCompleted {
		if (p.Status != nil && *p.Status != cur.Status) ||
			(p.Winner != nil && *p.Winner != cur.Winner) ||
			(p.EndDate != nil && (cur.EndDate == nil || !p.EndDate.Equal(*cur.EndDate))) {
			return fmt.Errorf("test %q is already completed: %w", cur.ID, port.ErrConflict)
		}
		return nil
	}
	if p.Status != nil && *p.Status != cur.Status {
		return invalid("use POST /api/tests/%s/complete to finish a test", cur.ID)
	}
	if p.Winner != nil || p.EndDate != nil {
		return invalid("winner and end date are set when the test completes")
	}
	return nil
}

func (u *DashboardUseCase) CompleteTest(ctx context.Context, id, winner string) (*domain.ABTest, error) {
	t, err := u.GetTest(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status == domain.TestCompleted {
		return nil, fmt.Errorf("test %q is already completed: %w", id, port.ErrConflict)
	}
	if !t.HasCreative(winner) {
		return nil, invalid("winner %q does not take part in test %q", winner, id)
	}

	done := t.Complete(winner, u.now().UTC())
	ok, err := u.tests.Replace(ctx, done)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("test %q: %w", id, port.ErrNotFound)
	}
	u.log.InfoContext(ctx, "test completed",
		slog.String("test_id", id),
		slog.String("winner", winner),
		slog.Float64("confidence", done.Confidence),
	)
	return &done, nil
}

func (u *DashboardUseCase) DeleteTest(ctx context.Context, id string) error {
	ok, err := u.tests.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("test %q: %w", id, port.ErrNotFound)
	}
	return nil
}

func validateCreative(c domain.Creative) error {
	if !c.Type.Valid() {
		return invalid("unknown type %q", c.Type)
	}
	if !c.Platform.Valid() {
		return invalid("unknown platform %q", c.Platform)
	}
	if !c.Status.Valid() {
		return invalid("unknown status %q", c.Status)
	}
	return nil
}

// invalid wraps port.ErrInvalidInput with a message meant for the caller.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), port.ErrInvalidInput)
}
