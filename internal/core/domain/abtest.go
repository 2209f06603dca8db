package domain

import (
	"math"
	"slices"
	"time"
)

type TestStatus string

const (
	TestRunning   TestStatus = "running"
	TestCompleted TestStatus = "completed"
)

func (s TestStatus) Valid() bool { return s == TestRunning || s == TestCompleted }

// MinCompletedConfidence is the floor applied to confidence on completion.
const MinCompletedConfidence = 95.0

// ABTest compares two or more creatives. EndDate and Winner are only set
// once the test is completed. Confidence is a synthetic percentage.
type ABTest struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      TestStatus `json:"status"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreativeIDs []string   `json:"creativeIds"`
	Winner      string     `json:"winner,omitempty"`
	Confidence  float64    `json:"confidence"`
}

// HasCreative reports whether id takes part in the test.
func (t ABTest) HasCreative(id string) bool {
	return slices.Contains(t.CreativeIDs, id)
}

// Complete returns t moved to the completed state with the given winner.
// Confidence is raised to at least MinCompletedConfidence.
func (t ABTest) Complete(winner string, at time.Time) ABTest {
	t.Status = TestCompleted
	t.EndDate = &at
	t.Winner = winner
	t.Confidence = math.Max(t.Confidence, MinCompletedConfidence)
	return t
}

// ABTestFilter narrows a test listing; zero fields do not filter.
type ABTestFilter struct {
	Status     TestStatus
	CreativeID string
}

// ABTestPatch is a shallow partial update of a test.
type ABTestPatch struct {
	Name        *string     `json:"name"`
	Status      *TestStatus `json:"status"`
	StartDate   *time.Time  `json:"startDate"`
	EndDate     *time.Time  `json:"endDate"`
	CreativeIDs *[]string   `json:"creativeIds"`
	Winner      *string     `json:"winner"`
	Confidence  *float64    `json:"confidence"`
}

// Apply returns t with every set field of p copied over.
func (p ABTestPatch) Apply(t ABTest) ABTest {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		end := *p.EndDate
		t.EndDate = &end
	}
	if p.CreativeIDs != nil {
		t.CreativeIDs = slices.Clone(*p.CreativeIDs)
	}
	if p.Winner != nil {
		t.Winner = *p.Winner
	}
	if p.Confidence != nil {
		t.Confidence = *p.Confidence
	}
	return t
}
