package domain

import "time"

// CreativePerformance holds one day of raw counters for one creative.
// Retention values are percentages in [0,100].
type CreativePerformance struct {
	ID          string    `json:"id"`
	CreativeID  string    `json:"creativeId"`
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Installs    int64     `json:"installs"`
	Spend       float64   `json:"spend"`
	Revenue     float64   `json:"revenue"`
	D1Retention float64   `json:"d1Retention"`
	D7Retention float64   `json:"d7Retention"`
}

// PerformanceMetrics is a performance row plus ratios derived on read.
type PerformanceMetrics struct {
	CreativePerformance
	CTR  float64 `json:"ctr"`
	IPM  float64 `json:"ipm"`
	CPI  float64 `json:"cpi"`
	ROAS float64 `json:"roas"`
}

// DashboardSummary aggregates every row in a window. Averages are derived
// from the summed counters, except retention which is a plain mean.
type DashboardSummary struct {
	TotalSpend       float64 `json:"totalSpend"`
	TotalInstalls    int64   `json:"totalInstalls"`
	AvgCPI           float64 `json:"avgCPI"`
	AvgROAS          float64 `json:"avgROAS"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	AvgCTR           float64 `json:"avgCTR"`
	AvgIPM           float64 `json:"avgIPM"`
	AvgD1Retention   float64 `json:"avgD1Retention"`
	AvgD7Retention   float64 `json:"avgD7Retention"`
}

// PlatformPerformance aggregates a window per platform. ROAS is always 0:
// revenue is not attributed per platform.
type PlatformPerformance struct {
	Platform    Platform `json:"platform"`
	Spend       float64  `json:"spend"`
	Installs    int64    `json:"installs"`
	CPI         float64  `json:"cpi"`
	ROAS        float64  `json:"roas"`
	Impressions int64    `json:"impressions"`
	Clicks      int64    `json:"clicks"`
	CTR         float64  `json:"ctr"`
}

// DateRange is an inclusive window compared at day granularity.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// StartOfDay truncates t to midnight in UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t falls on a day within the range, both ends
// included.
func (r DateRange) Contains(t time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(StartOfDay(r.Start)) && !d.After(StartOfDay(r.End))
}
