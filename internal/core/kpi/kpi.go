// Package kpi derives advertising ratios from raw performance counters.
//
// Every function is pure. Aggregations always sum the raw counters first
// and derive ratios from the totals; per-row ratios are never averaged.
package kpi

import (
	"time"

	"github.com/shopspring/decimal"

	"creative-pulse/internal/core/domain"
)

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// CTR is clicks per hundred impressions.
func CTR(clicks, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// IPM is installs per thousand impressions.
func IPM(installs, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(installs) / float64(impressions) * 1000
}

// CPI is spend per install.
func CPI(spend float64, installs int64) float64 {
	if installs == 0 {
		return 0
	}
	return spend / float64(installs)
}

// ROAS is revenue per unit of spend.
func ROAS(revenue, spend float64) float64 {
	if spend == 0 {
		return 0
	}
	return revenue / spend
}

// Derive attaches rounded ratios to a single row.
func Derive(p domain.CreativePerformance) domain.PerformanceMetrics {
	return domain.PerformanceMetrics{
		CreativePerformance: p,
		CTR:                 Round2(CTR(p.Clicks, p.Impressions)),
		IPM:                 Round2(IPM(p.Installs, p.Impressions)),
		CPI:                 Round2(CPI(p.Spend, p.Installs)),
		ROAS:                Round2(ROAS(p.Revenue, p.Spend)),
	}
}

// DeriveAll maps Derive over rows.
func DeriveAll(rows []domain.CreativePerformance) []domain.PerformanceMetrics {
	out := make([]domain.PerformanceMetrics, 0, len(rows))
	for _, p := range rows {
		out = append(out, Derive(p))
	}
	return out
}

// Totals accumulates raw counters across rows.
type Totals struct {
	Rows        int
	Impressions int64
	Clicks      int64
	Installs    int64
	Spend       float64
	Revenue     float64
	D1Retention float64
	D7Retention float64
}

// Add folds one row into the totals.
func (t *Totals) Add(p domain.CreativePerformance) {
	t.Rows++
	t.Impressions += p.Impressions
	t.Clicks += p.Clicks
	t.Installs += p.Installs
	t.Spend += p.Spend
	t.Revenue += p.Revenue
	t.D1Retention += p.D1Retention
	t.D7Retention += p.D7Retention
}

// Sum totals every row.
func Sum(rows []domain.CreativePerformance) Totals {
	var t Totals
	for _, p := range rows {
		t.Add(p)
	}
	return t
}

// MeanD1 is the unweighted mean day-1 retention, 0 for no rows.
func (t Totals) MeanD1() float64 {
	if t.Rows == 0 {
		return 0
	}
	return t.D1Retention / float64(t.Rows)
}

// MeanD7 is the unweighted mean day-7 retention, 0 for no rows.
func (t Totals) MeanD7() float64 {
	if t.Rows == 0 {
		return 0
	}
	return t.D7Retention / float64(t.Rows)
}

// AggregateByCreative collapses all rows of one creative into a single
// metrics record dated at. It returns false when rows is empty.
func AggregateByCreative(creativeID string, rows []domain.CreativePerformance, at time.Time) (domain.PerformanceMetrics, bool) {
	if len(rows) == 0 {
		return domain.PerformanceMetrics{}, false
	}
	t := Sum(rows)
	agg := domain.CreativePerformance{
		ID:         "agg_" + creativeID,
		CreativeID: creativeID,
		Date:       at,
	}
	agg.Impressions = t.Impressions
	agg.Clicks = t.Clicks
	agg.Installs = t.Installs
	agg.Spend = t.Spend
	agg.Revenue = t.Revenue
	agg.D1Retention = Round2(t.MeanD1())
	agg.D7Retention = Round2(t.MeanD7())
	return Derive(agg), true
}

// Summarize builds the dashboard summary for a window of rows.
func Summarize(rows []domain.CreativePerformance) domain.DashboardSummary {
	t := Sum(rows)
	return domain.DashboardSummary{
		TotalSpend:       Round2(t.Spend),
		TotalInstalls:    t.Installs,
		AvgCPI:           Round2(CPI(t.Spend, t.Installs)),
		AvgROAS:          Round2(ROAS(t.Revenue, t.Spend)),
		TotalRevenue:     Round2(t.Revenue),
		TotalImpressions: t.Impressions,
		TotalClicks:      t.Clicks,
		AvgCTR:           Round2(CTR(t.Clicks, t.Impressions)),
		AvgIPM:           Round2(IPM(t.Installs, t.Impressions)),
		AvgD1Retention:   Round2(t.MeanD1()),
		AvgD7Retention:   Round2(t.MeanD7()),
	}
}

// ByPlatform groups rows by the platform of their creative. Rows whose
// creative is not in platformOf are skipped. Output follows
// domain.Platforms order and omits platforms without rows.
func ByPlatform(rows []domain.CreativePerformance, platformOf map[string]domain.Platform) []domain.PlatformPerformance {
	grouped := make(map[domain.Platform]*Totals)
	for _, p := range rows {
		platform, ok := platformOf[p.CreativeID]
		if !ok {
			continue
		}
		t, ok := grouped[platform]
		if !ok {
			t = &Totals{}
			grouped[platform] = t
		}
		t.Add(p)
	}

	out := make([]domain.PlatformPerformance, 0, len(grouped))
	for _, platform := range domain.Platforms {
		t, ok := grouped[platform]
		if !ok {
			continue
		}
		out = append(out, domain.PlatformPerformance{
			Platform:    platform,
			Spend:       Round2(t.Spend),
			Installs:    t.Installs,
			CPI:         Round2(CPI(t.Spend, t.Installs)),
			ROAS:        0,
			Impressions: t.Impressions,
			Clicks:      t.Clicks,
			CTR:         Round2(CTR(t.Clicks, t.Impressions)),
		})
	}
	return out
}
