package kpi

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative-pulse/internal/core/domain"
)

func TestDeriveZeroDenominators(t *testing.T) {
	m := Derive(domain.CreativePerformance{Clicks: 5, Installs: 0, Spend: 0, Revenue: 12})

	for name, v := range map[string]float64{"ctr": m.CTR, "ipm": m.IPM, "cpi": m.CPI, "roas": m.ROAS} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), name)
		assert.Zero(t, v, name)
	}
}

func TestDeriveRatios(t *testing.T) {
	m := Derive(domain.CreativePerformance{
		Impressions: 30000,
		Clicks:      1234,
		Installs:    97,
		Spend:       120.55,
		Revenue:     181.2,
	})

	assert.Equal(t, 4.11, m.CTR)
	assert.Equal(t, 3.23, m.IPM)
	assert.Equal(t, 1.24, m.CPI)
	assert.Equal(t, 1.5, m.ROAS)
	assert.Equal(t, int64(30000), m.Impressions, "raw counters carried through")
}

func TestSummarizeSumsBeforeDividing(t *testing.T) {
	rows := []domain.CreativePerformance{
		{Impressions: 100, Clicks: 10},
		{Impressions: 200, Clicks: 10},
	}

	s := Summarize(rows)

	assert.Equal(t, 6.67, s.AvgCTR)
	assert.NotEqual(t, 7.5, s.AvgCTR)
	assert.Equal(t, int64(300), s.TotalImpressions)
	assert.Equal(t, int64(20), s.TotalClicks)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, domain.DashboardSummary{}, Summarize(nil))
}

func TestAggregateByCreative(t *testing.T) {
	rows := []domain.CreativePerformance{
		{CreativeID: "c1", Impressions: 1000, Clicks: 50, Installs: 10, Spend: 12, Revenue: 6, D1Retention: 40, D7Retention: 20},
		{CreativeID: "c1", Impressions: 3000, Clicks: 30, Installs: 30, Spend: 28, Revenue: 54, D1Retention: 50, D7Retention: 25},
	}
	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	m, ok := AggregateByCreative("c1", rows, at)
	require.True(t, ok)

	assert.Equal(t, "agg_c1", m.ID)
	assert.Equal(t, at, m.Date)
	assert.Equal(t, "c1", m.CreativeID)
	assert.Equal(t, int64(4000), m.Impressions)
	assert.Equal(t, int64(80), m.Clicks)
	assert.Equal(t, int64(40), m.Installs)
	assert.Equal(t, 45.0, m.D1Retention)
	assert.Equal(t, 22.5, m.D7Retention)
	assert.Equal(t, 2.0, m.CTR)
	assert.Equal(t, 10.0, m.IPM)
	assert.Equal(t, 1.0, m.CPI)
	assert.Equal(t, 1.5, m.ROAS)

	_, ok = AggregateByCreative("c2", nil, at)
	assert.False(t, ok)
}

func TestByPlatform(t *testing.T) {
	rows := []domain.CreativePerformance{
		{CreativeID: "tt", Impressions: 100, Clicks: 10, Installs: 4, Spend: 4, Revenue: 100},
		{CreativeID: "fb", Impressions: 200, Clicks: 10, Installs: 2, Spend: 3},
		{CreativeID: "tt", Impressions: 100, Clicks: 0, Installs: 0, Spend: 2},
		{CreativeID: "gone", Impressions: 999, Clicks: 999},
	}
	platformOf := map[string]domain.Platform{
		"tt": domain.PlatformTikTok,
		"fb": domain.PlatformFacebook,
	}

	got := ByPlatform(rows, platformOf)

	require.Len(t, got, 2)
	assert.Equal(t, domain.PlatformFacebook, got[0].Platform)
	assert.Equal(t, domain.PlatformTikTok, got[1].Platform)
	assert.Equal(t, int64(200), got[1].Impressions)
	assert.Equal(t, 5.0, got[1].CTR)
	assert.Equal(t, 1.5, got[1].CPI)
	assert.Zero(t, got[1].ROAS)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, -1.24, Round2(-1.235))
	assert.Equal(t, 3.0, Round2(3))
}
