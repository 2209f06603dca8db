package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstancesDoNotShareRegistry(t *testing.T) {
	a, b := New(), New()
	a.RecordRequest(http.MethodGet, "/api/creatives", http.StatusOK, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Requests.WithLabelValues(http.MethodGet, "/api/creatives", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Requests.WithLabelValues(http.MethodGet, "/api/creatives", "200")))
}

func TestRecordSheetRead(t *testing.T) {
	m := New()
	m.RecordSheetRead(nil, 10*time.Millisecond)
	m.RecordSheetRead(errors.New("boom"), 10*time.Millisecond)
	m.RecordSheetRead(errors.New("boom"), 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SheetReads.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SheetReads.WithLabelValues("error")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.RecordRateLimitHit("/api/platforms")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `creative_pulse_rate_limit_hits_total{route="/api/platforms"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
