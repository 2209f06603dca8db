package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creative-pulse/internal/adapter/memory"
	"creative-pulse/internal/adapter/usecase"
	"creative-pulse/internal/config/configs"
	"creative-pulse/internal/core/domain"
	"creative-pulse/internal/core/port/mocks"
	"creative-pulse/internal/metrics"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type testServer struct {
	h           *Handler
	performance *memory.PerformanceRepository
	sheets      *mocks.MockSheetReader
	todos       *usecase.TodoUseCase
}

func newTestServer(t *testing.T, opts Options) testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	creatives := memory.NewCreativeRepository()
	performance := memory.NewPerformanceRepository()
	tests := memory.NewTestRepository()
	reader := mocks.NewMockSheetReader(t)

	dashboard := usecase.NewDashboardUseCase(creatives, performance, tests, logger)
	todos := usecase.NewTodoUseCase(memory.NewListRepository(), memory.NewTodoRepository(), logger)
	sheets := usecase.NewSheetUseCase(reader, configs.Sheets{SpreadsheetID: "sheet-1", Range: "Sheet1"}, logger)

	h := NewHandler(dashboard, todos, sheets, logger, opts)
	h.now = func() time.Time { return testNow }
	return testServer{h: h, performance: performance, sheets: reader, todos: todos}
}

func (s testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	s.h.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s testServer) createCreative(t *testing.T, id string, platform domain.Platform) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/creatives", map[string]any{
		"id": id, "name": "Creative " + id, "type": "static", "platform": platform,
		"createdDate": testNow.AddDate(0, 0, -60),
		"elements":    map[string]string{"hook": "Can you beat level 1?", "theme": "Fantasy RPG", "cta": "Play Now"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreativeRoutes(t *testing.T) {
	s := newTestServer(t, Options{})
	s.createCreative(t, "c1", domain.PlatformTikTok)
	s.createCreative(t, "c2", domain.PlatformGoogle)

	rec := s.do(t, http.MethodPost, "/api/creatives", map[string]any{"id": "c3", "name": "No type"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "type is required", decode[errorResponse](t, rec).Error)

	rec = s.do(t, http.MethodPost, "/api/creatives", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/creatives", map[string]any{"id": "c1", "name": "Dup", "type": "static", "platform": "google"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/creatives?platform=google", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]domain.Creative](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)

	rec = s.do(t, http.MethodGet, "/api/creatives?search=FANTASY&status=active", nil)
	assert.Len(t, decode[[]domain.Creative](t, rec), 2)

	rec = s.do(t, http.MethodPatch, "/api/creatives/c1", map[string]any{"id": "hijack", "status": "paused"})
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decode[domain.Creative](t, rec)
	assert.Equal(t, "c1", patched.ID)
	assert.Equal(t, domain.StatusPaused, patched.Status)

	rec = s.do(t, http.MethodGet, "/api/creatives/c1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/creatives/c1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/creatives/c1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Creative not found", decode[errorResponse](t, rec).Error)

	rec = s.do(t, http.MethodPatch, "/api/creatives/c1", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func (s testServer) addRow(t *testing.T, id, creativeID string, date time.Time, impressions, clicks, installs int64, spend float64) {
	t.Helper()
	require.NoError(t, s.performance.Create(context.Background(), domain.CreativePerformance{
		ID: id, CreativeID: creativeID, Date: date,
		Impressions: impressions, Clicks: clicks, Installs: installs, Spend: spend, Revenue: spend * 2,
	}))
}

func TestPerformanceRoutes(t *testing.T) {
	s := newTestServer(t, Options{})
	s.createCreative(t, "c1", domain.PlatformTikTok)
	s.createCreative(t, "c2", domain.PlatformGoogle)
	s.addRow(t, "p1", "c1", testNow.AddDate(0, 0, -2), 100, 10, 2, 10)
	s.addRow(t, "p2", "c1", testNow.AddDate(0, 0, -1), 200, 10, 3, 15)
	s.addRow(t, "p3", "c2", testNow.AddDate(0, 0, -40), 1000, 100, 10, 100)

	rec := s.do(t, http.MethodGet, "/api/creatives/c1/performance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decode[[]domain.PerformanceMetrics](t, rec)
	require.Len(t, rows, 2)
	assert.Equal(t, 10.0, rows[0].CTR)

	rec = s.do(t, http.MethodGet, "/api/creatives/c1/performance?startDate=2025-06-14&endDate=2025-06-14", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows = decode[[]domain.PerformanceMetrics](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, "p2", rows[0].ID)

	rec = s.do(t, http.MethodGet, "/api/creatives/c1/performance?days=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/creatives/c1/performance?startDate=yesterday&endDate=2025-06-14", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/creatives/nope/performance", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/creatives/c1/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	agg := decode[domain.PerformanceMetrics](t, rec)
	assert.Equal(t, "agg_c1", agg.ID)
	assert.Equal(t, 6.67, agg.CTR)

	rec = s.do(t, http.MethodGet, "/api/performance/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[domain.DashboardSummary](t, rec)
	assert.Equal(t, int64(300), summary.TotalImpressions)
	assert.Equal(t, 25.0, summary.TotalSpend)
	assert.Equal(t, 2.0, summary.AvgROAS)

	rec = s.do(t, http.MethodGet, "/api/performance/summary?days=60", nil)
	summary = decode[domain.DashboardSummary](t, rec)
	assert.Equal(t, int64(1300), summary.TotalImpressions)

	rec = s.do(t, http.MethodGet, "/api/platforms?days=60", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	platforms := decode[[]domain.PlatformPerformance](t, rec)
	require.Len(t, platforms, 2)
	assert.Equal(t, domain.PlatformGoogle, platforms[0].Platform)
	assert.Equal(t, domain.PlatformTikTok, platforms[1].Platform)
	assert.Equal(t, 5.0, platforms[1].CPI)

	rec = s.do(t, http.MethodGet, "/api/platforms?days=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestABTestRoutes(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, http.MethodPost, "/api/tests", map[string]any{"id": "t1", "name": "Hooks", "creativeIds": []string{"c1"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/tests", map[string]any{"id": "t1", "name": "Hooks", "creativeIds": []string{"c1", "c2"}, "confidence": 72.5})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, domain.TestRunning, decode[domain.ABTest](t, rec).Status)

	rec = s.do(t, http.MethodGet, "/api/tests?status=running&creativeId=c2", nil)
	assert.Len(t, decode[[]domain.ABTest](t, rec), 1)
	rec = s.do(t, http.MethodGet, "/api/tests?creativeId=c9", nil)
	assert.Len(t, decode[[]domain.ABTest](t, rec), 0)

	rec = s.do(t, http.MethodPatch, "/api/tests/t1", map[string]any{"status": "completed"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/tests/t1/complete", map[string]string{"winner": "c9"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/tests/t1/complete", map[string]string{"winner": "c2"})
	require.Equal(t, http.StatusOK, rec.Code)
	done := decode[domain.ABTest](t, rec)
	assert.Equal(t, domain.TestCompleted, done.Status)
	assert.Equal(t, "c2", done.Winner)
	assert.Equal(t, 95.0, done.Confidence)
	assert.NotNil(t, done.EndDate)

	rec = s.do(t, http.MethodPost, "/api/tests/t1/complete", map[string]string{"winner": "c1"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = s.do(t, http.MethodPost, "/api/tests/nope/complete", map[string]string{"winner": "c1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodPatch, "/api/tests/t1", map[string]any{"status": "running", "winner": "zzz"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/tests/t1", map[string]any{"name": "Renamed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Renamed", decode[domain.ABTest](t, rec).Name)

	rec = s.do(t, http.MethodDelete, "/api/tests/t1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/tests/t1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAndTodoRoutes(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, http.MethodPost, "/api/lists", map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/lists", map[string]string{"name": "Launch"})
	require.Equal(t, http.StatusCreated, rec.Code)
	launch := decode[domain.TodoList](t, rec)
	rec = s.do(t, http.MethodPost, "/api/lists", map[string]string{"name": "Other"})
	other := decode[domain.TodoList](t, rec)

	rec = s.do(t, http.MethodPost, "/api/lists/"+launch.ID+"/todos", map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodPost, "/api/lists/nope/todos", map[string]string{"text": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/lists/"+launch.ID+"/todos", map[string]string{"text": "Record trailer"})
	require.Equal(t, http.StatusCreated, rec.Code)
	todo := decode[domain.Todo](t, rec)
	assert.Equal(t, launch.ID, todo.ListID)
	assert.False(t, todo.Completed)

	rec = s.do(t, http.MethodPost, "/api/lists/"+other.ID+"/todos", map[string]string{"text": "Survive"})
	survivor := decode[domain.Todo](t, rec)

	rec = s.do(t, http.MethodGet, "/api/lists/"+other.ID+"/todos/"+todo.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "todo of another list")

	rec = s.do(t, http.MethodPatch, "/api/lists/"+launch.ID+"/todos/"+todo.ID, map[string]bool{"completed": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[domain.Todo](t, rec).Completed)

	rec = s.do(t, http.MethodGet, "/api/todos/"+todo.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Record trailer", decode[domain.Todo](t, rec).Text)

	rec = s.do(t, http.MethodPatch, "/api/lists/"+launch.ID, map[string]string{"name": "Launch day"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Launch day", decode[domain.TodoList](t, rec).Name)

	rec = s.do(t, http.MethodDelete, "/api/lists/"+launch.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/todos/"+todo.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "cascade removed the todo")
	rec = s.do(t, http.MethodGet, "/api/lists/"+launch.ID+"/todos", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/lists/"+other.ID+"/todos", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	remaining := decode[[]domain.Todo](t, rec)
	require.Len(t, remaining, 1)
	assert.Equal(t, survivor.ID, remaining[0].ID)

	rec = s.do(t, http.MethodDelete, "/api/todos/"+survivor.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodDelete, "/api/todos/"+survivor.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSheetsRoute(t *testing.T) {
	s := newTestServer(t, Options{})
	s.sheets.EXPECT().ReadRange(mock.Anything, "sheet-1", "Sheet1").Return([][]string{
		{"name", "value"},
		{"a", "1"},
		{"b"},
	}, nil).Once()

	rec := s.do(t, http.MethodGet, "/api/sheets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"count":2,"data":[{"name":"a","value":"1"},{"name":"b","value":""}]}`, rec.Body.String())

	s.sheets.EXPECT().ReadRange(mock.Anything, "sheet-1", "Data!A1:B9").Return(nil, errors.New("invalid_grant")).Once()
	rec = s.do(t, http.MethodGet, "/api/sheets?range=Data!A1:B9", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[sheetErrorResponse](t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Failed to read Google Sheet", body.Error)
	assert.Equal(t, "invalid_grant", body.Details)
}

func TestRateLimit(t *testing.T) {
	m := metrics.New()
	s := newTestServer(t, Options{
		Metrics:   m,
		RateLimit: configs.RateLimit{Enabled: true, RPS: 0.001, Burst: 1},
	})

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/lists", nil).Code)
	rec := s.do(t, http.MethodGet, "/api/lists", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/healthz", nil).Code, "health checks are not limited")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitHits.WithLabelValues("/api/lists")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RateLimitHits.WithLabelValues("/api/*")))
}

func TestMetricsRoute(t *testing.T) {
	s := newTestServer(t, Options{Metrics: metrics.New(), MetricsPath: "/metrics"})
	s.do(t, http.MethodGet, "/api/lists", nil)

	rec := s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `creative_pulse_http_requests_total{method="GET",route="/api/lists`)

	s = newTestServer(t, Options{})
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/metrics", nil).Code)
}

func TestRecoverPanics(t *testing.T) {
	s := newTestServer(t, Options{})
	boom := s.h.logRequests(s.h.recoverPanics(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	boom.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/explode", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestParseWindow(t *testing.T) {
	q := func(kv ...string) map[string][]string {
		out := map[string][]string{}
		for i := 0; i < len(kv); i += 2 {
			out[kv[i]] = []string{kv[i+1]}
		}
		return out
	}

	r, err := parseWindow(q(), testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, -30), r.Start)
	assert.Equal(t, testNow, r.End)

	r, err = parseWindow(q("days", "7"), testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, -7), r.Start)

	r, err = parseWindow(q("startDate", "2025-01-01", "days", "7"), testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, -7), r.Start, "a lone startDate falls through to days")

	r, err = parseWindow(q("startDate", "2025-01-01T10:00:00Z", "endDate", "2025-01-31", "days", "7"), testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), r.End)

	for _, bad := range []string{"0", "-3", "1.5", "week"} {
		_, err = parseWindow(q("days", bad), testNow)
		assert.Error(t, err, bad)
	}
}
