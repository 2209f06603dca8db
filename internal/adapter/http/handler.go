package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"creative-pulse/internal/config/configs"
	"creative-pulse/internal/core/port"
	"creative-pulse/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP over the dashboard, todo and sheet use cases. Routes are registered
// on a chi.Router; every REST route lives under /api.
type Handler struct {
	dashboard   port.DashboardUseCase
	todos       port.TodoUseCase
	sheets      port.SheetUseCase
	logger      *slog.Logger
	metrics     *metrics.Metrics
	metricsPath string
	router      chi.Router
	now         func() time.Time
}

// Options carries the optional parts of the HTTP stack. A nil Metrics
// disables both instrumentation and the exposition route.
type Options struct {
	Metrics     *metrics.Metrics
	MetricsPath string
	RateLimit   configs.RateLimit
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	dashboard port.DashboardUseCase,
	todos port.TodoUseCase,
	sheets port.SheetUseCase,
	logger *slog.Logger,
	opts Options,
) *Handler {
	h := &Handler{
		dashboard:   dashboard,
		todos:       todos,
		sheets:      sheets,
		logger:      logger,
		metrics:     opts.Metrics,
		metricsPath: opts.MetricsPath,
		now:         time.Now,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.logRequests)
	r.Use(h.recoverPanics)

	r.Get("/healthz", h.handleHealth)
	if h.metrics != nil && opts.MetricsPath != "" {
		r.Method(http.MethodGet, opts.MetricsPath, h.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		if opts.RateLimit.Enabled {
			r.Use(newRateLimiter(opts.RateLimit, h.logger, h.metrics).handler)
		}

		r.Route("/creatives", func(r chi.Router) {
			r.Get("/", h.handleListCreatives)
			r.Post("/", h.handleCreateCreative)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCreative)
				r.Patch("/", h.handleUpdateCreative)
				r.Delete("/", h.handleDeleteCreative)
				r.Get("/performance", h.handleCreativePerformance)
				r.Get("/summary", h.handleCreativeSummary)
			})
		})
		r.Get("/performance/summary", h.handlePerformanceSummary)
		r.Get("/platforms", h.handlePlatforms)

		r.Route("/tests", func(r chi.Router) {
			r.Get("/", h.handleListTests)
			r.Post("/", h.handleCreateTest)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetTest)
				r.Patch("/", h.handleUpdateTest)
				r.Delete("/", h.handleDeleteTest)
				r.Post("/complete", h.handleCompleteTest)
			})
		})

		r.Route("/lists", func(r chi.Router) {
			r.Get("/", h.handleListLists)
			r.Post("/", h.handleCreateList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetList)
				r.Patch("/", h.handleRenameList)
				r.Delete("/", h.handleDeleteList)
				r.Get("/todos", h.handleListTodos)
				r.Post("/todos", h.handleCreateTodo)
				r.Get("/todos/{todoId}", h.handleGetTodo)
				r.Patch("/todos/{todoId}", h.handleUpdateTodo)
				r.Delete("/todos/{todoId}", h.handleDeleteTodo)
			})
		})
		r.Route("/todos/{todoId}", func(r chi.Router) {
			r.Get("/", h.handleGetTodo)
			r.Patch("/", h.handleUpdateTodo)
			r.Delete("/", h.handleDeleteTodo)
		})

		r.Get("/sheets", h.handleSheets)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
