package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creative-pulse/internal/adapter/http"
	"creative-pulse/internal/adapter/memory"
	"creative-pulse/internal/adapter/postgres"
	"creative-pulse/internal/adapter/sheets"
	"creative-pulse/internal/adapter/usecase"
	"creative-pulse/internal/config"
	"creative-pulse/internal/config/configs"
	"creative-pulse/internal/core/port"
	"creative-pulse/internal/db"
	"creative-pulse/internal/metrics"
)

// main is the entry point of the creative-pulse dashboard. It loads
// configuration, seeds the in-memory creative data, wires the list/todo
// backend (memory or PostgreSQL), then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	logger.Info("starting", slog.String("env", cfg.Env), slog.String("todo_backend", cfg.Todo.Backend))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	creatives := memory.NewCreativeRepository()
	performance := memory.NewPerformanceRepository()
	tests := memory.NewTestRepository()
	start := time.Now()
	ds, err := db.Seed(ctx, db.NewGenerator(cfg.Seed.Value, start), cfg.Seed.Creatives, cfg.Seed.Days,
		creatives, performance, tests)
	if err != nil {
		logger.Error("seed error", slog.Any("error", err))
		return
	}
	logger.Info("demo data seeded",
		slog.Int64("seed", cfg.Seed.Value),
		slog.Int("creatives", ds.Creatives),
		slog.Int("performance_rows", ds.Performance),
		slog.Int("tests", ds.Tests),
		slog.Duration("took", time.Since(start)),
	)

	lists, todos, closeStore, err := todoStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("todo store error", slog.Any("error", err))
		return
	}
	defer closeStore()

	todoSvc := usecase.NewTodoUseCase(lists, todos, logger)
	if created, err := todoSvc.EnsureDefaultList(ctx); err != nil {
		logger.Error("default list error", slog.Any("error", err))
		return
	} else if created {
		logger.Info("default list created", slog.String("name", usecase.DefaultListName))
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}
	var sheetOpts []sheets.Option
	if m != nil {
		sheetOpts = append(sheetOpts, sheets.WithObserver(m))
	}
	if !cfg.Sheets.Configured() {
		logger.Warn("GOOGLE_SHEET_ID is not set; /api/sheets will fail")
	}
	sheetSvc := usecase.NewSheetUseCase(sheets.NewClient(cfg.Sheets.CredentialsJSON, sheetOpts...), cfg.Sheets, logger)
	dashboardSvc := usecase.NewDashboardUseCase(creatives, performance, tests, logger)

	handler := httpadapter.NewHandler(dashboardSvc, todoSvc, sheetSvc, logger, httpadapter.Options{
		Metrics:     m,
		MetricsPath: cfg.Metrics.Path,
		RateLimit:   cfg.RateLimit,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
	}
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// todoStore builds the list and todo repositories for the configured
// backend. The returned func releases whatever the backend holds.
func todoStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.ListRepository, port.TodoRepository, func(), error) {
	if cfg.Todo.Backend != configs.TodoBackendPostgres {
		return memory.NewListRepository(), memory.NewTodoRepository(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database connection: %w", err)
	}
	return postgres.NewListRepository(pool), postgres.NewTodoRepository(pool), pool.Close, nil
}
