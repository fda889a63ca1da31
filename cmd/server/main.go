package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/smartcity/tourdifficulty/internal/config"
	"github.com/smartcity/tourdifficulty/internal/delivery/http"
	"github.com/smartcity/tourdifficulty/internal/domain"
	"github.com/smartcity/tourdifficulty/internal/repository/memory"
	"github.com/smartcity/tourdifficulty/internal/repository/postgres"
	"github.com/smartcity/tourdifficulty/internal/service"
	"github.com/smartcity/tourdifficulty/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Dependency Injection: Repositories
	catalog, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if _, err := catalog.Get(cfg.Status.DefaultArea); err != nil {
		return fmt.Errorf("default area: %w", err)
	}

	// Dependency Injection: Services
	opts := []service.Option{service.WithLogger(logger)}
	if !cfg.Status.DeterministicNoise {
		opts = append(opts, service.WithNoise(service.EntropyNoise))
	}
	statusSvc := service.NewStatusService(catalog, service.NewTrafficService(), opts...)

	app := http.NewApp(http.AppConfig{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		AllowOrigins: cfg.Server.AllowOrigins,
		Options: http.Options{
			DefaultArea:      cfg.Status.DefaultArea,
			StrictAreaLookup: cfg.Status.StrictAreaLookup,
		},
	}, statusSvc, web.Static(), logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", "port", cfg.Server.Port, "env", cfg.Environment, "areas", catalog.Len())
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("server exited gracefully")
	return nil
}

// loadCatalog reads the catalog from Postgres when DATABASE_URL is set and
// falls back to the built-in areas otherwise.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*memory.Catalog, error) {
	if cfg.Database.URL == "" {
		logger.Info("using built-in area catalog")
		return memory.NewDefaultCatalog(), nil
	}

	pool, err := postgres.Connect(ctx, cfg.Database.URL, cfg.Database.ConnectTimeout)
	if err != nil {
		return nil, err
	}
	// The catalog is read-only after startup, so the pool is not kept.
	defer pool.Close()

	var src domain.AreaSource = postgres.NewAreaRepository(pool)
	catalog, err := memory.LoadCatalog(ctx, src)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded area catalog from PostgreSQL", "areas", catalog.Len())
	return catalog, nil
}

// newLogger creates a structured slog.Logger configured for the given log level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
