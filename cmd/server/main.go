// Command server runs the TableTap HTTP backend.
//
// Startup order:
//  1. Load .env (best effort) and the typed configuration
//  2. Configure zerolog (level, optional pretty console)
//  3. Initialize OpenTelemetry tracing when enabled
//  4. Open SQLite, migrate the schema, attach query tracing
//  5. Start the expiry sweeper when an interval is configured
//  6. Serve the Gin router until SIGINT/SIGTERM, then drain gracefully
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/tabletap/go-table-backend/docs"
	"github.com/tabletap/go-table-backend/internal/config"
	httpapi "github.com/tabletap/go-table-backend/internal/http"
	"github.com/tabletap/go-table-backend/internal/observability"
	"github.com/tabletap/go-table-backend/internal/realtime"
	"github.com/tabletap/go-table-backend/internal/repo"
	"github.com/tabletap/go-table-backend/internal/services"
	"github.com/tabletap/go-table-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title        TableTap API
// @version      1.0
// @description  QR-based table ordering backend: restaurants, tables, menus, and table sessions.
// @BasePath     /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func run() error {
	// .env is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	setupLogging(cfg)
	displayBanner()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(c); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()
	if err := repo.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Warn().Err(err).Msg("gorm tracing disabled")
		}
	}

	hub := realtime.NewHub()

	if cfg.Session.SweepInterval > 0 {
		sweeper := &services.Sweeper{DB: db, Expire: repo.ExpireStale, Interval: cfg.Session.SweepInterval}
		go sweeper.Run(ctx)
		log.Info().Dur("interval", cfg.Session.SweepInterval).Msg("session sweeper started")
	}

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	httpapi.RegisterRoutes(engine, db, hub, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received, draining")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}

// setupLogging applies the global log level and, in dev, a pretty console
// writer.
func setupLogging(cfg config.Config) {
	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func displayBanner() {
	figure.NewFigure("tabletap", "cybermedium", true).Print()
	fmt.Println()
}
