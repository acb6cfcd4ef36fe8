// Package server initializes and runs the registration service. It opens the
// MySQL database, applies migrations, wires the HTTP router, and handles
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"

	"github.com/localaddons/addons/internal/logging"
	"github.com/localaddons/addons/internal/server/config"
	serverhttp "github.com/localaddons/addons/internal/server/http"
	"github.com/localaddons/addons/internal/server/migrations"
	"github.com/localaddons/addons/internal/server/registrations"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *stdhttp.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	db, err := sql.Open("mysql", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	repo := registrations.NewMySQLRepository(db)
	service := registrations.NewService(repo, logger)
	router := serverhttp.NewRouter(service, logger)

	srv := &stdhttp.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrating registration database: %w", err)
	}
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting registration service", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	errCh := make(chan error, 1)
	go func() {
		if err := app.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		app.logger.Error(ctx, "server failed", "error", err)
	case <-ctx.Done():
		app.logger.Info(ctx, "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err)
	}
}
