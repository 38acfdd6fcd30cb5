// Package server wires the sensitive words server together: configuration,
// logging, the PostgreSQL store, the HTTP API and the gRPC health endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/sensitivewords/internal/logging"
	"github.com/dmitrijs2005/sensitivewords/internal/server/config"
	"github.com/dmitrijs2005/sensitivewords/internal/server/health"
	"github.com/dmitrijs2005/sensitivewords/internal/server/httpapi"
	"github.com/dmitrijs2005/sensitivewords/internal/server/procstats"
	"github.com/dmitrijs2005/sensitivewords/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sensitivewords/internal/server/seed"
	"github.com/dmitrijs2005/sensitivewords/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/sensitivewords/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager

	words    *services.WordService
	sanitize *services.SanitizeService
	stats    *services.StatsService
	checker  *health.Checker
	sampler  *procstats.Sampler
	seeder   *seed.Loader
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stdout, c.LogBackend, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	sampler, err := procstats.NewSampler()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("metrics init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: rm,
		words:       services.NewWordService(db, rm),
		sanitize:    services.NewSanitizeService(db, rm),
		stats:       services.NewStatsService(db, rm),
		checker:     health.NewChecker(health.DatabaseCheck("postgres", db, 3*time.Second), health.APICheck()),
		sampler:     sampler,
		seeder: seed.NewLoader(seed.S3Config{
			User:     c.S3User,
			Password: c.S3Password,
			Region:   c.S3Region,
			Endpoint: c.S3BaseEndpoint,
		}, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, httpapi.Deps{
		Words:    app.words,
		Sanitize: app.sanitize,
		Stats:    app.stats,
		Health:   app.checker,
		Metrics:  app.sampler,
	}, app.logger, app.config.SlowRequestThreshold)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.checker, app.config.ReadinessInterval)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server failed", "error", err)
		cancelFunc()
	}
}

// prepare migrates the schema and imports the seed word list, if any.
func (app *App) prepare(ctx context.Context) error {
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	if _, err := app.seeder.Seed(ctx, app.config.SeedSource, app.words); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// Run starts both servers and blocks until a signal arrives or one of them
// fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()
	defer func() { _ = logging.Sync(app.logger) }()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	if err := app.prepare(ctx); err != nil {
		app.logger.Error(ctx, "startup failed", "error", err)
		return err
	}

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return nil
}
