package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/database/migration"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/database/seeder"
	"job-board/internal/infrastructure/cache"
	"job-board/internal/infrastructure/storage"
	"job-board/internal/observability/tracing"
	"job-board/internal/pkg/jwt"
	"job-board/internal/repository"
	"job-board/internal/ws"
	"job-board/migrations"
)

const uploadsPrefix = "/uploads"

// Container holds the process-wide dependencies. Fields may be nil in tests;
// New tolerates a partially built container.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Files *storage.LocalStore
	Hub   *ws.Hub
	JWT   jwt.Service

	shutdownTracing func(context.Context) error
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	c := &Container{Config: cfg, Logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shutdown, err := tracing.Init(ctx, logger, cfg.App.OTLPEndpoint, cfg.App.AppName, cfg.App.Environment)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	c.shutdownTracing = shutdown

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}
	c.DB = db

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir, FS: migrations.FS, Logger: logger}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if cfg.Database.RunSeeders {
		if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}).Run(ctx, db); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("run seeders: %w", err)
		}
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	files, err := storage.NewLocalStore(cfg.Upload.Dir, uploadsPrefix, int64(cfg.Upload.MaxSizeBytes))
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("init upload store: %w", err)
	}
	c.Files = files

	c.Hub = ws.NewHub(ws.NewPresence(), repository.NewPostgresMessageRepository(db), logger)
	c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	if c.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errs = append(errs, c.shutdownTracing(ctx))
	}
	return errors.Join(errs...)
}
