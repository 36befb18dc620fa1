package app

import (
	"context"
	"errors"
	"fmt"
	"net"

	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/config"
	"github.com/yungbote/symbiosis-backend/internal/data/db"
	httpserver "github.com/yungbote/symbiosis-backend/internal/http"
	"github.com/yungbote/symbiosis-backend/internal/observability"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      config.Config
	Repos    Repos
	Services Services
	Server   *httpserver.Server
	Metrics  *observability.Metrics

	store        *db.Service
	otelShutdown func(context.Context) error
}

// New opens storage, initializes the schema and wires every layer. A schema
// failure is returned before anything listens.
func New(ctx context.Context, cfg config.Config, log *logger.Logger) (*App, error) {
	store, err := db.New(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := store.InitializeSchema(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	theDB := store.DB()

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(log)
		if sqlDB, err := theDB.DB(); err == nil {
			_ = metrics.RegisterDB(sqlDB, "symbiosis")
		}
	}

	otelShutdown, err := observability.InitOTel(ctx, log, cfg.Env, cfg.Tracing)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(log, store, reposet)
	handlerset := wireHandlers(log, serviceset)
	server := httpserver.NewServer(log, wireRouterConfig(cfg, log, metrics, handlerset), httpserver.ServerOptions{
		Addr:              cfg.HTTP.ListenAddr(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	})

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Server:       server,
		Metrics:      metrics,
		store:        store,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	return a.Server.Run(ctx)
}

func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	return a.Server.Serve(ctx, ln)
}

func (a *App) Close(ctx context.Context) error {
	if a == nil {
		return nil
	}
	var errs []error
	if a.otelShutdown != nil {
		errs = append(errs, a.otelShutdown(ctx))
		a.otelShutdown = nil
	}
	if a.store != nil {
		errs = append(errs, a.store.Close())
		a.store = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
	return errors.Join(errs...)
}
