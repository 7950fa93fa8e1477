package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/greyhound/greyhound/modules/web"
	"github.com/greyhound/greyhound/pkg/config"
	"github.com/greyhound/greyhound/pkg/httpserver"
	"github.com/greyhound/greyhound/pkg/logger"
	"github.com/greyhound/greyhound/pkg/mongo"
	"github.com/greyhound/greyhound/pkg/pg"
	"github.com/greyhound/greyhound/pkg/redis"
	"github.com/greyhound/greyhound/pkg/requestid"
	"github.com/greyhound/greyhound/pkg/tenant"
	"github.com/greyhound/greyhound/svc/ledger"
	"github.com/greyhound/greyhound/svc/registry"
)

func newLogger(cfg appConfig) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			tenant.LoggerExtractor(),
		),
	)
}

// app is the assembled handler plus what has to be released on shutdown.
type app struct {
	handler http.Handler
	checks  []httpserver.Check
	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func buildApp(ctx context.Context, cfg appConfig, log *slog.Logger) (*app, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	a := &app{}

	reg, store, err := a.storage(ctx, cfg, log)
	if err != nil {
		a.close()
		return nil, err
	}
	cache, err := a.cache(ctx, cfg, log)
	if err != nil {
		a.close()
		return nil, err
	}

	errorHandler := web.ErrorHandler(log)
	mw := tenant.New(reg,
		tenant.WithExempt(cfg.Exempt...),
		tenant.WithAppendSlash(cfg.AppendSlash),
		tenant.WithCache(cache),
		tenant.WithCacheTTL(cfg.CacheTTL),
		tenant.WithErrorHandler(errorHandler),
		tenant.WithLogger(log.With(logger.Component("tenant"))),
	)

	a.handler = web.Handler(web.Options{
		Tenants:      mw,
		Ledger:       store,
		Log:          log,
		Health:       httpserver.HealthCheckHandler(log, a.checks...),
		ErrorHandler: errorHandler,
	})
	return a, nil
}

func (a *app) storage(ctx context.Context, cfg appConfig, log *slog.Logger) (tenant.Registry, ledger.Store, error) {
	switch strings.ToLower(cfg.Registry) {
	case backendPostgres:
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, nil, err
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, pool.Close)
		a.checks = append(a.checks, pg.Healthcheck(pool))
		return registry.NewPostgresRegistry(pool), ledger.NewPostgresStore(pool), nil

	case backendMongo:
		var mongoCfg mongo.Config
		if err := config.Load(&mongoCfg); err != nil {
			return nil, nil, err
		}
		db, err := mongo.Database(ctx, mongoCfg)
		if err != nil {
			return nil, nil, err
		}
		client := db.Client()
		a.closers = append(a.closers, func() { _ = client.Disconnect(context.Background()) })
		a.checks = append(a.checks, mongo.Healthcheck(client))

		coll := db.Collection(registry.TenantsCollection)
		if err := registry.EnsureIndexes(ctx, coll); err != nil {
			return nil, nil, err
		}
		log.WarnContext(ctx, "mongo registry keeps balances in memory")
		return registry.NewMongoRegistry(coll), ledger.NewMemoryStore(), nil

	default:
		reg := registry.NewMemoryRegistry()
		if cfg.Fixtures != "" {
			n, err := loadFixtures(reg, cfg.Fixtures)
			if err != nil {
				return nil, nil, err
			}
			log.InfoContext(ctx, "tenant fixtures loaded", slog.Int("count", n), slog.String("file", cfg.Fixtures))
		}
		return reg, ledger.NewMemoryStore(), nil
	}
}

func loadFixtures(reg *registry.MemoryRegistry, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("open tenant fixtures: %w", err)
	}
	defer f.Close()
	return reg.LoadFixtures(f)
}

func (a *app) cache(ctx context.Context, cfg appConfig, log *slog.Logger) (tenant.Cache, error) {
	switch strings.ToLower(cfg.Cache) {
	case backendRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		a.checks = append(a.checks, redis.Healthcheck(client))
		return registry.NewRedisCache(client, registry.WithCacheLogger(log)), nil
	case backendNone:
		return tenant.NoOpCache{}, nil
	default:
		return tenant.NewInMemoryCache(cfg.CacheSize), nil
	}
}
