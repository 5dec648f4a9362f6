// Package app builds the service graph shared by the server and seed
// binaries from a loaded configuration.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/drakeshop/inventory-api/internal/api/handler"
	"github.com/drakeshop/inventory-api/internal/core/ports"
	"github.com/drakeshop/inventory-api/internal/core/service"
	"github.com/drakeshop/inventory-api/internal/infrastructure/auth"
	"github.com/drakeshop/inventory-api/internal/infrastructure/db/mongo"
	"github.com/drakeshop/inventory-api/internal/infrastructure/db/redis"
	"github.com/drakeshop/inventory-api/internal/infrastructure/db/sqlite"
	"github.com/drakeshop/inventory-api/internal/pkg/config"
)

// App is the wired application.
type App struct {
	Items  *service.ItemService
	Users  *service.UserService
	Tokens *auth.JWTIssuer
	// Health holds one readiness check per backing dependency.
	Health map[string]handler.Pinger

	resets  []func(ctx context.Context) error
	closers []func(ctx context.Context) error
	log     zerolog.Logger
}

// New connects to the configured stores, applies migrations or indexes and
// builds the services. Call Close when done.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{
		Health: make(map[string]handler.Pinger),
		log:    log,
	}

	itemStore, userStore, err := a.openStores(ctx, cfg)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
		a.Health["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }

		cached := redis.NewCachedItemStore(itemStore, rdb, cfg.Redis.CacheTTL, log.With().Str("component", "item_cache").Logger())
		a.resets = append(a.resets, cached.Purge)
		itemStore = cached
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.CacheTTL).Msg("item cache enabled")
	}

	issuer, err := auth.NewJWTIssuer(cfg.JWTSecret)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	a.Tokens = issuer
	a.Items = service.NewItemService(itemStore, log.With().Str("component", "item_service").Logger())
	a.Users = service.NewUserService(
		userStore,
		auth.NewBcryptHasher(cfg.BcryptCost),
		issuer,
		cfg.TokenTTL,
		log.With().Str("component", "user_service").Logger(),
	)
	return a, nil
}

func (a *App) openStores(ctx context.Context, cfg *config.Config) (ports.ItemStore, ports.UserStore, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		a.Health["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }

		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("ensure indexes: %w", err)
		}
		a.resets = append(a.resets, func(ctx context.Context) error { return mongo.Reset(ctx, db) })
		a.log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb store")
		return mongo.NewItemStore(db), mongo.NewUserStore(db), nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return db.Close() })
		a.Health["sqlite"] = db.PingContext

		migrateLog := a.log.With().Str("component", "migrations").Logger()
		if err := sqlite.Migrate(ctx, db, migrateLog); err != nil {
			return nil, nil, err
		}
		a.resets = append(a.resets, func(ctx context.Context) error { return sqlite.Reset(ctx, db, migrateLog) })
		a.log.Info().Str("path", cfg.SQLite.Path).Msg("using sqlite store")
		return sqlite.NewItemStore(db), sqlite.NewUserStore(db), nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// Reset empties every store and cache.
func (a *App) Reset(ctx context.Context) error {
	for _, reset := range a.resets {
		if err := reset(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.log.Warn().Err(err).Msg("close failed")
		}
	}
	a.closers = nil
}
