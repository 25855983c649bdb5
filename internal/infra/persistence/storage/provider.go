// Package storage selects and opens the key-value backend named by the config.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"recyclemart/config"
	"recyclemart/internal/domain/constants"
	"recyclemart/internal/domain/lifecycle"
	"recyclemart/internal/domain/service"
	"recyclemart/internal/errors"
	"recyclemart/internal/infra/persistence/kv"
	"recyclemart/internal/infra/persistence/postgres"
	"recyclemart/internal/util"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

type alwaysHealthy struct{}

func (alwaysHealthy) Degraded() bool { return false }

// Backend is an opened store plus its lifecycle hooks.
type Backend struct {
	Store  kv.Store
	Health service.StorageHealth

	start func(ctx context.Context) error
	stop  func(ctx context.Context) error
}

// Start verifies connectivity.
func (b *Backend) Start(ctx context.Context) error {
	if b.start == nil {
		return nil
	}

	return b.start(ctx)
}

// Close releases the backend connections.
func (b *Backend) Close(ctx context.Context) error {
	if b.stop == nil {
		return nil
	}

	return b.stop(ctx)
}

// Open builds the backend for cfg.Storage.Driver, wrapped in a Fallback when degradeOnError is set.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	backend, err := openDriver(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Storage.DegradeOnError {
		fallback := kv.NewFallback(backend.Store, logger)
		backend.Store = fallback
		backend.Health = fallback

		// A failed start is survivable in degraded mode.
		start := backend.start
		if start != nil {
			backend.start = func(ctx context.Context) error {
				if err := start(ctx); err != nil {
					logger.WarnContext(ctx, "Storage backend unreachable at startup, serving from memory",
						slog.String("driver", cfg.Storage.Driver),
						slog.Any("error", err),
					)
					fallback.Degrade(ctx, "start", err)
				}

				return nil
			}
		}
	} else {
		backend.Health = alwaysHealthy{}
	}

	return backend, nil
}

func openDriver(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	sc := cfg.Storage

	switch strings.ToLower(strings.TrimSpace(sc.Driver)) {
	case "", constants.StorageDriverMemory:
		quota, err := util.ParseBytes(sc.QuotaBytes)
		if err != nil {
			return nil, errors.Wrap(err, "invalid storage.quotaBytes")
		}

		return &Backend{Store: kv.NewMemory(quota)}, nil

	case constants.StorageDriverBlob:
		store, err := kv.OpenBlob(ctx, sc.Blob.BucketURL, sc.Blob.Prefix)
		if err != nil {
			return nil, err
		}

		return &Backend{
			Store: store,
			stop:  func(context.Context) error { return store.Close() },
		}, nil

	case constants.StorageDriverPostgres:
		client, err := postgres.Open(cfg, logger)
		if err != nil {
			return nil, err
		}

		return &Backend{
			Store: postgres.NewKVStore(client.DB),
			start: client.Start,
			stop:  func(context.Context) error { return client.Close() },
		}, nil

	case constants.StorageDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:        sc.Redis.Addr,
			Password:    sc.Redis.Password,
			DB:          sc.Redis.DB,
			DialTimeout: sc.Redis.DialTimeout,
		})
		store := kv.NewRedis(client, sc.Redis.KeyPrefix)

		return &Backend{
			Store: store,
			start: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(store.Ping(ctx), "failed to ping redis")
			},
			stop: func(context.Context) error { return store.Close() },
		}, nil

	case constants.StorageDriverMongo:
		clientOpts := options.Client().ApplyURI(sc.Mongo.URI)
		if sc.Mongo.ConnectTimeout > 0 {
			clientOpts.SetConnectTimeout(sc.Mongo.ConnectTimeout)
		}
		client, err := mongo.Connect(ctx, clientOpts)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create mongo client")
		}
		coll := client.Database(sc.Mongo.Database).Collection(sc.Mongo.Collection)

		return &Backend{
			Store: kv.NewMongo(coll),
			start: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx, nil), "failed to ping mongo")
			},
			stop: client.Disconnect,
		}, nil

	default:
		return nil, errors.Errorf("unsupported storage driver: %s", sc.Driver)
	}
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the store and its health to the container.
type Result struct {
	fx.Out

	Store  kv.Store
	Health service.StorageHealth
}

// New opens the configured backend and ties it to the fx lifecycle.
func New(params Params) (Result, error) {
	backend, err := Open(context.Background(), params.Config, params.Logger)
	if err != nil {
		return Result{}, err
	}

	params.Append(fx.Hook{
		OnStart: backend.Start,
		OnStop:  backend.Close,
	})

	return Result{Store: backend.Store, Health: backend.Health}, nil
}
