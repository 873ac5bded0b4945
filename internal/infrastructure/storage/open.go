// Package storage abre el kvstore.Store configurado por STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bizpanel-api/pkg/config"
)

// Open construye el store del driver configurado. El llamador debe cerrarlo.
func Open(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		return kvstore.NewMemoryStore(), nil
	case config.StoreBolt:
		return kvstore.NewBoltStore(cfg.Store.BoltPath)
	case config.StoreRedis:
		return kvstore.NewRedisStore(kvstore.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case config.StoreMongo:
		return kvstore.NewMongoStore(ctx, kvstore.MongoOptions{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		store, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Store.Driver)
	}
}
