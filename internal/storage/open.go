package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/bookstore/storefront/internal/config"
	"github.com/bookstore/storefront/internal/db"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Open connects the backend selected by cfg.StorageDriver
func Open(cfg *config.Config, log *zap.Logger) (Backend, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn("Using in-memory storage, state will not survive restarts")
		return NewMemoryStore(), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Info("Connected to redis", zap.String("addr", cfg.RedisAddr))
		return NewRedisStore(client, cfg.RedisPrefix), nil

	case config.DriverSQL, "":
		database, err := db.Connect(cfg.StorageDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.RunMigrations(database); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Connected to database")
		return NewSQLStore(database, log), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
