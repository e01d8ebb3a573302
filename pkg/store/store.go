// Package store persists session state between process restarts
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sasku-server/internal/config"
	"sasku-server/pkg/db"
)

// ErrNotFound is returned when nothing is saved under the ID
var ErrNotFound = errors.New("state not found")

// Store saves and loads serialized state by ID
type Store interface {
	Save(ctx context.Context, id string, data []byte) error
	Load(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}

// New returns the store configured by cfg
func New(ctx context.Context, cfg config.Store) (Store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return NewMemory(), nil
	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("could not connect to redis: %w", err)
		}

		return NewRedis(rdb, time.Duration(cfg.TTLSeconds)*time.Second), nil
	case config.DriverPostgres:
		dbh, err := db.Open(cfg.PGDSN)
		if err != nil {
			return nil, fmt.Errorf("could not connect to postgres: %w", err)
		}

		if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
			return nil, err
		}

		return NewPostgres(dbh), nil
	}

	return nil, fmt.Errorf("unknown store driver: %s", cfg.Driver)
}
