package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps state in Redis under "sasku:session:{id}"
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis returns a store backed by the client
// A ttl of 0 never expires saved state
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("sasku:session:%s", id)
}

// Save implements Store
func (r *Redis) Save(ctx context.Context, id string, data []byte) error {
	return r.rdb.Set(ctx, sessionKey(id), data, r.ttl).Err()
}

// Load implements Store
func (r *Redis) Load(ctx context.Context, id string) ([]byte, error) {
	data, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return data, nil
}

// Delete implements Store
func (r *Redis) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, sessionKey(id)).Err()
}
