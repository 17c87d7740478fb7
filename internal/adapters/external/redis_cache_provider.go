package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-redis/redis/v8"
	"weathermap.app/internal/config"
	"weathermap.app/pkg/errors"
)

const clearScanBatch = 100

// RedisCacheProvider implements CacheProvider on Redis. Every key is stored
// under the configured prefix so Clear never touches foreign keys.
type RedisCacheProvider struct {
	hitCounter

	client *redis.Client
	prefix string
}

// NewRedisCacheProvider connects to Redis and verifies the connection
func NewRedisCacheProvider(cfg *config.RedisConfig) (*RedisCacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisCacheProvider{
		client: client,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *RedisCacheProvider) key(key string) string {
	return r.prefix + key
}

func (r *RedisCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			r.RecordMiss()
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewExternalAPIError("redis get operation failed", err)
	}

	r.RecordHit()
	return val, nil
}

func (r *RedisCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return errors.NewExternalAPIError("redis set operation failed", err)
	}
	return nil
}

func (r *RedisCacheProvider) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete operation failed", err)
	}
	return nil
}

func (r *RedisCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	count, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis exists operation failed", err)
	}
	return count > 0, nil
}

// Clear removes every key under the prefix
func (r *RedisCacheProvider) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", clearScanBatch).Iterator()

	batch := make([]string, 0, clearScanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == clearScanBatch {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.NewExternalAPIError("redis clear operation failed", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewExternalAPIError("redis scan operation failed", err)
	}

	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.NewExternalAPIError("redis clear operation failed", err)
		}
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisCacheProvider) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProvider) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}
