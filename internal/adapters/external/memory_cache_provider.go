package external

import (
	"context"
	"sync"
	"time"

	"weathermap.app/pkg/errors"
)

// MemoryCacheProvider is a process-local CacheProvider. Expired entries are
// dropped when they are next read.
type MemoryCacheProvider struct {
	hitCounter

	mutex sync.RWMutex
	data  map[string]memoryCacheItem
	now   func() time.Time
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		data: make(map[string]memoryCacheItem),
		now:  time.Now,
	}
}

func validateKey(key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	return nil
}

func validateEntry(key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	return nil
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if exists && c.now().After(item.expiresAt) {
		c.mutex.Lock()
		if current, ok := c.data[key]; ok && c.now().After(current.expiresAt) {
			delete(c.data, key)
		}
		c.mutex.Unlock()
		exists = false
	}

	if !exists {
		c.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.RecordHit()
	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = memoryCacheItem{
		data:      value,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	return exists && !c.now().After(item.expiresAt), nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]memoryCacheItem)
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCacheProvider) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}
