package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 5 * time.Minute

// memory is an in-process Service used when Redis is not configured.
// Values are stored as JSON so callers see the same copy semantics as Redis.
type memory struct {
	store *gocache.Cache
}

func NewMemory() Service {
	return &memory{store: gocache.New(gocache.NoExpiration, memoryCleanupInterval)}
}

func (m *memory) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.store.Get(key)
	if !ok {
		return ErrCacheMiss
	}
	if err := json.Unmarshal(raw.([]byte), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}
	return nil
}

func (m *memory) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	// zero keeps the Redis meaning: no expiry
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.store.Set(key, data, ttl)
	return nil
}

func (m *memory) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.store.Delete(k)
	}
	return nil
}

// DeletePattern understands the glob subset Redis and path.Match share.
func (m *memory) DeletePattern(_ context.Context, pattern string) error {
	for k := range m.store.Items() {
		if ok, _ := path.Match(pattern, k); ok {
			m.store.Delete(k)
		}
	}
	return nil
}

func (m *memory) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := m.Get(ctx, key, dest); err == nil {
		return nil
	}

	data, err := fetcher()
	if err != nil {
		return fmt.Errorf("fetcher error: %w", err)
	}
	if err := m.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	return m.Get(ctx, key, dest)
}

func (m *memory) Ping(context.Context) error { return nil }
