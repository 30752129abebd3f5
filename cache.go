package main

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"lg/macro-calc-api/foods"
)

// foodCache stores remote lookup results by normalized query so repeated
// searches don't hit Gemini again. A miss or a broken cache is never fatal.
type foodCache interface {
	Get(ctx context.Context, query string) ([]foods.FoodItem, bool)
	Set(ctx context.Context, query string, items []foods.FoodItem) error
}

func cacheKey(query string) string {
	return "foods:search:" + strings.ToLower(strings.TrimSpace(query))
}

/* ─── Redis ──────────────────────────────────────────────────────────── */

type redisFoodCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newRedisFoodCache(addr string, ttl time.Duration) *redisFoodCache {
	return &redisFoodCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (r *redisFoodCache) Get(ctx context.Context, query string) ([]foods.FoodItem, bool) {
	val, err := r.client.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}
	var items []foods.FoodItem
	if err := json.Unmarshal(val, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (r *redisFoodCache) Set(ctx context.Context, query string, items []foods.FoodItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cacheKey(query), b, r.ttl).Err()
}

/* ─── In-memory ──────────────────────────────────────────────────────── */

type memoryEntry struct {
	items   []foods.FoodItem
	expires time.Time
}

// memoryFoodCache is used when no Redis address is configured.
type memoryFoodCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func newMemoryFoodCache(ttl time.Duration) *memoryFoodCache {
	return &memoryFoodCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *memoryFoodCache) Get(_ context.Context, query string) ([]foods.FoodItem, bool) {
	key := cacheKey(query)
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.expired(e) {
		m.mu.Lock()
		if e, ok := m.entries[key]; ok && m.expired(e) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}
	return e.items, true
}

// Set stores items and drops any expired entries so abandoned queries do
// not accumulate.
func (m *memoryFoodCache) Set(_ context.Context, query string, items []foods.FoodItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ttl > 0 {
		for k, e := range m.entries {
			if m.expired(e) {
				delete(m.entries, k)
			}
		}
	}
	m.entries[cacheKey(query)] = memoryEntry{items: items, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *memoryFoodCache) expired(e memoryEntry) bool {
	return m.ttl > 0 && m.now().After(e.expires)
}
