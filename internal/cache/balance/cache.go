package balance

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"coinsync/internal/common/clock"
	"coinsync/internal/models"
)

// DefaultTTL is how long a cached balance stays fresh after its last write
const DefaultTTL = 10 * time.Minute

// LoadFunc resolves a player's authoritative balance on a cache miss. It
// returns models.UnknownBalance when the player cannot be resolved at all.
type LoadFunc func(ctx context.Context, playerID string) (float64, error)

// Config holds configuration for the balance cache
type Config struct {
	// TTL is the per-entry freshness window; DefaultTTL if zero
	TTL time.Duration

	// Clock supplies the current time
	Clock clock.Clock

	// Load resolves misses from the ledger store
	Load LoadFunc
}

type entry struct {
	balance   float64
	expiresAt time.Time
}

// Cache is the per-node balance cache. Reads are served from memory while
// fresh; misses go through the loader with at most one in-flight load per
// player.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	ttl   time.Duration
	clock clock.Clock
	load  LoadFunc
	group singleflight.Group
}

// New creates a new balance cache
func New(cfg *Config) (*Cache, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.Load == nil {
		return nil, errors.New("load func cannot be nil")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   cfg.Clock,
		load:    cfg.Load,
	}, nil
}

// GetBalance returns the cached balance if fresh, otherwise loads it from
// the store and caches the result. Concurrent misses on the same player
// share a single store load.
func (c *Cache) GetBalance(ctx context.Context, playerID string) (float64, error) {
	c.mu.RLock()
	e, ok := c.entries[playerID]
	now := c.clock.Now()
	c.mu.RUnlock()

	if ok && now.Before(e.expiresAt) {
		return e.balance, nil
	}

	v, err, _ := c.group.Do(playerID, func() (any, error) {
		// Re-check: another caller may have finished the load while this
		// one was queued behind it.
		c.mu.RLock()
		e, ok := c.entries[playerID]
		fresh := ok && c.clock.Now().Before(e.expiresAt)
		c.mu.RUnlock()
		if fresh {
			return e.balance, nil
		}

		loaded, err := c.load(ctx, playerID)
		if err != nil {
			return models.UnknownBalance, err
		}

		c.SetBalance(playerID, loaded)
		return loaded, nil
	})
	if err != nil {
		return models.UnknownBalance, err
	}

	return v.(float64), nil
}

// SetBalance unconditionally overwrites the cached balance and resets its
// freshness window. Used when the value is already authoritative.
func (c *Cache) SetBalance(playerID string, balance float64) {
	c.mu.Lock()
	c.entries[playerID] = entry{
		balance:   balance,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Evict removes a player's entry, bounding memory on disconnect
func (c *Cache) Evict(playerID string) {
	c.mu.Lock()
	delete(c.entries, playerID)
	c.mu.Unlock()
}

// Contains reports whether a fresh entry exists for the player
func (c *Cache) Contains(playerID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[playerID]
	return ok && c.clock.Now().Before(e.expiresAt)
}
