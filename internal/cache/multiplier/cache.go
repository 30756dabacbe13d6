package multiplier

import (
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"coinsync/internal/models"
)

// PromoteFunc enables a queued multiplier once its scope frees up. Wired to
// the economy service's enable path so the cache never reaches into the
// store or the messenger itself.
type PromoteFunc func(m *models.Multiplier)

// Config holds configuration for the multiplier cache
type Config struct {
	// MirrorPath is the local JSON-lines file that survives restarts
	MirrorPath string

	// Logger reports mirror-file rot and promotion activity
	Logger zerolog.Logger
}

// Cache is the per-node map from scope key to active multiplier, plus the
// local FIFO queue of multipliers waiting for their scope.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*models.Multiplier
	queue   []*models.Multiplier

	mirrorPath string
	logger     zerolog.Logger
	promote    PromoteFunc
}

// New creates a multiplier cache and reloads any mirrored entries from a
// previous run. Malformed mirror lines are dropped and the file rewritten
// without them; they never fail start-up.
func New(cfg *Config) (*Cache, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.MirrorPath == "" {
		return nil, errors.New("mirror path cannot be empty")
	}

	c := &Cache{
		entries:    make(map[string]*models.Multiplier),
		mirrorPath: cfg.MirrorPath,
		logger:     cfg.Logger,
	}

	restored, dirty, err := loadMirror(cfg.MirrorPath, cfg.Logger)
	if err != nil {
		return nil, err
	}

	for _, m := range restored {
		c.entries[normalizeKey(m.Server)] = m
	}

	if dirty {
		if err := rewriteMirror(cfg.MirrorPath, restored); err != nil {
			cfg.Logger.Warn().Err(err).Msg("could not rewrite multiplier mirror after dropping bad lines")
		}
	}

	return c, nil
}

// SetPromoter wires the queued-multiplier promotion hook. Must be called
// before the first Get; kept out of New because the economy service that
// owns the enable path is constructed after the cache.
func (c *Cache) SetPromoter(promote PromoteFunc) {
	c.mu.Lock()
	c.promote = promote
	c.mu.Unlock()
}

// Get returns the active multiplier for a scope key, or nil. On a miss the
// next queued multiplier for that scope is promoted before declaring that
// nothing is active.
func (c *Cache) Get(scopeKey string) *models.Multiplier {
	key := normalizeKey(scopeKey)

	c.mu.Lock()
	if m := c.lookup(key); m != nil {
		c.mu.Unlock()
		return m
	}

	next := c.dequeueFor(key)
	promote := c.promote
	c.mu.Unlock()

	if next == nil {
		return nil
	}

	if promote == nil {
		c.logger.Warn().Int64("multiplier_id", next.ID).Msg("queued multiplier found but no promoter wired")
		return nil
	}

	c.logger.Debug().Int64("multiplier_id", next.ID).Str("server", next.Server).Msg("promoting queued multiplier")
	promote(next)

	c.mu.Lock()
	m := c.lookup(key)
	c.mu.Unlock()
	return m
}

// Peek returns the active multiplier for a scope key without promoting
// queued entries. Used by the inbound message path, where a remote enable
// must not trigger local queue promotion.
func (c *Cache) Peek(scopeKey string) *models.Multiplier {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup(normalizeKey(scopeKey))
}

// lookup matches exactly first, then by the first whitespace-delimited
// token so that suffixed scope keys (PERSONAL scoping appends the enabler
// id to the server name) still resolve. Caller holds the lock.
func (c *Cache) lookup(key string) *models.Multiplier {
	if m, ok := c.entries[key]; ok {
		return m
	}

	prefix := firstToken(key)
	for stored, m := range c.entries {
		if firstToken(stored) == prefix {
			return m
		}
	}

	// GLOBAL multipliers apply to every server, whatever key they were
	// enabled under
	for _, m := range c.entries {
		if m.Type == models.ScopeGlobal {
			return m
		}
	}

	return nil
}

// dequeueFor pops the oldest queued multiplier matching the scope key, or
// nil. Caller holds the lock.
func (c *Cache) dequeueFor(key string) *models.Multiplier {
	prefix := firstToken(key)
	for i, m := range c.queue {
		if firstToken(normalizeKey(m.Server)) == prefix {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return m
		}
	}
	return nil
}

// Put overwrites the scope's cached entry and mirrors it to disk
func (c *Cache) Put(scopeKey string, m *models.Multiplier) {
	key := normalizeKey(scopeKey)

	c.mu.Lock()
	c.entries[key] = m
	err := appendMirror(c.mirrorPath, m)
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn().Err(err).Int64("multiplier_id", m.ID).Msg("could not mirror multiplier to disk")
	}
}

// Delete removes the multiplier's cache entry and its mirror line
func (c *Cache) Delete(m *models.Multiplier) {
	c.mu.Lock()
	for key, cached := range c.entries {
		if cached.ID == m.ID {
			delete(c.entries, key)
		}
	}
	err := removeFromMirror(c.mirrorPath, m.ID)
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn().Err(err).Int64("multiplier_id", m.ID).Msg("could not remove multiplier from mirror")
	}
}

// Enqueue appends a multiplier to the local enablement queue
func (c *Cache) Enqueue(m *models.Multiplier) {
	c.mu.Lock()
	c.queue = append(c.queue, m)
	c.mu.Unlock()
}

// RemoveQueued drops a multiplier from the enablement queue, matching by ID
// for persisted multipliers and by enabler+server for transient ones
func (c *Cache) RemoveQueued(m *models.Multiplier) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, queued := range c.queue {
		if sameMultiplier(queued, m) {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}

// QueuedCount returns the number of multipliers waiting for a scope
func (c *Cache) QueuedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Active returns a snapshot of every active multiplier, for answering
// GET_MULTIPLIERS broadcasts
func (c *Cache) Active() []*models.Multiplier {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := make([]*models.Multiplier, 0, len(c.entries))
	for _, m := range c.entries {
		active = append(active, m)
	}
	return active
}

func sameMultiplier(a, b *models.Multiplier) bool {
	if a.ID != models.UnassignedMultiplierID || b.ID != models.UnassignedMultiplierID {
		return a.ID == b.ID
	}
	return a.EnablerUUID == b.EnablerUUID && normalizeKey(a.Server) == normalizeKey(b.Server)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.Join(strings.Fields(key), " "))
}

func firstToken(key string) string {
	if i := strings.IndexByte(key, ' '); i >= 0 {
		return key[:i]
	}
	return key
}
