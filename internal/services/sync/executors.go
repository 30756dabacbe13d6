package sync

import (
	gosync "sync"

	"coinsync/internal/models"
)

// Registry holds the executor definitions known to this node. Hub nodes are
// seeded from configuration and answer GET_EXECUTORS broadcasts; leaf nodes
// fill their registry from the replies.
type Registry struct {
	mu          gosync.RWMutex
	definitions map[string]*models.Executor
}

// NewRegistry creates an executor registry, optionally seeded with the
// node's own definitions
func NewRegistry(seed []*models.Executor) *Registry {
	definitions := make(map[string]*models.Executor, len(seed))
	for _, def := range seed {
		definitions[def.ID] = def
	}

	return &Registry{definitions: definitions}
}

// Put stores a definition, replacing any previous one with the same ID
func (r *Registry) Put(def *models.Executor) {
	r.mu.Lock()
	r.definitions[def.ID] = def
	r.mu.Unlock()
}

// Get returns a definition by ID, or nil
func (r *Registry) Get(id string) *models.Executor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.definitions[id]
}

// All returns a snapshot of every known definition
func (r *Registry) All() []*models.Executor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*models.Executor, 0, len(r.definitions))
	for _, def := range r.definitions {
		all = append(all, def)
	}
	return all
}

// Len returns the number of known definitions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.definitions)
}
