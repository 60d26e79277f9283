package server

import (
	"sync"

	"github.com/autofi/finance-estimator/internal/state"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionRegistry holds the live estimating sessions. Each session owns one
// state.Store, so concurrent requests against the same session serialize on
// the store's single-writer lock. Sessions live in memory only and die with
// the process or an explicit delete.
type sessionRegistry struct {
	mu       sync.RWMutex
	logger   *zap.Logger
	defaults state.Defaults
	sessions map[string]*state.Store
}

func newSessionRegistry(logger *zap.Logger, defaults state.Defaults) *sessionRegistry {
	return &sessionRegistry{
		logger:   logger,
		defaults: defaults,
		sessions: make(map[string]*state.Store),
	}
}

func (r *sessionRegistry) create() (string, *state.Store) {
	id := uuid.NewString()
	store := state.NewStore(r.logger, r.defaults)

	r.mu.Lock()
	r.sessions[id] = store
	r.mu.Unlock()

	r.logger.Debug("created session",
		zap.String("op", "server.sessionRegistry.create"),
		zap.String("session", id),
	)
	return id, store
}

func (r *sessionRegistry) get(id string) (*state.Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.sessions[id]
	return store, ok
}

func (r *sessionRegistry) delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}
