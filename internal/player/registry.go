package player

import (
	"context"

	"github.com/rs/zerolog"
)

// Constructor builds a fresh Backend instance. A constructor may fail (for
// example when a helper binary is missing); the registry logs and skips the
// backend rather than aborting discovery.
type Constructor func() (Backend, error)

// Registry maps player names to backend constructors and caches the set of
// backends whose applications are currently running. It is an explicit
// object so tests can build a fresh one; nothing in this package holds
// process-global state.
//
// The registry is written for a single logical caller at a time, matching
// the synchronous control surface it serves. It is not safe for concurrent
// use.
type Registry struct {
	logger      zerolog.Logger
	names       []string // registration order, kept for stable listings
	ctors       map[string]Constructor
	live        []Backend
	initialized bool
}

// NewRegistry creates an empty registry.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		logger: logger.With().Str("component", "registry").Logger(),
		ctors:  make(map[string]Constructor),
	}
}

// Initialize runs register exactly once over the registry's lifetime.
// Subsequent calls are no-ops.
func (r *Registry) Initialize(register func(*Registry)) {
	if r.initialized {
		return
	}
	r.initialized = true
	if register != nil {
		register(r)
	}
}

// Register adds a named backend constructor. A second registration for an
// existing name is ignored, not overwritten.
func (r *Registry) Register(name string, ctor Constructor) {
	if _, ok := r.ctors[name]; ok {
		r.logger.Debug().Str("player", name).Msg("Backend already registered, ignoring")
		return
	}
	r.ctors[name] = ctor
	r.names = append(r.names, name)
}

// Names returns the registered player names in registration order.
func (r *Registry) Names() []string {
	return r.names
}

// AvailablePlayers returns the backends whose applications answer the
// liveness probe. The result is cached: an unforced call returns the
// previous snapshot when it is non-empty. A forced call (or an empty cache)
// discards the snapshot, instantiates every registered constructor and
// re-probes each one.
func (r *Registry) AvailablePlayers(ctx context.Context, forceRefresh bool) []Backend {
	if !forceRefresh && len(r.live) > 0 {
		return r.live
	}

	live := make([]Backend, 0, len(r.names))
	for _, name := range r.names {
		backend, err := r.ctors[name]()
		if err != nil {
			r.logger.Warn().Err(err).Str("player", name).Msg("Failed to construct backend")
			continue
		}
		if backend.IsRunning(ctx) {
			live = append(live, backend)
		}
	}
	r.live = live

	r.logger.Debug().Int("count", len(live)).Msg("Probed registered backends")
	return r.live
}

// CreatePlayer instantiates a single named backend on demand, independent of
// the cached snapshot. It returns false when the name is unregistered or the
// constructor fails.
func (r *Registry) CreatePlayer(name string) (Backend, bool) {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, false
	}
	backend, err := ctor()
	if err != nil {
		r.logger.Warn().Err(err).Str("player", name).Msg("Failed to construct backend")
		return nil, false
	}
	return backend, true
}
