// Package pipeline assembles one session's client pipeline. Every session
// owns its backend client, Store, render engine, Loader, and action Service,
// so one session's token and current user never leak into another's
// requests.
package pipeline

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuslink/portal/internal/app/actions"
	"github.com/campuslink/portal/internal/app/client"
	"github.com/campuslink/portal/internal/app/loader"
	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/app/views"
)

// timeNow is swappable in tests
var timeNow = time.Now

// Pipeline is the full client pipeline of a single session
type Pipeline struct {
	Client  *client.Client
	Store   *state.Store
	Engine  *views.Engine
	Loader  *loader.Loader
	Actions *actions.Service
}

// Factory builds pipelines against the configured backend
type Factory struct {
	baseURL string
	timeout time.Duration
	logger  zerolog.Logger
}

// NewFactory creates a pipeline Factory
func NewFactory(baseURL string, timeout time.Duration, logger zerolog.Logger) *Factory {
	return &Factory{baseURL: baseURL, timeout: timeout, logger: logger}
}

// Build wires a fresh pipeline with an empty Store and no token
func (f *Factory) Build() *Pipeline {
	apiClient := client.New(f.baseURL, f.timeout, f.logger)
	store := state.NewStore()
	engine := views.NewEngine(store, f.logger)
	ldr := loader.New(apiClient, store, engine, f.logger)

	return &Pipeline{
		Client:  apiClient,
		Store:   store,
		Engine:  engine,
		Loader:  ldr,
		Actions: actions.NewService(apiClient, store, ldr, f.logger),
	}
}

type entry struct {
	pipeline *Pipeline
	lastSeen time.Time
}

// Registry keys live pipelines by session key, so a session's local-only
// state (chat threads, the organizer request queue, lastAdded marks)
// survives across its requests. Pipelines idle past the session lifetime are
// pruned; a pruned session simply gets a fresh pipeline on its next request,
// the same as after a process restart.
type Registry struct {
	factory *Factory
	ttl     time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

// NewRegistry creates a Registry whose pipelines expire with the session TTL
func NewRegistry(factory *Factory, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Registry{
		factory: factory,
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

// Fresh builds an unkeyed pipeline for a login in progress. Bind it once the
// session record is persisted.
func (r *Registry) Fresh() *Pipeline {
	return r.factory.Build()
}

// Bind registers a pipeline under its session key
func (r *Registry) Bind(sessionKey string, p *Pipeline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[sessionKey] = &entry{pipeline: p, lastSeen: timeNow()}
}

// Get returns the session's pipeline, building one when the process has none
// for it yet (first request after a restart, or after pruning).
func (r *Registry) Get(sessionKey string) *Pipeline {
	now := timeNow()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune(now)

	if e, ok := r.entries[sessionKey]; ok {
		e.lastSeen = now
		return e.pipeline
	}

	p := r.factory.Build()
	r.entries[sessionKey] = &entry{pipeline: p, lastSeen: now}
	return p
}

// Drop forgets a session's pipeline at logout
func (r *Registry) Drop(sessionKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionKey)
}

// prune removes pipelines idle past the session lifetime. Callers hold mu.
func (r *Registry) prune(now time.Time) {
	for key, e := range r.entries {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.entries, key)
		}
	}
}
