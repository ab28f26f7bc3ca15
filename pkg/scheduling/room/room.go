package room

import (
	"sync"

	"github.com/vnykmshr/awaitpool/pkg/config"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/workerpool"
)

// DefaultRoom is the registry key used when a caller does not name a room.
const DefaultRoom = "base"

// Registry is a name-keyed, lazily populated set of worker pools. Every
// pool a registry creates shares the size the registry was built with.
// Entries are never removed; a registry's pools live as long as the
// registry does (for Default, the whole process).
type Registry struct {
	size int

	mu    sync.RWMutex
	rooms map[string]workerpool.Pool
}

// NewRegistry creates a registry whose rooms all get size workers.
// It panics if size is not positive.
func NewRegistry(size int) *Registry {
	if size <= 0 {
		panic("room size must be positive")
	}
	return &Registry{
		size:  size,
		rooms: make(map[string]workerpool.Pool),
	}
}

// Get returns the pool for name, creating it on first access. Exactly
// one pool ever exists per name: a race between concurrent first
// lookups resolves to a single instance that all callers observe.
func (r *Registry) Get(name string) workerpool.Pool {
	r.mu.RLock()
	p, ok := r.rooms[name]
	r.mu.RUnlock()
	if ok {
		return p
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.rooms[name]; ok {
		return p
	}
	p = workerpool.New(r.size)
	r.rooms[name] = p
	return p
}

// Size returns the worker count this registry gives each room.
func (r *Registry) Size() int {
	return r.size
}

// Names returns the names of all rooms created so far.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rooms))
	for name := range r.rooms {
		names = append(names, name)
	}
	return names
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry used by the await bridge
// when no registry is injected. Its room size is the configured default
// pool size, captured at first use; later config changes do not resize
// it. Callers needing isolation should construct their own Registry
// instead.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(config.Current().PoolSize)
	})
	return defaultRegistry
}
