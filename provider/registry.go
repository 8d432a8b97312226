package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the factories for a family of swappable backends (such as
// the transcription variants) and caches the instances built from them. It
// is safe for concurrent use.
type Registry[T Provider] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
	instances map[string]T
}

// NewRegistry creates an empty registry.
func NewRegistry[T Provider]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T]),
		instances: make(map[string]T),
	}
}

// RegisterFactory makes a named factory available to Create. Registering
// the same name again replaces the previous factory.
func (r *Registry[T]) RegisterFactory(name string, factory Factory[T]) {
	r.mu.Lock()
	r.factories[name] = factory
	r.mu.Unlock()
}

// Create builds a provider through the named factory. The settings map is
// passed through to the factory untouched.
func (r *Registry[T]) Create(name string, settings map[string]any) (T, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("no factory registered for provider %q", name)
	}
	return factory(settings)
}

// Get returns the cached instance under name, if one was Set.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[name]
	return inst, ok
}

// Set caches an instance under name for later Get calls.
func (r *Registry[T]) Set(name string, instance T) {
	r.mu.Lock()
	r.instances[name] = instance
	r.mu.Unlock()
}

// List returns the registered factory names in sorted order.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
