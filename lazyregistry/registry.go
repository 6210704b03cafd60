package lazyregistry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/shashforge/creational/prototype"
)

// ErrNilFactory is returned by Register when the factory is nil.
var ErrNilFactory = errors.New("lazyregistry: factory must not be nil")

// Factory builds a prototype on first demand. It may be expensive; the
// registry guarantees it runs at most once per key unless it fails, in
// which case the next Clone retries.
type Factory[T prototype.Cloner[T]] func(ctx context.Context) (T, error)

// Registry maps keys to factories and caches the prototype each factory
// produces. Key semantics (empty, duplicate, not found) reuse the
// prototype package sentinels. Safe for concurrent use.
type Registry[T prototype.Cloner[T]] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
	built     map[string]T
	sf        singleflight.Group
}

// New returns an empty registry.
func New[T prototype.Cloner[T]]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T]),
		built:     make(map[string]T),
	}
}

// Register associates factory with key. Returns prototype.ErrEmptyKey,
// ErrNilFactory, or prototype.ErrDuplicateKey as appropriate.
func (r *Registry[T]) Register(key string, factory Factory[T]) error {
	if key == "" {
		return prototype.ErrEmptyKey
	}
	if factory == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[key]; ok {
		return fmt.Errorf("%w: %q", prototype.ErrDuplicateKey, key)
	}
	r.factories[key] = factory
	return nil
}

// Clone returns an independent copy of the prototype for key, running
// the factory first if the prototype has not been built yet. Concurrent
// first callers share one factory invocation. A factory error is
// returned as-is and nothing is cached, so a later Clone retries.
func (r *Registry[T]) Clone(ctx context.Context, key string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	r.mu.RLock()
	proto, ok := r.built[key]
	if ok {
		r.mu.RUnlock()
		return proto.Clone(), nil
	}
	factory, registered := r.factories[key]
	r.mu.RUnlock()
	if !registered {
		return zero, fmt.Errorf("%w: %q", prototype.ErrNotFound, key)
	}

	v, err, _ := r.sf.Do(key, func() (any, error) {
		// Re-check: another caller may have finished building while we
		// waited for the flight.
		r.mu.RLock()
		proto, ok := r.built[key]
		r.mu.RUnlock()
		if ok {
			return proto, nil
		}
		built, err := factory(ctx)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.built[key] = built
		r.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T).Clone(), nil
}

// Built reports whether the prototype for key has been constructed.
func (r *Registry[T]) Built(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.built[key]
	return ok
}

// Keys returns the registered keys in sorted order, built or not.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
