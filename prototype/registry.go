package prototype

import (
	"fmt"
	"slices"
	"sync"
)

// Cloner is the capability a registry entry must offer: producing an
// independent copy of itself as the same runtime variant. T is usually
// an interface type (e.g. shape.Shape) whose implementations each return
// their own concrete copy.
type Cloner[T any] interface {
	Clone() T
}

// Registry maps string keys to owned prototype instances. At most one
// prototype per key; lookups return a freshly produced copy, never the
// stored instance. Safe for concurrent use.
type Registry[T Cloner[T]] struct {
	mu     sync.RWMutex
	protos map[string]T
	frozen bool
}

// New returns an empty registry.
func New[T Cloner[T]]() *Registry[T] {
	return &Registry[T]{protos: make(map[string]T)}
}

// Register stores proto under key. Returns ErrEmptyKey for an empty key,
// ErrNilPrototype for a nil prototype, ErrDuplicateKey if the key is
// already taken, and ErrFrozen after Freeze. Use Replace to overwrite.
func (r *Registry[T]) Register(key string, proto T) error {
	if key == "" {
		return ErrEmptyKey
	}
	if any(proto) == nil {
		return fmt.Errorf("%w: %q", ErrNilPrototype, key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: %q", ErrFrozen, key)
	}
	if _, ok := r.protos[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	r.protos[key] = proto
	return nil
}

// Replace stores proto under key, overwriting any existing entry.
// ErrEmptyKey, ErrNilPrototype and ErrFrozen apply as in Register.
func (r *Registry[T]) Replace(key string, proto T) error {
	if key == "" {
		return ErrEmptyKey
	}
	if any(proto) == nil {
		return fmt.Errorf("%w: %q", ErrNilPrototype, key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: %q", ErrFrozen, key)
	}
	r.protos[key] = proto
	return nil
}

// Clone returns an independent copy of the prototype stored under key.
// The stored instance is never exposed or mutated; successive Clone
// calls for the same key return distinct, value-equal copies. Returns
// ErrNotFound (wrapped with the key) if the key is absent.
func (r *Registry[T]) Clone(key string) (T, error) {
	r.mu.RLock()
	proto, ok := r.protos[key]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return proto.Clone(), nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.protos))
	for k := range r.protos {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of registered prototypes.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.protos)
}

// Freeze makes the registry read-only: subsequent Register and Replace
// calls fail with ErrFrozen while Clone, Keys and Len keep working.
// Freezing twice is a no-op.
func (r *Registry[T]) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (r *Registry[T]) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}
