package prototype

import "errors"

// Sentinel errors for registry operations. All use prefix "prototype:"
// for identification. Callers should branch with errors.Is; call sites
// wrap sentinels with the offending key via %w.
var (
	ErrNotFound     = errors.New("prototype: key not registered")
	ErrDuplicateKey = errors.New("prototype: key already registered")
	ErrEmptyKey     = errors.New("prototype: key must not be empty")
	ErrNilPrototype = errors.New("prototype: prototype must not be nil")
	ErrFrozen       = errors.New("prototype: registry is frozen")
)
