// Package lazyregistry provides a prototype registry whose entries are
// built on first demand. Factories are registered up front; the first
// Clone for a key runs the factory exactly once (concurrent first
// callers are deduplicated), caches the built prototype, and every Clone
// returns an independent copy of it. Useful when constructing a
// prototype is expensive and some keys may never be requested.
package lazyregistry
