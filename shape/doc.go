// Package shape provides self-cloning geometric figures used as registry
// prototypes. Every variant implements Clone by copying itself field by
// field, so a clone is always the same concrete type as the original and
// shares no mutable state with it.
package shape
