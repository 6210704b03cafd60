// Package prototype provides a keyed registry of self-cloning template
// objects. A lookup never exposes the stored instance: Clone asks the
// prototype to copy itself, so callers always receive a fresh,
// polymorphically correct value of the registered concrete type.
// Duplicate keys are rejected; overwriting is explicit via Replace.
// The registry is safe for concurrent use; call Freeze after seeding to
// enforce the initialize-then-freeze discipline.
package prototype
