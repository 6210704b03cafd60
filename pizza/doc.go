// Package pizza provides a fluent, value-semantics builder for an
// immutable pizza product. Every step takes and returns a Builder by
// value, so any intermediate builder is a safe branching point: two
// chains derived from it never share state. Validation failures are
// detected at the offending step and reported by Build.
package pizza
