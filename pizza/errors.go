package pizza

import "errors"

// Sentinel errors for builder validation. All use prefix "pizza:";
// callers branch with errors.Is. A builder stays usable after a failed
// Build: correct the field and build again.
var (
	ErrCrustRequired  = errors.New("pizza: crust is required")
	ErrSizeOutOfRange = errors.New("pizza: size out of range")
)
