package phonetics

import "errors"

// ErrNegativePenalty is returned by Penalties.Validate when any rule
// magnitude is below zero.
var ErrNegativePenalty = errors.New("penalty magnitude must be non-negative")
