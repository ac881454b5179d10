package registry

import "errors"

// Fatal failure kinds. Callers test for them with errors.Is; the wrapped
// error carries the path and the underlying cause.
var (
	ErrNotFound          = errors.New("registry not found")
	ErrMalformedRegistry = errors.New("malformed registry")
	ErrWriteFailure      = errors.New("registry write failed")
)
