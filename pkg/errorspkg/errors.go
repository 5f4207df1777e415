// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates an internal error: the durable store is unavailable
// or a write failed. Callers must re-query state before retrying.
var ErrInternal = errors.New("internal")
