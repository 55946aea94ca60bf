package mandelpool

import "errors"

// ErrConfigInvalid is returned when a Config or Pool size fails validation
// (non-positive dimensions, iterations < 1, a palette with fewer than two
// colors, a pool sized <= 0, and so on).
var ErrConfigInvalid = errors.New("mandelpool: invalid configuration")

// ErrResourceUnavailable is returned when the runtime cannot allocate the
// workers a pool was asked for. Go's goroutine creation does not fail the
// way pthread_create can, so in practice this is unreachable; it is kept in
// the error surface so callers that port logic from a pthread-backed system
// still have a sentinel to check against.
var ErrResourceUnavailable = errors.New("mandelpool: worker resources unavailable")
