package core

import "errors"

// ErrMalformedGraph indicates a serialized graph or connection referenced
// an unknown id or violated a structural invariant. Raised at
// construction; not recoverable.
var ErrMalformedGraph = errors.New("core: malformed graph")
