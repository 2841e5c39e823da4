package embedding

import "errors"

// ErrDuplicateEdge indicates an extension tried to reuse a host edge
// already present in the same SBG chain (spec.md §7 InvariantViolation:
// a bug in the caller, since legality checks must reject this before
// calling Extend).
var ErrDuplicateEdge = errors.New("embedding: host edge already used in this chain")
