package reader

import "errors"

// Sentinel errors for the reader package.
var (
	// ErrMalformedRecord indicates a line had the wrong field count or a
	// non-integer index/vertex reference (spec.md §7 MalformedInput).
	ErrMalformedRecord = errors.New("reader: malformed transaction record")

	// ErrNoTransaction indicates a `v` or `e` record appeared before any
	// `t` line opened a transaction.
	ErrNoTransaction = errors.New("reader: vertex or edge record outside a transaction")
)
