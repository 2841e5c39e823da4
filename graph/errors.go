package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrDuplicateVertex indicates AddVertex was called twice with the
	// same dense index out of order (indices must be assigned densely
	// from 0, matching the reader's `v <index> <label>` contract).
	ErrDuplicateVertex = errors.New("graph: duplicate vertex index")

	// ErrVertexOutOfRange indicates an edge referenced a vertex index
	// that was never declared.
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrAlreadyBuilt indicates a mutating call on a Builder after Build
	// has already produced a Graph.
	ErrAlreadyBuilt = errors.New("graph: builder already finalized")
)
