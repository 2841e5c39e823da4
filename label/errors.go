package label

import "errors"

// Sentinel errors for the label package.
var (
	// ErrVoidNotAllowed indicates a vertex or edge carried the void token
	// while the active Policy forbids void labels.
	ErrVoidNotAllowed = errors.New("label: void label not allowed by policy")
)
