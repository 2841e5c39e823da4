package httpapi

import "errors"

// ErrMissingMinSup is returned (as a 400) when a /mine request omits the
// minsup query parameter or supplies a non-positive value.
var ErrMissingMinSup = errors.New("httpapi: minsup query parameter must be a positive integer")
