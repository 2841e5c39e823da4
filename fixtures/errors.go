package fixtures

import "errors"

// ErrTooFewVertices indicates a topology constructor was asked to build
// fewer vertices than its minimum (cycles need >= 3, paths and stars
// need >= 2).
var ErrTooFewVertices = errors.New("fixtures: too few vertices for this topology")
