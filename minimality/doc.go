// Package minimality implements the canonical-form test of spec.md
// §4.F: a DFSCode is the unique representative of its pattern's
// isomorphism class iff it is the lexicographically smallest DFSCode
// that right-most extension can produce from the pattern's own graph.
package minimality
