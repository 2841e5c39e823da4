// Package dfscode implements the canonical DFS-code representation of a
// connected graph pattern (spec.md §3, §4.B): EdgeCode, the ordered
// DFSCode built from it, the right-most-path derivation, and the
// DFS-code total order that makes a pattern's minimum DFS code a unique
// representative of its isomorphism class.
package dfscode
