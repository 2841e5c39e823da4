// Package embedding implements the SBG (single subgraph embedding) and
// Projection types of spec.md §4.C/§4.D: one occurrence of a pattern
// inside one input graph, and the set of all such occurrences across the
// whole transaction database.
//
// SBGs are allocated from an Arena scoped to one mining run (§5, §9):
// every node is a back-linked chain entry `{parent, edgeID, fromHost,
// toHost, host}` so that appending a node for a one-edge extension is
// O(1) (Arena.Extend's duplicate-edge check walks the chain, O(k)) and
// reconstructing its full vertex/edge image is O(k) for a k-edge pattern. Nodes are never
// freed individually; the whole Arena is dropped when the mining run
// that owns it returns, mirroring the "arena indexed by integer handles"
// design note of spec.md §9.
package embedding
