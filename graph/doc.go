// Package graph defines the labeled, adjacency-queryable multigraph that
// the gspan mining engine operates over.
//
// A Graph is a connected-or-not collection of vertices, each carrying one
// label.Label, joined by edges that each carry one label.Label and an
// orientation fixed at construction time (directed vs. bidirectional,
// per label.Policy). Vertex indices are dense integers 0..n-1; edge IDs
// are stable integers assigned in insertion order, used by the embedding
// package to detect when an SBG chain would reuse an input edge.
//
// Graphs are mutable only through a Builder and become read-only once
// Build is called; every query method is then safe for concurrent use.
package graph
