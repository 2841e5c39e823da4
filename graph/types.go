package graph

import "github.com/gspan-go/gspan/label"

// Edge is one labeled connection between two dense vertex indices. ID is
// stable and assigned in insertion order; the embedding package uses it
// to detect when an SBG chain would reuse the same input edge.
type Edge struct {
	ID    int
	From  int
	To    int
	Label label.Label
}

// HalfEdge is one directed view of an Edge as seen from one endpoint
// during adjacency iteration (§4.A): the neighboring vertex, the edge's
// stable ID, and the edge's label.
type HalfEdge struct {
	To     int
	EdgeID int
	Label  label.Label
}

// Graph is an immutable, labeled, adjacency-queryable multigraph over
// dense vertex indices 0..n-1 (§3). It is built once via Builder and
// never mutated afterward, so every query method is safe for concurrent
// use by any number of goroutines sharing one mining run.
type Graph struct {
	name    string
	policy  *label.Policy
	vlabels []label.Label
	edges   []Edge
	adj     [][]HalfEdge // adj[v] sorted by (To, EdgeID)
}

// Name returns the transaction name this Graph was parsed under (opaque
// to the engine, used only for §6's `#found_in:` reporting).
func (g *Graph) Name() string {
	return g.name
}

// Policy returns the label.Policy this Graph was built with.
func (g *Graph) Policy() *label.Policy {
	return g.policy
}

// VertexCount returns n, the number of vertices (indices 0..n-1).
func (g *Graph) VertexCount() int {
	return len(g.vlabels)
}

// VertexLabel returns the label of vertex v. Panics if v is out of
// range; callers within this module only ever pass indices obtained
// from the same Graph.
func (g *Graph) VertexLabel(v int) label.Label {
	return g.vlabels[v]
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edge returns the Edge with the given stable ID.
func (g *Graph) Edge(id int) Edge {
	return g.edges[id]
}

// Neighbors returns the HalfEdges incident to vertex v, sorted by
// (neighbor index, edge ID) for deterministic traversal (§9). For
// directed runs this yields out-edges only; for bidirectional runs it
// yields both halves of every incident edge.
func (g *Graph) Neighbors(v int) []HalfEdge {
	return g.adj[v]
}
