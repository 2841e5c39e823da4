package fixtures

import (
	"fmt"

	"github.com/gspan-go/gspan/graph"
	"github.com/gspan-go/gspan/label"
)

const (
	minCycleNodes = 3
	minPathNodes  = 2
	minStarNodes  = 2
)

// Cycle builds an n-vertex simple cycle C_n named name, with vertex i
// labeled vlabels[i] and every edge labeled el. Vertices are added in
// ascending index order; edges are emitted i -> (i+1)%n for i=0..n-1.
func Cycle(name string, pol *label.Policy, vlabels []label.Label, el label.Label) (*graph.Graph, error) {
	n := len(vlabels)
	if n < minCycleNodes {
		return nil, fmt.Errorf("fixtures: Cycle: n=%d: %w", n, ErrTooFewVertices)
	}

	b := graph.NewBuilder(name, pol)
	for i, l := range vlabels {
		if err := b.AddVertex(i, l); err != nil {
			return nil, fmt.Errorf("fixtures: Cycle: AddVertex(%d): %w", i, err)
		}
	}
	for i := 0; i < n; i++ {
		if _, err := b.AddEdge(i, (i+1)%n, el); err != nil {
			return nil, fmt.Errorf("fixtures: Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
		}
	}

	return b.Build()
}

// Path builds a simple path P_n named name, with vertex i labeled
// vlabels[i] and every edge labeled el. Edges are emitted (i-1) -> i for
// i=1..n-1.
func Path(name string, pol *label.Policy, vlabels []label.Label, el label.Label) (*graph.Graph, error) {
	n := len(vlabels)
	if n < minPathNodes {
		return nil, fmt.Errorf("fixtures: Path: n=%d: %w", n, ErrTooFewVertices)
	}

	b := graph.NewBuilder(name, pol)
	for i, l := range vlabels {
		if err := b.AddVertex(i, l); err != nil {
			return nil, fmt.Errorf("fixtures: Path: AddVertex(%d): %w", i, err)
		}
	}
	for i := 1; i < n; i++ {
		if _, err := b.AddEdge(i-1, i, el); err != nil {
			return nil, fmt.Errorf("fixtures: Path: AddEdge(%d,%d): %w", i-1, i, err)
		}
	}

	return b.Build()
}

// Star builds a star topology named name with hub vertex 0 (labeled
// vlabels[0]) and n-1 leaves (labeled vlabels[1:]), every spoke labeled
// el. Spokes are emitted hub -> leaf[i] in ascending leaf order.
func Star(name string, pol *label.Policy, vlabels []label.Label, el label.Label) (*graph.Graph, error) {
	n := len(vlabels)
	if n < minStarNodes {
		return nil, fmt.Errorf("fixtures: Star: n=%d: %w", n, ErrTooFewVertices)
	}

	b := graph.NewBuilder(name, pol)
	for i, l := range vlabels {
		if err := b.AddVertex(i, l); err != nil {
			return nil, fmt.Errorf("fixtures: Star: AddVertex(%d): %w", i, err)
		}
	}
	for i := 1; i < n; i++ {
		if _, err := b.AddEdge(0, i, el); err != nil {
			return nil, fmt.Errorf("fixtures: Star: AddEdge(0,%d): %w", i, err)
		}
	}

	return b.Build()
}

// Triangle is the degenerate 3-cycle used throughout the engine's tests
// (a minimal example with both a forward chain and a closing backward
// edge). A convenience wrapper over Cycle.
func Triangle(name string, pol *label.Policy, va, vb, vc, el label.Label) (*graph.Graph, error) {
	return Cycle(name, pol, []label.Label{va, vb, vc}, el)
}
