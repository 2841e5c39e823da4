package graph

import (
	"fmt"
	"sort"

	"github.com/gspan-go/gspan/label"
)

// Builder accumulates vertices and edges for one transaction graph and
// finalizes them into an immutable Graph via Build. It mirrors the
// teacher library's construction style (validate early, return sentinel
// errors, no partial cleanup) but drops the mutation API (RemoveVertex,
// Clone, FilterEdges, ...) that core.Graph offers: mining never mutates a
// graph after it is read once, so none of that surface is exercised here.
type Builder struct {
	name    string
	policy  *label.Policy
	vlabels map[int]label.Label
	maxIdx  int
	edges   []Edge
	built   bool
}

// NewBuilder starts a Builder for a transaction named name, validated
// against policy (which fixes directedness and void-label handling).
func NewBuilder(name string, policy *label.Policy) *Builder {
	return &Builder{
		name:    name,
		policy:  policy,
		vlabels: make(map[int]label.Label),
		maxIdx:  -1,
	}
}

// AddVertex declares vertex idx with label l. Returns ErrVertexOutOfRange
// for a negative index, ErrDuplicateVertex if idx was already declared,
// or a wrapped label.ErrVoidNotAllowed if l is void and the Builder's
// Policy forbids void vertices (§4.H).
func (b *Builder) AddVertex(idx int, l label.Label) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if idx < 0 {
		return ErrVertexOutOfRange
	}
	if _, exists := b.vlabels[idx]; exists {
		return ErrDuplicateVertex
	}
	if !b.policy.VoidAllowed() && b.policy.IsVoid(l) {
		return fmt.Errorf("graph: vertex %d: %w", idx, label.ErrVoidNotAllowed)
	}
	b.vlabels[idx] = l
	if idx > b.maxIdx {
		b.maxIdx = idx
	}

	return nil
}

// AddEdge declares an edge from `from` to `to` carrying label l. Both
// endpoints must already be declared via AddVertex. Returns the edge's
// stable ID.
func (b *Builder) AddEdge(from, to int, l label.Label) (int, error) {
	if b.built {
		return 0, ErrAlreadyBuilt
	}
	if _, ok := b.vlabels[from]; !ok {
		return 0, ErrVertexOutOfRange
	}
	if _, ok := b.vlabels[to]; !ok {
		return 0, ErrVertexOutOfRange
	}

	id := len(b.edges)
	b.edges = append(b.edges, Edge{ID: id, From: from, To: to, Label: l})

	return id, nil
}

// VertexCount reports how many distinct vertices have been declared so
// far (useful for readers validating "dense from 0" as they parse).
func (b *Builder) VertexCount() int {
	return len(b.vlabels)
}

// Build finalizes the Builder into an immutable Graph. Returns
// ErrVertexOutOfRange wrapped with the missing index if vertex indices
// are not dense from 0. A Builder with zero vertices builds an empty,
// edgeless Graph (the "empty input" boundary case of §8).
func (b *Builder) Build() (*Graph, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}

	n := b.maxIdx + 1
	vlabels := make([]label.Label, n)
	for i := 0; i < n; i++ {
		l, ok := b.vlabels[i]
		if !ok {
			return nil, fmt.Errorf("graph: vertex %d missing, indices must be dense from 0: %w", i, ErrVertexOutOfRange)
		}
		vlabels[i] = l
	}

	adj := make([][]HalfEdge, n)
	for _, e := range b.edges {
		adj[e.From] = append(adj[e.From], HalfEdge{To: e.To, EdgeID: e.ID, Label: e.Label})
		if !b.policy.Directed() && e.From != e.To {
			adj[e.To] = append(adj[e.To], HalfEdge{To: e.From, EdgeID: e.ID, Label: e.Label})
		}
	}
	for v := range adj {
		sort.Slice(adj[v], func(i, j int) bool {
			if adj[v][i].To != adj[v][j].To {
				return adj[v][i].To < adj[v][j].To
			}

			return adj[v][i].EdgeID < adj[v][j].EdgeID
		})
	}

	b.built = true

	return &Graph{
		name:    b.name,
		policy:  b.policy,
		vlabels: vlabels,
		edges:   b.edges,
		adj:     adj,
	}, nil
}
