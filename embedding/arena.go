package embedding

import (
	"fmt"

	"github.com/gspan-go/gspan/dfscode"
	"github.com/gspan-go/gspan/graph"
)

// Handle identifies one SBG node within an Arena by its index, starting
// at 0 for the first node created; NoHandle is used to mark "no parent".
type Handle int

// NoHandle marks the absence of a parent SBG (the node is a seed).
const NoHandle Handle = -1

type node struct {
	parent   Handle
	edgeID   int
	fromHost int
	toHost   int
	host     *graph.Graph
}

// Arena owns every SBG node created during one mining run. Nodes are
// appended, never removed individually; siblings extending the same
// parent share that parent's node, giving the tree-of-embeddings
// structure described in spec.md §3 without reference counting.
type Arena struct {
	nodes []node
}

// NewArena returns an empty Arena for one mining run.
func NewArena() *Arena {
	return &Arena{}
}

// Seed creates a one-edge SBG: host edge edgeID, traversed from fromHost
// to toHost. This is the root of a new embedding tree (§4.E "edge case:
// the first enumeration treats every distinct one-edge labeled pattern
// as a seed").
func (a *Arena) Seed(host *graph.Graph, edgeID, fromHost, toHost int) Handle {
	a.nodes = append(a.nodes, node{parent: NoHandle, edgeID: edgeID, fromHost: fromHost, toHost: toHost, host: host})

	return Handle(len(a.nodes) - 1)
}

// Extend grows the SBG at parent by one host edge. The caller is
// responsible for having already verified legality (§4.C): endpoint
// labels match the candidate EdgeCode and the other endpoint is not
// already part of the parent's vertex image (for a forward growth).
// Extend itself still guards the one invariant cheap enough to check
// here — that edgeID does not already appear in parent's chain — and
// returns ErrDuplicateEdge if it does, since a caller reaching this
// state despite the legality checks upstream indicates a bug in the
// caller (spec.md §7 InvariantViolation), not a normal rejection.
func (a *Arena) Extend(parent Handle, edgeID, fromHost, toHost int) (Handle, error) {
	if a.HasEdge(parent, edgeID) {
		return NoHandle, fmt.Errorf("embedding: extending with edge %d: %w", edgeID, ErrDuplicateEdge)
	}

	p := a.nodes[parent]
	a.nodes = append(a.nodes, node{parent: parent, edgeID: edgeID, fromHost: fromHost, toHost: toHost, host: p.host})

	return Handle(len(a.nodes) - 1), nil
}

// Host returns the input graph this SBG was embedded into.
func (a *Arena) Host(h Handle) *graph.Graph {
	return a.nodes[h].host
}

// EdgeIDs returns the host edge IDs used by the SBG at h, in DFS order
// (root-first). Used to test whether a candidate host edge would be
// reused within the same chain (§4.C).
func (a *Arena) EdgeIDs(h Handle) []int {
	n := a.chainLength(h)
	ids := make([]int, n)
	cur := h
	for i := n - 1; i >= 0; i-- {
		ids[i] = a.nodes[cur].edgeID
		cur = a.nodes[cur].parent
	}

	return ids
}

// HasEdge reports whether host edge edgeID already appears in the SBG
// chain at h.
func (a *Arena) HasEdge(h Handle, edgeID int) bool {
	for cur := h; cur != NoHandle; cur = a.nodes[cur].parent {
		if a.nodes[cur].edgeID == edgeID {
			return true
		}
	}

	return false
}

// VertexImage reconstructs the mapping from DFS-local vertex index to
// host vertex index for the SBG at h, given the DFSCode it was grown
// along. Complexity O(k) for a k-edge pattern.
func (a *Arena) VertexImage(h Handle, code dfscode.DFSCode) ([]int, error) {
	n := a.chainLength(h)
	if n != len(code) {
		return nil, fmt.Errorf("embedding: chain length %d does not match code length %d", n, len(code))
	}

	// Walk root-first: collect nodes from h back to the seed, then
	// process them in that (reversed) order.
	chain := make([]node, n)
	cur := h
	for i := n - 1; i >= 0; i-- {
		chain[i] = a.nodes[cur]
		cur = a.nodes[cur].parent
	}

	maxIdx := code.Rightmost()
	images := make([]int, maxIdx+1)
	for i := range images {
		images[i] = -1
	}

	for i, ec := range code {
		nd := chain[i]
		if i == 0 {
			images[ec.VIFrom] = nd.fromHost
			images[ec.VITo] = nd.toHost
			continue
		}
		if ec.Forward() {
			images[ec.VITo] = nd.toHost
		}
	}

	return images, nil
}

func (a *Arena) chainLength(h Handle) int {
	n := 0
	for cur := h; cur != NoHandle; cur = a.nodes[cur].parent {
		n++
	}

	return n
}
