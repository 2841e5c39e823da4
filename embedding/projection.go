package embedding

import "github.com/gspan-go/gspan/graph"

// Projection is the sequence of SBGs (as Arena handles) witnessing one
// DFSCode's embeddings across the whole transaction database (§4.D). It
// does not own the SBGs it references — Arena does — so a Projection is
// cheap to build, copy, and discard once a recursion frame returns.
type Projection struct {
	Arena   *Arena
	Handles []Handle
}

// Support returns the number of distinct host graphs represented in p,
// the pruning quantity of §4.D (not the embedding count).
func (p Projection) Support() int {
	seen := make(map[*graph.Graph]struct{}, len(p.Handles))
	for _, h := range p.Handles {
		seen[p.Arena.Host(h)] = struct{}{}
	}

	return len(seen)
}

// Len reports the number of embeddings (not distinct host graphs) in p.
func (p Projection) Len() int {
	return len(p.Handles)
}
