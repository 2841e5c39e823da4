package rmpath

import (
	"fmt"

	"github.com/gspan-go/gspan/dfscode"
	"github.com/gspan-go/gspan/embedding"
	"github.com/gspan-go/gspan/graph"
	"github.com/gspan-go/gspan/label"
)

// Extend enumerates every legal one-edge growth of code across the SBGs
// in proj, grouped by the candidate EdgeCode the growth would add (spec.md
// §4.E). Only backward edges touching the right-most vertex and forward
// edges leaving the right-most path are considered; a candidate that
// starts from the same vertex as code's last edge (VIFrom equal) and
// sorts below that edge under the DFS-code order is discarded, since no
// growth can ever make such a candidate the minimum code. Candidates
// starting from any other vertex are not compared against the last edge.
func Extend(code dfscode.DFSCode, proj embedding.Projection, pol *label.Policy) (map[dfscode.EdgeCode]*embedding.Projection, error) {
	if len(code) == 0 {
		return nil, fmt.Errorf("rmpath: cannot extend an empty code")
	}

	rightmost := code.Rightmost()
	path := code.RightmostPath()
	last := code[len(code)-1]

	out := make(map[dfscode.EdgeCode]*embedding.Projection)

	for _, h := range proj.Handles {
		images, err := proj.Arena.VertexImage(h, code)
		if err != nil {
			return nil, err
		}
		host := proj.Arena.Host(h)

		// Backward candidates: an edge from the right-most vertex's host
		// image to some other vertex on the right-most path (excluding
		// the right-most vertex itself), not already used in this SBG.
		for _, v := range path[:len(path)-1] {
			hv := images[v]
			hr := images[rightmost]
			for _, he := range host.Neighbors(hr) {
				if he.To != hv {
					continue
				}
				if proj.Arena.HasEdge(h, he.EdgeID) {
					continue
				}
				cand := dfscode.EdgeCode{
					VIFrom: rightmost,
					VITo:   v,
					VLFrom: host.VertexLabel(hr),
					EL:     he.Label,
					VLTo:   host.VertexLabel(hv),
				}
				if cand.VIFrom == last.VIFrom && dfscode.CompareEdge(cand, last, pol) < 0 {
					continue
				}
				if err := addCandidate(out, proj.Arena, cand, h, he.EdgeID, hr, hv); err != nil {
					return nil, err
				}
			}
		}

		// Forward candidates: an edge from some vertex on the right-most
		// path to a host vertex not yet part of this SBG's image, tried
		// deepest path vertex first (spec.md §4.E).
		for i := len(path) - 1; i >= 0; i-- {
			u := path[i]
			hu := images[u]
			for _, he := range host.Neighbors(hu) {
				if inImage(images, he.To) {
					continue
				}
				if proj.Arena.HasEdge(h, he.EdgeID) {
					continue
				}
				cand := dfscode.EdgeCode{
					VIFrom: u,
					VITo:   rightmost + 1,
					VLFrom: host.VertexLabel(hu),
					EL:     he.Label,
					VLTo:   host.VertexLabel(he.To),
				}
				if cand.VIFrom == last.VIFrom && dfscode.CompareEdge(cand, last, pol) < 0 {
					continue
				}
				if err := addCandidate(out, proj.Arena, cand, h, he.EdgeID, hu, he.To); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// Seeds enumerates every distinct one-edge labeled pattern across corpus,
// grouped the same way Extend groups multi-edge growths, so a mining
// driver can treat the initial seed pass and every subsequent recursive
// extension through the same loop (spec.md §4.E edge case).
func Seeds(corpus []*graph.Graph, pol *label.Policy) (map[dfscode.EdgeCode]*embedding.Projection, error) {
	arena := embedding.NewArena()
	out := make(map[dfscode.EdgeCode]*embedding.Projection)

	for _, host := range corpus {
		seen := make(map[int]bool, host.EdgeCount())
		for v := 0; v < host.VertexCount(); v++ {
			for _, he := range host.Neighbors(v) {
				if seen[he.EdgeID] {
					continue
				}
				seen[he.EdgeID] = true

				from, to := v, he.To
				// For bidirectional runs the two traversal orders of one
				// edge describe the same pattern; always root at the
				// smaller label so the seed is already the canonical
				// one-edge DFSCode and never needs a minimality retry.
				// Directed edges have a fixed sense and are never swapped.
				if !pol.Directed() && pol.Compare(host.VertexLabel(v), host.VertexLabel(he.To)) > 0 {
					from, to = he.To, v
				}

				cand := dfscode.EdgeCode{
					VIFrom: 0,
					VITo:   1,
					VLFrom: host.VertexLabel(from),
					EL:     he.Label,
					VLTo:   host.VertexLabel(to),
				}
				h := arena.Seed(host, he.EdgeID, from, to)

				proj, ok := out[cand]
				if !ok {
					proj = &embedding.Projection{Arena: arena}
					out[cand] = proj
				}
				proj.Handles = append(proj.Handles, h)
			}
		}
	}

	return out, nil
}

func inImage(images []int, hostV int) bool {
	for _, iv := range images {
		if iv == hostV {
			return true
		}
	}

	return false
}

func addCandidate(out map[dfscode.EdgeCode]*embedding.Projection, arena *embedding.Arena, cand dfscode.EdgeCode, parent embedding.Handle, edgeID, fromHost, toHost int) error {
	h, err := arena.Extend(parent, edgeID, fromHost, toHost)
	if err != nil {
		return err
	}

	proj, ok := out[cand]
	if !ok {
		proj = &embedding.Projection{Arena: arena}
		out[cand] = proj
	}
	proj.Handles = append(proj.Handles, h)

	return nil
}
