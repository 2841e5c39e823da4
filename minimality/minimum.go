package minimality

import (
	"github.com/gspan-go/gspan/dfscode"
	"github.com/gspan-go/gspan/embedding"
	"github.com/gspan-go/gspan/graph"
	"github.com/gspan-go/gspan/label"
	"github.com/gspan-go/gspan/rmpath"
)

// IsMinimum reports whether code is the canonical (lexicographically
// smallest) DFSCode for the pattern it describes (spec.md §4.F). It
// rebuilds the pattern as its own small Graph, then greedily re-derives
// the smallest code right-most extension can produce and compares it to
// code position by position — bailing out as soon as a smaller candidate
// is found, since that alone proves code is not canonical.
func IsMinimum(code dfscode.DFSCode, pol *label.Policy) (bool, error) {
	if len(code) == 0 {
		return true, nil
	}

	pattern, err := buildPatternGraph(code, pol)
	if err != nil {
		return false, err
	}

	seeds := allRootedSeeds(pattern)

	minCand, proj, ok := smallest(seeds, pol)
	if !ok {
		return false, nil
	}
	if dfscode.CompareEdge(minCand, code[0], pol) != 0 {
		return false, nil
	}

	built := dfscode.DFSCode{minCand}
	for i := 1; i < len(code); i++ {
		grown, err := rmpath.Extend(built, *proj, pol)
		if err != nil {
			return false, err
		}

		minCand, nextProj, ok := smallest(grown, pol)
		if !ok {
			return false, nil
		}
		if dfscode.CompareEdge(minCand, code[i], pol) != 0 {
			return false, nil
		}

		built.Push(minCand)
		proj = nextProj
	}

	return true, nil
}

// smallest returns the lexicographically least EdgeCode key in byCand
// under pol, along with its Projection. Returns ok=false for an empty
// map (no legal extension exists, which can only happen if code itself
// described an impossible growth).
func smallest(byCand map[dfscode.EdgeCode]*embedding.Projection, pol *label.Policy) (dfscode.EdgeCode, *embedding.Projection, bool) {
	var (
		best    dfscode.EdgeCode
		bestP   *embedding.Projection
		haveAny bool
	)
	for ec, p := range byCand {
		if !haveAny || dfscode.CompareEdge(ec, best, pol) < 0 {
			best, bestP, haveAny = ec, p, true
		}
	}

	return best, bestP, haveAny
}

// allRootedSeeds enumerates one candidate per directed view of every
// edge in pattern, grouped by EdgeCode. Unlike rmpath.Seeds (which
// dedupes by host edge ID to avoid emitting an undirected edge as two
// mined patterns), the canonical-form search must try every vertex as a
// potential DFS root, so both directions of a bidirectional edge are
// kept as distinct candidates here.
func allRootedSeeds(pattern *graph.Graph) map[dfscode.EdgeCode]*embedding.Projection {
	arena := embedding.NewArena()
	out := make(map[dfscode.EdgeCode]*embedding.Projection)

	for v := 0; v < pattern.VertexCount(); v++ {
		for _, he := range pattern.Neighbors(v) {
			cand := dfscode.EdgeCode{
				VIFrom: 0,
				VITo:   1,
				VLFrom: pattern.VertexLabel(v),
				EL:     he.Label,
				VLTo:   pattern.VertexLabel(he.To),
			}
			h := arena.Seed(pattern, he.EdgeID, v, he.To)

			proj, ok := out[cand]
			if !ok {
				proj = &embedding.Projection{Arena: arena}
				out[cand] = proj
			}
			proj.Handles = append(proj.Handles, h)
		}
	}

	return out
}

// buildPatternGraph materializes code as a standalone Graph over DFS
// vertex indices, so right-most extension can be re-run against the
// pattern itself (§4.F). Vertex labels are taken from whichever EdgeCode
// first mentions each index; backward edges reuse already-declared
// vertices.
func buildPatternGraph(code dfscode.DFSCode, pol *label.Policy) (*graph.Graph, error) {
	b := graph.NewBuilder("pattern", pol)
	declared := make(map[int]bool)

	for _, ec := range code {
		if ec.Forward() {
			if !declared[ec.VIFrom] {
				if err := b.AddVertex(ec.VIFrom, ec.VLFrom); err != nil {
					return nil, err
				}
				declared[ec.VIFrom] = true
			}
			if !declared[ec.VITo] {
				if err := b.AddVertex(ec.VITo, ec.VLTo); err != nil {
					return nil, err
				}
				declared[ec.VITo] = true
			}
		}
	}

	for _, ec := range code {
		if _, err := b.AddEdge(ec.VIFrom, ec.VITo, ec.EL); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
