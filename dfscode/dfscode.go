package dfscode

import (
	"strings"

	"github.com/gspan-go/gspan/label"
)

// DFSCode is an ordered sequence of EdgeCodes describing a depth-first
// construction of a connected pattern (spec.md §3). Two DFSCodes
// describe the same pattern iff Compare reports 0; the minimum DFSCode
// under that order is the pattern's canonical name (§4.F).
type DFSCode []EdgeCode

// Push appends ec to the code.
func (c *DFSCode) Push(ec EdgeCode) {
	*c = append(*c, ec)
}

// Pop removes and discards the last EdgeCode. It is a no-op on an empty
// code.
func (c *DFSCode) Pop() {
	if n := len(*c); n > 0 {
		*c = (*c)[:n-1]
	}
}

// Clone returns an independent copy of c.
func (c DFSCode) Clone() DFSCode {
	out := make(DFSCode, len(c))
	copy(out, c)

	return out
}

// RightmostPath returns the DFS-local vertex indices along the chain of
// forward edges from the root (0) to the deepest vertex, ordered root
// first (spec.md §3, §4.E). Returns nil for an empty code.
func (c DFSCode) RightmostPath() []int {
	if len(c) == 0 {
		return nil
	}

	// Scan backward collecting forward-edge indices that chain into the
	// deepest vertex, exactly as the teacher-style traversal walks a
	// graph from a known endpoint back toward its root.
	var edgeIdx []int
	oldFrom := -1
	for i := len(c) - 1; i >= 0; i-- {
		e := c[i]
		if e.Forward() && (len(edgeIdx) == 0 || e.VITo == oldFrom) {
			edgeIdx = append(edgeIdx, i)
			oldFrom = e.VIFrom
		}
	}

	// edgeIdx is deepest-first; reverse it to root-first before reading
	// off vertices.
	for i, j := 0, len(edgeIdx)-1; i < j; i, j = i+1, j-1 {
		edgeIdx[i], edgeIdx[j] = edgeIdx[j], edgeIdx[i]
	}

	path := make([]int, 0, len(edgeIdx)+1)
	path = append(path, c[edgeIdx[0]].VIFrom)
	for _, idx := range edgeIdx {
		path = append(path, c[idx].VITo)
	}

	return path
}

// Rightmost returns the highest DFS-local vertex index in c, or -1 for
// an empty code.
func (c DFSCode) Rightmost() int {
	rm := -1
	for _, e := range c {
		if e.VITo > rm {
			rm = e.VITo
		}
		if e.VIFrom > rm {
			rm = e.VIFrom
		}
	}

	return rm
}

// CompareEdge orders two EdgeCodes under the DFS-code tie-break ladder
// of spec.md §4.B:
//
//   - both backward: compare (vi_to, el);
//   - both forward: compare (vi_from descending, vl_from, el, vl_to);
//   - mixed: backward is smaller when its vi_from is <= the forward
//     edge's vi_from (this includes the equal case called out by the
//     spec as "backward < forward when vi_from matches").
func CompareEdge(a, b EdgeCode, pol *label.Policy) int {
	af, bf := a.Forward(), b.Forward()

	switch {
	case !af && !bf: // both backward
		if a.VITo != b.VITo {
			return intCompare(a.VITo, b.VITo)
		}

		return pol.Compare(a.EL, b.EL)

	case af && bf: // both forward
		if a.VIFrom != b.VIFrom {
			// Descending: the edge that extends deeper before
			// branching (larger vi_from) sorts smaller.
			if a.VIFrom > b.VIFrom {
				return -1
			}

			return 1
		}
		if c := pol.Compare(a.VLFrom, b.VLFrom); c != 0 {
			return c
		}
		if c := pol.Compare(a.EL, b.EL); c != 0 {
			return c
		}

		return pol.Compare(a.VLTo, b.VLTo)

	case !af && bf: // a backward, b forward
		if a.VIFrom <= b.VIFrom {
			return -1
		}

		return 1

	default: // a forward, b backward
		if b.VIFrom <= a.VIFrom {
			return 1
		}

		return -1
	}
}

// Compare orders two DFSCodes lexicographically under the DFS-code
// order: the first differing EdgeCode (per CompareEdge) decides; if one
// code is a prefix of the other, the shorter code is smaller.
func Compare(a, b DFSCode, pol *label.Policy) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := CompareEdge(a[i], b[i], pol); c != 0 {
			return c
		}
	}

	return intCompare(len(a), len(b))
}

// Equal reports whether a and b describe the same pattern: Compare
// returns 0.
func Equal(a, b DFSCode, pol *label.Policy) bool {
	return Compare(a, b, pol) == 0
}

// String renders c as a space-joined sequence of EdgeCode tuples, the
// canonical printed form used by the DFS-code output mode (spec.md §6).
func (c DFSCode) String() string {
	parts := make([]string, len(c))
	for i, ec := range c {
		parts[i] = ec.String()
	}

	return strings.Join(parts, " ")
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
