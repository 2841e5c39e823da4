package dfscode

import (
	"fmt"

	"github.com/gspan-go/gspan/label"
)

// EdgeCode is one entry of a DFSCode: a DFS-local edge discovered between
// vi_from and vi_to, carrying the labels observed at both endpoints and
// on the edge itself (spec.md §3).
type EdgeCode struct {
	VIFrom int
	VITo   int
	VLFrom label.Label
	EL     label.Label
	VLTo   label.Label
}

// Forward reports whether this EdgeCode introduces a new DFS index
// (vi_from < vi_to). A false result means the edge is backward: it
// closes a cycle between two vertices already present in the code.
func (ec EdgeCode) Forward() bool {
	return ec.VIFrom < ec.VITo
}

// String renders ec in the canonical printed tuple form used by the
// DFS-code output mode (spec.md §6): "(vi_from vi_to vl_from el vl_to)".
func (ec EdgeCode) String() string {
	return fmt.Sprintf("(%d %d %s %s %s)", ec.VIFrom, ec.VITo, ec.VLFrom, ec.EL, ec.VLTo)
}
