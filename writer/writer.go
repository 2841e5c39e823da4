package writer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gspan-go/gspan/dfscode"
	"github.com/gspan-go/gspan/embedding"
	"github.com/gspan-go/gspan/label"
)

// Writer renders emitted patterns to an underlying stream in one of the
// two presentation modes of spec.md §6.
type Writer struct {
	out      io.Writer
	dfscMode bool
	verbose  bool
	count    int
}

// Option configures a Writer under construction via New.
type Option func(*Writer)

// WithDFSCodeMode selects the `-dfsc` presentation (one canonical
// DFSCode per line) instead of the default transaction-graph mode.
func WithDFSCodeMode() Option {
	return func(w *Writer) { w.dfscMode = true }
}

// WithVerbose appends a tab-indented line per embedding after each
// pattern (spec.md §6 `-v`).
func WithVerbose() Option {
	return func(w *Writer) { w.verbose = true }
}

// New returns a Writer over out.
func New(out io.Writer, opts ...Option) *Writer {
	w := &Writer{out: out}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Emit renders one pattern (spec.md §4.G's visitor contract). It
// returns the first write error encountered.
func (w *Writer) Emit(code dfscode.DFSCode, proj embedding.Projection, pol *label.Policy) error {
	if w.dfscMode {
		return w.emitDFSCode(code, proj)
	}

	return w.emitTransactionGraph(code, proj, pol)
}

func (w *Writer) emitDFSCode(code dfscode.DFSCode, proj embedding.Projection) error {
	if _, err := fmt.Fprintln(w.out, code.String()); err != nil {
		return err
	}
	if w.verbose {
		if err := w.emitEmbeddings(code, proj); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) emitTransactionGraph(code dfscode.DFSCode, proj embedding.Projection, pol *label.Policy) error {
	w.count++

	if _, err := fmt.Fprintf(w.out, "t # %d\n", w.count); err != nil {
		return err
	}

	vlabels := make(map[int]label.Label)
	for _, ec := range code {
		if !pol.IsVoid(ec.VLFrom) {
			vlabels[ec.VIFrom] = ec.VLFrom
		}
		if !pol.IsVoid(ec.VLTo) {
			vlabels[ec.VITo] = ec.VLTo
		}
	}

	idxs := make([]int, 0, len(vlabels))
	for idx := range vlabels {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	for _, idx := range idxs {
		if _, err := fmt.Fprintf(w.out, "v %d %s\n", idx, vlabels[idx]); err != nil {
			return err
		}
	}

	for _, ec := range code {
		if _, err := fmt.Fprintf(w.out, "e %d %d %s\n", ec.VIFrom, ec.VITo, ec.EL); err != nil {
			return err
		}
	}

	names := hostNames(proj)
	if _, err := fmt.Fprintf(w.out, "#found_in: %s\n\n", strings.Join(names, ", ")); err != nil {
		return err
	}
	if w.verbose {
		if err := w.emitEmbeddings(code, proj); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) emitEmbeddings(code dfscode.DFSCode, proj embedding.Projection) error {
	for _, h := range proj.Handles {
		images, err := proj.Arena.VertexImage(h, code)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w.out, "\t%s: %v\n", proj.Arena.Host(h).Name(), images); err != nil {
			return err
		}
	}

	return nil
}

// hostNames lists the distinct host graph names in a Projection, in the
// iteration order the host set is first encountered (spec.md §6
// `#found_in` lists hosts "in the iteration order of the host-graph
// set").
func hostNames(proj embedding.Projection) []string {
	seen := make(map[string]bool)
	var names []string
	for _, h := range proj.Handles {
		n := proj.Arena.Host(h).Name()
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}

	return names
}
