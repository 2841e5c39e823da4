package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gspan-go/gspan/graph"
	"github.com/gspan-go/gspan/label"
)

// Diagnostic is invoked once per skipped transaction (spec.md §7
// MalformedInput / UnlabeledVertex): name is the transaction's declared
// name (best effort — empty if the `t` line itself was never reached),
// err is the reason it was skipped.
type Diagnostic func(name string, err error)

// Reader streams transaction Graphs from a line-oriented source (spec.md
// §6). A Reader is not safe for concurrent use.
type Reader struct {
	sc          *bufio.Scanner
	pol         *label.Policy
	diag        Diagnostic
	pending     string
	havePending bool
	skipped     int
}

// Option configures a Reader under construction via New.
type Option func(*Reader)

// WithDiagnostics installs a callback invoked once per skipped
// transaction (verbose mode, spec.md §6 `-v`).
func WithDiagnostics(d Diagnostic) Option {
	return func(r *Reader) { r.diag = d }
}

// New returns a Reader over src, validating vertex labels against pol.
func New(src io.Reader, pol *label.Policy, opts ...Option) *Reader {
	r := &Reader{sc: bufio.NewScanner(src), pol: pol}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Skipped reports how many transactions have been discarded so far
// (malformed records or policy-rejected void vertices).
func (r *Reader) Skipped() int {
	return r.skipped
}

// Next returns the next successfully parsed transaction Graph, skipping
// (and reporting via Diagnostic) any malformed or policy-rejected
// transaction along the way. Returns io.EOF once the source is
// exhausted.
func (r *Reader) Next() (*graph.Graph, error) {
	for {
		g, name, err := r.readOne()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if err != nil {
			r.skipped++
			if r.diag != nil {
				r.diag(name, err)
			}

			continue
		}

		return g, nil
	}
}

// readOne consumes lines through the end of one transaction (the next
// `t` line, unread for the following call, or end of stream) and builds
// its Graph. A malformed line anywhere in the transaction is recorded
// but parsing continues to the transaction boundary so the next call
// starts cleanly.
func (r *Reader) readOne() (*graph.Graph, string, error) {
	var (
		b       *graph.Builder
		name    string
		started bool
		softErr error
	)

	for {
		line, ok := r.scan()
		if !ok {
			if !started {
				return nil, "", io.EOF
			}

			break
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "t":
			if started {
				r.unread(line)

				goto done
			}
			if len(fields) != 3 {
				return nil, "", fmt.Errorf("reader: %q: %w", line, ErrMalformedRecord)
			}
			name = fields[2]
			b = graph.NewBuilder(name, r.pol)
			started = true

		case "v":
			if !started {
				return nil, "", ErrNoTransaction
			}
			if len(fields) != 3 {
				softErr = firstErr(softErr, fmt.Errorf("reader: %q: %w", line, ErrMalformedRecord))
				continue
			}
			idx, err := strconv.Atoi(fields[1])
			if err != nil {
				softErr = firstErr(softErr, fmt.Errorf("reader: %q: %w", line, ErrMalformedRecord))
				continue
			}
			if err := b.AddVertex(idx, label.Label(fields[2])); err != nil {
				softErr = firstErr(softErr, fmt.Errorf("reader: transaction %s: %w", name, err))
				continue
			}

		case "e":
			if !started {
				return nil, "", ErrNoTransaction
			}
			if len(fields) != 4 {
				softErr = firstErr(softErr, fmt.Errorf("reader: %q: %w", line, ErrMalformedRecord))
				continue
			}
			from, err1 := strconv.Atoi(fields[1])
			to, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				softErr = firstErr(softErr, fmt.Errorf("reader: %q: %w", line, ErrMalformedRecord))
				continue
			}
			if _, err := b.AddEdge(from, to, label.Label(fields[3])); err != nil {
				softErr = firstErr(softErr, fmt.Errorf("reader: transaction %s: %w", name, err))
				continue
			}
		}
	}

done:
	if !started {
		return nil, "", io.EOF
	}
	if softErr != nil {
		return nil, name, softErr
	}

	g, err := b.Build()
	if err != nil {
		return nil, name, fmt.Errorf("reader: transaction %s: %w", name, err)
	}

	return g, name, nil
}

func (r *Reader) scan() (string, bool) {
	if r.havePending {
		r.havePending = false

		return r.pending, true
	}
	if r.sc.Scan() {
		return r.sc.Text(), true
	}

	return "", false
}

func (r *Reader) unread(line string) {
	r.pending = line
	r.havePending = true
}

func firstErr(existing, next error) error {
	if existing != nil {
		return existing
	}

	return next
}
