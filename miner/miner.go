package miner

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/gspan-go/gspan/dfscode"
	"github.com/gspan-go/gspan/embedding"
	"github.com/gspan-go/gspan/graph"
	"github.com/gspan-go/gspan/label"
	"github.com/gspan-go/gspan/minimality"
	"github.com/gspan-go/gspan/rmpath"
)

// ErrInvalidMinSup indicates minsup was not a positive integer (spec.md
// §6: "minsup: positive integer").
var ErrInvalidMinSup = errors.New("miner: minsup must be a positive integer")

// Visitor is invoked once per emitted pattern, in the DFS order the
// recursive search discovers it (spec.md §4.G; emission order is not
// globally sorted). The passed DFSCode and Projection are not valid past
// the call: the Projection's handles are arena-bound and the arena is
// reused for sibling branches.
type Visitor func(code dfscode.DFSCode, proj embedding.Projection) error

// Mine runs the gSpan enumeration over corpus, emitting every connected
// pattern with support >= minsup exactly once in canonical DFS-code form
// (spec.md §4.G). It returns the first error from visit, from ctx's
// cancellation, or ErrInvalidMinSup.
func Mine(ctx context.Context, corpus []*graph.Graph, minsup int, pol *label.Policy, visit Visitor) error {
	if minsup <= 0 {
		return ErrInvalidMinSup
	}

	seeds, err := rmpath.Seeds(corpus, pol)
	if err != nil {
		return fmt.Errorf("miner: enumerating seeds: %w", err)
	}

	for _, ec := range sortedCandidates(seeds, pol) {
		proj := seeds[ec]
		if proj.Support() < minsup {
			continue
		}

		code := dfscode.DFSCode{ec}
		if err := visit(code, *proj); err != nil {
			return err
		}
		if err := recurse(ctx, code, *proj, minsup, pol, visit); err != nil {
			return err
		}
	}

	return nil
}

// sortedCandidates orders the keys of a candidate map by the DFS-code
// order so enumeration is reproducible across runs (spec.md §5: "both of
// which must be deterministic for reproducible output"); Go map
// iteration order is randomized and would otherwise leak into emission
// order and into SBG allocation order inside the arena.
func sortedCandidates(byCand map[dfscode.EdgeCode]*embedding.Projection, pol *label.Policy) []dfscode.EdgeCode {
	out := make([]dfscode.EdgeCode, 0, len(byCand))
	for ec := range byCand {
		out = append(out, ec)
	}
	sort.Slice(out, func(i, j int) bool {
		return dfscode.CompareEdge(out[i], out[j], pol) < 0
	})

	return out
}

func recurse(ctx context.Context, code dfscode.DFSCode, proj embedding.Projection, minsup int, pol *label.Policy, visit Visitor) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	candidates, err := rmpath.Extend(code, proj, pol)
	if err != nil {
		return fmt.Errorf("miner: extending %s: %w", code, err)
	}

	for _, ec := range sortedCandidates(candidates, pol) {
		childProj := candidates[ec]
		if childProj.Support() < minsup {
			continue
		}

		childCode := code.Clone()
		childCode.Push(ec)

		min, err := minimality.IsMinimum(childCode, pol)
		if err != nil {
			return fmt.Errorf("miner: testing minimality of %s: %w", childCode, err)
		}
		if !min {
			continue
		}

		if err := visit(childCode, *childProj); err != nil {
			return err
		}
		if err := recurse(ctx, childCode, *childProj, minsup, pol, visit); err != nil {
			return err
		}
	}

	return nil
}
