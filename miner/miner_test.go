package miner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gspan-go/gspan/dfscode"
	"github.com/gspan-go/gspan/embedding"
	"github.com/gspan-go/gspan/graph"
	"github.com/gspan-go/gspan/label"
	"github.com/gspan-go/gspan/miner"
)

func buildEdge(t *testing.T, name string, la, lb, el label.Label, pol *label.Policy) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(name, pol)
	require.NoError(t, b.AddVertex(0, la))
	require.NoError(t, b.AddVertex(1, lb))
	_, err := b.AddEdge(0, 1, el)
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func buildTriangle(t *testing.T, name string, pol *label.Policy) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(name, pol)
	require.NoError(t, b.AddVertex(0, "A"))
	require.NoError(t, b.AddVertex(1, "B"))
	require.NoError(t, b.AddVertex(2, "C"))
	_, err := b.AddEdge(0, 1, "x")
	require.NoError(t, err)
	_, err = b.AddEdge(1, 2, "x")
	require.NoError(t, err)
	_, err = b.AddEdge(2, 0, "x")
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestMine_Singleton(t *testing.T) {
	pol := label.New()
	g1 := buildEdge(t, "G1", "A", "A", "x", pol)

	var codes []dfscode.DFSCode
	var found [][]string
	err := miner.Mine(context.Background(), []*graph.Graph{g1}, 1, pol, func(code dfscode.DFSCode, proj embedding.Projection) error {
		codes = append(codes, code.Clone())
		var names []string
		seen := map[string]bool{}
		for _, h := range proj.Handles {
			n := proj.Arena.Host(h).Name()
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
		found = append(found, names)

		return nil
	})
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, []string{"G1"}, found[0])
}

func TestMine_SupportPruningEmptyOutput(t *testing.T) {
	pol := label.New()
	g1 := buildEdge(t, "G1", "A", "A", "x", pol)
	g2 := buildEdge(t, "G2", "A", "A", "y", pol)

	var count int
	err := miner.Mine(context.Background(), []*graph.Graph{g1, g2}, 2, pol, func(code dfscode.DFSCode, proj embedding.Projection) error {
		count++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMine_DuplicatePatternAcrossTwoGraphsEmittedOnce(t *testing.T) {
	pol := label.New()
	g1 := buildTriangle(t, "G1", pol)
	g2 := buildTriangle(t, "G2", pol)

	seenCodes := map[string]bool{}
	var dupes int
	err := miner.Mine(context.Background(), []*graph.Graph{g1, g2}, 2, pol, func(code dfscode.DFSCode, proj embedding.Projection) error {
		key := code.String()
		if seenCodes[key] {
			dupes++
		}
		seenCodes[key] = true
		assert.GreaterOrEqual(t, proj.Support(), 2)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, dupes, "no DFSCode should be emitted twice")
	assert.NotEmpty(t, seenCodes)
}

func TestMine_InvalidMinSup(t *testing.T) {
	pol := label.New()
	err := miner.Mine(context.Background(), nil, 0, pol, func(dfscode.DFSCode, embedding.Projection) error {
		return nil
	})
	assert.ErrorIs(t, err, miner.ErrInvalidMinSup)
}

func TestMine_EmptyCorpusEmitsNothing(t *testing.T) {
	pol := label.New()
	var count int
	err := miner.Mine(context.Background(), nil, 1, pol, func(dfscode.DFSCode, embedding.Projection) error {
		count++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMine_CancellationStopsRecursion(t *testing.T) {
	pol := label.New()
	g1 := buildTriangle(t, "G1", pol)
	g2 := buildTriangle(t, "G2", pol)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sawMultiEdge bool
	err := miner.Mine(ctx, []*graph.Graph{g1, g2}, 2, pol, func(code dfscode.DFSCode, proj embedding.Projection) error {
		if len(code) > 1 {
			sawMultiEdge = true
		}

		return nil
	})
	require.Error(t, err)
	assert.False(t, sawMultiEdge, "cancellation must stop growth beyond the seed pass")
}
