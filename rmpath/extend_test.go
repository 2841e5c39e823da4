package rmpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gspan-go/gspan/dfscode"
	"github.com/gspan-go/gspan/embedding"
	"github.com/gspan-go/gspan/graph"
	"github.com/gspan-go/gspan/label"
	"github.com/gspan-go/gspan/rmpath"
)

func buildTriangle(t *testing.T, name string) *graph.Graph {
	t.Helper()
	pol := label.New()
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

func TestSeeds_DedupesUndirectedEdgeOnce(t *testing.T) {
	g := buildTriangle(t, "G1")
	seeds, err := rmpath.Seeds([]*graph.Graph{g}, label.New())
	require.NoError(t, err)

	total := 0
	for _, p := range seeds {
		total += p.Len()
	}
	assert.Equal(t, 3, total, "one seed per undirected edge, not two")
}

func TestSeeds_GroupsByLabelTriple(t *testing.T) {
	g := buildTriangle(t, "G1")
	pol := label.New()
	seeds, err := rmpath.Seeds([]*graph.Graph{g}, pol)
	require.NoError(t, err)

	// All three edges share label "x" but join different vertex-label
	// pairs (A-B, A-C, B-C), each rooted at its smaller label, so there
	// are 3 distinct EdgeCode keys; every one must have VIFrom=0, VITo=1.
	for ec, proj := range seeds {
		assert.Equal(t, 0, ec.VIFrom)
		assert.Equal(t, 1, ec.VITo)
		assert.Equal(t, 1, proj.Support())
	}
}

func TestExtend_TriangleGrowsForwardFromRightmost(t *testing.T) {
	g := buildTriangle(t, "G1")
	pol := label.New()
	arena := embedding.NewArena()

	h1 := arena.Seed(g, 0, 0, 1) // A -x-> B
	proj := embedding.Projection{Arena: arena, Handles: []embedding.Handle{h1}}
	code := dfscode.DFSCode{
		{VIFrom: 0, VITo: 1, VLFrom: "A", EL: "x", VLTo: "B"},
	}

	grown, err := rmpath.Extend(code, proj, pol)
	require.NoError(t, err)
	require.NotEmpty(t, grown)

	// One of the candidates must be the forward edge B -x-> C.
	found := false
	for ec := range grown {
		if ec.Forward() && ec.VLFrom == "B" && ec.VLTo == "C" {
			found = true
		}
	}
	assert.True(t, found, "expected forward growth to C, got %v", grown)
}

func TestExtend_ClosesTriangleWithBackwardEdge(t *testing.T) {
	g := buildTriangle(t, "G1")
	pol := label.New()
	arena := embedding.NewArena()

	h1 := arena.Seed(g, 0, 0, 1) // A -x-> B
	h2, err := arena.Extend(h1, 1, 1, 2) // B -x-> C
	require.NoError(t, err)
	proj := embedding.Projection{Arena: arena, Handles: []embedding.Handle{h2}}
	code := dfscode.DFSCode{
		{VIFrom: 0, VITo: 1, VLFrom: "A", EL: "x", VLTo: "B"},
		{VIFrom: 1, VITo: 2, VLFrom: "B", EL: "x", VLTo: "C"},
	}

	grown, err := rmpath.Extend(code, proj, pol)
	require.NoError(t, err)

	found := false
	for ec := range grown {
		if !ec.Forward() && ec.VITo == 0 {
			found = true
		}
	}
	assert.True(t, found, "expected backward closing edge to vertex 0, got %v", grown)
}

func TestExtend_NoReuseOfConsumedEdge(t *testing.T) {
	g := buildTriangle(t, "G1")
	pol := label.New()
	arena := embedding.NewArena()

	h1 := arena.Seed(g, 0, 0, 1)
	proj := embedding.Projection{Arena: arena, Handles: []embedding.Handle{h1}}
	code := dfscode.DFSCode{
		{VIFrom: 0, VITo: 1, VLFrom: "A", EL: "x", VLTo: "B"},
	}

	grown, err := rmpath.Extend(code, proj, pol)
	require.NoError(t, err)
	for ec := range grown {
		assert.False(t, ec.VIFrom == 1 && ec.VITo == 0, "must not regrow the already-consumed seed edge")
	}
}
