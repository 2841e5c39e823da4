package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gspan-go/gspan/fixtures"
	"github.com/gspan-go/gspan/label"
)

func TestCycle_TriangleHasThreeEdges(t *testing.T) {
	pol := label.New()
	g, err := fixtures.Cycle("G1", pol, []label.Label{"A", "B", "C"}, "x")
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestCycle_TooFewVertices(t *testing.T) {
	pol := label.New()
	_, err := fixtures.Cycle("G1", pol, []label.Label{"A", "B"}, "x")
	assert.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}

func TestPath_LinearChain(t *testing.T) {
	pol := label.New()
	g, err := fixtures.Path("G1", pol, []label.Label{"A", "B", "C", "D"}, "x")
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestStar_HubAndLeaves(t *testing.T) {
	pol := label.New()
	g, err := fixtures.Star("G1", pol, []label.Label{"Center", "A", "B", "C"}, "x")
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Len(t, g.Neighbors(0), 3)
}

func TestTriangle_Convenience(t *testing.T) {
	pol := label.New()
	g, err := fixtures.Triangle("G1", pol, "A", "B", "C", "x")
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
}
