package reader_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gspan-go/gspan/label"
	"github.com/gspan-go/gspan/reader"
)

func TestReader_SingleTransaction(t *testing.T) {
	src := "t # G1\nv 0 A\nv 1 B\ne 0 1 x\n"
	r := reader.New(strings.NewReader(src), label.New())

	g, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "G1", g.Name())
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_MultipleTransactions(t *testing.T) {
	src := "t # G1\nv 0 A\nv 1 B\ne 0 1 x\nt # G2\nv 0 C\nv 1 D\ne 0 1 y\n"
	r := reader.New(strings.NewReader(src), label.New())

	g1, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "G1", g1.Name())

	g2, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "G2", g2.Name())

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_SkipsMalformedAndContinues(t *testing.T) {
	src := "t # Bad\nv 0 A\nv notanindex B\ne 0 1 x\nt # Good\nv 0 A\nv 1 B\ne 0 1 x\n"
	var skippedNames []string
	r := reader.New(strings.NewReader(src), label.New(), reader.WithDiagnostics(func(name string, err error) {
		skippedNames = append(skippedNames, name)
	}))

	g, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Good", g.Name())
	assert.Equal(t, []string{"Bad"}, skippedNames)
	assert.Equal(t, 1, r.Skipped())
}

func TestReader_SkipsVoidVertexWhenDisallowed(t *testing.T) {
	src := "t # Bad\nv 0 _\nv 1 A\ne 0 1 x\nt # Good\nv 0 A\nv 1 B\ne 0 1 x\n"
	pol := label.New(label.WithVoidToken("_")) // void disallowed by default
	r := reader.New(strings.NewReader(src), pol)

	g, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Good", g.Name())
	assert.Equal(t, 1, r.Skipped())
}

func TestReader_EmptyInput(t *testing.T) {
	r := reader.New(strings.NewReader(""), label.New())
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}
