package writer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gspan-go/gspan/dfscode"
	"github.com/gspan-go/gspan/embedding"
	"github.com/gspan-go/gspan/fixtures"
	"github.com/gspan-go/gspan/label"
	"github.com/gspan-go/gspan/writer"
)

func TestWriter_TransactionGraphMode(t *testing.T) {
	pol := label.New()
	g, err := fixtures.Triangle("G1", pol, "A", "B", "x", "e")
	require.NoError(t, err)
	_ = g

	arena := embedding.NewArena()
	h := arena.Seed(g, 0, 0, 1)
	proj := embedding.Projection{Arena: arena, Handles: []embedding.Handle{h}}
	code := dfscode.DFSCode{
		{VIFrom: 0, VITo: 1, VLFrom: "A", EL: "e", VLTo: "B"},
	}

	var buf bytes.Buffer
	w := writer.New(&buf)
	require.NoError(t, w.Emit(code, proj, pol))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "t # 1\n"))
	assert.Contains(t, out, "v 0 A\n")
	assert.Contains(t, out, "v 1 B\n")
	assert.Contains(t, out, "e 0 1 e\n")
	assert.Contains(t, out, "#found_in: G1\n")
	assert.True(t, strings.HasSuffix(out, "\n\n"))
}

func TestWriter_DFSCodeMode(t *testing.T) {
	pol := label.New()
	g, err := fixtures.Triangle("G1", pol, "A", "B", "x", "e")
	require.NoError(t, err)

	arena := embedding.NewArena()
	h := arena.Seed(g, 0, 0, 1)
	proj := embedding.Projection{Arena: arena, Handles: []embedding.Handle{h}}
	code := dfscode.DFSCode{
		{VIFrom: 0, VITo: 1, VLFrom: "A", EL: "e", VLTo: "B"},
	}

	var buf bytes.Buffer
	w := writer.New(&buf, writer.WithDFSCodeMode())
	require.NoError(t, w.Emit(code, proj, pol))

	assert.Equal(t, code.String()+"\n", buf.String())
}

func TestWriter_VerboseAppendsEmbeddings(t *testing.T) {
	pol := label.New()
	g, err := fixtures.Triangle("G1", pol, "A", "B", "x", "e")
	require.NoError(t, err)

	arena := embedding.NewArena()
	h := arena.Seed(g, 0, 0, 1)
	proj := embedding.Projection{Arena: arena, Handles: []embedding.Handle{h}}
	code := dfscode.DFSCode{
		{VIFrom: 0, VITo: 1, VLFrom: "A", EL: "e", VLTo: "B"},
	}

	var buf bytes.Buffer
	w := writer.New(&buf, writer.WithDFSCodeMode(), writer.WithVerbose())
	require.NoError(t, w.Emit(code, proj, pol))

	assert.Contains(t, buf.String(), "\tG1:")
}
