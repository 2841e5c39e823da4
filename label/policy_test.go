package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gspan-go/gspan/label"
)

func TestPolicy_Defaults(t *testing.T) {
	p := label.New()
	assert.False(t, p.Directed())
	assert.False(t, p.VoidAllowed())
	assert.True(t, p.IsVoid(label.Label("")))
	assert.False(t, p.IsVoid(label.Label("A")))
}

func TestPolicy_VoidSortsSmallest(t *testing.T) {
	p := label.New()
	assert.True(t, p.Less(label.Label(""), label.Label("A")))
	assert.False(t, p.Less(label.Label("A"), label.Label("")))
	assert.Equal(t, 0, p.Compare(label.Label(""), label.Label("")))
}

func TestPolicy_ConcreteOrder(t *testing.T) {
	p := label.New()
	assert.True(t, p.Less(label.Label("A"), label.Label("B")))
	assert.False(t, p.Less(label.Label("B"), label.Label("A")))
	assert.Equal(t, 0, p.Compare(label.Label("x"), label.Label("x")))
}

func TestPolicy_CustomVoidToken(t *testing.T) {
	p := label.New(label.WithVoidToken("_"), label.WithVoidAllowed())
	assert.True(t, p.VoidAllowed())
	assert.True(t, p.IsVoid(label.Label("_")))
	assert.False(t, p.IsVoid(label.Label("")))
}

func TestPolicy_DirectedOption(t *testing.T) {
	p := label.New(label.WithDirected())
	assert.True(t, p.Directed())
}
