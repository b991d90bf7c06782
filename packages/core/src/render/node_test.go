package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppendChild_Reparents verifies appending moves a node between parents.
func TestAppendChild_Reparents(t *testing.T) {
	t.Parallel()

	a := NewElement("div")
	b := NewElement("div")
	child := NewElement("span")

	a.AppendChild(child)
	require.Same(t, a, child.Parent)
	require.Len(t, a.Children, 1)

	b.AppendChild(child)
	assert.Same(t, b, child.Parent)
	assert.Empty(t, a.Children)
	assert.Len(t, b.Children, 1)
}

// TestDetach_NoParent verifies detaching a free node is a no-op.
func TestDetach_NoParent(t *testing.T) {
	t.Parallel()

	n := NewElement("div")
	n.Detach()
	assert.Nil(t, n.Parent)
}

// TestString_Outline verifies the debug dump shape and attribute ordering.
func TestString_Outline(t *testing.T) {
	t.Parallel()

	root := NewElement("nav")
	root.SetAttr("class", "navbar").SetAttr("aria-label", "main")
	root.AppendChild(NewText("home"))

	want := "<nav aria-label=\"main\" class=\"navbar\">\n  \"home\"\n"
	assert.Equal(t, want, root.String())
}
