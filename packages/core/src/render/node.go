package render

import (
	"fmt"
	"sort"
	"strings"
)

// Node is a handle to a visual element in the host render tree.
// The layout and painting of nodes is the host renderer's concern;
// this type only models the tree structure views append into.
type Node struct {
	Tag      string
	Text     string
	Attrs    map[string]string
	Parent   *Node
	Children []*Node
}

// NewElement creates a detached element node.
func NewElement(tag string) *Node {
	return &Node{Tag: tag, Attrs: map[string]string{}}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Text: text}
}

// SetAttr sets an attribute on the node and returns the node for chaining.
func (n *Node) SetAttr(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[name] = value
	return n
}

// AppendChild appends child to the node's children, detaching it from any
// previous parent first. It returns the child.
func (n *Node) AppendChild(child *Node) *Node {
	if child.Parent != nil {
		child.Detach()
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Detach removes the node from its parent, if any.
func (n *Node) Detach() {
	p := n.Parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.Parent = nil
}

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// String renders the subtree as an indented outline, used for debug dumps.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.IsText() {
		fmt.Fprintf(sb, "%s%q\n", indent, n.Text)
		return
	}
	sb.WriteString(indent)
	sb.WriteString("<")
	sb.WriteString(n.Tag)
	// deterministic attribute order
	names := make([]string, 0, len(n.Attrs))
	for name := range n.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(sb, " %s=%q", name, n.Attrs[name])
	}
	sb.WriteString(">\n")
	for _, c := range n.Children {
		c.dump(sb, depth+1)
	}
}
