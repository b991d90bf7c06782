package view

import (
	"sync"

	"fec-go/packages/core/src/render"
)

// View is the contract every generated view type implements. A view owns its
// root render node and its child views; destroying a view destroys all of its
// children.
//
// Lifecycle: construct, Build once, DetectChanges zero or more times, Destroy.
type View interface {
	// Build populates the view's children and injected dependencies and
	// appends their render nodes into the view's subtree.
	Build()

	// DetectChanges asks every direct child view to re-run its own change
	// detection, in declaration order, unconditionally. On the first
	// invocation it additionally runs each child component's one-time
	// initialization hook.
	DetectChanges()

	// Destroy tears down every direct child view in declaration order,
	// tolerating children that were never built. Safe to call repeatedly.
	Destroy()

	// InjectorGet answers a dependency lookup for the given token at the
	// given node index. It returns notFound when no provider is registered
	// for the pair; a miss is not an error.
	InjectorGet(token *Token, nodeIndex int, notFound any) any

	// RootNode returns the view's root render node.
	RootNode() *render.Node
}

// ComponentFactory constructs a fresh, unbuilt view for a component, appending
// its root node under parent when parent is non-nil.
type ComponentFactory func(parent *render.Node) View

// RenderType is the per-component-class render descriptor shared by every
// instance of the same generated view type.
type RenderType struct {
	ID            string
	Encapsulation ViewEncapsulation
	Styles        []string
	Data          map[string]string
}

// RenderTypeRef lazily memoizes a RenderType. The first Resolve wins; later
// calls return the memoized descriptor and never reset it. The zero value is
// ready to use as a package-level variable in generated code.
type RenderTypeRef struct {
	once sync.Once
	rt   *RenderType
}

// Resolve returns the memoized descriptor, calling create to build it on the
// first invocation only.
func (r *RenderTypeRef) Resolve(create func() *RenderType) *RenderType {
	r.once.Do(func() {
		r.rt = create()
	})
	return r.rt
}
