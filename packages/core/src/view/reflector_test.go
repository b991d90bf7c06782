package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fec-go/packages/core/src/render"
)

func nopFactory(parent *render.Node) View { return nil }

//
// -----------------------------------------------------------------------------
// Reflector
// -----------------------------------------------------------------------------

// TestReflector_RegisterAndLookup verifies a registered factory and meta are retrievable.
func TestReflector_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := NewReflector()
	tok := NewToken("app.Root")
	meta := ComponentMeta{Selector: "app-root", ChangeDetection: ChangeDetectionStrategyDefault}

	require.True(t, r.RegisterComponentFactory(tok, meta, nopFactory))

	f, ok := r.Factory(tok)
	require.True(t, ok)
	assert.NotNil(t, f)

	m, ok := r.Meta(tok)
	require.True(t, ok)
	assert.Equal(t, meta, m)
}

// TestReflector_FirstRegistrationWins verifies re-registering a token is a rejected no-op.
func TestReflector_FirstRegistrationWins(t *testing.T) {
	t.Parallel()

	r := NewReflector()
	tok := NewToken("app.Root")

	require.True(t, r.RegisterComponentFactory(tok, ComponentMeta{Selector: "first"}, nopFactory))
	assert.False(t, r.RegisterComponentFactory(tok, ComponentMeta{Selector: "second"}, nopFactory))

	m, ok := r.Meta(tok)
	require.True(t, ok)
	assert.Equal(t, "first", m.Selector)
}

// TestReflector_UnknownToken verifies lookups for unregistered tokens report absence.
func TestReflector_UnknownToken(t *testing.T) {
	t.Parallel()

	r := NewReflector()
	f, ok := r.Factory(NewToken("missing"))
	assert.False(t, ok)
	assert.Nil(t, f)
}

// TestReflector_RegisteredComponents verifies listing is ordered by token name.
func TestReflector_RegisteredComponents(t *testing.T) {
	t.Parallel()

	r := NewReflector()
	b := NewToken("b")
	a := NewToken("a")
	r.RegisterComponentFactory(b, ComponentMeta{}, nopFactory)
	r.RegisterComponentFactory(a, ComponentMeta{}, nopFactory)

	got := r.RegisteredComponents()
	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
}

//
// -----------------------------------------------------------------------------
// ModuleRegistration
// -----------------------------------------------------------------------------

// TestModuleRegistration_InitOnce verifies Init performs side effects exactly once.
func TestModuleRegistration_InitOnce(t *testing.T) {
	t.Parallel()

	r := NewReflector()
	calls := 0
	m := NewModuleRegistration(func(*Reflector) { calls++ })

	m.Init(r)
	m.Init(r)
	m.Init(r)

	assert.Equal(t, 1, calls)
}

// TestModuleRegistration_WalksImportDAGOnce verifies a shared import registers once.
func TestModuleRegistration_WalksImportDAGOnce(t *testing.T) {
	t.Parallel()

	r := NewReflector()
	counts := map[string]int{}
	count := func(name string) func(*Reflector) {
		return func(*Reflector) { counts[name]++ }
	}

	// diamond: root imports left and right, both import shared
	shared := NewModuleRegistration(count("shared"))
	left := NewModuleRegistration(count("left"), shared)
	right := NewModuleRegistration(count("right"), shared)
	root := NewModuleRegistration(count("root"), left, right)

	root.Init(r)
	root.Init(r)

	assert.Equal(t, map[string]int{"root": 1, "left": 1, "right": 1, "shared": 1}, counts)
}

// TestModuleRegistration_RegistersBeforeImports verifies the module's own
// registration runs before its imports are walked.
func TestModuleRegistration_RegistersBeforeImports(t *testing.T) {
	t.Parallel()

	r := NewReflector()
	var order []string
	imported := NewModuleRegistration(func(*Reflector) { order = append(order, "imported") })
	root := NewModuleRegistration(func(*Reflector) { order = append(order, "root") }, imported)

	root.Init(r)

	assert.Equal(t, []string{"root", "imported"}, order)
}
