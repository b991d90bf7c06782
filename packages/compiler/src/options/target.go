package options

import (
	"sort"
	"sync"
)

// Target abstracts over the output runtimes a compilation can address. A
// target names the core libraries it requires beyond what the program
// imports; the compiler uses that set when closing the SDK summary.
type Target interface {
	Name() string
	RequiredLibraries() []string
}

// VMTarget is the physical default: a native virtual-machine runtime.
type VMTarget struct{}

func (VMTarget) Name() string { return "vm" }

func (VMTarget) RequiredLibraries() []string {
	return []string{"core", "async", "collection", "isolate", "io"}
}

// WebTarget addresses a browser runtime; it swaps the native IO surface for
// the web interop libraries.
type WebTarget struct{}

func (WebTarget) Name() string { return "web" }

func (WebTarget) RequiredLibraries() []string {
	return []string{"core", "async", "collection", "html", "js_interop"}
}

var (
	targetMu sync.Mutex
	targets  = map[string]Target{}
)

func init() {
	RegisterTarget(VMTarget{})
	RegisterTarget(WebTarget{})
}

// RegisterTarget makes a target selectable by name. Later registrations for
// the same name replace earlier ones.
func RegisterTarget(t Target) {
	targetMu.Lock()
	defer targetMu.Unlock()
	targets[t.Name()] = t
}

// LookupTarget returns the target registered under name.
func LookupTarget(name string) (Target, bool) {
	targetMu.Lock()
	defer targetMu.Unlock()
	t, ok := targets[name]
	return t, ok
}

// TargetNames lists the registered target names in sorted order.
func TargetNames() []string {
	targetMu.Lock()
	defer targetMu.Unlock()
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultTarget returns the physical default target.
func DefaultTarget() Target { return VMTarget{} }
