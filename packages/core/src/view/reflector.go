package view

import (
	"sort"
	"sync"
)

// ComponentMeta records the declarative facts the registry keeps alongside a
// component's factory.
type ComponentMeta struct {
	Selector        string
	Encapsulation   ViewEncapsulation
	ChangeDetection ChangeDetectionStrategy
}

type registration struct {
	meta    ComponentMeta
	factory ComponentFactory
}

// Reflector is the registry mapping component tokens to their generated
// factories. One process-wide instance exists (DefaultReflector); tests may
// create their own.
type Reflector struct {
	mu         sync.Mutex
	components map[*Token]registration
}

// NewReflector creates an empty registry.
func NewReflector() *Reflector {
	return &Reflector{components: map[*Token]registration{}}
}

var defaultReflector = NewReflector()

// DefaultReflector returns the process-wide registry generated modules
// register into.
func DefaultReflector() *Reflector { return defaultReflector }

// RegisterComponentFactory registers factory for token. The first registration
// for a token wins; it reports whether the registration was recorded.
func (r *Reflector) RegisterComponentFactory(token *Token, meta ComponentMeta, factory ComponentFactory) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.components[token]; ok {
		return false
	}
	r.components[token] = registration{meta: meta, factory: factory}
	return true
}

// Factory returns the factory registered for token.
func (r *Reflector) Factory(token *Token) (ComponentFactory, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.components[token]
	return reg.factory, ok
}

// Meta returns the metadata registered for token.
func (r *Reflector) Meta(token *Token) (ComponentMeta, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.components[token]
	return reg.meta, ok
}

// RegisteredComponents lists the registered tokens ordered by name.
func (r *Reflector) RegisteredComponents() []*Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	tokens := make([]*Token, 0, len(r.components))
	for t := range r.components {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].name < tokens[j].name })
	return tokens
}

// ModuleRegistration models one generated module's one-shot registration
// routine. Init registers the module's own components and then triggers the
// registrations of every statically imported module, walking the import DAG
// eagerly and exactly once regardless of how many modules share an import.
type ModuleRegistration struct {
	once     sync.Once
	register func(*Reflector)
	imports  []*ModuleRegistration
}

// NewModuleRegistration creates a registration that runs register once and
// then initializes each imported module.
func NewModuleRegistration(register func(*Reflector), imports ...*ModuleRegistration) *ModuleRegistration {
	return &ModuleRegistration{register: register, imports: imports}
}

// Init performs the module's registration side effects exactly once. Repeated
// calls, including re-entrant ones through a shared import, are no-ops.
func (m *ModuleRegistration) Init(r *Reflector) {
	m.once.Do(func() {
		if m.register != nil {
			m.register(r)
		}
		for _, imp := range m.imports {
			imp.Init(r)
		}
	})
}
