package view

// Token identifies an injectable capability. Tokens compare by pointer
// identity, so generated code declares them once at package level and every
// lookup for the same capability goes through the same *Token.
type Token struct {
	name string
}

// NewToken creates a token with a debug name. The name carries no lookup
// semantics; two tokens with equal names are still distinct.
func NewToken(name string) *Token {
	return &Token{name: name}
}

// Name returns the token's debug name.
func (t *Token) Name() string { return t.name }

func (t *Token) String() string { return "Token(" + t.name + ")" }

type providerKey struct {
	token *Token
	index int
}

// ProviderTable maps (token, node index) pairs to provider instances. It
// replaces a linear scan over declaration triples with a direct lookup; the
// first-declared-wins rule is preserved by making the first Provide for a key
// stick.
type ProviderTable struct {
	providers map[providerKey]any
}

// NewProviderTable creates an empty table.
func NewProviderTable() *ProviderTable {
	return &ProviderTable{providers: map[providerKey]any{}}
}

// Provide registers value for (token, index). If the pair is already present
// the existing provider is kept.
func (pt *ProviderTable) Provide(token *Token, index int, value any) {
	key := providerKey{token: token, index: index}
	if _, ok := pt.providers[key]; ok {
		return
	}
	pt.providers[key] = value
}

// Get returns the provider registered for (token, index), or notFound when the
// pair is absent. A miss is part of the contract, not an error.
func (pt *ProviderTable) Get(token *Token, index int, notFound any) any {
	if v, ok := pt.providers[providerKey{token: token, index: index}]; ok {
		return v
	}
	return notFound
}

// Len returns the number of registered providers.
func (pt *ProviderTable) Len() int { return len(pt.providers) }
