// Package loader resolves symbol search roots from the host's registered
// symbol loaders and locates candidate source files beneath them. It is only
// consulted during diagnosis, never on the normal execution path.
package loader

import "sort"

// Loader is the capability a registered symbol loader must expose to take
// part in diagnosis: its declared name-prefix to directory mappings.
type Loader interface {
	PrefixMappings() map[string][]string
}

// Unwrapper is implemented by debug or instrumentation decorators wrapping a
// real loader. Resolution unwraps until it reaches the underlying loader.
type Unwrapper interface {
	Unwrap() Loader
}

// SearchRoot describes where symbols under a name prefix may physically live.
type SearchRoot struct {
	Prefix string
	Dirs   []string
}

// maxUnwrapDepth bounds decorator chains so a cyclic Unwrap cannot hang
// diagnosis.
const maxUnwrapDepth = 32

// Registry holds the loaders registered by the host, in registration order.
type Registry struct {
	loaders []Loader
}

// NewRegistry returns an empty loader registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a loader. Nil loaders are ignored.
func (r *Registry) Add(l Loader) {
	if l == nil {
		return
	}
	r.loaders = append(r.loaders, l)
}

// ResolveSearchRoots derives the current search roots by introspecting every
// registered loader. It is recomputed on each call: loader registration can
// change over the process lifetime and stale roots would produce wrong
// suggestions. Prefixes within one loader are sorted for a deterministic
// scan order; loaders keep their registration order.
func (r *Registry) ResolveSearchRoots() []SearchRoot {
	var roots []SearchRoot
	for _, l := range r.loaders {
		base := unwrap(l)
		if base == nil {
			continue
		}
		mappings := base.PrefixMappings()
		if len(mappings) == 0 {
			continue
		}
		prefixes := make([]string, 0, len(mappings))
		for prefix := range mappings {
			prefixes = append(prefixes, prefix)
		}
		sort.Strings(prefixes)
		for _, prefix := range prefixes {
			roots = append(roots, SearchRoot{Prefix: prefix, Dirs: mappings[prefix]})
		}
	}
	return roots
}

func unwrap(l Loader) Loader {
	for i := 0; i < maxUnwrapDepth; i++ {
		inner, ok := l.(Unwrapper)
		if !ok {
			return l
		}
		next := inner.Unwrap()
		if next == nil {
			return l
		}
		l = next
	}
	return l
}
