package host

import "faultline/internal/loader"

// PrefixLoader is a literal prefix-to-directories symbol loader.
type PrefixLoader struct {
	mappings map[string][]string
}

// NewPrefixLoader copies the given mappings into a loader.
func NewPrefixLoader(mappings map[string][]string) *PrefixLoader {
	copied := make(map[string][]string, len(mappings))
	for prefix, dirs := range mappings {
		copied[prefix] = append([]string(nil), dirs...)
	}
	return &PrefixLoader{mappings: copied}
}

// PrefixMappings implements loader.Loader.
func (l *PrefixLoader) PrefixMappings() map[string][]string {
	return l.mappings
}

// DebugLoader decorates another loader, counting introspection calls. Search
// root resolution unwraps it via loader.Unwrapper, so wrapping never changes
// which roots are found.
type DebugLoader struct {
	Inner loader.Loader

	// Unwraps counts how many times resolution reached through the
	// decorator.
	Unwraps int
}

// Unwrap implements loader.Unwrapper.
func (l *DebugLoader) Unwrap() loader.Loader {
	l.Unwraps++
	return l.Inner
}

// PrefixMappings makes the decorator itself a loader. It is never consulted
// when resolution unwraps correctly.
func (l *DebugLoader) PrefixMappings() map[string][]string {
	if l.Inner == nil {
		return nil
	}
	return l.Inner.PrefixMappings()
}
