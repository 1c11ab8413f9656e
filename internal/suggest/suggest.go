// Package suggest implements the diagnostic enhancement heuristics applied to
// fatal "symbol not found" failures. Given a failure message and location, it
// proposes corrected symbol names by introspecting the host runtime's symbol
// table and, for missing classes, by scanning the registered symbol-loader
// search roots for plausibly matching source files.
//
// Both heuristics are pure with respect to an unchanged symbol table and fail
// open: a message that does not match a heuristic's shape yields no
// enhancement, never an error. The only mutable state is the set of source
// files already loaded during previous diagnoses, kept so repeated diagnosis
// never re-loads a file and trips duplicate-definition failures in the host.
package suggest

import (
	"path/filepath"
	"strings"

	"faultline/internal/loader"
)

// SymbolTable is the host-runtime introspection capability the heuristics
// read. All lookups are case-sensitive and exact.
type SymbolTable interface {
	// Functions returns the fully qualified names of every currently
	// defined function, global and namespaced.
	Functions() []string
	// TypeDefined reports whether a class, interface or trait with the
	// exact given name is defined. It must not trigger on-demand loading.
	TypeDefined(name string) bool
	// LoadFile materializes the definitions contained in a source file.
	LoadFile(path string) error
}

// Result is the outcome of one successful enhancement. It is transient:
// constructed per diagnosis, never persisted.
type Result struct {
	EnhancedMessage string
	Candidates      []string
}

// Suggester owns the enhancement heuristics. It holds the host capabilities
// plus the processed-file set that keeps repeated diagnosis idempotent.
type Suggester struct {
	table   SymbolTable
	loaders *loader.Registry
	index   *loader.Index
	loaded  map[string]struct{}
}

// New constructs a suggester over the given host capabilities. A nil index
// gets the default extension set.
func New(table SymbolTable, loaders *loader.Registry, index *loader.Index) *Suggester {
	if index == nil {
		index = loader.NewIndex()
	}
	return &Suggester{
		table:   table,
		loaders: loaders,
		index:   index,
		loaded:  make(map[string]struct{}),
	}
}

// loadOnce loads path through the symbol table at most once per process.
// Load failures are swallowed: the file simply contributes no definitions.
func (s *Suggester) loadOnce(path string) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		resolved = path
	}
	if _, done := s.loaded[resolved]; done {
		return
	}
	s.loaded[resolved] = struct{}{}
	_ = s.table.LoadFile(resolved)
}

// splitQualified splits a fully qualified name into its namespace prefix and
// final segment. The prefix is empty for global names.
func splitQualified(name string) (prefix, base string) {
	idx := strings.LastIndex(name, loader.NameSeparator)
	if idx < 0 {
		return "", name
	}
	return name[:idx], name[idx+len(loader.NameSeparator):]
}

func quoteList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, it := range items {
		quoted = append(quoted, `"`+it+`"`)
	}
	return strings.Join(quoted, ", ")
}
