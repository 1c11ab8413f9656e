// Package host provides a reference integration layer for the diagnostic
// core: an in-memory symbol table fed by a small declaration scanner, literal
// symbol loaders, and an explicitly driven process hook pair. Real hosts
// replace this package by bridging their native hooks to the same
// capabilities; the CLI and the tests run on it directly.
package host

import (
	"os"
	"sort"
	"strings"
)

const nameSeparator = `\`

// StaticTable is an in-memory suggest.SymbolTable. Functions and types are
// seeded up front or discovered by LoadFile.
type StaticTable struct {
	functions map[string]struct{}
	types     map[string]struct{}
}

// NewStaticTable returns an empty table.
func NewStaticTable() *StaticTable {
	return &StaticTable{
		functions: make(map[string]struct{}),
		types:     make(map[string]struct{}),
	}
}

// DefineFunction registers a fully qualified function name.
func (t *StaticTable) DefineFunction(name string) {
	name = strings.TrimPrefix(name, nameSeparator)
	if name != "" {
		t.functions[name] = struct{}{}
	}
}

// DefineType registers a fully qualified class/interface/trait name.
func (t *StaticTable) DefineType(name string) {
	name = strings.TrimPrefix(name, nameSeparator)
	if name != "" {
		t.types[name] = struct{}{}
	}
}

// Functions returns the defined function names in sorted order.
func (t *StaticTable) Functions() []string {
	names := make([]string, 0, len(t.functions))
	for name := range t.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TypeDefined reports whether the exact type name is defined. Case-sensitive,
// no loading.
func (t *StaticTable) TypeDefined(name string) bool {
	_, ok := t.types[strings.TrimPrefix(name, nameSeparator)]
	return ok
}

// LoadFile scans a source file for namespace and type declarations and
// registers every discovered fully qualified name.
func (t *StaticTable) LoadFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for _, decl := range scanDeclarations(string(src)) {
		t.DefineType(decl)
	}
	return nil
}
