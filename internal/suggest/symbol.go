package suggest

import (
	"fmt"
	"sort"
	"strings"

	"faultline/internal/loader"
)

const symbolNotFoundSuffix = `" not found`

// symbolKinds are the capitalized kind words a symbol-not-found failure may
// open with. Order matters only for parsing, not for precedence.
var symbolKinds = []string{"Class", "Interface", "Trait"}

// SymbolNotFound enhances failures of the shape
// `<Kind> "<qualified>" not found` where Kind is Class, Interface or Trait.
// The base "did you forget a use statement" message is always produced on a
// match; candidates resolved from the loader search roots are additive.
func (s *Suggester) SymbolNotFound(msg, file string, line int) (*Result, bool) {
	kind, qualified, ok := parseSymbolNotFound(msg)
	if !ok {
		return nil, false
	}
	qualified = strings.TrimPrefix(qualified, loader.NameSeparator)
	if qualified == "" {
		return nil, false
	}
	prefix, base := splitQualified(qualified)
	kindWord := strings.ToLower(kind)

	var b strings.Builder
	if prefix != "" {
		fmt.Fprintf(&b, `Attempted to load %s "%s" from namespace "%s" in %s line %d.`, kindWord, base, prefix, file, line)
	} else {
		fmt.Fprintf(&b, `Attempted to load %s "%s" from the global namespace in %s line %d.`, kindWord, base, file, line)
	}
	fmt.Fprintf(&b, " Did you forget a use statement for this %s?", kindWord)

	candidates := s.symbolCandidates(base)
	if len(candidates) > 0 {
		b.WriteString(" Perhaps you need to add a use statement for one of the following class: " + strings.Join(candidates, ", ") + ".")
	}

	return &Result{EnhancedMessage: b.String(), Candidates: candidates}, true
}

func parseSymbolNotFound(msg string) (kind, qualified string, ok bool) {
	if !strings.HasSuffix(msg, symbolNotFoundSuffix) {
		return "", "", false
	}
	for _, k := range symbolKinds {
		open := k + ` "`
		if !strings.HasPrefix(msg, open) {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(msg, open), symbolNotFoundSuffix)
		if name == "" || strings.Contains(name, `"`) {
			return "", "", false
		}
		return k, name, true
	}
	return "", "", false
}

// symbolCandidates searches every directory of every current search root for
// a source file named after the bare symbol, loads each hit exactly once, and
// reports whichever naming convention (separator-joined or legacy
// underscore-joined path segments) now resolves to a defined type.
func (s *Suggester) symbolCandidates(base string) []string {
	if s.table == nil || s.loaders == nil {
		return nil
	}
	roots := s.loaders.ResolveSearchRoots()
	if len(roots) == 0 {
		return nil
	}
	var candidates []string
	seen := make(map[string]struct{})
	for _, m := range s.index.FindFiles(roots, base) {
		s.loadOnce(m.Path)
		for _, name := range []string{
			strings.Join(m.Segments, loader.NameSeparator),
			strings.Join(m.Segments, "_"),
		} {
			if !s.table.TypeDefined(name) {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			candidates = append(candidates, name)
			break
		}
	}
	sort.Strings(candidates)
	return candidates
}
