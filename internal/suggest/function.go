package suggest

import (
	"fmt"
	"sort"
	"strings"

	"faultline/internal/loader"
)

const (
	undefinedFunctionPrefix = "Call to undefined function "
	undefinedFunctionSuffix = "()"
)

// UndefinedFunction enhances failures of the exact shape
// "Call to undefined function <qualified>()". It reports where the call was
// attempted and lists every defined function whose final name segment equals
// the missing one, fully qualified, as a candidate. A message of any other
// shape declines.
func (s *Suggester) UndefinedFunction(msg, file string, line int) (*Result, bool) {
	if !strings.HasPrefix(msg, undefinedFunctionPrefix) || !strings.HasSuffix(msg, undefinedFunctionSuffix) {
		return nil, false
	}
	qualified := strings.TrimSuffix(strings.TrimPrefix(msg, undefinedFunctionPrefix), undefinedFunctionSuffix)
	qualified = strings.TrimPrefix(qualified, loader.NameSeparator)
	if qualified == "" {
		return nil, false
	}
	prefix, base := splitQualified(qualified)

	var b strings.Builder
	if prefix != "" {
		fmt.Fprintf(&b, `Attempted to call function "%s" from namespace "%s" in %s line %d.`, base, prefix, file, line)
	} else {
		fmt.Fprintf(&b, `Attempted to call function "%s" from the global namespace in %s line %d.`, base, file, line)
	}

	candidates := s.functionCandidates(base)
	if len(candidates) > 0 {
		b.WriteString(" Did you mean to call: " + quoteList(candidates) + "?")
	}

	return &Result{EnhancedMessage: b.String(), Candidates: candidates}, true
}

// functionCandidates scans all currently defined functions, global and
// namespaced, for any whose final segment equals base.
func (s *Suggester) functionCandidates(base string) []string {
	if s.table == nil {
		return nil
	}
	var candidates []string
	seen := make(map[string]struct{})
	for _, fn := range s.table.Functions() {
		_, fnBase := splitQualified(strings.TrimPrefix(fn, loader.NameSeparator))
		if fnBase != base {
			continue
		}
		full := loader.NameSeparator + strings.TrimPrefix(fn, loader.NameSeparator)
		if _, dup := seen[full]; dup {
			continue
		}
		seen[full] = struct{}{}
		candidates = append(candidates, full)
	}
	sort.Strings(candidates)
	return candidates
}
