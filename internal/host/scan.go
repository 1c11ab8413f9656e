package host

import "strings"

// typeKeywords are the declaration keywords the scanner recognizes. Modifier
// keywords before them (abstract, final) are skipped.
var typeKeywords = map[string]bool{
	"class":     true,
	"interface": true,
	"trait":     true,
}

var modifierKeywords = map[string]bool{
	"abstract": true,
	"final":    true,
}

// scanDeclarations extracts the fully qualified type names declared in a
// source file. It is a line-oriented token scan, not a parser: good enough to
// tell which naming convention a discovered file satisfies, which is all
// diagnosis needs.
func scanDeclarations(src string) []string {
	var (
		namespace string
		decls     []string
	)
	for _, line := range strings.Split(src, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		for i := 0; i < len(fields); i++ {
			word := fields[i]
			if word == "namespace" && i+1 < len(fields) {
				namespace = strings.TrimSuffix(cleanToken(fields[i+1]), nameSeparator)
				i++
				continue
			}
			if modifierKeywords[word] {
				continue
			}
			if !typeKeywords[word] || i+1 >= len(fields) {
				continue
			}
			name := cleanToken(fields[i+1])
			if name == "" {
				continue
			}
			if namespace != "" {
				name = namespace + nameSeparator + name
			}
			decls = append(decls, name)
			i++
		}
	}
	return decls
}

// cleanToken strips trailing punctuation a declaration token may carry
// (semicolons, braces, open parens).
func cleanToken(tok string) string {
	return strings.TrimRight(tok, ";{(")
}
