package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// NameSeparator is the namespace separator of the hosted runtime's symbol
// names.
const NameSeparator = `\`

// DefaultExtensions is the source extension list used when an Index is
// constructed without an explicit one.
var DefaultExtensions = []string{".php"}

// Match is one candidate source file located under a search root.
type Match struct {
	// Path is the file's path on disk.
	Path string
	// Segments are the root's prefix segments followed by the file's
	// directory segments relative to the root, ending with the bare file
	// name (extension stripped). Joining them with a separator yields the
	// symbol name each naming convention predicts.
	Segments []string
}

// Index scans search-root directories for source files whose name equals a
// bare symbol name. All matching is case-sensitive and exact; there is no
// fuzzy or near-miss matching.
type Index struct {
	extensions []string
}

// NewIndex returns an index matching the given file extensions (each
// including the leading dot). With none given, DefaultExtensions applies.
func NewIndex(extensions ...string) *Index {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Index{extensions: extensions}
}

// FindFiles descends recursively through every directory of every root and
// collects files named exactly "<bare>.<ext>". Roots whose directories do not
// resolve to a real path are skipped silently, as are unreadable
// subdirectories: diagnosis is best-effort and must not fail on a broken
// search path.
func (ix *Index) FindFiles(roots []SearchRoot, bare string) []Match {
	if bare == "" {
		return nil
	}
	wanted := make([]string, 0, len(ix.extensions))
	for _, ext := range ix.extensions {
		wanted = append(wanted, bare+ext)
	}

	var matches []Match
	for _, root := range roots {
		prefixSegs := splitName(root.Prefix)
		for _, dir := range root.Dirs {
			resolved, err := filepath.Abs(dir)
			if err != nil {
				continue
			}
			info, err := os.Stat(resolved)
			if err != nil || !info.IsDir() {
				continue
			}
			_ = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					if d != nil && d.IsDir() {
						return fs.SkipDir
					}
					return nil
				}
				if d.IsDir() {
					return nil
				}
				name := d.Name()
				for _, w := range wanted {
					if name != w {
						continue
					}
					rel, relErr := filepath.Rel(resolved, path)
					if relErr != nil {
						return nil
					}
					segs := append([]string(nil), prefixSegs...)
					segs = append(segs, relSegments(rel)...)
					matches = append(matches, Match{Path: path, Segments: segs})
					return nil
				}
				return nil
			})
		}
	}
	return matches
}

// splitName splits a qualified symbol name or prefix into its non-empty
// segments.
func splitName(name string) []string {
	parts := strings.Split(name, NameSeparator)
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// relSegments converts a root-relative file path into name segments with the
// extension stripped from the final one.
func relSegments(rel string) []string {
	rel = filepath.ToSlash(rel)
	parts := strings.Split(rel, "/")
	if len(parts) > 0 {
		last := parts[len(parts)-1]
		parts[len(parts)-1] = strings.TrimSuffix(last, filepath.Ext(last))
	}
	return parts
}
