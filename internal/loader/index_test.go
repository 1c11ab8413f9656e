package loader

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("class stub"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFindFilesBuildsSegments(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "Models", "User.php"))

	ix := NewIndex()
	matches := ix.FindFiles([]SearchRoot{{Prefix: `App\`, Dirs: []string{src}}}, "User")

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	want := []string{"App", "Models", "User"}
	if !reflect.DeepEqual(matches[0].Segments, want) {
		t.Fatalf("expected segments %v, got %v", want, matches[0].Segments)
	}
}

func TestFindFilesIsCaseSensitive(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "user.php"))

	ix := NewIndex()
	if matches := ix.FindFiles([]SearchRoot{{Prefix: `App\`, Dirs: []string{src}}}, "User"); len(matches) != 0 {
		t.Fatalf("expected case-sensitive miss, got %+v", matches)
	}
}

func TestFindFilesSkipsMissingDirs(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "User.php"))

	roots := []SearchRoot{
		{Prefix: `Gone\`, Dirs: []string{filepath.Join(src, "does-not-exist")}},
		{Prefix: `Empty\`, Dirs: nil},
		{Prefix: `App\`, Dirs: []string{src}},
	}
	matches := NewIndex().FindFiles(roots, "User")
	if len(matches) != 1 {
		t.Fatalf("expected broken roots to be skipped silently, got %d matches", len(matches))
	}
}

func TestFindFilesHonorsExtensions(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "User.inc"))
	writeFile(t, filepath.Join(src, "User.txt"))

	ix := NewIndex(".inc")
	matches := ix.FindFiles([]SearchRoot{{Prefix: ``, Dirs: []string{src}}}, "User")
	if len(matches) != 1 {
		t.Fatalf("expected only the .inc file, got %d matches", len(matches))
	}
	if got := matches[0].Segments; !reflect.DeepEqual(got, []string{"User"}) {
		t.Fatalf("expected bare segments for empty prefix, got %v", got)
	}
}

func TestFindFilesEmptyBare(t *testing.T) {
	if matches := NewIndex().FindFiles([]SearchRoot{{Prefix: `A\`, Dirs: []string{"."}}}, ""); matches != nil {
		t.Fatalf("expected nil for empty name, got %+v", matches)
	}
}
