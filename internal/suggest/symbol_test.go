package suggest

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"faultline/internal/loader"
)

type mapLoader map[string][]string

func (l mapLoader) PrefixMappings() map[string][]string { return l }

func writeSource(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("class stub"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func legacyConventionFixture(t *testing.T) (*Suggester, *fakeTable) {
	t.Helper()
	src := t.TempDir()
	writeSource(t, filepath.Join(src, "Models", "User.php"))

	// The discovered file defines the underscore-convention name only,
	// and only once it has been loaded.
	table := &fakeTable{
		types: map[string]bool{},
		onLoad: func(ft *fakeTable, path string) {
			ft.types["App_Models_User"] = true
		},
	}
	loaders := loader.NewRegistry()
	loaders.Add(mapLoader{`App\`: {src}})
	return New(table, loaders, nil), table
}

func TestSymbolNotFoundResolvesLegacyConvention(t *testing.T) {
	s, table := legacyConventionFixture(t)

	res, ok := s.SymbolNotFound(`Class "App\Models\User" not found`, "/app/main.src", 9)
	if !ok {
		t.Fatalf("expected heuristic to match")
	}
	if !strings.Contains(res.EnhancedMessage, `Attempted to load class "User" from namespace "App\Models" in /app/main.src line 9.`) {
		t.Fatalf("unexpected message: %q", res.EnhancedMessage)
	}
	if !strings.Contains(res.EnhancedMessage, "Did you forget a use statement for this class?") {
		t.Fatalf("expected use-statement hint: %q", res.EnhancedMessage)
	}
	if want := []string{"App_Models_User"}; !reflect.DeepEqual(res.Candidates, want) {
		t.Fatalf("expected %v, got %v", want, res.Candidates)
	}
	if !strings.Contains(res.EnhancedMessage, "Perhaps you need to add a use statement for one of the following class: App_Models_User.") {
		t.Fatalf("expected candidate suffix: %q", res.EnhancedMessage)
	}
	if len(table.loads) != 1 {
		t.Fatalf("expected the discovered file to be loaded once, got %d loads", len(table.loads))
	}
}

func TestSymbolNotFoundIsIdempotent(t *testing.T) {
	s, table := legacyConventionFixture(t)

	first, ok := s.SymbolNotFound(`Class "App\Models\User" not found`, "f", 1)
	if !ok {
		t.Fatalf("expected first diagnosis to match")
	}
	second, ok := s.SymbolNotFound(`Class "App\Models\User" not found`, "f", 1)
	if !ok {
		t.Fatalf("expected second diagnosis to match")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
	if len(table.loads) != 1 {
		t.Fatalf("expected a single load across repeated diagnoses, got %d", len(table.loads))
	}
}

func TestSymbolNotFoundPrefersSeparatorConvention(t *testing.T) {
	src := t.TempDir()
	writeSource(t, filepath.Join(src, "Models", "User.php"))

	table := &fakeTable{
		types: map[string]bool{},
		onLoad: func(ft *fakeTable, path string) {
			ft.types[`App\Models\User`] = true
			ft.types["App_Models_User"] = true
		},
	}
	loaders := loader.NewRegistry()
	loaders.Add(mapLoader{`App\`: {src}})
	s := New(table, loaders, nil)

	res, ok := s.SymbolNotFound(`Class "App\Models\User" not found`, "f", 1)
	if !ok {
		t.Fatalf("expected heuristic to match")
	}
	if want := []string{`App\Models\User`}; !reflect.DeepEqual(res.Candidates, want) {
		t.Fatalf("expected separator convention to win, got %v", res.Candidates)
	}
}

func TestSymbolNotFoundBaseMessageWithoutCandidates(t *testing.T) {
	s := New(&fakeTable{types: map[string]bool{}}, loader.NewRegistry(), nil)

	res, ok := s.SymbolNotFound(`Interface "Contracts" not found`, "/app/a.src", 2)
	if !ok {
		t.Fatalf("expected heuristic to match")
	}
	want := `Attempted to load interface "Contracts" from the global namespace in /app/a.src line 2. Did you forget a use statement for this interface?`
	if res.EnhancedMessage != want {
		t.Fatalf("expected %q, got %q", want, res.EnhancedMessage)
	}
	if len(res.Candidates) != 0 {
		t.Fatalf("expected no candidates, got %v", res.Candidates)
	}
}

func TestSymbolNotFoundDeclines(t *testing.T) {
	s := New(&fakeTable{types: map[string]bool{}}, loader.NewRegistry(), nil)
	for _, msg := range []string{
		`Function "foo" not found`,        // unknown kind word
		`class "Foo" not found`,           // kind must be capitalized
		`Class "Foo" is abstract`,         // wrong suffix
		`Something App\Models not found`,  // no quoted name
		`Trait "" not found`,              // empty name
		`Call to undefined function a()`,  // other heuristic's shape
	} {
		if _, ok := s.SymbolNotFound(msg, "f", 1); ok {
			t.Fatalf("expected decline for %q", msg)
		}
	}
}

func TestSymbolNotFoundTraitKind(t *testing.T) {
	s := New(&fakeTable{types: map[string]bool{}}, loader.NewRegistry(), nil)

	res, ok := s.SymbolNotFound(`Trait "App\Concerns\Sortable" not found`, "f", 4)
	if !ok {
		t.Fatalf("expected heuristic to match")
	}
	if !strings.Contains(res.EnhancedMessage, `Attempted to load trait "Sortable" from namespace "App\Concerns"`) {
		t.Fatalf("unexpected message: %q", res.EnhancedMessage)
	}
}
