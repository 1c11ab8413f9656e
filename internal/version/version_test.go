package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Fatalf("expected a default version")
	}
	// The default carries the three dotted components even when color
	// escapes are embedded.
	if strings.Count(Version, ".") < 2 {
		t.Fatalf("expected semver-shaped default, got %q", Version)
	}
}

func TestVersionLdflagsOverride(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123def456"
	BuildDate = "2026-08-29T10:30:00Z"

	if GitCommit != "abc123def456" || BuildDate != "2026-08-29T10:30:00Z" {
		t.Fatalf("expected build metadata to be overridable, got %q / %q", GitCommit, BuildDate)
	}
}
