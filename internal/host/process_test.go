package host

import (
	"testing"

	"faultline/internal/fault"
)

func TestProcessRemembersLastFatal(t *testing.T) {
	p := NewProcess()
	p.Subscribe(func(rec fault.Record) (bool, error) { return false, nil })

	if _, err := p.Emit(fault.Record{Code: fault.LevelWarning, Message: "w"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Emit(fault.Record{Code: fault.LevelError, Message: "boom"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got *fault.Record
	p.OnShutdown(func(last *fault.Record) { got = last })
	p.Shutdown()

	if got == nil || got.Message != "boom" {
		t.Fatalf("expected last fatal condition, got %+v", got)
	}
}

func TestProcessCleanShutdown(t *testing.T) {
	p := NewProcess()
	fired := 0
	p.OnShutdown(func(last *fault.Record) {
		fired++
		if last != nil {
			t.Fatalf("expected nil condition on clean exit, got %+v", last)
		}
	})

	p.Shutdown()
	p.Shutdown()

	if fired != 1 {
		t.Fatalf("expected shutdown to fire once, got %d", fired)
	}
}

func TestDebugLoaderUnwraps(t *testing.T) {
	base := NewPrefixLoader(map[string][]string{`App\`: {"/src"}})
	deco := &DebugLoader{Inner: base}

	inner := deco.Unwrap()
	if inner != base {
		t.Fatalf("expected decorator to yield the underlying loader")
	}
	if deco.Unwraps != 1 {
		t.Fatalf("expected unwrap counter to increment, got %d", deco.Unwraps)
	}
}
