// Package dispatch implements the live error interception policy: per-error
// classification into suppressed, logged or escalated, plus the best-effort
// fatal recovery that runs once at process shutdown.
package dispatch

import (
	"runtime"
	"strconv"

	"faultline/internal/channel"
	"faultline/internal/fault"
	"faultline/internal/suggest"
)

// Config is the registration-time configuration.
type Config struct {
	// Level is the handling threshold bitmask. Nil means adopt the host
	// runtime's ambient reporting mask; zero disables all handling.
	Level *uint32
	// DisplayErrors controls whether errors are escalated (dispatch) and
	// enhanced (recovery). Registration defaults it to true; use
	// SetDisplayErrors to turn it off.
	DisplayErrors *bool
}

// Runtime exposes the host runtime's ambient reporting filter.
type Runtime interface {
	ReportingMask() uint32
}

// FinalHandler is the terminal display/exception handler contract consumed
// during fatal recovery.
type FinalHandler interface {
	Handle(err error)
}

// FinalHandlerSource yields whatever terminal handler the host currently has
// installed. Values that are not a FinalHandler are discarded.
type FinalHandlerSource interface {
	Current() any
}

// Suggester is the enhancement capability consumed by fatal recovery.
// *suggest.Suggester is the production implementation.
type Suggester interface {
	UndefinedFunction(msg, file string, line int) (*suggest.Result, bool)
	SymbolNotFound(msg, file string, line int) (*suggest.Result, bool)
}

// Deps are the collaborators the dispatcher reads. Any of them may be nil;
// missing capabilities degrade to "no action" rather than failing.
type Deps struct {
	Channels  *channel.Registry
	Runtime   Runtime
	Handlers  FinalHandlerSource
	Suggester Suggester
}

// reservedMarginSize is the headroom kept allocated between registration and
// fatal recovery so that message formatting and directory scans still have
// memory to work with after an out-of-memory termination.
const reservedMarginSize = 32 << 10

// maxStackFrames bounds the call-stack snapshot attached to deprecation log
// entries.
const maxStackFrames = 10

// Dispatcher is the live interception entry point. Configuration is written
// at registration and through the explicit setters only.
type Dispatcher struct {
	level    uint32
	display  bool
	channels *channel.Registry
	rt       Runtime
	handlers FinalHandlerSource
	suggest  Suggester

	reserved []byte
	finished bool
}

// Register wires the dispatcher once per process and allocates the reserved
// memory margin it owns until shutdown.
func Register(cfg Config, deps Deps) *Dispatcher {
	d := &Dispatcher{
		display:  true,
		channels: deps.Channels,
		rt:       deps.Runtime,
		handlers: deps.Handlers,
		suggest:  deps.Suggester,
		reserved: make([]byte, reservedMarginSize),
	}
	if d.channels == nil {
		d.channels = channel.NewRegistry()
	}
	d.SetLevel(cfg.Level)
	if cfg.DisplayErrors != nil {
		d.display = *cfg.DisplayErrors
	}
	return d
}

// SetLevel reconfigures the threshold. Nil adopts the ambient runtime mask.
func (d *Dispatcher) SetLevel(level *uint32) {
	if level != nil {
		d.level = *level
		return
	}
	d.level = d.reportingMask()
}

// SetDisplayErrors reconfigures escalation/enhancement visibility.
func (d *Dispatcher) SetDisplayErrors(display bool) {
	d.display = display
}

// SetChannel registers a named logging channel. Last write wins; channels are
// never removed.
func (d *Dispatcher) SetChannel(name string, logger channel.Logger) {
	d.channels.Set(name, logger)
}

// Handle classifies one intercepted error. The boolean reports whether the
// record was handled (the host must not run its default behavior); a non-nil
// error is the catchable fault to propagate to the call site that triggered
// the record.
func (d *Dispatcher) Handle(rec fault.Record) (bool, error) {
	if d.level == 0 {
		return false, nil
	}
	if rec.Code.IsDeprecation() {
		// Handled whether or not a channel is registered: deprecations
		// never propagate to the default runtime behavior.
		if logger, ok := d.channels.Get(channel.Deprecation); ok {
			logger.Warning(rec.Message, map[string]any{
				"kind":  "deprecation",
				"stack": captureStack(maxStackFrames),
			})
		}
		return true, nil
	}
	if d.display && d.reportingMask()&uint32(rec.Code) != 0 && d.level&uint32(rec.Code) != 0 {
		return true, fault.Raise(rec)
	}
	return false, nil
}

func (d *Dispatcher) reportingMask() uint32 {
	if d.rt == nil {
		return ^uint32(0)
	}
	return d.rt.ReportingMask()
}

// captureStack snapshots at most limit call frames. Only function names and
// locations are recorded; argument data never reaches the log.
func captureStack(limit int) []string {
	pcs := make([]uintptr, limit)
	// Skip captureStack, Handle and runtime.Callers itself.
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			stack = append(stack, frame.Function+" ("+frame.File+":"+strconv.Itoa(frame.Line)+")")
		}
		if !more || len(stack) >= limit {
			break
		}
	}
	return stack
}
