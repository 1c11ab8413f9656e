package fault

import "fmt"

// Record captures a single runtime error as observed by the interception
// hooks. It is immutable once captured: the dispatcher and the recovery path
// only read it.
type Record struct {
	Code    Level
	Message string
	File    string
	Line    int
	Context map[string]any
}

// RaisedError is the catchable fault the dispatcher escalates for errors the
// host runtime would otherwise report silently. The triggering call site can
// intercept it through ordinary error handling.
type RaisedError struct {
	Code    Level
	File    string
	Line    int
	Context map[string]any
	msg     string
}

// Raise converts a record into the catchable fault, formatting the message as
// "<Label>: <message> in <file> line <line>".
func Raise(rec Record) *RaisedError {
	return &RaisedError{
		Code:    rec.Code,
		File:    rec.File,
		Line:    rec.Line,
		Context: rec.Context,
		msg:     fmt.Sprintf("%s: %s in %s line %d", rec.Code.Label(), rec.Message, rec.File, rec.Line),
	}
}

func (e *RaisedError) Error() string {
	return e.msg
}

// FatalError wraps the last fatal condition for the final handler. The
// message may later be replaced with an enhanced variant; code and location
// always refer to the original condition.
type FatalError struct {
	Code Level
	File string
	Line int
	msg  string
}

// NewFatal wraps a record observed at shutdown.
func NewFatal(rec Record) *FatalError {
	return &FatalError{
		Code: rec.Code,
		File: rec.File,
		Line: rec.Line,
		msg:  rec.Message,
	}
}

// WithMessage returns a copy carrying an enhanced message in place of the raw
// one.
func (e *FatalError) WithMessage(msg string) *FatalError {
	clone := *e
	clone.msg = msg
	return &clone
}

func (e *FatalError) Error() string {
	return e.msg
}
