package host

import "faultline/internal/fault"

// Process is an explicitly driven stand-in for the runtime's native hooks.
// It implements dispatch.ErrorSource, dispatch.ShutdownSignal,
// dispatch.Runtime and dispatch.FinalHandlerSource. A real host wires its own
// interception primitives to the same four capabilities.
type Process struct {
	mask      uint32
	handler   any
	onError   func(fault.Record) (bool, error)
	onExit    func(last *fault.Record)
	lastFatal *fault.Record
	exited    bool
}

// NewProcess returns a process with an all-bits reporting mask.
func NewProcess() *Process {
	return &Process{mask: ^uint32(0)}
}

// SetReportingMask sets the ambient reporting filter.
func (p *Process) SetReportingMask(mask uint32) {
	p.mask = mask
}

// ReportingMask implements dispatch.Runtime.
func (p *Process) ReportingMask() uint32 {
	return p.mask
}

// SetFinalHandler installs the terminal handler capability. Any value is
// accepted; the dispatcher discards values of the wrong type.
func (p *Process) SetFinalHandler(handler any) {
	p.handler = handler
}

// Current implements dispatch.FinalHandlerSource.
func (p *Process) Current() any {
	return p.handler
}

// Subscribe implements dispatch.ErrorSource.
func (p *Process) Subscribe(handler func(fault.Record) (bool, error)) {
	p.onError = handler
}

// OnShutdown implements dispatch.ShutdownSignal.
func (p *Process) OnShutdown(handler func(last *fault.Record)) {
	p.onExit = handler
}

// Emit delivers one in-band error record to the subscriber, remembering it as
// the last fatal condition when it belongs to the fatal class. Without a
// subscriber the record is dropped, mirroring a runtime with no interceptor
// installed.
func (p *Process) Emit(rec fault.Record) (bool, error) {
	if rec.Code.IsFatal() {
		last := rec
		p.lastFatal = &last
	}
	if p.onError == nil {
		return false, nil
	}
	return p.onError(rec)
}

// RecordFatal notes a terminating condition that never reached the in-band
// hook, the way a hard runtime abort bypasses ordinary interception.
func (p *Process) RecordFatal(rec fault.Record) {
	p.lastFatal = &rec
}

// Shutdown fires the terminal notification once with the last observed fatal
// condition, or nil for a clean exit.
func (p *Process) Shutdown() {
	if p.exited {
		return
	}
	p.exited = true
	if p.onExit != nil {
		p.onExit(p.lastFatal)
	}
}
