package dispatch

import "faultline/internal/fault"

// ErrorSource delivers intercepted in-band error records. The host
// integration layer bridges the runtime's native error hook to this
// interface.
type ErrorSource interface {
	Subscribe(handler func(fault.Record) (bool, error))
}

// ShutdownSignal delivers the single terminal notification at process exit,
// carrying the last observed fatal condition if any.
type ShutdownSignal interface {
	OnShutdown(handler func(last *fault.Record))
}

// Install subscribes the dispatcher to the host's hooks. Either hook may be
// nil when the host only uses part of the pipeline.
func (d *Dispatcher) Install(src ErrorSource, sig ShutdownSignal) {
	if src != nil {
		src.Subscribe(d.Handle)
	}
	if sig != nil {
		sig.OnShutdown(d.HandleShutdown)
	}
}
