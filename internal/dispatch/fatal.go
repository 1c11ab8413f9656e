package dispatch

import (
	"faultline/internal/channel"
	"faultline/internal/fault"
)

// HandleShutdown is the fatal recovery path. The host's shutdown hook invokes
// it exactly once at process termination with the last observed fatal
// condition, or nil when the process is exiting cleanly. Repeated invocations
// are no-ops.
//
// It must never panic: it runs while the process is already unwinding, so
// every failure inside it degrades to "no enhancement".
func (d *Dispatcher) HandleShutdown(last *fault.Record) {
	if d.finished {
		return
	}
	d.finished = true

	// Free the reserved margin first so the remaining work has headroom
	// even when the triggering condition was memory exhaustion.
	d.reserved = nil

	defer func() {
		_ = recover()
	}()
	d.recoverFatal(last)
}

func (d *Dispatcher) recoverFatal(last *fault.Record) {
	if last == nil {
		return
	}
	if d.level == 0 || !last.Code.IsFatal() {
		return
	}

	if logger, ok := d.channels.Get(channel.Emergency); ok {
		logger.Emergency(last.Message, map[string]any{
			"code": uint32(last.Code),
			"file": last.File,
			"line": last.Line,
		})
	}

	if !d.display {
		return
	}
	handler := d.finalHandler()
	if handler == nil {
		// Best-effort only: no installed handler means nothing further
		// to do, not an error.
		return
	}

	fatal := fault.NewFatal(*last)
	if d.suggest != nil {
		if res, ok := d.suggest.UndefinedFunction(last.Message, last.File, last.Line); ok {
			handler.Handle(fatal.WithMessage(res.EnhancedMessage))
			return
		}
		if res, ok := d.suggest.SymbolNotFound(last.Message, last.File, last.Line); ok {
			handler.Handle(fatal.WithMessage(res.EnhancedMessage))
			return
		}
	}
	handler.Handle(fatal)
}

func (d *Dispatcher) finalHandler() FinalHandler {
	if d.handlers == nil {
		return nil
	}
	handler, ok := d.handlers.Current().(FinalHandler)
	if !ok {
		return nil
	}
	return handler
}
