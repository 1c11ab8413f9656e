// Package channel holds the process-wide registry of named diagnostic log
// sinks. The core only depends on the Logger capability; concrete backends
// (zap, test doubles) live behind it.
package channel

// Well-known channel names read by the dispatch and recovery layers.
const (
	Deprecation = "deprecation"
	Emergency   = "emergency"
)

// Logger is the write-side capability a channel backend must provide. Calls
// are best-effort fire-and-forget: implementations must not call back into
// the dispatcher.
type Logger interface {
	Warning(msg string, meta map[string]any)
	Emergency(msg string, meta map[string]any)
}

// Registry maps channel names to loggers. Entries are only ever added or
// replaced (last write wins), never removed. Writes happen during the
// single-threaded registration phase; reads thereafter.
type Registry struct {
	loggers map[string]Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]Logger)}
}

// Set registers a logger under name, replacing any previous one.
func (r *Registry) Set(name string, logger Logger) {
	if logger == nil {
		return
	}
	r.loggers[name] = logger
}

// Get returns the logger registered under name, if any.
func (r *Registry) Get(name string) (Logger, bool) {
	logger, ok := r.loggers[name]
	return logger, ok
}

// Len returns the number of registered channels.
func (r *Registry) Len() int {
	return len(r.loggers)
}
