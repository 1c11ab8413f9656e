package channel

import (
	"sort"

	"go.uber.org/zap"
)

// ZapLogger adapts a *zap.Logger to the Logger capability. Metadata keys are
// emitted as structured fields in sorted order for deterministic output.
type ZapLogger struct {
	base *zap.Logger
}

// NewZapLogger wraps base. A nil base yields a no-op adapter.
func NewZapLogger(base *zap.Logger) *ZapLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &ZapLogger{base: base}
}

func (z *ZapLogger) Warning(msg string, meta map[string]any) {
	z.base.Warn(msg, metaFields(meta)...)
}

func (z *ZapLogger) Emergency(msg string, meta map[string]any) {
	fields := append(metaFields(meta), zap.String("severity", "emergency"))
	z.base.Error(msg, fields...)
}

func metaFields(meta map[string]any) []zap.Field {
	if len(meta) == 0 {
		return nil
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, meta[k]))
	}
	return fields
}

// Nop is a Logger that drops everything. Useful for disabling a channel in
// place without unregistering it.
type Nop struct{}

func (Nop) Warning(string, map[string]any)   {}
func (Nop) Emergency(string, map[string]any) {}
