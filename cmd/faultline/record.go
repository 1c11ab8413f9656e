package main

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"faultline/internal/fault"
)

// Current schema version - increment when recordPayload format changes.
const recordSchemaVersion uint16 = 1

// recordPayload is the on-disk form of a captured error record, written by a
// host at termination and read back by `faultline diagnose --record`.
type recordPayload struct {
	// Schema version for safe rejection when the format changes
	Schema uint16

	Code    uint32
	Message string
	File    string
	Line    int
}

// readRecordDump decodes a msgpack record dump, rejecting unknown schemas.
func readRecordDump(path string) (*fault.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record dump %q: %w", path, err)
	}
	var payload recordPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode record dump %q: %w", path, err)
	}
	if payload.Schema != recordSchemaVersion {
		return nil, fmt.Errorf("record dump %q has schema %d, want %d", path, payload.Schema, recordSchemaVersion)
	}
	return &fault.Record{
		Code:    fault.Level(payload.Code),
		Message: payload.Message,
		File:    payload.File,
		Line:    payload.Line,
	}, nil
}

// writeRecordDump encodes a record for later offline diagnosis.
func writeRecordDump(path string, rec fault.Record) error {
	data, err := msgpack.Marshal(recordPayload{
		Schema:  recordSchemaVersion,
		Code:    uint32(rec.Code),
		Message: rec.Message,
		File:    rec.File,
		Line:    rec.Line,
	})
	if err != nil {
		return fmt.Errorf("failed to encode record dump: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record dump %q: %w", path, err)
	}
	return nil
}
