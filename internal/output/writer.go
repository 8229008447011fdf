// Package output handles serialization of extraction results for the
// CLI.
package output

import "fmt"

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer serializes records to an output stream.
type Writer interface {
	// Write outputs a single record. JSON and YAML writers buffer
	// records until Flush; the JSONL writer emits one line per record
	// immediately.
	Write(record any) error

	// Flush ensures all buffered data is written.
	Flush() error

	// Close flushes and releases the writer.
	Close() error
}

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatJSONL, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported output format: %s (use json, jsonl or yaml)", s)
}
