package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON:
		return &jsonWriter{w: bufio.NewWriter(w)}, nil
	case FormatJSONL:
		return &jsonlWriter{w: bufio.NewWriter(w)}, nil
	case FormatYAML:
		return &yamlWriter{w: bufio.NewWriter(w)}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// jsonWriter buffers records and flushes them as one pretty-printed
// JSON document: a single record directly, several as an array.
type jsonWriter struct {
	w     *bufio.Writer
	items []any
}

func (w *jsonWriter) Write(record any) error {
	w.items = append(w.items, record)
	return nil
}

func (w *jsonWriter) Flush() error {
	var doc any = w.items
	if len(w.items) == 1 {
		doc = w.items[0]
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *jsonWriter) Close() error {
	return w.Flush()
}

// jsonlWriter emits one compact JSON line per record.
type jsonlWriter struct {
	w *bufio.Writer
}

func (w *jsonlWriter) Write(record any) error {
	out, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *jsonlWriter) Flush() error {
	return w.w.Flush()
}

func (w *jsonlWriter) Close() error {
	return w.Flush()
}

// yamlWriter buffers records and flushes them as one YAML document.
type yamlWriter struct {
	w     *bufio.Writer
	items []any
}

func (w *yamlWriter) Write(record any) error {
	w.items = append(w.items, record)
	return nil
}

func (w *yamlWriter) Flush() error {
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)

	var doc any = w.items
	if len(w.items) == 1 {
		doc = w.items[0]
	}
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *yamlWriter) Close() error {
	return w.Flush()
}
