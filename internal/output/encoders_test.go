package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Date string `json:"date" yaml:"date"`
	Dish string `json:"dish" yaml:"dish"`
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"json", "jsonl", "yaml"} {
		f, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, Format(valid), f)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestJSONWriterSingleRecord(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON)
	require.NoError(t, err)

	require.NoError(t, w.Write(sample{Date: "2026-08-17", Dish: "Bulgureintopf"}))
	require.NoError(t, w.Close())

	out := buf.String()
	// A single record is emitted directly, not wrapped in an array.
	assert.True(t, strings.HasPrefix(out, "{"), "got: %s", out)
	assert.Contains(t, out, `"dish": "Bulgureintopf"`)
}

func TestJSONWriterMultipleRecords(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON)
	require.NoError(t, err)

	require.NoError(t, w.Write(sample{Date: "2026-08-17", Dish: "Bulgureintopf"}))
	require.NoError(t, w.Write(sample{Date: "2026-08-18", Dish: "Rindergulasch"}))
	require.NoError(t, w.Close())

	assert.True(t, strings.HasPrefix(buf.String(), "["), "got: %s", buf.String())
}

func TestJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSONL)
	require.NoError(t, err)

	require.NoError(t, w.Write(sample{Date: "2026-08-17", Dish: "Bulgureintopf"}))
	require.NoError(t, w.Write(sample{Date: "2026-08-18", Dish: "Rindergulasch"}))
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Bulgureintopf")
	assert.Contains(t, lines[1], "Rindergulasch")
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatYAML)
	require.NoError(t, err)

	require.NoError(t, w.Write(sample{Date: "2026-08-17", Dish: "Bulgureintopf"}))
	require.NoError(t, w.Close())

	assert.Contains(t, buf.String(), "dish: Bulgureintopf")
}
