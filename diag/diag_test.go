package diag_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/0xalexb/hjarta-cfg/diag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		record   diag.Record
		expected string
	}{
		{
			name:     "positional",
			record:   diag.Record{Line: 3, Col: 7, Message: "Space in wrong place"},
			expected: "Error at line '3', character at '7' : Space in wrong place",
		},
		{
			name:     "plain message",
			record:   diag.Record{Message: `Cannot open file "sub.cfg".`},
			expected: `Cannot open file "sub.cfg".`,
		},
		{
			name:     "column zero still positional",
			record:   diag.Record{Line: 1, Col: 0, Message: "Invalid character error"},
			expected: "Error at line '1', character at '0' : Invalid character error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.record.String())
		})
	}
}

func TestList_AddAndReplayOrder(t *testing.T) {
	t.Parallel()

	var list diag.List

	list.Add(diag.Record{Line: 1, Col: 2, Message: "first"})
	list.Add(diag.Record{Message: "second"})

	var seen []string

	list.Replay(func(msg string) {
		seen = append(seen, msg)
	})

	require.Len(t, seen, 2)
	assert.Equal(t, "Error at line '1', character at '2' : first", seen[0])
	assert.Equal(t, "second", seen[1])
}

func TestList_ReplayNilSink(t *testing.T) {
	t.Parallel()

	list := diag.List{{Message: "ignored"}}

	assert.NotPanics(t, func() {
		list.Replay(nil)
	})
}

func TestWriterSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	sink := diag.WriterSink(&buf, "CFGParser")
	sink(`Section "A" already exist.`)

	assert.Equal(t, "CFGParser: Section \"A\" already exist.\n", buf.String())
}

func TestLoggerSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	sink := diag.LoggerSink(logger)
	sink("something happened")

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "something happened", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
}
