// Package diag holds the diagnostic records produced while parsing a
// configuration file and the sinks they can be replayed through.
//
// The parser never fails on malformed input; every finding becomes an
// ordered Record in a List. Callers inspect the List directly or replay
// it through a Sink of their choice.
package diag

import (
	"fmt"
	"io"
	"log/slog"
)

// Record is a single diagnostic finding.
// Line and Col are set for positional parse findings; a Record with
// Line == 0 carries a plain message (for example a failed file open).
type Record struct {
	Line    int
	Col     int
	Message string
}

// String renders the record the way the parser reports it.
func (r Record) String() string {
	if r.Line > 0 {
		return fmt.Sprintf("Error at line '%d', character at '%d' : %s", r.Line, r.Col, r.Message)
	}

	return r.Message
}

// List is an ordered collection of diagnostic records.
type List []Record

// Add appends a record to the list.
func (l *List) Add(r Record) {
	*l = append(*l, r)
}

// Replay sends every record through the sink in order.
// A nil sink is a no-op.
func (l List) Replay(sink Sink) {
	if sink == nil {
		return
	}

	for _, r := range l {
		sink(r.String())
	}
}

// Sink consumes one rendered diagnostic message.
type Sink func(message string)

// WriterSink returns a sink that writes each message to w as one line,
// prefixed with the given name.
func WriterSink(w io.Writer, name string) Sink {
	return func(message string) {
		_, _ = fmt.Fprintf(w, "%s: %s\n", name, message)
	}
}

// LoggerSink returns a sink that reports each message at warn level.
func LoggerSink(logger *slog.Logger) Sink {
	return func(message string) {
		logger.Warn(message)
	}
}
