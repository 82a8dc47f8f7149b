package cfg

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/hjarta-cfg/fetch"
)

func TestOptions_Apply(t *testing.T) {
	t.Parallel()

	fetcher := fetch.Map{}
	sink := func(string) {}
	logger := slog.Default()

	var options Options

	for _, apply := range []Option{
		WithBasePath("conf"),
		WithFile("main.cfg"),
		WithFetcher(fetcher),
		WithSink(sink),
		WithLogger(logger),
		WithLogLevel("debug"),
	} {
		apply(&options)
	}

	assert.Equal(t, "conf", options.BasePath)
	assert.Equal(t, "main.cfg", options.File)
	assert.NotNil(t, options.Fetcher)
	assert.NotNil(t, options.Sink)
	assert.Same(t, logger, options.Logger)
	assert.Equal(t, "debug", options.LogLevel)
}

func TestNew_DefaultSinkWritesName(t *testing.T) {
	t.Parallel()

	// The default sink prefixes messages with the parser name on
	// standard output; use an explicit logger here to keep the test
	// self-contained.
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	parser := New("game", WithLogger(logger))

	parser.GetAttributes("gone")

	assert.Contains(t, buf.String(), `Section \"gone\" is not exist!`)
}

func TestNew_SinkTakesPrecedenceOverLogger(t *testing.T) {
	t.Parallel()

	var fromSink []string

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))

	parser := New("game",
		WithSink(func(msg string) { fromSink = append(fromSink, msg) }),
		WithLogger(logger),
	)

	parser.GetAttributes("gone")

	require.Len(t, fromSink, 1)
	assert.Empty(t, buf.String())
}
