package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/0xalexb/hjarta-cfg/logging"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.Config{Level: "INFO"}, &buf)

	logger.Info("test message", slog.String("key", "value"))

	var entry map[string]any

	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err, "output should be valid JSON")
	require.Equal(t, "test message", entry["msg"])
	require.Equal(t, "value", entry["key"])
	require.Equal(t, "INFO", entry["level"])
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		configLevel string
		logLevel    slog.Level
		shouldLog   bool
	}{
		{
			name:        "debug level logs debug",
			configLevel: "DEBUG",
			logLevel:    slog.LevelDebug,
			shouldLog:   true,
		},
		{
			name:        "info level does not log debug",
			configLevel: "INFO",
			logLevel:    slog.LevelDebug,
			shouldLog:   false,
		},
		{
			name:        "warning alias maps to warn",
			configLevel: "WARNING",
			logLevel:    slog.LevelWarn,
			shouldLog:   true,
		},
		{
			name:        "error level does not log info",
			configLevel: "ERROR",
			logLevel:    slog.LevelInfo,
			shouldLog:   false,
		},
		{
			name:        "lowercase level is accepted",
			configLevel: "debug",
			logLevel:    slog.LevelDebug,
			shouldLog:   true,
		},
		{
			name:        "empty level defaults to info",
			configLevel: "",
			logLevel:    slog.LevelInfo,
			shouldLog:   true,
		},
		{
			name:        "invalid level defaults to info",
			configLevel: "INVALID",
			logLevel:    slog.LevelInfo,
			shouldLog:   true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewLogger(logging.Config{Level: testCase.configLevel}, &buf)

			logger.Log(context.Background(), testCase.logLevel, "test message")

			if testCase.shouldLog {
				require.NotEmpty(t, buf.String(), "log should be written")
			} else {
				require.Empty(t, buf.String(), "log should not be written")
			}
		})
	}
}
