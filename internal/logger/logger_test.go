package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmichkarev/rrule/internal/config"
)

func TestConditionalSourceHandler(t *testing.T) {
	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		shouldHaveSource bool
	}{
		{"info without source", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn with source", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error with source", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"info with explicit source", slog.LevelInfo, []slog.Level{slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := NewConditionalSourceHandler(slog.NewTextHandler(&buf, nil), tt.showSourceLevels...)

			slog.New(handler).Log(context.Background(), tt.level, "test message")

			output := buf.String()
			assert.Equal(t, tt.shouldHaveSource, strings.Contains(output, "source="), output)
			if tt.shouldHaveSource {
				assert.Contains(t, output, "logger_test.go")
			}
		})
	}
}

func TestConditionalSourceHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewConditionalSourceHandler(slog.NewTextHandler(&buf, nil), slog.LevelWarn)

	slog.New(handler).With("component", "engine").WithGroup("rule").Warn("partial", "freq", "MONTHLY")

	output := buf.String()
	assert.Contains(t, output, "component=engine")
	assert.Contains(t, output, "rule.freq=MONTHLY")
	assert.Contains(t, output, "source=")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	log, err := New(config.LoggerConfig{Level: "info", Format: "json", OutputPath: path})
	require.NoError(t, err)

	log.Debug("dropped")
	log.Info("kept", "rule", "FREQ=DAILY")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "FREQ=DAILY", record["rule"])
	assert.NotContains(t, record, "source")
}

func TestNew_BadPath(t *testing.T) {
	_, err := New(config.LoggerConfig{OutputPath: filepath.Join(t.TempDir(), "missing", "log.txt")})
	assert.Error(t, err)
}
