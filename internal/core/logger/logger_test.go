package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func jsonLogger(t *testing.T, level string) (*zap.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, cleanup := Build(Options{Level: level, JSON: true, Output: &buf})
	t.Cleanup(cleanup)
	return l, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestBuild_JSONLevelFilter(t *testing.T) {
	l, buf := jsonLogger(t, "warn")
	l.Info("dropped")
	l.Warn("kept", zap.String("k", "v"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["msg"])
	assert.Equal(t, "v", lines[0]["k"])
	assert.Contains(t, lines[0], "ts")
}

func TestBuild_BadLevelFallsBackToInfo(t *testing.T) {
	l, buf := jsonLogger(t, "verbose")
	l.Debug("dropped")
	l.Info("kept")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
}

func TestToWriter(t *testing.T) {
	l, buf := jsonLogger(t, "debug")
	w := ToWriter(l, zapcore.DebugLevel)

	_, err := fmt.Fprintf(w, "[GIN-debug] GET /health\n")
	require.NoError(t, err)
	_, err = w.Write([]byte("\n"))
	require.NoError(t, err)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "[GIN-debug] GET /health", lines[0]["msg"])
}

func TestRedirectStdLog(t *testing.T) {
	l, buf := jsonLogger(t, "info")
	undo := RedirectStdLog(l, zapcore.InfoLevel)
	log.Print("from std log")
	undo()

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "from std log", lines[0]["msg"])
}

func TestNewWithRotate_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	l, cleanup := NewWithRotate("info", true, path, 1, 1, 1, false)
	l.Info("to file")
	cleanup()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file")
}
