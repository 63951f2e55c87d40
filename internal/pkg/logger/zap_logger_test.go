package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("Assistant", "request processed", map[string]interface{}{"mode": "ANALYSIS"})
	l.Warn("Assistant", "no details", nil)
	l.Error("Assistant", "call failed", map[string]interface{}{"error": errors.New("boom")})

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	info := entries[0].ContextMap()
	assert.Equal(t, "Assistant", info["module"])
	assert.Equal(t, map[string]interface{}{"mode": "ANALYSIS"}, info["details"])

	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestNewZapLoggerWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewZapLogger(path, true)

	l.Info("Server", "started", map[string]interface{}{"port": "3000"})
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"started"`)
	assert.Contains(t, string(data), `"module":"Server"`)
	assert.Contains(t, string(data), `"level":"INFO"`)
}
