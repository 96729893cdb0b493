package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	l, err := New("", "info")
	require.NoError(t, err)
	l.Info("dropped")
	assert.False(t, l.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "careaid.log")
	l, err := New(path, "debug")
	require.NoError(t, err)

	l.Debug("step shown", zap.Int("step", 2))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"step shown"`)
	assert.Contains(t, string(data), `"step":2`)
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "careaid.log")
	l, err := New(path, "WARN")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
