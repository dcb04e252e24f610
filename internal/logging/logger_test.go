package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	New(slog.LevelDebug, &buf).Info("theme load failed", "error", errors.New("boom"))
	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "hakbang.log")
	log, closeFn, err := Open("info", path)
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("transition", "to", "Login")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to=Login")
	assert.NotContains(t, string(data), "hidden")
}

func TestOpen_EmptyPathIsNop(t *testing.T) {
	log, closeFn, err := Open("warn", "")
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.NoError(t, closeFn())
}

func TestOpen_RejectsBadLevelWithoutFile(t *testing.T) {
	_, _, err := Open("loud", "")
	assert.ErrorContains(t, err, "loud")
}
