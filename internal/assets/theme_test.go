package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoader_EmptyPathUsesDefaults(t *testing.T) {
	th, err := FileLoader{}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), th)
	assert.NoError(t, th.Validate())
}

func TestFileLoader_OverridesSomeColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("accent = \"#ff0000\"\nmuted = \"#777777\"\n"), 0o644))

	th, err := FileLoader{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", th.Accent)
	assert.Equal(t, "#777777", th.Muted)
	assert.Equal(t, DefaultTheme().Background, th.Background)
}

func TestFileLoader_InvalidColorFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("text = \"white\"\n"), 0o644))

	th, err := FileLoader{Path: path}.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text")
	assert.Equal(t, DefaultTheme(), th)
}

func TestLoadCmd_ReportsErrorWithDefaults(t *testing.T) {
	msg := LoadCmd(context.Background(), FileLoader{Path: filepath.Join(t.TempDir(), "missing.toml")})()
	loaded, ok := msg.(LoadedMsg)
	require.True(t, ok)
	assert.Error(t, loaded.Err)
	assert.Equal(t, DefaultTheme(), loaded.Theme)
}

func TestBlend(t *testing.T) {
	assert.Equal(t, "#000000", Blend("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 1))
	assert.Equal(t, "#ffffff", Blend("bogus", "#ffffff", 0.5))
}
