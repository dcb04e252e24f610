package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HAKBANG_CONFIG", "")

	c, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, c.Animation.Exit)
	assert.Equal(t, 300*time.Millisecond, c.Animation.Enter)
	assert.Equal(t, 200*time.Millisecond, c.Animation.WrapperExit)
	assert.Equal(t, 60, c.Animation.FPS)
	assert.Equal(t, 700*time.Millisecond, c.Landing.BootDelay)
	assert.Equal(t, 2*time.Second, c.Mock.LoginDelay)
	assert.Len(t, c.Mock.RegisteredEmails, 3)
	assert.Equal(t, "hakbang", c.Trace.ServiceName)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[animation]
exit = "100ms"
enter = "250ms"
fps = 30

[mock]
login_delay = "10ms"
registered_emails = ["only@one.io"]

[theme]
monochrome = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("HAKBANG_LOG_LEVEL", "debug")

	c, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, c.Animation.Exit)
	assert.Equal(t, 250*time.Millisecond, c.Animation.Enter)
	assert.Equal(t, 30, c.Animation.FPS)
	assert.Equal(t, 10*time.Millisecond, c.Mock.LoginDelay)
	assert.Equal(t, []string{"only@one.io"}, c.Mock.RegisteredEmails)
	assert.True(t, c.Theme.Monochrome)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoad_RejectsEnterShorterThanExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[animation]\nexit = \"400ms\"\nenter = \"100ms\"\n"), 0o644))

	_, err := Load(NewViper(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "animation.enter")
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	c.Animation.FPS = 0
	assert.Error(t, c.Validate())
}
