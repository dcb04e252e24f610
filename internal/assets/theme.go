// Package assets loads the presentation assets the UI waits for before any
// screen is mounted. In the terminal the only asset is the color theme.
package assets

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme is the palette shared by every screen. Colors are #rrggbb hex.
type Theme struct {
	Background string `toml:"background"`
	Surface    string `toml:"surface"`
	Accent     string `toml:"accent"`
	Text       string `toml:"text"`
	Muted      string `toml:"muted"`
	Highlight  string `toml:"highlight"`
	Success    string `toml:"success"`
	Error      string `toml:"error"`
	Info       string `toml:"info"`
	Gold       string `toml:"gold"`
	Teal       string `toml:"teal"`
}

// DefaultTheme is the dark palette the app ships with.
func DefaultTheme() Theme {
	return Theme{
		Background: "#121826",
		Surface:    "#1E2538",
		Accent:     "#4361EE",
		Text:       "#FFFFFF",
		Muted:      "#8E8E93",
		Highlight:  "#FFC107",
		Success:    "#10B981",
		Error:      "#EF4444",
		Info:       "#3B82F6",
		Gold:       "#FFD166",
		Teal:       "#06D6A0",
	}
}

// Validate checks that every color parses.
func (t Theme) Validate() error {
	for name, hex := range map[string]string{
		"background": t.Background,
		"surface":    t.Surface,
		"accent":     t.Accent,
		"text":       t.Text,
		"muted":      t.Muted,
		"highlight":  t.Highlight,
		"success":    t.Success,
		"error":      t.Error,
		"info":       t.Info,
		"gold":       t.Gold,
		"teal":       t.Teal,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("theme color %s: %w", name, err)
		}
	}
	return nil
}

// Blend mixes from towards to by t in [0,1] and returns the hex result.
// Unparseable inputs return to unchanged.
func Blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	return a.BlendLab(b, t).Clamped().Hex()
}

// Loader produces the theme. Load may block on I/O.
type Loader interface {
	Load(ctx context.Context) (Theme, error)
}

// FileLoader reads a TOML theme file over the defaults. An empty Path loads
// the defaults.
type FileLoader struct {
	Path string
}

// Load implements Loader.
func (l FileLoader) Load(ctx context.Context) (Theme, error) {
	t := DefaultTheme()
	if l.Path == "" {
		return t, nil
	}
	if err := ctx.Err(); err != nil {
		return t, err
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return DefaultTheme(), fmt.Errorf("read theme: %w", err)
	}
	if _, err := toml.Decode(string(data), &t); err != nil {
		return DefaultTheme(), fmt.Errorf("decode theme %s: %w", l.Path, err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTheme(), err
	}
	return t, nil
}

// LoadedMsg reports the outcome of LoadCmd. Theme is always usable: on
// error it holds the defaults.
type LoadedMsg struct {
	Theme Theme
	Err   error
}

// LoadCmd runs l off the UI loop.
func LoadCmd(ctx context.Context, l Loader) tea.Cmd {
	return func() tea.Msg {
		t, err := l.Load(ctx)
		if err != nil {
			t = DefaultTheme()
		}
		return LoadedMsg{Theme: t, Err: err}
	}
}
