package ui

import (
	"github.com/charmbracelet/lipgloss"

	"hakbang/internal/assets"
)

// StyleSet contains shared style definitions used across screens and modals.
type StyleSet struct {
	Theme assets.Theme

	// Title styles
	Title    lipgloss.Style // Bold, screen headings
	Subtitle lipgloss.Style // Muted line under a heading
	Brand    lipgloss.Style // Accent badge ("HakbangQuest")

	// Box styles
	Box       lipgloss.Style // Card on the surface color
	BoxFocus  lipgloss.Style // Card with accent border
	ModalBox  map[ModalType]lipgloss.Style
	ModalIcon map[ModalType]lipgloss.Style

	// Controls
	Button        lipgloss.Style // Secondary button
	ButtonFocused lipgloss.Style // Focused button
	ButtonPrimary lipgloss.Style // Primary call to action
	Input         lipgloss.Style // Unfocused input frame
	InputFocused  lipgloss.Style // Focused input frame
	InputError    lipgloss.Style // Input frame with a validation error
	Chip          lipgloss.Style // Quick sign-in email chip
	ChipFocused   lipgloss.Style

	// Text styles
	Normal lipgloss.Style
	Muted  lipgloss.Style
	Hint   lipgloss.Style
	Error  lipgloss.Style
	Link   lipgloss.Style
	Gold   lipgloss.Style
	Teal   lipgloss.Style
	Accent lipgloss.Style
}

// Styles is the active style set. ApplyTheme replaces it once assets load.
var Styles = NewStyles(assets.DefaultTheme())

// ApplyTheme rebuilds Styles from t.
func ApplyTheme(t assets.Theme) {
	Styles = NewStyles(t)
}

// NewStyles derives every style from a theme.
func NewStyles(t assets.Theme) StyleSet {
	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }
	fg := func(hex string) lipgloss.Style { return lipgloss.NewStyle().Foreground(c(hex)) }
	frame := func(border string) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(border)).
			Padding(0, 1)
	}
	modal := func(border string) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(border)).
			Background(c(t.Surface)).
			Padding(1, 3).
			Width(44).
			Align(lipgloss.Center)
	}

	return StyleSet{
		Theme:    t,
		Title:    fg(t.Text).Bold(true),
		Subtitle: fg(t.Muted),
		Brand:    lipgloss.NewStyle().Bold(true).Foreground(c(t.Text)).Background(c(t.Accent)).Padding(0, 1),

		Box:      frame(t.Surface).Padding(1, 2),
		BoxFocus: frame(t.Accent).Padding(1, 2),
		ModalBox: map[ModalType]lipgloss.Style{
			ModalSuccess: modal(t.Success),
			ModalError:   modal(t.Error),
			ModalInfo:    modal(t.Info),
		},
		ModalIcon: map[ModalType]lipgloss.Style{
			ModalSuccess: fg(t.Success).Bold(true),
			ModalError:   fg(t.Error).Bold(true),
			ModalInfo:    fg(t.Info).Bold(true),
		},

		Button:        frame(t.Muted).Foreground(c(t.Text)),
		ButtonFocused: frame(t.Highlight).Foreground(c(t.Highlight)).Bold(true),
		ButtonPrimary: frame(t.Accent).Foreground(c(t.Text)).Bold(true),
		Input:         frame(t.Muted),
		InputFocused:  frame(t.Accent),
		InputError:    frame(t.Error),
		Chip:          frame(t.Surface).Foreground(c(t.Text)),
		ChipFocused:   frame(t.Accent).Foreground(c(t.Text)).Bold(true),

		Normal: fg(t.Text),
		Muted:  fg(t.Muted),
		Hint:   fg(t.Muted).Italic(true),
		Error:  fg(t.Error),
		Link:   fg(t.Accent).Underline(true),
		Gold:   fg(t.Gold),
		Teal:   fg(t.Teal),
		Accent: fg(t.Accent).Bold(true),
	}
}
