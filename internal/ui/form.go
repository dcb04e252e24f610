package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const inputWidth = 36

// field is a labelled text input with a validation error slot.
type field struct {
	id    string
	label string
	input textinput.Model
	err   string
}

func newField(id, label, placeholder string, secret bool) *field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.Width = inputWidth - 4
	in.CharLimit = 128
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return &field{id: id, label: label, input: in}
}

func (f *field) value() string {
	return strings.TrimSpace(f.input.Value())
}

func (f *field) view(focused bool) string {
	frame := Styles.Input
	switch {
	case f.err != "":
		frame = Styles.InputError
	case focused:
		frame = Styles.InputFocused
	}
	lines := []string{
		Styles.Normal.Render(f.label),
		frame.Width(inputWidth).Render(f.input.View()),
	}
	if f.err != "" {
		lines = append(lines, Styles.Error.Render(f.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderButton(label string, focused, primary bool) string {
	style := Styles.Button
	switch {
	case focused:
		style = Styles.ButtonFocused
	case primary:
		style = Styles.ButtonPrimary
	}
	return style.Width(inputWidth).Align(lipgloss.Center).Render(label)
}

func renderLink(label string, focused bool) string {
	if focused {
		return Styles.ButtonFocused.Render(label)
	}
	return Styles.Link.Render(label)
}

// syncFocus focuses the input whose id has focus and blurs the rest.
func syncFocus(focus *FocusManager, fields ...*field) {
	for _, f := range fields {
		if focus.Is(f.id) {
			f.input.Focus()
		} else {
			f.input.Blur()
		}
	}
}

// formKeys are shared by the form screens.
type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Back   key.Binding
}

func newFormKeys() formKeys {
	return formKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.Accent
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	return h
}
