package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModalType selects the icon and accent color of a Modal.
type ModalType int

const (
	ModalInfo ModalType = iota
	ModalSuccess
	ModalError
)

func (t ModalType) String() string {
	switch t {
	case ModalSuccess:
		return "success"
	case ModalError:
		return "error"
	default:
		return "info"
	}
}

func (t ModalType) icon() string {
	switch t {
	case ModalSuccess:
		return "✔"
	case ModalError:
		return "✖"
	default:
		return "ℹ"
	}
}

// ShowModalMsg asks the root model to display a modal on the overlay stack.
type ShowModalMsg struct {
	Modal *Modal
}

// ModalClosedMsg is sent when the user dismisses the topmost modal.
type ModalClosedMsg struct{}

// Modal is a single-button dialog. Enter, Esc or Space close it; OnClose then
// runs on the update loop and may chain a transition.
type Modal struct {
	Title   string
	Message string
	Type    ModalType
	OnClose func() tea.Cmd
}

// Ensure Modal implements View.
var _ View = (*Modal)(nil)

// NewModal creates a modal.
func NewModal(typ ModalType, title, message string, onClose func() tea.Cmd) *Modal {
	return &Modal{Title: title, Message: message, Type: typ, OnClose: onClose}
}

// Show returns a command that displays the modal.
func (m *Modal) Show() tea.Cmd {
	return func() tea.Msg { return ShowModalMsg{Modal: m} }
}

// Init implements View.
func (m *Modal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *Modal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", " ":
			return m, func() tea.Msg { return ModalClosedMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *Modal) View() string {
	box := Styles.ModalBox[m.Type]
	width := box.GetWidth() - box.GetHorizontalPadding()
	message := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(m.Message)

	content := lipgloss.JoinVertical(lipgloss.Center,
		Styles.ModalIcon[m.Type].Render(m.Type.icon()),
		"",
		Styles.Title.Render(m.Title),
		"",
		Styles.Muted.Render(message),
		"",
		Styles.ButtonPrimary.Render("  OK  "),
	)
	return box.Render(content)
}
