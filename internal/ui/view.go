package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View is a screen, a modal or a wrapper around one.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Animator is implemented by views that own running animations. The root
// model keeps the frame clock running while any Animator reports Animating.
type Animator interface {
	Animating() bool
}

// Closer is implemented by views that own animation handles and must stop
// them when unmounted.
type Closer interface {
	Close()
}

// Clock returns the current time. Views take one so tests can pin it.
type Clock func() time.Time

func animating(v View) bool {
	a, ok := v.(Animator)
	return ok && a.Animating()
}

func closeView(v View) {
	if c, ok := v.(Closer); ok {
		c.Close()
	}
}
