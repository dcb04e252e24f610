package ui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"hakbang/internal/mockapi"
	"hakbang/internal/nav"
)

// Transitions are the shell-level callbacks handed to screens. Each one asks
// the controller for a transition.
type Transitions struct {
	NavigateToLanding   func() tea.Cmd
	NavigateToSignUp    func() tea.Cmd
	NavigateToSignIn    func(email string) tea.Cmd
	NavigateToDashboard func() tea.Cmd
}

// NewTransitions binds the callbacks to t.
func NewTransitions(t nav.Transitioner) Transitions {
	return Transitions{
		NavigateToLanding: func() tea.Cmd { return t.RequestTransition(nav.Landing, nil) },
		NavigateToSignUp:  func() tea.Cmd { return t.RequestTransition(nav.Signup, nil) },
		NavigateToSignIn: func(email string) tea.Cmd {
			if email == "" {
				return t.RequestTransition(nav.Login, nil)
			}
			return t.RequestTransition(nav.Login, nav.Params{nav.ParamKeyEmail: email})
		},
		NavigateToDashboard: func() tea.Cmd { return t.RequestTransition(nav.Dashboard, nil) },
	}
}

// MarkdownRenderer turns markdown into terminal output.
type MarkdownRenderer func(md string) (string, error)

// NewMarkdownRenderer returns a glamour renderer with a fixed style so output
// does not depend on querying the terminal.
func NewMarkdownRenderer(width int) MarkdownRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return func(md string) (string, error) { return md, err }
	}
	return r.Render
}

// ScreenDeps is everything a screen may need when it is built.
type ScreenDeps struct {
	Controller *TransitionController
	API        *mockapi.Service
	Clock      Clock
	BootDelay  time.Duration
	Markdown   MarkdownRenderer
	Log        *slog.Logger
}

// Builder returns the ScreenBuilder the stage mounts screens with. Every call
// produces a fresh screen with its own route.
func (d ScreenDeps) Builder() ScreenBuilder {
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Log == nil {
		d.Log = slog.New(slog.DiscardHandler)
	}
	transitions := NewTransitions(d.Controller)
	return func(s nav.Screen) View {
		navigator := d.Controller.Navigator(s)
		route := nav.NewRouteAt(s, d.Controller.Params(s), d.Clock())
		switch s {
		case nav.Signup:
			return NewSignupScreen(navigator, route, transitions, d)
		case nav.Login:
			return NewLoginScreen(navigator, route, transitions, d)
		case nav.Dashboard:
			return NewDashboardScreen(navigator, route, d)
		default:
			return NewLandingScreen(navigator, route, transitions, d)
		}
	}
}
