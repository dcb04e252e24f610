package nav

import tea "github.com/charmbracelet/bubbletea"

// Transitioner accepts transition requests. The transition controller is the
// only implementation outside tests.
type Transitioner interface {
	RequestTransition(target Screen, params Params) tea.Cmd
}

// Navigator is the capability a screen receives to move between screens.
type Navigator interface {
	// Navigate requests a transition to target.
	Navigate(target Screen, params Params) tea.Cmd
	// GoBack moves one level back using the static back map.
	GoBack() tea.Cmd
	// Current is the screen this navigator was created for.
	Current() Screen
	// CanGoBack reports whether GoBack leads to a different screen.
	CanGoBack() bool
}

// backMap is one level deep; it is not a history stack.
var backMap = map[Screen]Screen{
	Landing:   Landing,
	Signup:    Landing,
	Login:     Landing,
	Dashboard: Login,
}

// BackTarget returns the screen GoBack leads to from s.
func BackTarget(s Screen) Screen {
	return backMap[s]
}

type facade struct {
	current Screen
	t       Transitioner
}

// NewFacade returns the Navigator for a screen, delegating every request to t.
func NewFacade(current Screen, t Transitioner) Navigator {
	return &facade{current: current, t: t}
}

func (f *facade) Navigate(target Screen, params Params) tea.Cmd {
	if target == Login {
		// Only the email is threaded through, and only when present, so an
		// earlier prefill survives a plain Navigate(Login, nil).
		if email := params.String(ParamKeyEmail); email != "" {
			return f.t.RequestTransition(Login, Params{ParamKeyEmail: email})
		}
		return f.t.RequestTransition(Login, nil)
	}
	return f.t.RequestTransition(target, params)
}

func (f *facade) GoBack() tea.Cmd {
	return f.t.RequestTransition(BackTarget(f.current), nil)
}

func (f *facade) Current() Screen { return f.current }

func (f *facade) CanGoBack() bool {
	return BackTarget(f.current) != f.current
}
