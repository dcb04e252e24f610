package ui

import (
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hakbang/internal/anim"
	"hakbang/internal/mockapi"
	"hakbang/internal/nav"
)

// Signup focus IDs.
const (
	signupName     = "name"
	signupEmail    = "email"
	signupPassword = "password"
	signupCreate   = "create"
	signupSignIn   = "sign-in"
)

const minPasswordLen = 6

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Back}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Submit, k.Back}}
}

// SignupScreen collects a name, email and password and creates an account
// on the mock backend.
type SignupScreen struct {
	nav         nav.Navigator
	route       nav.Route
	transitions Transitions
	api         *mockapi.Service
	log         *slog.Logger

	name, email, password *field
	focus                 *FocusManager
	keys                  formKeys
	help                  help.Model
	spinner               spinner.Model

	loading bool
	seq     int
	pending string

	shake  *anim.Value
	driver anim.Driver
	clock  Clock
}

// Ensure SignupScreen implements View.
var _ View = (*SignupScreen)(nil)

// NewSignupScreen creates the sign-up screen for one activation.
func NewSignupScreen(n nav.Navigator, route nav.Route, t Transitions, deps ScreenDeps) *SignupScreen {
	s := &SignupScreen{
		nav:         n,
		route:       route,
		transitions: t,
		api:         deps.API,
		log:         deps.Log,
		name:        newField(signupName, "Full Name", "Juan dela Cruz", false),
		email:       newField(signupEmail, "Email", "you@example.com", false),
		password:    newField(signupPassword, "Password", "at least 6 characters", true),
		focus:       NewFocusManager(signupName, signupEmail, signupPassword, signupCreate, signupSignIn),
		keys:        newFormKeys(),
		help:        newHelp(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(Styles.Accent)),
		shake:       anim.NewValue(0),
		clock:       deps.Clock,
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	s.syncFocus()
	return s
}

// Errors returns the current validation errors keyed by field.
func (s *SignupScreen) Errors() map[string]string {
	errs := map[string]string{}
	for _, f := range []*field{s.name, s.email, s.password} {
		if f.err != "" {
			errs[f.id] = f.err
		}
	}
	return errs
}

// Loading reports whether account creation is in flight.
func (s *SignupScreen) Loading() bool { return s.loading }

func (s *SignupScreen) syncFocus() {
	syncFocus(s.focus, s.name, s.email, s.password)
}

// Init implements View.
func (s *SignupScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SignupScreen) validate() bool {
	s.name.err, s.email.err, s.password.err = "", "", ""
	if s.name.value() == "" {
		s.name.err = "Name is required"
	}
	switch email := s.email.value(); {
	case email == "":
		s.email.err = "Email is required"
	case !validEmail(email):
		s.email.err = "Enter a valid email address"
	}
	switch pw := s.password.input.Value(); {
	case pw == "":
		s.password.err = "Password is required"
	case len(pw) < minPasswordLen:
		s.password.err = fmt.Sprintf("Password must be at least %d characters", minPasswordLen)
	}
	return len(s.Errors()) == 0
}

func (s *SignupScreen) submit() tea.Cmd {
	if s.loading {
		return nil
	}
	if !s.validate() {
		s.driver.Start(s.clock(), shakeAnimation(s.shake), nil)
		return nil
	}
	s.loading = true
	s.seq++
	s.pending = fmt.Sprintf("%s#%d", s.route.Key, s.seq)
	s.log.Info("signup submitted", "email", s.email.value())
	return tea.Batch(s.spinner.Tick, s.api.Signup(s.pending, s.name.value(), s.email.value(), s.password.input.Value()))
}

func (s *SignupScreen) created(msg mockapi.SignupResultMsg) tea.Cmd {
	s.loading = false
	s.pending = ""
	email := msg.Email
	return NewModal(ModalSuccess, "Account Created!",
		fmt.Sprintf("Welcome to HakbangQuest, %s! Sign in to start your journey.", msg.Name),
		func() tea.Cmd { return s.transitions.NavigateToSignIn(email) },
	).Show()
}

// Update implements View.
func (s *SignupScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case mockapi.SignupResultMsg:
		if msg.Ref != s.pending {
			return s, nil
		}
		return s, s.created(msg)
	case spinner.TickMsg:
		if s.loading {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return s, cmd
		}
		return s, nil
	case anim.FrameMsg:
		s.driver.Step(msg.Time)
		return s, nil
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *SignupScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Back):
		return s.nav.GoBack()
	case key.Matches(msg, s.keys.Next):
		s.focus.Next()
		s.syncFocus()
		return nil
	case key.Matches(msg, s.keys.Prev):
		s.focus.Prev()
		s.syncFocus()
		return nil
	case key.Matches(msg, s.keys.Submit):
		if s.focus.Is(signupSignIn) {
			return s.transitions.NavigateToSignIn("")
		}
		return s.submit()
	}
	for _, f := range []*field{s.name, s.email, s.password} {
		if s.focus.Is(f.id) && !s.loading {
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			f.err = ""
			return cmd
		}
	}
	return nil
}

// View implements View.
func (s *SignupScreen) View() string {
	create := renderButton("Create Account", s.focus.Is(signupCreate), true)
	if s.loading {
		create = renderButton(s.spinner.View()+" Creating account...", false, true)
	}
	form := lipgloss.JoinVertical(lipgloss.Left,
		s.name.view(s.focus.Is(signupName)),
		s.email.view(s.focus.Is(signupEmail)),
		s.password.view(s.focus.Is(signupPassword)),
		"",
		create,
	)
	form = shaken(form, s.shake)

	return lipgloss.JoinVertical(lipgloss.Center,
		Styles.Brand.Render("HakbangQuest"),
		"",
		Styles.Title.Render("Create Account"),
		Styles.Subtitle.Render("Start your walking adventure"),
		"",
		form,
		"",
		Styles.Muted.Render("Already have an account? ")+renderLink("Sign In instead", s.focus.Is(signupSignIn)),
		"",
		s.help.View(s.keys),
	)
}

// Animating implements Animator.
func (s *SignupScreen) Animating() bool { return s.driver.Active() }

// Close implements Closer. A reply still in flight is ignored once closed.
func (s *SignupScreen) Close() {
	s.driver.StopAll()
	s.pending = ""
}

// shakeAmplitude is the sideways swing of a rejected form, in points.
const shakeAmplitude = 10

// shakeAnimation swings v sideways and back to rest.
func shakeAnimation(v *anim.Value) anim.Animation {
	const step = 100 * time.Millisecond
	return anim.Sequence(
		anim.Timing(v, shakeAmplitude, step, anim.Linear),
		anim.Timing(v, -shakeAmplitude, step, anim.Linear),
		anim.Timing(v, shakeAmplitude, step, anim.Linear),
		anim.Timing(v, 0, step, anim.Linear),
	)
}

// shaken offsets content by v while it shakes. Columns cannot go negative,
// so the swing is drawn around a rest indent.
func shaken(content string, v *anim.Value) string {
	if !v.Animating() {
		return content
	}
	return Effect{Opacity: 1, Scale: 1, OffsetX: v.Get() + shakeAmplitude}.Apply(content, 0)
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
