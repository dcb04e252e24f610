package ui

import (
	"fmt"
	"log/slog"
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
	"hakbang/internal/ui/textutil"
)

// Login focus IDs. Quick sign-in chips use loginChipPrefix plus their index.
const (
	loginEmail      = "email"
	loginPassword   = "password"
	loginSubmit     = "sign-in"
	loginForgot     = "forgot"
	loginSignUp     = "sign-up"
	loginChipPrefix = "chip-"
)

type loginKeys struct {
	formKeys
	Reveal key.Binding
}

func (k loginKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Reveal, k.Back}
}

func (k loginKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Submit, k.Reveal, k.Back}}
}

// LoginScreen signs a user in. The email may arrive prefilled through the
// route params, and registered accounts are offered for quick sign-in.
type LoginScreen struct {
	nav         nav.Navigator
	route       nav.Route
	transitions Transitions
	api         *mockapi.Service
	log         *slog.Logger

	email, password *field
	chips           []string
	reveal          bool
	focus           *FocusManager
	keys            loginKeys
	help            help.Model
	spinner         spinner.Model

	loading   bool
	resetting bool
	seq       int
	pending   string

	// Entrance: the header drops in from above while the form rises.
	fade        *anim.Value
	slideUp     *anim.Value
	headerSlide *anim.Value

	shake  *anim.Value
	press  *anim.Value
	driver anim.Driver
	clock  Clock
}

// Ensure LoginScreen implements View.
var _ View = (*LoginScreen)(nil)

// NewLoginScreen creates the sign-in screen for one activation.
func NewLoginScreen(n nav.Navigator, route nav.Route, t Transitions, deps ScreenDeps) *LoginScreen {
	l := &LoginScreen{
		nav:         n,
		route:       route,
		transitions: t,
		api:         deps.API,
		log:         deps.Log,
		email:       newField(loginEmail, "Email", "you@example.com", false),
		password:    newField(loginPassword, "Password", "your password", true),
		keys: loginKeys{
			formKeys: newFormKeys(),
			Reveal:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "show password")),
		},
		help:        newHelp(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(Styles.Accent)),
		fade:        anim.NewValue(1),
		slideUp:     anim.NewValue(0),
		headerSlide: anim.NewValue(0),
		shake:       anim.NewValue(0),
		press:       anim.NewValue(1),
		clock:       deps.Clock,
	}
	if l.log == nil {
		l.log = slog.New(slog.DiscardHandler)
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	if l.api != nil {
		l.chips = l.api.RegisteredEmails()
	}

	order := []string{loginEmail, loginPassword, loginSubmit, loginForgot}
	for i := range l.chips {
		order = append(order, fmt.Sprintf("%s%d", loginChipPrefix, i))
	}
	order = append(order, loginSignUp)
	l.focus = NewFocusManager(order...)

	if email := route.Params.String(nav.ParamKeyEmail); email != "" {
		l.email.input.SetValue(email)
		l.focus.SetFocus(loginPassword)
	}
	l.syncFocus()
	return l
}

// Route returns the route this activation was built with.
func (l *LoginScreen) Route() nav.Route { return l.route }

// Email returns the email field's value.
func (l *LoginScreen) Email() string { return l.email.value() }

// Errors returns the current validation errors keyed by field.
func (l *LoginScreen) Errors() map[string]string {
	errs := map[string]string{}
	for _, f := range []*field{l.email, l.password} {
		if f.err != "" {
			errs[f.id] = f.err
		}
	}
	return errs
}

// Loading reports whether a sign-in is in flight.
func (l *LoginScreen) Loading() bool { return l.loading }

// PasswordVisible reports whether the password is shown in clear text.
func (l *LoginScreen) PasswordVisible() bool { return l.reveal }

func (l *LoginScreen) syncFocus() {
	syncFocus(l.focus, l.email, l.password)
}

// Init implements View. It plays the entrance; a screen that is never
// initialised renders at rest.
func (l *LoginScreen) Init() tea.Cmd {
	l.fade.Set(0)
	l.slideUp.Set(50)
	l.headerSlide.Set(-50)
	l.driver.Start(l.clock(), anim.Parallel(
		anim.Timing(l.fade, 1, 600*time.Millisecond, anim.EaseInOut),
		anim.Timing(l.slideUp, 0, 600*time.Millisecond, anim.OutCubic),
		anim.Timing(l.headerSlide, 0, 500*time.Millisecond, anim.OutCubic),
	), nil)
	return textinput.Blink
}

func (l *LoginScreen) nextRef() string {
	l.seq++
	l.pending = fmt.Sprintf("%s#%d", l.route.Key, l.seq)
	return l.pending
}

func (l *LoginScreen) clearErrors() {
	l.email.err, l.password.err = "", ""
}

func (l *LoginScreen) signIn() tea.Cmd {
	if l.loading || l.resetting {
		return nil
	}
	l.clearErrors()
	if l.email.value() == "" {
		l.email.err = "Email is required"
	}
	if l.password.input.Value() == "" {
		l.password.err = "Password is required"
	}
	if len(l.Errors()) > 0 {
		l.log.Debug("login rejected", "errors", len(l.Errors()))
		l.driver.Start(l.clock(), shakeAnimation(l.shake), nil)
		return nil
	}

	l.driver.Start(l.clock(), anim.Sequence(
		anim.Timing(l.press, 0.95, 100*time.Millisecond, anim.EaseInOut),
		anim.Timing(l.press, 1, 100*time.Millisecond, anim.EaseInOut),
	), nil)
	l.loading = true
	email := l.email.value()
	l.log.Info("login submitted", "email", email)
	return tea.Batch(l.spinner.Tick, l.api.Login(l.nextRef(), email, l.password.input.Value()))
}

func (l *LoginScreen) forgotPassword() tea.Cmd {
	if l.loading || l.resetting {
		return nil
	}
	email := l.email.value()
	if email == "" {
		return NewModal(ModalInfo, "Email Required",
			"Enter your email address first and we will send you a reset link.", nil).Show()
	}
	l.resetting = true
	return tea.Batch(l.spinner.Tick, l.api.ResetPassword(l.nextRef(), email))
}

func (l *LoginScreen) pickChip(i int) {
	l.email.input.SetValue(l.chips[i])
	l.password.input.SetValue("")
	l.clearErrors()
	l.focus.SetFocus(loginPassword)
	l.syncFocus()
}

// Update implements View.
func (l *LoginScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case mockapi.LoginResultMsg:
		if msg.Ref != l.pending {
			return l, nil
		}
		l.loading = false
		l.pending = ""
		return l, NewModal(ModalSuccess, "Login Successful!",
			fmt.Sprintf("Welcome back, %s.", msg.Email),
			l.transitions.NavigateToDashboard,
		).Show()
	case mockapi.PasswordResetMsg:
		if msg.Ref != l.pending {
			return l, nil
		}
		l.resetting = false
		l.pending = ""
		return l, NewModal(ModalSuccess, "Password Reset Email Sent",
			fmt.Sprintf("Check %s for a link to reset your password.", msg.Email), nil).Show()
	case spinner.TickMsg:
		if l.loading || l.resetting {
			var cmd tea.Cmd
			l.spinner, cmd = l.spinner.Update(msg)
			return l, cmd
		}
		return l, nil
	case anim.FrameMsg:
		l.driver.Step(msg.Time)
		return l, nil
	case tea.KeyMsg:
		return l, l.handleKey(msg)
	}
	return l, nil
}

func (l *LoginScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, l.keys.Back):
		return l.nav.GoBack()
	case key.Matches(msg, l.keys.Reveal):
		l.reveal = !l.reveal
		if l.reveal {
			l.password.input.EchoMode = textinput.EchoNormal
		} else {
			l.password.input.EchoMode = textinput.EchoPassword
		}
		return nil
	case key.Matches(msg, l.keys.Next):
		l.focus.Next()
		l.syncFocus()
		return nil
	case key.Matches(msg, l.keys.Prev):
		l.focus.Prev()
		l.syncFocus()
		return nil
	case key.Matches(msg, l.keys.Submit):
		return l.activate(l.focus.Current)
	}
	for _, f := range []*field{l.email, l.password} {
		if l.focus.Is(f.id) && !l.loading {
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			f.err = ""
			return cmd
		}
	}
	return nil
}

func (l *LoginScreen) activate(id string) tea.Cmd {
	switch id {
	case loginForgot:
		return l.forgotPassword()
	case loginSignUp:
		return l.nav.Navigate(nav.Signup, nil)
	}
	var i int
	if _, err := fmt.Sscanf(id, loginChipPrefix+"%d", &i); err == nil && i < len(l.chips) {
		l.pickChip(i)
		return nil
	}
	return l.signIn()
}

// View implements View.
func (l *LoginScreen) View() string {
	submit := renderButton("Sign In", l.focus.Is(loginSubmit), true)
	if l.loading {
		submit = renderButton(l.spinner.View()+" Signing in...", false, true)
	}
	submit = Effect{Opacity: 1, Scale: l.press.Get()}.Apply(submit, lipgloss.Width(submit))

	forgot := renderLink("Forgot password?", l.focus.Is(loginForgot))
	if l.resetting {
		forgot = l.spinner.View() + " " + Styles.Muted.Render("Sending reset link...")
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		l.email.view(l.focus.Is(loginEmail)),
		l.password.view(l.focus.Is(loginPassword)),
		forgot,
		"",
		submit,
	)
	form = shaken(form, l.shake)

	header := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Brand.Render("HakbangQuest"),
		"",
		Styles.Title.Render("Welcome Back"),
		Styles.Subtitle.Render("Sign in to your account"),
	)
	header = Effect{Opacity: l.fade.Get(), Scale: 1, OffsetY: l.headerSlide.Get()}.Apply(header, 0)

	sections := []string{form}
	if len(l.chips) > 0 {
		chips := make([]string, len(l.chips))
		for i, email := range l.chips {
			style := Styles.Chip
			if l.focus.Is(fmt.Sprintf("%s%d", loginChipPrefix, i)) {
				style = Styles.ChipFocused
			}
			chips[i] = style.Render(textutil.PadRightVisual(email, inputWidth-4))
		}
		sections = append(sections, "",
			Styles.Hint.Render("Quick sign-in"),
			lipgloss.JoinVertical(lipgloss.Left, chips...),
		)
	}
	sections = append(sections, "",
		Styles.Muted.Render("Don't have an account? ")+renderLink("Sign up", l.focus.Is(loginSignUp)),
		"",
		l.help.View(l.keys),
	)
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	body = Effect{Opacity: l.fade.Get(), Scale: 1, OffsetY: l.slideUp.Get()}.Apply(body, 0)
	return lipgloss.JoinVertical(lipgloss.Center, header, "", body)
}

// Animating implements Animator.
func (l *LoginScreen) Animating() bool { return l.driver.Active() }

// Close implements Closer. Replies still in flight are ignored once closed.
func (l *LoginScreen) Close() {
	l.driver.StopAll()
	l.pending = ""
}
