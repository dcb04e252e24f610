package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hakbang/internal/anim"
	"hakbang/internal/nav"
)

// Landing focus IDs.
const (
	landingGetStarted = "get-started"
	landingSignIn     = "sign-in"
)

// DefaultBootDelay is how long the landing splash shows before the page.
const DefaultBootDelay = 700 * time.Millisecond

// landingBootedMsg ends the splash of the landing activation with Key.
type landingBootedMsg struct {
	Key string
}

type landingKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
}

func (k landingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Select}
}

func (k landingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Select}}
}

var landingFeatures = []string{
	"Track every step of your daily walks",
	"Complete quests and earn rewards",
	"Climb the leaderboard with friends",
}

// LandingScreen is the welcome page. It shows a short boot splash, then
// animates its content in and offers sign-up or sign-in.
type LandingScreen struct {
	nav         nav.Navigator
	route       nav.Route
	transitions Transitions

	booting   bool
	bootDelay time.Duration
	spinner   spinner.Model

	focus *FocusManager
	keys  landingKeys
	help  help.Model

	fade       *anim.Value
	slideUp    *anim.Value
	titleSlide *anim.Value
	buttons    *anim.Value
	pulse      *anim.Value
	press      map[string]*anim.Value
	driver     anim.Driver
	clock      Clock

	// after runs on the frame that completes a button's press animation.
	after func() tea.Cmd
	width int
}

// Ensure LandingScreen implements View.
var _ View = (*LandingScreen)(nil)

// NewLandingScreen creates the landing screen for one activation.
func NewLandingScreen(n nav.Navigator, route nav.Route, t Transitions, deps ScreenDeps) *LandingScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Accent

	delay := deps.BootDelay
	if delay <= 0 {
		delay = DefaultBootDelay
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &LandingScreen{
		nav:         n,
		route:       route,
		transitions: t,
		booting:     true,
		bootDelay:   delay,
		spinner:     sp,
		focus:       NewFocusManager(landingGetStarted, landingSignIn),
		keys: landingKeys{
			Next:   key.NewBinding(key.WithKeys("tab", "down", "right"), key.WithHelp("tab", "next")),
			Prev:   key.NewBinding(key.WithKeys("shift+tab", "up", "left"), key.WithHelp("shift+tab", "prev")),
			Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		},
		help:       newHelp(),
		fade:       anim.NewValue(0),
		slideUp:    anim.NewValue(50),
		titleSlide: anim.NewValue(30),
		buttons:    anim.NewValue(0.9),
		pulse:      anim.NewValue(1),
		press: map[string]*anim.Value{
			landingGetStarted: anim.NewValue(1),
			landingSignIn:     anim.NewValue(1),
		},
		clock: clock,
	}
}

// Booting reports whether the splash is still shown.
func (l *LandingScreen) Booting() bool { return l.booting }

// Focused returns the focused button ID.
func (l *LandingScreen) Focused() string { return l.focus.Current }

// Init implements View.
func (l *LandingScreen) Init() tea.Cmd {
	ref := l.route.Key
	return tea.Batch(l.spinner.Tick, tea.Tick(l.bootDelay, func(time.Time) tea.Msg {
		return landingBootedMsg{Key: ref}
	}))
}

func (l *LandingScreen) boot() {
	l.booting = false
	now := l.clock()
	l.driver.Start(now, anim.Parallel(
		anim.Timing(l.fade, 1, 1000*time.Millisecond, anim.OutCubic),
		anim.Timing(l.slideUp, 0, 800*time.Millisecond, anim.OutCubic),
		anim.Timing(l.titleSlide, 0, 800*time.Millisecond, anim.OutCubic),
		anim.Timing(l.buttons, 1, 1000*time.Millisecond, anim.OutBack(1.7)),
	), nil)
	l.driver.Start(now, anim.Loop(anim.Sequence(
		anim.Timing(l.pulse, 1.05, 1000*time.Millisecond, anim.EaseInOut),
		anim.Timing(l.pulse, 1, 1000*time.Millisecond, anim.EaseInOut),
	)), nil)
}

// pressButton bounces the button and runs action once the bounce completes.
func (l *LandingScreen) pressButton(id string, action func() tea.Cmd) {
	v := l.press[id]
	l.driver.Start(l.clock(), anim.Sequence(
		anim.Timing(v, 0.96, 90*time.Millisecond, anim.EaseInOut),
		anim.Timing(v, 1, 90*time.Millisecond, anim.EaseInOut),
	), func(finished bool) {
		if finished {
			l.after = action
		}
	})
}

// Update implements View.
func (l *LandingScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
	case landingBootedMsg:
		if msg.Key == l.route.Key && l.booting {
			l.boot()
		}
	case spinner.TickMsg:
		if l.booting {
			var cmd tea.Cmd
			l.spinner, cmd = l.spinner.Update(msg)
			return l, cmd
		}
	case anim.FrameMsg:
		l.driver.Step(msg.Time)
		if l.after != nil {
			action := l.after
			l.after = nil
			return l, action()
		}
	case tea.KeyMsg:
		if l.booting {
			return l, nil
		}
		switch {
		case key.Matches(msg, l.keys.Next):
			l.focus.Next()
		case key.Matches(msg, l.keys.Prev):
			l.focus.Prev()
		case key.Matches(msg, l.keys.Select):
			l.activate(l.focus.Current)
		}
	}
	return l, nil
}

func (l *LandingScreen) activate(id string) {
	switch id {
	case landingGetStarted:
		l.pressButton(id, l.transitions.NavigateToSignUp)
	case landingSignIn:
		l.pressButton(id, func() tea.Cmd { return l.transitions.NavigateToSignIn("") })
	}
}

// View implements View.
func (l *LandingScreen) View() string {
	if l.booting {
		return lipgloss.JoinVertical(lipgloss.Center,
			"",
			Styles.Brand.Render("HakbangQuest"),
			"",
			l.spinner.View()+" "+Styles.Muted.Render("Loading..."),
		)
	}

	heart := Styles.Muted.Render("♥")
	if l.pulse.Get() > 1.025 {
		heart = Styles.Accent.Render("♥")
	}
	title := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Brand.Render("HakbangQuest"),
		"",
		Styles.Title.Render("Every step is a quest "+heart),
		Styles.Subtitle.Render("Turn your walks into adventures"),
	)
	title = Effect{Opacity: l.fade.Get(), Scale: 1, OffsetY: l.titleSlide.Get()}.Apply(title, 0)

	var features strings.Builder
	for i, f := range landingFeatures {
		if i > 0 {
			features.WriteString("\n")
		}
		features.WriteString(Styles.Teal.Render("• ") + Styles.Normal.Render(f))
	}
	body := Effect{Opacity: l.fade.Get(), Scale: 1, OffsetY: l.slideUp.Get()}.Apply(Styles.Box.Render(features.String()), 0)

	row := lipgloss.JoinVertical(lipgloss.Center,
		l.button(landingGetStarted, "Get Started", true),
		l.button(landingSignIn, "Sign In", false),
	)
	row = Effect{Opacity: l.fade.Get(), Scale: l.buttons.Get()}.Apply(row, lipgloss.Width(row))

	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		body,
		"",
		row,
		"",
		l.help.View(l.keys),
	)
}

func (l *LandingScreen) button(id, label string, primary bool) string {
	b := renderButton(label, l.focus.Is(id), primary)
	return Effect{Opacity: 1, Scale: l.press[id].Get()}.Apply(b, lipgloss.Width(b))
}

// Animating implements Animator.
func (l *LandingScreen) Animating() bool {
	return l.driver.Active() || l.after != nil
}

// Close implements Closer.
func (l *LandingScreen) Close() {
	l.driver.StopAll()
	l.after = nil
}
