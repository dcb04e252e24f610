package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"hakbang/internal/anim"
	"hakbang/internal/assets"
	"hakbang/internal/config"
	"hakbang/internal/mockapi"
	"hakbang/internal/nav"
)

// AppModel is the root model. It shows a loading spinner until the assets
// are ready, then owns the transition controller and the stage rendering
// the active screen.
type AppModel struct {
	Config     config.Config
	Log        *slog.Logger
	Tracer     oteltrace.Tracer
	Assets     assets.Loader
	API        *mockapi.Service
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Markdown   MarkdownRenderer

	Mode       AppMode
	Controller *TransitionController // nil until ModeReady
	Stage      *Stage                // nil until ModeReady

	// Clock is the time source for starting animations.
	Clock Clock
	// Ticker schedules the next frame. Tests replace it to drive frames by hand.
	Ticker func() tea.Cmd

	ctx     context.Context
	spinner spinner.Model
	ticking bool
	size    tea.WindowSizeMsg
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model in ModeLoading.
func NewAppModel(ctx context.Context, cfg config.Config, log *slog.Logger) *AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	api := mockapi.New(cfg.Mock.RegisteredEmails, log)
	api.LoginDelay = cfg.Mock.LoginDelay
	api.ResetDelay = cfg.Mock.ResetDelay
	api.SignupDelay = cfg.Mock.SignupDelay

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("C-x q", tea.Quit, "Quit")
	reg.BindWithDescForScreens("C-x b", func() tea.Msg { return GoBackMsg{} }, "Back",
		[]nav.Screen{nav.Signup, nav.Login, nav.Dashboard})

	fps := cfg.Animation.FPS
	return &AppModel{
		Config:     cfg,
		Log:        log,
		Tracer:     noop.NewTracerProvider().Tracer(""),
		Assets:     assets.FileLoader{Path: cfg.Theme.File},
		API:        api,
		KeyHandler: NewKeyHandler(reg),
		Mode:       ModeLoading,
		Clock:      time.Now,
		Ticker:     func() tea.Cmd { return anim.Tick(fps) },
		ctx:        ctx,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(Styles.Accent)),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Screen returns the screen the app is on or heading to, or Landing while
// loading. Back resolution and keybind filters follow it.
func (m *AppModel) Screen() nav.Screen {
	if m.Controller == nil {
		return nav.Landing
	}
	return m.Controller.Target()
}

// ready mounts the controller and the first screen.
func (m *AppModel) ready(theme assets.Theme) tea.Cmd {
	ApplyTheme(theme)
	anims := m.Config.Animation
	m.Controller = NewTransitionController(nav.Landing,
		WithTiming(TransitionTiming{Exit: anims.Exit, Enter: anims.Enter}),
		WithClock(m.Clock),
		WithLogger(m.Log),
		WithTracer(m.Tracer),
	)
	if m.Markdown == nil {
		m.Markdown = NewMarkdownRenderer(56)
	}
	deps := ScreenDeps{
		Controller: m.Controller,
		API:        m.API,
		Clock:      m.Clock,
		BootDelay:  m.Config.Landing.BootDelay,
		Markdown:   m.Markdown,
		Log:        m.Log,
	}
	m.Stage = NewStage(nav.Landing, deps.Builder(),
		WrapperTiming{Enter: anims.WrapperEnter, Exit: anims.WrapperExit}, m.Clock, m.Log)
	m.Controller.Subscribe(m.Stage.Show)
	m.Controller.Subscribe(m.dropOverlays)
	m.Mode = ModeReady
	m.Log.Info("assets ready", "screen", nav.Landing)

	cmds := []tea.Cmd{m.Stage.Init(), func() tea.Msg { return ReadyMsg{} }}
	if m.size.Width > 0 {
		_, cmd := m.Stage.Update(m.size)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// dropOverlays discards modals left over from the screen being replaced.
// Their OnClose callbacks belong to that screen and must not run.
func (m *AppModel) dropOverlays(from, to nav.Screen) tea.Cmd {
	if n := m.Overlays.Clear(); n > 0 {
		m.Log.Debug("overlays dropped on swap", "from", from, "to", to, "count", n)
	}
	return nil
}

// animating reports whether the frame clock must keep running.
func (m *AppModel) animating() bool {
	if m.Mode != ModeReady {
		return false
	}
	return m.Controller.Animating() || m.Stage.Animating()
}

// ensureTicking starts the frame chain when something animates and no frame
// is scheduled yet.
func (m *AppModel) ensureTicking() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return m.Ticker()
}

// Close stops every animation. The model must not be used afterwards.
func (m *AppModel) Close() {
	if m.Stage != nil {
		m.Stage.Close()
	}
	if m.Controller != nil {
		m.Controller.Close()
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, assets.LoadCmd(a.ctx, a.Assets))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.ensureTicking())
}

func (a *appModelAdapter) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case assets.LoadedMsg:
		if a.Mode == ModeReady {
			return nil
		}
		if msg.Err != nil {
			a.Log.Warn("theme load failed, using defaults", "error", msg.Err)
		}
		return a.ready(msg.Theme)
	case tea.WindowSizeMsg:
		a.size = msg
	case spinner.TickMsg:
		if a.Mode == ModeLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return cmd
		}
	case anim.FrameMsg:
		a.ticking = false
		if a.Mode != ModeReady {
			return nil
		}
		swapCmd := a.Controller.Step(msg.Time)
		_, cmd := a.Stage.Update(msg)
		return tea.Batch(swapCmd, cmd)
	case ShowModalMsg:
		a.Log.Debug("modal opened", "title", msg.Modal.Title, "type", msg.Modal.Type)
		a.Overlays.Push(Overlay{View: msg.Modal})
		return nil
	case ModalClosedMsg:
		a.Log.Debug("modal closed")
		return a.Overlays.CloseTop()
	case GoBackMsg:
		if a.Mode != ModeReady {
			return nil
		}
		return a.Controller.Navigator(a.Screen()).GoBack()
	case TransitionRequestedMsg:
		a.Log.Debug("transition requested", "from", msg.From, "to", msg.To)
		return nil
	case tea.KeyMsg:
		if a.Overlays.Len() > 0 && msg.Type != tea.KeyCtrlC {
			// The top modal owns the keyboard; only ctrl+c stays global.
			if a.KeyHandler != nil {
				a.KeyHandler.Cancel()
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Screen()); consumed {
				return keyCmd
			}
		}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return cmd
		}
	}

	if a.Mode != ModeReady {
		return nil
	}
	_, cmd := a.Stage.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var base string
	switch {
	case a.Mode != ModeReady:
		base = a.spinner.View() + " " + Styles.Muted.Render("Loading assets...")
	case a.Overlays.Len() > 0:
		base = a.Overlays.View()
	default:
		base = a.Controller.Effect().Apply(a.Stage.View(), a.size.Width)
	}
	if a.size.Width > 0 && a.size.Height > 0 {
		base = lipgloss.Place(a.size.Width, a.size.Height-1, lipgloss.Center, lipgloss.Center, base)
	}
	if help := RenderKeybindHelp(a.KeyHandler, a.Screen()); help != "" {
		base += "\n" + help
	}
	return base
}
