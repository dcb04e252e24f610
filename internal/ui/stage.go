package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"hakbang/internal/anim"
	"hakbang/internal/nav"
)

// ScreenBuilder constructs a fresh screen for one activation.
type ScreenBuilder func(s nav.Screen) View

// screenAnimations is the wrapper animation used for each screen.
var screenAnimations = map[nav.Screen]AnimationType{
	nav.Landing:   AnimationFade,
	nav.Signup:    AnimationScale,
	nav.Login:     AnimationScale,
	nav.Dashboard: AnimationSlide,
}

// Stage renders exactly one screen at a time. It keeps the wrapper of the
// active screen and, while its exit animation runs, the wrapper of the
// screen being left. The incoming wrapper starts entering only once the
// leaving one has fully exited.
type Stage struct {
	current *ScreenWrapper
	leaving *ScreenWrapper

	build  ScreenBuilder
	timing WrapperTiming
	clock  Clock
	log    *slog.Logger
	size   tea.WindowSizeMsg
}

// Ensure Stage implements View.
var _ View = (*Stage)(nil)

// NewStage mounts initial immediately.
func NewStage(initial nav.Screen, build ScreenBuilder, timing WrapperTiming, clock Clock, log *slog.Logger) *Stage {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Stage{build: build, timing: timing, clock: clock, log: log}
	s.current = s.wrap(initial, true)
	return s
}

func (s *Stage) wrap(screen nav.Screen, active bool) *ScreenWrapper {
	return NewScreenWrapper(screen, screenAnimations[screen], active, func() View {
		s.log.Debug("screen mounted", "screen", screen)
		return s.build(screen)
	}, s.timing, s.clock)
}

// Current returns the wrapper of the active screen.
func (s *Stage) Current() *ScreenWrapper { return s.current }

// Leaving returns the wrapper still exiting, or nil.
func (s *Stage) Leaving() *ScreenWrapper { return s.leaving }

// Show makes screen the active variant. It is a SwapFunc for the controller.
func (s *Stage) Show(from, to nav.Screen) tea.Cmd {
	if s.current != nil && s.current.Screen == to {
		return nil
	}
	if s.leaving != nil {
		// A second swap arrived before the previous exit ended.
		s.leaving.Close()
		s.leaving = nil
	}
	old := s.current
	s.current = s.wrap(to, false)
	if old == nil {
		return s.activateCurrent()
	}
	old.SetActive(false)
	s.leaving = old
	return nil
}

func (s *Stage) activateCurrent() tea.Cmd {
	cmd := s.current.SetActive(true)
	if s.size.Width > 0 {
		s.current.Update(s.size)
	}
	return cmd
}

// Init implements View.
func (s *Stage) Init() tea.Cmd {
	return s.current.Init()
}

// Update implements View. Keys go to the active screen only, and not while
// the previous one is still exiting.
func (s *Stage) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.size = msg
	case tea.KeyMsg:
		if s.leaving != nil {
			return s, nil
		}
		_, cmd := s.current.Update(msg)
		return s, cmd
	case anim.FrameMsg:
		if s.leaving != nil {
			_, cmd := s.leaving.Update(msg)
			cmds = append(cmds, cmd)
			if !s.leaving.Mounted() {
				s.leaving = nil
				cmds = append(cmds, s.activateCurrent())
			}
		}
		_, cmd := s.current.Update(msg)
		cmds = append(cmds, cmd)
		return s, tea.Batch(cmds...)
	}

	if s.leaving != nil {
		_, cmd := s.leaving.Update(msg)
		cmds = append(cmds, cmd)
	}
	_, cmd := s.current.Update(msg)
	cmds = append(cmds, cmd)
	return s, tea.Batch(cmds...)
}

// View implements View.
func (s *Stage) View() string {
	if s.leaving != nil {
		return s.leaving.View()
	}
	return s.current.View()
}

// Animating implements Animator.
func (s *Stage) Animating() bool {
	return s.current.Animating() || (s.leaving != nil && s.leaving.Animating())
}

// Close tears down both wrappers.
func (s *Stage) Close() {
	if s.leaving != nil {
		s.leaving.Close()
		s.leaving = nil
	}
	s.current.Close()
}
