package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"hakbang/internal/anim"
	"hakbang/internal/config"
	"hakbang/internal/logging"
)

const frame = 16 * time.Millisecond

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// runFrames advances clock frame by frame for d, calling step each frame.
func runFrames(clock *fakeClock, d time.Duration, step func(now time.Time)) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		step(clock.Advance(frame))
	}
}

// execCmd runs c, giving up on commands that block longer than a test should
// wait (spinner ticks, cursor blinks).
func execCmd(c tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- c() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(50 * time.Millisecond):
		return nil, false
	}
}

// appHarness drives the root model the way the Bubble Tea runtime does,
// except that frames are sent by hand against a fake clock.
type appHarness struct {
	t     *testing.T
	app   *AppModel
	model tea.Model
	clock *fakeClock
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Log.File = ""
	cfg.Landing.BootDelay = time.Millisecond
	cfg.Mock.LoginDelay = time.Millisecond
	cfg.Mock.ResetDelay = time.Millisecond
	cfg.Mock.SignupDelay = time.Millisecond
	return cfg
}

// newAppHarness starts the app and waits until the landing page has booted.
func newAppHarness(t *testing.T) *appHarness {
	t.Helper()
	clock := newFakeClock()
	app := NewAppModel(context.Background(), testConfig(), logging.NewNop())
	app.Clock = clock.Now
	app.Ticker = func() tea.Cmd { return nil }
	app.Markdown = func(md string) (string, error) { return md, nil }
	h := &appHarness{t: t, app: app, model: app.AsTeaModel(), clock: clock}
	t.Cleanup(app.Close)

	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.run(h.model.Init())
	require.Equal(t, ModeReady, app.Mode)
	h.frames(time.Second)
	return h
}

func (h *appHarness) send(msg tea.Msg) {
	_, cmd := h.model.Update(msg)
	h.run(cmd)
}

func (h *appHarness) key(k string) {
	h.send(keyMsg(k))
}

func (h *appHarness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// frames sends frame messages covering d.
func (h *appHarness) frames(d time.Duration) {
	runFrames(h.clock, d, func(now time.Time) {
		h.send(anim.FrameMsg{Time: now})
	})
}

// run executes cmd and feeds every resulting message back into the model.
func (h *appHarness) run(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0 && i < 200; i++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg, ok := execCmd(c)
		if !ok {
			continue
		}
		switch msg := msg.(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			return
		default:
			_, next := h.model.Update(msg)
			queue = append(queue, next)
		}
	}
}

func (h *appHarness) child() View {
	h.t.Helper()
	require.Nil(h.t, h.app.Stage.Leaving(), "a screen is still leaving")
	return h.app.Stage.Current().Child()
}

func (h *appHarness) topModal() *Modal {
	h.t.Helper()
	top, ok := h.app.Overlays.Peek()
	require.True(h.t, ok, "expected a modal")
	m, ok := top.View.(*Modal)
	require.True(h.t, ok, "top overlay is %T", top.View)
	return m
}

// stubView records what a wrapper does to its child.
type stubView struct {
	name   string
	inits  int
	closes int
	keys   []string
}

func (s *stubView) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		s.keys = append(s.keys, k.String())
	}
	return s, nil
}

func (s *stubView) View() string { return s.name }

func (s *stubView) Close() { s.closes++ }
