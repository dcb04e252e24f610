package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hakbang/internal/anim"
	"hakbang/internal/nav"
)

// AnimationType selects which channels a ScreenWrapper animates.
type AnimationType int

const (
	AnimationSlide AnimationType = iota // opacity + vertical translation (default)
	AnimationFade                       // opacity only
	AnimationScale                      // opacity + scale
)

func (a AnimationType) String() string {
	switch a {
	case AnimationFade:
		return "fade"
	case AnimationScale:
		return "scale"
	default:
		return "slide"
	}
}

// WrapperTiming holds the wrapper's enter and exit durations.
type WrapperTiming struct {
	Enter time.Duration
	Exit  time.Duration
}

// DefaultWrapperTiming matches the shipped configuration.
var DefaultWrapperTiming = WrapperTiming{
	Enter: 300 * time.Millisecond,
	Exit:  200 * time.Millisecond,
}

// Hidden-state channel values.
const (
	hiddenOffset = 50
	hiddenScale  = 0.95
)

// WrapperState is the visibility state of a ScreenWrapper.
type WrapperState int

const (
	WrapperHidden WrapperState = iota
	WrapperVisible
	// WrapperExiting keeps children mounted until the exit animation ends.
	WrapperExiting
)

func (s WrapperState) String() string {
	switch s {
	case WrapperVisible:
		return "visible"
	case WrapperExiting:
		return "exiting"
	default:
		return "hidden"
	}
}

// ScreenWrapper mounts a screen while it is active and animates it in and out.
// Children are built by mount on every activation and discarded once the
// exit animation has completed.
type ScreenWrapper struct {
	Screen nav.Screen
	Type   AnimationType

	mount  func() View
	child  View
	active bool
	state  WrapperState

	opacity *anim.Value
	offset  *anim.Value
	scale   *anim.Value
	driver  anim.Driver
	timing  WrapperTiming
	clock   Clock
	width   int
}

// Ensure ScreenWrapper implements View.
var _ View = (*ScreenWrapper)(nil)

// NewScreenWrapper creates a wrapper. When active is true the child is
// mounted immediately at full visibility; otherwise nothing is rendered until
// SetActive(true).
func NewScreenWrapper(s nav.Screen, typ AnimationType, active bool, mount func() View, timing WrapperTiming, clock Clock) *ScreenWrapper {
	if clock == nil {
		clock = time.Now
	}
	w := &ScreenWrapper{
		Screen:  s,
		Type:    typ,
		mount:   mount,
		active:  active,
		timing:  timing,
		clock:   clock,
		opacity: anim.NewValue(0),
		offset:  anim.NewValue(hiddenOffset),
		scale:   anim.NewValue(hiddenScale),
	}
	if active {
		w.opacity.Set(1)
		w.offset.Set(0)
		w.scale.Set(1)
		w.child = mount()
		w.state = WrapperVisible
	}
	return w
}

// State returns the visibility state.
func (w *ScreenWrapper) State() WrapperState { return w.state }

// Active reports the last value given to SetActive.
func (w *ScreenWrapper) Active() bool { return w.active }

// Mounted reports whether the child is in the render tree.
func (w *ScreenWrapper) Mounted() bool { return w.child != nil }

// Child returns the mounted child, or nil.
func (w *ScreenWrapper) Child() View { return w.child }

// SetActive flips the wrapper. Activating mounts the child (if needed) and
// returns its Init command.
func (w *ScreenWrapper) SetActive(active bool) tea.Cmd {
	if active == w.active {
		return nil
	}
	w.active = active
	now := w.clock()

	if active {
		var cmd tea.Cmd
		if w.child == nil {
			w.child = w.mount()
			cmd = w.child.Init()
		}
		w.state = WrapperVisible
		w.driver.Start(now, anim.Parallel(
			anim.Timing(w.opacity, 1, w.timing.Enter, anim.OutCubic),
			anim.Timing(w.offset, 0, w.timing.Enter, anim.OutCubic),
			anim.Timing(w.scale, 1, w.timing.Enter, anim.OutCubic),
		), nil)
		return cmd
	}

	w.state = WrapperExiting
	w.driver.Start(now, anim.Parallel(
		anim.Timing(w.opacity, 0, w.timing.Exit, anim.EaseInOut),
		anim.Timing(w.offset, hiddenOffset, w.timing.Exit, anim.EaseInOut),
		anim.Timing(w.scale, hiddenScale, w.timing.Exit, anim.EaseInOut),
	), w.exitDone)
	return nil
}

func (w *ScreenWrapper) exitDone(finished bool) {
	// An unfinished exit was interrupted by re-activation or teardown.
	if !finished || w.active {
		return
	}
	w.unmount()
	w.state = WrapperHidden
}

func (w *ScreenWrapper) unmount() {
	if w.child != nil {
		closeView(w.child)
		w.child = nil
	}
}

// Effect returns the frame effect for the channels of w.Type.
func (w *ScreenWrapper) Effect() Effect {
	e := Effect{Opacity: w.opacity.Get(), Scale: 1}
	switch w.Type {
	case AnimationFade:
	case AnimationScale:
		e.Scale = w.scale.Get()
	default:
		e.OffsetY = w.offset.Get()
	}
	return e
}

// Init implements View.
func (w *ScreenWrapper) Init() tea.Cmd {
	if w.child == nil {
		return nil
	}
	return w.child.Init()
}

// Update implements View. Frames advance the wrapper's own animations before
// reaching the child; keys only reach a visible child.
func (w *ScreenWrapper) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case anim.FrameMsg:
		w.driver.Step(msg.Time)
	case tea.WindowSizeMsg:
		w.width = msg.Width
	case tea.KeyMsg:
		if w.state != WrapperVisible {
			return w, nil
		}
	}
	if w.child == nil {
		return w, nil
	}
	var cmd tea.Cmd
	w.child, cmd = w.child.Update(msg)
	return w, cmd
}

// View implements View.
func (w *ScreenWrapper) View() string {
	if w.child == nil {
		return ""
	}
	return w.Effect().Apply(w.child.View(), w.width)
}

// Animating implements Animator.
func (w *ScreenWrapper) Animating() bool {
	return w.driver.Active() || (w.child != nil && animating(w.child))
}

// Close stops every owned animation and unmounts the child.
func (w *ScreenWrapper) Close() {
	w.driver.StopAll()
	w.unmount()
	w.state = WrapperHidden
}
