package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"hakbang/internal/anim"
	"hakbang/internal/nav"
)

// TransitionTiming holds the durations of the two transition phases.
type TransitionTiming struct {
	Exit  time.Duration // collapse before the swap
	Enter time.Duration // expand after the swap; never shorter than Exit
}

// DefaultTransitionTiming matches the shipped configuration.
var DefaultTransitionTiming = TransitionTiming{
	Exit:  150 * time.Millisecond,
	Enter: 300 * time.Millisecond,
}

type phase int

const (
	phaseIdle phase = iota
	phaseExiting
	phaseEntering
)

func (p phase) String() string {
	switch p {
	case phaseExiting:
		return "exiting"
	case phaseEntering:
		return "entering"
	default:
		return "idle"
	}
}

// TransitionRequestedMsg is emitted for every request that starts or
// retargets a transition. No-op requests emit nothing.
type TransitionRequestedMsg struct {
	From, To nav.Screen
}

// SwapFunc is notified when the active screen changes. It runs inside the
// frame that completes the exit phase and may return a command.
type SwapFunc func(from, to nav.Screen) tea.Cmd

// TransitionController owns the navigation state: the active screen and the
// pending param bags. It sequences exit, swap and enter around every
// transition on a shared transition-scale value.
type TransitionController struct {
	active  nav.Screen
	target  nav.Screen
	pending map[nav.Screen]nav.Params
	// incoming is merged into pending[target] at the swap.
	incoming nav.Params
	phase    phase

	scale  *anim.Value
	driver anim.Driver
	timing TransitionTiming
	clock  Clock

	subscribers []SwapFunc
	swapCmds    []tea.Cmd

	log    *slog.Logger
	tracer oteltrace.Tracer
	span   oteltrace.Span
}

// Ensure the controller can back a nav.Navigator.
var _ nav.Transitioner = (*TransitionController)(nil)

// ControllerOption configures a TransitionController.
type ControllerOption func(*TransitionController)

// WithTiming sets the phase durations.
func WithTiming(t TransitionTiming) ControllerOption {
	return func(c *TransitionController) { c.timing = t }
}

// WithClock sets the time source used when a transition starts.
func WithClock(clock Clock) ControllerOption {
	return func(c *TransitionController) { c.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *TransitionController) { c.log = l }
}

// WithTracer records each transition as a span.
func WithTracer(t oteltrace.Tracer) ControllerOption {
	return func(c *TransitionController) { c.tracer = t }
}

// NewTransitionController starts idle on initial at full scale.
func NewTransitionController(initial nav.Screen, opts ...ControllerOption) *TransitionController {
	c := &TransitionController{
		active:  initial,
		target:  initial,
		pending: make(map[nav.Screen]nav.Params),
		scale:   anim.NewValue(1),
		timing:  DefaultTransitionTiming,
		clock:   time.Now,
		log:     slog.New(slog.DiscardHandler),
		tracer:  noop.NewTracerProvider().Tracer(""),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Active returns the active screen.
func (c *TransitionController) Active() nav.Screen { return c.active }

// Target returns the screen the controller is heading to: the pending target
// while collapsing, otherwise the active screen.
func (c *TransitionController) Target() nav.Screen {
	if c.phase == phaseExiting {
		return c.target
	}
	return c.active
}

// InFlight reports whether a transition is still animating.
func (c *TransitionController) InFlight() bool { return c.phase != phaseIdle }

// Scale returns the transition-scale value: 1 expanded, 0 collapsed.
func (c *TransitionController) Scale() float64 { return c.scale.Get() }

// Effect is the frame effect the scale value applies to the whole shell.
func (c *TransitionController) Effect() Effect {
	return Effect{Opacity: 1, Scale: c.scale.Get()}
}

// Params returns a copy of the param bag pending for s.
func (c *TransitionController) Params(s nav.Screen) nav.Params {
	return c.pending[s].Clone()
}

// Subscribe registers fn to be told about every swap.
func (c *TransitionController) Subscribe(fn SwapFunc) {
	c.subscribers = append(c.subscribers, fn)
}

// Navigator returns the navigation capability for screen s.
func (c *TransitionController) Navigator(s nav.Screen) nav.Navigator {
	return nav.NewFacade(s, c)
}

// RequestTransition asks for target to become active, carrying params.
// Requesting the screen the controller is already heading to is a no-op and
// returns nil; params are then merged only if the swap is still pending.
func (c *TransitionController) RequestTransition(target nav.Screen, params nav.Params) tea.Cmd {
	if target == c.Target() {
		if c.phase == phaseExiting && len(params) > 0 {
			c.incoming = c.incoming.Merge(params)
		}
		return nil
	}

	from := c.Target()
	switch c.phase {
	case phaseExiting:
		// Still collapsing: last request wins, the swap goes to the new target.
		c.log.Debug("transition retargeted", "from", c.target, "to", target)
		c.span.SetAttributes(attribute.Bool("retargeted", true), attribute.String("to", target.String()))
		c.target = target
		c.incoming = params.Clone()
	default:
		c.endSpan()
		c.target = target
		c.incoming = params.Clone()
		c.phase = phaseExiting
		_, c.span = c.tracer.Start(context.Background(), "screen.transition",
			oteltrace.WithAttributes(
				attribute.String("from", c.active.String()),
				attribute.String("to", target.String()),
			))
		c.log.Info("transition started", "from", c.active, "to", target)
		c.driver.Start(c.clock(), anim.Timing(c.scale, 0, c.timing.Exit, anim.EaseInOut), c.exitDone)
	}
	return func() tea.Msg { return TransitionRequestedMsg{From: from, To: target} }
}

func (c *TransitionController) exitDone(finished bool) {
	if !finished {
		return
	}
	from, to := c.active, c.target
	c.active = to
	c.pending[to] = c.pending[to].Merge(c.incoming)
	c.incoming = nil
	c.phase = phaseEntering

	if from != to {
		c.log.Debug("active screen swapped", "from", from, "to", to)
		c.span.AddEvent("swap")
		for _, fn := range c.subscribers {
			if cmd := fn(from, to); cmd != nil {
				c.swapCmds = append(c.swapCmds, cmd)
			}
		}
	}
	c.driver.Start(c.clock(), anim.Timing(c.scale, 1, c.timing.Enter, anim.OutCubic), c.enterDone)
}

func (c *TransitionController) enterDone(finished bool) {
	if !finished {
		return
	}
	c.phase = phaseIdle
	c.log.Debug("transition settled", "active", c.active)
	c.endSpan()
}

func (c *TransitionController) endSpan() {
	if c.span != nil {
		c.span.End()
		c.span = nil
	}
}

// Step advances the transition to now and returns commands produced by
// swap subscribers.
func (c *TransitionController) Step(now time.Time) tea.Cmd {
	c.driver.Step(now)
	if len(c.swapCmds) == 0 {
		return nil
	}
	cmds := c.swapCmds
	c.swapCmds = nil
	return tea.Batch(cmds...)
}

// Animating implements Animator.
func (c *TransitionController) Animating() bool {
	return c.driver.Active()
}

// Close stops every in-flight animation. The controller must not be used
// afterwards.
func (c *TransitionController) Close() {
	c.driver.StopAll()
	c.phase = phaseIdle
	c.endSpan()
}
