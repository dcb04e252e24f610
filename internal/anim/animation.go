package anim

import "time"

// Value is an animatable scalar. At most one Timing drives a Value at a time;
// starting a new Timing on it stops the previous one.
type Value struct {
	v      float64
	driver *timing
}

// NewValue returns a Value initialised to v.
func NewValue(v float64) *Value {
	return &Value{v: v}
}

// Get returns the current value.
func (v *Value) Get() float64 { return v.v }

// Set jumps to x, stopping any in-flight interpolation.
func (v *Value) Set(x float64) {
	v.Stop()
	v.v = x
}

// Stop cancels the interpolation currently driving v, if any.
func (v *Value) Stop() {
	if v.driver != nil {
		v.driver.Stop()
	}
}

// Animating reports whether a Timing currently drives v.
func (v *Value) Animating() bool { return v.driver != nil }

func (v *Value) attach(t *timing) {
	if v.driver != nil && v.driver != t {
		v.driver.Stop()
	}
	v.driver = t
}

func (v *Value) detach(t *timing) {
	if v.driver == t {
		v.driver = nil
	}
}

// Animation is a restartable unit of interpolation.
type Animation interface {
	// Start (re)starts the animation at now.
	Start(now time.Time)
	// Step advances to now and reports whether the animation has ended.
	Step(now time.Time) bool
	// Stop ends the animation early. Finished then reports false.
	Stop()
	// Finished reports whether the animation ran to completion.
	Finished() bool
}

type timing struct {
	value    *Value
	to       float64
	duration time.Duration
	ease     Easing

	from     float64
	start    time.Time
	ended    bool
	finished bool
}

// Timing tweens v to the target over d using ease. A nil ease is Linear.
// v may be nil, in which case the animation only waits (see Delay).
func Timing(v *Value, to float64, d time.Duration, ease Easing) Animation {
	if ease == nil {
		ease = Linear
	}
	return &timing{value: v, to: to, duration: d, ease: ease}
}

// Delay waits for d without driving any value.
func Delay(d time.Duration) Animation {
	return Timing(nil, 0, d, nil)
}

func (t *timing) Start(now time.Time) {
	t.start = now
	t.ended = false
	t.finished = false
	if t.value != nil {
		t.from = t.value.v
		t.value.attach(t)
	}
	if t.duration <= 0 {
		t.complete()
	}
}

func (t *timing) Step(now time.Time) bool {
	if t.ended {
		return true
	}
	p := clamp01(float64(now.Sub(t.start)) / float64(t.duration))
	if p >= 1 {
		t.complete()
		return true
	}
	if t.value != nil {
		t.value.v = t.from + (t.to-t.from)*t.ease(p)
	}
	return false
}

func (t *timing) complete() {
	if t.value != nil {
		t.value.v = t.to
		t.value.detach(t)
	}
	t.ended = true
	t.finished = true
}

func (t *timing) Stop() {
	if t.ended {
		return
	}
	t.ended = true
	if t.value != nil {
		t.value.detach(t)
	}
}

func (t *timing) Finished() bool { return t.finished }

type parallel struct {
	children []Animation
	ended    []bool
	done     bool
	finished bool
}

// Parallel runs children together. It ends when every child has ended and is
// finished only if every child finished.
func Parallel(children ...Animation) Animation {
	return &parallel{children: children, ended: make([]bool, len(children))}
}

func (p *parallel) Start(now time.Time) {
	p.done = false
	p.finished = false
	for i, c := range p.children {
		p.ended[i] = false
		c.Start(now)
	}
}

func (p *parallel) Step(now time.Time) bool {
	if p.done {
		return true
	}
	all := true
	for i, c := range p.children {
		if p.ended[i] {
			continue
		}
		if c.Step(now) {
			p.ended[i] = true
		} else {
			all = false
		}
	}
	if all {
		p.done = true
		p.finished = true
		for _, c := range p.children {
			if !c.Finished() {
				p.finished = false
			}
		}
	}
	return p.done
}

func (p *parallel) Stop() {
	if p.done {
		return
	}
	for _, c := range p.children {
		c.Stop()
	}
	p.done = true
	p.finished = false
}

func (p *parallel) Finished() bool { return p.finished }

type sequence struct {
	children []Animation
	idx      int
	done     bool
	finished bool
}

// Sequence runs children one after another. A child that is stopped ends the
// whole sequence unfinished.
func Sequence(children ...Animation) Animation {
	return &sequence{children: children}
}

func (s *sequence) Start(now time.Time) {
	s.idx = 0
	s.done = false
	s.finished = false
	if len(s.children) == 0 {
		s.done = true
		s.finished = true
		return
	}
	s.children[0].Start(now)
}

func (s *sequence) Step(now time.Time) bool {
	for !s.done {
		cur := s.children[s.idx]
		if !cur.Step(now) {
			return false
		}
		if !cur.Finished() {
			s.done = true
			return true
		}
		s.idx++
		if s.idx == len(s.children) {
			s.done = true
			s.finished = true
			return true
		}
		s.children[s.idx].Start(now)
	}
	return true
}

func (s *sequence) Stop() {
	if s.done {
		return
	}
	s.children[s.idx].Stop()
	s.done = true
}

func (s *sequence) Finished() bool { return s.finished }

type loop struct {
	inner   Animation
	stopped bool
}

// Loop restarts inner every time it finishes. It only ends when stopped.
func Loop(inner Animation) Animation {
	return &loop{inner: inner}
}

func (l *loop) Start(now time.Time) {
	l.stopped = false
	l.inner.Start(now)
}

func (l *loop) Step(now time.Time) bool {
	if l.stopped {
		return true
	}
	if l.inner.Step(now) {
		if !l.inner.Finished() {
			l.stopped = true
			return true
		}
		l.inner.Start(now)
	}
	return false
}

func (l *loop) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	l.inner.Stop()
}

func (l *loop) Finished() bool { return false }
