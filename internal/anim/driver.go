package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// FrameMsg is one tick of the rendering clock.
type FrameMsg struct {
	Time time.Time
}

// Tick schedules the next FrameMsg at the given frame rate.
func Tick(fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// DoneFunc is called once when an animation ends. finished is false when the
// animation was stopped before reaching its end.
type DoneFunc func(finished bool)

type entry struct {
	anim Animation
	done DoneFunc
}

// Driver is the set of animations running on behalf of one owner.
// The zero value is ready to use.
type Driver struct {
	running []*entry
}

// Start starts a at now and tracks it until it ends. done may be nil.
func (d *Driver) Start(now time.Time, a Animation, done DoneFunc) {
	a.Start(now)
	d.running = append(d.running, &entry{anim: a, done: done})
}

// Step advances every running animation to now. Completion callbacks run in
// start order and may start further animations; those are first stepped on
// the next frame.
func (d *Driver) Step(now time.Time) {
	current := d.running
	d.running = nil
	var keep []*entry
	for _, e := range current {
		if !e.anim.Step(now) {
			keep = append(keep, e)
			continue
		}
		if e.done != nil {
			e.done(e.anim.Finished())
		}
	}
	d.running = append(keep, d.running...)
}

// Active reports whether any animation is still running.
func (d *Driver) Active() bool {
	return len(d.running) > 0
}

// StopAll stops every running animation and reports each as unfinished.
// Owners call it on teardown so no callback fires against destroyed state
// afterwards.
func (d *Driver) StopAll() {
	current := d.running
	d.running = nil
	for _, e := range current {
		e.anim.Stop()
		if e.done != nil {
			e.done(false)
		}
	}
}
