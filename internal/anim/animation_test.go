package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestTiming_InterpolatesLinearly(t *testing.T) {
	v := NewValue(0)
	a := Timing(v, 1, 100*time.Millisecond, Linear)
	a.Start(at(0))

	assert.False(t, a.Step(at(50)))
	assert.InDelta(t, 0.5, v.Get(), 1e-9)
	assert.True(t, v.Animating())

	assert.True(t, a.Step(at(100)))
	assert.Equal(t, 1.0, v.Get())
	assert.True(t, a.Finished())
	assert.False(t, v.Animating())
}

func TestTiming_ZeroDurationCompletesOnStart(t *testing.T) {
	v := NewValue(3)
	a := Timing(v, 7, 0, nil)
	a.Start(at(0))
	assert.Equal(t, 7.0, v.Get())
	assert.True(t, a.Step(at(0)))
	assert.True(t, a.Finished())
}

func TestTiming_NewTimingStopsPrevious(t *testing.T) {
	v := NewValue(0)
	first := Timing(v, 1, 100*time.Millisecond, Linear)
	first.Start(at(0))
	first.Step(at(40))

	second := Timing(v, 0, 100*time.Millisecond, Linear)
	second.Start(at(40))

	assert.True(t, first.Step(at(50)), "stopped timing reports ended")
	assert.False(t, first.Finished())
	assert.InDelta(t, 0.4, v.Get(), 1e-9, "stopped timing no longer writes")

	second.Step(at(140))
	assert.Equal(t, 0.0, v.Get())
}

func TestValue_SetStopsInterpolation(t *testing.T) {
	v := NewValue(0)
	a := Timing(v, 1, 100*time.Millisecond, Linear)
	a.Start(at(0))
	v.Set(0.25)
	assert.True(t, a.Step(at(50)))
	assert.False(t, a.Finished())
	assert.Equal(t, 0.25, v.Get())
}

func TestParallel_RunsChildrenTogether(t *testing.T) {
	opacity := NewValue(0)
	offset := NewValue(50)
	a := Parallel(
		Timing(opacity, 1, 300*time.Millisecond, Linear),
		Timing(offset, 0, 150*time.Millisecond, Linear),
	)
	a.Start(at(0))

	assert.False(t, a.Step(at(150)))
	assert.InDelta(t, 0.5, opacity.Get(), 1e-9)
	assert.Equal(t, 0.0, offset.Get())

	assert.True(t, a.Step(at(300)))
	assert.True(t, a.Finished())
	assert.Equal(t, 1.0, opacity.Get())
}

func TestSequence_RunsChildrenInOrder(t *testing.T) {
	shake := NewValue(0)
	a := Sequence(
		Timing(shake, 10, 100*time.Millisecond, Linear),
		Timing(shake, -10, 100*time.Millisecond, Linear),
		Timing(shake, 0, 100*time.Millisecond, Linear),
	)
	a.Start(at(0))

	assert.False(t, a.Step(at(100)))
	assert.Equal(t, 10.0, shake.Get())
	assert.False(t, a.Step(at(150)))
	assert.InDelta(t, 0.0, shake.Get(), 1e-9)
	assert.False(t, a.Step(at(200)))
	assert.Equal(t, -10.0, shake.Get())
	assert.True(t, a.Step(at(400)))
	assert.True(t, a.Finished())
	assert.Equal(t, 0.0, shake.Get())
}

func TestSequence_StoppedChildEndsUnfinished(t *testing.T) {
	v := NewValue(1)
	a := Sequence(
		Timing(v, 0.96, 90*time.Millisecond, Linear),
		Timing(v, 1, 90*time.Millisecond, Linear),
	)
	a.Start(at(0))
	v.Stop()
	assert.True(t, a.Step(at(10)))
	assert.False(t, a.Finished())
}

func TestLoop_RestartsUntilStopped(t *testing.T) {
	pulse := NewValue(1)
	a := Loop(Sequence(
		Timing(pulse, 1.05, 100*time.Millisecond, EaseInOut),
		Timing(pulse, 1, 100*time.Millisecond, EaseInOut),
	))
	a.Start(at(0))
	for ms := 0; ms <= 1000; ms += 50 {
		require.False(t, a.Step(at(ms)))
	}
	a.Stop()
	assert.True(t, a.Step(at(1050)))
	assert.False(t, a.Finished())
}

func TestEasing_Endpoints(t *testing.T) {
	for name, e := range map[string]Easing{
		"linear":    Linear,
		"easeInOut": EaseInOut,
		"outCubic":  OutCubic,
		"outBack":   OutBack(1.2),
	} {
		assert.InDelta(t, 0, e(0), 1e-9, name)
		assert.InDelta(t, 1, e(1), 1e-9, name)
	}
	assert.Greater(t, OutBack(1.2)(0.8), 1.0, "outBack overshoots")
}
