package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hakbang/internal/anim"
	"hakbang/internal/nav"
)

func newTestWrapper(active bool) (*ScreenWrapper, *fakeClock, *[]*stubView) {
	clock := newFakeClock()
	var mounted []*stubView
	w := NewScreenWrapper(nav.Login, AnimationScale, active, func() View {
		v := &stubView{name: "login"}
		mounted = append(mounted, v)
		return v
	}, DefaultWrapperTiming, clock.Now)
	return w, clock, &mounted
}

func frameWrapper(w *ScreenWrapper, clock *fakeClock, d time.Duration) {
	runFrames(clock, d, func(now time.Time) { w.Update(anim.FrameMsg{Time: now}) })
}

func TestScreenWrapper_InactiveRendersNothing(t *testing.T) {
	w, clock, mounted := newTestWrapper(false)

	assert.Empty(t, w.View())
	assert.False(t, w.Mounted())
	assert.Empty(t, *mounted, "children are not built while inactive")
	assert.Equal(t, WrapperHidden, w.State())

	frameWrapper(w, clock, time.Second)
	assert.Empty(t, w.View())
}

func TestScreenWrapper_ActiveAtConstruction(t *testing.T) {
	w, _, mounted := newTestWrapper(true)

	assert.Equal(t, "login", w.View())
	assert.Equal(t, WrapperVisible, w.State())
	require.Len(t, *mounted, 1)
	assert.False(t, w.Animating())
}

func TestScreenWrapper_EnterAnimatesIn(t *testing.T) {
	w, clock, mounted := newTestWrapper(false)

	w.SetActive(true)
	require.Len(t, *mounted, 1)
	assert.Equal(t, 1, (*mounted)[0].inits, "activation initialises the child")
	assert.Equal(t, WrapperVisible, w.State())
	assert.True(t, w.Animating())
	assert.Equal(t, 0.0, w.Effect().Opacity)
	assert.Equal(t, hiddenScale, w.Effect().Scale)

	frameWrapper(w, clock, DefaultWrapperTiming.Enter)
	assert.False(t, w.Animating())
	assert.Equal(t, Effect{Opacity: 1, Scale: 1}, w.Effect())
	assert.Equal(t, "login", w.View())
}

func TestScreenWrapper_ExitCompletesBeforeUnmount(t *testing.T) {
	w, clock, mounted := newTestWrapper(true)
	child := (*mounted)[0]

	w.SetActive(false)
	assert.Equal(t, WrapperExiting, w.State())
	assert.True(t, w.Mounted(), "the child stays mounted while it exits")

	clock.Advance(frame)
	w.Update(anim.FrameMsg{Time: clock.Now()})
	assert.NotEmpty(t, w.View())
	assert.Zero(t, child.closes)

	frameWrapper(w, clock, DefaultWrapperTiming.Exit)
	assert.False(t, w.Mounted())
	assert.Equal(t, WrapperHidden, w.State())
	assert.Equal(t, 1, child.closes)
	assert.Empty(t, w.View())
}

func TestScreenWrapper_ReactivateDuringExitKeepsChild(t *testing.T) {
	w, clock, mounted := newTestWrapper(true)

	w.SetActive(false)
	frameWrapper(w, clock, 100*time.Millisecond)
	require.True(t, w.Mounted())

	assert.Nil(t, w.SetActive(true), "no new child, no Init")
	frameWrapper(w, clock, time.Second)
	assert.True(t, w.Mounted())
	assert.Len(t, *mounted, 1)
	assert.Equal(t, WrapperVisible, w.State())
	assert.Equal(t, 1.0, w.Effect().Opacity)
}

func TestScreenWrapper_RemountsFreshChild(t *testing.T) {
	w, clock, mounted := newTestWrapper(true)

	w.SetActive(false)
	frameWrapper(w, clock, time.Second)
	w.SetActive(true)

	require.Len(t, *mounted, 2)
	assert.NotSame(t, (*mounted)[0], (*mounted)[1])
}

func TestScreenWrapper_KeysOnlyWhenVisible(t *testing.T) {
	w, _, mounted := newTestWrapper(true)
	child := (*mounted)[0]

	w.Update(keyMsg("a"))
	w.SetActive(false)
	w.Update(keyMsg("b"))

	assert.Equal(t, []string{"a"}, child.keys)
}

func TestScreenWrapper_AnimationTypes(t *testing.T) {
	clock := newFakeClock()
	mount := func() View { return &stubView{name: "x"} }
	for _, tc := range []struct {
		typ  AnimationType
		want Effect
	}{
		{AnimationFade, Effect{Opacity: 0, Scale: 1}},
		{AnimationScale, Effect{Opacity: 0, Scale: hiddenScale}},
		{AnimationSlide, Effect{Opacity: 0, Scale: 1, OffsetY: hiddenOffset}},
	} {
		w := NewScreenWrapper(nav.Landing, tc.typ, false, mount, DefaultWrapperTiming, clock.Now)
		assert.Equal(t, tc.want, w.Effect(), tc.typ.String())
	}
}

func TestScreenWrapper_CloseUnmounts(t *testing.T) {
	w, _, mounted := newTestWrapper(true)
	w.SetActive(false)
	w.Close()

	assert.False(t, w.Mounted())
	assert.False(t, w.Animating())
	assert.Equal(t, 1, (*mounted)[0].closes)
	_, cmd := w.Update(tea.WindowSizeMsg{Width: 80})
	assert.Nil(t, cmd)
}
