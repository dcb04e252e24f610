package nav

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	target Screen
	params Params
}

type recorder struct {
	requests []request
}

func (r *recorder) RequestTransition(target Screen, params Params) tea.Cmd {
	r.requests = append(r.requests, request{target: target, params: params})
	return nil
}

func TestScreen_NamesAndParse(t *testing.T) {
	assert.Equal(t, "Landing", Screen{}.String(), "zero value is Landing")
	for _, s := range Screens() {
		got, ok := ParseScreen(s.String())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	got, ok := ParseScreen("dashboard")
	assert.True(t, ok)
	assert.Equal(t, Dashboard, got)

	_, ok = ParseScreen("Settings")
	assert.False(t, ok)
}

func TestGoBack_UsesStaticMap(t *testing.T) {
	cases := []struct {
		from, want Screen
	}{
		{Signup, Landing},
		{Login, Landing},
		{Dashboard, Login},
		{Landing, Landing},
	}
	for _, tc := range cases {
		t.Run(tc.from.String(), func(t *testing.T) {
			rec := &recorder{}
			NewFacade(tc.from, rec).GoBack()
			require.Len(t, rec.requests, 1)
			assert.Equal(t, tc.want, rec.requests[0].target)
		})
	}
}

func TestCanGoBack(t *testing.T) {
	rec := &recorder{}
	assert.False(t, NewFacade(Landing, rec).CanGoBack())
	assert.True(t, NewFacade(Dashboard, rec).CanGoBack())
	assert.Equal(t, Dashboard, NewFacade(Dashboard, rec).Current())
}

func TestNavigate_ThreadsEmailIntoLogin(t *testing.T) {
	rec := &recorder{}
	f := NewFacade(Signup, rec)

	f.Navigate(Login, Params{ParamKeyEmail: "a@b.com", "ignored": 1})
	f.Navigate(Login, nil)
	f.Navigate(Login, Params{ParamKeyEmail: ""})
	f.Navigate(Dashboard, nil)

	require.Len(t, rec.requests, 4)
	assert.Equal(t, Params{ParamKeyEmail: "a@b.com"}, rec.requests[0].params)
	assert.Nil(t, rec.requests[1].params)
	assert.Nil(t, rec.requests[2].params)
	assert.Equal(t, Dashboard, rec.requests[3].target)
}

func TestNewRoute(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	r := NewRouteAt(Login, nil, now)
	assert.Equal(t, Login, r.Name)
	assert.Equal(t, Params{}, r.Params)
	assert.Empty(t, r.Path)
	assert.Contains(t, r.Key, "Login-")

	later := NewRouteAt(Login, Params{ParamKeyEmail: "x@y.z"}, now.Add(time.Millisecond))
	assert.NotEqual(t, r.Key, later.Key)
	assert.Equal(t, "x@y.z", later.Params.String(ParamKeyEmail))
}

func TestParams_MergeOverwritesWithoutAliasing(t *testing.T) {
	base := Params{ParamKeyEmail: "old@x.io", "keep": true}
	merged := base.Merge(Params{ParamKeyEmail: "new@x.io"})

	assert.Equal(t, "new@x.io", merged.String(ParamKeyEmail))
	assert.Equal(t, true, merged["keep"])
	assert.Equal(t, "old@x.io", base.String(ParamKeyEmail), "receiver untouched")

	var nilBag Params
	assert.Equal(t, Params{"a": 1}, nilBag.Merge(Params{"a": 1}))
	assert.Equal(t, "", nilBag.String("missing"))
}
