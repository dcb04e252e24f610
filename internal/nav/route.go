package nav

import (
	"fmt"
	"maps"
	"time"
)

// ParamKeyEmail carries a prefilled email into the Login screen.
const ParamKeyEmail = "email"

// Params is the key-value bag attached to a screen activation.
type Params map[string]any

// String returns the string stored at key, or "" if absent or not a string.
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Clone returns a shallow copy. A nil bag clones to an empty one.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	maps.Copy(out, p)
	return out
}

// Merge returns a copy of p with every key of other written over it.
func (p Params) Merge(other Params) Params {
	out := p.Clone()
	maps.Copy(out, other)
	return out
}

// Route describes one activation of a screen.
type Route struct {
	Key    string
	Name   Screen
	Params Params
	Path   string
}

// NewRoute builds the route for an activation of s happening now.
func NewRoute(s Screen, params Params) Route {
	return NewRouteAt(s, params, time.Now())
}

// NewRouteAt builds a route with an explicit timestamp. The key combines the
// screen name and the timestamp so repeated activations get distinct keys.
func NewRouteAt(s Screen, params Params, now time.Time) Route {
	if params == nil {
		params = Params{}
	}
	return Route{
		Key:    fmt.Sprintf("%s-%d", s, now.UnixNano()),
		Name:   s,
		Params: params,
	}
}
