// Package nav defines the closed set of screens, the param bags and route
// descriptors handed to them, and the narrow navigation capability screens
// use to request transitions.
package nav

import "strings"

// Screen identifies one of the four top-level screens. The field is
// unexported so other packages can only use the values below; the zero value
// is Landing.
type Screen struct {
	id uint8
}

var (
	Landing   = Screen{0}
	Signup    = Screen{1}
	Login     = Screen{2}
	Dashboard = Screen{3}
)

var screenNames = [...]string{"Landing", "Signup", "Login", "Dashboard"}

// Screens returns every screen in declaration order.
func Screens() []Screen {
	return []Screen{Landing, Signup, Login, Dashboard}
}

func (s Screen) String() string {
	return screenNames[s.id]
}

// ParseScreen resolves a screen by name, ignoring case.
func ParseScreen(name string) (Screen, bool) {
	for i, n := range screenNames {
		if strings.EqualFold(n, name) {
			return Screen{uint8(i)}, true
		}
	}
	return Screen{}, false
}
