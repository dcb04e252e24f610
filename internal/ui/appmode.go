package ui

// AppMode represents the readiness of the application shell.
type AppMode int

const (
	// ModeLoading: assets are loading; no controller or screen is mounted.
	ModeLoading AppMode = iota
	// ModeReady: the transition controller and the active screen are mounted.
	ModeReady
)

func (m AppMode) String() string {
	switch m {
	case ModeLoading:
		return "Loading"
	case ModeReady:
		return "Ready"
	default:
		return "Unknown"
	}
}
