package ui

// GoBackMsg asks the root model to go one level back from the active screen
// (C-x b).
type GoBackMsg struct{}

// ReadyMsg is sent once the assets have loaded and the first screen is
// mounted.
type ReadyMsg struct{}
