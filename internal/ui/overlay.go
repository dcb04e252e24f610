package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal view drawn above the active screen. The topmost overlay
// receives all key input.
type Overlay struct {
	View View
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay and stores the resulting View.
// Returns the overlay's cmd and whether an overlay was present.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// CloseTop pops the top overlay. If it is a Modal with an OnClose callback,
// the callback runs and its command is returned.
func (s *OverlayStack) CloseTop() tea.Cmd {
	top, ok := s.Pop()
	if !ok {
		return nil
	}
	if m, ok := top.View.(*Modal); ok && m.OnClose != nil {
		return m.OnClose()
	}
	return nil
}

// Clear drops every overlay without running close callbacks. Returns the
// number dropped.
func (s *OverlayStack) Clear() int {
	n := len(s.Stack)
	s.Stack = nil
	return n
}

// View renders the top overlay, or "" when empty.
func (s *OverlayStack) View() string {
	top, ok := s.Peek()
	if !ok {
		return ""
	}
	return top.View.View()
}
