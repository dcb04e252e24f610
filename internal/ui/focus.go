package ui

import "slices"

// FocusManager tracks and rotates focus across the focusable controls of a
// screen (inputs, buttons, quick-pick chips).
type FocusManager struct {
	Current  string   // ID of the focused control
	Order    []string // Tab order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first control in order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next control in order, wrapping around.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus to the previous control, wrapping around.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

func (f *FocusManager) move(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	var next int
	switch {
	case idx < 0 && delta < 0:
		next = len(f.Order) - 1
	case idx < 0:
		next = 0
	default:
		next = (idx + delta + len(f.Order)) % len(f.Order)
	}
	f.set(f.Order[next])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in the order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

// Reset replaces the order, keeping the current focus when it survives.
func (f *FocusManager) Reset(order []string) {
	f.Order = order
	if !slices.Contains(order, f.Current) && len(order) > 0 {
		f.set(order[0])
	}
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
