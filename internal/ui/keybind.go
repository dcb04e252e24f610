package ui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"hakbang/internal/nav"
)

// Leader key in tea.KeyMsg.String() format and in sequence notation.
const (
	leaderKey = "ctrl+x"
	leaderSeq = "C-x"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use emacs-style notation: "C-x" for the leader, "C-x q" for
// the leader then q. Single keys: "ctrl+c", "enter".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	screenFilter map[string][]nav.Screen // nil/empty = applies to every screen
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		screenFilter: make(map[string][]nav.Screen),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help bar.
// The binding applies on every screen.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForScreens(seq, cmd, desc, nil)
}

// BindWithDescForScreens registers a key sequence that only fires on the
// given screens. If screens is empty, the binding applies everywhere.
func (r *KeybindRegistry) BindWithDescForScreens(seq string, cmd tea.Cmd, desc string, screens []nav.Screen) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(screens) > 0 {
		r.screenFilter[n] = screens
	} else {
		delete(r.screenFilter, n)
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupOn is Lookup restricted to bindings active on screen.
func (r *KeybindRegistry) LookupOn(seq string, screen nav.Screen) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, screen) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns hints for the keys that may follow currentSeq (or the
// leader itself when currentSeq is empty) on the given screen. Keys that open
// a longer sequence are shown with a trailing ellipsis.
func (r *KeybindRegistry) LeaderHints(currentSeq string, screen nav.Screen) map[string]string {
	out := make(map[string]string)
	prefix := leaderSeq + " "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		if !r.appliesTo(seq, screen) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		k := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			k = parts[0]
		}
		switch d, ok := r.descriptions[seq]; {
		case r.HasPrefix(prefix + k):
			out[k] = k + "…"
		case ok && d != "":
			out[k] = d
		default:
			out[k] = seq
		}
	}
	return out
}

// appliesTo reports whether the binding is active on screen.
func (r *KeybindRegistry) appliesTo(seq string, screen nav.Screen) bool {
	screens, ok := r.screenFilter[seq]
	return !ok || len(screens) == 0 || slices.Contains(screens, screen)
}

// normalizeSeq converts tea key strings to our canonical format.
// "ctrl+x q" -> "C-x q", "ctrl+c" -> "ctrl+c".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if len(parts) > 1 {
		for i, p := range parts {
			parts[i] = keyToSeqPart(p)
		}
	} else if len(parts) == 1 && parts[0] == leaderKey {
		parts[0] = leaderSeq
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // "ctrl+x" (tea.KeyMsg.String() format)
	LeaderSeq     string   // "C-x" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with ctrl+x as leader. Space cannot be the
// leader because the form screens type it into their inputs.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: leaderKey,
		LeaderSeq: leaderSeq,
	}
}

// Handle processes a KeyMsg for the given screen. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should
// not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, screen nav.Screen) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	// Esc cancels leader mode
	if s == "esc" {
		if h.LeaderWaiting {
			h.Cancel()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	// In leader mode: append key and look up
	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.LookupOn(seq, screen); c != nil {
			h.Cancel()
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.Cancel()
		return true, nil
	}

	// Not in leader mode: check single-key bindings
	if c := h.Registry.LookupOn(keyToSeqPart(s), screen); c != nil {
		return true, c
	}
	return false, nil
}

// Cancel leaves leader mode.
func (h *KeyHandler) Cancel() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	switch s {
	case leaderKey:
		return leaderSeq
	case " ", "space":
		return "SPC"
	}
	return s
}
