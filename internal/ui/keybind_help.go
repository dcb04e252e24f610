package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"hakbang/internal/nav"
)

// leaderKeyMap implements help.KeyMap over the hints reachable from the
// handler's current sequence.
type leaderKeyMap struct {
	handler *KeyHandler
	screen  nav.Screen
}

func (km leaderKeyMap) currentSeq() string {
	if len(km.handler.Buffer) == 0 {
		return ""
	}
	return strings.Join(km.handler.Buffer, " ")
}

// ShortHelp returns the next-key bindings sorted for stable display, plus esc.
func (km leaderKeyMap) ShortHelp() []key.Binding {
	hints := km.handler.Registry.LeaderHints(km.currentSeq(), km.screen)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

func (km leaderKeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}

// RenderKeybindHelp produces the transient help bar shown after the leader.
// Returns "" when the handler is not waiting for a key.
func RenderKeybindHelp(keyHandler *KeyHandler, screen nav.Screen) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	km := leaderKeyMap{handler: keyHandler, screen: screen}
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpContent := newHelp().ShortHelpView(bindings)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(Styles.Theme.Accent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := keyHandler.LeaderSeq
	if seq := km.currentSeq(); seq != "" {
		prefix = seq
	}
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + helpContent)
}
