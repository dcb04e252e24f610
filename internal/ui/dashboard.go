package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hakbang/internal/nav"
	"hakbang/internal/ui/textutil"
)

const dashboardWelcome = `# Welcome to HakbangQuest!

You are signed in. Your first quests are waiting:
lace up, head outside and let every **step** count.
`

// Quest is one entry of the dashboard's quest list.
type Quest struct {
	Name   string
	Steps  int
	Reward int
}

// DefaultQuests are shown to every new account.
var DefaultQuests = []Quest{
	{Name: "Morning Stroll", Steps: 2000, Reward: 10},
	{Name: "Neighbourhood Explorer", Steps: 5000, Reward: 25},
	{Name: "Weekend Trek", Steps: 12000, Reward: 60},
}

const questNameWidth = 24

// questItem implements list.Item for Quest.
type questItem struct {
	Quest
}

func (q questItem) FilterValue() string { return q.Name }
func (q questItem) Title() string {
	return fmt.Sprintf("%s %6d steps  %3d XP", textutil.PadRightVisual(q.Name, questNameWidth), q.Steps, q.Reward)
}
func (q questItem) Description() string { return "" }

type dashboardKeys struct {
	Back    key.Binding
	Landing key.Binding
}

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Landing, k.Back}
}

func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DashboardScreen is shown after signing in: a welcome card and the quest
// list.
type DashboardScreen struct {
	nav     nav.Navigator
	route   nav.Route
	welcome string
	list    list.Model
	keys    dashboardKeys
	help    help.Model
}

// Ensure DashboardScreen implements View.
var _ View = (*DashboardScreen)(nil)

// NewDashboardScreen creates the dashboard for one activation.
func NewDashboardScreen(n nav.Navigator, route nav.Route, deps ScreenDeps) *DashboardScreen {
	welcome := dashboardWelcome
	if deps.Markdown != nil {
		if out, err := deps.Markdown(dashboardWelcome); err == nil {
			welcome = strings.TrimSpace(out)
		} else if deps.Log != nil {
			deps.Log.Warn("render welcome markdown", "error", err)
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = Styles.Accent
	delegate.Styles.NormalTitle = Styles.Muted

	items := make([]list.Item, len(DefaultQuests))
	for i, q := range DefaultQuests {
		items[i] = questItem{Quest: q}
	}
	l := list.New(items, delegate, 60, 8)
	l.Title = "Today's Quests"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Gold.Bold(true)

	return &DashboardScreen{
		nav:     n,
		route:   route,
		welcome: welcome,
		list:    l,
		keys: dashboardKeys{
			Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
			Landing: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "back to landing")),
		},
		help: newHelp(),
	}
}

// Selected returns the index of the selected quest.
func (d *DashboardScreen) Selected() int {
	return d.list.Index()
}

// Init implements View.
func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.list.SetWidth(min(msg.Width, 60))
		return d, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, d.keys.Landing):
			return d, d.nav.Navigate(nav.Landing, nil)
		case key.Matches(msg, d.keys.Back):
			return d, d.nav.GoBack()
		}
	}

	// The list handles j/k/up/down itself.
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

// View implements View.
func (d *DashboardScreen) View() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		Styles.Box.Render(d.welcome),
		"",
		d.list.View(),
		"",
		renderButton("Back to Landing", true, false),
		"",
		d.help.View(d.keys),
	)
}
