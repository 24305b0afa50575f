package tui

import (
	"eddington/internal/config"
	"eddington/internal/search"
	"eddington/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenEddington Screen = iota
	ScreenActivities
	ScreenFilter
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	eddington  EddingtonModel
	activities ActivitiesModel
	filter     FilterModel
	help       HelpModel

	// Services and shared state
	queryService *service.QueryService
	query        search.Query // the filter every screen shares

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(queryService *service.QueryService, display config.DisplayConfig) *App {
	return &App{
		screen:       ScreenEddington,
		queryService: queryService,
		eddington:    NewEddingtonModel(queryService, display),
		activities:   NewActivitiesModel(queryService, display.PageSize),
		filter:       NewFilterModel(queryService),
		help:         NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.eddington.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings, except while the filter editor owns input
		if a.screen != ScreenFilter || !a.filter.editing {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenEddington
				a.eddington.query = a.query
				return a, a.eddington.Init()
			case "2":
				a.screen = ScreenActivities
				a.activities.query = a.query
				return a, a.activities.Init()
			case "3", "f":
				if a.screen != ScreenFilter {
					a.screen = ScreenFilter
					a.filter.setQuery(a.query)
					return a, a.filter.Init()
				}
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case FilterAppliedMsg:
		// Adopt the new query and return to the Eddington screen
		a.query = msg.Query
		a.status = describeQuery(a.query)
		a.screen = ScreenEddington
		a.eddington.query = a.query
		a.activities.query = a.query
		a.activities.offset = 0
		a.activities.cursor = 0
		return a, a.eddington.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenEddington:
		var m tea.Model
		m, cmd = a.eddington.Update(msg)
		a.eddington = m.(EddingtonModel)
	case ScreenActivities:
		var m tea.Model
		m, cmd = a.activities.Update(msg)
		a.activities = m.(ActivitiesModel)
	case ScreenFilter:
		var m tea.Model
		m, cmd = a.filter.Update(msg)
		a.filter = m.(FilterModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenEddington:
		content = a.eddington.View()
	case ScreenActivities:
		content = a.activities.View()
	case ScreenFilter:
		content = a.filter.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Eddington Activity Explorer")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Eddington", ScreenEddington},
		{"2", "Activities", ScreenActivities},
		{"3", "Filter", ScreenFilter},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}

// describeQuery summarizes the active filter for the footer
func describeQuery(q search.Query) string {
	if !q.Active() {
		return "Filter cleared"
	}
	return "Filter: " + q.URLString()
}

// FilterAppliedMsg is sent when the filter editor applies a new query
type FilterAppliedMsg struct {
	Query search.Query
}
