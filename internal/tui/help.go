package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

type keyHelp struct {
	key  string
	desc string
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Eddington statistics"},
		{"2", "Activities list"},
		{"3 or f", "Filter editor"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	listSection := m.renderSection("Eddington & Activities", []keyHelp{
		{"r", "Recompute with current filter"},
		{"up/down, j/k", "Move cursor"},
		{"pgup/pgdown", "Page through the list"},
	})
	sections = append(sections, listSection)

	filterSection := m.renderSection("Filter editor", []keyHelp{
		{"tab / shift+tab", "Next / previous field"},
		{"ctrl+t", "Toggle case-sensitive name match"},
		{"ctrl+l", "Clear all fields"},
		{"enter", "Apply filter"},
		{"esc", "Leave fields (then 1/2 to navigate)"},
	})
	sections = append(sections, filterSection)

	about := mutedStyle.Render(
		"The Eddington number is the largest E such that at least E days\n" +
			"each had at least E km of recorded distance.")
	sections = append(sections, about)

	return cardStyle.Render(strings.Join(sections, "\n\n"))
}

func (m HelpModel) renderSection(name string, keys []keyHelp) string {
	header := tableHeaderStyle.Render(name)

	rows := make([]string, len(keys))
	for i, k := range keys {
		rows[i] = fieldLabelStyle.Render(k.key) + k.desc
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(rows, "\n"))
}
