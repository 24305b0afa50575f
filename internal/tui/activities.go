package tui

import (
	"fmt"

	"eddington/internal/search"
	"eddington/internal/service"
	"eddington/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ActivitiesModel is the filtered activities list screen model
type ActivitiesModel struct {
	queryService *service.QueryService
	query        search.Query
	activities   []store.Activity
	cursor       int
	offset       int
	pageSize     int
	loading      bool
	err          error
}

// NewActivitiesModel creates a new activities model
func NewActivitiesModel(qs *service.QueryService, pageSize int) ActivitiesModel {
	if pageSize <= 0 {
		pageSize = service.DefaultPageSize
	}
	return ActivitiesModel{
		queryService: qs,
		pageSize:     pageSize,
		loading:      true,
	}
}

// Init initializes the activities screen
func (m ActivitiesModel) Init() tea.Cmd {
	return m.loadActivities
}

type activitiesLoadedMsg struct {
	activities []store.Activity
	err        error
}

func (m ActivitiesModel) loadActivities() tea.Msg {
	activities, err := m.queryService.Activities(m.query)
	return activitiesLoadedMsg{activities: activities, err: err}
}

// Update handles messages
func (m ActivitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case activitiesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.activities = msg.activities
		m.cursor = 0
		m.offset = 0

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadActivities
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
			}
		case "down", "j":
			if m.cursor < m.visibleCount()-1 {
				m.cursor++
			} else if m.offset+m.pageSize < len(m.activities) {
				m.offset += m.pageSize
				m.cursor = 0
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
			}
		case "pgdown":
			if m.offset+m.pageSize < len(m.activities) {
				m.offset += m.pageSize
				m.cursor = 0
			}
		}
	}

	return m, nil
}

func (m ActivitiesModel) visibleCount() int {
	count := len(m.activities) - m.offset
	if count > m.pageSize {
		count = m.pageSize
	}
	if count < 0 {
		count = 0
	}
	return count
}

// View renders the activities screen
func (m ActivitiesModel) View() string {
	if m.loading {
		return mutedStyle.Render("Loading...")
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if len(m.activities) == 0 {
		return mutedStyle.Render("No activities match the current filter.")
	}

	title := cardTitleStyle.Render(fmt.Sprintf("Activities (%d)", len(m.activities)))

	header := tableHeaderStyle.Render(fmt.Sprintf("%-16s  %-12s  %-10s  %8s  %s",
		"start", "kind", "equipment", "distance", "name"))

	rows := []string{header}
	for i := 0; i < m.visibleCount(); i++ {
		a := m.activities[m.offset+i]
		line := service.DescribeActivity(a)
		if i == m.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	page := mutedStyle.Render(fmt.Sprintf("%d-%d of %d",
		m.offset+1, m.offset+m.visibleCount(), len(m.activities)))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, page)
}
