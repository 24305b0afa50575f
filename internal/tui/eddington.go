package tui

import (
	"fmt"
	"strings"

	"eddington/internal/config"
	"eddington/internal/search"
	"eddington/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// EddingtonModel is the main statistics screen model
type EddingtonModel struct {
	queryService *service.QueryService
	query        search.Query
	display      config.DisplayConfig
	data         *service.EddingtonData
	loading      bool
	err          error
}

// NewEddingtonModel creates a new Eddington screen model
func NewEddingtonModel(qs *service.QueryService, display config.DisplayConfig) EddingtonModel {
	return EddingtonModel{
		queryService: qs,
		display:      display,
		loading:      true,
	}
}

// Init initializes the Eddington screen
func (m EddingtonModel) Init() tea.Cmd {
	return m.loadData
}

type eddingtonLoadedMsg struct {
	data *service.EddingtonData
	err  error
}

func (m EddingtonModel) loadData() tea.Msg {
	data, err := m.queryService.GetEddingtonData(m.query)
	return eddingtonLoadedMsg{data: data, err: err}
}

// Update handles messages
func (m EddingtonModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eddingtonLoadedMsg:
		m.loading = false
		m.data = msg.data
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}

	return m, nil
}

// View renders the Eddington screen
func (m EddingtonModel) View() string {
	if m.loading {
		return mutedStyle.Render("Computing...")
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.data == nil || m.data.DayCount == 0 {
		return mutedStyle.Render("No activities with dates and distances match the current filter.\nImport activities or adjust the filter ([3]).")
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderNumberCard(),
		" ",
		m.renderTargetsCard(),
		" ",
		m.renderYearlyCard(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, m.renderHistoryChart())
}

func (m EddingtonModel) renderNumberCard() string {
	title := cardTitleStyle.Render("Eddington Number")
	number := numberStyle.Render(fmt.Sprintf("%d", m.data.Number))

	summary := mutedStyle.Render(fmt.Sprintf(
		"%d activities on %d days\n%d days of at least %d km",
		m.data.ActivityCount, m.data.DayCount,
		daysAtNumber(m.data), m.data.Number,
	))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, number, summary))
}

// daysAtNumber reads Total at the current number from the histogram
func daysAtNumber(data *service.EddingtonData) int {
	if data.Number < len(data.Histogram) {
		return data.Histogram[data.Number].Total
	}
	return 0
}

func (m EddingtonModel) renderTargetsCard() string {
	title := cardTitleStyle.Render("Next Targets")

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%8s  %6s  %8s", "km", "days", "missing")))
	for _, e := range m.data.NextTargets {
		b.WriteString(fmt.Sprintf("\n%8d  %6d  %8d", e.DistanceKM, e.Total, e.Missing))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, b.String()))
}

func (m EddingtonModel) renderYearlyCard() string {
	title := cardTitleStyle.Render("Per Year")

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%6s  %6s", "year", "number")))
	for _, y := range m.data.Yearly {
		b.WriteString(fmt.Sprintf("\n%6d  %6d", y.Year, y.Number))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, b.String()))
}

func (m EddingtonModel) renderHistoryChart() string {
	title := cardTitleStyle.Render("Eddington Number Over Time")

	if len(m.data.HistorySeries) < 2 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title,
			mutedStyle.Render("Not enough days for a chart yet")))
	}

	graph := asciigraph.Plot(m.data.HistorySeries,
		asciigraph.Height(m.display.ChartHeight),
		asciigraph.Width(m.display.ChartWidth),
		asciigraph.Precision(0),
	)

	first := m.data.History[0].Date.Format("2006-01-02")
	last := m.data.History[len(m.data.History)-1].Date.Format("2006-01-02")
	axis := mutedStyle.Render(fmt.Sprintf("%s .. %s", first, last))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, axis))
}
