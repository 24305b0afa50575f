package tui

import (
	"fmt"
	"strings"
	"time"

	"eddington/internal/search"
	"eddington/internal/service"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Filter editor field indexes
const (
	fieldEquipment = iota
	fieldKind
	fieldName
	fieldStartBegin
	fieldStartEnd
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Equipment",
	"Kind",
	"Name regexp",
	"Start from",
	"Start until",
}

// FilterModel is the filter editor screen model
type FilterModel struct {
	queryService  *service.QueryService
	inputs        [fieldCount]textinput.Model
	focused       int
	editing       bool // inputs capture keystrokes while true
	caseSensitive bool
	choices       *service.FilterChoices
	err           error
}

// NewFilterModel creates a new filter editor model
func NewFilterModel(qs *service.QueryService) FilterModel {
	m := FilterModel{
		queryService: qs,
		editing:      true,
	}

	placeholders := [fieldCount]string{
		"comma-separated, OR-matched",
		"comma-separated, OR-matched",
		"matches anywhere in the name",
		"YYYY-MM-DD",
		"YYYY-MM-DD",
	}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 120
		input.Width = 40
		m.inputs[i] = input
	}
	m.inputs[0].Focus()

	return m
}

// setQuery loads an existing query into the editor fields
func (m *FilterModel) setQuery(q search.Query) {
	m.inputs[fieldEquipment].SetValue(strings.Join(q.Equipment, ", "))
	m.inputs[fieldKind].SetValue(strings.Join(q.Kind, ", "))
	m.inputs[fieldName].SetValue(q.Name)
	m.inputs[fieldStartBegin].SetValue(formatDateField(q.StartBegin))
	m.inputs[fieldStartEnd].SetValue(formatDateField(q.StartEnd))
	m.caseSensitive = q.NameCaseSensitive
	m.err = nil
}

// Init initializes the filter screen
func (m FilterModel) Init() tea.Cmd {
	return m.loadChoices
}

type choicesLoadedMsg struct {
	choices *service.FilterChoices
	err     error
}

func (m FilterModel) loadChoices() tea.Msg {
	choices, err := m.queryService.GetFilterChoices()
	return choicesLoadedMsg{choices: choices, err: err}
}

// Update handles messages
func (m FilterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case choicesLoadedMsg:
		if msg.err == nil {
			m.choices = msg.choices
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Release input focus so global navigation works
			m.editing = false
			m.inputs[m.focused].Blur()
			return m, nil
		case "enter":
			query, err := m.buildQuery()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			return m, func() tea.Msg { return FilterAppliedMsg{Query: query} }
		case "tab", "down":
			return m.focusField((m.focused + 1) % fieldCount), nil
		case "shift+tab", "up":
			return m.focusField((m.focused + fieldCount - 1) % fieldCount), nil
		case "ctrl+t":
			m.caseSensitive = !m.caseSensitive
			return m, nil
		case "ctrl+l":
			m.setQuery(search.Query{})
			return m, nil
		default:
			if !m.editing {
				// Any other key re-enters editing mode
				m.editing = true
				m.inputs[m.focused].Focus()
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m FilterModel) focusField(i int) FilterModel {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
	m.editing = true
	return m
}

// buildQuery assembles and validates a search query from the fields
func (m FilterModel) buildQuery() (search.Query, error) {
	q := search.Query{
		Equipment:         splitList(m.inputs[fieldEquipment].Value()),
		Kind:              splitList(m.inputs[fieldKind].Value()),
		Name:              strings.TrimSpace(m.inputs[fieldName].Value()),
		NameCaseSensitive: m.caseSensitive,
	}

	var err error
	if q.StartBegin, err = parseDateField(m.inputs[fieldStartBegin].Value()); err != nil {
		return search.Query{}, err
	}
	if q.StartEnd, err = parseDateField(m.inputs[fieldStartEnd].Value()); err != nil {
		return search.Query{}, err
	}

	if err := q.Validate(); err != nil {
		return search.Query{}, err
	}
	return q, nil
}

// View renders the filter screen
func (m FilterModel) View() string {
	title := cardTitleStyle.Render("Filter Activities")

	var rows []string
	for i, input := range m.inputs {
		label := fieldLabels[i]
		if i == m.focused {
			label = "> " + label
		} else {
			label = "  " + label
		}
		rows = append(rows, fieldLabelStyle.Render(label)+input.View())
	}

	caseLabel := "off"
	if m.caseSensitive {
		caseLabel = "on"
	}
	rows = append(rows, fieldLabelStyle.Render("  Case-sensitive")+
		activeFilterStyle.Render(caseLabel)+
		mutedStyle.Render("  (ctrl+t to toggle)"))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	sections := []string{title, body}

	if m.choices != nil {
		hints := mutedStyle.Render(fmt.Sprintf("Equipment: %s\nKinds: %s",
			strings.Join(m.choices.Equipment, ", "),
			strings.Join(m.choices.Kinds, ", ")))
		sections = append(sections, hints)
	}

	if preview, err := m.buildQuery(); err == nil && preview.Active() {
		sections = append(sections, mutedStyle.Render("Query: "+preview.URLString()))
	}

	if m.err != nil {
		sections = append(sections, errorStyle.Render(m.err.Error()))
	}

	sections = append(sections, statusStyle.Render("enter apply · ctrl+l clear · esc leave fields"))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// splitList parses a comma-separated field into trimmed values
func splitList(s string) []string {
	var values []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func formatDateField(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(search.DateFormat)
}

func parseDateField(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(search.DateFormat, s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD, got %q", s)
	}
	return &t, nil
}
