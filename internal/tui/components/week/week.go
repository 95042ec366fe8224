package week

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vincentqiao/medflow/internal/adherence"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Model renders the Monday–Sunday adherence bars.
type Model struct {
	days   []adherence.DayCount
	width  int
	height int
}

func New(days []adherence.DayCount, width, height int) Model {
	return Model{
		days:   days,
		width:  width,
		height: height,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetWeek(days []adherence.DayCount) {
	m.days = days
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("This week"))
	b.WriteString("\n\n")

	total := 0
	for _, day := range m.days {
		total += day.Count

		label := day.Date.Format("Mon")
		bar := strings.Repeat("█", day.Count)
		switch {
		case day.IsToday:
			label = todayStyle.Render(label)
			bar = todayStyle.Render(bar)
		case day.Count > 0:
			bar = barStyle.Render(bar)
		default:
			bar = emptyStyle.Render("·")
		}

		b.WriteString(fmt.Sprintf("%s  %s %d\n", label, bar, day.Count))
	}

	b.WriteString(fmt.Sprintf("\n%d dose(s) this week\n", total))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
