package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vincentqiao/medflow/internal/constants"
	"github.com/vincentqiao/medflow/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(18)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model lists the most recent check-ins, newest first.
type Model struct {
	viewport viewport.Model
	entries  []models.DoseEntry
	total    int
	width    int
	height   int
}

func New(entries []models.DoseEntry, total, width, height int) Model {
	vp := viewport.New(width, height)
	m := Model{
		viewport: vp,
		entries:  entries,
		total:    total,
	}
	m.render()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.entries) == 0 {
		return "No check-ins yet. Press 'c' to record your first dose."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetEntries replaces the listed entries; only the most recent entries up
// to the history limit are shown.
func (m *Model) SetEntries(entries []models.DoseEntry, total int) {
	if len(entries) > constants.HistoryLimit {
		entries = entries[:constants.HistoryLimit]
	}
	m.entries = entries
	m.total = total
	m.render()
}

func (m *Model) render() {
	var b strings.Builder
	for _, entry := range m.entries {
		taken := time.UnixMilli(entry.Timestamp)
		line := fmt.Sprintf("%s %s %s\n",
			timeStyle.Render(taken.Format("2006-01-02 15:04")),
			nameStyle.Render(entry.MedicineName),
			typeStyle.Render(string(entry.MedicineType)),
		)
		b.WriteString(line)
	}
	if m.total > len(m.entries) {
		b.WriteString(fmt.Sprintf("\n… %d older check-in(s) not shown\n", m.total-len(m.entries)))
	}
	m.viewport.SetContent(b.String())
}
