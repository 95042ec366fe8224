package widget

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vincentqiao/medflow/internal/countdown"
	"github.com/vincentqiao/medflow/internal/models"
)

var (
	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	dueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Model renders the dose countdown. A one second tick drives the
// recomputation; the countdown itself is a pure function of the settings
// and the tick time.
type Model struct {
	Settings models.Settings
	Time     time.Time
	progress progress.Model
	width    int
	height   int
}

func New(settings models.Settings) Model {
	return Model{
		Settings: settings,
		Time:     time.Now(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetSettings(settings models.Settings) {
	m.Settings = settings
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Time = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

// Status recomputes the countdown for the last tick.
func (m Model) Status() countdown.Status {
	return countdown.Compute(m.Settings.LastDoseTime, m.Settings.IntervalHours, m.Time)
}

func (m Model) View() string {
	status := m.Status()

	display := status.Display
	if status.Due {
		display = dueStyle.Render(display)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		typeStyle.Render(string(m.Settings.Type)),
		labelStyle.Render(m.Settings.Name),
		"",
		clockStyle.Render(display),
		labelStyle.Render("until the next dose"),
		"",
		m.progress.ViewAs(status.Percent/100),
		"",
		hintStyle.Render(fmt.Sprintf("every %.1f hours · press c to check in", m.Settings.IntervalHours)),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Compact renders the single-line mini mode.
func (m Model) Compact() string {
	status := m.Status()
	return fmt.Sprintf("💊 next %s  (%.0f%%)  [m] expand  [c] check in", status.Display, status.Percent)
}
