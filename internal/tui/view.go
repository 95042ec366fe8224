package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vincentqiao/medflow/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.mini {
		return miniStyle.Render(m.widgetModel.Compact())
	}

	if m.state == StateEditSettings {
		view := m.form.View()
		if m.formError != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, errorStyle.Render(m.formError), view)
		}
		return docStyle.Render(view)
	}

	var content string
	switch m.state {
	case StateWidget:
		content = m.widgetModel.View()
	case StateHistory:
		content = docStyle.Render(m.historyModel.View())
	case StateWeek:
		content = m.weekModel.View()
	}

	sections := []string{
		m.viewTabs(),
		m.viewAdvice(),
		content,
	}
	if m.statusErr != "" {
		sections = append(sections, errorStyle.Render("⚠ "+m.statusErr))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Widget", "History", "Week"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewAdvice() string {
	if m.adviceLoading {
		return adviceStyle.Render(adviceLoadingStyle.Render("health assistant is thinking..."))
	}
	if m.currentAdvice == nil {
		return ""
	}

	style := adviceStyle
	if m.currentAdvice.Type == models.AdviceWarning {
		style = adviceWarningStyle
	}
	return style.Render(m.currentAdvice.Message)
}
