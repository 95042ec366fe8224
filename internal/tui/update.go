package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vincentqiao/medflow/internal/models"
	"github.com/vincentqiao/medflow/internal/tui/components/widget"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 6
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.widgetModel.SetSize(msg.Width, contentHeight)
		m.historyModel.SetSize(msg.Width-4, contentHeight)
		m.weekModel.SetSize(msg.Width, contentHeight)

	case widget.TickMsg:
		var cmd tea.Cmd
		m.widgetModel, cmd = m.widgetModel.Update(msg)
		return m, cmd

	case adviceMsg:
		if msg.seq == m.adviceSeq {
			result := msg.result
			m.currentAdvice = &result
			m.adviceLoading = false
		}
		return m, nil

	case tea.KeyMsg:
		if m.state == StateEditSettings {
			return m.updateSettingsForm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Mini):
			m.mini = !m.mini

		case key.Matches(msg, m.keys.Tab):
			if !m.mini {
				m.state = (m.state + 1) % tabCount
			}

		case key.Matches(msg, m.keys.ShiftTab):
			if !m.mini {
				m.state = (m.state - 1 + tabCount) % tabCount
			}

		case key.Matches(msg, m.keys.CheckIn):
			return m.handleCheckIn()

		case key.Matches(msg, m.keys.Type):
			m.handleCycleType()

		case key.Matches(msg, m.keys.Settings):
			if !m.mini {
				m.openSettingsForm()
				return m, m.form.Init()
			}
		}
	}

	if m.state == StateHistory {
		var cmd tea.Cmd
		m.historyModel, cmd = m.historyModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleCheckIn records the dose and kicks off an advice request for it.
func (m Model) handleCheckIn() (tea.Model, tea.Cmd) {
	settings := m.tracker.Settings()
	if _, err := m.tracker.CheckIn(time.Now()); err != nil {
		m.statusErr = err.Error()
	} else {
		m.statusErr = ""
	}
	m.refreshDerived()

	m.adviceSeq++
	m.adviceLoading = true
	event := fmt.Sprintf("%s: %s", settings.Type, settings.Name)
	return m, fetchAdviceCmd(m.advice, m.adviceSeq, event, m.tracker.Entries())
}

// handleCycleType advances to the next category, which also resets the
// label to the category default.
func (m *Model) handleCycleType() {
	current := m.tracker.Settings().Type
	next := models.MedTypes[0]
	for i, t := range models.MedTypes {
		if t == current {
			next = models.MedTypes[(i+1)%len(models.MedTypes)]
			break
		}
	}

	if err := m.tracker.ChangeType(next); err != nil {
		m.statusErr = err.Error()
		return
	}
	m.statusErr = ""
	m.refreshDerived()
}

func (m *Model) openSettingsForm() {
	settings := m.tracker.Settings()
	m.settingsForm = &SettingsFormModel{
		Name:     settings.Name,
		Interval: strconv.FormatFloat(settings.IntervalHours, 'f', -1, 64),
	}
	m.form = newSettingsForm(m.settingsForm)
	m.previousState = m.state
	m.state = StateEditSettings
	m.formError = ""
}

func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		interval := m.tracker.Settings().IntervalHours
		if val, err := strconv.ParseFloat(m.settingsForm.Interval, 64); err == nil {
			interval = val
		}

		if err := m.tracker.UpdateSettings(m.settingsForm.Name, interval); err != nil {
			m.formError = "Failed to update settings: " + err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.formError = ""
		m.refreshDerived()
		m.state = m.previousState

	case huh.StateAborted:
		m.formError = ""
		m.state = m.previousState
	}

	return m, tea.Batch(cmds...)
}
