package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vincentqiao/medflow/internal/adherence"
	"github.com/vincentqiao/medflow/internal/advice"
	"github.com/vincentqiao/medflow/internal/constants"
	"github.com/vincentqiao/medflow/internal/models"
	"github.com/vincentqiao/medflow/internal/tracker"
	"github.com/vincentqiao/medflow/internal/tui/components/history"
	"github.com/vincentqiao/medflow/internal/tui/components/week"
	"github.com/vincentqiao/medflow/internal/tui/components/widget"
)

type SessionState int

const (
	StateWidget SessionState = iota
	StateHistory
	StateWeek
	StateEditSettings
)

// tabCount is how many states the tab key cycles through.
const tabCount = 3

type SettingsFormModel struct {
	Name     string
	Interval string
}

type Model struct {
	tracker *tracker.Tracker
	advice  *advice.Client

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	widgetModel  widget.Model
	historyModel history.Model
	weekModel    week.Model

	form         *huh.Form
	settingsForm *SettingsFormModel
	formError    string

	// Ephemeral advice slot. adviceSeq implements latest-request-wins:
	// responses carrying an older sequence number are discarded.
	currentAdvice *models.Advice
	adviceLoading bool
	adviceSeq     int

	mini      bool
	quitting  bool
	statusErr string
	width     int
	height    int
}

func NewModel(trk *tracker.Tracker, client *advice.Client) Model {
	now := time.Now()

	return Model{
		tracker:      trk,
		advice:       client,
		state:        StateWidget,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		widgetModel:  widget.New(trk.Settings()),
		historyModel: history.New(trk.Recent(constants.HistoryLimit), trk.Total(), 0, 0),
		weekModel:    week.New(adherence.WeekCounts(trk.Entries(), now), 0, 0),
		// Mirror the original widget: a greeting advice is fetched once
		// at startup, dispatched from Init.
		adviceSeq:     1,
		adviceLoading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.widgetModel.Init(),
		fetchAdviceCmd(m.advice, m.adviceSeq, "daily hello", m.tracker.Entries()),
	)
}

// refreshDerived recomputes every derived view after a mutation.
func (m *Model) refreshDerived() {
	now := time.Now()
	m.widgetModel.SetSettings(m.tracker.Settings())
	m.historyModel.SetEntries(m.tracker.Recent(constants.HistoryLimit), m.tracker.Total())
	m.weekModel.SetWeek(adherence.WeekCounts(m.tracker.Entries(), now))
}
