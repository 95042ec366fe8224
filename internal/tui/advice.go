package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vincentqiao/medflow/internal/advice"
	"github.com/vincentqiao/medflow/internal/models"
)

// adviceMsg carries a resolved advice request back into the update loop.
// seq matches the model's adviceSeq at dispatch time; stale responses
// (an older seq) are dropped so overlapping requests resolve
// latest-request-wins instead of last-response-wins.
type adviceMsg struct {
	seq    int
	result models.Advice
}

func fetchAdviceCmd(client *advice.Client, seq int, event string, entries []models.DoseEntry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return adviceMsg{seq: seq, result: client.Fetch(ctx, event, entries)}
	}
}
