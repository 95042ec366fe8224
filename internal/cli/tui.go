package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vincentqiao/medflow/internal/advice"
	"github.com/vincentqiao/medflow/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Load(); err != nil {
		return err
	}

	// Best-effort daily backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	client := advice.NewClient(advice.ResolveAPIKey())
	p := tea.NewProgram(tui.NewModel(ctx.Tracker, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
