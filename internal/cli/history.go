package cli

import (
	"fmt"

	"github.com/vincentqiao/medflow/internal/constants"
)

type HistoryCmd struct {
	Limit int `help:"Maximum entries to show." default:"15"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Load(); err != nil {
		return err
	}

	limit := c.Limit
	if limit <= 0 {
		limit = constants.HistoryLimit
	}

	entries := ctx.Tracker.Recent(limit)
	if len(entries) == 0 {
		fmt.Println("No check-ins recorded yet.")
		return nil
	}

	fmt.Printf("Recent check-ins (%d of %d):\n\n", len(entries), ctx.Tracker.Total())
	for _, entry := range entries {
		fmt.Println("  " + formatEntry(entry))
	}

	return nil
}
