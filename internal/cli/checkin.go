package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/vincentqiao/medflow/internal/advice"
)

type CheckInCmd struct {
	NoAdvice bool `help:"Skip fetching an advice message after the check-in."`
}

func (c *CheckInCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Load(); err != nil {
		return err
	}

	settings := ctx.Tracker.Settings()
	entry, err := ctx.Tracker.CheckIn(time.Now())
	if err != nil {
		return err
	}

	taken := time.UnixMilli(entry.Timestamp)
	fmt.Printf("✓ Checked in: %s (%s) at %s\n", entry.MedicineName, entry.MedicineType, taken.Format("15:04:05"))
	fmt.Printf("Next dose in %.1f hours.\n", settings.IntervalHours)

	if c.NoAdvice {
		return nil
	}

	client := advice.NewClient(advice.ResolveAPIKey())
	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	event := fmt.Sprintf("%s: %s", settings.Type, settings.Name)
	result := client.Fetch(reqCtx, event, ctx.Tracker.Entries())
	fmt.Printf("\n%s\n", result.Message)

	return nil
}
