package cli

import (
	"fmt"
	"time"

	"github.com/vincentqiao/medflow/internal/countdown"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Load(); err != nil {
		return err
	}

	now := time.Now()
	settings := ctx.Tracker.Settings()
	status := countdown.Compute(settings.LastDoseTime, settings.IntervalHours, now)

	fmt.Printf("Reminder: %s (%s), every %.1f hours\n", settings.Name, settings.Type, settings.IntervalHours)

	switch {
	case !status.Started:
		fmt.Println("No dose recorded yet. Run 'medflow checkin' after your first dose.")
	case status.Due:
		fmt.Printf("Next dose: %s\n", status.Display)
	default:
		fmt.Printf("Next dose in %s (%.0f%% of the cycle elapsed)\n", status.Display, status.Percent)
	}

	fmt.Printf("\nToday: %d dose(s)   Total: %d dose(s)\n", ctx.Tracker.TodayCount(now), ctx.Tracker.Total())

	return nil
}
