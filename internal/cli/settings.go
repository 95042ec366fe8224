package cli

import (
	"fmt"
	"time"

	"github.com/vincentqiao/medflow/internal/models"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Load(); err != nil {
		return err
	}

	settings := ctx.Tracker.Settings()
	fmt.Printf("Label:     %s\n", settings.Name)
	fmt.Printf("Type:      %s\n", settings.Type)
	fmt.Printf("Interval:  %.1f hours\n", settings.IntervalHours)
	if settings.LastDoseTime == nil {
		fmt.Println("Last dose: never")
	} else {
		fmt.Printf("Last dose: %s\n", time.UnixMilli(*settings.LastDoseTime).Format("2006-01-02 15:04:05"))
	}

	return nil
}

type SettingsSetCmd struct {
	Name     string  `help:"Free-text label for the reminder." default:""`
	Interval float64 `help:"Hours until the next expected dose." default:"-1"`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Load(); err != nil {
		return err
	}

	settings := ctx.Tracker.Settings()
	name := settings.Name
	if c.Name != "" {
		name = c.Name
	}
	interval := settings.IntervalHours
	if c.Interval >= 0 {
		interval = c.Interval
	}

	if err := ctx.Tracker.UpdateSettings(name, interval); err != nil {
		return err
	}

	fmt.Printf("Settings updated: %q every %.1f hours.\n", name, interval)
	return nil
}

type SettingsTypeCmd struct {
	Type string `arg:"" help:"Medication type (illness, supplement, impulse)."`
}

func (c *SettingsTypeCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Load(); err != nil {
		return err
	}

	medType := models.MedType(c.Type)
	if err := ctx.Tracker.ChangeType(medType); err != nil {
		return fmt.Errorf("%w (valid types: %s)", err, medTypeHelp())
	}

	fmt.Printf("Type set to %s, label reset to %q.\n", medType, medType.DefaultLabel())
	return nil
}
