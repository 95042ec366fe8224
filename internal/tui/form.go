package tui

import "github.com/charmbracelet/huh"

// newSettingsForm edits the label and interval. The interval is a text
// field on purpose: the original widget accepted whatever the user typed
// and fell back to the previous value only when it wasn't a number at all.
func newSettingsForm(model *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Description("Free-text note shown on the widget, e.g. \"after breakfast\"").
				Value(&model.Name),
			huh.NewInput().
				Title("Interval (hours)").
				Description("Hours until the next expected dose").
				Value(&model.Interval),
		),
	)
}
