package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vincentqiao/medflow/internal/adherence"
)

var (
	todayBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	weekBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	emptyBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Load(); err != nil {
		return err
	}

	days := adherence.WeekCounts(ctx.Tracker.Entries(), time.Now())

	total := 0
	fmt.Println("This week:")
	fmt.Println()
	for _, day := range days {
		total += day.Count

		bar := strings.Repeat("█", day.Count)
		switch {
		case day.IsToday:
			bar = todayBarStyle.Render(bar)
		case day.Count > 0:
			bar = weekBarStyle.Render(bar)
		default:
			bar = emptyBarStyle.Render("·")
		}

		marker := " "
		if day.IsToday {
			marker = "▸"
		}
		fmt.Printf("%s %s  %s %d\n", marker, day.Date.Format("Mon"), bar, day.Count)
	}
	fmt.Printf("\n%d dose(s) this week\n", total)

	return nil
}
