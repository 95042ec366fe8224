package countdown

import (
	"fmt"
	"time"

	"github.com/vincentqiao/medflow/internal/constants"
)

// Status is the derived view of the current dose cycle.
type Status struct {
	// Display is the remaining time as zero-padded HH:MM:SS, or one of
	// the fixed marker strings before the first check-in and once the
	// cycle has elapsed.
	Display string
	// Percent is how much of the cycle has elapsed, clamped to [0, 100].
	Percent float64
	// Due reports that the next dose is due.
	Due bool
	// Started reports that at least one check-in has happened.
	Started bool
}

// Compute derives the countdown from the last dose time, the reminder
// interval, and the current wall-clock time. It is a pure function; the
// caller re-evaluates it on a one second cadence and after every
// settings change.
func Compute(lastDoseMillis *int64, intervalHours float64, now time.Time) Status {
	if lastDoseMillis == nil {
		return Status{Display: constants.CountdownNotStarted}
	}

	totalMillis := int64(intervalHours * float64(time.Hour/time.Millisecond))
	nowMillis := now.UnixMilli()
	elapsed := nowMillis - *lastDoseMillis
	remaining := totalMillis - elapsed

	if remaining <= 0 {
		return Status{
			Display: constants.CountdownTimeUp,
			Percent: 100,
			Due:     true,
			Started: true,
		}
	}

	hours := remaining / int64(time.Hour/time.Millisecond)
	mins := (remaining % int64(time.Hour/time.Millisecond)) / int64(time.Minute/time.Millisecond)
	secs := (remaining % int64(time.Minute/time.Millisecond)) / int64(time.Second/time.Millisecond)

	percent := float64(elapsed) / float64(totalMillis) * 100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	return Status{
		Display: fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs),
		Percent: percent,
		Started: true,
	}
}
