package adherence

import (
	"time"

	"github.com/vincentqiao/medflow/internal/models"
)

// DayCount is one bucket of the Monday–Sunday week view.
type DayCount struct {
	Date    time.Time // local midnight of the bucket's day
	Count   int
	IsToday bool
}

// MondayOf returns local midnight of the Monday of the week containing t.
// Sunday is treated as the last day of the week that started the previous
// Monday, not the start of a new one.
func MondayOf(t time.Time) time.Time {
	back := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		back = 6
	}
	monday := t.AddDate(0, 0, -back)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// WeekCounts buckets the dose log into the seven days of the week
// containing now, Monday through Sunday. Counting uses local calendar-date
// equality, so the buckets always sum to the number of entries whose local
// date falls inside the week. Pure function of (entries, now).
func WeekCounts(entries []models.DoseEntry, now time.Time) []DayCount {
	monday := MondayOf(now)
	nowY, nowM, nowD := now.Date()

	days := make([]DayCount, 7)
	for i := range days {
		day := monday.AddDate(0, 0, i)
		y, m, d := day.Date()
		days[i] = DayCount{
			Date:    day,
			IsToday: y == nowY && m == nowM && d == nowD,
		}
	}

	for _, entry := range entries {
		entryDay := time.UnixMilli(entry.Timestamp).In(now.Location())
		y, m, d := entryDay.Date()
		for i := range days {
			dy, dm, dd := days[i].Date.Date()
			if y == dy && m == dm && d == dd {
				days[i].Count++
				break
			}
		}
	}

	return days
}
