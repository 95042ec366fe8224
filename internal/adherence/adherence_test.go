package adherence

import (
	"testing"
	"time"

	"github.com/vincentqiao/medflow/internal/models"
)

func TestMondayOf_Midweek(t *testing.T) {
	// Wednesday 2026-08-26.
	wed := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

	monday := MondayOf(wed)

	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !monday.Equal(want) {
		t.Errorf("expected %v, got %v", want, monday)
	}
}

func TestMondayOf_SundayBelongsToPreviousMonday(t *testing.T) {
	// Sunday 2026-08-30 closes the week that started Monday 2026-08-24.
	sun := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	monday := MondayOf(sun)

	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !monday.Equal(want) {
		t.Errorf("expected %v, got %v", want, monday)
	}
}

func TestMondayOf_MondayIsItself(t *testing.T) {
	mon := time.Date(2026, 8, 24, 23, 59, 59, 0, time.UTC)

	monday := MondayOf(mon)

	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !monday.Equal(want) {
		t.Errorf("expected %v, got %v", want, monday)
	}
}

func entryAt(ts time.Time) models.DoseEntry {
	return models.DoseEntry{
		ID:           "test",
		Timestamp:    ts.UnixMilli(),
		MedicineName: "assorted vitamins",
		MedicineType: models.MedTypeSupplement,
	}
}

func TestWeekCounts_BucketsByLocalDate(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) // Wednesday

	entries := []models.DoseEntry{
		entryAt(time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)),  // Wednesday
		entryAt(time.Date(2026, 8, 26, 21, 0, 0, 0, time.UTC)), // Wednesday
		entryAt(time.Date(2026, 8, 24, 0, 0, 1, 0, time.UTC)),  // Monday, just past midnight
		entryAt(time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)), // Sunday, end of week
		entryAt(time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)),  // previous Sunday, out of week
		entryAt(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)),   // next Monday, out of week
	}

	days := WeekCounts(entries, now)

	if len(days) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(days))
	}

	wantCounts := []int{1, 0, 2, 0, 0, 0, 1}
	for i, want := range wantCounts {
		if days[i].Count != want {
			t.Errorf("day %d (%s): expected %d, got %d", i, days[i].Date.Weekday(), want, days[i].Count)
		}
	}
}

func TestWeekCounts_TodayFlag(t *testing.T) {
	now := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC) // Friday

	days := WeekCounts(nil, now)

	for i, day := range days {
		wantToday := i == 4 // Friday is the fifth bucket
		if day.IsToday != wantToday {
			t.Errorf("day %d (%s): IsToday = %v, want %v", i, day.Date.Weekday(), day.IsToday, wantToday)
		}
	}
}

func TestWeekCounts_TotalConservation(t *testing.T) {
	now := time.Date(2026, 8, 27, 18, 0, 0, 0, time.UTC)
	monday := MondayOf(now)

	var entries []models.DoseEntry
	for i := 0; i < 7; i++ {
		for j := 0; j <= i; j++ {
			entries = append(entries, entryAt(monday.AddDate(0, 0, i).Add(time.Duration(j)*time.Hour)))
		}
	}

	days := WeekCounts(entries, now)

	total := 0
	for _, day := range days {
		total += day.Count
	}
	if total != len(entries) {
		t.Errorf("buckets sum to %d, want %d", total, len(entries))
	}
}

func TestWeekCounts_OrderedMondayToSunday(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	days := WeekCounts(nil, now)

	if days[0].Date.Weekday() != time.Monday {
		t.Errorf("first bucket is %s, want Monday", days[0].Date.Weekday())
	}
	if days[6].Date.Weekday() != time.Sunday {
		t.Errorf("last bucket is %s, want Sunday", days[6].Date.Weekday())
	}
	for i := 1; i < 7; i++ {
		if !days[i].Date.Equal(days[i-1].Date.AddDate(0, 0, 1)) {
			t.Errorf("bucket %d is not the day after bucket %d", i, i-1)
		}
	}
}
