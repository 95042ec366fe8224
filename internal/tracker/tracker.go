package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vincentqiao/medflow/internal/models"
	"github.com/vincentqiao/medflow/internal/storage"
)

// Tracker owns the dose-cycle state: the reminder settings and the
// newest-first dose log. All mutations go through its methods and are
// persisted synchronously as whole records.
type Tracker struct {
	store    storage.Provider
	settings models.Settings
	entries  []models.DoseEntry // newest-first
}

func New(store storage.Provider) *Tracker {
	return &Tracker{
		store:    store,
		settings: models.DefaultSettings(),
	}
}

// Load pulls settings and the dose log from the store. The store itself
// substitutes defaults for missing or unreadable data.
func (t *Tracker) Load() error {
	if err := t.store.Load(); err != nil {
		return err
	}

	settings, err := t.store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	t.settings = settings

	entries, err := t.store.GetEntries()
	if err != nil {
		return fmt.Errorf("failed to load dose log: %w", err)
	}
	t.entries = entries

	return nil
}

// CheckIn records that a dose was taken at now: a new immutable entry is
// prepended to the log and the settings' last dose time advances to the
// same instant. The in-memory mutation always happens; only persistence
// can fail.
func (t *Tracker) CheckIn(now time.Time) (models.DoseEntry, error) {
	millis := now.UnixMilli()
	entry := models.DoseEntry{
		ID:           newEntryID(millis),
		Timestamp:    millis,
		MedicineName: t.settings.Name,
		MedicineType: t.settings.Type,
	}

	t.entries = append([]models.DoseEntry{entry}, t.entries...)
	t.settings.LastDoseTime = &millis

	if err := t.store.AddEntry(entry); err != nil {
		return entry, fmt.Errorf("failed to persist check-in: %w", err)
	}
	if err := t.store.SaveSettings(t.settings); err != nil {
		return entry, fmt.Errorf("failed to persist settings: %w", err)
	}

	return entry, nil
}

// UpdateSettings replaces the label and interval, leaving the category
// and last dose time untouched. The interval is accepted as-is; a
// non-positive value just makes the countdown report due immediately.
func (t *Tracker) UpdateSettings(name string, intervalHours float64) error {
	t.settings.Name = name
	t.settings.IntervalHours = intervalHours
	return t.store.SaveSettings(t.settings)
}

// ChangeType switches the category and resets the label to the category's
// canonical default, discarding any custom label. The user may override
// the label again via UpdateSettings.
func (t *Tracker) ChangeType(medType models.MedType) error {
	if !medType.Valid() {
		return fmt.Errorf("unknown medication type: %q", medType)
	}

	t.settings.Type = medType
	t.settings.Name = medType.DefaultLabel()
	return t.store.SaveSettings(t.settings)
}

// Settings returns a copy of the current reminder settings.
func (t *Tracker) Settings() models.Settings {
	return t.settings
}

// Entries returns the dose log newest-first.
func (t *Tracker) Entries() []models.DoseEntry {
	entries := make([]models.DoseEntry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Recent returns up to n of the most recent check-ins.
func (t *Tracker) Recent(n int) []models.DoseEntry {
	if n > len(t.entries) {
		n = len(t.entries)
	}
	entries := make([]models.DoseEntry, n)
	copy(entries, t.entries[:n])
	return entries
}

// TodayCount reports how many check-ins happened on now's calendar date.
func (t *Tracker) TodayCount(now time.Time) int {
	y, m, d := now.Date()
	count := 0
	for _, entry := range t.entries {
		ey, em, ed := time.UnixMilli(entry.Timestamp).In(now.Location()).Date()
		if ey == y && em == m && ed == d {
			count++
		}
	}
	return count
}

// Total reports the lifetime number of check-ins.
func (t *Tracker) Total() int {
	return len(t.entries)
}

// newEntryID stamps the entry with its creation millisecond plus a random
// suffix so rapid repeated check-ins cannot collide.
func newEntryID(millis int64) string {
	return fmt.Sprintf("%d-%s", millis, uuid.NewString()[:8])
}
