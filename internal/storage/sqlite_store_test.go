package storage

import (
	"path/filepath"
	"testing"

	"github.com/vincentqiao/medflow/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	path := filepath.Join(t.TempDir(), "medflow.db")
	store := NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_FirstRunDefaults(t *testing.T) {
	store := newTestSQLiteStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	want := models.DefaultSettings()
	if settings.Type != want.Type || settings.Name != want.Name || settings.IntervalHours != want.IntervalHours {
		t.Errorf("first run settings = %+v, want %+v", settings, want)
	}
	if settings.LastDoseTime != nil {
		t.Error("LastDoseTime should be nil before the first check-in")
	}

	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected an empty dose log, got %d entries", len(entries))
	}
}

func TestSQLiteStore_SettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medflow.db")
	store := NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	last := int64(1_700_000_000_000)
	settings := models.Settings{
		Name:          "just a little treat",
		Type:          models.MedTypeImpulse,
		IntervalHours: 2.5,
		LastDoseTime:  &last,
	}
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	store.Close()

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.Name != settings.Name || got.Type != settings.Type || got.IntervalHours != settings.IntervalHours {
		t.Errorf("settings = %+v, want %+v", got, settings)
	}
	if got.LastDoseTime == nil || *got.LastDoseTime != last {
		t.Error("LastDoseTime did not round-trip")
	}
}

func TestSQLiteStore_EntriesNewestFirst(t *testing.T) {
	store := newTestSQLiteStore(t)

	// Same timestamp on purpose: insertion order must break the tie.
	for _, id := range []string{"first", "second", "third"} {
		err := store.AddEntry(models.DoseEntry{
			ID:           id,
			Timestamp:    1_700_000_000_000,
			MedicineName: "assorted vitamins",
			MedicineType: models.MedTypeSupplement,
		})
		if err != nil {
			t.Fatalf("AddEntry(%s) failed: %v", id, err)
		}
	}

	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ID != "third" || entries[2].ID != "first" {
		t.Errorf("entries not newest-first: %v, %v, %v", entries[0].ID, entries[1].ID, entries[2].ID)
	}
}

func TestSQLiteStore_DuplicateEntryIDRejected(t *testing.T) {
	store := newTestSQLiteStore(t)

	entry := models.DoseEntry{
		ID:           "dup",
		Timestamp:    1,
		MedicineName: "x",
		MedicineType: models.MedTypeIllness,
	}
	if err := store.AddEntry(entry); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if err := store.AddEntry(entry); err == nil {
		t.Error("inserting a duplicate entry ID should fail")
	}
}

func TestSQLiteStore_InvalidSettingsReseeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medflow.db")
	store := NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err := store.GetDB().Exec(`UPDATE settings SET type = 'bogus' WHERE id = 1`)
	if err != nil {
		t.Fatalf("failed to corrupt settings: %v", err)
	}
	store.Close()

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	defer reopened.Close()

	settings, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if !settings.Type.Valid() {
		t.Errorf("invalid category should be re-seeded with defaults, got %q", settings.Type)
	}
}
