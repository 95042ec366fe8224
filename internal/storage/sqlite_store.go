package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/vincentqiao/medflow/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	seq           INTEGER PRIMARY KEY AUTOINCREMENT,
	id            TEXT NOT NULL UNIQUE,
	timestamp     INTEGER NOT NULL,
	medicine_name TEXT NOT NULL,
	medicine_type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	id             INTEGER PRIMARY KEY CHECK (id = 1),
	name           TEXT NOT NULL,
	type           TEXT NOT NULL,
	interval_hours REAL NOT NULL,
	last_dose_time INTEGER
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	// Seed default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

// Load opens the database, creating it with defaults on first run.
func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.Init()
	}

	if err := s.open(); err != nil {
		return err
	}

	// Tolerate a settings row that went missing or no longer parses into
	// a valid category by re-seeding defaults.
	if settings, err := s.GetSettings(); err != nil || !settings.Type.Valid() {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to restore default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	var settings models.Settings
	var lastDose sql.NullInt64
	row := s.db.QueryRow(`SELECT name, type, interval_hours, last_dose_time FROM settings WHERE id = 1`)
	if err := row.Scan(&settings.Name, &settings.Type, &settings.IntervalHours, &lastDose); err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	if lastDose.Valid {
		settings.LastDoseTime = &lastDose.Int64
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var lastDose sql.NullInt64
	if settings.LastDoseTime != nil {
		lastDose = sql.NullInt64{Int64: *settings.LastDoseTime, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO settings (id, name, type, interval_hours, last_dose_time)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			interval_hours = excluded.interval_hours,
			last_dose_time = excluded.last_dose_time`,
		settings.Name, string(settings.Type), settings.IntervalHours, lastDose)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetEntries returns the dose log newest-first. Insertion order breaks
// ties between entries stamped within the same millisecond.
func (s *SQLiteStore) GetEntries() ([]models.DoseEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT id, timestamp, medicine_name, medicine_type FROM entries ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.DoseEntry, 0)
	for rows.Next() {
		var entry models.DoseEntry
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.MedicineName, &entry.MedicineType); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

func (s *SQLiteStore) AddEntry(entry models.DoseEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`INSERT INTO entries (id, timestamp, medicine_name, medicine_type) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Timestamp, entry.MedicineName, string(entry.MedicineType))
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
