package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vincentqiao/medflow/internal/logger"
	"github.com/vincentqiao/medflow/internal/models"
)

// Store is the whole-document layout persisted by the JSON backend.
// Entries are kept newest-first.
type Store struct {
	Version  int                `json:"version"`
	Settings models.Settings    `json:"settings"`
	Entries  []models.DoseEntry `json:"entries"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func defaultStore() *Store {
	return &Store{
		Version:  1,
		Settings: models.DefaultSettings(),
		Entries:  []models.DoseEntry{},
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = defaultStore()
	return s.save()
}

// Load reads the stored document. A missing file (first run) and a file
// that fails to parse both fall back to defaults; a parse failure is
// logged and the corrupt contents are left on disk until the next write.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.store = defaultStore()
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		logger.Warn("stored data is unreadable, falling back to defaults", "path", s.path, "err", err)
		s.store = defaultStore()
		return nil
	}

	if s.store.Entries == nil {
		s.store.Entries = []models.DoseEntry{}
	}
	if !s.store.Settings.Type.Valid() {
		s.store.Settings = models.DefaultSettings()
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

// GetEntries returns the dose log newest-first.
func (s *JSONStore) GetEntries() ([]models.DoseEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.DoseEntry, len(s.store.Entries))
	copy(entries, s.store.Entries)
	return entries, nil
}

// AddEntry prepends a check-in so the log stays newest-first.
func (s *JSONStore) AddEntry(entry models.DoseEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Entries = append([]models.DoseEntry{entry}, s.store.Entries...)
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple medflow processes that share the same storage path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
