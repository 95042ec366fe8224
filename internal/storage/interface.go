package storage

import "github.com/vincentqiao/medflow/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Dose log
	GetEntries() ([]models.DoseEntry, error)
	AddEntry(models.DoseEntry) error

	// Utils
	GetConfigPath() string
}
