package models

import "github.com/vincentqiao/medflow/internal/constants"

// MedType categorizes why a reminder exists.
type MedType string

const (
	MedTypeIllness    MedType = "illness"
	MedTypeSupplement MedType = "supplement"
	MedTypeImpulse    MedType = "impulse"
)

// MedTypes lists every valid category in display order.
var MedTypes = []MedType{MedTypeIllness, MedTypeSupplement, MedTypeImpulse}

// defaultLabels maps each category to its canonical free-text label.
// Picking a category resets the label to this default; the user may
// override it afterwards through the settings form.
var defaultLabels = map[MedType]string{
	MedTypeIllness:    "three times a day",
	MedTypeSupplement: "assorted vitamins",
	MedTypeImpulse:    "just a little treat",
}

func (t MedType) Valid() bool {
	_, ok := defaultLabels[t]
	return ok
}

// DefaultLabel returns the canonical label for the category.
func (t MedType) DefaultLabel() string {
	return defaultLabels[t]
}

// DoseEntry records a single check-in. Entries are immutable once created
// and the log is kept newest-first.
type DoseEntry struct {
	ID           string  `json:"id"`
	Timestamp    int64   `json:"timestamp"` // milliseconds since epoch
	MedicineName string  `json:"medicine_name"`
	MedicineType MedType `json:"medicine_type"`
}

// Settings describes the active reminder.
type Settings struct {
	Name          string  `json:"name"`
	Type          MedType `json:"type"`
	IntervalHours float64 `json:"interval_hours"`
	LastDoseTime  *int64  `json:"last_dose_time"` // milliseconds since epoch, nil before the first check-in
}

// DefaultSettings returns the settings used on first run: the supplement
// category with its canonical label, a 6 hour interval, and no dose taken yet.
func DefaultSettings() Settings {
	return Settings{
		Name:          MedTypeSupplement.DefaultLabel(),
		Type:          MedTypeSupplement,
		IntervalHours: constants.DefaultIntervalHours,
	}
}

// AdviceType classifies an advice message.
type AdviceType string

const (
	AdviceEncouragement AdviceType = "encouragement"
	AdviceInfo          AdviceType = "info"
	AdviceWarning       AdviceType = "warning"
)

func (t AdviceType) Valid() bool {
	switch t {
	case AdviceEncouragement, AdviceInfo, AdviceWarning:
		return true
	}
	return false
}

// Advice is the ephemeral message shown after a check-in. It is never
// persisted.
type Advice struct {
	Message string     `json:"message"`
	Type    AdviceType `json:"type"`
}
