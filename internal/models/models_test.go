package models

import "testing"

func TestMedTypeDefaultLabels(t *testing.T) {
	cases := []struct {
		medType MedType
		label   string
	}{
		{MedTypeIllness, "three times a day"},
		{MedTypeSupplement, "assorted vitamins"},
		{MedTypeImpulse, "just a little treat"},
	}

	for _, tc := range cases {
		if !tc.medType.Valid() {
			t.Errorf("%q should be valid", tc.medType)
		}
		if got := tc.medType.DefaultLabel(); got != tc.label {
			t.Errorf("%q default label = %q, want %q", tc.medType, got, tc.label)
		}
	}

	if MedType("candy").Valid() {
		t.Error("unknown category should not be valid")
	}
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Type != MedTypeSupplement {
		t.Errorf("default type = %q, want supplement", settings.Type)
	}
	if settings.Name != MedTypeSupplement.DefaultLabel() {
		t.Errorf("default name = %q, want %q", settings.Name, MedTypeSupplement.DefaultLabel())
	}
	if settings.IntervalHours != 6 {
		t.Errorf("default interval = %v, want 6", settings.IntervalHours)
	}
	if settings.LastDoseTime != nil {
		t.Error("default LastDoseTime should be nil")
	}
}

func TestAdviceTypeValid(t *testing.T) {
	for _, at := range []AdviceType{AdviceEncouragement, AdviceInfo, AdviceWarning} {
		if !at.Valid() {
			t.Errorf("%q should be valid", at)
		}
	}
	if AdviceType("banter").Valid() {
		t.Error("unknown advice type should not be valid")
	}
}
