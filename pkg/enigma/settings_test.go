// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSettingsRoundTrip(t *testing.T) {
	m, err := NewMachine([]string{"II", "I", "V"}, "B", "BCD", "XYZ", []string{"AB", "CD"})
	if err != nil {
		t.Fatalf("NewMachine() unexpected error: %v", err)
	}

	s := m.Settings()
	want := Settings{
		Rotors: []RotorSetting{
			{Name: "II", Ring: "B", Offset: "X"},
			{Name: "I", Ring: "C", Offset: "Y"},
			{Name: "V", Ring: "D", Offset: "Z"},
		},
		Reflector: "B",
		Plugboard: []string{"AB", "CD"},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
	}

	configJSON, err := m.SaveSettingsToJSON()
	if err != nil {
		t.Fatalf("SaveSettingsToJSON() unexpected error: %v", err)
	}

	restored, err := NewFromJSON(configJSON)
	if err != nil {
		t.Fatalf("NewFromJSON() unexpected error: %v", err)
	}
	if diff := cmp.Diff(s, restored.Settings()); diff != "" {
		t.Errorf("restored settings mismatch (-want +got):\n%s", diff)
	}

	// The restored machine must encrypt identically.
	text := "SETTINGSROUNDTRIPPROBE"
	a, err := m.Encrypt(text)
	if err != nil {
		t.Fatalf("Encrypt() unexpected error: %v", err)
	}
	b, err := restored.Encrypt(text)
	if err != nil {
		t.Fatalf("Encrypt() unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("restored machine encrypts %q, original %q", b, a)
	}
}

func TestSettingsCanonical(t *testing.T) {
	m, err := NewMachine([]string{"I", "II", "III"}, "B", "AAA", "QEV", []string{"CD", "AB"})
	if err != nil {
		t.Fatalf("NewMachine() unexpected error: %v", err)
	}

	// Pair order in the canonical string does not depend on how the pairs
	// were given.
	want := "B I:A:Q II:A:E III:A:V AB.CD"
	if got := m.Settings().Canonical(); got != want {
		t.Errorf("Canonical() = %q, want %q", got, want)
	}
}

func TestNewFromSettingsUnknownRotor(t *testing.T) {
	_, err := NewFromSettings(Settings{
		Rotors: []RotorSetting{
			{Name: "VIII", Ring: "A", Offset: "A"},
			{Name: "I", Ring: "A", Offset: "A"},
			{Name: "II", Ring: "A", Offset: "A"},
		},
		Reflector: "B",
	})
	if err == nil {
		t.Errorf("NewFromSettings() expected error for an unknown rotor")
	}
}
