// Package enigma provides settings serialization for the machine.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coredds/goBombe/internal/alphabet"
)

// RotorSetting describes one rotor on a key sheet: its catalogue name, its
// ring setting letter, and its window offset letter.
type RotorSetting struct {
	Name   string `json:"name"`
	Ring   string `json:"ring"`
	Offset string `json:"offset"`
}

// Settings is the serializable configuration of a machine. Rotors are
// listed left to right (slowest first), as on a key sheet.
type Settings struct {
	Rotors    []RotorSetting `json:"rotors"`
	Reflector string         `json:"reflector"`
	Plugboard []string       `json:"plugboard,omitempty"`
}

// Settings returns the machine's configuration as key-sheet values.
func (m *Machine) Settings() Settings {
	n := len(m.rotors)
	s := Settings{
		Rotors:    make([]RotorSetting, n),
		Reflector: m.reflector.Name(),
	}
	for i, r := range m.rotors {
		ring, _ := alphabet.Rune(r.RingSetting())
		offset, _ := alphabet.Rune(r.Offset())
		s.Rotors[n-1-i] = RotorSetting{
			Name:   r.Name(),
			Ring:   string(ring),
			Offset: string(offset),
		}
	}
	for _, pair := range m.plugboard.Pairs() {
		s.Plugboard = append(s.Plugboard, string(pair[0])+string(pair[1]))
	}
	return s
}

// NewFromSettings builds a machine from key-sheet settings using the
// historical catalogue.
func NewFromSettings(s Settings) (*Machine, error) {
	wheelOrder := make([]string, len(s.Rotors))
	var rings, offsets strings.Builder
	for i, rs := range s.Rotors {
		if len(rs.Ring) != 1 || len(rs.Offset) != 1 {
			return nil, fmt.Errorf("rotor %s: ring and offset must be single letters", rs.Name)
		}
		wheelOrder[i] = rs.Name
		rings.WriteString(rs.Ring)
		offsets.WriteString(rs.Offset)
	}
	return NewMachine(wheelOrder, s.Reflector, rings.String(), offsets.String(), s.Plugboard)
}

// Canonical returns a stable single-line form of the settings, used as a
// deterministic tie-break key when ranking candidates.
func (s Settings) Canonical() string {
	var b strings.Builder
	b.WriteString(s.Reflector)
	for _, r := range s.Rotors {
		b.WriteByte(' ')
		b.WriteString(r.Name)
		b.WriteByte(':')
		b.WriteString(r.Ring)
		b.WriteByte(':')
		b.WriteString(r.Offset)
	}
	if len(s.Plugboard) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(s.Plugboard, "."))
	}
	return b.String()
}

// SaveSettingsToJSON serializes the machine configuration to JSON.
func (m *Machine) SaveSettingsToJSON() (string, error) {
	data, err := json.MarshalIndent(m.Settings(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal settings: %v", err)
	}
	return string(data), nil
}

// NewFromJSON builds a machine from a JSON settings document.
func NewFromJSON(configJSON string) (*Machine, error) {
	var s Settings
	if err := json.Unmarshal([]byte(configJSON), &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %v", err)
	}
	return NewFromSettings(s)
}
