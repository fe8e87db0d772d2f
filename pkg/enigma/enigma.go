// Package enigma provides the Enigma machine implementation: three rotors,
// a reflector, and a plugboard, with the stepping mechanism including the
// middle-rotor double-step anomaly.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

import (
	"fmt"
	"strings"

	"github.com/coredds/goBombe/internal/alphabet"
	"github.com/coredds/goBombe/internal/plugboard"
	"github.com/coredds/goBombe/internal/reflector"
	"github.com/coredds/goBombe/internal/rotor"
)

// Machine represents a configured Enigma machine.
//
// Rotors are held fastest first: index 0 is the rightmost rotor, the one
// that steps on every key press. A configured machine is in the state
// before the first key press; Encrypt steps the rotors before each letter.
type Machine struct {
	rotors    []*rotor.Rotor
	reflector *reflector.Reflector
	plugboard *plugboard.Plugboard
}

// New creates a new Machine with the given options.
func New(opts ...Option) (*Machine, error) {
	m := &Machine{}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("failed to apply option: %v", err)
		}
	}

	if len(m.rotors) < 2 {
		return nil, fmt.Errorf("at least two rotors must be configured")
	}
	if m.reflector == nil {
		return nil, fmt.Errorf("reflector must be set")
	}
	if m.plugboard == nil {
		m.plugboard = plugboard.New()
	}

	// A wheel order never repeats a rotor.
	seen := make(map[string]bool, len(m.rotors))
	for _, r := range m.rotors {
		if seen[r.Name()] {
			return nil, fmt.Errorf("rotor %s appears twice in the wheel order", r.Name())
		}
		seen[r.Name()] = true
	}

	return m, nil
}

// Step advances the rotors for one key press.
//
// The middle rotor advances when either its right neighbour or the rotor
// itself sits at a turnover notch; the latter is the double-step anomaly.
// The leftmost rotor advances when the middle rotor is at a notch. The
// fastest rotor always advances.
func (m *Machine) Step() {
	n := len(m.rotors)
	if m.rotors[n-2].AtTurnover() {
		m.rotors[n-1].Step()
	}
	for i := n - 2; i >= 1; i-- {
		if m.rotors[i-1].AtTurnover() || m.rotors[i].AtTurnover() {
			m.rotors[i].Step()
		}
	}
	m.rotors[0].Step()
}

// Unstep reverses one key press worth of stepping.
//
// The fastest rotor retracts first; a middle rotor retracts when its (now
// retracted) right neighbour sits at a notch or when the rotor itself just
// turned past its own notch; the leftmost retracts when the middle rotor,
// after its own retraction, sits at a notch. The state one past a middle
// rotor's notch has two valid predecessors, so on that boundary the
// double-step interpretation is taken.
func (m *Machine) Unstep() {
	n := len(m.rotors)
	m.rotors[0].Unstep()
	for i := 1; i <= n-2; i++ {
		if m.rotors[i-1].AtTurnover() || m.rotors[i].DidTurnover() {
			m.rotors[i].Unstep()
		}
	}
	if m.rotors[n-2].AtTurnover() {
		m.rotors[n-1].Unstep()
	}
}

// EncryptLetter encrypts a single letter index at the current rotor state
// without stepping. At any fixed state this is an involution and never maps
// a letter to itself.
func (m *Machine) EncryptLetter(c int) int {
	// 1. Plugboard in
	sig := m.plugboard.Process(c)

	// 2. Rotors towards the reflector, fastest first
	for _, r := range m.rotors {
		sig = r.SignalForward(sig)
	}

	// 3. Reflector
	sig = m.reflector.Reflect(sig)

	// 4. Rotors back, slowest first
	for i := len(m.rotors) - 1; i >= 0; i-- {
		sig = m.rotors[i].SignalBackward(sig)
	}

	// 5. Plugboard out
	return m.plugboard.Process(sig)
}

// Encrypt encrypts a message. The input is uppercased; every letter first
// steps the rotors, then passes through the machine. By the reciprocal
// nature of the machine, Encrypt of a ciphertext is the decryption.
func (m *Machine) Encrypt(text string) (string, error) {
	text = strings.ToUpper(text)
	if invalid, err := alphabet.ValidateString(text); err != nil {
		return "", fmt.Errorf("invalid character %q in input text: %v", invalid, err)
	}

	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		c, _ := alphabet.Index(r)
		m.Step()
		enc, _ := alphabet.Rune(m.EncryptLetter(c))
		out.WriteRune(enc)
	}
	return out.String(), nil
}

// Reset restores every rotor to the position derived from its configured
// ring setting and offset.
func (m *Machine) Reset() {
	for _, r := range m.rotors {
		r.Reset()
	}
}

// Rotors returns the machine's rotors, fastest first. The slice aliases the
// machine state: reconfiguring a returned rotor reconfigures the machine,
// which is how the Bombe sweeps rotor settings on its template.
func (m *Machine) Rotors() []*rotor.Rotor {
	return m.rotors
}

// Reflector returns the machine's reflector.
func (m *Machine) Reflector() *reflector.Reflector {
	return m.reflector
}

// Plugboard returns the machine's plugboard.
func (m *Machine) Plugboard() *plugboard.Plugboard {
	return m.plugboard
}

// Positions returns the current rotor positions, fastest first.
func (m *Machine) Positions() []int {
	positions := make([]int, len(m.rotors))
	for i, r := range m.rotors {
		positions[i] = r.Position()
	}
	return positions
}

// Clone creates a deep copy of the machine, current rotor state included.
func (m *Machine) Clone() *Machine {
	clone := &Machine{
		rotors:    make([]*rotor.Rotor, len(m.rotors)),
		reflector: m.reflector.Clone(),
		plugboard: m.plugboard.Clone(),
	}
	for i, r := range m.rotors {
		clone.rotors[i] = r.Clone()
	}
	return clone
}
