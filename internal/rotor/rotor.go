// Package rotor provides the rotor component implementation for the Enigma
// machine. A rotor performs substitution permutations through its wiring and
// steps during encryption.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package rotor

import (
	"fmt"

	"github.com/coredds/goBombe/internal/alphabet"
)

// Rotor represents a single rotor: a fixed wiring with its inverse, the
// turnover notch positions, and the mutable rotational state.
//
// The ring setting and the window offset are folded into a single position
// scalar at configuration time, so the signal path only ever adds and
// subtracts position.
type Rotor struct {
	name        string
	wiring      [alphabet.Size]int
	inverse     [alphabet.Size]int
	notches     [alphabet.Size]bool
	ringSetting int
	offset      int
	position    int
}

// New creates a rotor from a 26-letter wiring string and its turnover
// letters. The wiring must be a permutation of the alphabet; the inverse
// table is derived from it.
func New(name, wiring, turnovers string) (*Rotor, error) {
	wiringRunes := []rune(wiring)
	if len(wiringRunes) != alphabet.Size {
		return nil, fmt.Errorf("wiring length (%d) must match alphabet size (%d)",
			len(wiringRunes), alphabet.Size)
	}

	r := &Rotor{name: name}
	var used [alphabet.Size]bool
	for i, w := range wiringRunes {
		out, err := alphabet.Index(w)
		if err != nil {
			return nil, fmt.Errorf("invalid character in wiring at position %d: %v", i, err)
		}
		if used[out] {
			return nil, fmt.Errorf("duplicate output character in wiring: %c", w)
		}
		r.wiring[i] = out
		r.inverse[out] = i
		used[out] = true
	}

	for _, t := range turnovers {
		idx, err := alphabet.Index(t)
		if err != nil {
			return nil, fmt.Errorf("invalid turnover character: %v", err)
		}
		r.notches[idx] = true
	}

	return r, nil
}

// Name returns the identifier of the rotor.
func (r *Rotor) Name() string {
	return r.name
}

// Configure sets the ring setting and the window offset from letters and
// derives the position as (ring - offset) mod 26.
func (r *Rotor) Configure(ring, offset rune) error {
	ringIdx, err := alphabet.Index(ring)
	if err != nil {
		return fmt.Errorf("invalid ring setting: %v", err)
	}
	offsetIdx, err := alphabet.Index(offset)
	if err != nil {
		return fmt.Errorf("invalid offset: %v", err)
	}
	r.Set(ringIdx, offsetIdx)
	return nil
}

// Set is the index form of Configure, used by the search inner loops where
// ring and offset are already letter indices.
func (r *Rotor) Set(ring, offset int) {
	r.ringSetting = alphabet.Mod(ring)
	r.offset = alphabet.Mod(offset)
	r.position = alphabet.Mod(r.ringSetting - r.offset)
}

// Reset restores the position derived from the configured ring setting and
// offset, undoing any stepping since the last Configure or Set.
func (r *Rotor) Reset() {
	r.position = alphabet.Mod(r.ringSetting - r.offset)
}

// Step advances the rotor position by one.
func (r *Rotor) Step() {
	r.position = alphabet.Mod(r.position + 1)
}

// Unstep retracts the rotor position by one.
func (r *Rotor) Unstep() {
	r.position = alphabet.Mod(r.position - 1)
}

// AtTurnover reports whether the rotor's pawl sits in a turnover notch.
func (r *Rotor) AtTurnover() bool {
	return r.notches[r.position]
}

// DidTurnover reports whether the rotor has just stepped past a notch.
func (r *Rotor) DidTurnover() bool {
	return r.notches[alphabet.Mod(r.position-1)]
}

// SignalForward passes a signal through the rotor towards the reflector.
func (r *Rotor) SignalForward(sig int) int {
	pin := alphabet.Mod(sig + r.position)
	return alphabet.Mod(r.wiring[pin] - r.position)
}

// SignalBackward passes a signal through the rotor away from the reflector.
func (r *Rotor) SignalBackward(sig int) int {
	pin := alphabet.Mod(sig + r.position)
	return alphabet.Mod(r.inverse[pin] - r.position)
}

// Position returns the current rotor position.
func (r *Rotor) Position() int {
	return r.position
}

// RingSetting returns the configured ring setting index.
func (r *Rotor) RingSetting() int {
	return r.ringSetting
}

// Offset returns the configured window offset index.
func (r *Rotor) Offset() int {
	return r.offset
}

// Clone creates an independent copy of the rotor, wiring and state included.
// The tables are plain arrays, so this is a struct copy.
func (r *Rotor) Clone() *Rotor {
	c := *r
	return &c
}
