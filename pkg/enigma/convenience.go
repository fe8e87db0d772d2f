// Package enigma provides convenience constructors over the catalogue.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

import (
	"fmt"

	"github.com/coredds/goBombe/internal/rotor"
)

// NewMachine builds a machine from key-sheet style values: the wheel order
// left to right (slowest rotor first, as written on a key sheet), a
// catalogue reflector name, ring settings and offsets as one letter per
// rotor (left to right), and plugboard pairs such as "AB".
func NewMachine(wheelOrder []string, reflectorName, rings, offsets string, plugboardPairs []string) (*Machine, error) {
	ringRunes := []rune(rings)
	offsetRunes := []rune(offsets)
	if len(ringRunes) != len(wheelOrder) {
		return nil, fmt.Errorf("ring settings %q must have one letter per rotor", rings)
	}
	if len(offsetRunes) != len(wheelOrder) {
		return nil, fmt.Errorf("offsets %q must have one letter per rotor", offsets)
	}

	// Key sheets list the slowest rotor first; the machine wants the
	// fastest first.
	n := len(wheelOrder)
	rotors := make([]*rotor.Rotor, n)
	for i, name := range wheelOrder {
		r, err := NewRotor(name)
		if err != nil {
			return nil, err
		}
		if err := r.Configure(ringRunes[i], offsetRunes[i]); err != nil {
			return nil, fmt.Errorf("rotor %s: %v", name, err)
		}
		rotors[n-1-i] = r
	}

	refl, err := NewReflector(reflectorName)
	if err != nil {
		return nil, err
	}

	opts := []Option{WithRotors(rotors...), WithReflector(refl)}
	if len(plugboardPairs) > 0 {
		pairs, err := ParsePlugboardPairs(plugboardPairs)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPlugboardPairs(pairs))
	}

	return New(opts...)
}

// ParsePlugboardPairs converts pair strings such as "AB" into rune pairs.
func ParsePlugboardPairs(pairs []string) ([][2]rune, error) {
	out := make([][2]rune, 0, len(pairs))
	for _, p := range pairs {
		runes := []rune(p)
		if len(runes) != 2 {
			return nil, fmt.Errorf("plugboard pair %q must be exactly two letters", p)
		}
		out = append(out, [2]rune{runes[0], runes[1]})
	}
	return out, nil
}
