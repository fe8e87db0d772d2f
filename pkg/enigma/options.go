// Package enigma provides functional options for configuring machines.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

import (
	"fmt"

	"github.com/coredds/goBombe/internal/plugboard"
	"github.com/coredds/goBombe/internal/reflector"
	"github.com/coredds/goBombe/internal/rotor"
)

// Option is a functional option for Machine configuration.
type Option func(*Machine) error

// WithRotors installs the rotors, fastest (rightmost) first. The rotors are
// cloned so the machine owns its state.
func WithRotors(rotors ...*rotor.Rotor) Option {
	return func(m *Machine) error {
		if len(rotors) == 0 {
			return fmt.Errorf("at least one rotor must be provided")
		}
		m.rotors = make([]*rotor.Rotor, len(rotors))
		for i, r := range rotors {
			if r == nil {
				return fmt.Errorf("rotor %d cannot be nil", i)
			}
			m.rotors[i] = r.Clone()
		}
		return nil
	}
}

// WithReflector installs the reflector. The reflector is cloned.
func WithReflector(refl *reflector.Reflector) Option {
	return func(m *Machine) error {
		if refl == nil {
			return fmt.Errorf("reflector cannot be nil")
		}
		m.reflector = refl.Clone()
		return nil
	}
}

// WithPlugboard installs a plugboard. The plugboard is cloned.
func WithPlugboard(pb *plugboard.Plugboard) Option {
	return func(m *Machine) error {
		if pb == nil {
			return fmt.Errorf("plugboard cannot be nil")
		}
		m.plugboard = pb.Clone()
		return nil
	}
}

// WithPlugboardPairs builds the plugboard from reciprocal letter pairs.
// Pair validation (duplicate letters, self-pairs) happens here.
func WithPlugboardPairs(pairs [][2]rune) Option {
	return func(m *Machine) error {
		pb, err := plugboard.NewFromPairs(pairs)
		if err != nil {
			return fmt.Errorf("invalid plugboard configuration: %v", err)
		}
		m.plugboard = pb
		return nil
	}
}
