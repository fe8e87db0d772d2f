// Package enigma provides the historical rotor and reflector catalogue.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

import (
	"fmt"

	"github.com/coredds/goBombe/internal/reflector"
	"github.com/coredds/goBombe/internal/rotor"
)

// Historical rotor wirings from the Enigma I / M3 machines.
const (
	RotorI   = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	RotorII  = "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	RotorIII = "BDFHJLCPRTXVZNYEIWGAKMUSQO"
	RotorIV  = "ESOVPZJAYQUIRHXLNFTGKDCMWB"
	RotorV   = "VZBRGITYUPSDNHLXAWMJQOFECK"
)

// Historical turnover letters.
const (
	NotchI   = "Q"
	NotchII  = "E"
	NotchIII = "V"
	NotchIV  = "J"
	NotchV   = "Z"
)

// ReflectorB is the standard B reflector wiring.
const ReflectorB = "YRUHQSLDPXNGOKMIEBFZCWVJAT"

var rotorCatalog = map[string][2]string{
	"I":   {RotorI, NotchI},
	"II":  {RotorII, NotchII},
	"III": {RotorIII, NotchIII},
	"IV":  {RotorIV, NotchIV},
	"V":   {RotorV, NotchV},
}

var reflectorCatalog = map[string]string{
	"B": ReflectorB,
}

// RotorNames returns the catalogue rotor names in their fixed order.
func RotorNames() []string {
	return []string{"I", "II", "III", "IV", "V"}
}

// ReflectorNames returns the catalogue reflector names.
func ReflectorNames() []string {
	return []string{"B"}
}

// NewRotor creates a fresh catalogue rotor by name.
func NewRotor(name string) (*rotor.Rotor, error) {
	entry, ok := rotorCatalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown rotor %q", name)
	}
	return rotor.New(name, entry[0], entry[1])
}

// NewReflector creates a fresh catalogue reflector by name.
func NewReflector(name string) (*reflector.Reflector, error) {
	wiring, ok := reflectorCatalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown reflector %q", name)
	}
	return reflector.New(name, wiring)
}
