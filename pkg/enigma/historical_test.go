// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

import (
	"testing"
)

func TestRotorCatalogue(t *testing.T) {
	notches := map[string]int{
		"I":   'Q' - 'A',
		"II":  'E' - 'A',
		"III": 'V' - 'A',
		"IV":  'J' - 'A',
		"V":   'Z' - 'A',
	}

	for _, name := range RotorNames() {
		t.Run(name, func(t *testing.T) {
			r, err := NewRotor(name)
			if err != nil {
				t.Fatalf("NewRotor(%q) unexpected error: %v", name, err)
			}
			if r.Name() != name {
				t.Errorf("Name() = %q, want %q", r.Name(), name)
			}

			// The wiring is validated as a bijection at construction; the
			// signal path must invert at any position.
			for s := 0; s < 26; s++ {
				if got := r.SignalBackward(r.SignalForward(s)); got != s {
					t.Errorf("inverse broken at signal %d", s)
				}
			}

			// Put the rotor at its notch and check the turnover predicate.
			r.Set(notches[name], 0)
			if !r.AtTurnover() {
				t.Errorf("AtTurnover() false at the %s notch", name)
			}
		})
	}
}

func TestRotorCatalogueUnknown(t *testing.T) {
	if _, err := NewRotor("VI"); err == nil {
		t.Errorf("NewRotor(VI) expected error: not in the catalogue")
	}
}

func TestReflectorCatalogue(t *testing.T) {
	refl, err := NewReflector("B")
	if err != nil {
		t.Fatalf("NewReflector(B) unexpected error: %v", err)
	}
	for s := 0; s < 26; s++ {
		if refl.Reflect(s) == s {
			t.Errorf("Reflect(%d) is a fixed point", s)
		}
		if refl.Reflect(refl.Reflect(s)) != s {
			t.Errorf("Reflect is not an involution at %d", s)
		}
	}

	if _, err := NewReflector("C"); err == nil {
		t.Errorf("NewReflector(C) expected error: not in the catalogue")
	}
}
