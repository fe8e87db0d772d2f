// Package reflector provides the reflector component implementation for the
// Enigma machine. A reflector is an involution over the alphabet with no
// fixed points: if A maps to B, then B maps to A, and no letter maps to
// itself.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package reflector

import (
	"fmt"

	"github.com/coredds/goBombe/internal/alphabet"
)

// Reflector represents the reflector component of an Enigma machine.
type Reflector struct {
	name    string
	mapping [alphabet.Size]int
}

// New creates a reflector from a 26-letter mapping string. The mapping is
// validated to be a fixed-point-free involution.
func New(name, mapping string) (*Reflector, error) {
	mappingRunes := []rune(mapping)
	if len(mappingRunes) != alphabet.Size {
		return nil, fmt.Errorf("mapping length (%d) must match alphabet size (%d)",
			len(mappingRunes), alphabet.Size)
	}

	r := &Reflector{name: name}
	var used [alphabet.Size]bool
	for i, m := range mappingRunes {
		out, err := alphabet.Index(m)
		if err != nil {
			return nil, fmt.Errorf("invalid character in mapping at position %d: %v", i, err)
		}
		if i == out {
			return nil, fmt.Errorf("character %c cannot reflect to itself", m)
		}
		if used[out] {
			return nil, fmt.Errorf("character %c is used multiple times in mapping", m)
		}
		r.mapping[i] = out
		used[out] = true
	}

	for i := 0; i < alphabet.Size; i++ {
		if r.mapping[r.mapping[i]] != i {
			in, _ := alphabet.Rune(i)
			out, _ := alphabet.Rune(r.mapping[i])
			back, _ := alphabet.Rune(r.mapping[r.mapping[i]])
			return nil, fmt.Errorf("non-reciprocal mapping: %c->%c but %c->%c", in, out, out, back)
		}
	}

	return r, nil
}

// Name returns the identifier of the reflector.
func (r *Reflector) Name() string {
	return r.name
}

// Reflect performs the reflection on an input signal.
func (r *Reflector) Reflect(sig int) int {
	return r.mapping[sig]
}

// Clone creates an independent copy of the reflector.
func (r *Reflector) Clone() *Reflector {
	c := *r
	return &c
}
