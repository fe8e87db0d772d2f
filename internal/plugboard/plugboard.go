// Package plugboard provides the plugboard (Steckerbrett) component
// implementation for the Enigma machine. It applies a reciprocal letter
// swap before and after the rotor pass; unsteckered letters map to
// themselves.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package plugboard

import (
	"fmt"

	"github.com/coredds/goBombe/internal/alphabet"
)

// Plugboard represents the plugboard component of an Enigma machine.
// The mapping is a full involution over the alphabet.
type Plugboard struct {
	mapping [alphabet.Size]int
}

// New creates an empty plugboard, mapping every letter to itself.
func New() *Plugboard {
	p := &Plugboard{}
	for i := range p.mapping {
		p.mapping[i] = i
	}
	return p
}

// NewFromPairs creates a plugboard from reciprocal letter pairs such as
// {'A','B'}. A letter may appear in at most one pair, and no pair may
// connect a letter to itself.
func NewFromPairs(pairs [][2]rune) (*Plugboard, error) {
	p := New()
	for _, pair := range pairs {
		if err := p.addPair(pair[0], pair[1]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Plugboard) addPair(r1, r2 rune) error {
	a, err := alphabet.Index(r1)
	if err != nil {
		return fmt.Errorf("invalid plugboard character: %v", err)
	}
	b, err := alphabet.Index(r2)
	if err != nil {
		return fmt.Errorf("invalid plugboard character: %v", err)
	}
	if a == b {
		return fmt.Errorf("plugboard cannot connect %c to itself", r1)
	}
	if p.mapping[a] != a {
		return fmt.Errorf("plugboard letter %c is already paired", r1)
	}
	if p.mapping[b] != b {
		return fmt.Errorf("plugboard letter %c is already paired", r2)
	}
	p.mapping[a] = b
	p.mapping[b] = a
	return nil
}

// Process applies the plugboard mapping to a letter index.
func (p *Plugboard) Process(sig int) int {
	return p.mapping[sig]
}

// Pairs returns the non-identity pairs in canonical order: pairs sorted
// lexicographically, the smaller letter first within each pair.
func (p *Plugboard) Pairs() [][2]rune {
	var pairs [][2]rune
	for i := 0; i < alphabet.Size; i++ {
		if p.mapping[i] > i {
			a, _ := alphabet.Rune(i)
			b, _ := alphabet.Rune(p.mapping[i])
			pairs = append(pairs, [2]rune{a, b})
		}
	}
	return pairs
}

// PairCount returns the number of steckered pairs.
func (p *Plugboard) PairCount() int {
	n := 0
	for i, m := range p.mapping {
		if m > i {
			n++
		}
	}
	return n
}

// Clone creates an independent copy of the plugboard.
func (p *Plugboard) Clone() *Plugboard {
	c := *p
	return &c
}
