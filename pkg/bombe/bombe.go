// Package bombe provides the Bombe engine: for a fixed wheel order,
// reflector, and ring setting, it sweeps every rotor starting position and
// plugboard hypothesis, propagates each hypothesis around the cycles of a
// menu, and keeps only the hypotheses that close every cycle without
// contradiction.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package bombe

import (
	"fmt"
	"strings"

	"github.com/coredds/goBombe/internal/alphabet"
	"github.com/coredds/goBombe/pkg/enigma"
	"github.com/coredds/goBombe/pkg/menu"
)

// Position is a rotor starting-position triple, fastest rotor first, as
// letter indices.
type Position [3]int

// String renders the triple as letters, fastest rotor first.
func (p Position) String() string {
	return string([]byte{byte('A' + p[0]), byte('A' + p[1]), byte('A' + p[2])})
}

// Steckering is the canonical form of a plugboard hypothesis: the
// non-identity pairs, each pair smaller letter first, pairs sorted, joined
// by spaces. The empty Steckering is the unsteckered board.
type Steckering string

// Pairs returns the steckering as plugboard pair strings such as "AB".
func (s Steckering) Pairs() []string {
	if s == "" {
		return nil
	}
	return strings.Split(string(s), " ")
}

// Result maps each surviving plugboard hypothesis to the rotor starting
// positions consistent with it under the Bombe's wheel order, reflector,
// and ring setting.
type Result map[Steckering][]Position

// Bombe tests plugboard and rotor-position hypotheses against a menu on a
// machine template with a fixed wheel order and reflector.
type Bombe struct {
	machine *enigma.Machine
	rings   [3]int
}

// New creates a Bombe around a machine template. The template must carry
// three rotors and an empty plugboard: the Bombe supplies the steckering
// hypotheses itself, so a steckered template would double-apply them.
func New(machine *enigma.Machine, rings [3]int) (*Bombe, error) {
	if len(machine.Rotors()) != 3 {
		return nil, fmt.Errorf("bombe requires a three-rotor machine, got %d rotors", len(machine.Rotors()))
	}
	if machine.Plugboard().PairCount() != 0 {
		return nil, fmt.Errorf("bombe machine template must have an empty plugboard")
	}
	return &Bombe{machine: machine, rings: rings}, nil
}

// Run sweeps all rotor starting positions against the menu's paths.
//
// For each of the 26^3 starting positions and each of the 26 hypotheses for
// the stecker partner of the menu's input letter, the deduction walks every
// path: each consecutive letter pair fixes the machine at one crib position,
// and encrypting the current letter's stecker partner there either extends
// the hypothesis, closes the cycle, or contradicts it. Pairings shown
// inconsistent at this starting position are remembered, so later
// hypotheses that reintroduce them die immediately.
func (b *Bombe) Run(m *menu.Menu, paths []string) Result {
	result := make(Result)
	if len(paths) == 0 {
		return result
	}

	rotors := b.machine.Rotors()
	var contradictions [alphabet.Size]uint32

	for o0 := 0; o0 < alphabet.Size; o0++ {
		for o1 := 0; o1 < alphabet.Size; o1++ {
			for o2 := 0; o2 < alphabet.Size; o2++ {
				rotors[0].Set(b.rings[0], o0)
				rotors[1].Set(b.rings[1], o1)
				rotors[2].Set(b.rings[2], o2)
				contradictions = [alphabet.Size]uint32{}

				for guess := 0; guess < alphabet.Size; guess++ {
					var pb [alphabet.Size]int8
					for i := range pb {
						pb[i] = -1
					}
					pb[m.Input] = int8(guess)
					pb[guess] = int8(m.Input)

					if b.propagate(m, paths, &pb, &contradictions) {
						key := canonical(&pb)
						result[key] = append(result[key], Position{o0, o1, o2})
					}
				}
			}
		}
	}
	return result
}

// propagate walks every path under the current hypothesis, extending pb
// with deduced pairs. It reports whether the hypothesis survived; on
// failure the pairs deduced so far are recorded as contradictions.
func (b *Bombe) propagate(m *menu.Menu, paths []string, pb *[alphabet.Size]int8, contradictions *[alphabet.Size]uint32) bool {
	for _, path := range paths {
		for i := 0; i+1 < len(path); i++ {
			letter := int(path[i] - 'A')
			cipher := int(path[i+1] - 'A')

			// Only the first offset of a multi-edge constrains the walk.
			off := m.Edges(letter, cipher)[0]

			// Put the machine in the state of crib position off: off
			// steps to reach it, one more for the key press itself.
			b.machine.Reset()
			for s := 0; s <= off; s++ {
				b.machine.Step()
			}

			if pb[letter] < 0 {
				// A walk starts at the input letter and ties each letter
				// it crosses, so this does not happen on connected paths.
				continue
			}

			q := b.machine.EncryptLetter(int(pb[letter]))

			if contradictions[cipher]&(1<<uint(q)) != 0 {
				recordPairs(pb, contradictions)
				return false
			}

			if pb[cipher] >= 0 {
				if int(pb[cipher]) == q {
					// The cycle closed consistently; this path is done.
					break
				}
				addContradiction(cipher, q, contradictions)
				recordPairs(pb, contradictions)
				return false
			}

			if pb[q] >= 0 && int(pb[q]) != cipher {
				// The deduced partner already carries a different stecker.
				addContradiction(cipher, q, contradictions)
				recordPairs(pb, contradictions)
				return false
			}

			pb[cipher] = int8(q)
			pb[q] = int8(cipher)
		}
	}
	return true
}

func addContradiction(a, b int, contradictions *[alphabet.Size]uint32) {
	contradictions[a] |= 1 << uint(b)
	contradictions[b] |= 1 << uint(a)
}

func recordPairs(pb *[alphabet.Size]int8, contradictions *[alphabet.Size]uint32) {
	for i, partner := range pb {
		if partner >= 0 {
			addContradiction(i, int(partner), contradictions)
		}
	}
}

// canonical freezes a surviving hypothesis as its set of non-identity
// pairs, smaller letter first within a pair, pairs in letter order.
func canonical(pb *[alphabet.Size]int8) Steckering {
	var pairs []string
	for i := 0; i < alphabet.Size; i++ {
		if int(pb[i]) > i {
			pairs = append(pairs, string([]byte{byte('A' + i), byte('A' + pb[i])}))
		}
	}
	return Steckering(strings.Join(pairs, " "))
}
