// Package menu provides the crib machinery of the Bombe attack: crib
// placement against a ciphertext, the bi-directional letter graph (the
// "menu") for a placement, and the enumeration of cycle-closing walks that
// give the Bombe its constraints.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package menu

import (
	"fmt"

	"github.com/coredds/goBombe/internal/alphabet"
)

// Menu is the letter graph for one crib placement. Nodes are letters; an
// edge between two letters carries the crib offsets at which one encrypts
// to the other. The machine maps a letter to itself at no position, so the
// graph has no self-loops.
//
// A Menu is built once and never mutated; it is safe to share across
// workers.
type Menu struct {
	// Input is the letter index of the crib's first letter, where every
	// path walk starts.
	Input int
	// Offset is the crib's position within the ciphertext.
	Offset int

	edges [alphabet.Size][alphabet.Size][]int
}

// FindCribPositions returns every placement of the crib in the ciphertext
// at which no crib letter coincides with its ciphertext letter. A letter
// never encrypts to itself, so any coinciding position is impossible.
func FindCribPositions(crib, ciphertext string) ([]int, error) {
	if crib == "" {
		return nil, fmt.Errorf("crib cannot be empty")
	}
	if invalid, err := alphabet.ValidateString(crib); err != nil {
		return nil, fmt.Errorf("invalid character %q in crib: %v", invalid, err)
	}
	if invalid, err := alphabet.ValidateString(ciphertext); err != nil {
		return nil, fmt.Errorf("invalid character %q in ciphertext: %v", invalid, err)
	}
	if len(crib) > len(ciphertext) {
		return nil, fmt.Errorf("crib (%d letters) is longer than the ciphertext (%d letters)",
			len(crib), len(ciphertext))
	}

	var positions []int
	for p := 0; p <= len(ciphertext)-len(crib); p++ {
		valid := true
		for i := 0; i < len(crib); i++ {
			if crib[i] == ciphertext[p+i] {
				valid = false
				break
			}
		}
		if valid {
			positions = append(positions, p)
		}
	}
	return positions, nil
}

// New builds the menu for a crib placed at the given position. For each
// crib offset i, the crib letter and the ciphertext letter at position+i
// are joined by an edge annotated with i, in both directions.
func New(crib, ciphertext string, position int) (*Menu, error) {
	if position < 0 || position+len(crib) > len(ciphertext) {
		return nil, fmt.Errorf("position %d out of range for crib of %d letters", position, len(crib))
	}

	input, err := alphabet.Index(rune(crib[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid character in crib: %v", err)
	}

	m := &Menu{Input: input, Offset: position}
	for i := 0; i < len(crib); i++ {
		a, err := alphabet.Index(rune(crib[i]))
		if err != nil {
			return nil, fmt.Errorf("invalid character in crib: %v", err)
		}
		b, err := alphabet.Index(rune(ciphertext[position+i]))
		if err != nil {
			return nil, fmt.Errorf("invalid character in ciphertext: %v", err)
		}
		if a == b {
			return nil, fmt.Errorf("crib matches ciphertext at offset %d: not a valid placement", i)
		}
		m.edges[a][b] = append(m.edges[a][b], i)
		m.edges[b][a] = append(m.edges[b][a], i)
	}
	return m, nil
}

// Edges returns the crib offsets annotating the edge between two letters,
// or nil when the letters are not joined.
func (m *Menu) Edges(a, b int) []int {
	return m.edges[a][b]
}

// Paths enumerates cycle-containing walks from the input letter.
//
// A depth-first walk extends through the graph; when it would step onto a
// letter already on the walk, the walk plus that letter is emitted as a
// path. A walk never steps straight back to the letter it just came from,
// which would close a constraint-free two-step. Emitted paths are unique by
// the set of letters they contain.
func (m *Menu) Paths() []string {
	seen := make(map[uint32]bool)
	var paths []string

	var walk func(path []int)
	walk = func(path []int) {
		current := path[len(path)-1]
		for next := 0; next < alphabet.Size; next++ {
			if len(m.edges[current][next]) == 0 {
				continue
			}
			if len(path) >= 2 && next == path[len(path)-2] {
				continue
			}

			revisit := false
			for _, p := range path {
				if p == next {
					revisit = true
					break
				}
			}

			if revisit {
				mask := letterMask(path) | 1<<uint(next)
				if !seen[mask] {
					seen[mask] = true
					paths = append(paths, pathString(path, next))
				}
				continue
			}
			walk(append(path, next))
		}
	}

	walk([]int{m.Input})
	return paths
}

func letterMask(path []int) uint32 {
	var mask uint32
	for _, p := range path {
		mask |= 1 << uint(p)
	}
	return mask
}

func pathString(path []int, last int) string {
	out := make([]byte, 0, len(path)+1)
	for _, p := range path {
		out = append(out, byte('A'+p))
	}
	return string(append(out, byte('A'+last)))
}
