// Package alphabet provides the fixed 26-letter uppercase Latin alphabet
// shared by every component of the machine and the search.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package alphabet

import "fmt"

// Letters is the alphabet in its fixed ordering. Index 0 is 'A'.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of letters in the alphabet.
const Size = 26

// Index converts a rune to its letter index.
// Returns an error if the rune is not an uppercase Latin letter.
func Index(r rune) (int, error) {
	if r < 'A' || r > 'Z' {
		return 0, fmt.Errorf("character %q not in alphabet A-Z", r)
	}
	return int(r - 'A'), nil
}

// Rune converts a letter index back to its rune.
// Returns an error if the index is out of bounds.
func Rune(idx int) (rune, error) {
	if idx < 0 || idx >= Size {
		return 0, fmt.Errorf("index %d out of bounds [0, %d)", idx, Size)
	}
	return rune('A' + idx), nil
}

// Contains checks if a rune is present in the alphabet.
func Contains(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// ValidateString checks that all runes in the string are in the alphabet.
// Returns the first invalid rune found, or 0 if all are valid.
func ValidateString(s string) (rune, error) {
	for _, r := range s {
		if !Contains(r) {
			return r, fmt.Errorf("character %q not in alphabet A-Z", r)
		}
	}
	return 0, nil
}

// StringToIndices converts a string to a slice of letter indices.
func StringToIndices(s string) ([]int, error) {
	result := make([]int, 0, len(s))
	for _, r := range s {
		idx, err := Index(r)
		if err != nil {
			return nil, err
		}
		result = append(result, idx)
	}
	return result, nil
}

// IndicesToString converts a slice of letter indices to a string.
func IndicesToString(indices []int) (string, error) {
	runes := make([]rune, 0, len(indices))
	for _, idx := range indices {
		r, err := Rune(idx)
		if err != nil {
			return "", err
		}
		runes = append(runes, r)
	}
	return string(runes), nil
}

// Mod reduces a letter arithmetic result into [0, Size).
func Mod(n int) int {
	return ((n % Size) + Size) % Size
}
