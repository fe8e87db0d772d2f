// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package menu

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCribPositions(t *testing.T) {
	tests := []struct {
		name       string
		crib       string
		ciphertext string
		want       []int
	}{
		// The first letter coincides, so the only placement is invalid.
		{"coinciding letter rejected", "HELLO", "HXXLO", nil},
		{"single placement", "AB", "BA", []int{0}},
		{"several placements", "AB", "BABA", []int{0, 2}},
		{"placement at the very end", "AB", "XXBA", []int{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindCribPositions(tt.crib, tt.ciphertext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindCribPositionsErrors(t *testing.T) {
	_, err := FindCribPositions("TOOLONGFORTHIS", "SHORT")
	assert.Error(t, err)

	_, err = FindCribPositions("", "SHORT")
	assert.Error(t, err)

	_, err = FindCribPositions("ab", "ABCD")
	assert.Error(t, err)
}

// TestMenuEdges checks the WETTER example: crib WETTER against ciphertext
// fragment SNMKSS yields the undirected edges W-S@0, E-N@1, T-M@2, T-K@3,
// E-S@4, R-S@5.
func TestMenuEdges(t *testing.T) {
	m, err := New("WETTER", "SNMKSS", 0)
	require.NoError(t, err)

	assert.Equal(t, int('W'-'A'), m.Input)
	assert.Equal(t, 0, m.Offset)

	wantEdges := map[string][]int{
		"WS": {0}, "EN": {1}, "TM": {2}, "TK": {3}, "ES": {4}, "RS": {5},
	}
	for pair, offsets := range wantEdges {
		a := int(pair[0] - 'A')
		b := int(pair[1] - 'A')
		if diff := cmp.Diff(offsets, m.Edges(a, b)); diff != "" {
			t.Errorf("Edges(%c, %c) mismatch (-want +got):\n%s", pair[0], pair[1], diff)
		}
	}

	// The graph is symmetric with identical offset lists.
	for a := 0; a < 26; a++ {
		for b := 0; b < 26; b++ {
			if diff := cmp.Diff(m.Edges(a, b), m.Edges(b, a)); diff != "" {
				t.Errorf("asymmetric edge %c-%c (-ab +ba):\n%s", 'A'+a, 'A'+b, diff)
			}
		}
	}
}

func TestMenuRejectsCoincidingPlacement(t *testing.T) {
	_, err := New("HELLO", "HXXLO", 0)
	assert.Error(t, err)
}

func TestPathsTriangle(t *testing.T) {
	// A-B@0, B-C@1, C-A@2: a single triangle through the input letter.
	m, err := New("ABC", "BCA", 0)
	require.NoError(t, err)

	paths := m.Paths()
	assert.Equal(t, []string{"ABCA"}, paths)
}

func TestPathsTreeHasNone(t *testing.T) {
	// The WETTER menu is a tree: no walk can revisit a letter without
	// stepping straight back, so there are no paths.
	m, err := New("WETTER", "SNMKSS", 0)
	require.NoError(t, err)

	assert.Empty(t, m.Paths())
}

func TestPathsNoDegenerateTwoStep(t *testing.T) {
	// A single doubled edge is not a cycle: walking it back and forth
	// reuses the same offset and constrains nothing.
	m, err := New("AB", "BA", 0)
	require.NoError(t, err)

	assert.Empty(t, m.Paths())
}

func TestPathsUniqueByLetterSet(t *testing.T) {
	// Two triangles sharing the input letter: A-B, B-C, C-A and A-D,
	// D-E, E-A.
	m, err := New("ABCADE", "BCADEA", 0)
	require.NoError(t, err)

	paths := m.Paths()
	require.NotEmpty(t, paths)

	seen := make(map[string]bool)
	for _, p := range paths {
		letters := map[rune]bool{}
		for _, r := range p {
			letters[r] = true
		}
		var key []rune
		for r := 'A'; r <= 'Z'; r++ {
			if letters[r] {
				key = append(key, r)
			}
		}
		assert.False(t, seen[string(key)], "duplicate letter set for path %q in %v", p, paths)
		seen[string(key)] = true
	}

	// Both triangles must be represented.
	assert.True(t, seen["ABC"], "missing triangle ABC in %v", paths)
	assert.True(t, seen["ADE"], "missing triangle ADE in %v", paths)

	// Every path starts at the menu input.
	for _, p := range paths {
		assert.True(t, strings.HasPrefix(p, "A"), "path %q does not start at the input", p)
	}
}
