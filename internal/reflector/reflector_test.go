// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package reflector

import (
	"testing"

	"github.com/coredds/goBombe/internal/alphabet"
)

const wiringB = "YRUHQSLDPXNGOKMIEBFZCWVJAT"

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		mapping   string
		wantError bool
	}{
		{"reflector B", wiringB, false},
		{"too short", "YRUH", true},
		{"self mapping", "ARUHQSLDPXNGOKMIEBFZCWVJYT", true},
		{"duplicate", "YYUHQSLDPXNGOKMIEBFZCWVJAT", true},
		{"invalid character", "yRUHQSLDPXNGOKMIEBFZCWVJAT", true},
		// A->B->C->D->A four-cycle, everything else reciprocal pairs.
		{"non-reciprocal permutation", "BCDAFEHGJILKNMPORQTSVUXWZY", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.name, tt.mapping)
			if tt.wantError && err == nil {
				t.Errorf("New() expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("New() unexpected error: %v", err)
			}
		})
	}
}

func TestReflectInvolution(t *testing.T) {
	r, err := New("B", wiringB)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	for s := 0; s < alphabet.Size; s++ {
		out := r.Reflect(s)
		if out == s {
			t.Errorf("Reflect(%d) = %d: a reflector must not map a letter to itself", s, out)
		}
		if back := r.Reflect(out); back != s {
			t.Errorf("Reflect(Reflect(%d)) = %d, want %d", s, back, s)
		}
	}
}

func TestClone(t *testing.T) {
	r, err := New("B", wiringB)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	c := r.Clone()
	if c.Name() != r.Name() {
		t.Errorf("Clone() name = %q, want %q", c.Name(), r.Name())
	}
	for s := 0; s < alphabet.Size; s++ {
		if c.Reflect(s) != r.Reflect(s) {
			t.Errorf("clone mapping differs at signal %d", s)
		}
	}
}
