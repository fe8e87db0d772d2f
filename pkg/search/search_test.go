// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coredds/goBombe/pkg/enigma"
	"github.com/coredds/goBombe/pkg/menu"
)

func TestCrackRejectsInvalidCiphertext(t *testing.T) {
	_, err := Crack(context.Background(), "ABC DEF", []string{"ABC"}, Options{})
	assert.Error(t, err)
}

func TestCrackNoCyclicMenu(t *testing.T) {
	// The WETTER menu is a tree, and the crib fits nowhere else.
	_, err := Crack(context.Background(), "SNMKSS", []string{"WETTER"}, Options{})
	assert.ErrorIs(t, err, ErrNoMenu)
}

func TestWheelOrders(t *testing.T) {
	orders := wheelOrders(enigma.RotorNames())
	assert.Len(t, orders, 60)

	seen := make(map[string]bool)
	for _, o := range orders {
		require.Len(t, o, 3)
		key := o[0] + "/" + o[1] + "/" + o[2]
		assert.False(t, seen[key], "duplicate wheel order %s", key)
		seen[key] = true
		assert.NotEqual(t, o[0], o[1])
		assert.NotEqual(t, o[1], o[2])
		assert.NotEqual(t, o[0], o[2])
	}
}

func TestRingTriples(t *testing.T) {
	all, err := ringTriples(nil)
	require.NoError(t, err)
	assert.Len(t, all, 26*26*26)
	assert.Equal(t, "AAA", all[0].label)
	assert.Equal(t, [3]int{0, 0, 0}, all[0].indices)
	assert.Equal(t, "ZZZ", all[len(all)-1].label)

	some, err := ringTriples([]string{"ABC"})
	require.NoError(t, err)
	require.Len(t, some, 1)
	// Labels are left to right; the Bombe wants the fastest rotor first.
	assert.Equal(t, [3]int{2, 1, 0}, some[0].indices)

	_, err = ringTriples([]string{"AB"})
	assert.Error(t, err)
	_, err = ringTriples([]string{"A1C"})
	assert.Error(t, err)
}

// TestCrackRecoversMessage is the full pipeline: encrypt a message with a
// known machine, hand the driver the ciphertext and a crib from the
// message start, restrict the search to the true wheel order, reflector,
// and ring setting, and expect the original message and key back.
func TestCrackRecoversMessage(t *testing.T) {
	if testing.Short() {
		t.Skip("full position sweep")
	}

	order := []string{"I", "II", "III"}
	const offsets = "JFM"

	// Candidate messages are tried until one yields a cyclic menu at the
	// true crib placement; which one wins is deterministic.
	messages := []string{
		"ATTACKATDAWNONTHEEASTERNRIDGEANDHOLDUNTILRELIEVED",
		"WETTERBERICHTFORTOMORROWCLOUDYWITHSCATTEREDRAIN",
		"THECONVOYWILLDEPARTATMIDNIGHTHEADINGNORTHWEST",
		"REINFORCEMENTSARRIVINGBYTRAINTOMORROWMORNING",
	}

	for _, message := range messages {
		machine, err := enigma.NewMachine(order, "B", "AAA", offsets, nil)
		require.NoError(t, err)
		ciphertext, err := machine.Encrypt(message)
		require.NoError(t, err)

		crib := message[:24]

		// Only usable when the true placement itself carries a cycle;
		// otherwise no search can tie the key down.
		m, err := menu.New(crib, ciphertext, 0)
		require.NoError(t, err)
		if len(m.Paths()) == 0 {
			continue
		}

		result, err := Crack(context.Background(), ciphertext, []string{crib}, Options{
			WheelOrders:  [][]string{order},
			Reflectors:   []string{"B"},
			RingSettings: []string{"AAA"},
			AllMenus:     true,
		})
		require.NoError(t, err)

		assert.Equal(t, message, result.Best.Plaintext)

		require.Len(t, result.Best.Settings.Rotors, 3)
		for i, name := range order {
			assert.Equal(t, name, result.Best.Settings.Rotors[i].Name)
			assert.Equal(t, string(offsets[i]), result.Best.Settings.Rotors[i].Offset)
		}
		assert.Empty(t, result.Best.Settings.Plugboard)
		assert.NotEmpty(t, result.Candidates)
		return
	}

	t.Fatal("no candidate message produced a cyclic menu at the true placement")
}
