// Package cli provides the encrypt command for the goBombe CLI.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coredds/goBombe/pkg/enigma"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt or decrypt text with a catalogue Enigma machine",
	Long: `Drive an Enigma machine directly with key-sheet settings.

The machine is reciprocal, so the same command decrypts: feed it the
ciphertext under the settings that produced it. Wheel order, ring
settings, and offsets are given slowest rotor first, as on a key sheet.

Examples:
  gobombe encrypt --text "WETTERBERICHT" --wheel-order I,II,III --rings AAA --offsets AAA
  gobombe encrypt --file message.txt --wheel-order II,IV,V --rings BUL --offsets XWB --plugboard AB,CD`,
	RunE: runEncrypt,
}

func init() {
	encryptCmd.Flags().StringP("text", "t", "", "Text to encrypt")
	encryptCmd.Flags().StringP("file", "f", "", "File to encrypt")
	encryptCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	encryptCmd.Flags().StringSliceP("wheel-order", "w", []string{"I", "II", "III"}, "Wheel order, slowest rotor first")
	encryptCmd.Flags().StringP("reflector", "", "B", "Reflector name")
	encryptCmd.Flags().StringP("rings", "", "AAA", "Ring settings, one letter per rotor")
	encryptCmd.Flags().StringP("offsets", "", "AAA", "Rotor offsets, one letter per rotor")
	encryptCmd.Flags().StringSliceP("plugboard", "p", nil, "Plugboard pairs, e.g. AB,CD")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	setupVerbose(cmd)

	text, err := getInputText(cmd)
	if err != nil {
		return err
	}
	text = normalizeMessage(text)
	if text == "" {
		return errors.New("no input text provided: use --text, --file, or pipe to stdin")
	}

	wheelOrder, _ := cmd.Flags().GetStringSlice("wheel-order")
	reflectorName, _ := cmd.Flags().GetString("reflector")
	rings, _ := cmd.Flags().GetString("rings")
	offsets, _ := cmd.Flags().GetString("offsets")
	plugboard, _ := cmd.Flags().GetStringSlice("plugboard")

	machine, err := enigma.NewMachine(wheelOrder, reflectorName, rings, offsets, plugboard)
	if err != nil {
		return errors.Wrap(err, "failed to configure machine")
	}

	result, err := machine.Encrypt(text)
	if err != nil {
		return errors.Wrap(err, "encryption failed")
	}

	return writeOutput(result, cmd)
}
