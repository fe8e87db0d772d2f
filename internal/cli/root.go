// Package cli provides the command-line interface for goBombe.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	gobombe "github.com/coredds/goBombe"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "gobombe",
	Short: "A ciphertext-only recovery tool for three-rotor Enigma messages",
	Long: `goBombe recovers Enigma-encrypted messages from a ciphertext and one or
more probable plaintext fragments (cribs). It aligns the cribs, builds
Bombe menus from the letter correspondences, rejects almost all rotor and
plugboard hypotheses around the menu cycles, and returns the most
English-like decryption among the survivors.

Examples:
  gobombe crack --ciphertext-file message.txt --cribs-file cribs.txt
  gobombe crack --config search.yaml --output recovered.txt
  gobombe encrypt --text "WETTERBERICHT" --wheel-order I,II,III --rings AAA --offsets AAA`,
	Version: gobombe.GetVersion(),
}

// Execute runs the root command and handles errors.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(crackCmd)
	rootCmd.AddCommand(encryptCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// setupVerbose configures log verbosity from the persistent flag.
func setupVerbose(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}
