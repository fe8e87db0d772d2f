// Package cli provides the crack command for the goBombe CLI.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coredds/goBombe/pkg/search"
)

var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Recover an Enigma message from ciphertext and cribs",
	Long: `Recover an Enigma-encrypted message.

The ciphertext and the cribs can come from files, flags, or a YAML search
configuration. Whitespace is stripped and letters uppercased before the
search. The recovered plaintext goes to --output or stdout; a table of the
best candidates and the winning machine settings go to stderr.

Examples:
  gobombe crack --ciphertext-file message.txt --cribs-file cribs.txt
  gobombe crack --config search.yaml
  gobombe crack --ciphertext-file message.txt --crib WETTERBERICHT \
      --wheel-order I,II,III --rings AAA`,
	RunE: runCrack,
}

func init() {
	crackCmd.Flags().StringP("config", "c", "", "YAML search configuration file")
	crackCmd.Flags().StringP("ciphertext-file", "f", "", "File containing the ciphertext")
	crackCmd.Flags().StringP("ciphertext", "t", "", "Ciphertext given inline")
	crackCmd.Flags().StringSliceP("crib", "", nil, "Probable plaintext fragment (repeatable)")
	crackCmd.Flags().StringP("cribs-file", "", "", "File with one crib per line")
	crackCmd.Flags().StringP("output", "o", "", "Output file for the recovered plaintext (default: stdout)")

	crackCmd.Flags().StringSliceP("rotors", "r", nil, "Rotor pool (default: I,II,III,IV,V)")
	crackCmd.Flags().StringSliceP("reflector", "", nil, "Reflectors to try (default: B)")
	crackCmd.Flags().StringSliceP("wheel-order", "w", nil, "Restrict to a wheel order, slowest rotor first, e.g. I,II,III (repeatable)")
	crackCmd.Flags().StringSliceP("rings", "", nil, "Restrict to ring settings, e.g. AAA (repeatable)")
	crackCmd.Flags().IntP("workers", "", 0, "Worker count (default: logical CPUs)")
	crackCmd.Flags().BoolP("all-menus", "", false, "Search every cyclic menu instead of stopping at the first with survivors")
	crackCmd.Flags().IntP("top", "", 5, "How many candidates to show")
}

func runCrack(cmd *cobra.Command, args []string) error {
	setupVerbose(cmd)

	cfg := &SearchConfig{}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := loadSearchConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyCrackFlags(cmd, cfg)

	ciphertext, cribs, err := cfg.resolve()
	if err != nil {
		return err
	}
	ciphertext = normalizeMessage(ciphertext)
	for i, crib := range cribs {
		cribs[i] = normalizeMessage(crib)
	}

	if ciphertext == "" {
		return errors.New("no ciphertext provided: use --ciphertext, --ciphertext-file, or a config file")
	}
	if len(cribs) == 0 {
		return errors.New("no cribs provided: use --crib, --cribs-file, or a config file")
	}

	opts := search.Options{
		Rotors:       cfg.Rotors,
		Reflectors:   cfg.Reflectors,
		WheelOrders:  cfg.WheelOrders,
		RingSettings: cfg.RingSettings,
		Workers:      cfg.Workers,
		AllMenus:     cfg.AllMenus,
		Logger:       log,
	}

	result, err := search.Crack(context.Background(), ciphertext, cribs, opts)
	if err != nil {
		return errors.Wrap(err, "search failed")
	}

	if err := writeOutput(result.Best.Plaintext, cmd); err != nil {
		return err
	}

	top, _ := cmd.Flags().GetInt("top")
	printCandidates(result, top)

	settingsJSON, err := json.MarshalIndent(result.Best.Settings, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to render settings")
	}
	fmt.Fprintf(os.Stderr, "\nRecovered settings:\n%s\n", settingsJSON)

	return nil
}

// applyCrackFlags overlays command-line flags onto the configuration.
func applyCrackFlags(cmd *cobra.Command, cfg *SearchConfig) {
	if v, _ := cmd.Flags().GetString("ciphertext"); v != "" {
		cfg.Ciphertext = v
	}
	if v, _ := cmd.Flags().GetString("ciphertext-file"); v != "" {
		cfg.CiphertextFile = v
		if !cmd.Flags().Changed("ciphertext") {
			cfg.Ciphertext = ""
		}
	}
	if v, _ := cmd.Flags().GetStringSlice("crib"); len(v) > 0 {
		cfg.Cribs = v
	}
	if v, _ := cmd.Flags().GetString("cribs-file"); v != "" {
		cfg.CribsFile = v
		if !cmd.Flags().Changed("crib") {
			cfg.Cribs = nil
		}
	}
	if v, _ := cmd.Flags().GetStringSlice("rotors"); len(v) > 0 {
		cfg.Rotors = v
	}
	if v, _ := cmd.Flags().GetStringSlice("reflector"); len(v) > 0 {
		cfg.Reflectors = v
	}
	if v, _ := cmd.Flags().GetStringSlice("wheel-order"); len(v) > 0 {
		// Each repeated flag value is one order, already comma-split by
		// cobra; regroup into threes.
		var orders [][]string
		for i := 0; i+2 < len(v); i += 3 {
			orders = append(orders, []string{v[i], v[i+1], v[i+2]})
		}
		cfg.WheelOrders = orders
	}
	if v, _ := cmd.Flags().GetStringSlice("rings"); len(v) > 0 {
		cfg.RingSettings = v
	}
	if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
		cfg.Workers = v
	}
	if v, _ := cmd.Flags().GetBool("all-menus"); v {
		cfg.AllMenus = true
	}
}

// printCandidates renders the best survivors as a table on stderr.
func printCandidates(result *search.Result, top int) {
	if top > len(result.Candidates) {
		top = len(result.Candidates)
	}

	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"#", "Wheel order", "Rings", "Offsets", "Plugboard", "Score"})
	for i := 0; i < top; i++ {
		c := result.Candidates[i]
		var names, rings, offsets []string
		for _, r := range c.Settings.Rotors {
			names = append(names, r.Name)
			rings = append(rings, r.Ring)
			offsets = append(offsets, r.Offset)
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			strings.Join(names, " "),
			strings.Join(rings, ""),
			strings.Join(offsets, ""),
			strings.Join(c.Settings.Plugboard, " "),
			fmt.Sprintf("%.4f", c.Score),
		})
	}
	table.Render()
}
