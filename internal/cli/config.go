// Package cli provides the YAML search configuration for the crack command.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SearchConfig describes a crack run as a YAML document. Inline values and
// file references may be mixed; command-line flags override both.
type SearchConfig struct {
	Ciphertext     string     `yaml:"ciphertext"`
	CiphertextFile string     `yaml:"ciphertext_file"`
	Cribs          []string   `yaml:"cribs"`
	CribsFile      string     `yaml:"cribs_file"`
	Rotors         []string   `yaml:"rotors"`
	Reflectors     []string   `yaml:"reflectors"`
	WheelOrders    [][]string `yaml:"wheel_orders"`
	RingSettings   []string   `yaml:"ring_settings"`
	Workers        int        `yaml:"workers"`
	AllMenus       bool       `yaml:"all_menus"`
}

// loadSearchConfig reads and parses a YAML search configuration.
func loadSearchConfig(path string) (*SearchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	cfg, err := parseSearchConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, nil
}

// parseSearchConfig parses a YAML search configuration document.
func parseSearchConfig(data []byte) (*SearchConfig, error) {
	var cfg SearchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolve loads any file references in the configuration and returns the
// final ciphertext and crib list.
func (c *SearchConfig) resolve() (string, []string, error) {
	ciphertext := c.Ciphertext
	if ciphertext == "" && c.CiphertextFile != "" {
		data, err := os.ReadFile(c.CiphertextFile)
		if err != nil {
			return "", nil, errors.Wrapf(err, "failed to read ciphertext %s", c.CiphertextFile)
		}
		ciphertext = string(data)
	}

	cribs := c.Cribs
	if len(cribs) == 0 && c.CribsFile != "" {
		lines, err := readLines(c.CribsFile)
		if err != nil {
			return "", nil, err
		}
		cribs = lines
	}

	return ciphertext, cribs, nil
}
