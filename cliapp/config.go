package cliapp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds one run's resolved settings: the positional minsup plus
// every flag (spec.md §6). Non-goals keep the surface small — no output
// file redirection, no multi-file corpus globbing.
type Config struct {
	MinSup   int
	Directed bool
	DFSCode  bool
	Verbose  bool
}

// fileOverlay is the optional YAML config file shape (spec.md's
// ambient-stack addition: `-config file.yaml` supplies defaults for any
// flag the command line itself did not set explicitly).
type fileOverlay struct {
	Directed *bool `yaml:"directed"`
	DFSCode  *bool `yaml:"dfsc"`
	Verbose  *bool `yaml:"verbose"`
}

// applyOverlay reads path as YAML and fills in cfg fields the caller
// marks as not explicitly set, via explicit[flagName] = true.
func applyOverlay(cfg *Config, path string, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cliapp: reading config %s: %w", path, err)
	}

	var fc fileOverlay
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("cliapp: parsing config %s: %w", path, err)
	}

	if fc.Directed != nil && !explicit["dir"] {
		cfg.Directed = *fc.Directed
	}
	if fc.DFSCode != nil && !explicit["dfsc"] {
		cfg.DFSCode = *fc.DFSCode
	}
	if fc.Verbose != nil && !explicit["v"] {
		cfg.Verbose = *fc.Verbose
	}

	return nil
}
