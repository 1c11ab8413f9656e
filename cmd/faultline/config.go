package main

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"faultline/internal/host"
	"faultline/internal/loader"
	"faultline/internal/suggest"
)

// diagnosisConfig is the TOML description of a diagnosis environment: the
// known symbol table plus the loader search roots to scan.
type diagnosisConfig struct {
	Level         int64       `toml:"level"`
	DisplayErrors *bool       `toml:"display_errors"`
	Extensions    []string    `toml:"extensions"`
	Functions     []string    `toml:"functions"`
	Types         []string    `toml:"types"`
	Roots         []rootEntry `toml:"roots"`
}

type rootEntry struct {
	Prefix string   `toml:"prefix"`
	Dirs   []string `toml:"dirs"`
}

// loadDiagnosisConfig reads path, or returns the empty defaults when no
// config was given. Level -1 means "no explicit threshold".
func loadDiagnosisConfig(path string) (*diagnosisConfig, error) {
	cfg := &diagnosisConfig{Level: -1}
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	return cfg, nil
}

// threshold converts the configured level into the dispatcher's optional
// bitmask form.
func (c *diagnosisConfig) threshold() (*uint32, error) {
	if c.Level < 0 {
		return nil, nil
	}
	level, err := safecast.Conv[uint32](c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid level %d: %w", c.Level, err)
	}
	return &level, nil
}

// buildSuggester assembles the symbol table, loader registry and suggester
// described by the config.
func buildSuggester(cfg *diagnosisConfig) (*suggest.Suggester, *loader.Registry) {
	table := host.NewStaticTable()
	for _, fn := range cfg.Functions {
		table.DefineFunction(fn)
	}
	for _, ty := range cfg.Types {
		table.DefineType(ty)
	}

	loaders := loader.NewRegistry()
	for _, root := range cfg.Roots {
		loaders.Add(host.NewPrefixLoader(map[string][]string{root.Prefix: root.Dirs}))
	}

	return suggest.New(table, loaders, loader.NewIndex(cfg.Extensions...)), loaders
}
