package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlalgo/compare"
	"github.com/katalvlaran/lvlalgo/sorting"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk YAML configuration. Command-line flags override it.
type Config struct {
	Text TextConfig `yaml:"text"`
	Sort SortConfig `yaml:"sort"`
}

// TextConfig selects how strings are split before comparison.
type TextConfig struct {
	Unit          string `yaml:"unit"`          // runes | graphemes
	Normalization string `yaml:"normalization"` // none | nfc | nfd | nfkc | nfkd
}

// SortConfig selects the default sort algorithm.
type SortConfig struct {
	Algorithm string `yaml:"algorithm"` // bubble | insertion | merge | quick
}

// DefaultConfig compares by code point without normalization and sorts with quicksort.
func DefaultConfig() Config {
	return Config{
		Text: TextConfig{
			Unit:          compare.Runes.String(),
			Normalization: compare.NoNormalization.String(),
		},
		Sort: SortConfig{
			Algorithm: sorting.QuickSort.String(),
		},
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	return cfg, nil
}

// textOptions converts the text section into compare options.
func (c Config) textOptions() ([]compare.TextOption, error) {
	unit, err := compare.ParseUnit(c.Text.Unit)
	if err != nil {
		return nil, err
	}
	form, err := compare.ParseNormalization(c.Text.Normalization)
	if err != nil {
		return nil, err
	}

	return []compare.TextOption{compare.WithUnit(unit), compare.WithNormalization(form)}, nil
}

// algorithm resolves the configured sort algorithm.
func (c Config) algorithm() (sorting.Algorithm, error) {
	return sorting.ParseAlgorithm(c.Sort.Algorithm)
}
