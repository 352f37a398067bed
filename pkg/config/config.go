package config

import (
	"bytes"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/iconlib/pkg/errors"
)

// Layout strategy names accepted in layout.collections and hint files.
const (
	StrategyCategoryFirst = "category-first"
	StrategyStyleFirst    = "style-first"
	StrategyFlat          = "flat"
)

// Strategies lists every known layout strategy name.
var Strategies = []string{StrategyCategoryFirst, StrategyStyleFirst, StrategyFlat}

// Config is the effective iconlib configuration.
type Config struct {
	Input     InputConfig     `koanf:"input" toml:"input"`
	Output    OutputConfig    `koanf:"output" toml:"output"`
	Loader    LoaderConfig    `koanf:"loader" toml:"loader"`
	Normalize NormalizeConfig `koanf:"normalize" toml:"normalize"`
	Layout    LayoutConfig    `koanf:"layout" toml:"layout"`
}

type InputConfig struct {
	Dir string `koanf:"dir" toml:"dir"`
}

type OutputConfig struct {
	Dir      string `koanf:"dir" toml:"dir"`
	Manifest string `koanf:"manifest" toml:"manifest"`
	Pretty   bool   `koanf:"pretty" toml:"pretty"`
}

type LoaderConfig struct {
	Concurrency int `koanf:"concurrency" toml:"concurrency"`
}

// NormalizeConfig controls the root theme attribute rewrite.
type NormalizeConfig struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	Token   string `koanf:"token" toml:"token"`
}

// LayoutConfig drives path classification.
type LayoutConfig struct {
	// HintFile is the per-collection file that may override the strategy.
	HintFile string `koanf:"hint_file" toml:"hint_file"`
	// Styles is the base style vocabulary; "sharp-" variants are implied.
	Styles []string `koanf:"styles" toml:"styles"`
	// Collections maps a collection id to a strategy name.
	Collections map[string]string `koanf:"collections" toml:"collections"`
}

// IsStrategy reports whether name is a known layout strategy.
func IsStrategy(name string) bool {
	for _, s := range Strategies {
		if s == name {
			return true
		}
	}
	return false
}

// Validate checks the invariants the pipeline relies on.
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return errors.New(errors.ErrConfigValid, "input.dir must not be empty")
	}
	if c.Output.Dir == "" {
		return errors.New(errors.ErrConfigValid, "output.dir must not be empty")
	}
	if c.Output.Manifest == "" {
		return errors.New(errors.ErrConfigValid, "output.manifest must not be empty")
	}
	if c.Loader.Concurrency < 1 {
		return errors.Newf(errors.ErrConfigValid, "loader.concurrency must be at least 1, got %d", c.Loader.Concurrency).
			WithDetail("concurrency", c.Loader.Concurrency)
	}
	if c.Normalize.Enabled && c.Normalize.Token == "" {
		return errors.New(errors.ErrConfigValid, "normalize.token must be set when normalize.enabled is true")
	}

	names := make([]string, 0, len(c.Layout.Collections))
	for name := range c.Layout.Collections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strategy := c.Layout.Collections[name]; !IsStrategy(strategy) {
			return errors.Newf(errors.ErrConfigValid, "unknown layout strategy %q for collection %s", strategy, name).
				WithDetail("collection", name).
				WithDetail("strategy", strategy)
		}
	}
	return nil
}

// ToTOML encodes the configuration in the project file format.
func (c *Config) ToTOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
