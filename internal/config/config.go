// Package config loads the settings of the benchmark harness.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml"
)

var (
	// ErrInvalid is returned when a configuration holds values which cannot
	// be used to run benchmarks.
	ErrInvalid = errors.New("invalid configuration")
)

// Workloads lists the workloads known to the harness, in display order.
var Workloads = []string{
	"iter",
	"opt",
	"opt-unwrap",
	"with",
	"with-opt",
	"with-opt-unwrap",
}

// Modes lists the ways a workload can drain the adapter.
var Modes = []string{
	"next",
	"fold",
	"seq",
}

type Config struct {
	// Elements is the length of the sequence being interspersed.
	Elements int `toml:"elements"`
	// Trials is the number of times each workload is run in each mode.
	Trials    int      `toml:"trials"`
	Workloads []string `toml:"workloads"`
	Modes     []string `toml:"modes"`
	// Database is the path of the SQLite file recording runs. Results are
	// not recorded when empty.
	Database string `toml:"database"`
	JSON     bool   `toml:"json"`
	Verbose  bool   `toml:"verbose"`
	Quiet    bool   `toml:"quiet"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Elements:  10000,
		Trials:    100,
		Workloads: slices.Clone(Workloads),
		Modes:     slices.Clone(Modes),
	}
}

// Load reads the TOML file at path on top of the default configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Elements < 1 {
		return fmt.Errorf("%w: elements can't be < 1", ErrInvalid)
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials can't be < 1", ErrInvalid)
	}
	if len(c.Workloads) == 0 {
		return fmt.Errorf("%w: no workloads", ErrInvalid)
	}
	for _, w := range c.Workloads {
		if !slices.Contains(Workloads, w) {
			return fmt.Errorf("%w: unknown workload %q", ErrInvalid, w)
		}
	}
	if len(c.Modes) == 0 {
		return fmt.Errorf("%w: no modes", ErrInvalid)
	}
	for _, m := range c.Modes {
		if !slices.Contains(Modes, m) {
			return fmt.Errorf("%w: unknown mode %q", ErrInvalid, m)
		}
	}
	if c.Verbose && c.Quiet {
		return fmt.Errorf("%w: verbose and quiet are mutually exclusive", ErrInvalid)
	}
	return nil
}
