// Package config loads optional assembler defaults from a TOML file,
// adapted from the teacher project's own config.DefaultConfig/LoadFrom
// pattern, trimmed to the handful of settings a batch assembler needs.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the assembler's overridable defaults.
type Config struct {
	Output struct {
		Path          string `toml:"path"`            // default output path, overridden by -o
		Format        string `toml:"format"`           // "t" or "b", overridden by -format
		MemFile       string `toml:"mem_file"`         // legacy byte-per-line dump path, empty disables it
		MaxDiagnostic int    `toml:"max_diagnostics"` // 0 means unlimited
	} `toml:"output"`
}

// DefaultConfig returns the assembler's built-in defaults: text mode,
// output path "a.out", no memory-file sidecar, unlimited diagnostics.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Output.Path = "a.out"
	cfg.Output.Format = "t"
	cfg.Output.MemFile = ""
	cfg.Output.MaxDiagnostic = 0
	return cfg
}

// LoadFrom loads configuration from path, falling back to DefaultConfig
// when the file does not exist. Absence of a config file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
