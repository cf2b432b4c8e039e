package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lookbusy1344/a32asm/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg.Output.Path != "a.out" || cfg.Output.Format != "t" || cfg.Output.MemFile != "" {
		t.Errorf("unexpected defaults: %+v", cfg.Output)
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Path != "a.out" {
		t.Errorf("expected default path, got %q", cfg.Output.Path)
	}
}

func TestLoadFromOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.toml")
	content := `
[output]
path = "custom.out"
format = "b"
mem_file = "custom.memory"
max_diagnostics = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Path != "custom.out" {
		t.Errorf("Path = %q, want custom.out", cfg.Output.Path)
	}
	if cfg.Output.Format != "b" {
		t.Errorf("Format = %q, want b", cfg.Output.Format)
	}
	if cfg.Output.MemFile != "custom.memory" {
		t.Errorf("MemFile = %q, want custom.memory", cfg.Output.MemFile)
	}
	if cfg.Output.MaxDiagnostic != 5 {
		t.Errorf("MaxDiagnostic = %d, want 5", cfg.Output.MaxDiagnostic)
	}
}

func TestLoadFromEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadFrom("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Path != "a.out" {
		t.Errorf("expected default path, got %q", cfg.Output.Path)
	}
}
