package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Width != 32 || cfg.Base != "dec" || cfg.Separator != "" {
		t.Errorf("Default() = %+v, want width 32, base dec, no separator", cfg)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want %+v", cfg, Default())
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load on a missing file returned error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load on a missing file = %+v, want %+v", cfg, Default())
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigword.toml")
	contents := "width = 16\nbase = \"hex\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Width != 16 || cfg.Base != "hex" {
		t.Errorf("Load overlay = %+v, want width 16, base hex", cfg)
	}
	if cfg.Separator != "" {
		t.Errorf("Load overlay changed an unspecified field: Separator = %q", cfg.Separator)
	}
}
