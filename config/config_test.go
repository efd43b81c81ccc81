package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Render.PageSize != "A4" {
		t.Fatalf("expected default page size A4, got %q", cfg.Render.PageSize)
	}
	if cfg.Render.Unit != "mm" {
		t.Fatalf("expected default unit mm, got %q", cfg.Render.Unit)
	}
	if cfg.Render.FontSize != 11 {
		t.Fatalf("expected default font size 11, got %g", cfg.Render.FontSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad unit", func(c *Config) { c.Render.Unit = "furlong" }, true},
		{"bad page size", func(c *Config) { c.Render.PageSize = "A7" }, true},
		{"zero font size", func(c *Config) { c.Render.FontSize = 0 }, true},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewManagerMissingFile(t *testing.T) {
	cm, err := NewManager(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should fall back to defaults: %v", err)
	}

	cfg := cm.Get()
	if cfg.Render.PageSize != "A4" {
		t.Fatalf("expected default page size, got %q", cfg.Render.PageSize)
	}
}

func TestNewManagerLoadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("render:\n  page_size: Letter\n  unit: in\n  font_family: Times\n  font_size: 12\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cm, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	cfg := cm.Get()
	if cfg.Render.PageSize != "Letter" {
		t.Fatalf("expected Letter, got %q", cfg.Render.PageSize)
	}
	if cfg.Render.Unit != "in" {
		t.Fatalf("expected in, got %q", cfg.Render.Unit)
	}
	if cfg.Render.FontFamily != "Times" {
		t.Fatalf("expected Times, got %q", cfg.Render.FontFamily)
	}
	// Unset sections keep their defaults.
	if cfg.Watch.MaxRetries != 3 {
		t.Fatalf("expected default max retries 3, got %d", cfg.Watch.MaxRetries)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	cm, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager on written default: %v", err)
	}
	if err := cm.Get().Validate(); err != nil {
		t.Fatalf("written default should round-trip valid: %v", err)
	}
}
