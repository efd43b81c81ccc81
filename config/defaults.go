package config

import (
	"fmt"
	"time"
)

// Config is the full docflow CLI configuration.
type Config struct {
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Watch  WatchConfig  `mapstructure:"watch" yaml:"watch"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// RenderConfig holds fallback document settings. A value set in a document
// description always wins over these.
type RenderConfig struct {
	PageSize   string  `mapstructure:"page_size" yaml:"page_size"`
	Unit       string  `mapstructure:"unit" yaml:"unit"`
	FontFamily string  `mapstructure:"font_family" yaml:"font_family"`
	FontSize   float64 `mapstructure:"font_size" yaml:"font_size"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	Debounce   time.Duration `mapstructure:"debounce" yaml:"debounce"`
	MaxRetries uint          `mapstructure:"max_retries" yaml:"max_retries"`
}

// OutputConfig controls how rendered PDFs are written.
type OutputConfig struct {
	Verify bool `mapstructure:"verify" yaml:"verify"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			PageSize:   "A4",
			Unit:       "mm",
			FontFamily: "Helvetica",
			FontSize:   11,
		},
		Watch: WatchConfig{
			Debounce:   250 * time.Millisecond,
			MaxRetries: 3,
		},
		Output: OutputConfig{
			Verify: false,
		},
	}
}

// Validate checks the configuration for values the renderer would reject.
func (c *Config) Validate() error {
	switch c.Render.Unit {
	case "mm", "cm", "in", "pt":
	default:
		return fmt.Errorf("invalid unit %q", c.Render.Unit)
	}
	switch c.Render.PageSize {
	case "A3", "A4", "A5", "Letter", "Legal":
	default:
		return fmt.Errorf("invalid page size %q", c.Render.PageSize)
	}
	if c.Render.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %g", c.Render.FontSize)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("debounce must be non-negative, got %s", c.Watch.Debounce)
	}
	return nil
}
