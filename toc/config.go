// Package toc synthesizes a table of contents for an already-rendered
// document. It runs strictly after the flow layout pass: headings are
// extracted from the original content sequence, reconciled against the
// drawn-element record for physical page numbers, and the TOC pages are then
// spliced into the live page list — the layout engine is never re-invoked.
package toc

import "github.com/lvillar/docflow/content"

// Config is the fully-defaulted TOC configuration derived once from the raw
// user options. Immutable after resolution.
type Config struct {
	Title           string
	MinLevel        int
	MaxLevel        int
	Numbered        bool
	ShowPageNumbers bool
}

// Resolve merges defaults into the raw options. It returns nil when the TOC
// is absent or explicitly disabled; rendering treats nil as a no-op.
func Resolve(raw *content.TOCOptions) *Config {
	if raw == nil {
		return nil
	}
	if raw.Enabled != nil && !*raw.Enabled {
		return nil
	}

	cfg := &Config{
		Title:           "Table of Contents",
		MinLevel:        1,
		MaxLevel:        3,
		Numbered:        false,
		ShowPageNumbers: true,
	}
	if raw.Title != "" {
		cfg.Title = raw.Title
	}
	if raw.MinLevel > 0 {
		cfg.MinLevel = raw.MinLevel
	}
	if raw.MaxLevel > 0 {
		cfg.MaxLevel = raw.MaxLevel
	}
	if raw.Numbered != nil {
		cfg.Numbered = *raw.Numbered
	}
	if raw.ShowPageNumbers != nil {
		cfg.ShowPageNumbers = *raw.ShowPageNumbers
	}
	return cfg
}
