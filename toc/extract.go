package toc

import (
	"strings"
	"unicode"

	"github.com/lvillar/docflow/content"
)

// Entry is one TOC line. Extract fills Text, Level and AnchorID;
// AssignNumbering and matchEntryPages enrich Numbering and PageNumber in
// place. Entries stay in the document order of their headings — the
// numbering algorithm depends on that ordering.
type Entry struct {
	Text       string
	Level      int
	AnchorID   string
	Numbering  string
	PageNumber int
}

// Extract scans the original content sequence (not the drawn-element record)
// in a single forward pass and returns an entry for every heading whose
// level lies within the configured range.
func Extract(elems []content.Element, cfg *Config) []Entry {
	var entries []Entry
	for _, elem := range elems {
		h, ok := elem.(content.Heading)
		if !ok {
			continue
		}
		if h.Level < cfg.MinLevel || h.Level > cfg.MaxLevel {
			continue
		}
		entries = append(entries, Entry{
			Text:     h.Text,
			Level:    h.Level,
			AnchorID: AnchorID(h.Text),
		})
	}
	return entries
}

// AnchorID slugifies heading text into a stable anchor: lowercased, non-word
// characters stripped, whitespace and hyphen runs collapsed to single
// hyphens, leading and trailing hyphens trimmed. Deterministic and
// idempotent.
func AnchorID(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if pending {
				b.WriteByte('-')
				pending = false
			}
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			if b.Len() > 0 {
				pending = true
			}
		}
	}
	return b.String()
}
