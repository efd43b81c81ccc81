package toc

import (
	"fmt"
	"strconv"

	"github.com/lvillar/docflow/canvas"
	"github.com/lvillar/docflow/content"
	"github.com/lvillar/docflow/layout"
)

// TOC rendering constants.
const (
	titleFontSize  = 18.0 // points
	entryFontSize  = 11.0 // points
	titleGap       = 6.0  // document units below the title
	indentUnit     = 5.0  // document units per nesting depth
	leaderSpacing  = 1.0  // document units between leader glyphs
	leaderPad      = 1.5  // document units clear of text and page number
	numberingSep   = "  " // between numbering and entry text
	leaderGlyph    = "."
)

// Insert is the TOC entry point. Layout must have fully completed: every
// page number in the drawn-element record is final before matching starts.
// It extracts headings from the original content, resolves their physical
// pages, splices exactly the required number of blank pages into the canvas
// (after the cover when one exists, otherwise at the front), and renders the
// entries onto them. It returns the number of pages inserted, which callers
// feed into AdjustOffset for header/footer bookkeeping.
//
// A disabled or absent TOC, empty content, or a level range matching no
// headings is a no-op returning 0.
func Insert(ctx *layout.Context, raw *content.TOCOptions, elems []content.Element, hasCover bool) (int, error) {
	cfg := Resolve(raw)
	if cfg == nil || len(elems) == 0 {
		return 0, nil
	}

	entries := Extract(elems, cfg)
	if len(entries) == 0 {
		return 0, nil
	}
	if cfg.Numbered {
		AssignNumbering(entries)
	}
	matchEntryPages(entries, ctx.Drawn(), hasCover)

	c := ctx.Canvas
	m := c.Meter()
	g := ctx.Geom

	entryFont := canvas.Font{Family: ctx.Font.Family, Size: entryFontSize}
	entryLineH := m.LineHeight(entryFont)

	// Content height per page: page height minus vertical margins, the
	// title band, and the title's bottom margin.
	contentH := g.Page.H - g.Margin.Top - g.Margin.Bottom - m.PointsToUnits(titleFontSize) - titleGap
	perPage := int(contentH / entryLineH)
	if perPage < 1 {
		perPage = 1
	}
	pages := (len(entries) + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}

	at := 0
	if hasCover {
		at = 1
	}
	if err := c.InsertPages(at, pages); err != nil {
		return 0, fmt.Errorf("toc: %w", err)
	}

	for p := 0; p < pages; p++ {
		start := p * perPage
		end := start + perPage
		if end > len(entries) {
			end = len(entries)
		}
		renderPage(c.Page(at+p), m, g, cfg, entries[start:end], entryFont, p == 0)
	}

	return pages, nil
}

// renderPage draws one TOC page: the title on the first page only, then a
// fixed-size chunk of entries.
func renderPage(page *canvas.Page, m *canvas.Meter, g layout.Geometry, cfg *Config, entries []Entry, entryFont canvas.Font, first bool) {
	left := g.Margin.Left
	right := g.Page.W - g.Margin.Right
	y := g.Margin.Top

	if first {
		titleFont := canvas.Font{Family: entryFont.Family, Style: "B", Size: titleFontSize}
		page.Text(left, y+m.Ascent(titleFont), titleFont, canvas.Black, cfg.Title)
		y += m.PointsToUnits(titleFontSize) + titleGap
	}

	lineH := m.LineHeight(entryFont)
	for _, e := range entries {
		x := left + float64(e.Level-cfg.MinLevel)*indentUnit

		text := e.Text
		if cfg.Numbered && e.Numbering != "" {
			text = e.Numbering + numberingSep + text
		}

		baseline := y + m.Ascent(entryFont)
		page.Text(x, baseline, entryFont, canvas.Black, text)

		if cfg.ShowPageNumbers {
			pn := strconv.Itoa(e.PageNumber)
			pnX := right - m.TextWidth(entryFont, pn)
			page.Text(pnX, baseline, entryFont, canvas.Black, pn)
			drawLeader(page, m, entryFont, baseline, x+m.TextWidth(entryFont, text), pnX)
		}

		y += lineH
	}
}

// drawLeader fills the gap between the end of the entry text and the page
// number with evenly spaced leader glyphs. When the gap cannot fit even one
// glyph the run is omitted entirely.
func drawLeader(page *canvas.Page, m *canvas.Meter, f canvas.Font, baseline, textEnd, pnStart float64) {
	start := textEnd + leaderPad
	end := pnStart - leaderPad
	dotW := m.TextWidth(f, leaderGlyph)
	step := dotW + leaderSpacing

	n := int((end - start) / step)
	if n < 1 {
		return
	}
	gray := canvas.Color{R: 130, G: 130, B: 130}
	for i := 0; i < n; i++ {
		page.Text(start+float64(i)*step, baseline, f, gray, leaderGlyph)
	}
}
