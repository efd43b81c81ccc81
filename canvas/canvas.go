// Package canvas is the rendering surface for generated documents.
//
// Pages are held as ordered lists of draw operations and only serialized to
// PDF when Output is called. Keeping pages replayable is what allows the TOC
// subsystem to splice blank pages into the middle of an already-rendered
// document: InsertPages is a slice splice here, where the underlying PDF
// library can only ever append.
package canvas

import (
	"fmt"

	"github.com/google/uuid"
)

// Size is a page size in document units.
type Size struct {
	W float64
	H float64
}

// Font specifies a font face. Size is in points regardless of document unit.
type Font struct {
	Family string
	Style  string // "" (regular), "B", "I", "BI"
	Size   float64
}

// Color is an RGB color.
type Color struct {
	R, G, B int
}

var Black = Color{0, 0, 0}

// Canvas accumulates pages for one document. It has a single writer and is
// not safe for concurrent use; each document render owns its own Canvas.
type Canvas struct {
	unit   string
	size   Size
	pages  []*Page
	meter  *Meter
	images map[string][]byte

	watermark *Watermark
}

// Page is a sequence of draw operations on one page.
type Page struct {
	size Size
	ops  []op
}

// New creates an empty canvas. unit is a gofpdf unit string (mm, cm, in, pt);
// size is the default page size in that unit.
func New(unit string, size Size) *Canvas {
	return &Canvas{
		unit:   unit,
		size:   size,
		meter:  newMeter(unit),
		images: make(map[string][]byte),
	}
}

// Unit returns the document unit string.
func (c *Canvas) Unit() string { return c.unit }

// PageSize returns the default page size.
func (c *Canvas) PageSize() Size { return c.size }

// Meter returns the text measurement handle for this canvas.
func (c *Canvas) Meter() *Meter { return c.meter }

// AddPage appends a blank page and returns it.
func (c *Canvas) AddPage() *Page {
	p := &Page{size: c.size}
	c.pages = append(c.pages, p)
	return p
}

// PageCount returns the number of pages.
func (c *Canvas) PageCount() int { return len(c.pages) }

// Page returns the i-th page (0-based).
func (c *Canvas) Page(i int) *Page { return c.pages[i] }

// InsertPages splices n blank pages into the page list at index at (0-based).
// Existing pages at and after the index shift forward; later lookups by index
// observe the shifted positions.
func (c *Canvas) InsertPages(at, n int) error {
	if at < 0 || at > len(c.pages) {
		return fmt.Errorf("canvas: insert index %d out of range [0,%d]", at, len(c.pages))
	}
	if n <= 0 {
		return nil
	}
	blank := make([]*Page, n)
	for i := range blank {
		blank[i] = &Page{size: c.size}
	}
	c.pages = append(c.pages[:at], append(blank, c.pages[at:]...)...)
	return nil
}

// RegisterImage stores PNG bytes for later placement and returns the opaque
// name image operations refer to.
func (c *Canvas) RegisterImage(png []byte) string {
	name := uuid.NewString()
	c.images[name] = png
	return name
}

// SetWatermark overlays wm on every page at output time. Passing nil clears it.
func (c *Canvas) SetWatermark(wm *Watermark) {
	if wm != nil {
		w := *wm
		w.applyDefaults()
		c.watermark = &w
		return
	}
	c.watermark = nil
}

// Text draws s with its baseline at (x, y).
func (p *Page) Text(x, y float64, f Font, col Color, s string) {
	p.ops = append(p.ops, textOp{x: x, y: y, font: f, color: col, text: s})
}

// Line draws a stroked segment.
func (p *Page) Line(x1, y1, x2, y2, width float64, col Color) {
	p.ops = append(p.ops, lineOp{x1: x1, y1: y1, x2: x2, y2: y2, width: width, color: col})
}

// Rect draws a rectangle. fill and stroke may each be nil to skip that pass.
func (p *Page) Rect(x, y, w, h float64, fill, stroke *Color, lineWidth float64) {
	p.ops = append(p.ops, rectOp{x: x, y: y, w: w, h: h, fill: fill, stroke: stroke, lineWidth: lineWidth})
}

// Image places a registered image scaled to w x h at (x, y).
func (p *Page) Image(name string, x, y, w, h float64) {
	p.ops = append(p.ops, imageOp{name: name, x: x, y: y, w: w, h: h})
}

// Size returns the page size.
func (p *Page) Size() Size { return p.size }

// OpCount reports how many operations have been drawn on the page.
func (p *Page) OpCount() int { return len(p.ops) }
