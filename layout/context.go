// Package layout implements the flow layout engine: it walks a content
// sequence, measures and places each element on a page, breaks to a new page
// on overflow, and records where every element landed. The drawn-element
// record it produces is the intermediate artifact the toc package reconciles
// entries against once layout has fully completed.
package layout

import "github.com/lvillar/docflow/canvas"

// Drawn-element kinds.
const (
	KindTitle      = "title" // cover page title
	KindHeading    = "heading"
	KindParagraph  = "paragraph"
	KindTable      = "table"
	KindField      = "field"
	KindAdmonition = "admonition"
	KindRule       = "rule"
	KindSpacer     = "spacer"
	KindBarcode    = "barcode"
)

// DrawnElement is an immutable fact about one placed element. Page is
// 1-indexed and absolute: a cover page counts as page 1. Entries appear in
// document order, which is not necessarily page order once the TOC is
// spliced in; Page values are never rewritten, only reinterpreted through
// the offset adjuster downstream.
type DrawnElement struct {
	Kind string
	Text string
	Page int
	X, Y float64
}

// Margin defines the content inset from each page edge, in document units.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Geometry is the resolved page geometry a layout pass runs against.
type Geometry struct {
	Page   canvas.Size
	Margin Margin
}

// Context is the mutable, single-owner state threaded through one layout
// pass: the live page list, the cursor, and the accumulating drawn-element
// record. It is created per document render, has exactly one writer, and is
// never shared across goroutines. The cursor only moves forward within a
// page or resets to the top on a page break; it never rewinds.
type Context struct {
	Canvas *canvas.Canvas
	Geom   Geometry
	Font   canvas.Font // document default font

	page        *canvas.Page
	pageIndex   int
	y           float64
	firstOnPage bool

	record []DrawnElement
}

// NewContext creates a layout context with no pages yet; the first placement
// opens page 1.
func NewContext(c *canvas.Canvas, g Geometry, font canvas.Font) *Context {
	return &Context{Canvas: c, Geom: g, Font: font, pageIndex: -1}
}

// ContentWidth returns the horizontal space between the side margins.
func (ctx *Context) ContentWidth() float64 {
	return ctx.Geom.Page.W - ctx.Geom.Margin.Left - ctx.Geom.Margin.Right
}

func (ctx *Context) bottomLimit() float64 {
	return ctx.Geom.Page.H - ctx.Geom.Margin.Bottom
}

// NewPage appends a fresh page and resets the cursor to the top margin.
func (ctx *Context) NewPage() {
	ctx.page = ctx.Canvas.AddPage()
	ctx.pageIndex = ctx.Canvas.PageCount() - 1
	ctx.y = ctx.Geom.Margin.Top
	ctx.firstOnPage = true
}

// EnsureSpace breaks to a new page when h does not fit in the remaining
// vertical space. An element taller than the whole content area is still
// placed at the top of a fresh page; overflow past the bottom margin is
// accepted rather than treated as an error.
func (ctx *Context) EnsureSpace(h float64) {
	if ctx.page == nil {
		ctx.NewPage()
		return
	}
	if ctx.y+h > ctx.bottomLimit() && ctx.y > ctx.Geom.Margin.Top {
		ctx.NewPage()
	}
}

// Advance moves the cursor down by h. The current page is no longer
// considered empty afterwards.
func (ctx *Context) Advance(h float64) {
	ctx.y += h
	ctx.firstOnPage = false
}

// FirstOnPage reports whether nothing has been placed on the current page.
func (ctx *Context) FirstOnPage() bool { return ctx.firstOnPage }

// Y returns the cursor offset from the top of the current page.
func (ctx *Context) Y() float64 { return ctx.y }

// PageNumber returns the 1-indexed absolute number of the current page.
func (ctx *Context) PageNumber() int { return ctx.pageIndex + 1 }

// CurrentPage returns the page the cursor is on, opening page 1 if layout
// has not started.
func (ctx *Context) CurrentPage() *canvas.Page {
	if ctx.page == nil {
		ctx.NewPage()
	}
	return ctx.page
}

// Record appends one drawn-element fact at the current cursor position.
func (ctx *Context) Record(kind, text string) {
	ctx.record = append(ctx.record, DrawnElement{
		Kind: kind,
		Text: text,
		Page: ctx.PageNumber(),
		X:    ctx.Geom.Margin.Left,
		Y:    ctx.y,
	})
}

// Drawn returns the drawn-element record accumulated so far. The slice is
// the live backing store; callers must treat it as read-only.
func (ctx *Context) Drawn() []DrawnElement { return ctx.record }
