package docflow

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lvillar/docflow/canvas"
	"github.com/lvillar/docflow/content"
	"github.com/lvillar/docflow/layout"
	"github.com/lvillar/docflow/toc"
)

// Named page sizes in millimeters.
var pageSizesMM = map[string][2]float64{
	"A3":     {297, 420},
	"A4":     {210, 297},
	"A5":     {148, 210},
	"Letter": {215.9, 279.4},
	"Legal":  {215.9, 355.6},
}

// Millimeters-to-unit conversion factors.
var unitFromMM = map[string]float64{
	"mm": 1,
	"cm": 0.1,
	"in": 1 / 25.4,
	"pt": 72 / 25.4,
}

// Render parses a JSON or YAML document description and writes the
// resulting PDF to w.
func Render(w io.Writer, data []byte, opts ...Option) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	return RenderDocument(w, doc, opts...)
}

// RenderDocument renders a Document to a PDF written to w.
//
// The pass is strictly sequential: content is flowed first, the TOC is
// synthesized only after every page number is final, and headers/footers are
// drawn last using the offset the TOC insertion produced. A single render
// owns all its state; separate documents can render concurrently.
func RenderDocument(w io.Writer, doc *content.Document, opts ...Option) error {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	geom, unit, err := resolveGeometry(doc, cfg)
	if err != nil {
		return newRenderError("geometry", err)
	}

	font := canvas.Font{Family: cfg.fontFamily, Size: cfg.fontSize}
	if doc.Font != nil {
		if doc.Font.Family != "" {
			font.Family = doc.Font.Family
		}
		if doc.Font.Size > 0 {
			font.Size = doc.Font.Size
		}
		font.Style = doc.Font.Style
	}

	c := canvas.New(unit, geom.Page)
	ctx := layout.NewContext(c, geom, font)

	hasCover := doc.Cover != nil
	if hasCover {
		layout.DrawCover(ctx, doc.Cover)
	}

	if err := layout.Flow(ctx, doc.Content); err != nil {
		return newRenderError("layout", err)
	}

	tocPages, err := toc.Insert(ctx, doc.TOC, doc.Content, hasCover)
	if err != nil {
		return newRenderError("toc", err)
	}

	off := toc.AdjustOffset(tocPages, hasCover, c.PageCount())
	drawFurniture(c, geom, font, doc, off)

	if doc.Watermark != nil {
		wm := canvas.Watermark{
			Text:     doc.Watermark.Text,
			FontSize: doc.Watermark.FontSize,
			Opacity:  doc.Watermark.Opacity,
			Angle:    doc.Watermark.Angle,
		}
		if doc.Watermark.Color != nil {
			wm.Color = &canvas.Color{R: doc.Watermark.Color.R, G: doc.Watermark.Color.G, B: doc.Watermark.Color.B}
		}
		c.SetWatermark(&wm)
	}

	meta := canvas.Meta{Title: doc.Title, Author: doc.Author, Subject: doc.Subject}
	if err := c.Output(w, meta); err != nil {
		return newRenderError("output", err)
	}
	return nil
}

// resolveGeometry derives the page geometry in document units. Dimensions
// must be positive and finite; anything else is invalid input, not a
// degradable condition.
func resolveGeometry(doc *content.Document, cfg renderConfig) (layout.Geometry, string, error) {
	unit := doc.Unit
	if unit == "" {
		unit = cfg.unit
	}
	scale, ok := unitFromMM[unit]
	if !ok {
		return layout.Geometry{}, "", fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}

	var page canvas.Size
	switch {
	case doc.PageWidth != 0 || doc.PageHeight != 0:
		page = canvas.Size{W: doc.PageWidth, H: doc.PageHeight}
	default:
		name := doc.PageSize
		if name == "" {
			name = cfg.pageSize
		}
		mm, ok := pageSizesMM[name]
		if !ok {
			return layout.Geometry{}, "", fmt.Errorf("%w: unknown page size %q", ErrInvalidGeometry, name)
		}
		page = canvas.Size{W: mm[0] * scale, H: mm[1] * scale}
	}

	if !validDimension(page.W) || !validDimension(page.H) {
		return layout.Geometry{}, "", fmt.Errorf("%w: %gx%g %s", ErrInvalidGeometry, page.W, page.H, unit)
	}

	margin := layout.Margin{Top: 15 * scale, Right: 15 * scale, Bottom: 15 * scale, Left: 15 * scale}
	if doc.Margin != nil {
		margin = layout.Margin{
			Top:    doc.Margin.Top,
			Right:  doc.Margin.Right,
			Bottom: doc.Margin.Bottom,
			Left:   doc.Margin.Left,
		}
	}
	for _, v := range []float64{margin.Top, margin.Right, margin.Bottom, margin.Left} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return layout.Geometry{}, "", fmt.Errorf("%w: negative or non-finite margin", ErrInvalidGeometry)
		}
	}

	return layout.Geometry{Page: page, Margin: margin}, unit, nil
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// drawFurniture renders the repeating header and footer onto content pages.
// Cover and TOC pages carry neither. The {page} and {pages} placeholders
// expand to content-relative numbers computed from the TOC offset — the
// offset is never re-derived here.
func drawFurniture(c *canvas.Canvas, geom layout.Geometry, font canvas.Font, doc *content.Document, off toc.Offset) {
	if doc.Header == nil && doc.Footer == nil {
		return
	}

	m := c.Meter()
	for i := off.StartPage; i < c.PageCount(); i++ {
		page := c.Page(i)
		contentPage := i - off.StartPage + 1

		if doc.Header != nil && doc.Header.Text != "" {
			f := canvas.Font{Family: font.Family, Style: "B", Size: 9}
			col := canvas.Black
			applyFurnitureStyle(doc.Header.Font, doc.Header.Color, &f, &col)
			y := geom.Margin.Top * 0.5
			x := alignX(m, f, doc.Header.Text, doc.Header.Align, geom, "L")
			page.Text(x, y, f, col, doc.Header.Text)
		}

		if doc.Footer != nil && doc.Footer.Text != "" {
			f := canvas.Font{Family: font.Family, Size: 8}
			col := canvas.Color{R: 128, G: 128, B: 128}
			applyFurnitureStyle(doc.Footer.Font, doc.Footer.Color, &f, &col)

			text := doc.Footer.Text
			text = strings.ReplaceAll(text, "{page}", strconv.Itoa(contentPage))
			text = strings.ReplaceAll(text, "{pages}", strconv.Itoa(off.ContentPageCount))

			y := geom.Page.H - geom.Margin.Bottom*0.5
			x := alignX(m, f, text, doc.Footer.Align, geom, "C")
			page.Text(x, y, f, col, text)
		}
	}
}

func applyFurnitureStyle(font *content.Font, color *content.Color, f *canvas.Font, col *canvas.Color) {
	if font != nil {
		if font.Family != "" {
			f.Family = font.Family
		}
		if font.Style != "" {
			f.Style = font.Style
		}
		if font.Size > 0 {
			f.Size = font.Size
		}
	}
	if color != nil {
		*col = canvas.Color{R: color.R, G: color.G, B: color.B}
	}
}

func alignX(m *canvas.Meter, f canvas.Font, text, align string, geom layout.Geometry, def string) float64 {
	a := strings.ToUpper(align)
	if a == "" {
		a = def
	}
	switch a {
	case "C":
		return geom.Margin.Left + (geom.Page.W-geom.Margin.Left-geom.Margin.Right-m.TextWidth(f, text))/2
	case "R":
		return geom.Page.W - geom.Margin.Right - m.TextWidth(f, text)
	default:
		return geom.Margin.Left
	}
}
