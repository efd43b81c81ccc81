package layout

import (
	"fmt"

	"github.com/lvillar/docflow/canvas"
	"github.com/lvillar/docflow/content"
)

// Heading font sizes in points: h1=24, h2=20, h3=16, h4=14, h5=12, h6=11.
var headingSizes = []float64{24, 20, 16, 14, 12, 11}

// Flow lays the content sequence out across pages. Elements are placed in
// order; each element that does not fit in the remaining vertical space
// triggers a page break before placement (paragraphs and table rows break
// line- and row-wise instead of atomically). The drawn-element record grows
// by exactly one entry per element.
func Flow(ctx *Context, elems []content.Element) error {
	for i, e := range elems {
		if err := place(ctx, e); err != nil {
			return fmt.Errorf("layout: element %d: %w", i, err)
		}
	}
	return nil
}

// place dispatches on the closed element sum. The default arm is unreachable
// for values built through the content package; it guards against new
// variants being added without a placement rule.
func place(ctx *Context, elem content.Element) error {
	switch e := elem.(type) {
	case content.Heading:
		placeHeading(ctx, e)
	case content.Paragraph:
		placeParagraph(ctx, e)
	case content.Table:
		placeTable(ctx, e)
	case content.Field:
		return placeField(ctx, e)
	case content.Admonition:
		placeAdmonition(ctx, e)
	case content.Rule:
		placeRule(ctx)
	case content.Spacer:
		placeSpacer(ctx, e)
	case content.Barcode:
		return placeBarcode(ctx, e)
	default:
		return fmt.Errorf("%w: %T", content.ErrUnknownElement, elem)
	}
	return nil
}

func placeHeading(ctx *Context, e content.Heading) {
	level := e.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}

	m := ctx.Canvas.Meter()
	f := canvas.Font{Family: ctx.Font.Family, Style: "B", Size: headingSizes[level-1]}
	lineH := m.LineHeight(f)
	lines := m.SplitText(f, e.Text, ctx.ContentWidth())

	gap := m.PointsToUnits(f.Size) * 0.3
	if level <= 2 {
		gap = m.PointsToUnits(f.Size) * 0.4
	}

	need := float64(len(lines)) * lineH
	if !ctx.FirstOnPage() {
		need += gap
	}
	ctx.EnsureSpace(need)
	if !ctx.FirstOnPage() {
		ctx.Advance(gap)
	}

	ctx.Record(KindHeading, e.Text)

	for _, line := range lines {
		ctx.CurrentPage().Text(ctx.Geom.Margin.Left, ctx.Y()+m.Ascent(f), f, canvas.Black, line)
		ctx.Advance(lineH)
	}
	ctx.Advance(m.PointsToUnits(f.Size) * 0.2)
}

func placeParagraph(ctx *Context, e content.Paragraph) {
	m := ctx.Canvas.Meter()
	f := ctx.Font
	if e.FontSize > 0 {
		f.Size = e.FontSize
	}

	width := ctx.ContentWidth()
	if e.MaxWidth > 0 && e.MaxWidth < width {
		width = e.MaxWidth
	}

	lineH := m.LineHeight(f)
	lines := m.SplitText(f, e.Text, width)

	// The paragraph starts wherever its first line fits; later lines may
	// continue across page breaks, but a line is never split.
	ctx.EnsureSpace(lineH)
	ctx.Record(KindParagraph, e.Text)

	for _, line := range lines {
		ctx.EnsureSpace(lineH)
		ctx.CurrentPage().Text(ctx.Geom.Margin.Left, ctx.Y()+m.Ascent(f), f, canvas.Black, line)
		ctx.Advance(lineH)
	}
	ctx.Advance(m.PointsToUnits(f.Size) * 0.3)
}

func placeRule(ctx *Context) {
	const gap = 3.0
	ctx.EnsureSpace(2 * gap)
	ctx.Record(KindRule, "")

	ctx.Advance(gap)
	y := ctx.Y()
	ctx.CurrentPage().Line(
		ctx.Geom.Margin.Left, y,
		ctx.Geom.Page.W-ctx.Geom.Margin.Right, y,
		0.3, canvas.Color{R: 180, G: 180, B: 180},
	)
	ctx.Advance(gap)
}

func placeSpacer(ctx *Context, e content.Spacer) {
	h := e.Height
	if h == 0 {
		h = 10
	}
	ctx.CurrentPage()
	ctx.Record(KindSpacer, "")
	// A spacer never forces a page break of its own; if it runs past the
	// bottom margin the next element's fit check performs the break.
	ctx.Advance(h)
}

// DrawCover renders a centered cover page and records its title so the
// page-number matcher can see it as the first drawn element. The cover owns
// its page outright: a fresh page is opened afterwards so flowed content
// always starts on absolute page 2.
func DrawCover(ctx *Context, cover *content.Cover) {
	ctx.NewPage()
	m := ctx.Canvas.Meter()
	page := ctx.CurrentPage()
	center := ctx.Geom.Page.W / 2

	titleFont := canvas.Font{Family: ctx.Font.Family, Style: "B", Size: 28}
	y := ctx.Geom.Page.H * 0.38
	for _, line := range m.SplitText(titleFont, cover.Title, ctx.ContentWidth()) {
		w := m.TextWidth(titleFont, line)
		page.Text(center-w/2, y, titleFont, canvas.Black, line)
		y += m.LineHeight(titleFont)
	}

	ctx.Record(KindTitle, cover.Title)

	if cover.Subtitle != "" {
		f := canvas.Font{Family: ctx.Font.Family, Style: "I", Size: 16}
		y += m.LineHeight(f) * 0.5
		w := m.TextWidth(f, cover.Subtitle)
		page.Text(center-w/2, y, f, canvas.Color{R: 80, G: 80, B: 80}, cover.Subtitle)
		y += m.LineHeight(f)
	}

	ruleW := ctx.ContentWidth() * 0.4
	y += 4
	page.Line(center-ruleW/2, y, center+ruleW/2, y, 0.4, canvas.Color{R: 120, G: 120, B: 120})
	y += 10

	f := canvas.Font{Family: ctx.Font.Family, Size: 12}
	if cover.Author != "" {
		w := m.TextWidth(f, cover.Author)
		page.Text(center-w/2, y, f, canvas.Black, cover.Author)
		y += m.LineHeight(f)
	}
	if cover.Date != "" {
		f.Size = 10
		w := m.TextWidth(f, cover.Date)
		page.Text(center-w/2, y, f, canvas.Color{R: 100, G: 100, B: 100}, cover.Date)
	}

	ctx.NewPage()
}
