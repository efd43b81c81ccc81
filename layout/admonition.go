package layout

import (
	"github.com/lvillar/docflow/canvas"
	"github.com/lvillar/docflow/content"
)

var admonitionColors = map[string]canvas.Color{
	content.AdmonitionNote:    {R: 63, G: 81, B: 181},
	content.AdmonitionTip:     {R: 46, G: 125, B: 50},
	content.AdmonitionWarning: {R: 237, G: 108, B: 2},
	content.AdmonitionDanger:  {R: 198, G: 40, B: 40},
}

var admonitionFill = canvas.Color{R: 245, G: 245, B: 245}

const (
	admonitionBar = 1.2
	admonitionPad = 3.0
)

// placeAdmonition draws a callout: colored side bar, light fill, optional
// bold title, wrapped body. The block is atomic; when taller than a whole
// page it is placed anyway and overflows.
func placeAdmonition(ctx *Context, e content.Admonition) {
	bar, ok := admonitionColors[e.Variant]
	if !ok {
		bar = admonitionColors[content.AdmonitionNote]
	}

	m := ctx.Canvas.Meter()
	bodyFont := ctx.Font
	titleFont := canvas.Font{Family: ctx.Font.Family, Style: "B", Size: ctx.Font.Size}

	textW := ctx.ContentWidth() - admonitionBar - 2*admonitionPad
	lines := m.SplitText(bodyFont, e.Text, textW)

	h := 2 * admonitionPad
	if e.Title != "" {
		h += m.LineHeight(titleFont)
	}
	h += float64(len(lines)) * m.LineHeight(bodyFont)

	ctx.EnsureSpace(h + 2)
	ctx.Record(KindAdmonition, e.Title)

	page := ctx.CurrentPage()
	left := ctx.Geom.Margin.Left
	top := ctx.Y()

	fill := admonitionFill
	page.Rect(left, top, ctx.ContentWidth(), h, &fill, nil, 0)
	page.Rect(left, top, admonitionBar, h, &bar, nil, 0)

	x := left + admonitionBar + admonitionPad
	y := top + admonitionPad
	if e.Title != "" {
		page.Text(x, y+m.Ascent(titleFont), titleFont, bar, e.Title)
		y += m.LineHeight(titleFont)
	}
	for _, line := range lines {
		page.Text(x, y+m.Ascent(bodyFont), bodyFont, canvas.Black, line)
		y += m.LineHeight(bodyFont)
	}

	ctx.Advance(h + 2)
}
