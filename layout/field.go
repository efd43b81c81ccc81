package layout

import (
	"fmt"
	"strings"

	"github.com/lvillar/docflow/canvas"
	"github.com/lvillar/docflow/content"
)

var (
	fieldBoxBorder   = canvas.Color{R: 120, G: 120, B: 120}
	fieldPlaceholder = canvas.Color{R: 150, G: 150, B: 150}
)

// placeField draws a flattened form widget: the label, then the input box
// with any value or placeholder inside it. The whole widget is atomic — it
// moves to the next page rather than splitting.
func placeField(ctx *Context, e content.Field) error {
	switch e.FieldType {
	case content.FieldText:
		placeTextField(ctx, e)
	case content.FieldCheckbox:
		placeCheckbox(ctx, e)
	case content.FieldDropdown:
		placeDropdown(ctx, e)
	default:
		return fmt.Errorf("layout: unknown field type %q for field %q", e.FieldType, e.Name)
	}
	return nil
}

func fieldLabel(e content.Field) string {
	label := e.Label
	if label == "" {
		label = e.Name
	}
	if e.Required {
		label += " *"
	}
	return label
}

func recordText(e content.Field) string {
	if e.Label != "" {
		return e.Label
	}
	return e.Name
}

func placeTextField(ctx *Context, e content.Field) {
	m := ctx.Canvas.Meter()
	labelFont := canvas.Font{Family: ctx.Font.Family, Size: ctx.Font.Size * 0.8}
	valueFont := ctx.Font

	labelH := m.LineHeight(labelFont)
	boxH := m.LineHeight(valueFont) * 1.6
	if e.Multiline {
		boxH = m.LineHeight(valueFont) * 4
	}

	ctx.EnsureSpace(labelH + boxH + 2)
	ctx.Record(KindField, recordText(e))

	page := ctx.CurrentPage()
	left := ctx.Geom.Margin.Left

	page.Text(left, ctx.Y()+m.Ascent(labelFont), labelFont, canvas.Black, fieldLabel(e))
	ctx.Advance(labelH)

	boxY := ctx.Y()
	page.Rect(left, boxY, ctx.ContentWidth(), boxH, nil, &fieldBoxBorder, 0.25)

	text, col := e.Value, canvas.Black
	if text == "" {
		text, col = e.Placeholder, fieldPlaceholder
	}
	if text != "" {
		page.Text(left+cellPadding, boxY+cellPadding+m.Ascent(valueFont), valueFont, col, text)
	}
	ctx.Advance(boxH + 2)
}

func placeCheckbox(ctx *Context, e content.Field) {
	m := ctx.Canvas.Meter()
	f := ctx.Font
	lineH := m.LineHeight(f)
	box := lineH * 0.7

	ctx.EnsureSpace(lineH + 2)
	ctx.Record(KindField, recordText(e))

	page := ctx.CurrentPage()
	left := ctx.Geom.Margin.Left
	boxY := ctx.Y() + (lineH-box)/2
	page.Rect(left, boxY, box, box, nil, &fieldBoxBorder, 0.3)

	checked := e.Value == "true" || e.Value == "yes" || e.Value == "on"
	if checked {
		inset := box * 0.22
		page.Line(left+inset, boxY+box*0.55, left+box*0.45, boxY+box-inset, 0.4, canvas.Black)
		page.Line(left+box*0.45, boxY+box-inset, left+box-inset, boxY+inset, 0.4, canvas.Black)
	}

	page.Text(left+box+2, ctx.Y()+m.Ascent(f), f, canvas.Black, fieldLabel(e))
	ctx.Advance(lineH + 2)
}

func placeDropdown(ctx *Context, e content.Field) {
	m := ctx.Canvas.Meter()
	labelFont := canvas.Font{Family: ctx.Font.Family, Size: ctx.Font.Size * 0.8}
	valueFont := ctx.Font

	labelH := m.LineHeight(labelFont)
	boxH := m.LineHeight(valueFont) * 1.6

	ctx.EnsureSpace(labelH + boxH + 2)
	ctx.Record(KindField, recordText(e))

	page := ctx.CurrentPage()
	left := ctx.Geom.Margin.Left
	width := ctx.ContentWidth()

	page.Text(left, ctx.Y()+m.Ascent(labelFont), labelFont, canvas.Black, fieldLabel(e))
	ctx.Advance(labelH)

	boxY := ctx.Y()
	page.Rect(left, boxY, width, boxH, nil, &fieldBoxBorder, 0.25)

	text, col := e.Value, canvas.Black
	if text == "" && len(e.Options) > 0 {
		text, col = strings.Join(e.Options, " / "), fieldPlaceholder
	}
	if text != "" {
		page.Text(left+cellPadding, boxY+cellPadding+m.Ascent(valueFont), valueFont, col, text)
	}

	// Chevron at the right edge of the box.
	cx := left + width - boxH*0.6
	cy := boxY + boxH*0.4
	page.Line(cx, cy, cx+boxH*0.15, cy+boxH*0.2, 0.3, fieldBoxBorder)
	page.Line(cx+boxH*0.15, cy+boxH*0.2, cx+boxH*0.3, cy, 0.3, fieldBoxBorder)

	ctx.Advance(boxH + 2)
}
