package layout

import (
	"strings"

	"github.com/lvillar/docflow/canvas"
	"github.com/lvillar/docflow/content"
)

// Table rendering style shared by all tables.
var (
	tableHeaderFill = canvas.Color{R: 63, G: 81, B: 181}
	tableHeaderText = canvas.Color{R: 255, G: 255, B: 255}
	tableStripeFill = canvas.Color{R: 245, G: 245, B: 245}
	tableBorder     = canvas.Color{R: 160, G: 160, B: 160}
)

const cellPadding = 2.0

// placeTable lays out a table row by row. The header row repeats at the top
// of every page the table spills onto; rows are the atomic pagination unit.
func placeTable(ctx *Context, e content.Table) {
	widths := tableWidths(ctx, e)
	if len(widths) == 0 {
		ctx.CurrentPage()
		ctx.Record(KindTable, "")
		return
	}

	m := ctx.Canvas.Meter()
	headerFont := canvas.Font{Family: ctx.Font.Family, Style: "B", Size: ctx.Font.Size}
	bodyFont := ctx.Font

	headers := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		headers[i] = c.Header
	}

	headerH := rowHeight(m, headerFont, headers, widths)
	firstRowH := headerH
	if len(e.Rows) > 0 {
		firstRowH += rowHeight(m, bodyFont, e.Rows[0], widths)
	}

	ctx.EnsureSpace(firstRowH + 2)
	ctx.Advance(2)
	ctx.Record(KindTable, strings.Join(headers, ", "))

	drawRow := func(cells []string, f canvas.Font, fill *canvas.Color, textCol canvas.Color) {
		h := rowHeight(m, f, cells, widths)
		page := ctx.CurrentPage()
		x := ctx.Geom.Margin.Left
		y := ctx.Y()

		for i, w := range widths {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			page.Rect(x, y, w, h, fill, &tableBorder, 0.2)

			align := "L"
			if i < len(e.Columns) && e.Columns[i].Align != "" {
				align = strings.ToUpper(e.Columns[i].Align)
			}

			contentW := w - 2*cellPadding
			ly := y + cellPadding + m.Ascent(f)
			for _, line := range m.SplitText(f, cell, contentW) {
				lx := x + cellPadding
				switch align {
				case "C":
					lx = x + (w-m.TextWidth(f, line))/2
				case "R":
					lx = x + w - cellPadding - m.TextWidth(f, line)
				}
				page.Text(lx, ly, f, textCol, line)
				ly += m.LineHeight(f)
			}
			x += w
		}
		ctx.Advance(h)
	}

	drawHeader := func() {
		fill := tableHeaderFill
		drawRow(headers, headerFont, &fill, tableHeaderText)
	}

	drawHeader()

	for i, row := range e.Rows {
		h := rowHeight(m, bodyFont, row, widths)
		if ctx.Y()+h > ctx.bottomLimit() && !ctx.FirstOnPage() {
			ctx.NewPage()
			drawHeader()
		}

		var fill *canvas.Color
		if i%2 == 0 {
			f := tableStripeFill
			fill = &f
		}
		drawRow(row, bodyFont, fill, canvas.Black)
	}
	ctx.Advance(2)
}

// tableWidths resolves column widths: fixed widths are honored and the
// remaining space is split evenly across auto (zero-width) columns.
func tableWidths(ctx *Context, e content.Table) []float64 {
	n := len(e.Columns)
	if n == 0 {
		if len(e.Rows) > 0 {
			n = len(e.Rows[0])
		}
		if n == 0 {
			return nil
		}
		widths := make([]float64, n)
		for i := range widths {
			widths[i] = ctx.ContentWidth() / float64(n)
		}
		return widths
	}

	widths := make([]float64, n)
	fixed := 0.0
	auto := 0
	for i, c := range e.Columns {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed += c.Width
		} else {
			auto++
		}
	}
	if auto > 0 {
		remaining := ctx.ContentWidth() - fixed
		if remaining < 0 {
			remaining = 0
		}
		share := remaining / float64(auto)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

// rowHeight computes the height a row needs from its tallest wrapped cell.
func rowHeight(m *canvas.Meter, f canvas.Font, cells []string, widths []float64) float64 {
	lineH := m.LineHeight(f)
	maxH := lineH + 2*cellPadding
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		contentW := widths[i] - 2*cellPadding
		if contentW < 1 {
			contentW = 1
		}
		h := float64(len(m.SplitText(f, cell, contentW)))*lineH + 2*cellPadding
		if h > maxH {
			maxH = h
		}
	}
	return maxH
}
