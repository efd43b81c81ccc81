package canvas

import gofpdf "github.com/phpdave11/gofpdf"

// op is a single replayable draw operation.
type op interface {
	replay(pdf *gofpdf.Fpdf)
}

type textOp struct {
	x, y  float64
	font  Font
	color Color
	text  string
}

func (o textOp) replay(pdf *gofpdf.Fpdf) {
	pdf.SetFont(o.font.Family, o.font.Style, o.font.Size)
	pdf.SetTextColor(o.color.R, o.color.G, o.color.B)
	pdf.Text(o.x, o.y, o.text)
}

type lineOp struct {
	x1, y1, x2, y2 float64
	width          float64
	color          Color
}

func (o lineOp) replay(pdf *gofpdf.Fpdf) {
	w := o.width
	if w <= 0 {
		w = 0.2
	}
	pdf.SetLineWidth(w)
	pdf.SetDrawColor(o.color.R, o.color.G, o.color.B)
	pdf.Line(o.x1, o.y1, o.x2, o.y2)
}

type rectOp struct {
	x, y, w, h float64
	fill       *Color
	stroke     *Color
	lineWidth  float64
}

func (o rectOp) replay(pdf *gofpdf.Fpdf) {
	style := ""
	if o.fill != nil {
		pdf.SetFillColor(o.fill.R, o.fill.G, o.fill.B)
		style = "F"
	}
	if o.stroke != nil {
		pdf.SetDrawColor(o.stroke.R, o.stroke.G, o.stroke.B)
		lw := o.lineWidth
		if lw <= 0 {
			lw = 0.2
		}
		pdf.SetLineWidth(lw)
		if style == "F" {
			style = "FD"
		} else {
			style = "D"
		}
	}
	if style == "" {
		style = "D"
	}
	pdf.Rect(o.x, o.y, o.w, o.h, style)
}

type imageOp struct {
	name       string
	x, y, w, h float64
}

func (o imageOp) replay(pdf *gofpdf.Fpdf) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.ImageOptions(o.name, o.x, o.y, o.w, o.h, false, opts, 0, "")
}
