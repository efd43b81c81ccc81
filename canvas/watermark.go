package canvas

import gofpdf "github.com/phpdave11/gofpdf"

// Watermark defines rotated overlay text drawn on every page at output time.
// Color is a pointer so an explicit black is distinguishable from unset.
type Watermark struct {
	Text     string
	FontSize float64 // points (default: 60)
	Color    *Color  // nil = light gray
	Opacity  float64 // 0.0 to 1.0 (default: 0.3)
	Angle    float64 // rotation in degrees (default: 45)
}

func (wm *Watermark) applyDefaults() {
	if wm.FontSize == 0 {
		wm.FontSize = 60
	}
	if wm.Opacity == 0 {
		wm.Opacity = 0.3
	}
	if wm.Angle == 0 {
		wm.Angle = 45
	}
	if wm.Color == nil {
		wm.Color = &Color{200, 200, 200}
	}
}

// draw renders the watermark centered on the current page.
func (wm *Watermark) draw(pdf *gofpdf.Fpdf, size Size) {
	pdf.SetFont("Helvetica", "B", wm.FontSize)
	pdf.SetTextColor(wm.Color.R, wm.Color.G, wm.Color.B)
	pdf.SetAlpha(wm.Opacity, "Normal")

	textW := pdf.GetStringWidth(wm.Text)
	cx := size.W / 2
	cy := size.H / 2

	pdf.TransformBegin()
	pdf.TransformRotate(wm.Angle, cx, cy)

	x := cx - textW/2
	y := cy + wm.FontSize/(3*pdf.GetConversionRatio())
	pdf.Text(x, y, wm.Text)
	pdf.TransformEnd()

	pdf.SetAlpha(1.0, "Normal")
}
