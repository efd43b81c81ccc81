package canvas

import gofpdf "github.com/phpdave11/gofpdf"

// lineSpread is the line height as a multiple of the font size.
const lineSpread = 1.4

// Meter measures text against real font metrics. It wraps a dedicated gofpdf
// instance that never receives pages, so measurement is independent of the
// document being drawn and identical to what Output will produce.
type Meter struct {
	pdf *gofpdf.Fpdf
	k   float64 // points per document unit
}

func newMeter(unit string) *Meter {
	pdf := gofpdf.New("P", unit, "A4", "")
	return &Meter{pdf: pdf, k: pdf.GetConversionRatio()}
}

// TextWidth returns the width of s in document units when drawn with f.
func (m *Meter) TextWidth(f Font, s string) float64 {
	m.pdf.SetFont(f.Family, f.Style, f.Size)
	return m.pdf.GetStringWidth(s)
}

// SplitText word-wraps s to fit width document units, returning the lines.
func (m *Meter) SplitText(f Font, s string, width float64) []string {
	if s == "" {
		return []string{""}
	}
	m.pdf.SetFont(f.Family, f.Style, f.Size)
	return m.pdf.SplitText(s, width)
}

// LineHeight returns the vertical advance for one line of f, in document units.
func (m *Meter) LineHeight(f Font) float64 {
	return f.Size * lineSpread / m.k
}

// Ascent returns the baseline offset from the top of a line, in document units.
func (m *Meter) Ascent(f Font) float64 {
	return f.Size / m.k
}

// PointsToUnits converts a length in points to document units.
func (m *Meter) PointsToUnits(pt float64) float64 {
	return pt / m.k
}
