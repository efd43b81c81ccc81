package canvas

import (
	"bytes"
	"strings"
	"testing"
)

func TestInsertPagesShiftsExisting(t *testing.T) {
	c := New("mm", Size{W: 210, H: 297})
	first := c.AddPage()
	first.Text(10, 10, Font{Family: "Helvetica", Size: 11}, Black, "content")
	second := c.AddPage()
	second.Line(0, 0, 10, 10, 0.3, Black)

	if err := c.InsertPages(0, 2); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if c.PageCount() != 4 {
		t.Fatalf("expected 4 pages, got %d", c.PageCount())
	}
	if c.Page(0).OpCount() != 0 || c.Page(1).OpCount() != 0 {
		t.Fatal("inserted pages should be blank")
	}
	if c.Page(2) != first || c.Page(3) != second {
		t.Fatal("existing pages did not shift in order")
	}
}

func TestInsertPagesInMiddle(t *testing.T) {
	c := New("mm", Size{W: 210, H: 297})
	a := c.AddPage()
	b := c.AddPage()

	if err := c.InsertPages(1, 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if c.Page(0) != a || c.Page(2) != b {
		t.Fatal("splice misplaced surrounding pages")
	}
}

func TestInsertPagesBounds(t *testing.T) {
	c := New("mm", Size{W: 210, H: 297})
	c.AddPage()

	if err := c.InsertPages(-1, 1); err == nil {
		t.Fatal("expected error for negative index")
	}
	if err := c.InsertPages(2, 1); err == nil {
		t.Fatal("expected error for index past end")
	}
	if err := c.InsertPages(0, 0); err != nil {
		t.Fatalf("zero-count insert should be a no-op: %v", err)
	}
	if c.PageCount() != 1 {
		t.Fatalf("page count changed on no-op: %d", c.PageCount())
	}
}

func TestOutputProducesPDF(t *testing.T) {
	c := New("mm", Size{W: 210, H: 297})
	p := c.AddPage()
	p.Text(20, 20, Font{Family: "Helvetica", Style: "B", Size: 14}, Black, "Hello")
	p.Line(20, 30, 100, 30, 0.3, Color{R: 120, G: 120, B: 120})
	p.Rect(20, 40, 50, 20, &Color{R: 245, G: 245, B: 245}, &Black, 0.2)

	var buf bytes.Buffer
	if err := c.Output(&buf, Meta{Title: "t", Author: "a"}); err != nil {
		t.Fatalf("output: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Fatalf("output does not look like a PDF: %q", buf.String()[:16])
	}
}

func TestOutputEmptyCanvas(t *testing.T) {
	c := New("mm", Size{W: 210, H: 297})

	var buf bytes.Buffer
	if err := c.Output(&buf, Meta{}); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty canvas should still produce a one-page PDF")
	}
}

func TestMeterLineHeight(t *testing.T) {
	m := newMeter("mm")
	f := Font{Family: "Helvetica", Size: 12}

	lh := m.LineHeight(f)
	if lh <= 0 {
		t.Fatalf("non-positive line height %g", lh)
	}
	// Line height carries spread above the bare font height.
	if lh <= m.PointsToUnits(f.Size) {
		t.Fatalf("line height %g should exceed font height %g", lh, m.PointsToUnits(f.Size))
	}
	if a := m.Ascent(f); a <= 0 || a > lh {
		t.Fatalf("ascent %g outside (0, %g]", a, lh)
	}
}

func TestMeterSplitText(t *testing.T) {
	m := newMeter("mm")
	f := Font{Family: "Helvetica", Size: 11}

	lines := m.SplitText(f, "one two three four five six seven eight nine ten", 20)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %d", len(lines))
	}

	if lines := m.SplitText(f, "", 20); len(lines) != 1 || lines[0] != "" {
		t.Fatalf("empty text should yield one empty line, got %q", lines)
	}
}

func TestMeterTextWidthMonotonic(t *testing.T) {
	m := newMeter("mm")
	f := Font{Family: "Helvetica", Size: 11}

	short := m.TextWidth(f, "hi")
	long := m.TextWidth(f, "hello there world")
	if short <= 0 || long <= short {
		t.Fatalf("widths not monotonic: %g vs %g", short, long)
	}
}

func TestWatermarkDefaults(t *testing.T) {
	wm := Watermark{Text: "DRAFT"}
	wm.applyDefaults()

	if wm.FontSize != 60 {
		t.Fatalf("default font size %g, want 60", wm.FontSize)
	}
	if wm.Opacity != 0.3 {
		t.Fatalf("default opacity %g, want 0.3", wm.Opacity)
	}
	if wm.Angle != 45 {
		t.Fatalf("default angle %g, want 45", wm.Angle)
	}
	if wm.Color == nil || *wm.Color != (Color{200, 200, 200}) {
		t.Fatalf("default color %v, want light gray", wm.Color)
	}
}

func TestWatermarkExplicitBlackKept(t *testing.T) {
	wm := Watermark{Text: "DRAFT", Color: &Black}
	wm.applyDefaults()

	if *wm.Color != Black {
		t.Fatalf("explicit black became %v", *wm.Color)
	}
}

func TestOutputWithWatermark(t *testing.T) {
	c := New("mm", Size{W: 210, H: 297})
	c.AddPage().Text(20, 20, Font{Family: "Helvetica", Size: 11}, Black, "body")
	c.SetWatermark(&Watermark{Text: "CONFIDENTIAL"})

	var buf bytes.Buffer
	if err := c.Output(&buf, Meta{}); err != nil {
		t.Fatalf("output: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Fatal("watermarked output is not a PDF")
	}
}
