package canvas

import (
	"bytes"
	"fmt"
	"io"

	gofpdf "github.com/phpdave11/gofpdf"
)

// Meta carries document metadata embedded in the PDF catalog.
type Meta struct {
	Title   string
	Author  string
	Subject string
}

// Output replays every page into a fresh PDF document and writes it to w.
// The canvas itself is left untouched and can be replayed again.
func (c *Canvas) Output(w io.Writer, meta Meta) error {
	pdf := gofpdf.New("P", c.unit, "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Subject != "" {
		pdf.SetSubject(meta.Subject, true)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	for name, png := range c.images {
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	}

	for _, page := range c.pages {
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: page.size.W, Ht: page.size.H})
		for _, o := range page.ops {
			o.replay(pdf)
		}
		if c.watermark != nil {
			c.watermark.draw(pdf, page.size)
		}
	}

	// A document with no pages is still a valid (blank) PDF.
	if len(c.pages) == 0 {
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: c.size.W, Ht: c.size.H})
		if c.watermark != nil {
			c.watermark.draw(pdf, c.size)
		}
	}

	if pdf.Err() {
		return fmt.Errorf("canvas: output: %w", pdf.Error())
	}
	return pdf.Output(w)
}
