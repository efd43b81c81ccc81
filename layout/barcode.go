package layout

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"

	"github.com/lvillar/docflow/content"
)

// placeBarcode encodes the element's data as a QR or Code 128 symbol,
// registers the PNG with the canvas, and places it as an atomic block.
func placeBarcode(ctx *Context, e content.Barcode) error {
	var (
		bc  barcode.Barcode
		err error
	)
	switch e.Format {
	case content.BarcodeQR, "":
		bc, err = qr.Encode(e.Data, qr.M, qr.Auto)
	case content.BarcodeCode128:
		bc, err = code128.Encode(e.Data)
	default:
		return fmt.Errorf("layout: unknown barcode format %q", e.Format)
	}
	if err != nil {
		return fmt.Errorf("layout: encoding barcode: %w", err)
	}

	w := e.Width
	if w <= 0 {
		w = ctx.ContentWidth() * 0.2
	}
	h := w
	pxW, pxH := 256, 256
	if e.Format == content.BarcodeCode128 {
		h = w / 3
		pxW, pxH = 512, 160
	}

	scaled, err := barcode.Scale(bc, pxW, pxH)
	if err != nil {
		return fmt.Errorf("layout: scaling barcode: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return fmt.Errorf("layout: encoding barcode image: %w", err)
	}
	name := ctx.Canvas.RegisterImage(buf.Bytes())

	ctx.EnsureSpace(h + 4)
	ctx.Record(KindBarcode, e.Data)

	ctx.Advance(2)
	ctx.CurrentPage().Image(name, ctx.Geom.Margin.Left, ctx.Y(), w, h)
	ctx.Advance(h + 2)
	return nil
}
