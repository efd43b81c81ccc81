package toc

import (
	"testing"

	"github.com/lvillar/docflow/canvas"
	"github.com/lvillar/docflow/content"
	"github.com/lvillar/docflow/layout"
)

func a4Context(t *testing.T) *layout.Context {
	t.Helper()
	c := canvas.New("mm", canvas.Size{W: 210, H: 297})
	g := layout.Geometry{
		Page:   canvas.Size{W: 210, H: 297},
		Margin: layout.Margin{Top: 15, Right: 15, Bottom: 15, Left: 15},
	}
	return layout.NewContext(c, g, canvas.Font{Family: "Helvetica", Size: 11})
}

func TestInsertNoOpWhenDisabled(t *testing.T) {
	ctx := a4Context(t)
	elems := []content.Element{content.Heading{Level: 1, Text: "Intro"}}
	if err := layout.Flow(ctx, elems); err != nil {
		t.Fatalf("flow: %v", err)
	}
	before := ctx.Canvas.PageCount()

	pages, err := Insert(ctx, nil, elems, false)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if pages != 0 {
		t.Fatalf("expected 0 inserted pages, got %d", pages)
	}
	if ctx.Canvas.PageCount() != before {
		t.Fatalf("page count changed: %d -> %d", before, ctx.Canvas.PageCount())
	}
}

func TestInsertNoOpWithoutHeadings(t *testing.T) {
	ctx := a4Context(t)
	elems := []content.Element{content.Paragraph{Text: "just text"}}
	if err := layout.Flow(ctx, elems); err != nil {
		t.Fatalf("flow: %v", err)
	}

	pages, err := Insert(ctx, &content.TOCOptions{}, elems, false)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if pages != 0 {
		t.Fatalf("expected 0 inserted pages for heading-free content, got %d", pages)
	}
}

func TestInsertAtFront(t *testing.T) {
	ctx := a4Context(t)
	elems := []content.Element{
		content.Heading{Level: 1, Text: "Intro"},
		content.Paragraph{Text: "body"},
	}
	if err := layout.Flow(ctx, elems); err != nil {
		t.Fatalf("flow: %v", err)
	}
	contentOps := ctx.Canvas.Page(0).OpCount()

	pages, err := Insert(ctx, &content.TOCOptions{}, elems, false)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if pages != 1 {
		t.Fatalf("expected 1 TOC page, got %d", pages)
	}
	if ctx.Canvas.PageCount() != 2 {
		t.Fatalf("expected 2 pages total, got %d", ctx.Canvas.PageCount())
	}
	// Page 0 is now the TOC; the original content shifted to page 1.
	if ctx.Canvas.Page(0).OpCount() == 0 {
		t.Fatal("TOC page has no draw operations")
	}
	if ctx.Canvas.Page(1).OpCount() != contentOps {
		t.Fatalf("content page op count changed: %d -> %d", contentOps, ctx.Canvas.Page(1).OpCount())
	}
}

func TestInsertAfterCover(t *testing.T) {
	ctx := a4Context(t)
	layout.DrawCover(ctx, &content.Cover{Title: "My Doc"})
	coverOps := ctx.Canvas.Page(0).OpCount()

	elems := []content.Element{content.Heading{Level: 1, Text: "Intro"}}
	if err := layout.Flow(ctx, elems); err != nil {
		t.Fatalf("flow: %v", err)
	}

	pages, err := Insert(ctx, &content.TOCOptions{}, elems, true)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if pages != 1 {
		t.Fatalf("expected 1 TOC page, got %d", pages)
	}
	// Cover stays first, TOC second, content third.
	if ctx.Canvas.PageCount() != 3 {
		t.Fatalf("expected 3 pages, got %d", ctx.Canvas.PageCount())
	}
	if ctx.Canvas.Page(0).OpCount() != coverOps {
		t.Fatal("cover page moved")
	}
	if ctx.Canvas.Page(1).OpCount() == 0 {
		t.Fatal("TOC page empty")
	}
}

func TestInsertMultiPageTOC(t *testing.T) {
	ctx := a4Context(t)

	var elems []content.Element
	for i := 0; i < 150; i++ {
		elems = append(elems, content.Heading{Level: 1, Text: headingName(i)})
	}
	if err := layout.Flow(ctx, elems); err != nil {
		t.Fatalf("flow: %v", err)
	}

	pages, err := Insert(ctx, &content.TOCOptions{}, elems, false)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if pages < 2 {
		t.Fatalf("150 entries should span multiple TOC pages, got %d", pages)
	}
	// Every inserted page carries entries.
	for p := 0; p < pages; p++ {
		if ctx.Canvas.Page(p).OpCount() == 0 {
			t.Fatalf("TOC page %d empty", p)
		}
	}
}

func headingName(i int) string {
	letters := "abcdefghij"
	return "Section " + string(letters[i/10%10]) + string(letters[i%10])
}
