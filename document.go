// Package docflow renders declarative document descriptions to paginated
// PDFs. A document is a flat sequence of content elements — headings,
// paragraphs, tables, form fields, admonitions, rules, spacers, barcodes —
// laid out sequentially across pages without manual coordinates. When a
// table of contents is enabled, its pages are inserted retroactively after
// layout completes, with every entry referencing the page its heading
// actually landed on.
//
// Example JSON:
//
//	{
//	  "title": "User Guide",
//	  "pageSize": "A4",
//	  "toc": {"enabled": true, "numbered": true},
//	  "content": [
//	    {"type": "heading", "text": "Introduction", "level": 1},
//	    {"type": "paragraph", "text": "Some body text here."}
//	  ]
//	}
package docflow

import "github.com/lvillar/docflow/content"

// Re-exports of the document model. The closed element sum and its JSON
// encoding live in the content package; these aliases keep the public API on
// the module root.
type (
	Document    = content.Document
	Margin      = content.Margin
	Font        = content.Font
	Color       = content.Color
	Cover       = content.Cover
	TOCOptions  = content.TOCOptions
	Header      = content.Header
	Footer      = content.Footer
	Watermark   = content.Watermark
	Element     = content.Element
	ElementList = content.ElementList
	Heading     = content.Heading
	Paragraph   = content.Paragraph
	Table       = content.Table
	TableColumn = content.TableColumn
	Field       = content.Field
	Admonition  = content.Admonition
	Rule        = content.Rule
	Spacer      = content.Spacer
	Barcode     = content.Barcode
)
