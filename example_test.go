package docflow_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/lvillar/docflow"
	"github.com/lvillar/docflow/content"
)

// Render a small document from a JSON description.
func Example() {
	desc := []byte(`{
		"title": "Release Notes",
		"toc": {"enabled": true, "numbered": true},
		"content": [
			{"type": "heading", "level": 1, "text": "Changes"},
			{"type": "paragraph", "text": "This release improves table pagination."},
			{"type": "heading", "level": 2, "text": "Fixes"},
			{"type": "paragraph", "text": "Header rows now repeat after page breaks."}
		]
	}`)

	var buf bytes.Buffer
	if err := docflow.Render(&buf, desc); err != nil {
		log.Fatal(err)
	}

	fmt.Println(buf.Len() > 0)
	// Output: true
}

// Build a document programmatically instead of from JSON or YAML.
func ExampleRenderDocument() {
	doc := &docflow.Document{
		Title: "Inventory",
		Content: content.ElementList{
			content.Heading{Level: 1, Text: "Stock"},
			content.Table{
				Columns: []content.TableColumn{
					{Header: "SKU"},
					{Header: "Count", Align: "R"},
				},
				Rows: [][]string{
					{"A-100", "14"},
					{"B-205", "3"},
				},
			},
			content.Barcode{Format: content.BarcodeQR, Data: "https://example.com/stock"},
		},
	}

	var buf bytes.Buffer
	if err := docflow.RenderDocument(&buf, doc); err != nil {
		log.Fatal(err)
	}

	fmt.Println(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	// Output: true
}
