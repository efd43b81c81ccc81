package mcp

import (
	"github.com/lvillar/docflow"
)

// exampleDocument is a small but representative document description served
// as a resource so clients can learn the format by example.
const exampleDocument = `{
  "title": "Quarterly Report",
  "author": "Jane Smith",
  "pageSize": "A4",
  "cover": {
    "title": "Quarterly Report",
    "subtitle": "Q2 2026",
    "author": "Jane Smith"
  },
  "toc": {"enabled": true, "numbered": true},
  "footer": {"text": "Page {page} of {pages}", "align": "C"},
  "content": [
    {"type": "heading", "level": 1, "text": "Summary"},
    {"type": "paragraph", "text": "Revenue grew 12% quarter over quarter."},
    {"type": "admonition", "variant": "note", "title": "Note", "text": "All figures are unaudited."},
    {"type": "heading", "level": 1, "text": "Details"},
    {"type": "heading", "level": 2, "text": "Revenue"},
    {"type": "table",
     "columns": [
       {"header": "Region"},
       {"header": "Revenue", "align": "R"}
     ],
     "rows": [
       ["EMEA", "$1.2M"],
       ["APAC", "$0.9M"]
     ]},
    {"type": "rule"},
    {"type": "field", "fieldType": "text", "fieldName": "approver", "label": "Approved by", "required": true},
    {"type": "barcode", "format": "qr", "data": "https://example.com/report/q2"}
  ]
}`

// RegisterDefaultResources adds the built-in docflow resources to the server.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "docflow://schema",
		Name:        "Document Schema",
		Description: "JSON Schema that document descriptions are validated against.",
		MIMEType:    "application/schema+json",
		Handler:     handleSchemaResource,
	})

	s.AddResource(Resource{
		URI:         "docflow://example",
		Name:        "Example Document",
		Description: "A complete example document description exercising cover, TOC, tables, fields, and barcodes.",
		MIMEType:    "application/json",
		Handler:     handleExampleResource,
	})
}

func handleSchemaResource(uri string) ([]ResourceContent, error) {
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/schema+json",
		Text:     docflow.Schema(),
	}}, nil
}

func handleExampleResource(uri string) ([]ResourceContent, error) {
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     exampleDocument,
	}}, nil
}
