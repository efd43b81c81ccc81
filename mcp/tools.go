package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/lvillar/docflow"
	"github.com/lvillar/docflow/toc"
)

// RegisterDefaultTools adds the built-in docflow tools to the server.
func RegisterDefaultTools(s *Server) {
	s.AddTool(renderDocumentTool())
	s.AddTool(validateDocumentTool())
	s.AddTool(documentOutlineTool())
	s.AddTool(pdfInfoTool())
}

func renderDocumentTool() Tool {
	return Tool{
		Name:        "render_document",
		Description: "Render a document description to PDF. The document supports headings, paragraphs, tables, form fields, admonitions, rules, spacers, and barcodes, plus an optional cover page, table of contents, headers/footers, and watermark. Returns the PDF as base64 unless outputPath is given.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"document": map[string]any{
					"type":        "object",
					"description": "Document description with title, pageSize, toc, and content",
				},
				"outputPath": map[string]any{
					"type":        "string",
					"description": "Optional file path to save the PDF. If omitted, returns base64.",
				},
			},
			"required": []string{"document"},
		},
		Handler: handleRenderDocument,
	}
}

func handleRenderDocument(args map[string]any) (ToolResult, error) {
	docData, ok := args["document"]
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'document' argument")
	}

	jsonBytes, err := json.Marshal(docData)
	if err != nil {
		return ToolResult{}, fmt.Errorf("encoding document: %w", err)
	}

	var buf bytes.Buffer
	if err := docflow.Render(&buf, jsonBytes); err != nil {
		return ToolResult{}, fmt.Errorf("rendering PDF: %w", err)
	}

	if outputPath, ok := args["outputPath"].(string); ok && outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return ToolResult{
			Content: []ContentBlock{{
				Type: "text",
				Text: fmt.Sprintf("PDF created: %s (%d bytes)", outputPath, buf.Len()),
			}},
		}, nil
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return ToolResult{
		Content: []ContentBlock{{
			Type: "text",
			Text: fmt.Sprintf("PDF created (%d bytes). Base64 data:\n%s", buf.Len(), encoded),
		}},
	}, nil
}

func validateDocumentTool() Tool {
	return Tool{
		Name:        "validate_document",
		Description: "Validate a document description against the docflow JSON Schema without rendering it. Reports every schema violation.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"document": map[string]any{
					"type":        "object",
					"description": "Document description to validate",
				},
			},
			"required": []string{"document"},
		},
		Handler: handleValidateDocument,
	}
}

func handleValidateDocument(args map[string]any) (ToolResult, error) {
	docData, ok := args["document"]
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'document' argument")
	}

	jsonBytes, err := json.Marshal(docData)
	if err != nil {
		return ToolResult{}, fmt.Errorf("encoding document: %w", err)
	}

	if err := docflow.Validate(jsonBytes); err != nil {
		return ToolResult{
			Content: []ContentBlock{{Type: "text", Text: fmt.Sprintf("Invalid: %v", err)}},
			IsError: true,
		}, nil
	}

	return ToolResult{
		Content: []ContentBlock{{Type: "text", Text: "Document is valid."}},
	}, nil
}

func documentOutlineTool() Tool {
	return Tool{
		Name:        "document_outline",
		Description: "Extract the heading outline a table of contents would contain for a document description, including hierarchical section numbers. No PDF is produced.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"document": map[string]any{
					"type":        "object",
					"description": "Document description to outline",
				},
			},
			"required": []string{"document"},
		},
		Handler: handleDocumentOutline,
	}
}

func handleDocumentOutline(args map[string]any) (ToolResult, error) {
	docData, ok := args["document"]
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'document' argument")
	}

	jsonBytes, err := json.Marshal(docData)
	if err != nil {
		return ToolResult{}, fmt.Errorf("encoding document: %w", err)
	}
	doc, err := docflow.Parse(jsonBytes)
	if err != nil {
		return ToolResult{}, err
	}

	cfg := toc.Resolve(doc.TOC)
	if cfg == nil {
		cfg = &toc.Config{MinLevel: 1, MaxLevel: 6}
	}
	entries := toc.Extract(doc.Content, cfg)
	toc.AssignNumbering(entries)

	type outlineEntry struct {
		Text      string `json:"text"`
		Level     int    `json:"level"`
		Numbering string `json:"numbering"`
		AnchorID  string `json:"anchorId"`
	}
	out := make([]outlineEntry, len(entries))
	for i, e := range entries {
		out[i] = outlineEntry{Text: e.Text, Level: e.Level, Numbering: e.Numbering, AnchorID: e.AnchorID}
	}

	encoded, _ := json.MarshalIndent(out, "", "  ")
	return ToolResult{
		Content: []ContentBlock{{Type: "text", Text: string(encoded)}},
	}, nil
}

func pdfInfoTool() Tool {
	return Tool{
		Name:        "pdf_info",
		Description: "Inspect a rendered PDF file: page count and structural validity.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "Path to the PDF file",
				},
			},
			"required": []string{"path"},
		},
		Handler: handlePDFInfo,
	}
}

func handlePDFInfo(args map[string]any) (ToolResult, error) {
	path, ok := args["path"].(string)
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'path' argument")
	}

	f, err := os.Open(path)
	if err != nil {
		return ToolResult{}, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	pages, err := api.PageCount(f, nil)
	if err != nil {
		return ToolResult{}, fmt.Errorf("reading PDF: %w", err)
	}

	valid := true
	validation := "ok"
	if err := api.ValidateFile(path, nil); err != nil {
		valid = false
		validation = err.Error()
	}

	info := map[string]any{
		"path":       path,
		"pageCount":  pages,
		"valid":      valid,
		"validation": validation,
	}
	encoded, _ := json.MarshalIndent(info, "", "  ")
	return ToolResult{
		Content: []ContentBlock{{Type: "text", Text: string(encoded)}},
	}, nil
}
