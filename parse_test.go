package docflow

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const validJSON = `{
	"title": "Guide",
	"pageSize": "A4",
	"toc": {"enabled": true},
	"content": [
		{"type": "heading", "level": 1, "text": "Intro"},
		{"type": "paragraph", "text": "Hello."}
	]
}`

const validYAML = `title: Guide
pageSize: A4
toc:
  enabled: true
content:
  - type: heading
    level: 1
    text: Intro
  - type: paragraph
    text: Hello.
`

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(validJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Title != "Guide" {
		t.Fatalf("title %q", doc.Title)
	}
	if len(doc.Content) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(doc.Content))
	}
}

func TestParseYAML(t *testing.T) {
	doc, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Title != "Guide" {
		t.Fatalf("title %q", doc.Title)
	}
	if doc.TOC == nil || doc.TOC.Enabled == nil || !*doc.TOC.Enabled {
		t.Fatal("toc options lost in yaml conversion")
	}
}

func TestParseYAMLAndJSONAgree(t *testing.T) {
	fromJSON, err := Parse([]byte(validJSON))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	fromYAML, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}

	var a, b bytes.Buffer
	if err := RenderDocument(&a, fromJSON); err != nil {
		t.Fatalf("render json doc: %v", err)
	}
	if err := RenderDocument(&b, fromYAML); err != nil {
		t.Fatalf("render yaml doc: %v", err)
	}
	if pageCount(t, a.Bytes()) != pageCount(t, b.Bytes()) {
		t.Fatal("same document via JSON and YAML rendered different page counts")
	}
}

func TestValidateRejectsMissingRequired(t *testing.T) {
	err := Validate([]byte(`{"content": [{"type": "heading", "level": 1}]}`))
	if err == nil {
		t.Fatal("heading without text should fail validation")
	}
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestValidateRejectsUnknownElementType(t *testing.T) {
	err := Validate([]byte(`{"content": [{"type": "video", "src": "x"}]}`))
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestValidateRejectsBadEnum(t *testing.T) {
	err := Validate([]byte(`{"pageSize": "A9", "content": []}`))
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := Validate([]byte(validJSON)); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
	if err := Validate([]byte(validYAML)); err != nil {
		t.Fatalf("valid yaml document rejected: %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte(`{"content": [`)); err == nil {
		t.Fatal("truncated JSON should fail")
	}
	if _, err := Parse([]byte("content:\n  - {")); err == nil {
		t.Fatal("malformed YAML should fail")
	}
}

func TestRenderFromBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, []byte(validYAML)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Fatal("output is not a PDF")
	}
}
