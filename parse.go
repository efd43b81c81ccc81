package docflow

import (
	"bytes"
	"encoding/json"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lvillar/docflow/content"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("docflow-schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = compiler.Compile("docflow-schema.json")
	})
	return schema, schemaErr
}

// Schema returns the embedded JSON Schema that document descriptions are
// validated against.
func Schema() string { return schemaJSON }

// Parse decodes a JSON or YAML document description, validating it against
// the embedded JSON Schema first.
func Parse(data []byte) (*content.Document, error) {
	jsonData, err := toJSON(data)
	if err != nil {
		return nil, newRenderError("parse", err)
	}
	if err := validateJSON(jsonData); err != nil {
		return nil, err
	}

	var doc content.Document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, newRenderError("parse", err)
	}
	return &doc, nil
}

// Validate checks a JSON or YAML document description against the embedded
// schema without rendering it. The returned error wraps ErrInvalidDocument
// and carries the schema violation details.
func Validate(data []byte) error {
	jsonData, err := toJSON(data)
	if err != nil {
		return newRenderError("parse", err)
	}
	return validateJSON(jsonData)
}

func validateJSON(jsonData []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return newRenderError("schema", err)
	}

	var v any
	if err := json.Unmarshal(jsonData, &v); err != nil {
		return newRenderError("parse", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// toJSON normalizes the input to JSON bytes. Input starting with a brace is
// treated as JSON; anything else goes through the YAML decoder.
func toJSON(data []byte) ([]byte, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return data, nil
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	out, err := json.Marshal(normalizeYAML(v))
	if err != nil {
		return nil, fmt.Errorf("converting yaml: %w", err)
	}
	return out, nil
}

// normalizeYAML rewrites decoded YAML values into JSON-marshalable form.
// yaml.v3 already produces map[string]any for string keys; this guards
// against non-string keys in nested maps.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}
