package content

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownElement is returned when a content sequence contains an element
// whose type tag does not name a known variant.
var ErrUnknownElement = errors.New("content: unknown element type")

// Type tags used in the wire encoding.
const (
	typeHeading    = "heading"
	typeParagraph  = "paragraph"
	typeTable      = "table"
	typeField      = "field"
	typeAdmonition = "admonition"
	typeRule       = "rule"
	typeSpacer     = "spacer"
	typeBarcode    = "barcode"
)

// TypeOf returns the wire type tag for an element.
func TypeOf(e Element) string {
	switch e.(type) {
	case Heading, *Heading:
		return typeHeading
	case Paragraph, *Paragraph:
		return typeParagraph
	case Table, *Table:
		return typeTable
	case Field, *Field:
		return typeField
	case Admonition, *Admonition:
		return typeAdmonition
	case Rule, *Rule:
		return typeRule
	case Spacer, *Spacer:
		return typeSpacer
	case Barcode, *Barcode:
		return typeBarcode
	default:
		return ""
	}
}

// UnmarshalJSON decodes a tagged element array into concrete variants.
func (l *ElementList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(ElementList, 0, len(raw))
	for i, msg := range raw {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &tag); err != nil {
			return fmt.Errorf("content: element %d: %w", i, err)
		}

		var (
			elem Element
			err  error
		)
		switch tag.Type {
		case typeHeading:
			var e Heading
			err = json.Unmarshal(msg, &e)
			elem = e
		case typeParagraph:
			var e Paragraph
			err = json.Unmarshal(msg, &e)
			elem = e
		case typeTable:
			var e Table
			err = json.Unmarshal(msg, &e)
			elem = e
		case typeField:
			var e Field
			err = json.Unmarshal(msg, &e)
			elem = e
		case typeAdmonition:
			var e Admonition
			err = json.Unmarshal(msg, &e)
			elem = e
		case typeRule:
			elem = Rule{}
		case typeSpacer:
			var e Spacer
			err = json.Unmarshal(msg, &e)
			elem = e
		case typeBarcode:
			var e Barcode
			err = json.Unmarshal(msg, &e)
			elem = e
		default:
			return fmt.Errorf("%w: element %d has type %q", ErrUnknownElement, i, tag.Type)
		}
		if err != nil {
			return fmt.Errorf("content: element %d (%s): %w", i, tag.Type, err)
		}
		out = append(out, elem)
	}

	*l = out
	return nil
}

// MarshalJSON encodes the list back into tagged objects.
func (l ElementList) MarshalJSON() ([]byte, error) {
	out := make([]map[string]any, 0, len(l))
	for i, e := range l {
		tag := TypeOf(e)
		if tag == "" {
			return nil, fmt.Errorf("%w: element %d (%T)", ErrUnknownElement, i, e)
		}

		body, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("content: element %d: %w", i, err)
		}
		m := map[string]any{}
		if err := json.Unmarshal(body, &m); err != nil {
			return nil, fmt.Errorf("content: element %d: %w", i, err)
		}
		m["type"] = tag
		out = append(out, m)
	}
	return json.Marshal(out)
}
