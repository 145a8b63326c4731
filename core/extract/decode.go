package extract

import (
	"encoding/json"
	"fmt"
)

// ParseError reports a payload that could not be ingested as a JSON
// document.
type ParseError struct {
	// Reason describes what made the payload unusable.
	Reason string

	// Err is the underlying decode error, when one exists.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DecodeDocument parses raw bytes into a document tree for extraction.
// The top level must be a JSON object or array; anything else, or a body
// that is not valid JSON at all, is rejected with a *ParseError.
func DecodeDocument(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Reason: "body is not valid JSON", Err: err}
	}
	switch doc.(type) {
	case map[string]any, []any:
		return doc, nil
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("top-level value is a JSON %s, want object or array", jsonTypeName(doc))}
	}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	default:
		return fmt.Sprintf("%T", v)
	}
}
