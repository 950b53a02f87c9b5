// Package registry loads OpenAPI components registries from YAML or JSON
// documents for use as $ref resolution roots.
//
// The registry is a plain nested mapping, e.g. {"schemas": {"Pet": {...}}},
// matching the shape of the components object in an OpenAPI 3.x document.
// It is consumed read-only by the resolver package.
package registry

import (
	"bytes"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/schemock/schemock/schemerrors"
)

// FromDocument extracts the components registry from a full OpenAPI 3.x
// document. The document may be YAML or JSON; the format is sniffed from the
// first non-whitespace byte. A document without a components object yields an
// empty registry, not an error.
func FromDocument(data []byte) (map[string]any, error) {
	doc, err := parse(data)
	if err != nil {
		return nil, err
	}
	components, ok := doc["components"].(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return components, nil
}

// FromYAML loads a bare components mapping from YAML.
func FromYAML(data []byte) (map[string]any, error) {
	var registry map[string]any
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, &schemerrors.ParseError{
			Format:  "yaml",
			Message: "invalid components document",
			Cause:   err,
		}
	}
	return registry, nil
}

// FromJSON loads a bare components mapping from JSON.
func FromJSON(data []byte) (map[string]any, error) {
	var registry map[string]any
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, &schemerrors.ParseError{
			Format:  "json",
			Message: "invalid components document",
			Cause:   err,
		}
	}
	return registry, nil
}

// parse decodes a document as JSON when it starts with an object or array
// delimiter, otherwise as YAML. The YAML parser would accept JSON too, but
// the dedicated JSON path is faster and produces better error messages for
// malformed JSON input.
func parse(data []byte) (map[string]any, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FromJSON(data)
	}
	return FromYAML(data)
}
