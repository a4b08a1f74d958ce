// Package yaml decodes YAML documents into cstructs for schema
// deserialization, backed by gopkg.in/yaml.v3.
package yaml

import (
	"fmt"

	yamlv3 "gopkg.in/yaml.v3"
)

// DecodeBytes decodes one YAML document from b. Mappings are normalized to
// map[string]any regardless of the key types yaml.v3 produced.
func DecodeBytes(b []byte) (any, error) {
	var v any
	if err := yamlv3.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}

// Encode renders a cstruct back to YAML.
func Encode(cstruct any) ([]byte, error) {
	return yamlv3.Marshal(cstruct)
}

// normalize rewrites yaml.v3 containers into the cstruct shape the schema
// engine traverses. yaml.v3 already yields map[string]any for string-keyed
// mappings; non-string keys are stringified.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
