// Package json decodes JSON documents into cstructs: nested map[string]any,
// []any, string, bool, and json.Number values ready for schema
// deserialization. Decoding is backed by goccy/go-json.
package json

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"
)

// DecodeReader decodes one JSON document from r. Numbers are preserved as
// json.Number so integer cstructs survive without float rounding.
func DecodeReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeBytes decodes one JSON document from b.
func DecodeBytes(b []byte) (any, error) {
	return DecodeReader(bytes.NewReader(b))
}

// Encode renders a cstruct back to JSON.
func Encode(cstruct any) ([]byte, error) {
	return gojson.Marshal(cstruct)
}
