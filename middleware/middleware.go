// Package middleware provides net/http helpers for validating JSON request
// bodies against a schema node and shaping Invalid reports into field-error
// payloads.
package middleware

import (
	"net/http"

	gojson "github.com/goccy/go-json"

	colander "github.com/tomster/colander"
	srcjson "github.com/tomster/colander/source/json"
)

// DecodeJSONRequest reads the request body as JSON and deserializes it
// against node, returning the appstruct or an error (an *Invalid for schema
// violations).
func DecodeJSONRequest(node *colander.SchemaNode, r *http.Request) (any, error) {
	cstruct, err := srcjson.DecodeReader(r.Body)
	if err != nil {
		return nil, colander.NewInvalid(node, colander.CodeParseError, err.Error())
	}
	return node.Deserialize(cstruct)
}

// ErrorPayload shapes an Invalid report for JSON responses: every violation
// keyed by its dotted path.
func ErrorPayload(inv *colander.Invalid) map[string]any {
	return map[string]any{"errors": inv.Describe()}
}

// ValidateJSON wraps next with request-body validation. On failure it writes
// a 400 response carrying every violation; on success it invokes next with
// the deserialized appstruct.
func ValidateJSON(node *colander.SchemaNode, next func(w http.ResponseWriter, r *http.Request, appstruct any)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appstruct, err := DecodeJSONRequest(node, r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			if inv, ok := colander.AsInvalid(err); ok {
				_ = gojson.NewEncoder(w).Encode(ErrorPayload(inv))
				return
			}
			_ = gojson.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
			return
		}
		next(w, r, appstruct)
	}
}
