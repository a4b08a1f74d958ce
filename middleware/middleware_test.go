package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	colander "github.com/tomster/colander"
	"github.com/tomster/colander/middleware"
)

func schema() *colander.SchemaNode {
	return colander.NewNode(colander.Mapping{}, "", colander.Children(
		colander.NewNode(colander.String{}, "name"),
		colander.NewNode(colander.Integer{}, "age",
			colander.WithValidator(colander.Range(0, 200))),
	))
}

func TestDecodeJSONRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada","age":36}`))
	got, err := middleware.DecodeJSONRequest(schema(), r)
	if err != nil {
		t.Fatalf("DecodeJSONRequest returned error: %v", err)
	}
	if got.(map[string]any)["name"] != "Ada" {
		t.Fatalf("got %#v", got)
	}
}

func TestValidateJSON_BadRequestCarriesEveryViolation(t *testing.T) {
	h := middleware.ValidateJSON(schema(), func(w http.ResponseWriter, r *http.Request, appstruct any) {
		t.Fatalf("next must not run on validation failure")
	})
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age":999}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var payload struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad payload: %v", err)
	}
	if _, ok := payload.Errors["name"]; !ok {
		t.Errorf("missing name violation: %v", payload.Errors)
	}
	if _, ok := payload.Errors["age"]; !ok {
		t.Errorf("missing age violation: %v", payload.Errors)
	}
}

func TestValidateJSON_Success(t *testing.T) {
	var seen any
	h := middleware.ValidateJSON(schema(), func(w http.ResponseWriter, r *http.Request, appstruct any) {
		seen = appstruct
		w.WriteHeader(http.StatusNoContent)
	})
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada","age":36}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if seen.(map[string]any)["age"] != 36 {
		t.Fatalf("appstruct = %#v", seen)
	}
}

func TestValidateJSON_MalformedBody(t *testing.T) {
	h := middleware.ValidateJSON(schema(), func(w http.ResponseWriter, r *http.Request, appstruct any) {
		t.Fatalf("next must not run on parse failure")
	})
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
