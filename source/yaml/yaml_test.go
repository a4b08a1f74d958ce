package yaml_test

import (
	"testing"

	srcyaml "github.com/tomster/colander/source/yaml"
)

func TestDecodeBytes_Containers(t *testing.T) {
	doc := []byte(`
server:
  host: localhost
  ports:
    - 80
    - 443
enabled: true
`)
	v, err := srcyaml.DecodeBytes(doc)
	if err != nil {
		t.Fatalf("DecodeBytes returned error: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("got %T, want map[string]any", v)
	}
	server, ok := m["server"].(map[string]any)
	if !ok || server["host"] != "localhost" {
		t.Fatalf("server = %#v", m["server"])
	}
	ports, ok := server["ports"].([]any)
	if !ok || len(ports) != 2 || ports[0] != 80 {
		t.Fatalf("ports = %#v", server["ports"])
	}
	if m["enabled"] != true {
		t.Fatalf("enabled = %#v", m["enabled"])
	}
}

func TestDecodeBytes_Malformed(t *testing.T) {
	if _, err := srcyaml.DecodeBytes([]byte("{\n")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := map[string]any{"a": "b", "n": 1}
	b, err := srcyaml.Encode(in)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	back, err := srcyaml.DecodeBytes(b)
	if err != nil {
		t.Fatalf("DecodeBytes returned error: %v", err)
	}
	m := back.(map[string]any)
	if m["a"] != "b" || m["n"] != 1 {
		t.Fatalf("round trip = %#v", m)
	}
}
