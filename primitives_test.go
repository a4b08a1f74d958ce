package colander_test

import (
	"encoding/json"
	"testing"

	colander "github.com/tomster/colander"
)

func TestString_RoundTrip(t *testing.T) {
	node := colander.NewNode(colander.String{}, "s")
	for _, in := range []string{"", "hello", "héllo wörld"} {
		cstruct, err := node.Serialize(in)
		if err != nil {
			t.Fatalf("Serialize(%q) returned error: %v", in, err)
		}
		back, err := node.Deserialize(cstruct)
		if err != nil {
			t.Fatalf("Deserialize(%q) returned error: %v", cstruct, err)
		}
		if back != in {
			t.Fatalf("round trip %q -> %q", in, back)
		}
	}
}

func TestString_RejectsNonString(t *testing.T) {
	node := colander.NewNode(colander.String{}, "s")
	for _, in := range []any{42, true, []any{}, map[string]any{}} {
		if _, err := node.Deserialize(in); err == nil {
			t.Errorf("Deserialize(%#v) succeeded, want invalid_type", in)
		}
	}
}

func TestBoolean_DeserializeTokens(t *testing.T) {
	node := colander.NewNode(colander.Boolean{}, "b")
	truthy := []string{"true", "yes", "y", "on", "t", "1", "TRUE", "Yes", "ON", "T"}
	for _, in := range truthy {
		got, err := node.Deserialize(in)
		if err != nil {
			t.Fatalf("Deserialize(%q) returned error: %v", in, err)
		}
		if got != true {
			t.Errorf("Deserialize(%q) = %v, want true", in, got)
		}
	}
	for _, in := range []string{"false", "no", "off", "0", "", "maybe", "2"} {
		got, err := node.Deserialize(in)
		if err != nil {
			t.Fatalf("Deserialize(%q) returned error: %v", in, err)
		}
		if got != false {
			t.Errorf("Deserialize(%q) = %v, want false", in, got)
		}
	}
}

func TestBoolean_RejectsNonString(t *testing.T) {
	node := colander.NewNode(colander.Boolean{}, "b")
	for _, in := range []any{true, 1, []any{}} {
		_, err := node.Deserialize(in)
		inv, ok := colander.AsInvalid(err)
		if !ok || inv.Code != colander.CodeInvalidType {
			t.Errorf("Deserialize(%#v) = %v, want invalid_type", in, err)
		}
	}
}

func TestBoolean_RoundTrip(t *testing.T) {
	node := colander.NewNode(colander.Boolean{}, "b")
	for _, in := range []bool{true, false} {
		cstruct, err := node.Serialize(in)
		if err != nil {
			t.Fatalf("Serialize(%v) returned error: %v", in, err)
		}
		back, err := node.Deserialize(cstruct)
		if err != nil {
			t.Fatalf("Deserialize(%q) returned error: %v", cstruct, err)
		}
		if back != in {
			t.Fatalf("round trip %v -> %v via %q", in, back, cstruct)
		}
	}
}

func TestBoolean_CustomTokens(t *testing.T) {
	node := colander.NewNode(colander.Boolean{TrueVal: "yes", FalseVal: "no"}, "b")
	got, err := node.Serialize(true)
	if err != nil || got != "yes" {
		t.Fatalf("Serialize(true) = %v, %v; want yes", got, err)
	}
	got, err = node.Serialize(false)
	if err != nil || got != "no" {
		t.Fatalf("Serialize(false) = %v, %v; want no", got, err)
	}
}

func TestInteger_Deserialize(t *testing.T) {
	node := colander.NewNode(colander.Integer{}, "i")
	cases := []struct {
		in   any
		want int
	}{
		{"42", 42},
		{" -7 ", -7},
		{json.Number("1234"), 1234},
		{12, 12},
		{int64(13), 13},
		{float64(14), 14},
	}
	for _, tc := range cases {
		got, err := node.Deserialize(tc.in)
		if err != nil {
			t.Errorf("Deserialize(%#v) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Deserialize(%#v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInteger_RejectsNonIntegral(t *testing.T) {
	node := colander.NewNode(colander.Integer{}, "i")
	for _, in := range []any{"forty-two", "1.5", json.Number("1.5"), float64(1.5), true} {
		_, err := node.Deserialize(in)
		inv, ok := colander.AsInvalid(err)
		if !ok || inv.Code != colander.CodeInvalidType {
			t.Errorf("Deserialize(%#v) = %v, want invalid_type", in, err)
		}
	}
}

func TestInteger_RoundTrip(t *testing.T) {
	node := colander.NewNode(colander.Integer{}, "i")
	for _, in := range []int{0, 1, -1, 1 << 30} {
		cstruct, err := node.Serialize(in)
		if err != nil {
			t.Fatalf("Serialize(%d) returned error: %v", in, err)
		}
		back, err := node.Deserialize(cstruct)
		if err != nil {
			t.Fatalf("Deserialize(%q) returned error: %v", cstruct, err)
		}
		if back != in {
			t.Fatalf("round trip %d -> %v", in, back)
		}
	}
}
