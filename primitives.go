package colander

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/tomster/colander/i18n"
)

// String converts between Go strings on both sides. The sentinel serializes
// to the empty string.
type String struct{}

func (String) Serialize(node *SchemaNode, appstruct any) (any, error) {
	if IsNull(appstruct) {
		return "", nil
	}
	s, ok := appstruct.(string)
	if !ok {
		return nil, NewInvalid(node, CodeInvalidType,
			i18n.T(CodeInvalidType, map[string]string{"expected": "string"}))
	}
	return s, nil
}

func (String) Deserialize(node *SchemaNode, cstruct any) (any, error) {
	s, ok := cstruct.(string)
	if !ok {
		return nil, NewInvalid(node, CodeInvalidType,
			i18n.T(CodeInvalidType, map[string]string{"expected": "string"}))
	}
	return s, nil
}

// Boolean converts between Go bools and their string tokens. Deserialize
// accepts strings only: the case-insensitive truthy tokens below yield true
// and any other string yields false. TrueVal/FalseVal/NullVal override the
// serialized tokens; their zero values mean "true"/"false"/"".
type Boolean struct {
	TrueVal  string
	FalseVal string
	NullVal  string
}

// truthy tokens accepted by Deserialize, lowercase.
var booleanTrue = map[string]struct{}{
	"true": {}, "yes": {}, "y": {}, "on": {}, "t": {}, "1": {},
}

func (b Boolean) Serialize(node *SchemaNode, appstruct any) (any, error) {
	if IsNull(appstruct) {
		return b.NullVal, nil
	}
	v, ok := appstruct.(bool)
	if !ok {
		return nil, NewInvalid(node, CodeInvalidType,
			i18n.T(CodeInvalidType, map[string]string{"expected": "bool"}))
	}
	if v {
		if b.TrueVal != "" {
			return b.TrueVal, nil
		}
		return "true", nil
	}
	if b.FalseVal != "" {
		return b.FalseVal, nil
	}
	return "false", nil
}

func (Boolean) Deserialize(node *SchemaNode, cstruct any) (any, error) {
	s, ok := cstruct.(string)
	if !ok {
		return nil, NewInvalid(node, CodeInvalidType,
			i18n.T(CodeInvalidType, map[string]string{"expected": "string"}))
	}
	_, truthy := booleanTrue[strings.ToLower(s)]
	return truthy, nil
}

// Integer converts between Go ints and their decimal string representation.
// Deserialize also accepts json.Number (as produced by the JSON source
// driver) and integral numeric cstructs (as produced by the YAML driver).
type Integer struct{}

func (Integer) Serialize(node *SchemaNode, appstruct any) (any, error) {
	if IsNull(appstruct) {
		return "", nil
	}
	switch v := appstruct.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case json.Number:
		if _, err := v.Int64(); err != nil {
			return nil, NewInvalid(node, CodeInvalidType,
				i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}))
		}
		return v.String(), nil
	default:
		return nil, NewInvalid(node, CodeInvalidType,
			i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}))
	}
}

func (Integer) Deserialize(node *SchemaNode, cstruct any) (any, error) {
	invalid := func() error {
		return NewInvalid(node, CodeInvalidType,
			i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}))
	}
	switch v := cstruct.(type) {
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, invalid()
		}
		return i, nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, invalid()
		}
		return int(i), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if math.Trunc(v) != v {
			return nil, invalid()
		}
		return int(v), nil
	default:
		return nil, invalid()
	}
}
