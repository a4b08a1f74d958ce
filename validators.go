package colander

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tomster/colander/i18n"
)

// All runs every sub-validator and aggregates failures into a composite
// report keyed by sub-validator position, the same way Mapping aggregates
// children. It succeeds only when every sub-validator succeeds.
func All(vs ...Validator) Validator { return allValidator(vs) }

type allValidator []Validator

func (a allValidator) Validate(node *SchemaNode, value any) error {
	agg := NewAggregate(node)
	for i, v := range a {
		if err := v.Validate(node, value); err != nil {
			agg.Add(strconv.Itoa(i), err)
		}
	}
	return agg.Err()
}

// Any succeeds as soon as one sub-validator succeeds. On complete failure it
// reports every sub-validator's failure, keyed by position.
func Any(vs ...Validator) Validator { return anyValidator(vs) }

type anyValidator []Validator

func (a anyValidator) Validate(node *SchemaNode, value any) error {
	agg := NewAggregate(node)
	for i, v := range a {
		err := v.Validate(node, value)
		if err == nil {
			return nil
		}
		agg.Add(strconv.Itoa(i), err)
	}
	return agg.Err()
}

// Length checks the element count of a string or []any value. A negative
// bound disables that side.
func Length(min, max int) Validator {
	return ValidatorFunc(func(node *SchemaNode, value any) error {
		var n int
		switch v := value.(type) {
		case string:
			n = len(v)
		case []any:
			n = len(v)
		default:
			return NewInvalid(node, CodeInvalidType,
				i18n.T(CodeInvalidType, map[string]string{"expected": "string or sequence"}))
		}
		if min >= 0 && n < min {
			return NewInvalid(node, CodeTooShort,
				i18n.T(CodeTooShort, map[string]string{"min": strconv.Itoa(min)}))
		}
		if max >= 0 && n > max {
			return NewInvalid(node, CodeTooLong,
				i18n.T(CodeTooLong, map[string]string{"max": strconv.Itoa(max)}))
		}
		return nil
	})
}

// Range checks that an int value lies within [min, max].
func Range(min, max int) Validator {
	return ValidatorFunc(func(node *SchemaNode, value any) error {
		v, ok := value.(int)
		if !ok {
			return NewInvalid(node, CodeInvalidType,
				i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}))
		}
		if v < min {
			return NewInvalid(node, CodeTooSmall,
				i18n.T(CodeTooSmall, map[string]string{
					"value": strconv.Itoa(v), "min": strconv.Itoa(min),
				}))
		}
		if v > max {
			return NewInvalid(node, CodeTooBig,
				i18n.T(CodeTooBig, map[string]string{
					"value": strconv.Itoa(v), "max": strconv.Itoa(max),
				}))
		}
		return nil
	})
}

// OneOf checks that a string value is one of the given choices.
func OneOf(choices ...string) Validator {
	set := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		set[c] = struct{}{}
	}
	rendered := strings.Join(choices, ", ")
	return ValidatorFunc(func(node *SchemaNode, value any) error {
		s, ok := value.(string)
		if !ok {
			return NewInvalid(node, CodeInvalidType,
				i18n.T(CodeInvalidType, map[string]string{"expected": "string"}))
		}
		if _, found := set[s]; !found {
			return NewInvalid(node, CodeInvalidEnum,
				i18n.T(CodeInvalidEnum, map[string]string{"value": s, "choices": rendered}))
		}
		return nil
	})
}

// Regex checks a string value against the given pattern. The pattern is
// compiled at construction; an invalid pattern panics, matching
// regexp.MustCompile semantics for schema declaration time.
func Regex(pattern string) Validator {
	re := regexp.MustCompile(pattern)
	return ValidatorFunc(func(node *SchemaNode, value any) error {
		s, ok := value.(string)
		if !ok {
			return NewInvalid(node, CodeInvalidType,
				i18n.T(CodeInvalidType, map[string]string{"expected": "string"}))
		}
		if !re.MatchString(s) {
			return NewInvalid(node, CodePattern, i18n.T(CodePattern, nil))
		}
		return nil
	})
}

// Luhn checks a digit string with the Luhn checksum used by payment card
// numbers.
func Luhn() Validator {
	return ValidatorFunc(func(node *SchemaNode, value any) error {
		s, ok := value.(string)
		if !ok {
			return NewInvalid(node, CodeInvalidType,
				i18n.T(CodeInvalidType, map[string]string{"expected": "string"}))
		}
		if !luhnOK(s) {
			return NewInvalid(node, CodeLuhn,
				i18n.T(CodeLuhn, map[string]string{"value": s}))
		}
		return nil
	})
}

func luhnOK(s string) bool {
	if s == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
