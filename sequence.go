package colander

import (
	"strconv"

	"github.com/tomster/colander/i18n"
)

// Sequence converts homogeneous repeated structure: every element of the
// input goes through the node's single child template, with the element's
// position (as a string) serving as its path segment. An empty input converts
// to an empty output without error.
type Sequence struct{}

func (s Sequence) Serialize(node *SchemaNode, appstruct any) (any, error) {
	if IsNull(appstruct) {
		return []any{}, nil
	}
	return s.impl(node, appstruct, (*SchemaNode).Serialize)
}

func (s Sequence) Deserialize(node *SchemaNode, cstruct any) (any, error) {
	return s.impl(node, cstruct, (*SchemaNode).Deserialize)
}

func (s Sequence) impl(node *SchemaNode, value any, visit func(*SchemaNode, any) (any, error)) (any, error) {
	tmpl, err := s.template(node)
	if err != nil {
		return nil, err
	}
	src, ok := value.([]any)
	if !ok {
		return nil, NewInvalid(node, CodeInvalidType,
			i18n.T(CodeInvalidType, map[string]string{"expected": "sequence"}))
	}

	out := make([]any, 0, len(src))
	agg := NewAggregate(node)
	for i, elem := range src {
		v, verr := visit(tmpl, elem)
		if verr != nil {
			agg.Add(strconv.Itoa(i), verr)
			continue
		}
		if v == Drop {
			continue
		}
		out = append(out, v)
	}
	if err := agg.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// template returns the single child node all elements share.
func (s Sequence) template(node *SchemaNode) (*SchemaNode, error) {
	children := node.Children()
	if len(children) != 1 {
		return nil, NewInvalid(node, CodeInvalidType,
			"sequence node requires exactly one child node")
	}
	return children[0], nil
}
