package colander

import (
	"strconv"

	"github.com/tomster/colander/i18n"
)

// Tuple converts heterogeneous fixed-arity structure: each position has its
// own distinct child node. An arity mismatch between the input and the
// declared children is a leaf error on the tuple node itself; children are
// not consulted in that case.
type Tuple struct{}

func (t Tuple) Serialize(node *SchemaNode, appstruct any) (any, error) {
	// No fixed-arity value can represent the sentinel; pass it through.
	if IsNull(appstruct) {
		return Null, nil
	}
	return t.impl(node, appstruct, (*SchemaNode).Serialize)
}

func (t Tuple) Deserialize(node *SchemaNode, cstruct any) (any, error) {
	return t.impl(node, cstruct, (*SchemaNode).Deserialize)
}

func (t Tuple) impl(node *SchemaNode, value any, visit func(*SchemaNode, any) (any, error)) (any, error) {
	src, ok := value.([]any)
	if !ok {
		return nil, NewInvalid(node, CodeInvalidType,
			i18n.T(CodeInvalidType, map[string]string{"expected": "tuple"}))
	}
	children := node.Children()
	if len(src) != len(children) {
		return nil, NewInvalid(node, CodeArityMismatch,
			i18n.T(CodeArityMismatch, map[string]string{
				"expected": strconv.Itoa(len(children)),
				"got":      strconv.Itoa(len(src)),
			}))
	}

	out := make([]any, 0, len(children))
	agg := NewAggregate(node)
	for i, child := range children {
		v, err := visit(child, src[i])
		if err != nil {
			agg.Add(strconv.Itoa(i), err)
			continue
		}
		out = append(out, v)
	}
	if err := agg.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
