package colander

import (
	"sort"

	"github.com/tomster/colander/i18n"
)

// Mapping converts between string-keyed containers using the node's children
// as named members. Both directions visit every child in declaration order
// and merge every failure into one composite report.
type Mapping struct {
	// Unknown controls handling of input keys with no matching child.
	// The zero value ignores them.
	Unknown UnknownPolicy
}

func (m Mapping) Serialize(node *SchemaNode, appstruct any) (any, error) {
	if IsNull(appstruct) {
		appstruct = map[string]any{}
	}
	return m.impl(node, appstruct, (*SchemaNode).Serialize)
}

func (m Mapping) Deserialize(node *SchemaNode, cstruct any) (any, error) {
	return m.impl(node, cstruct, (*SchemaNode).Deserialize)
}

// impl is the shared traversal for both directions; visit is the child entry
// point to call for each member.
func (m Mapping) impl(node *SchemaNode, value any, visit func(*SchemaNode, any) (any, error)) (any, error) {
	src, ok := value.(map[string]any)
	if !ok {
		return nil, NewInvalid(node, CodeInvalidType,
			i18n.T(CodeInvalidType, map[string]string{"expected": "mapping"}))
	}

	out := make(map[string]any, len(node.Children()))
	agg := NewAggregate(node)
	for _, child := range node.Children() {
		sub, exists := src[child.Name()]
		if !exists {
			sub = Null
		}
		v, err := visit(child, sub)
		if err != nil {
			agg.Add(child.Name(), err)
			continue
		}
		if v == Drop {
			continue
		}
		out[child.Name()] = v
	}

	m.applyUnknown(node, src, out, agg)

	if err := agg.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// applyUnknown handles input keys without a matching child. Unknown keys are
// visited in sorted order so they land after the declared children in the
// merged report.
func (m Mapping) applyUnknown(node *SchemaNode, src, out map[string]any, agg *Aggregate) {
	if m.Unknown == UnknownIgnore {
		return
	}
	var uks []string
	for k := range src {
		if node.Child(k) == nil {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	for _, k := range uks {
		switch m.Unknown {
		case UnknownRaise:
			agg.Add(k, NewInvalid(node, CodeUnknownKey, i18n.T(CodeUnknownKey, nil)))
		case UnknownPreserve:
			out[k] = src[k]
		}
	}
}
