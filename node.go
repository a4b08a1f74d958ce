package colander

import "github.com/tomster/colander/i18n"

// SchemaNode is one unit of the schema tree: a Type, optional child nodes
// (meaningful only for composite Types), an optional Validator, a name used
// as the path segment in error reporting, and the default/missing policies.
// Nodes are immutable after construction and safe to share across any number
// of concurrent Serialize/Deserialize calls.
type SchemaNode struct {
	typ       Type
	name      string
	children  []*SchemaNode
	byName    map[string]*SchemaNode
	validator Validator
	def       any // serialize-side substitute for the sentinel
	missing   any // deserialize-side policy: Required, Drop, or a default
}

// NodeOption configures a SchemaNode during construction.
type NodeOption func(*SchemaNode)

// Children appends child nodes in declaration order.
func Children(nodes ...*SchemaNode) NodeOption {
	return func(n *SchemaNode) { n.children = append(n.children, nodes...) }
}

// WithValidator attaches a validator invoked after successful deserialization.
func WithValidator(v Validator) NodeOption {
	return func(n *SchemaNode) { n.validator = v }
}

// WithDefault sets the serialize-side default substituted for the sentinel.
func WithDefault(v any) NodeOption {
	return func(n *SchemaNode) { n.def = v }
}

// WithMissing sets the deserialize-side policy for absent values: Required
// (the default), Drop, the Null sentinel, or any concrete default value.
func WithMissing(v any) NodeOption {
	return func(n *SchemaNode) { n.missing = v }
}

// NewNode builds a schema node. Sibling names must be unique; the last child
// registered under a name wins for lookup, matching declaration order for
// iteration either way.
func NewNode(t Type, name string, opts ...NodeOption) *SchemaNode {
	n := &SchemaNode{typ: t, name: name, def: Null, missing: Required}
	for _, opt := range opts {
		opt(n)
	}
	if len(n.children) > 0 {
		n.byName = make(map[string]*SchemaNode, len(n.children))
		for _, c := range n.children {
			n.byName[c.name] = c
		}
	}
	return n
}

// Name returns the node's path segment.
func (n *SchemaNode) Name() string { return n.name }

// Type returns the node's conversion behavior.
func (n *SchemaNode) Type() Type { return n.typ }

// Children returns the child nodes in declaration order. Callers must not
// mutate the returned slice.
func (n *SchemaNode) Children() []*SchemaNode { return n.children }

// Child returns the child registered under name, or nil.
func (n *SchemaNode) Child(name string) *SchemaNode {
	if n.byName == nil {
		return nil
	}
	return n.byName[name]
}

// Serialize converts an appstruct into a cstruct. The sentinel resolves
// through the node's default first; validators never run on serialize. A
// default of Drop short-circuits to the omission marker so composite parents
// leave the value out entirely.
func (n *SchemaNode) Serialize(appstruct any) (any, error) {
	if IsNull(appstruct) {
		appstruct = n.def
	}
	if appstruct == Drop {
		return Drop, nil
	}
	return n.typ.Serialize(n, appstruct)
}

// Deserialize converts a cstruct into an appstruct. Sentinel input resolves
// through the missing policy without touching the Type or Validator;
// structural failures from the Type propagate before the Validator runs.
func (n *SchemaNode) Deserialize(cstruct any) (any, error) {
	if IsNull(cstruct) {
		if n.missing == Required {
			return nil, NewInvalid(n, CodeRequired, i18n.T(CodeRequired, nil))
		}
		return n.missing, nil
	}
	value, err := n.typ.Deserialize(n, cstruct)
	if err != nil {
		return nil, err
	}
	if n.validator != nil {
		if verr := n.validator.Validate(n, value); verr != nil {
			return nil, verr
		}
	}
	return value, nil
}
