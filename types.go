package colander

// Type supplies a SchemaNode's conversion behavior. Serialize turns an
// appstruct into a cstruct; Deserialize turns a cstruct into an appstruct.
// Serialize implementations must handle the Null sentinel as their first
// branch and return the type's serialized null representation without error.
// Deserialize implementations never receive the sentinel; SchemaNode
// intercepts it before delegating.
type Type interface {
	Serialize(node *SchemaNode, appstruct any) (any, error)
	Deserialize(node *SchemaNode, cstruct any) (any, error)
}

// Validator checks an already-converted value. It must not coerce or convert;
// a failure is reported as an *Invalid for exactly the value it was given.
// Validators may hold their own configuration (bounds, patterns) but no node
// references across calls.
type Validator interface {
	Validate(node *SchemaNode, value any) error
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(node *SchemaNode, value any) error

func (f ValidatorFunc) Validate(node *SchemaNode, value any) error { return f(node, value) }

// UnknownPolicy controls how Mapping handles input keys with no matching child.
type UnknownPolicy int

const (
	UnknownIgnore   UnknownPolicy = iota // Drop unknown keys silently.
	UnknownRaise                         // Reject unknown keys with an error.
	UnknownPreserve                      // Copy unknown keys through untouched.
)
