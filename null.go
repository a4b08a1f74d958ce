package colander

// nullValue is the dynamic type of the Null sentinel. Comparing any other
// interface value against Null is always false, so IsNull never panics even
// for incomparable dynamic types (maps, slices compare false by type).
type nullValue struct{}

func (nullValue) String() string { return "<colander.null>" }

// Null is the process-wide "no value supplied" sentinel. It is distinct from
// every domain value, including empty strings, zeros, and nil. Types check it
// as the first branch of Serialize; Deserialize implementations never see it
// because SchemaNode intercepts the sentinel before delegating.
var Null any = nullValue{}

// IsNull reports whether v is exactly the Null sentinel.
func IsNull(v any) bool { return v == Null }

// requiredValue marks the default missing policy: deserializing an absent
// value produces a CodeRequired error at that node.
type requiredValue struct{}

func (requiredValue) String() string { return "<colander.required>" }

// Required is the default missing policy for a SchemaNode.
var Required any = requiredValue{}

// dropValue marks the omission policy: a missing key/position is left out of
// the composite result entirely instead of surfacing as Null.
type dropValue struct{}

func (dropValue) String() string { return "<colander.drop>" }

// Drop is a missing/default policy that omits the value from composite output.
var Drop any = dropValue{}
