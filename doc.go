package colander

// Package colander provides:
//
// - Schema trees of typed nodes that convert between application values
//   (appstructs) and serialization-friendly values (cstructs)
// - Whole-subtree error aggregation via Invalid (dotted path, code, message)
// - A distinguished Null sentinel threaded uniformly through every Type
// - Validator composition (All/Any) orthogonal to Types
//
// Design policy:
// - Keep only public APIs in the root package; the schema tree is immutable
//   after construction and safe for concurrent Serialize/Deserialize calls.
// - Place input decoders under source/, HTTP helpers under middleware/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	person := colander.NewNode(colander.Mapping{}, "person", colander.Children(
//		colander.NewNode(colander.String{}, "name"),
//		colander.NewNode(colander.Integer{}, "age",
//			colander.WithValidator(colander.Range(0, 200))),
//	))
//
//	appstruct, err := person.Deserialize(cstruct)
//	if inv, ok := colander.AsInvalid(err); ok {
//		for path, msg := range inv.Describe() {
//			// render path -> msg
//		}
//	}
