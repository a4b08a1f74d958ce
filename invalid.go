package colander

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeArityMismatch = "arity_mismatch"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeInvalidEnum   = "invalid_enum"
	CodePattern       = "pattern"
	CodeLuhn          = "luhn"
	CodeParseError    = "parse_error"
)

// PathSeparator joins node names into the flattened paths of Describe.
const PathSeparator = "."

// Invalid is the single error value produced by schema operations. A report
// is either a leaf (Code/Message set) or a composite (named child reports),
// never both. Composites keep children in declaration/positional order.
type Invalid struct {
	Node    *SchemaNode // originating node; not owned
	Code    string
	Message string

	order  []string
	byName map[string]*Invalid
}

// NewInvalid creates a leaf report attributed to node.
func NewInvalid(node *SchemaNode, code, message string) *Invalid {
	return &Invalid{Node: node, Code: code, Message: message}
}

// IsLeaf reports whether e carries a message rather than child reports.
func (e *Invalid) IsLeaf() bool { return len(e.order) == 0 }

// ChildNames returns the names of child reports in declaration order.
func (e *Invalid) ChildNames() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Child returns the child report stored under name, or nil.
func (e *Invalid) Child(name string) *Invalid {
	if e.byName == nil {
		return nil
	}
	return e.byName[name]
}

// Describe flattens the report into a mapping from dotted path to message.
// Path segments are child names (numeric indexes for Sequence/Tuple elements)
// joined by PathSeparator; the root node's own name leads when it is set.
func (e *Invalid) Describe() map[string]string {
	out := make(map[string]string)
	prefix := ""
	if e.Node != nil {
		prefix = e.Node.Name()
	}
	e.describe(prefix, out)
	return out
}

func (e *Invalid) describe(prefix string, out map[string]string) {
	if e.IsLeaf() {
		out[prefix] = e.Message
		return
	}
	for _, name := range e.order {
		p := name
		if prefix != "" {
			p = prefix + PathSeparator + name
		}
		e.byName[name].describe(p, out)
	}
}

// Error summarizes the first few violations.
func (e *Invalid) Error() string {
	type flat struct {
		path string
		code string
	}
	var leaves []flat
	var walk func(inv *Invalid, prefix string)
	walk = func(inv *Invalid, prefix string) {
		if inv.IsLeaf() {
			leaves = append(leaves, flat{path: prefix, code: inv.Code})
			return
		}
		for _, name := range inv.order {
			p := name
			if prefix != "" {
				p = prefix + PathSeparator + name
			}
			walk(inv.byName[name], p)
		}
	}
	prefix := ""
	if e.Node != nil {
		prefix = e.Node.Name()
	}
	walk(e, prefix)

	if len(leaves) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(leaves)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		path := leaves[i].path
		if path == "" {
			path = PathSeparator
		}
		// e.g. invalid_type at person.age
		fmt.Fprintf(b, "%s at %s", leaves[i].code, path)
	}
	if n := len(leaves); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsInvalid extracts an *Invalid from an error using errors.As internally.
func AsInvalid(err error) (*Invalid, bool) {
	if err == nil {
		return nil, false
	}
	var inv *Invalid
	if errors.As(err, &inv) {
		return inv, true
	}
	return nil, false
}

// Aggregate is the ledger composite Types and validator combinators use to
// collect child failures. Every child is attempted and every failure recorded;
// an empty ledger means success, never an empty report.
type Aggregate struct {
	node   *SchemaNode
	order  []string
	byName map[string]*Invalid
}

// NewAggregate creates an empty ledger attributed to node.
func NewAggregate(node *SchemaNode) *Aggregate {
	return &Aggregate{node: node}
}

// Add records a child failure under name. Foreign errors (not *Invalid) are
// wrapped into a CodeParseError leaf so no failure is ever discarded.
func (a *Aggregate) Add(name string, err error) {
	if err == nil {
		return
	}
	child, ok := AsInvalid(err)
	if !ok {
		child = NewInvalid(a.node, CodeParseError, err.Error())
	}
	if a.byName == nil {
		a.byName = make(map[string]*Invalid)
	}
	if _, exists := a.byName[name]; !exists {
		a.order = append(a.order, name)
	}
	a.byName[name] = child
}

// Len returns the number of recorded child failures.
func (a *Aggregate) Len() int { return len(a.order) }

// Invalid builds the merged composite report, or nil when no failure was
// recorded. Each call produces a fresh report; recorded children are shared
// by reference and never mutated afterwards.
func (a *Aggregate) Invalid() *Invalid {
	if len(a.order) == 0 {
		return nil
	}
	order := make([]string, len(a.order))
	copy(order, a.order)
	byName := make(map[string]*Invalid, len(a.byName))
	for k, v := range a.byName {
		byName[k] = v
	}
	return &Invalid{Node: a.node, order: order, byName: byName}
}

// Err returns the merged report as an error, or nil on success.
func (a *Aggregate) Err() error {
	if inv := a.Invalid(); inv != nil {
		return inv
	}
	return nil
}
