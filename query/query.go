/*
Package query compiles textual expressions into arbor search predicates.

Expressions use the syntax of github.com/expr-lang/expr and have to evaluate
to a boolean. Every tree member is presented to an expression as a set of
variables:

	kind        arbor.Kind of the member, e.g. "Paragraph"
	index       position within the parent, -1 for roots
	depth       number of ancestors
	childCount  number of children, 0 for terminal leaves
	isNode      whether the member may hold children
	hasParent   whether the member is attached
	path        position as rendered by arbor.Path

Members implementing Attributer contribute additional variables. Variables
which are not defined for a member evaluate to nil.

	pred, err := query.Compile(`kind == "Element" && tag in ["h1", "h2"]`)
	headings := root.FindAll(pred, arbor.Unbounded)

Two more variables describe the context of a member:

	label       arbor.Label of the member
	parent      the variables of the member's parent (empty for roots)

	pred, err := query.Compile(`parent.tag == "ul" && index == 0`)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package query

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// Attributer is implemented by tree members which expose named attributes
// to queries. Attribute names must not collide with the built-in variables.
type Attributer interface {
	Attributes() map[string]any
}

// Query is a compiled expression.
type Query struct {
	source  string
	program *vm.Program
}

// Compile compiles src into a query. Queries evaluating to something other
// than a boolean are rejected by Match.
func Compile(src string) (*Query, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("%w: empty query", arbor.ErrInvalidArgument)
	}
	program, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %v", arbor.ErrInvalidArgument, src, err)
	}
	return &Query{source: src, program: program}, nil
}

// MustCompile is like Compile, but panics if src cannot be compiled.
func MustCompile(src string) *Query {
	q, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return q
}

// String returns the source of q.
func (q *Query) String() string {
	return q.source
}

// Match evaluates q for l.
func (q *Query) Match(l arbor.Leaf) (bool, error) {
	out, err := expr.Run(q.program, env(l))
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("query %q returned %T", q.source, out)
	}
	return b, nil
}

// Predicate returns q as a search predicate. Evaluation errors are traced
// and count as no match.
func (q *Query) Predicate() arbor.Predicate {
	return func(l arbor.Leaf) bool {
		ok, err := q.Match(l)
		if err != nil {
			tracer().Errorf("query %q: %v", q.source, err)
			return false
		}
		return ok
	}
}

// Find compiles src and runs it on the subtree rooted at n (including n).
func Find(n arbor.Node, src string, maxDepth int) ([]arbor.Leaf, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return n.FindAll(q.Predicate(), maxDepth), nil
}

// --- Environment -----------------------------------------------------------

func env(l arbor.Leaf) map[string]any {
	m := variables(l)
	m["label"] = arbor.Label(l)
	if l.HasParent() {
		m["parent"] = variables(l.Parent())
	} else {
		m["parent"] = map[string]any{}
	}
	return m
}

func variables(l arbor.Leaf) map[string]any {
	m := make(map[string]any)
	if a, ok := l.(Attributer); ok {
		for k, v := range a.Attributes() {
			m[k] = v
		}
	}
	childCount := 0
	n, isNode := l.(arbor.Node)
	if isNode {
		childCount = n.ChildCount()
	}
	m["kind"] = arbor.Kind(l)
	m["index"] = l.Index()
	m["depth"] = arbor.Depth(l)
	m["childCount"] = childCount
	m["isNode"] = isNode
	m["hasParent"] = l.HasParent()
	m["path"] = arbor.Path(l)
	return m
}

// envTypes declares the types of the built-in variables to the compiler.
// Attributes stay untyped.
var envTypes = map[string]any{
	"kind":       "",
	"index":      0,
	"depth":      0,
	"childCount": 0,
	"isNode":     false,
	"hasParent":  false,
	"path":       "",
	"label":      "",
	"parent":     map[string]any{},
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(envTypes),
		expr.AllowUndefinedVariables(),
	}
}
