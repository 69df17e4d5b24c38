package arbor

import "slices"

// MutationKind distinguishes structural changes of a tree.
type MutationKind uint8

// Members may be attached to or detached from a node.
const (
	Attached MutationKind = iota + 1
	Detached
)

func (k MutationKind) String() string {
	switch k {
	case Attached:
		return "attached"
	case Detached:
		return "detached"
	}
	return "unknown"
}

// Mutation describes a single structural change: Child has been attached to
// or detached from Parent, at position Index.
//
// Moving a member results in two mutations, a detach followed by an attach.
type Mutation struct {
	Kind   MutationKind
	Parent Node
	Child  Leaf
	Index  int
}

type observer struct {
	fn func(Mutation)
}

// Observe registers fn to be called for every mutation within the subtree
// rooted at n, including mutations of n's own children. fn is called
// synchronously, after the mutation has been performed. fn must not change
// the tree.
//
// Observe returns a function to unregister fn.
func Observe(n Node, fn func(Mutation)) (cancel func()) {
	assert(n != nil, "Observe: node is nil")
	assert(fn != nil, "Observe: callback is nil")
	b := n.branch()
	o := &observer{fn: fn}
	b.observers = append(b.observers, o)
	return func() {
		b.observers = slices.DeleteFunc(b.observers, func(other *observer) bool {
			return other == o
		})
	}
}

// notify reports a mutation to observers of b and of all of b's ancestors.
func (b *Branch) notify(kind MutationKind, child Leaf, index int) {
	m := Mutation{Kind: kind, Parent: b.self(), Child: child, Index: index}
	for n := m.Parent; n != nil; n = n.Parent() {
		// observers may cancel themselves while being called
		for _, o := range slices.Clone(n.branch().observers) {
			o.fn(m)
		}
	}
}
