package arbor

import (
	"fmt"
)

// Predicate is a boolean test on tree members, used for searching.
type Predicate func(Leaf) bool

// Leaf is the interface every tree member implements.
//
// A leaf knows its parent node (if any) and is able to navigate to its
// siblings. Leaves do not hold children themselves; every structural change
// requested from a leaf is delegated to its parent node.
//
// Clients implement Leaf by embedding Element (or Branch, for members with
// children) into their own types.
type Leaf interface {
	HasParent() bool
	Parent() Node
	SetParent(Node) Leaf
	Index() int
	PreviousSibling() Leaf
	NextSibling() Leaf
	Append(Leaf) error
	Prepend(Leaf) error
	Remove() Leaf
	Is(Predicate) bool
	base() *Element
}

// Element is the base implementation of a terminal tree member.
//
// Elements have to be created with NewLeaf. Client types embedding Element
// have to call Init before calling any of the element's own tree operations;
// doing otherwise panics. Unbound values may still be handed to a node as a
// child, which binds them to the value passed.
type Element struct {
	self   Leaf // the outermost value embedding this element
	parent Node
}

var _ Leaf = (*Element)(nil)

// NewLeaf creates a terminal tree member. If parent is non-nil, the new leaf
// is appended to parent's children.
func NewLeaf(parent Node) *Element {
	e := &Element{}
	e.self = e
	if parent != nil {
		e.SetParent(parent)
	}
	return e
}

// Init binds an element to the value embedding it. Tree operations will
// from then on report self wherever this element is referred to.
//
// Init panics if self does not embed e.
func (e *Element) Init(self Leaf) {
	assert(self != nil && self.base() == e, "Init: self does not embed this element")
	e.self = self
}

func (e *Element) base() *Element {
	return e
}

// me returns the value clients know this element by.
func (e *Element) me() Leaf {
	assert(e.self != nil, "element is not bound: call Init or create it with NewLeaf")
	return e.self
}

// canonical maps a member to the value it has been bound to. Members which
// have never been bound get bound to l.
func canonical(l Leaf) Leaf {
	if l == nil {
		return nil
	}
	e := l.base()
	if e.self == nil {
		e.self = l
	}
	return e.self
}

// HasParent reports whether this leaf is attached to a node.
func (e *Element) HasParent() bool {
	return e.parent != nil
}

// Parent returns the node this leaf is a child of, or nil.
func (e *Element) Parent() Node {
	return e.parent
}

// SetParent moves this leaf to the end of parent's children.
// If the leaf currently is attached to another node, it will be detached
// first. Setting parent to nil detaches the leaf.
// Setting the current parent again does nothing.
//
// SetParent returns the leaf itself.
func (e *Element) SetParent(parent Node) Leaf {
	me := e.me()
	if parent != nil {
		parent = canonicalNode(parent)
	}
	if e.parent == parent {
		return me
	}
	if e.parent != nil && e.parent.HasChild(me) {
		e.parent.RemoveChild(me) // will clear e.parent
	}
	if parent != nil && !parent.HasChild(me) {
		parent.AppendChild(me)
	}
	return me
}

// Index returns the position of this leaf within its parent's children,
// or -1 if the leaf has no parent.
func (e *Element) Index() int {
	if e.parent == nil {
		return -1
	}
	return e.parent.ChildIndex(e.me())
}

// PreviousSibling returns the child of this leaf's parent immediately
// before this leaf, or nil.
func (e *Element) PreviousSibling() Leaf {
	idx := e.Index()
	if idx <= 0 { // not attached, or first child
		return nil
	}
	sibling, _ := e.parent.ChildAt(idx - 1)
	return sibling
}

// NextSibling returns the child of this leaf's parent immediately
// after this leaf, or nil.
func (e *Element) NextSibling() Leaf {
	idx := e.Index()
	if idx < 0 || idx >= e.parent.ChildCount()-1 {
		return nil
	}
	sibling, _ := e.parent.ChildAt(idx + 1)
	return sibling
}

// Append inserts child into this leaf's parent, immediately after this leaf.
// It is an error to call Append for a leaf without a parent.
func (e *Element) Append(child Leaf) error {
	if e.parent == nil {
		return fmt.Errorf("%w: cannot append next to a leaf without parent", ErrStructure)
	}
	return e.parent.InsertAfter(e.me(), child)
}

// Prepend inserts child into this leaf's parent, immediately before this leaf.
// It is an error to call Prepend for a leaf without a parent.
func (e *Element) Prepend(child Leaf) error {
	if e.parent == nil {
		return fmt.Errorf("%w: cannot prepend next to a leaf without parent", ErrStructure)
	}
	return e.parent.InsertBefore(e.me(), child)
}

// Remove detaches this leaf from its parent. Removing a leaf without a parent
// does nothing.
func (e *Element) Remove() Leaf {
	me := e.me()
	if e.parent != nil {
		e.parent.RemoveChild(me)
	}
	return me
}

// Is evaluates predicate p for this leaf.
// p must not be nil.
func (e *Element) Is(p Predicate) bool {
	mustPredicate(p, "Is")
	return p(e.me())
}

func mustPredicate(p Predicate, op string) {
	if p == nil {
		panic(fmt.Errorf("%w: %s called with nil predicate", ErrInvalidArgument, op))
	}
}

// --- Type tests ------------------------------------------------------------

// IsA reports whether l is of (or implements) type T.
func IsA[T any](l Leaf) bool {
	_, ok := l.(T)
	return ok
}

// InstanceOf returns a predicate testing for type T.
//
//	headings := doc.FindAll(arbor.InstanceOf[*Heading](), arbor.Unbounded)
func InstanceOf[T any]() Predicate {
	return func(l Leaf) bool {
		return IsA[T](l)
	}
}

// IsNode reports whether l is able to hold children.
func IsNode(l Leaf) bool {
	return IsA[Node](l)
}

// Not negates a predicate.
func Not(p Predicate) Predicate {
	mustPredicate(p, "Not")
	return func(l Leaf) bool {
		return !p(l)
	}
}

// And combines predicates; the result holds if all of them hold.
func And(preds ...Predicate) Predicate {
	for _, p := range preds {
		mustPredicate(p, "And")
	}
	return func(l Leaf) bool {
		for _, p := range preds {
			if !p(l) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates; the result holds if any of them holds.
func Or(preds ...Predicate) Predicate {
	for _, p := range preds {
		mustPredicate(p, "Or")
	}
	return func(l Leaf) bool {
		for _, p := range preds {
			if p(l) {
				return true
			}
		}
		return false
	}
}

// Any is a predicate which holds for every tree member.
func Any(Leaf) bool {
	return true
}
