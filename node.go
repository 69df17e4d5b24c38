package arbor

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"
)

// Node is a Leaf which owns an ordered sequence of children.
//
// Nodes keep their children consistent with the children's parent links:
// every child of a node reports this node as its parent, and a member is a
// child of at most one node. Inserting a member which is attached elsewhere
// moves it. Inserting a member which already is a child of the node moves it
// to the new position.
//
// Client types implement Node by embedding Branch.
type Node interface {
	Leaf
	HasChildren() bool
	ChildCount() int
	Len() int
	Children() []Leaf
	ChildIndex(Leaf) int
	HasChild(Leaf) bool
	HasChildAt(int) bool
	ChildAt(int) (Leaf, error)
	SetChildren(...Leaf) Node
	RemoveChildren() Node
	AppendChild(Leaf) Node
	PrependChild(Leaf) Node
	RemoveChild(Leaf) Node
	RemoveChildAt(int) error
	InsertBefore(anchor Leaf, child Leaf) error
	InsertAfter(anchor Leaf, child Leaf) error
	Set(int, Leaf) error
	Delete(int) error
	All() iter.Seq2[int, Leaf]
	FindChildren(Predicate, int) iter.Seq[Leaf]
	Find(Predicate, int) iter.Seq[Leaf]
	FindChildrenAll(Predicate, int) []Leaf
	FindAll(Predicate, int) []Leaf
	branch() *Branch
}

// Branch is the base implementation of a tree member with children.
//
// Branches have to be created with NewNode, or, if embedded in client
// types, be bound with Init before use.
type Branch struct {
	Element
	children  []Leaf
	observers []*observer
}

var _ Node = (*Branch)(nil)

// NewNode creates a node with optional initial children. If parent is
// non-nil, the new node is appended to parent's children.
func NewNode(parent Node, children ...Leaf) *Branch {
	b := &Branch{}
	b.Element.self = b
	if parent != nil {
		b.SetParent(parent)
	}
	if len(children) > 0 {
		b.SetChildren(children...)
	}
	return b
}

// Init binds a branch to the value embedding it. Tree operations will
// from then on report self wherever this branch is referred to.
//
// Init panics if self does not embed b.
func (b *Branch) Init(self Node) {
	assert(self != nil && self.branch() == b, "Init: self does not embed this branch")
	b.Element.self = self
}

func (b *Branch) branch() *Branch {
	return b
}

// self returns the node value clients know this branch by.
func (b *Branch) self() Node {
	assert(b.Element.self != nil, "branch is not bound: call Init or create it with NewNode")
	n, ok := b.Element.self.(Node)
	assert(ok, "branch is bound to a value which is not a node")
	return n
}

func canonicalNode(n Node) Node {
	return canonical(n).(Node)
}

// SetParent moves this node to the end of parent's children.
// See Element.SetParent.
func (b *Branch) SetParent(parent Node) Leaf {
	b.self()
	return b.Element.SetParent(parent)
}

// Is evaluates predicate p for this node.
// p must not be nil.
func (b *Branch) Is(p Predicate) bool {
	mustPredicate(p, "Is")
	return p(b.self())
}

// HasChildren reports whether this node has at least one child.
func (b *Branch) HasChildren() bool {
	return len(b.children) > 0
}

// ChildCount returns the number of children of this node.
func (b *Branch) ChildCount() int {
	return len(b.children)
}

// Len is a synonym for ChildCount.
func (b *Branch) Len() int {
	return len(b.children)
}

// Children returns a copy of the sequence of children of this node.
// Modifying the returned slice will not change the node.
func (b *Branch) Children() []Leaf {
	return slices.Clone(b.children)
}

// ChildIndex returns the position of child within this node's children,
// or -1 if child is not a child of this node.
func (b *Branch) ChildIndex(child Leaf) int {
	if child == nil {
		return -1
	}
	return slices.Index(b.children, canonical(child))
}

// HasChild reports whether child is a child of this node.
func (b *Branch) HasChild(child Leaf) bool {
	return b.ChildIndex(child) >= 0
}

// HasChildAt reports whether index is a valid child position.
func (b *Branch) HasChildAt(index int) bool {
	return index >= 0 && index < len(b.children)
}

// ChildAt returns the child at position index, or ErrIndexOutOfRange.
func (b *Branch) ChildAt(index int) (Leaf, error) {
	if !b.HasChildAt(index) {
		return nil, fmt.Errorf("%w: no child at index %d (child count is %d)",
			ErrIndexOutOfRange, index, len(b.children))
	}
	return b.children[index], nil
}

// SetChildren replaces all children of this node. Current children are
// detached first, then children are appended in order.
func (b *Branch) SetChildren(children ...Leaf) Node {
	b.RemoveChildren()
	for _, child := range children {
		b.AppendChild(child)
	}
	return b.self()
}

// RemoveChildren detaches all children of this node.
func (b *Branch) RemoveChildren() Node {
	for _, child := range slices.Clone(b.children) {
		b.detach(child)
	}
	return b.self()
}

// AppendChild inserts child as the last child of this node. It panics if
// child is this node or one of its ancestors.
func (b *Branch) AppendChild(child Leaf) Node {
	if err := b.attach(child, func() int { return len(b.children) }); err != nil {
		panic(err)
	}
	return b.self()
}

// PrependChild inserts child as the first child of this node.
func (b *Branch) PrependChild(child Leaf) Node {
	if err := b.attach(child, func() int { return 0 }); err != nil {
		panic(err)
	}
	return b.self()
}

// RemoveChild detaches child from this node. If child is not a child of
// this node, nothing happens.
func (b *Branch) RemoveChild(child Leaf) Node {
	if child != nil {
		b.detach(canonical(child))
	}
	return b.self()
}

// RemoveChildAt detaches the child at position index, or returns
// ErrIndexOutOfRange, leaving the children untouched.
func (b *Branch) RemoveChildAt(index int) error {
	child, err := b.ChildAt(index)
	if err != nil {
		return err
	}
	b.detach(child)
	return nil
}

// InsertBefore inserts child immediately before anchor. anchor must be
// a child of this node, otherwise ErrStructure is returned.
// If child already is a child of this node, it is moved. Inserting this
// node or one of its ancestors fails with ErrStructure.
func (b *Branch) InsertBefore(anchor Leaf, child Leaf) error {
	return b.insertNextTo(anchor, child, 0, "before")
}

// InsertAfter inserts child immediately after anchor. anchor must be
// a child of this node, otherwise ErrStructure is returned.
// If child already is a child of this node, it is moved. See InsertBefore.
func (b *Branch) InsertAfter(anchor Leaf, child Leaf) error {
	return b.insertNextTo(anchor, child, 1, "after")
}

func (b *Branch) insertNextTo(anchor Leaf, child Leaf, offset int, where string) error {
	if !b.HasChild(anchor) {
		tracer().Errorf("insert %s: anchor is not a child of node", where)
		return fmt.Errorf("%w: cannot insert %s a member which is not a child of this node",
			ErrStructure, where)
	}
	if child == nil {
		return fmt.Errorf("%w: cannot insert nil", ErrInvalidArgument)
	}
	anchor, child = canonical(anchor), canonical(child)
	if anchor == child {
		return nil
	}
	return b.attach(child, func() int { return b.ChildIndex(anchor) + offset })
}

// Set puts l at position index. If index is beyond the last child, l is
// appended. Otherwise l is inserted after the current occupant of index,
// which is then removed.
func (b *Branch) Set(index int, l Leaf) error {
	if index < 0 {
		return fmt.Errorf("%w: cannot set child at index %d", ErrIndexOutOfRange, index)
	}
	if l == nil {
		return fmt.Errorf("%w: cannot set nil child", ErrInvalidArgument)
	}
	if index >= len(b.children) {
		b.AppendChild(l)
		return nil
	}
	occupant := b.children[index]
	if occupant == canonical(l) {
		return nil
	}
	if err := b.InsertAfter(occupant, l); err != nil {
		return err
	}
	b.detach(occupant)
	return nil
}

// Delete is a synonym for RemoveChildAt.
func (b *Branch) Delete(index int) error {
	return b.RemoveChildAt(index)
}

// All returns an iterator over the children of this node, together with
// their indices. It does not descend into grandchildren.
func (b *Branch) All() iter.Seq2[int, Leaf] {
	return func(yield func(int, Leaf) bool) {
		for i, child := range b.children {
			if !yield(i, child) {
				return
			}
		}
	}
}

// --- Attaching and detaching -----------------------------------------------

// attach makes child a child of b at position at(). at is evaluated after
// child has been detached from its previous parent, as detaching may shift
// positions within b.
//
// attach sets the parent link of child directly and never calls back into
// child's methods.
func (b *Branch) attach(child Leaf, at func() int) error {
	if child == nil {
		panic(fmt.Errorf("%w: cannot attach nil", ErrInvalidArgument))
	}
	child = canonical(child)
	me := b.self()
	if n, ok := child.(Node); ok {
		for a := me; a != nil; a = a.Parent() {
			if a == n {
				return fmt.Errorf("%w: attaching node would create a cycle", ErrStructure)
			}
		}
	}
	e := child.base()
	if e.parent != nil {
		e.parent.branch().detach(child)
	}
	pos := at()
	assert(pos >= 0 && pos <= len(b.children), "attach: position out of range")
	b.children = slices.Insert(b.children, pos, child)
	e.parent = me
	tracer().Debugf("attached child at %d, child count is %d", pos, len(b.children))
	b.notify(Attached, child, pos)
	return nil
}

// detach removes child from b's children and clears its parent link.
// It reports false if child is not a child of b.
func (b *Branch) detach(child Leaf) bool {
	pos := slices.Index(b.children, child)
	if pos < 0 {
		return false
	}
	b.children = slices.Delete(b.children, pos, pos+1)
	child.base().parent = nil
	tracer().Debugf("detached child at %d, child count is %d", pos, len(b.children))
	b.notify(Detached, child, pos)
	return true
}
