package arbor

import (
	"iter"
	"slices"
)

// Unbounded is a search depth without limit.
const Unbounded = -1

// FindChildren returns an iterator over all descendants of b (excluding b)
// for which p holds, in pre-order.
//
// The direct children of b have depth 0. Descendants up to and including
// depth maxDepth are tested; nodes at depth maxDepth are not expanded any
// further. A maxDepth of Unbounded searches the complete subtree.
//
// Every call returns a fresh traversal. Changing the structure of the tree
// while iterating is undefined behavior.
func (b *Branch) FindChildren(p Predicate, maxDepth int) iter.Seq[Leaf] {
	mustPredicate(p, "FindChildren")
	return func(yield func(Leaf) bool) {
		type frame struct {
			node  *Branch
			next  int // index of the next child to visit
			depth int
		}
		stack := []frame{{node: b}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.node.children) {
				stack = stack[:len(stack)-1]
				continue
			}
			child := top.node.children[top.next]
			depth := top.depth
			top.next++
			if p(child) && !yield(child) {
				return
			}
			if n, ok := child.(Node); ok && (maxDepth < 0 || depth < maxDepth) {
				stack = append(stack, frame{node: n.branch(), depth: depth + 1})
			}
		}
	}
}

// Find is like FindChildren, but tests b itself first.
func (b *Branch) Find(p Predicate, maxDepth int) iter.Seq[Leaf] {
	mustPredicate(p, "Find")
	return func(yield func(Leaf) bool) {
		if me := b.self(); p(me) && !yield(me) {
			return
		}
		for l := range b.FindChildren(p, maxDepth) {
			if !yield(l) {
				return
			}
		}
	}
}

// FindChildrenAll collects the results of FindChildren into a slice.
func (b *Branch) FindChildrenAll(p Predicate, maxDepth int) []Leaf {
	return slices.Collect(b.FindChildren(p, maxDepth))
}

// FindAll collects the results of Find into a slice.
func (b *Branch) FindAll(p Predicate, maxDepth int) []Leaf {
	return slices.Collect(b.Find(p, maxDepth))
}

// FindFirst returns the first member of the subtree rooted at n (including
// n) for which p holds, or nil.
func FindFirst(n Node, p Predicate) Leaf {
	for l := range n.Find(p, Unbounded) {
		return l
	}
	return nil
}
