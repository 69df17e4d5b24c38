package arbor

import (
	"errors"
	"testing"
)

func TestLeafWithoutParent(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	l := NewLeaf(nil)
	if l.HasParent() || l.Parent() != nil {
		t.Errorf("expected new leaf to have no parent")
	}
	if l.Index() != -1 {
		t.Errorf("expected index of parent-less leaf to be -1, is %d", l.Index())
	}
	if l.PreviousSibling() != nil || l.NextSibling() != nil {
		t.Errorf("expected parent-less leaf to have no siblings")
	}
	if err := l.Append(NewLeaf(nil)); !errors.Is(err, ErrStructure) {
		t.Errorf("expected Append without parent to fail with ErrStructure, got %v", err)
	}
	if err := l.Prepend(NewLeaf(nil)); !errors.Is(err, ErrStructure) {
		t.Errorf("expected Prepend without parent to fail with ErrStructure, got %v", err)
	}
	if l.Remove() != Leaf(l) {
		t.Errorf("expected Remove to return the leaf itself")
	}
}

func TestSiblings(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	ws := words("a", "b", "c")
	NewNode(nil, ws...)
	a, b, c := ws[0], ws[1], ws[2]
	if b.PreviousSibling() != a || b.NextSibling() != c {
		t.Errorf("expected siblings of b to be a and c")
	}
	if a.PreviousSibling() != nil {
		t.Errorf("expected a to have no previous sibling, has %v", a.PreviousSibling())
	}
	if c.NextSibling() != nil {
		t.Errorf("expected c to have no next sibling, has %v", c.NextSibling())
	}
}

func TestSetParent(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	p, q := NewNode(nil), NewNode(nil)
	w := newWord("w")
	if w.SetParent(p) != Leaf(w) {
		t.Errorf("expected SetParent to return the leaf itself")
	}
	if w.Parent() != Node(p) || !p.HasChild(w) {
		t.Fatalf("expected w to be a child of p")
	}
	p.AppendChild(newWord("x"))
	w.SetParent(p) // no-op, must not move w to the end
	if w.Index() != 0 {
		t.Errorf("expected SetParent with current parent to be a no-op, w is at %d", w.Index())
	}
	w.SetParent(q)
	if p.HasChild(w) || !q.HasChild(w) || w.Parent() != Node(q) {
		t.Errorf("expected w to move from p to q")
	}
	w.SetParent(nil)
	if w.HasParent() || q.HasChildren() {
		t.Errorf("expected w to be detached")
	}
	mustCheck(t, p)
	mustCheck(t, q)
}

func TestAppendPrependRemove(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	ws := words("a", "b")
	root := NewNode(nil, ws...)
	if err := ws[0].Append(newWord("x")); err != nil {
		t.Fatal(err)
	}
	if childTexts(root) != "axb" {
		t.Errorf("expected x to be inserted after a, children are %s", childTexts(root))
	}
	if err := ws[0].Prepend(newWord("y")); err != nil {
		t.Fatal(err)
	}
	if childTexts(root) != "yaxb" {
		t.Errorf("expected y to be inserted before a, children are %s", childTexts(root))
	}
	ws[1].Append(ws[0]) // move a to the end
	if childTexts(root) != "yxba" {
		t.Errorf("expected a to be moved behind b, children are %s", childTexts(root))
	}
	ws[0].Remove()
	if childTexts(root) != "yxb" || ws[0].HasParent() {
		t.Errorf("expected a to be removed, children are %s", childTexts(root))
	}
	mustCheck(t, root)
}

func TestIsAndInstanceOf(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	a, w := newA(), newWord("w")
	if !a.Is(InstanceOf[*A]()) || a.Is(InstanceOf[*B]()) {
		t.Errorf("expected a to be an *A and not a *B")
	}
	if !w.Is(func(l Leaf) bool { return Label(l) == "w" }) {
		t.Errorf("expected predicate to be called with the word itself")
	}
	if !IsNode(a) || IsNode(w) {
		t.Errorf("expected a to be a node and w to be a terminal leaf")
	}
	if !IsA[Node](a) || !IsA[Leaf](w) {
		t.Errorf("expected interface type tests to succeed")
	}
	isA := InstanceOf[*A]()
	if !w.Is(Not(isA)) || !a.Is(And(isA, IsNode)) || !w.Is(Or(isA, Any)) {
		t.Errorf("predicate combinators do not work as expected")
	}
}

func TestIsWithNilPredicatePanics(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected panic with ErrInvalidArgument, got %v", r)
		}
	}()
	NewLeaf(nil).Is(nil)
}

func TestInitRejectsForeignValue(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Init with a foreign value to panic")
		}
	}()
	w := &word{}
	w.Init(newWord("other"))
}
