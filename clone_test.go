package arbor

import (
	"errors"
	"testing"
)

// shape renders the structure of a subtree as nested parentheses.
func shape(l Leaf) string {
	n, ok := l.(Node)
	if !ok {
		return "."
	}
	s := "("
	for _, c := range n.Children() {
		s += shape(c)
	}
	return s + ")"
}

func TestCloneSubtree(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	root := NewNode(nil)
	orig := buildFindTree()
	root.AppendChild(orig)
	clone, err := Clone(orig)
	if err != nil {
		t.Fatal(err)
	}
	if clone.HasParent() {
		t.Errorf("expected clone to have no parent")
	}
	if !orig.HasParent() {
		t.Errorf("expected original to keep its parent")
	}
	if clone.ChildCount() != orig.ChildCount() || shape(clone) != shape(orig) {
		t.Errorf("expected clone to have the shape of the original: %s vs %s",
			shape(clone), shape(orig))
	}
	origMembers := make(map[Leaf]bool)
	for l := range orig.Find(Any, Unbounded) {
		origMembers[l] = true
	}
	for l := range clone.Find(Any, Unbounded) {
		if origMembers[l] {
			t.Fatalf("clone shares member %s with original", Label(l))
		}
	}
	cloned := clone.FindAll(Any, Unbounded)
	original := orig.FindAll(Any, Unbounded)
	for i := range original {
		if Label(cloned[i]) != Label(original[i]) {
			t.Errorf("expected member %d to be a %s, is %s", i, Label(original[i]), Label(cloned[i]))
		}
	}
	mustCheck(t, clone)
	mustCheck(t, root)
}

func TestClonePreservesHostPayload(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	s := newSection("s")
	s.SetChildren(newWord("a"), newSection("t"), newWord("b"))
	observed := 0
	Observe(s, func(Mutation) { observed++ })
	c, err := Clone(s)
	if err != nil {
		t.Fatal(err)
	}
	if c.title != "s'" {
		t.Errorf("expected section to be copied by CloneLeaf, title is %q", c.title)
	}
	if childTexts(c) != "at'b" {
		t.Errorf("expected children a t' b, got %s", childTexts(c))
	}
	w, _ := c.ChildAt(0)
	if w.(*word).text != "a" || w.Parent() != Node(c) {
		t.Errorf("expected word to be copied field by field and attached to the clone")
	}
	before := observed
	c.AppendChild(newWord("z"))
	if observed != before {
		t.Errorf("expected observers not to be copied")
	}
	mustCheck(t, c)
}

func TestCloneLeaf(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	w := newWord("w")
	NewNode(nil, w)
	c, err := Clone(w)
	if err != nil {
		t.Fatal(err)
	}
	if c == w || c.text != "w" || c.HasParent() {
		t.Errorf("expected a fresh, parent-less copy of w")
	}
	var nilWord *word
	if _, err := Clone(nilWord); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected cloning nil to fail with ErrInvalidArgument, got %v", err)
	}
}
