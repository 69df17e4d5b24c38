package arbor

import (
	"errors"
	"testing"
)

func TestPathAndResolve(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	root := NewNode(nil)
	s := newSection("s")
	root.SetChildren(newWord("a"), s)
	w := newWord("w")
	s.SetChildren(newWord("x"), newWord("y"), w)
	if p := Path(w); p != "/1/2" {
		t.Errorf("expected path /1/2, got %s", p)
	}
	if p := Path(root); p != "/" {
		t.Errorf("expected root path /, got %s", p)
	}
	if Depth(w) != 2 || Depth(root) != 0 {
		t.Errorf("expected depths 2 and 0, got %d and %d", Depth(w), Depth(root))
	}
	if Root(w) != Leaf(root) {
		t.Errorf("expected root of w to be root")
	}
	l, err := Resolve(root, Path(w))
	if err != nil {
		t.Fatal(err)
	}
	if l != Leaf(w) {
		t.Errorf("expected Resolve to find w, found %s", Label(l))
	}
	if l, _ := Resolve(root, "/"); l != Leaf(root) {
		t.Errorf("expected Resolve(/) to return root")
	}
	if _, err := Resolve(root, "/0/1"); !errors.Is(err, ErrStructure) {
		t.Errorf("expected descending into a leaf to fail, got %v", err)
	}
	if _, err := Resolve(root, "/5"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := Resolve(root, "1/x"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected malformed path to fail, got %v", err)
	}
}

func TestLabel(t *testing.T) {
	if l := Label(newA()); l != "A" {
		t.Errorf("expected label A, got %q", l)
	}
	if l := Label(newWord("hello")); l != "hello" {
		t.Errorf("expected label hello, got %q", l)
	}
	if l := Label(NewNode(nil)); l != "Branch" {
		t.Errorf("expected label Branch, got %q", l)
	}
}

func TestKind(t *testing.T) {
	if k := Kind(newWord("hello")); k != "word" {
		t.Errorf("expected kind word for a Stringer, got %q", k)
	}
	if k := Kind(NewLeaf(nil)); k != "Element" {
		t.Errorf("expected kind Element, got %q", k)
	}
}
