package arbor

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Client-defined tree members, as a host application would declare them.

type A struct{ Branch }
type B struct{ Branch }
type C struct{ Branch }
type D struct{ Branch }

func newA() *A {
	a := &A{}
	a.Init(a)
	return a
}

func newB() *B {
	b := &B{}
	b.Init(b)
	return b
}

func newC() *C {
	c := &C{}
	c.Init(c)
	return c
}

func newD() *D {
	d := &D{}
	d.Init(d)
	return d
}

type word struct {
	Element
	text string
}

func newWord(text string) *word {
	w := &word{text: text}
	w.Init(w)
	return w
}

func (w *word) String() string { return w.text }

type section struct {
	Branch
	title string
}

func newSection(title string) *section {
	s := &section{title: title}
	s.Init(s)
	return s
}

func (s *section) String() string { return s.title }

// CloneLeaf copies the payload of a section.
func (s *section) CloneLeaf() Leaf {
	return newSection(s.title + "'")
}

func setupTracing(t *testing.T) func() {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	tracer().SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func mustCheck(t *testing.T, n Node) {
	t.Helper()
	if err := Check(n); err != nil {
		t.Fatalf("tree invariants violated: %v", err)
	}
}

func words(texts ...string) []Leaf {
	ws := make([]Leaf, len(texts))
	for i, s := range texts {
		ws[i] = newWord(s)
	}
	return ws
}

func childTexts(n Node) string {
	s := ""
	for _, c := range n.Children() {
		s += Label(c)
	}
	return s
}
