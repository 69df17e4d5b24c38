/*
Package html builds arbor trees from HTML documents.

Element nodes of the HTML parse tree become *Element tree nodes, text nodes
become terminal *Text leaves. Comments, doctype declarations and whitespace-only
text are dropped.

Elements expose their tag and attributes to package query:

	root, _ := html.FromHTML(strings.NewReader(page))
	links, _ := query.Find(root, `tag == "a" && attr.href != nil`, arbor.Unbounded)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// Element is a tree node for an HTML element.
type Element struct {
	arbor.Branch
	Tag  string
	Attr []html.Attribute
}

// NewElement creates an unattached element node.
func NewElement(tag string, attr ...html.Attribute) *Element {
	e := &Element{Tag: tag, Attr: attr}
	e.Init(e)
	return e
}

// AttrValue returns the value of attribute key, if present.
func (e *Element) AttrValue(key string) (string, bool) {
	for _, a := range e.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Attributes exposes tag, id, class and all attributes (as map attr)
// to queries.
func (e *Element) Attributes() map[string]any {
	attr := make(map[string]any, len(e.Attr))
	for _, a := range e.Attr {
		attr[a.Key] = a.Val
	}
	m := map[string]any{
		"tag":  e.Tag,
		"attr": attr,
	}
	if id, ok := e.AttrValue("id"); ok {
		m["id"] = id
	}
	if class, ok := e.AttrValue("class"); ok {
		m["class"] = class
	}
	return m
}

// CloneLeaf copies tag and attributes of e.
func (e *Element) CloneLeaf() arbor.Leaf {
	attr := make([]html.Attribute, len(e.Attr))
	copy(attr, e.Attr)
	return NewElement(e.Tag, attr...)
}

func (e *Element) String() string {
	return "<" + e.Tag + ">"
}

// Text is a terminal tree member holding character data.
type Text struct {
	arbor.Element
	Data string
}

// NewText creates an unattached text leaf.
func NewText(data string) *Text {
	t := &Text{Data: data}
	t.Init(t)
	return t
}

// Attributes exposes the character data as variable text to queries.
func (t *Text) Attributes() map[string]any {
	return map[string]any{"text": t.Data}
}

func (t *Text) String() string {
	const max = 20
	if runes := []rune(t.Data); len(runes) > max {
		return fmt.Sprintf("%q…", string(runes[:max]))
	}
	return fmt.Sprintf("%q", t.Data)
}

// --- Building trees --------------------------------------------------------

// FromHTML parses an HTML document and returns the tree for its root
// element.
func FromHTML(input io.Reader) (*Element, error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return FromNode(c)
		}
	}
	return nil, fmt.Errorf("%w: document has no root element", arbor.ErrStructure)
}

// FromFragment parses an HTML fragment in the context of a <body> element
// and returns the top-level members.
func FromFragment(input io.Reader) ([]arbor.Leaf, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	var members []arbor.Leaf
	for _, n := range nodes {
		if l := convert(n); l != nil {
			members = append(members, l)
		}
	}
	return members, nil
}

// FromNode converts the HTML element n and its descendants.
func FromNode(n *html.Node) (*Element, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, arbor.ErrInvalidArgument
	}
	return convert(n).(*Element), nil
}

func convert(n *html.Node) arbor.Leaf {
	switch n.Type {
	case html.ElementNode:
		e := NewElement(n.Data, n.Attr...)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if l := convert(c); l != nil {
				e.AppendChild(l)
			}
		}
		return e
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return NewText(n.Data)
	}
	tracer().Debugf("html: dropping node of type %d", n.Type)
	return nil
}

// --- Querying trees --------------------------------------------------------

// InnerText collects the character data of all text leaves below n,
// in document order. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n arbor.Node) string {
	var sb strings.Builder
	for l := range n.FindChildren(arbor.InstanceOf[*Text](), arbor.Unbounded) {
		sb.WriteString(l.(*Text).Data)
	}
	return sb.String()
}

// ByTag returns a predicate matching elements with the given tag.
func ByTag(tag string) arbor.Predicate {
	return func(l arbor.Leaf) bool {
		e, ok := l.(*Element)
		return ok && e.Tag == tag
	}
}

// ByID returns the first element below n (including n) with attribute
// id equal to id, or nil.
func ByID(n arbor.Node, id string) *Element {
	l := arbor.FindFirst(n, func(l arbor.Leaf) bool {
		e, ok := l.(*Element)
		if !ok {
			return false
		}
		v, ok := e.AttrValue("id")
		return ok && v == id
	})
	if l == nil {
		return nil
	}
	return l.(*Element)
}
