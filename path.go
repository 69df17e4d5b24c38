package arbor

import (
	"fmt"
	"strconv"
	"strings"
)

// Root returns the topmost ancestor of l, or l itself if it has no parent.
func Root(l Leaf) Leaf {
	l = canonical(l)
	for l != nil && l.HasParent() {
		l = l.Parent()
	}
	return l
}

// Depth returns the number of ancestors of l.
func Depth(l Leaf) int {
	d := 0
	for p := l.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// Path renders the position of l relative to its root as a sequence of
// child indices, e.g. "/0/3/1". The root itself has path "/".
func Path(l Leaf) string {
	if l == nil {
		return ""
	}
	var indices []string
	for l.HasParent() {
		indices = append(indices, strconv.Itoa(l.Index()))
		l = l.Parent()
	}
	if len(indices) == 0 {
		return "/"
	}
	var sb strings.Builder
	for i := len(indices) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(indices[i])
	}
	return sb.String()
}

// Resolve finds the member at path below n, where path has the format
// produced by Path.
func Resolve(n Node, path string) (Leaf, error) {
	if path == "" || path[0] != '/' {
		return nil, fmt.Errorf("%w: malformed path %q", ErrInvalidArgument, path)
	}
	var l Leaf = canonicalNode(n)
	for _, step := range strings.Split(path[1:], "/") {
		if step == "" {
			continue
		}
		i, err := strconv.Atoi(step)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed path %q", ErrInvalidArgument, path)
		}
		node, ok := l.(Node)
		if !ok {
			return nil, fmt.Errorf("%w: path %q descends into a leaf", ErrStructure, path)
		}
		if l, err = node.ChildAt(i); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Label returns a short description of a tree member for debugging output.
// Members implementing fmt.Stringer are described by their String method,
// others by their type.
func Label(l Leaf) string {
	if s, ok := l.(fmt.Stringer); ok {
		return s.String()
	}
	return Kind(l)
}

// Kind returns the unqualified type name of a tree member, e.g. "Paragraph"
// for a *mydoc.Paragraph.
func Kind(l Leaf) string {
	name := fmt.Sprintf("%T", l)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
