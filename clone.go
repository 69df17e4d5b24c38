package arbor

import (
	"fmt"
	"reflect"
)

// Cloner is implemented by client types which need control over how their
// payload is copied by Clone.
//
// CloneLeaf returns a fresh, unattached copy of the receiver, without
// children. Clone will take care of the parent link and of the children.
type Cloner interface {
	CloneLeaf() Leaf
}

// Clone deep-copies l together with all of its descendants. The copy of l
// has no parent, even if l has one. Relative order and the shape of the
// subtree are preserved, but no member of the copy is identical to any
// member of the original. Observers are not copied.
//
// Members which do not implement Cloner are copied field by field.
func Clone[T Leaf](l T) (T, error) {
	var zero T
	var root Leaf = l
	if root == nil || isNilPointer(root) {
		return zero, fmt.Errorf("%w: cannot clone nil", ErrInvalidArgument)
	}
	c, err := cloneTree(canonical(root))
	if err != nil {
		return zero, err
	}
	result, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("%w: clone of %T is of type %T", ErrInvalidArgument, root, c)
	}
	return result, nil
}

func cloneTree(l Leaf) (Leaf, error) {
	c, err := cloneOne(l)
	if err != nil {
		return nil, err
	}
	n, ok := l.(Node)
	if !ok {
		return c, nil
	}
	cn, ok := c.(Node)
	if !ok {
		return nil, fmt.Errorf("%w: clone of node %T is not a node", ErrInvalidArgument, l)
	}
	for _, child := range n.branch().children {
		cc, err := cloneTree(child)
		if err != nil {
			return nil, err
		}
		cn.AppendChild(cc)
	}
	return c, nil
}

// cloneOne copies a single member and resets its tree bookkeeping.
func cloneOne(l Leaf) (Leaf, error) {
	var c Leaf
	if cloner, ok := l.(Cloner); ok {
		c = cloner.CloneLeaf()
	} else {
		v := reflect.ValueOf(l)
		if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: cannot copy %T", ErrInvalidArgument, l)
		}
		cp := reflect.New(v.Elem().Type())
		cp.Elem().Set(v.Elem())
		c = cp.Interface().(Leaf)
	}
	if c == nil || c.base() == l.base() {
		return nil, fmt.Errorf("%w: %T did not produce a fresh copy", ErrInvalidArgument, l)
	}
	e := c.base()
	e.parent = nil
	e.self = c
	if n, ok := c.(Node); ok {
		b := n.branch()
		b.children = nil
		b.observers = nil
	}
	return c, nil
}

func isNilPointer(l Leaf) bool {
	v := reflect.ValueOf(l)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
