package arbor

import "fmt"

// Check validates the structural invariants of the subtree rooted at n:
//
//   - every child reports its node as its parent,
//   - no member appears more than once in the subtree,
//   - every child's index matches its position.
//
// Check is intended to be used in tests.
func Check(n Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidArgument)
	}
	seen := make(map[Leaf]struct{})
	root := canonicalNode(n)
	seen[root] = struct{}{}
	return checkNode(root, seen)
}

func checkNode(n Node, seen map[Leaf]struct{}) error {
	for i, child := range n.branch().children {
		if child == nil {
			return fmt.Errorf("%w: nil child at index %d", ErrStructure, i)
		}
		if _, dup := seen[child]; dup {
			return fmt.Errorf("%w: %s appears more than once in tree", ErrStructure, Label(child))
		}
		seen[child] = struct{}{}
		if child.base().self != child {
			return fmt.Errorf("%w: child %d of %s is not bound to itself", ErrStructure, i, Label(n))
		}
		if child.Parent() != n {
			return fmt.Errorf("%w: child %d of %s has parent link to a different node",
				ErrStructure, i, Label(n))
		}
		if idx := child.Index(); idx != i {
			return fmt.Errorf("%w: child at position %d reports index %d", ErrStructure, i, idx)
		}
		if node, ok := child.(Node); ok {
			if err := checkNode(node, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
