package arbor

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[Leaf]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[Leaf]int),
		max:     1,
	}
}

func (ids nodeids) find(l Leaf) int {
	return ids.idTable[l]
}

func (ids *nodeids) alloc(l Leaf) int {
	if id := ids.find(l); id > 0 {
		return id
	}
	ids.idTable[l] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of the subtree rooted at n in Graphviz DOT
// format (for debugging purposes). Nodes are drawn as boxes, terminal leaves
// as ellipses; edges are ordered by child index.
func Tree2Dot(n Node, w io.Writer) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidArgument)
	}
	var nodelist, edgelist strings.Builder
	ids := newtable()
	root := canonicalNode(n)
	for l := range root.Find(Any, Unbounded) {
		ID := ids.alloc(l)
		nodelist.WriteString(fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID,
			dotEscape(Label(l)), nodeDotStyles(l)))
		if l != Leaf(root) && l.HasParent() {
			edgelist.WriteString(fmt.Sprintf("\"%d\" -> \"%d\" [label=%d];\n",
				ids.find(l.Parent()), ID, l.Index()))
		}
	}
	for _, part := range []string{
		"strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, part); err != nil {
			tracer().Errorf("tree DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func nodeDotStyles(l Leaf) string {
	if IsNode(l) {
		return ",shape=box,style=filled,fillcolor=lightgrey"
	}
	return ",shape=ellipse"
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
