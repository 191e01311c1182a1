package avl

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the shape of a tree, e.g. for debugging or test logs.
func Dump[K, V any](t *Node[K, V]) string {
	header := fmt.Sprintf("Tree(height=%d, size=%d)\n", t.Height(), Cardinal(t))
	printer := tp.New()
	dumpNode(printer, t)
	return header + printer.String()
}

func dumpNode[K, V any](printer tp.Tree, n *Node[K, V]) {
	if n == nil {
		printer.AddNode("∅")
		return
	}
	if n.left == nil && n.right == nil {
		printer.AddNode(n.String())
		return
	}
	branch := printer.AddBranch(n.String())
	dumpNode(branch, n.left)
	dumpNode(branch, n.right)
}
