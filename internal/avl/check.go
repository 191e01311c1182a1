package avl

import (
	"fmt"

	"github.com/npillmayer/ordered"
)

// Check validates the structural invariants of t: keys strictly ascending in
// in-order, cached heights correct, and children's heights differing by at most 2.
//
// Check is meant for tests; a violation indicates a defect of this package.
func Check[K, V any](cmp ordered.Comparator[K], t *Node[K, V]) error {
	_, err := checkNode(cmp, t, nil, nil)
	return err
}

func checkNode[K, V any](cmp ordered.Comparator[K], n *Node[K, V], lo, hi *Node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && cmp(lo.key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than %v", ordered.ErrInvariant, n.key, lo.key)
	}
	if hi != nil && cmp(n.key, hi.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than %v", ordered.ErrInvariant, n.key, hi.key)
	}
	hl, err := checkNode(cmp, n.left, lo, n)
	if err != nil {
		return 0, err
	}
	hr, err := checkNode(cmp, n.right, n, hi)
	if err != nil {
		return 0, err
	}
	if hl > hr+2 || hr > hl+2 {
		return 0, fmt.Errorf("%w: node %v unbalanced, heights %d | %d", ordered.ErrInvariant, n.key, hl, hr)
	}
	h := hl + 1
	if hr > hl {
		h = hr + 1
	}
	if n.height != h {
		return 0, fmt.Errorf("%w: node %v caches height %d, is %d", ordered.ErrInvariant, n.key, n.height, h)
	}
	return h, nil
}
