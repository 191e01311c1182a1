package avl

import "fmt"

// Node is a node of a balanced tree. A nil *Node is the empty tree.
// Nodes are immutable once created.
type Node[K, V any] struct {
	left   *Node[K, V]
	key    K
	value  V
	right  *Node[K, V]
	height int
}

// Height returns the cached height of the subtree rooted at n; 0 for the empty tree.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Key returns the key of n.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value bound to the key of n.
func (n *Node[K, V]) Value() V {
	return n.value
}

func (n *Node[K, V]) String() string {
	if n == nil {
		return "∅"
	}
	return fmt.Sprintf("%v (h=%d)", n.key, n.height)
}

// create builds a node without checking balance; the caller guarantees
// that l and r differ in height by at most 2.
func create[K, V any](l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	hl, hr := l.Height(), r.Height()
	h := hl + 1
	if hr >= hl {
		h = hr + 1
	}
	return &Node[K, V]{left: l, key: k, value: v, right: r, height: h}
}

// Singleton creates a tree with a single binding.
func Singleton[K, V any](k K, v V) *Node[K, V] {
	return &Node[K, V]{key: k, value: v, height: 1}
}

// withValue copies n with a new value, keeping shape and children.
func (n *Node[K, V]) withValue(k K, v V) *Node[K, V] {
	return &Node[K, V]{left: n.left, key: k, value: v, right: n.right, height: n.height}
}

// bal creates a node for l, k, r, where l and r are balanced and their heights
// differ by at most 3. It performs a single or double rotation if necessary.
func bal[K, V any](l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	hl, hr := l.Height(), r.Height()
	if hl > hr+2 {
		assertThat(l != nil, "bal: cannot rotate right around empty left subtree")
		if l.left.Height() >= l.right.Height() {
			tracer().Debugf("bal: rotate right at %v", k)
			return create(l.left, l.key, l.value, create(l.right, k, v, r))
		}
		lr := l.right
		assertThat(lr != nil, "bal: cannot double-rotate around empty left-right subtree")
		tracer().Debugf("bal: double rotation left-right at %v", k)
		return create(create(l.left, l.key, l.value, lr.left), lr.key, lr.value, create(lr.right, k, v, r))
	}
	if hr > hl+2 {
		assertThat(r != nil, "bal: cannot rotate left around empty right subtree")
		if r.right.Height() >= r.left.Height() {
			tracer().Debugf("bal: rotate left at %v", k)
			return create(create(l, k, v, r.left), r.key, r.value, r.right)
		}
		rl := r.left
		assertThat(rl != nil, "bal: cannot double-rotate around empty right-left subtree")
		tracer().Debugf("bal: double rotation right-left at %v", k)
		return create(create(l, k, v, rl.left), rl.key, rl.value, create(rl.right, r.key, r.value, r.right))
	}
	return create(l, k, v, r)
}

func addMinBinding[K, V any](k K, v V, t *Node[K, V]) *Node[K, V] {
	if t == nil {
		return Singleton(k, v)
	}
	return bal(addMinBinding(k, v, t.left), t.key, t.value, t.right)
}

func addMaxBinding[K, V any](k K, v V, t *Node[K, V]) *Node[K, V] {
	if t == nil {
		return Singleton(k, v)
	}
	return bal(t.left, t.key, t.value, addMaxBinding(k, v, t.right))
}

// join builds a tree of l, k and r, where all keys of l are smaller than k and
// all keys of r are greater than k. Contrary to bal, l and r may have arbitrary heights.
func join[K, V any](l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	switch {
	case l == nil:
		return addMinBinding(k, v, r)
	case r == nil:
		return addMaxBinding(k, v, l)
	case l.height > r.height+2:
		return bal(l.left, l.key, l.value, join(l.right, k, v, r))
	case r.height > l.height+2:
		return bal(join(l, k, v, r.left), r.key, r.value, r.right)
	}
	return create(l, k, v, r)
}

func minNode[K, V any](t *Node[K, V]) *Node[K, V] {
	if t == nil {
		return nil
	}
	for t.left != nil {
		t = t.left
	}
	return t
}

func maxNode[K, V any](t *Node[K, V]) *Node[K, V] {
	if t == nil {
		return nil
	}
	for t.right != nil {
		t = t.right
	}
	return t
}

func removeMinBinding[K, V any](t *Node[K, V]) *Node[K, V] {
	assertThat(t != nil, "cannot remove minimum binding of empty tree")
	if t.left == nil {
		return t.right
	}
	return bal(removeMinBinding(t.left), t.key, t.value, t.right)
}

// fuse merges two trees t1 and t2, where all keys of t1 are smaller than the keys
// of t2 and their heights differ by at most 2. The minimum binding of t2 becomes
// the separator.
func fuse[K, V any](t1, t2 *Node[K, V]) *Node[K, V] {
	if t1 == nil {
		return t2
	}
	if t2 == nil {
		return t1
	}
	sep := minNode(t2)
	return bal(t1, sep.key, sep.value, removeMinBinding(t2))
}

// concat is fuse for trees of arbitrary heights.
func concat[K, V any](t1, t2 *Node[K, V]) *Node[K, V] {
	if t1 == nil {
		return t2
	}
	if t2 == nil {
		return t1
	}
	sep := minNode(t2)
	return join(t1, sep.key, sep.value, removeMinBinding(t2))
}

// concatOrJoin joins t1 and t2 with k as separator if present is true,
// otherwise k is omitted.
func concatOrJoin[K, V any](t1 *Node[K, V], k K, v V, present bool, t2 *Node[K, V]) *Node[K, V] {
	if present {
		return join(t1, k, v, t2)
	}
	return concat(t1, t2)
}
