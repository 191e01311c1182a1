package avl

import "github.com/npillmayer/ordered"

// Add returns a tree with k bound to v. If k is already bound to a value identical
// to v (as decided by same), t itself is returned. A nil same defaults to Identical.
func Add[K, V any](cmp ordered.Comparator[K], same func(V, V) bool, t *Node[K, V], k K, v V) *Node[K, V] {
	if t == nil {
		return Singleton(k, v)
	}
	c := cmp(k, t.key)
	if c == 0 {
		if isSame(same, t.value, v) {
			return t
		}
		return t.withValue(k, v)
	}
	if c < 0 {
		ll := Add(cmp, same, t.left, k, v)
		if ll == t.left {
			return t
		}
		return bal(ll, t.key, t.value, t.right)
	}
	rr := Add(cmp, same, t.right, k, v)
	if rr == t.right {
		return t
	}
	return bal(t.left, t.key, t.value, rr)
}

// addAbsent inserts k only if it is not yet present; otherwise t is returned unchanged.
func addAbsent[K, V any](cmp ordered.Comparator[K], t *Node[K, V], k K, v V) *Node[K, V] {
	return Add(cmp, func(V, V) bool { return true }, t, k, v)
}

func isSame[V any](same func(V, V) bool, a, b V) bool {
	if same == nil {
		return Identical(a, b)
	}
	return same(a, b)
}

// Find locates the node for key k, or returns nil.
func Find[K, V any](cmp ordered.Comparator[K], t *Node[K, V], k K) *Node[K, V] {
	for t != nil {
		c := cmp(k, t.key)
		if c == 0 {
			return t
		}
		if c < 0 {
			t = t.left
		} else {
			t = t.right
		}
	}
	return nil
}

// Mem is a predicate: is k bound in t?
func Mem[K, V any](cmp ordered.Comparator[K], t *Node[K, V], k K) bool {
	return Find(cmp, t, k) != nil
}

// Remove returns a tree without the binding for k. If k is absent, t itself is returned.
func Remove[K, V any](cmp ordered.Comparator[K], t *Node[K, V], k K) *Node[K, V] {
	if t == nil {
		return nil
	}
	c := cmp(k, t.key)
	if c == 0 {
		return fuse(t.left, t.right)
	}
	if c < 0 {
		ll := Remove(cmp, t.left, k)
		if ll == t.left {
			return t
		}
		return bal(ll, t.key, t.value, t.right)
	}
	rr := Remove(cmp, t.right, k)
	if rr == t.right {
		return t
	}
	return bal(t.left, t.key, t.value, rr)
}

// Update is the combined upsert-or-delete: f receives the current value of k
// (ok=false if absent) and returns the new value (keep=false to drop the binding).
// Returns t itself if nothing changed.
func Update[K, V any](cmp ordered.Comparator[K], same func(V, V) bool, t *Node[K, V], k K,
	f func(v V, ok bool) (V, bool)) *Node[K, V] {
	//
	if t == nil {
		var none V
		if v, keep := f(none, false); keep {
			return Singleton(k, v)
		}
		return nil
	}
	c := cmp(k, t.key)
	if c == 0 {
		v, keep := f(t.value, true)
		if !keep {
			return fuse(t.left, t.right)
		}
		if isSame(same, t.value, v) {
			return t
		}
		return t.withValue(k, v)
	}
	if c < 0 {
		ll := Update(cmp, same, t.left, k, f)
		if ll == t.left {
			return t
		}
		return bal(ll, t.key, t.value, t.right)
	}
	rr := Update(cmp, same, t.right, k, f)
	if rr == t.right {
		return t
	}
	return bal(t.left, t.key, t.value, rr)
}

// Min returns the node with the smallest key, or nil for an empty tree.
func Min[K, V any](t *Node[K, V]) *Node[K, V] {
	return minNode(t)
}

// Max returns the node with the greatest key, or nil for an empty tree.
func Max[K, V any](t *Node[K, V]) *Node[K, V] {
	return maxNode(t)
}

// FindFirst returns the node with the smallest key satisfying pred, where pred
// is monotonically increasing over ascending keys (false for a prefix of keys,
// true for the rest). Returns nil if no key satisfies pred. For non-monotone
// predicates the result is unspecified.
func FindFirst[K, V any](t *Node[K, V], pred func(K) bool) *Node[K, V] {
	var found *Node[K, V]
	for t != nil {
		if pred(t.key) {
			found = t
			t = t.left
		} else {
			t = t.right
		}
	}
	return found
}

// FindLast returns the node with the greatest key satisfying pred, where pred
// is monotonically decreasing over ascending keys (true for a prefix of keys,
// false for the rest). Returns nil if no key satisfies pred.
func FindLast[K, V any](t *Node[K, V], pred func(K) bool) *Node[K, V] {
	var found *Node[K, V]
	for t != nil {
		if pred(t.key) {
			found = t
			t = t.right
		} else {
			t = t.left
		}
	}
	return found
}
