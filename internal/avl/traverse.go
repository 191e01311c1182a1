package avl

import "github.com/npillmayer/ordered"

// Iter calls f for every binding in ascending order of keys.
func Iter[K, V any](t *Node[K, V], f func(K, V)) {
	for t != nil {
		Iter(t.left, f)
		f(t.key, t.value)
		t = t.right
	}
}

// Fold accumulates over all bindings in ascending order of keys.
func Fold[K, V, A any](t *Node[K, V], f func(acc A, k K, v V) A, acc A) A {
	for t != nil {
		acc = f(Fold(t.left, f, acc), t.key, t.value)
		t = t.right
	}
	return acc
}

// ForAll is a predicate: do all bindings satisfy p? Stops at the first one which doesn't.
func ForAll[K, V any](t *Node[K, V], p func(K, V) bool) bool {
	for t != nil {
		if !ForAll(t.left, p) || !p(t.key, t.value) {
			return false
		}
		t = t.right
	}
	return true
}

// Exists is a predicate: does any binding satisfy p? Stops at the first one which does.
func Exists[K, V any](t *Node[K, V], p func(K, V) bool) bool {
	for t != nil {
		if Exists(t.left, p) || p(t.key, t.value) {
			return true
		}
		t = t.right
	}
	return false
}

// MapValues creates a tree of identical shape with every value replaced by f(value).
// f is called in ascending order of keys.
func MapValues[K, V, W any](t *Node[K, V], f func(V) W) *Node[K, W] {
	return MapI(t, func(_ K, v V) W { return f(v) })
}

// MapI is MapValues with f receiving the key as well.
func MapI[K, V, W any](t *Node[K, V], f func(K, V) W) *Node[K, W] {
	if t == nil {
		return nil
	}
	l := MapI(t.left, f)
	w := f(t.key, t.value)
	r := MapI(t.right, f)
	return &Node[K, W]{left: l, key: t.key, value: w, right: r, height: t.height}
}

// Cardinal returns the number of bindings in t.
func Cardinal[K, V any](t *Node[K, V]) int {
	if t == nil {
		return 0
	}
	return Cardinal(t.left) + 1 + Cardinal(t.right)
}

// Bindings returns all bindings in ascending order of keys.
func Bindings[K, V any](t *Node[K, V]) []ordered.Pair[K, V] {
	pairs := make([]ordered.Pair[K, V], 0, Cardinal(t))
	Iter(t, func(k K, v V) {
		pairs = append(pairs, ordered.P(k, v))
	})
	return pairs
}

// Keys returns all keys in ascending order.
func Keys[K, V any](t *Node[K, V]) []K {
	keys := make([]K, 0, Cardinal(t))
	Iter(t, func(k K, _ V) {
		keys = append(keys, k)
	})
	return keys
}

// Values returns all values in ascending order of their keys.
func Values[K, V any](t *Node[K, V]) []V {
	values := make([]V, 0, Cardinal(t))
	Iter(t, func(_ K, v V) {
		values = append(values, v)
	})
	return values
}
