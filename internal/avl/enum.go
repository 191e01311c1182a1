package avl

import "github.com/npillmayer/ordered"

// enumeration is a lazy ascending enumerator over a tree: the spine of left-most
// nodes not yet visited, each with the right subtree still to be enumerated.
type enumeration[K, V any] struct {
	key   K
	value V
	right *Node[K, V]
	next  *enumeration[K, V]
}

func consEnum[K, V any](t *Node[K, V], e *enumeration[K, V]) *enumeration[K, V] {
	for t != nil {
		e = &enumeration[K, V]{key: t.key, value: t.value, right: t.right, next: e}
		t = t.left
	}
	return e
}

func (e *enumeration[K, V]) advance() *enumeration[K, V] {
	return consEnum(e.right, e.next)
}

// Compare compares two trees binding by binding in ascending order, first by key
// with cmp, then by value with vcmp. Shorter trees are smaller than their extensions.
// Comparison stops at the first difference; the trees are never materialized.
func Compare[K, V any](cmp ordered.Comparator[K], vcmp func(V, V) int, t1, t2 *Node[K, V]) int {
	e1, e2 := consEnum(t1, nil), consEnum(t2, nil)
	for {
		switch {
		case e1 == nil && e2 == nil:
			return 0
		case e1 == nil:
			return -1
		case e2 == nil:
			return 1
		}
		if c := cmp(e1.key, e2.key); c != 0 {
			return c
		}
		if vcmp != nil {
			if c := vcmp(e1.value, e2.value); c != 0 {
				return c
			}
		}
		e1, e2 = e1.advance(), e2.advance()
	}
}

// Equal is a predicate: do t1 and t2 contain equal keys, bound to values equal under veq?
// A nil veq compares keys only.
func Equal[K, V any](cmp ordered.Comparator[K], veq func(V, V) bool, t1, t2 *Node[K, V]) bool {
	e1, e2 := consEnum(t1, nil), consEnum(t2, nil)
	for e1 != nil && e2 != nil {
		if cmp(e1.key, e2.key) != 0 {
			return false
		}
		if veq != nil && !veq(e1.value, e2.value) {
			return false
		}
		e1, e2 = e1.advance(), e2.advance()
	}
	return e1 == nil && e2 == nil
}

// Iterator enumerates the bindings of a tree lazily in ascending order of keys.
// An iterator holds on to a frozen tree; it is not affected by later
// “modifications”, which create new trees anyway.
type Iterator[K, V any] struct {
	e *enumeration[K, V]
}

// NewIterator creates an iterator positioned before the smallest key of t.
func NewIterator[K, V any](t *Node[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{e: consEnum(t, nil)}
}

// Next returns the next binding, or ok=false if the iterator is exhausted.
func (it *Iterator[K, V]) Next() (k K, v V, ok bool) {
	if it == nil || it.e == nil {
		return
	}
	k, v = it.e.key, it.e.value
	it.e = it.e.advance()
	return k, v, true
}

// HasNext is a predicate: will Next return another binding?
func (it *Iterator[K, V]) HasNext() bool {
	return it != nil && it.e != nil
}
