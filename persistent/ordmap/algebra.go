package ordmap

import (
	"github.com/npillmayer/ordered/internal/avl"
	"github.com/npillmayer/ordered/maybe"
)

// Fold accumulates over all bindings of m in ascending order of keys, i.e.
// f(… f(f(acc, k1, v1), k2, v2) …, kn, vn).
func Fold[K, V, A any](m Map[K, V], f func(acc A, k K, v V) A, acc A) A {
	return avl.Fold(m.root, f, acc)
}

// MapValues creates a map with the keys of m, every value replaced by f(value).
// The resulting map belongs to a family with m's comparator.
func MapValues[K, V, W any](m Map[K, V], f func(V) W) Map[K, W] {
	return Map[K, W]{fam: derive[K, V, W](m.family()), root: avl.MapValues(m.root, f)}
}

// MapBindings is MapValues with f receiving the key as well.
func MapBindings[K, V, W any](m Map[K, V], f func(K, V) W) Map[K, W] {
	return Map[K, W]{fam: derive[K, V, W](m.family()), root: avl.MapI(m.root, f)}
}

// Merge combines maps of possibly different value types. For every key bound in
// at least one of a and b, f receives both optional values and returns the
// optional value of the result. Keys for which f returns Nothing are absent from
// the result.
func Merge[K, A, B, C any](a Map[K, A], b Map[K, B],
	f func(k K, x maybe.Maybe[A], y maybe.Maybe[B]) maybe.Maybe[C]) Map[K, C] {
	//
	fam := a.family()
	tracer().Debugf("merge of maps")
	root := avl.Merge(fam.cmp, a.root, b.root, func(k K, x A, okx bool, y B, oky bool) (C, bool) {
		return f(k, maybe.Of(x, okx), maybe.Of(y, oky)).Get()
	})
	return Map[K, C]{fam: derive[K, A, C](fam), root: root}
}
