package ordmap

import (
	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/internal/avl"
	"golang.org/x/exp/constraints"
)

// Family is a factory for maps sharing a comparator for keys and a test for
// value identity. Families are immutable and may be shared freely.
type Family[K, V any] struct {
	cmp    ordered.Comparator[K]
	same   func(V, V) bool
	policy ordered.DuplicatePolicy
}

// Make constructs a family of maps ordered by cmp, with options, if you need any.
// Use it like this:
//
//     words := ordmap.Make[string, int](strings.Compare, ordmap.Duplicates[string, int](ordered.FirstWins))
//     m := words.Singleton("Galaxy", 42)
//
func Make[K, V any](cmp ordered.Comparator[K], opts ...Option[K, V]) *Family[K, V] {
	assertThat(cmp != nil, "family needs a comparator")
	fam := Family[K, V]{
		cmp:    cmp,
		same:   avl.Identical[V],
		policy: ordered.LastWins,
	}
	for _, option := range opts {
		fam = option(fam)
	}
	return &fam
}

// Ordered constructs a family of maps for keys with a natural order.
func Ordered[K constraints.Ordered, V any](opts ...Option[K, V]) *Family[K, V] {
	return Make[K, V](ordered.Compare[K], opts...)
}

// Option is a type to help initializing map families at creation time.
type Option[K, V any] func(Family[K, V]) Family[K, V]

// Identical is an option to set the test whether a value, bound to a key already
// present, is the same as the value bound before. If it is, With and Update return
// the unchanged map. The default treats values of comparable type as identical if
// they are ==, and values of non-comparable type as never identical.
func Identical[K, V any](same func(V, V) bool) Option[K, V] {
	return func(fam Family[K, V]) Family[K, V] {
		if same != nil {
			fam.same = same
		}
		return fam
	}
}

// Duplicates is an option to decide which binding survives if OfList is called
// with several bindings for equal keys. The default is ordered.LastWins.
func Duplicates[K, V any](policy ordered.DuplicatePolicy) Option[K, V] {
	return func(fam Family[K, V]) Family[K, V] {
		fam.policy = policy
		return fam
	}
}

// Comparator returns the comparator of the family.
func (fam *Family[K, V]) Comparator() ordered.Comparator[K] {
	return fam.cmp
}

// Empty returns the empty map of the family.
func (fam *Family[K, V]) Empty() Map[K, V] {
	return Map[K, V]{fam: fam}
}

// Singleton returns a map with the single binding k → v.
func (fam *Family[K, V]) Singleton(k K, v V) Map[K, V] {
	return Map[K, V]{fam: fam, root: avl.Singleton(k, v)}
}

// OfList creates a map from bindings in arbitrary order. Of several bindings with
// equal keys, the family's duplicate policy decides which one is kept.
func (fam *Family[K, V]) OfList(bindings ...ordered.Pair[K, V]) Map[K, V] {
	return Map[K, V]{fam: fam, root: avl.OfList(fam.cmp, fam.policy, bindings)}
}

// OfSortedList creates a map in linear time from bindings with strictly ascending keys.
// Passing unsorted bindings or duplicate keys results in a map with undefined behaviour.
func (fam *Family[K, V]) OfSortedList(bindings []ordered.Pair[K, V]) Map[K, V] {
	tracer().Debugf("of-sorted-list with %d bindings", len(bindings))
	return Map[K, V]{fam: fam, root: avl.OfSortedList(bindings)}
}

// derive creates a family for another value type, inheriting the comparator and
// duplicate policy of fam. Value identity falls back to the default.
func derive[K, V, W any](fam *Family[K, V]) *Family[K, W] {
	return &Family[K, W]{
		cmp:    fam.cmp,
		same:   avl.Identical[W],
		policy: fam.policy,
	}
}
