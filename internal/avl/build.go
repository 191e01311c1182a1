package avl

import (
	"github.com/npillmayer/ordered"
	"golang.org/x/exp/slices"
)

// OfSortedList builds a balanced tree from bindings in strictly ascending order of
// keys, in linear time. The order is not checked.
func OfSortedList[K, V any](bindings []ordered.Pair[K, V]) *Node[K, V] {
	t, rest := ofSorted(len(bindings), bindings)
	assertThat(len(rest) == 0, "of-sorted-list: %d bindings left over", len(rest))
	return t
}

// ofSorted builds a tree from the first n bindings of l by recursive halving
// and returns it together with the remaining bindings.
func ofSorted[K, V any](n int, l []ordered.Pair[K, V]) (*Node[K, V], []ordered.Pair[K, V]) {
	assertThat(len(l) >= n, "of-sorted-list: inconsistent list tail, %d < %d", len(l), n)
	switch n {
	case 0:
		return nil, l
	case 1:
		return Singleton(l[0].Key, l[0].Value), l[1:]
	case 2:
		return &Node[K, V]{
			left:   Singleton(l[0].Key, l[0].Value),
			key:    l[1].Key,
			value:  l[1].Value,
			height: 2,
		}, l[2:]
	case 3:
		return &Node[K, V]{
			left:   Singleton(l[0].Key, l[0].Value),
			key:    l[1].Key,
			value:  l[1].Value,
			right:  Singleton(l[2].Key, l[2].Value),
			height: 2,
		}, l[3:]
	}
	nl := n / 2
	left, rest := ofSorted(nl, l)
	assertThat(len(rest) > 0, "of-sorted-list: inconsistent list tail, missing pivot")
	pivot := rest[0]
	right, rest := ofSorted(n-nl-1, rest[1:])
	return create(left, pivot.Key, pivot.Value, right), rest
}

// OfList builds a tree from bindings in arbitrary order. Of several bindings with
// equal keys, policy decides which one survives. Up to 4 bindings are inserted
// one by one, larger inputs are sorted and built with OfSortedList.
func OfList[K, V any](cmp ordered.Comparator[K], policy ordered.DuplicatePolicy,
	bindings []ordered.Pair[K, V]) *Node[K, V] {
	//
	if len(bindings) <= 4 {
		var t *Node[K, V]
		for _, b := range bindings {
			if policy == ordered.FirstWins {
				t = addAbsent(cmp, t, b.Key, b.Value)
			} else {
				t = Add(cmp, never[V], t, b.Key, b.Value)
			}
		}
		return t
	}
	tracer().Debugf("of-list: sorting %d bindings, %s", len(bindings), policy)
	sorted := make([]ordered.Pair[K, V], len(bindings))
	copy(sorted, bindings)
	slices.SortStableFunc(sorted, func(a, b ordered.Pair[K, V]) bool {
		return cmp(a.Key, b.Key) < 0
	})
	uniq := sorted[:1]
	for _, b := range sorted[1:] {
		last := len(uniq) - 1
		if cmp(uniq[last].Key, b.Key) != 0 {
			uniq = append(uniq, b)
		} else if policy == ordered.LastWins {
			uniq[last] = b // stable sort keeps input order among equal keys
		}
	}
	return OfSortedList(uniq)
}

func never[V any](V, V) bool {
	return false
}
