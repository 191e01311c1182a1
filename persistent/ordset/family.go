package ordset

import (
	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/internal/avl"
	"golang.org/x/exp/constraints"
)

type unit = struct{}

// Family is a factory for sets sharing a comparator.
type Family[K any] struct {
	cmp    ordered.Comparator[K]
	policy ordered.DuplicatePolicy
}

// Make constructs a family of sets ordered by cmp.
func Make[K any](cmp ordered.Comparator[K], opts ...Option[K]) *Family[K] {
	assertThat(cmp != nil, "family needs a comparator")
	fam := Family[K]{cmp: cmp, policy: ordered.LastWins}
	for _, option := range opts {
		fam = option(fam)
	}
	return &fam
}

// Ordered constructs a family of sets for elements with a natural order.
func Ordered[K constraints.Ordered](opts ...Option[K]) *Family[K] {
	return Make[K](ordered.Compare[K], opts...)
}

// Option is a type to help initializing set families at creation time.
type Option[K any] func(Family[K]) Family[K]

// Duplicates is an option to decide which of several elements, equal by the
// comparator, is kept by OfList. This matters only for comparators which
// consider distinguishable elements equal, e.g. case-insensitive ones.
func Duplicates[K any](policy ordered.DuplicatePolicy) Option[K] {
	return func(fam Family[K]) Family[K] {
		fam.policy = policy
		return fam
	}
}

// Comparator returns the comparator of the family.
func (fam *Family[K]) Comparator() ordered.Comparator[K] {
	return fam.cmp
}

// Empty returns the empty set of the family.
func (fam *Family[K]) Empty() Set[K] {
	return Set[K]{fam: fam}
}

// Singleton returns a set containing k only.
func (fam *Family[K]) Singleton(k K) Set[K] {
	return Set[K]{fam: fam, root: avl.Singleton(k, unit{})}
}

// OfList creates a set from elements in arbitrary order.
func (fam *Family[K]) OfList(elements ...K) Set[K] {
	bindings := make([]ordered.Pair[K, unit], len(elements))
	for i, k := range elements {
		bindings[i] = ordered.P(k, unit{})
	}
	return Set[K]{fam: fam, root: avl.OfList(fam.cmp, fam.policy, bindings)}
}

// OfSortedList creates a set in linear time from strictly ascending elements.
// Passing unsorted elements or duplicates results in a set with undefined behaviour.
func (fam *Family[K]) OfSortedList(elements []K) Set[K] {
	tracer().Debugf("of-sorted-list with %d elements", len(elements))
	bindings := make([]ordered.Pair[K, unit], len(elements))
	for i, k := range elements {
		bindings[i] = ordered.P(k, unit{})
	}
	return Set[K]{fam: fam, root: avl.OfSortedList(bindings)}
}
