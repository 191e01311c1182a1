package ordered

import "golang.org/x/exp/constraints"

// Comparator is a three-way comparison of keys. It returns a negative number if a < b,
// zero if a and b are equal, and a positive number if a > b.
//
// A comparator has to be a strict total order. Inconsistent comparators produce
// structurally valid but meaningless containers; this is not checked.
type Comparator[K any] func(a, b K) int

// Compare is the natural ordering of ordered types.
func Compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Reverse returns a comparator for the inverse order of cmp.
func Reverse[K any](cmp Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return cmp(b, a)
	}
}

// By returns a comparator which orders values of type T by a key extracted with
// key and compared with cmp, i.e. h = cmp ∘ key.
func By[T, K any](key func(T) K, cmp Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return cmp(key(a), key(b))
	}
}

// Then combines comparators lexicographically: tie is consulted only if cmp
// considers two values equal.
func Then[K any](cmp, tie Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		if c := cmp(a, b); c != 0 {
			return c
		}
		return tie(a, b)
	}
}
