package avl

import "github.com/npillmayer/ordered"

// Split decomposes t into the bindings with keys smaller than k, the value bound
// to k (if present) and the bindings with keys greater than k.
func Split[K, V any](cmp ordered.Comparator[K], t *Node[K, V], k K) (
	less *Node[K, V], v V, present bool, greater *Node[K, V]) {
	//
	if t == nil {
		return
	}
	c := cmp(k, t.key)
	if c == 0 {
		return t.left, t.value, true, t.right
	}
	if c < 0 {
		ll, v, present, rl := Split(cmp, t.left, k)
		return ll, v, present, join(rl, t.key, t.value, t.right)
	}
	lr, v, present, rr := Split(cmp, t.right, k)
	return join(t.left, t.key, t.value, lr), v, present, rr
}

// Merge combines two trees of possibly different value types. For every key present
// in at least one of s1 and s2, f is called with both (optional) values and decides
// about the (optional) value of the result.
func Merge[K, A, B, C any](cmp ordered.Comparator[K], s1 *Node[K, A], s2 *Node[K, B],
	f func(k K, a A, okA bool, b B, okB bool) (C, bool)) *Node[K, C] {
	//
	if s1 == nil && s2 == nil {
		return nil
	}
	if s1 != nil && s1.height >= s2.Height() {
		l2, v2, ok2, r2 := Split(cmp, s2, s1.key)
		l := Merge(cmp, s1.left, l2, f)
		r := Merge(cmp, s1.right, r2, f)
		c, keep := f(s1.key, s1.value, true, v2, ok2)
		return concatOrJoin(l, s1.key, c, keep, r)
	}
	assertThat(s2 != nil, "merge: expected right tree to be non-empty")
	l1, v1, ok1, r1 := Split(cmp, s1, s2.key)
	l := Merge(cmp, l1, s2.left, f)
	r := Merge(cmp, r1, s2.right, f)
	c, keep := f(s2.key, v1, ok1, s2.value, true)
	return concatOrJoin(l, s2.key, c, keep, r)
}

// Union combines two trees of equal value type. For keys present in both s1 and s2,
// f decides about the value in the result; keys present in only one of them are
// kept unchanged.
func Union[K, V any](cmp ordered.Comparator[K], s1, s2 *Node[K, V],
	f func(k K, a, b V) (V, bool)) *Node[K, V] {
	//
	if s1 == nil {
		return s2
	}
	if s2 == nil {
		return s1
	}
	if s1.height >= s2.height {
		l2, v2, ok2, r2 := Split(cmp, s2, s1.key)
		l := Union(cmp, s1.left, l2, f)
		r := Union(cmp, s1.right, r2, f)
		if ok2 {
			v, keep := f(s1.key, s1.value, v2)
			return concatOrJoin(l, s1.key, v, keep, r)
		}
		return join(l, s1.key, s1.value, r)
	}
	l1, v1, ok1, r1 := Split(cmp, s1, s2.key)
	l := Union(cmp, l1, s2.left, f)
	r := Union(cmp, r1, s2.right, f)
	if ok1 {
		v, keep := f(s2.key, v1, s2.value)
		return concatOrJoin(l, s2.key, v, keep, r)
	}
	return join(l, s2.key, s2.value, r)
}

// UnionKeys is the set union of s1 and s2. For keys present in both trees it is
// unspecified which value survives; it is meant for trees with unit values.
// If one of the trees is a singleton, the union is a single insertion.
func UnionKeys[K, V any](cmp ordered.Comparator[K], s1, s2 *Node[K, V]) *Node[K, V] {
	if s1 == nil {
		return s2
	}
	if s2 == nil {
		return s1
	}
	if s1.height >= s2.height {
		if s2.height == 1 {
			return addAbsent(cmp, s1, s2.key, s2.value)
		}
		l2, _, _, r2 := Split(cmp, s2, s1.key)
		return join(UnionKeys(cmp, s1.left, l2), s1.key, s1.value, UnionKeys(cmp, s1.right, r2))
	}
	if s1.height == 1 {
		return addAbsent(cmp, s2, s1.key, s1.value)
	}
	l1, _, _, r1 := Split(cmp, s1, s2.key)
	return join(UnionKeys(cmp, l1, s2.left), s2.key, s2.value, UnionKeys(cmp, r1, s2.right))
}

// Inter keeps the bindings of s1 whose keys are present in s2 as well.
func Inter[K, V any](cmp ordered.Comparator[K], s1, s2 *Node[K, V]) *Node[K, V] {
	if s1 == nil || s2 == nil {
		return nil
	}
	l2, _, present, r2 := Split(cmp, s2, s1.key)
	l, r := Inter(cmp, s1.left, l2), Inter(cmp, s1.right, r2)
	if present {
		return join(l, s1.key, s1.value, r)
	}
	return concat(l, r)
}

// Diff keeps the bindings of s1 whose keys are absent from s2.
func Diff[K, V any](cmp ordered.Comparator[K], s1, s2 *Node[K, V]) *Node[K, V] {
	if s1 == nil {
		return nil
	}
	if s2 == nil {
		return s1
	}
	l2, _, present, r2 := Split(cmp, s2, s1.key)
	l, r := Diff(cmp, s1.left, l2), Diff(cmp, s1.right, r2)
	if present {
		return concat(l, r)
	}
	return join(l, s1.key, s1.value, r)
}

// Subset is a predicate: is every key of s1 present in s2?
func Subset[K, V any](cmp ordered.Comparator[K], s1, s2 *Node[K, V]) bool {
	for s1 != nil {
		if s2 == nil {
			return false
		}
		c := cmp(s1.key, s2.key)
		switch {
		case c == 0:
			if !Subset(cmp, s1.left, s2.left) {
				return false
			}
			s1, s2 = s1.right, s2.right
		case c < 0: // s1.key and s1.left have to be covered by s2.left
			lower := &Node[K, V]{left: s1.left, key: s1.key, value: s1.value}
			if !Subset(cmp, lower, s2.left) {
				return false
			}
			s1 = s1.right
		default: // s1.key and s1.right have to be covered by s2.right
			upper := &Node[K, V]{key: s1.key, value: s1.value, right: s1.right}
			if !Subset(cmp, upper, s2.right) {
				return false
			}
			s1 = s1.left
		}
	}
	return true
}

// Filter keeps the bindings satisfying pred. Returns t itself if every binding is kept.
func Filter[K, V any](t *Node[K, V], pred func(K, V) bool) *Node[K, V] {
	if t == nil {
		return nil
	}
	l := Filter(t.left, pred)
	keep := pred(t.key, t.value)
	r := Filter(t.right, pred)
	if !keep {
		return concat(l, r)
	}
	if l == t.left && r == t.right {
		return t
	}
	return join(l, t.key, t.value, r)
}

// Partition splits t into the bindings satisfying pred and the ones which don't.
func Partition[K, V any](t *Node[K, V], pred func(K, V) bool) (yes, no *Node[K, V]) {
	if t == nil {
		return nil, nil
	}
	lt, lf := Partition(t.left, pred)
	keep := pred(t.key, t.value)
	rt, rf := Partition(t.right, pred)
	if keep {
		return join(lt, t.key, t.value, rt), concat(lf, rf)
	}
	return concat(lt, rt), join(lf, t.key, t.value, rf)
}

// MapKeys applies f to every key, keeping the values. Where f preserves the order
// of keys the tree structure is reused; otherwise keys are re-inserted. Keys mapped
// onto equal keys collapse into one binding.
func MapKeys[K, V any](cmp ordered.Comparator[K], t *Node[K, V], f func(K) K) *Node[K, V] {
	if t == nil {
		return nil
	}
	l := MapKeys(cmp, t.left, f)
	k := f(t.key)
	r := MapKeys(cmp, t.right, f)
	if l == t.left && r == t.right && Identical(k, t.key) {
		return t
	}
	return tryJoin(cmp, l, k, t.value, r)
}

func tryJoin[K, V any](cmp ordered.Comparator[K], l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	if (l == nil || cmp(maxNode(l).key, k) < 0) && (r == nil || cmp(k, minNode(r).key) < 0) {
		return join(l, k, v, r)
	}
	return UnionKeys(cmp, l, addAbsent(cmp, r, k, v))
}
