package ordmap

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/internal/avl"
	"github.com/npillmayer/ordered/maybe"
)

// Map is an immutable map with keys in ascending order. Maps are values; copying
// a map is cheap and copies share all of their structure.
type Map[K, V any] struct {
	fam  *Family[K, V]
	root *avl.Node[K, V]
}

func (m Map[K, V]) family() *Family[K, V] {
	assertThat(m.fam != nil, "map has not been created by a family")
	return m.fam
}

func (m Map[K, V]) derived(root *avl.Node[K, V]) Map[K, V] {
	return Map[K, V]{fam: m.fam, root: root}
}

// Family returns the family m belongs to.
func (m Map[K, V]) Family() *Family[K, V] {
	return m.family()
}

// IsEmpty is a predicate: does m contain no bindings?
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Cardinal returns the number of bindings in m. This is O(n).
func (m Map[K, V]) Cardinal() int {
	return avl.Cardinal(m.root)
}

// --- Lookup ----------------------------------------------------------------

// Find returns the value bound to k. If k is not bound, the error wraps
// ordered.ErrNotFound.
func (m Map[K, V]) Find(k K) (V, error) {
	if n := avl.Find(m.family().cmp, m.root, k); n != nil {
		return n.Value(), nil
	}
	var none V
	return none, fmt.Errorf("%w: key %v", ordered.ErrNotFound, k)
}

// FindOpt returns the value bound to k, or Nothing.
func (m Map[K, V]) FindOpt(k K) maybe.Maybe[V] {
	if n := avl.Find(m.family().cmp, m.root, k); n != nil {
		return maybe.Just(n.Value())
	}
	return maybe.Nothing[V]()
}

// FindWithDefault returns the value bound to k, or def if k is not bound.
func (m Map[K, V]) FindWithDefault(k K, def V) V {
	if n := avl.Find(m.family().cmp, m.root, k); n != nil {
		return n.Value()
	}
	return def
}

// Mem is a predicate: is k bound in m?
func (m Map[K, V]) Mem(k K) bool {
	return avl.Mem(m.family().cmp, m.root, k)
}

// --- Modification ----------------------------------------------------------

// With returns a map with k bound to v. A previous binding of k is replaced.
// If k is already bound to a value identical to v, m itself is returned.
func (m Map[K, V]) With(k K, v V) Map[K, V] {
	fam := m.family()
	return m.derived(avl.Add(fam.cmp, fam.same, m.root, k, v))
}

// WithDeleted returns a map without a binding for k. If k is not bound,
// m itself is returned.
func (m Map[K, V]) WithDeleted(k K) Map[K, V] {
	return m.derived(avl.Remove(m.family().cmp, m.root, k))
}

// Update adds, replaces or removes the binding of k in a single pass. f receives
// the current value of k (or Nothing) and returns the new value (or Nothing to
// remove the binding). If the result is identical to m, m itself is returned.
func (m Map[K, V]) Update(k K, f func(maybe.Maybe[V]) maybe.Maybe[V]) Map[K, V] {
	fam := m.family()
	root := avl.Update(fam.cmp, fam.same, m.root, k, func(v V, ok bool) (V, bool) {
		return f(maybe.Of(v, ok)).Get()
	})
	return m.derived(root)
}

// WithMany adds all bindings to m, left to right.
func (m Map[K, V]) WithMany(bindings ...ordered.Pair[K, V]) Map[K, V] {
	fam := m.family()
	root := m.root
	for _, b := range bindings {
		root = avl.Add(fam.cmp, fam.same, root, b.Key, b.Value)
	}
	return m.derived(root)
}

// WithoutMany removes the bindings for all keys from m.
func (m Map[K, V]) WithoutMany(keys ...K) Map[K, V] {
	cmp := m.family().cmp
	root := m.root
	for _, k := range keys {
		root = avl.Remove(cmp, root, k)
	}
	return m.derived(root)
}

// --- Ordered access --------------------------------------------------------

func binding[K, V any](n *avl.Node[K, V]) ordered.Pair[K, V] {
	return ordered.P(n.Key(), n.Value())
}

func bindingOpt[K, V any](n *avl.Node[K, V]) maybe.Maybe[ordered.Pair[K, V]] {
	if n == nil {
		return maybe.Nothing[ordered.Pair[K, V]]()
	}
	return maybe.Just(binding(n))
}

// MinBinding returns the binding with the smallest key. For an empty map the
// error wraps ordered.ErrNotFound.
func (m Map[K, V]) MinBinding() (ordered.Pair[K, V], error) {
	if m.root == nil {
		return ordered.Pair[K, V]{}, fmt.Errorf("%w: min of empty map", ordered.ErrNotFound)
	}
	return binding(avl.Min(m.root)), nil
}

// MinBindingOpt returns the binding with the smallest key, or Nothing.
func (m Map[K, V]) MinBindingOpt() maybe.Maybe[ordered.Pair[K, V]] {
	return bindingOpt(avl.Min(m.root))
}

// MaxBinding returns the binding with the greatest key. For an empty map the
// error wraps ordered.ErrNotFound.
func (m Map[K, V]) MaxBinding() (ordered.Pair[K, V], error) {
	if m.root == nil {
		return ordered.Pair[K, V]{}, fmt.Errorf("%w: max of empty map", ordered.ErrNotFound)
	}
	return binding(avl.Max(m.root)), nil
}

// MaxBindingOpt returns the binding with the greatest key, or Nothing.
func (m Map[K, V]) MaxBindingOpt() maybe.Maybe[ordered.Pair[K, V]] {
	return bindingOpt(avl.Max(m.root))
}

// Choose returns some binding of m. Currently this is the one with the smallest
// key, but clients should not rely on it.
func (m Map[K, V]) Choose() (ordered.Pair[K, V], error) {
	return m.MinBinding()
}

// ChooseOpt is Choose returning Nothing for an empty map.
func (m Map[K, V]) ChooseOpt() maybe.Maybe[ordered.Pair[K, V]] {
	return m.MinBindingOpt()
}

// FindFirst returns the binding with the smallest key k for which pred(k) holds.
// pred has to be monotonically increasing: once true for a key, it is true for
// all greater keys. The result for other predicates is unspecified.
func (m Map[K, V]) FindFirst(pred func(K) bool) (ordered.Pair[K, V], error) {
	if n := avl.FindFirst(m.root, pred); n != nil {
		return binding(n), nil
	}
	return ordered.Pair[K, V]{}, fmt.Errorf("%w: no key satisfies predicate", ordered.ErrNotFound)
}

// FindFirstOpt is FindFirst returning Nothing if no key satisfies pred.
func (m Map[K, V]) FindFirstOpt(pred func(K) bool) maybe.Maybe[ordered.Pair[K, V]] {
	return bindingOpt(avl.FindFirst(m.root, pred))
}

// FindLast returns the binding with the greatest key k for which pred(k) holds.
// pred has to be monotonically decreasing: once false for a key, it is false for
// all greater keys. The result for other predicates is unspecified.
func (m Map[K, V]) FindLast(pred func(K) bool) (ordered.Pair[K, V], error) {
	if n := avl.FindLast(m.root, pred); n != nil {
		return binding(n), nil
	}
	return ordered.Pair[K, V]{}, fmt.Errorf("%w: no key satisfies predicate", ordered.ErrNotFound)
}

// FindLastOpt is FindLast returning Nothing if no key satisfies pred.
func (m Map[K, V]) FindLastOpt(pred func(K) bool) maybe.Maybe[ordered.Pair[K, V]] {
	return bindingOpt(avl.FindLast(m.root, pred))
}

// --- Traversal -------------------------------------------------------------

// Iter calls f for every binding in ascending order of keys.
func (m Map[K, V]) Iter(f func(K, V)) {
	avl.Iter(m.root, f)
}

// ForEach is an alias for Iter.
func (m Map[K, V]) ForEach(f func(K, V)) {
	avl.Iter(m.root, f)
}

// ForAll is a predicate: do all bindings satisfy p? Bindings are tested in
// ascending order of keys, stopping at the first failure.
func (m Map[K, V]) ForAll(p func(K, V) bool) bool {
	return avl.ForAll(m.root, p)
}

// Exists is a predicate: does any binding satisfy p? Bindings are tested in
// ascending order of keys, stopping at the first success.
func (m Map[K, V]) Exists(p func(K, V) bool) bool {
	return avl.Exists(m.root, p)
}

// Map returns a map with the same keys, every value replaced by f(value).
// Use MapValues to map to a different value type.
func (m Map[K, V]) Map(f func(V) V) Map[K, V] {
	return m.derived(avl.MapValues(m.root, f))
}

// MapI is Map with f receiving the key as well.
func (m Map[K, V]) MapI(f func(K, V) V) Map[K, V] {
	return m.derived(avl.MapI(m.root, f))
}

// Filter keeps the bindings satisfying pred. If all bindings are kept, m itself
// is returned.
func (m Map[K, V]) Filter(pred func(K, V) bool) Map[K, V] {
	return m.derived(avl.Filter(m.root, pred))
}

// Partition splits m into the bindings satisfying pred and the ones which don't.
func (m Map[K, V]) Partition(pred func(K, V) bool) (Map[K, V], Map[K, V]) {
	yes, no := avl.Partition(m.root, pred)
	return m.derived(yes), m.derived(no)
}

// Bindings returns all bindings in ascending order of keys.
func (m Map[K, V]) Bindings() []ordered.Pair[K, V] {
	return avl.Bindings(m.root)
}

// Keys returns all keys in ascending order.
func (m Map[K, V]) Keys() []K {
	return avl.Keys(m.root)
}

// Values returns all values in ascending order of their keys.
func (m Map[K, V]) Values() []V {
	return avl.Values(m.root)
}

// Iterator returns an iterator over the bindings of m in ascending order of keys.
//
//     it := m.Iterator()
//     for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
//         …
//     }
//
func (m Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{it: avl.NewIterator(m.root)}
}

// Iterator enumerates the bindings of a map lazily. It is not affected by maps
// derived from its map after its creation.
type Iterator[K, V any] struct {
	it *avl.Iterator[K, V]
}

// Next returns the next binding, or ok=false if the iterator is exhausted.
func (it *Iterator[K, V]) Next() (K, V, bool) {
	return it.it.Next()
}

// HasNext is a predicate: will Next return another binding?
func (it *Iterator[K, V]) HasNext() bool {
	return it.it.HasNext()
}

// --- Algebra ---------------------------------------------------------------

// Split returns the bindings of m with keys smaller than k, the value bound to
// k (if any) and the bindings with keys greater than k.
func (m Map[K, V]) Split(k K) (Map[K, V], maybe.Maybe[V], Map[K, V]) {
	less, v, present, greater := avl.Split(m.family().cmp, m.root, k)
	return m.derived(less), maybe.Of(v, present), m.derived(greater)
}

// Union combines m and other. Keys bound in only one of them keep their binding;
// for keys bound in both, f decides about the value (or drops the key by
// returning Nothing).
func (m Map[K, V]) Union(other Map[K, V], f func(k K, a, b V) maybe.Maybe[V]) Map[K, V] {
	tracer().Debugf("union of maps")
	root := avl.Union(m.family().cmp, m.root, other.root, func(k K, a, b V) (V, bool) {
		return f(k, a, b).Get()
	})
	return m.derived(root)
}

// Compare compares m and other binding by binding in ascending order of keys,
// first by key, then by value with vcmp. A map is smaller than any of its
// extensions. The result is negative, zero or positive.
func (m Map[K, V]) Compare(other Map[K, V], vcmp func(V, V) int) int {
	assertThat(vcmp != nil, "compare needs a comparator for values")
	return avl.Compare(m.family().cmp, vcmp, m.root, other.root)
}

// Equal is a predicate: do m and other have equal keys bound to values which are
// equal according to veq? Stops at the first difference.
func (m Map[K, V]) Equal(other Map[K, V], veq func(V, V) bool) bool {
	assertThat(veq != nil, "equal needs a predicate for values")
	return avl.Equal(m.family().cmp, veq, m.root, other.root)
}

// --- Diagnostics -----------------------------------------------------------

// Check validates the internal invariants of m. A non-nil error wraps
// ordered.ErrInvariant and indicates a defect of this module.
func (m Map[K, V]) Check() error {
	return avl.Check(m.family().cmp, m.root)
}

// Dump renders the tree structure of m.
func (m Map[K, V]) Dump() string {
	return avl.Dump(m.root)
}

func (m Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	avl.Iter(m.root, func(k K, v V) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", k, v)
	})
	b.WriteString("}")
	return b.String()
}
