package ordset

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/internal/avl"
	"github.com/npillmayer/ordered/maybe"
)

// Set is an immutable set of elements in ascending order.
type Set[K any] struct {
	fam  *Family[K]
	root *avl.Node[K, unit]
}

func (s Set[K]) family() *Family[K] {
	assertThat(s.fam != nil, "set has not been created by a family")
	return s.fam
}

func (s Set[K]) derived(root *avl.Node[K, unit]) Set[K] {
	return Set[K]{fam: s.fam, root: root}
}

// Family returns the family s belongs to.
func (s Set[K]) Family() *Family[K] {
	return s.family()
}

// IsEmpty is a predicate: does s contain no elements?
func (s Set[K]) IsEmpty() bool {
	return s.root == nil
}

// Cardinal returns the number of elements in s. This is O(n).
func (s Set[K]) Cardinal() int {
	return avl.Cardinal(s.root)
}

// Mem is a predicate: is k an element of s?
func (s Set[K]) Mem(k K) bool {
	return avl.Mem(s.family().cmp, s.root, k)
}

// Find returns the element of s equal to k. This is useful for comparators which
// consider distinguishable elements equal. If there is no such element, the
// error wraps ordered.ErrNotFound.
func (s Set[K]) Find(k K) (K, error) {
	if n := avl.Find(s.family().cmp, s.root, k); n != nil {
		return n.Key(), nil
	}
	var none K
	return none, fmt.Errorf("%w: element %v", ordered.ErrNotFound, k)
}

// FindOpt is Find returning Nothing if there is no element equal to k.
func (s Set[K]) FindOpt(k K) maybe.Maybe[K] {
	if n := avl.Find(s.family().cmp, s.root, k); n != nil {
		return maybe.Just(n.Key())
	}
	return maybe.Nothing[K]()
}

// With returns a set containing k. If k is already an element, s itself is returned.
func (s Set[K]) With(k K) Set[K] {
	return s.derived(avl.Add(s.family().cmp, same, s.root, k, unit{}))
}

// WithDeleted returns a set without k. If k is not an element, s itself is returned.
func (s Set[K]) WithDeleted(k K) Set[K] {
	return s.derived(avl.Remove(s.family().cmp, s.root, k))
}

func same(unit, unit) bool {
	return true
}

// --- Ordered access --------------------------------------------------------

func key[K any](n *avl.Node[K, unit]) maybe.Maybe[K] {
	if n == nil {
		return maybe.Nothing[K]()
	}
	return maybe.Just(n.Key())
}

// Min returns the smallest element of s. For an empty set the error wraps
// ordered.ErrNotFound.
func (s Set[K]) Min() (K, error) {
	if k, ok := s.MinOpt().Get(); ok {
		return k, nil
	}
	var none K
	return none, fmt.Errorf("%w: min of empty set", ordered.ErrNotFound)
}

// MinOpt returns the smallest element of s, or Nothing.
func (s Set[K]) MinOpt() maybe.Maybe[K] {
	return key(avl.Min(s.root))
}

// Max returns the greatest element of s. For an empty set the error wraps
// ordered.ErrNotFound.
func (s Set[K]) Max() (K, error) {
	if k, ok := s.MaxOpt().Get(); ok {
		return k, nil
	}
	var none K
	return none, fmt.Errorf("%w: max of empty set", ordered.ErrNotFound)
}

// MaxOpt returns the greatest element of s, or Nothing.
func (s Set[K]) MaxOpt() maybe.Maybe[K] {
	return key(avl.Max(s.root))
}

// Choose returns some element of s.
func (s Set[K]) Choose() (K, error) {
	return s.Min()
}

// ChooseOpt is Choose returning Nothing for an empty set.
func (s Set[K]) ChooseOpt() maybe.Maybe[K] {
	return s.MinOpt()
}

// FindFirst returns the smallest element k for which pred(k) holds, where pred
// is monotonically increasing. See ordmap.Map.FindFirst.
func (s Set[K]) FindFirst(pred func(K) bool) (K, error) {
	if k, ok := s.FindFirstOpt(pred).Get(); ok {
		return k, nil
	}
	var none K
	return none, fmt.Errorf("%w: no element satisfies predicate", ordered.ErrNotFound)
}

// FindFirstOpt is FindFirst returning Nothing if no element satisfies pred.
func (s Set[K]) FindFirstOpt(pred func(K) bool) maybe.Maybe[K] {
	return key(avl.FindFirst(s.root, pred))
}

// FindLast returns the greatest element k for which pred(k) holds, where pred
// is monotonically decreasing.
func (s Set[K]) FindLast(pred func(K) bool) (K, error) {
	if k, ok := s.FindLastOpt(pred).Get(); ok {
		return k, nil
	}
	var none K
	return none, fmt.Errorf("%w: no element satisfies predicate", ordered.ErrNotFound)
}

// FindLastOpt is FindLast returning Nothing if no element satisfies pred.
func (s Set[K]) FindLastOpt(pred func(K) bool) maybe.Maybe[K] {
	return key(avl.FindLast(s.root, pred))
}

// --- Traversal -------------------------------------------------------------

func onKey[K any](f func(K) bool) func(K, unit) bool {
	return func(k K, _ unit) bool { return f(k) }
}

// Iter calls f for every element in ascending order.
func (s Set[K]) Iter(f func(K)) {
	avl.Iter(s.root, func(k K, _ unit) { f(k) })
}

// ForEach is an alias for Iter.
func (s Set[K]) ForEach(f func(K)) {
	s.Iter(f)
}

// ForAll is a predicate: do all elements satisfy p? Stops at the first which doesn't.
func (s Set[K]) ForAll(p func(K) bool) bool {
	return avl.ForAll(s.root, onKey(p))
}

// Exists is a predicate: does any element satisfy p?
func (s Set[K]) Exists(p func(K) bool) bool {
	return avl.Exists(s.root, onKey(p))
}

// Filter keeps the elements satisfying pred. If all are kept, s itself is returned.
func (s Set[K]) Filter(pred func(K) bool) Set[K] {
	return s.derived(avl.Filter(s.root, onKey(pred)))
}

// Partition splits s into the elements satisfying pred and the ones which don't.
func (s Set[K]) Partition(pred func(K) bool) (Set[K], Set[K]) {
	yes, no := avl.Partition(s.root, onKey(pred))
	return s.derived(yes), s.derived(no)
}

// Map returns the set of f(k) for all elements k. If f is monotone and
// injective, the structure of s is reused.
func (s Set[K]) Map(f func(K) K) Set[K] {
	return s.derived(avl.MapKeys(s.family().cmp, s.root, f))
}

// Elements returns all elements in ascending order.
func (s Set[K]) Elements() []K {
	return avl.Keys(s.root)
}

// Iterator returns an iterator over the elements of s in ascending order.
func (s Set[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{it: avl.NewIterator(s.root)}
}

// Iterator enumerates the elements of a set lazily.
type Iterator[K any] struct {
	it *avl.Iterator[K, unit]
}

// Next returns the next element, or ok=false if the iterator is exhausted.
func (it *Iterator[K]) Next() (k K, ok bool) {
	k, _, ok = it.it.Next()
	return
}

// HasNext is a predicate: will Next return another element?
func (it *Iterator[K]) HasNext() bool {
	return it.it.HasNext()
}

// Fold accumulates over the elements of s in ascending order.
func Fold[K, A any](s Set[K], f func(acc A, k K) A, acc A) A {
	return avl.Fold(s.root, func(acc A, k K, _ unit) A { return f(acc, k) }, acc)
}

// --- Algebra ---------------------------------------------------------------

// Union returns the set of elements of s or other.
func (s Set[K]) Union(other Set[K]) Set[K] {
	tracer().Debugf("union of sets")
	return s.derived(avl.UnionKeys(s.family().cmp, s.root, other.root))
}

// Inter returns the set of elements of both s and other.
func (s Set[K]) Inter(other Set[K]) Set[K] {
	tracer().Debugf("intersection of sets")
	return s.derived(avl.Inter(s.family().cmp, s.root, other.root))
}

// Diff returns the set of elements of s which are not elements of other.
func (s Set[K]) Diff(other Set[K]) Set[K] {
	tracer().Debugf("difference of sets")
	return s.derived(avl.Diff(s.family().cmp, s.root, other.root))
}

// Split returns the elements of s smaller than k, whether k is an element of s,
// and the elements greater than k.
func (s Set[K]) Split(k K) (Set[K], bool, Set[K]) {
	less, _, present, greater := avl.Split(s.family().cmp, s.root, k)
	return s.derived(less), present, s.derived(greater)
}

// Subset is a predicate: is every element of s an element of other?
func (s Set[K]) Subset(other Set[K]) bool {
	return avl.Subset(s.family().cmp, s.root, other.root)
}

// Compare compares s and other element by element in ascending order. A set is
// smaller than any of its extensions. The result is negative, zero or positive.
func (s Set[K]) Compare(other Set[K]) int {
	return avl.Compare[K, unit](s.family().cmp, nil, s.root, other.root)
}

// Equal is a predicate: do s and other contain equal elements?
func (s Set[K]) Equal(other Set[K]) bool {
	return avl.Equal[K, unit](s.family().cmp, nil, s.root, other.root)
}

// --- Diagnostics -----------------------------------------------------------

// Check validates the internal invariants of s. A non-nil error wraps
// ordered.ErrInvariant and indicates a defect of this module.
func (s Set[K]) Check() error {
	return avl.Check(s.family().cmp, s.root)
}

// Dump renders the tree structure of s.
func (s Set[K]) Dump() string {
	return avl.Dump(s.root)
}

func (s Set[K]) String() string {
	var b strings.Builder
	b.WriteString("{")
	s.Iter(func(k K) {
		if b.Len() > 1 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", k)
	})
	b.WriteString("}")
	return b.String()
}
