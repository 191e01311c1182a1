package avl

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmp ordered.Comparator[int] = ordered.Compare[int]

func TestBalRotateRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.avl")
	defer teardown()
	//
	l := OfSortedList(seq(1, 7)) // height 3
	if l.Height() != 3 {
		t.Fatalf("expected tree of 7 keys to have height 3, has %d", l.Height())
	}
	tree := bal(l, 8, 8, nil)
	if err := Check(cmp, tree); err != nil {
		t.Logf("tree =\n%s", Dump(tree))
		t.Fatal(err)
	}
	if tree.key != 4 {
		t.Logf("tree =\n%s", Dump(tree))
		t.Errorf("expected rotation to make 4 the new root, is %d", tree.key)
	}
}

func TestBalDoubleRotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.avl")
	defer teardown()
	//
	lr := create(Singleton(3, 3), 4, 4, Singleton(5, 5))
	l := create(Singleton(1, 1), 2, 2, lr)
	tree := bal(l, 6, 6, nil)
	if err := Check(cmp, tree); err != nil {
		t.Logf("tree =\n%s", Dump(tree))
		t.Fatal(err)
	}
	if tree.key != 4 {
		t.Logf("tree =\n%s", Dump(tree))
		t.Errorf("expected double rotation to lift 4 to the root, root is %d", tree.key)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, Keys(tree))
}

func TestBalTolerance(t *testing.T) {
	l := OfSortedList(seq(1, 3)) // height 2
	tree := bal(l, 4, 4, nil)    // difference of 2 is tolerated
	if tree.key != 4 || tree.left != l {
		t.Logf("tree =\n%s", Dump(tree))
		t.Error("expected bal to tolerate a height difference of 2 without rotation")
	}
}

func TestJoinDisparateHeights(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.avl")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	big := OfSortedList(seq(1, 100))
	tree := join(big, 101, 101, Singleton(102, 102))
	require.NoError(t, Check(cmp, tree))
	assert.Equal(t, 102, Cardinal(tree))
	tree = join(Singleton(0, 0), 1, 1, OfSortedList(seq(2, 200)))
	require.NoError(t, Check(cmp, tree))
	assert.Equal(t, 201, Cardinal(tree))
	tree = join[int, int](nil, 1, 1, nil)
	assert.Equal(t, 1, tree.Height())
}

func TestConcat(t *testing.T) {
	tree := concat(OfSortedList(seq(1, 50)), OfSortedList(seq(51, 53)))
	require.NoError(t, Check(cmp, tree))
	assert.Equal(t, seqKeys(1, 53), Keys(tree))
	tree = concatOrJoin(OfSortedList(seq(1, 5)), 6, 6, false, OfSortedList(seq(7, 9)))
	assert.False(t, Mem(cmp, tree, 6))
	tree = concatOrJoin(OfSortedList(seq(1, 5)), 6, 6, true, OfSortedList(seq(7, 9)))
	assert.True(t, Mem(cmp, tree, 6))
}

func TestSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.avl")
	defer teardown()
	//
	tree := OfSortedList(seq(1, 5))
	less, v, present, greater := Split(cmp, tree, 3)
	if !present || v != 3 {
		t.Errorf("expected split at 3 to find 3, found=%v, v=%d", present, v)
	}
	assert.Equal(t, []int{1, 2}, Keys(less))
	assert.Equal(t, []int{4, 5}, Keys(greater))
	less, _, present, greater = Split(cmp, tree, 0)
	assert.False(t, present)
	assert.Nil(t, less)
	assert.Equal(t, 5, Cardinal(greater))
	require.NoError(t, Check(cmp, greater))
}

func TestOfSortedListSmallAndLarge(t *testing.T) {
	for n := 0; n <= 33; n++ {
		tree := OfSortedList(seq(1, n))
		if err := Check(cmp, tree); err != nil {
			t.Logf("tree =\n%s", Dump(tree))
			t.Fatalf("n=%d: %v", n, err)
		}
		if Cardinal(tree) != n {
			t.Errorf("n=%d: expected tree of size %d, is %d", n, n, Cardinal(tree))
		}
	}
}

func TestOfSortedListInconsistentTail(t *testing.T) {
	assert.Panics(t, func() {
		ofSorted(3, seq(1, 2))
	}, "expected inconsistent list tail to panic")
	assert.Panics(t, func() {
		removeMinBinding[int, int](nil)
	}, "expected removing the minimum of an empty tree to panic")
}

func TestOfListDuplicates(t *testing.T) {
	small := []ordered.Pair[int, string]{ordered.P(1, "a"), ordered.P(2, "b"), ordered.P(1, "c")}
	tree := OfList(cmp, ordered.LastWins, small)
	assert.Equal(t, "c", Find(cmp, tree, 1).value)
	tree = OfList(cmp, ordered.FirstWins, small)
	assert.Equal(t, "a", Find(cmp, tree, 1).value)
	large := []ordered.Pair[int, string]{
		ordered.P(5, "e"), ordered.P(1, "a"), ordered.P(3, "c"), ordered.P(1, "x"),
		ordered.P(4, "d"), ordered.P(2, "b"), ordered.P(1, "y"),
	}
	tree = OfList(cmp, ordered.LastWins, large)
	require.NoError(t, Check(cmp, tree))
	assert.Equal(t, 5, Cardinal(tree))
	assert.Equal(t, "y", Find(cmp, tree, 1).value)
	tree = OfList(cmp, ordered.FirstWins, large)
	assert.Equal(t, "a", Find(cmp, tree, 1).value)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, Values(tree))
}

func TestAddSharing(t *testing.T) {
	tree := OfSortedList(seq(1, 20))
	if Add(cmp, nil, tree, 7, 7) != tree {
		t.Error("expected re-adding an identical binding to return the same tree")
	}
	other := Add(cmp, nil, tree, 7, 70)
	if other == tree {
		t.Fatal("expected a new tree when changing a value")
	}
	if Find(cmp, tree, 7).value != 7 {
		t.Error("expected original tree to be unchanged")
	}
	// untouched subtrees are shared
	if tree.key > 7 && other.right != tree.right || tree.key < 7 && other.left != tree.left {
		t.Error("expected the sibling subtree of the access path to be shared")
	}
}

func TestRemoveAbsentKeepsTree(t *testing.T) {
	tree := OfSortedList(seq(1, 10))
	if Remove(cmp, tree, 42) != tree {
		t.Error("expected removal of an absent key to return the same tree")
	}
}

func TestUpdate(t *testing.T) {
	tree := OfSortedList(seq(1, 10))
	inc := func(v int, ok bool) (int, bool) {
		if !ok {
			return 100, true
		}
		return v + 1, true
	}
	tree = Update(cmp, nil, tree, 3, inc)
	tree = Update(cmp, nil, tree, 11, inc)
	assert.Equal(t, 4, Find(cmp, tree, 3).value)
	assert.Equal(t, 100, Find(cmp, tree, 11).value)
	drop := func(int, bool) (int, bool) { return 0, false }
	tree = Update(cmp, nil, tree, 5, drop)
	assert.False(t, Mem(cmp, tree, 5))
	same := Update(cmp, nil, tree, 42, drop)
	assert.True(t, same == tree)
	require.NoError(t, Check(cmp, tree))
}

func TestFindFirstLast(t *testing.T) {
	tree := OfSortedList(seq(1, 100))
	n := FindFirst(tree, func(k int) bool { return k >= 42 })
	require.NotNil(t, n)
	assert.Equal(t, 42, n.key)
	n = FindLast(tree, func(k int) bool { return k <= 42 })
	require.NotNil(t, n)
	assert.Equal(t, 42, n.key)
	assert.Nil(t, FindFirst(tree, func(k int) bool { return k > 100 }))
	assert.Nil(t, FindLast[int, int](nil, func(int) bool { return true }))
}

func TestCompareShapeIndependent(t *testing.T) {
	t1 := OfSortedList(seq(1, 30))
	var t2 *Node[int, int]
	for k := 30; k >= 1; k-- {
		t2 = Add(cmp, nil, t2, k, k)
	}
	if Compare(cmp, ordered.Compare[int], t1, t2) != 0 {
		t.Logf("t1 =\n%s", Dump(t1))
		t.Logf("t2 =\n%s", Dump(t2))
		t.Error("expected trees with equal bindings to compare equal")
	}
	assert.True(t, Equal(cmp, func(a, b int) bool { return a == b }, t1, t2))
	t3 := Remove(cmp, t2, 30)
	assert.Equal(t, 1, Compare(cmp, ordered.Compare[int], t1, t3))
	assert.Equal(t, -1, Compare(cmp, ordered.Compare[int], t3, t1))
	assert.False(t, Equal(cmp, nil, t1, t3))
}

func TestIterator(t *testing.T) {
	it := NewIterator(OfSortedList(seq(1, 9)))
	var keys []int
	for it.HasNext() {
		k, _, ok := it.Next()
		require.True(t, ok)
		keys = append(keys, k)
	}
	assert.Equal(t, seqKeys(1, 9), keys)
	_, _, ok := it.Next()
	assert.False(t, ok)
}

func TestIdentical(t *testing.T) {
	x := 7
	assert.True(t, Identical(1, 1))
	assert.False(t, Identical(1, 2))
	assert.True(t, Identical(&x, &x))
	y := 7
	assert.False(t, Identical(&x, &y))
	assert.False(t, Identical([]int{1}, []int{1}))
	type box struct{ v any }
	assert.False(t, Identical(box{[]int{1}}, box{[]int{1}}))
	assert.True(t, Identical[any](nil, nil))
	assert.True(t, Identical(struct{}{}, struct{}{}))
}

func TestCheckDetectsViolations(t *testing.T) {
	bad := &Node[int, int]{left: Singleton(5, 5), key: 3, height: 2}
	err := Check(cmp, bad)
	if !errors.Is(err, ordered.ErrInvariant) {
		t.Errorf("expected ordering violation to be detected, err = %v", err)
	}
	bad = &Node[int, int]{left: Singleton(1, 1), key: 3, height: 7}
	assert.ErrorIs(t, Check(cmp, bad), ordered.ErrInvariant)
}

func TestDump(t *testing.T) {
	out := Dump(OfSortedList(seq(1, 5)))
	if !strings.HasPrefix(out, "Tree(height=3, size=5)") {
		t.Errorf("unexpected dump header:\n%s", out)
	}
}

// ---------------------------------------------------------------------------

func seq(from, to int) []ordered.Pair[int, int] {
	var pairs []ordered.Pair[int, int]
	for k := from; k <= to; k++ {
		pairs = append(pairs, ordered.P(k, k))
	}
	return pairs
}

func seqKeys(from, to int) []int {
	var keys []int
	for k := from; k <= to; k++ {
		keys = append(keys, k)
	}
	return keys
}
