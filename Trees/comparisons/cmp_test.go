package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bstree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	benchmarkItemCount = 1 << 14
	btreeDegree        = 32
)

// keys are shuffled once; feeding sorted keys would turn BSTree into a list.
var keys = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

// compares BSTree, which never rebalances, with https://github.com/google/btree,
// https://github.com/petar/GoLLRB and the red-black tree of https://github.com/emirpasic/gods on
// random input. https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap are
// unordered and only give a lower bound for membership tests.

func setupBSTree(tb testing.TB) *Trees.BSTree[int, uint32] {
	tb.Helper()
	return Trees.From[int, uint32](keys)
}

func setupBTree(tb testing.TB) *btree.BTreeG[int] {
	tb.Helper()
	t := btree.NewOrderedG[int](btreeDegree)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	return t
}

func setupLLRB(tb testing.TB) *llrb.LLRB {
	tb.Helper()
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	return t
}

func setupRBTree(tb testing.TB) *redblacktree.Tree {
	tb.Helper()
	t := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		t.Put(k, struct{}{})
	}
	return t
}

func setupHaxMap(tb testing.TB) *haxmap.Map[int, struct{}] {
	tb.Helper()
	m := haxmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func setupHashMap(tb testing.TB) *hashmap.Map[int, struct{}] {
	tb.Helper()
	m := hashmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func BenchmarkInsertBSTree(b *testing.B) {
	for range b.N {
		t := Trees.New[int](uint32(benchmarkItemCount))
		for _, k := range keys {
			t.Append(k)
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for range b.N {
		t := btree.NewOrderedG[int](btreeDegree)
		for _, k := range keys {
			t.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for _, k := range keys {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkInsertRBTree(b *testing.B) {
	for range b.N {
		t := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			t.Put(k, struct{}{})
		}
	}
}

func BenchmarkHasBSTree(b *testing.B) {
	t := setupBSTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if !t.Has(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if !t.Has(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if !t.Has(llrb.Int(k)) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasRBTree(b *testing.B) {
	t := setupRBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, found := t.Get(k); !found {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkDeleteBSTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupBSTree(b)
		b.StartTimer()
		for _, k := range keys {
			t.Remove(k)
		}
	}
}

func BenchmarkDeleteBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupBTree(b)
		b.StartTimer()
		for _, k := range keys {
			t.Delete(k)
		}
	}
}

func BenchmarkDeleteLLRB(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupLLRB(b)
		b.StartTimer()
		for _, k := range keys {
			t.Delete(llrb.Int(k))
		}
	}
}

func BenchmarkDeleteRBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupRBTree(b)
		b.StartTimer()
		for _, k := range keys {
			t.Remove(k)
		}
	}
}

// TestSameOrder checks that the ordered baselines agree with BSTree, so the benchmarks compare
// equal work.
func TestSameOrder(t *testing.T) {
	bst := Trees.From[int, uint32](keys)
	want := bst.Values()

	var got []int
	setupBTree(t).Ascend(func(k int) bool {
		got = append(got, k)
		return true
	})
	check(t, "btree", want, got)

	got = got[:0]
	setupLLRB(t).AscendGreaterOrEqual(llrb.Int(-1), func(i llrb.Item) bool {
		got = append(got, int(i.(llrb.Int)))
		return true
	})
	check(t, "llrb", want, got)

	got = got[:0]
	for _, k := range setupRBTree(t).Keys() {
		got = append(got, k.(int))
	}
	check(t, "redblacktree", want, got)

	hm, hx := setupHashMap(t), setupHaxMap(t)
	if hm.Len() != len(want) || int(hx.Len()) != len(want) {
		t.Errorf("hash maps have %d and %d keys, want %d", hm.Len(), hx.Len(), len(want))
	}
}

func check(t *testing.T, name string, want, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%s has %d keys, want %d", name, len(got), len(want))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("%s differs at %d: %d, want %d", name, i, got[i], want[i])
		}
	}
}
