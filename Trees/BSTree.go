package Trees

import (
	"cmp"
	"iter"
	"slices"

	"github.com/g-m-twostay/go-bstree/Queues"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. It never balances itself, so its shape
// is decided by the order of insertion: D, the depth of the tree, is O(log n) for random input and
// O(n) for sorted input. All operations are iterative, so a degenerate tree costs time but not stack.
// T is the type of the values, S is the unsigned type used to index nodes and count them; S should
// be a wide upper bound for the size of the tree, appending past it panics with ErrCapacity.
// BSTree isn't safe for concurrent use; mutations of the same tree need external synchronization.
type BSTree[T any, S constraints.Unsigned] struct {
	a   *arena[T, S]
	log *zap.Logger
}

// New returns an empty tree ordered by cmp.Compare. hint is the number of nodes to reserve room for,
// large hints are capped.
func New[T cmp.Ordered, S constraints.Unsigned](hint S, opts ...Option) *BSTree[T, S] {
	return NewFunc[T, S](hint, cmp.Compare[T], opts...)
}

// NewFunc returns an empty tree ordered by compare, which returns a negative number when a<b,
// 0 when a==b, and a positive number when a>b.
func NewFunc[T any, S constraints.Unsigned](hint S, compare func(a, b T) int, opts ...Option) *BSTree[T, S] {
	c := makeConfig(opts)
	return &BSTree[T, S]{newArena[T, S](hint, compare), c.log}
}

// From builds a tree by appending the values of vs in order. Repeated values are dropped.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, opts ...Option) *BSTree[T, S] {
	u := New[T](S(len(vs)), opts...)
	u.AppendSeq(slices.Values(vs))
	return u
}

// Of is From with the values given as arguments. It can't take options after them; use From
// to pass any.
func Of[T cmp.Ordered, S constraints.Unsigned](vs ...T) *BSTree[T, S] {
	return From[T, S](vs)
}

// Collect builds a tree by appending the values of seq in order.
func Collect[T cmp.Ordered, S constraints.Unsigned](seq iter.Seq[T], opts ...Option) *BSTree[T, S] {
	u := New[T, S](0, opts...)
	u.AppendSeq(seq)
	return u
}

// FromIterator builds a tree holding a deep copy of the subtree at it.
func FromIterator[T any, S constraints.Unsigned](it Iterator[T, S], opts ...Option) (*BSTree[T, S], error) {
	if it.i == 0 {
		return nil, invalidArgument("from iterator")
	}
	if !it.Valid() {
		return nil, &MismatchError{"from iterator"}
	}
	u := NewFunc[T, S](0, it.a.cmp, opts...)
	u.a.root = u.a.copySubtree(it.a, it.i)
	u.traceSize("from iterator", u.a.sz)
	return u, nil
}

// Clone returns a deep copy of u.
func (u *BSTree[T, S]) Clone() *BSTree[T, S] {
	c := &BSTree[T, S]{newArena[T, S](u.a.sz, u.a.cmp), u.log}
	c.a.root = c.a.copySubtree(u.a, u.a.root)
	return c
}

// CopyFrom releases the content of u, then makes u a deep copy of src, including its ordering.
func (u *BSTree[T, S]) CopyFrom(src *BSTree[T, S]) {
	if u == src {
		return
	}
	u.a.reset()
	u.a.cmp = src.a.cmp
	u.a.root = u.a.copySubtree(src.a, src.a.root)
	u.traceSize("copy", u.a.sz)
}

// Move returns a tree owning all nodes of u and leaves u empty. Iterators of u now belong to the
// returned tree.
func (u *BSTree[T, S]) Move() *BSTree[T, S] {
	m := &BSTree[T, S]{u.a, u.log}
	u.a = newArena[T, S](0, m.a.cmp)
	return m
}

// MoveFrom releases the content of u, then takes over all nodes of src and leaves src empty.
// Iterators of src now belong to u.
func (u *BSTree[T, S]) MoveFrom(src *BSTree[T, S]) {
	if u == src {
		return
	}
	u.a.reset()
	u.a, src.a = src.a, newArena[T, S](0, src.a.cmp)
	u.traceSize("move", u.a.sz)
}

// Clear releases every node.
func (u *BSTree[T, S]) Clear() {
	u.a.reset()
	u.traceSize("clear", 0)
}

func (u *BSTree[T, S]) trace(label string, v T) {
	if ce := u.log.Check(zapcore.DebugLevel, label); ce != nil {
		ce.Write(zap.Any("value", v), zap.Uint64("size", uint64(u.a.sz)))
	}
}

func (u *BSTree[T, S]) traceSize(label string, n S) {
	if ce := u.log.Check(zapcore.DebugLevel, label); ce != nil {
		ce.Write(zap.Uint64("nodes", uint64(n)), zap.Uint64("size", uint64(u.a.sz)))
	}
}

// owned returns the node index of it if it's a live node of u.
func (u *BSTree[T, S]) owned(op string, it Iterator[T, S]) (S, error) {
	if it.i == 0 {
		return 0, invalidArgument(op)
	}
	if it.a != u.a || !u.a.live(it.i, it.gen) {
		return 0, &MismatchError{op}
	}
	return it.i, nil
}

// Size of the tree.
// Time: O(1)
func (u *BSTree[T, S]) Size() S {
	return u.a.sz
}

func (u *BSTree[T, S]) Empty() bool {
	return u.a.sz == 0
}

// Begin returns an iterator at the root, empty if the tree is.
func (u *BSTree[T, S]) Begin() Iterator[T, S] {
	return u.a.iter(u.a.root)
}

// IsRoot is true iff it references the root of u.
func (u *BSTree[T, S]) IsRoot(it Iterator[T, S]) bool {
	return it.i != 0 && it == u.Begin()
}

// Depth is the number of parent links between it and the root; the root is at depth 0.
// Returns ErrTreeMismatch if the walk can't reach the root of u.
// Time: O(D)
func (u *BSTree[T, S]) Depth(it Iterator[T, S]) (S, error) {
	cur, err := u.owned("depth", it)
	if err != nil {
		return 0, err
	}
	var d S
	for ; cur != u.a.root; d++ {
		if cur = u.a.ns[cur].p; cur == 0 {
			return 0, &MismatchError{"depth"}
		}
	}
	return d, nil
}

// Height is Depth+1, so the root has height 1. This is not the height of the subtree at it.
func (u *BSTree[T, S]) Height(it Iterator[T, S]) (S, error) {
	d, err := u.Depth(it)
	if err != nil {
		return 0, err
	}
	return d + 1, nil
}

// MaxDepth is the largest Depth of any node, 0 for an empty tree.
// Time: O(n)
func (u *BSTree[T, S]) MaxDepth() (m S) {
	if u.a.root == 0 {
		return 0
	}
	q := Queues.MakeArrayQueue[[2]S](16) // [index, depth]
	for q.Push([2]S{u.a.root, 0}); !q.Empty(); {
		c, _ := q.Pop()
		m = max(m, c[1])
		if l := u.a.ns[c[0]].l; l != 0 {
			q.Push([2]S{l, c[1] + 1})
		}
		if r := u.a.ns[c[0]].r; r != 0 {
			q.Push([2]S{r, c[1] + 1})
		}
	}
	return
}

// Append v to the tree if it isn't present already.
// Time: O(D)
func (u *BSTree[T, S]) Append(v T) bool {
	return u.append(u.a.root, v)
}

// AppendAt appends v searching from it instead of from the root; v must belong to the range the
// ancestors of it allow for its subtree, otherwise ErrOutOfSubtree is returned.
// Time: O(D)
func (u *BSTree[T, S]) AppendAt(it Iterator[T, S], v T) (bool, error) {
	i, err := u.owned("append", it)
	if err != nil {
		return false, err
	}
	for c, p := i, u.a.ns[i].p; p != 0; c, p = p, u.a.ns[p].p {
		if o := u.a.cmp(v, u.a.ns[p].v); o == 0 || (o < 0) != (u.a.ns[p].l == c) {
			return false, ErrOutOfSubtree
		}
	}
	return u.append(i, v), nil
}

// AppendSeq appends every value of seq, returning how many were new.
func (u *BSTree[T, S]) AppendSeq(seq iter.Seq[T]) (n S) {
	for v := range seq {
		if u.Append(v) {
			n++
		}
	}
	return
}

// append v to the subtree at from, which is 0 only when the tree is empty.
func (u *BSTree[T, S]) append(from S, v T) bool {
	if from == 0 {
		u.a.root = u.a.alloc(v, 0)
		u.trace("append", v)
		return true
	}
	found, last, c := u.a.search(from, v)
	if found != 0 {
		u.trace("append duplicate", v)
		return false
	}
	n := u.a.alloc(v, last)
	if c < 0 {
		u.a.ns[last].l = n
	} else {
		u.a.ns[last].r = n
	}
	u.trace("append", v)
	return true
}

// Erase the whole subtree at it. Returns an iterator at the parent of it, empty if it was the root.
// Returns ErrInvalidArgument if it is empty and ErrTreeMismatch if it isn't a node of u.
// Time: O(size of the subtree)
func (u *BSTree[T, S]) Erase(it Iterator[T, S]) (Iterator[T, S], error) {
	i, err := u.owned("erase", it)
	if err != nil {
		return Iterator[T, S]{}, err
	}
	p := u.a.ns[i].p
	if p == 0 {
		if i != u.a.root {
			return Iterator[T, S]{}, &MismatchError{"erase"}
		}
		u.a.root = 0
	} else if l := u.a.ns[p].child(i); l != nil {
		*l = 0
	} else {
		return Iterator[T, S]{}, &MismatchError{"erase"}
	}
	u.traceSize("erase", u.a.freeSubtree(i))
	return u.a.iter(p), nil
}

// Remove v from the tree. A node with two children takes the value of its in-order successor,
// whose node is removed instead.
// Time: O(D)
func (u *BSTree[T, S]) Remove(v T) bool {
	return u.remove(u.a.root, v)
}

// RemoveAt removes v from the subtree at it.
// Time: O(D)
func (u *BSTree[T, S]) RemoveAt(it Iterator[T, S], v T) (bool, error) {
	i, err := u.owned("remove", it)
	if err != nil {
		return false, err
	}
	return u.remove(i, v), nil
}

func (u *BSTree[T, S]) remove(from S, v T) bool {
	z, _, _ := u.a.search(from, v)
	if z == 0 {
		u.trace("remove missing", v)
		return false
	}
	if n := &u.a.ns[z]; n.l != 0 && n.r != 0 {
		s := u.a.leftmost(n.r)
		n.v = u.a.ns[s].v
		z = s
	}
	c := u.a.ns[z].l
	if c == 0 {
		c = u.a.ns[z].r
	}
	u.a.relink(z, c)
	u.a.release(z)
	u.trace("remove", v)
	return true
}

// Find returns an iterator at v, empty if v isn't present.
// Time: O(D)
func (u *BSTree[T, S]) Find(v T) Iterator[T, S] {
	i, _, _ := u.a.search(u.a.root, v)
	return u.a.iter(i)
}

// Has [Tree.Has]
// Time: O(D)
func (u *BSTree[T, S]) Has(v T) bool {
	i, _, _ := u.a.search(u.a.root, v)
	return i != 0
}

// Minimum [Tree.Minimum]
// Time: O(D)
func (u *BSTree[T, S]) Minimum() (T, bool) {
	if u.a.root == 0 {
		return *new(T), false
	}
	return u.a.ns[u.a.leftmost(u.a.root)].v, true
}

// Maximum [Tree.Maximum]
// Time: O(D)
func (u *BSTree[T, S]) Maximum() (T, bool) {
	if u.a.root == 0 {
		return *new(T), false
	}
	return u.a.ns[u.a.rightmost(u.a.root)].v, true
}

// InOrder [Tree.InOrder]. Follows parent links, so it needs no stack.
// Time: O(n)
func (u *BSTree[T, S]) InOrder(f func(T) bool) {
	if u.a.root == 0 {
		return
	}
	for i := u.a.leftmost(u.a.root); i != 0; i = u.a.next(i) {
		if !f(u.a.ns[i].v) {
			return
		}
	}
}

// All values in ascending order.
func (u *BSTree[T, S]) All() iter.Seq[T] {
	return u.InOrder
}

// Values returns the values in ascending order.
func (u *BSTree[T, S]) Values() []T {
	vs := make([]T, 0, u.a.sz)
	u.InOrder(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *BSTree[T, S]) Corrupt() bool {
	a := u.a
	if a.root == 0 {
		return a.sz != 0
	}
	if a.ns[a.root].p != 0 {
		return true
	}
	// walk with an explicit stack so that broken parent links can't mislead the check.
	var n S
	var prev *T
	st := make([]S, 0, 32)
	for cur := a.root; cur != 0 || len(st) > 0; {
		for ; cur != 0; cur = a.ns[cur].l {
			if uint(cur) >= uint(len(a.ns)) || n+S(len(st)) > a.sz {
				return true
			}
			for _, c := range [2]S{a.ns[cur].l, a.ns[cur].r} {
				if c != 0 && (uint(c) >= uint(len(a.ns)) || a.ns[c].p != cur) {
					return true
				}
			}
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if prev != nil && a.cmp(*prev, a.ns[cur].v) >= 0 {
			return true
		}
		prev = &a.ns[cur].v
		n++
		cur = a.ns[cur].r
	}
	return n != a.sz
}
