package Trees

import "golang.org/x/exp/constraints"

// Iterator is a downside iterator: it doesn't walk the tree in order, instead Inc moves it to the
// right child and Dec moves it to the left child. Stepping off a missing child turns it into the
// empty iterator, which is also the zero value and stays empty under every step.
//
// An Iterator is a view and doesn't own its node. Once the node is released (by Erase, Remove,
// Clear, CopyFrom or MoveFrom on its tree) the iterator is stale: tree operations report it as
// ErrTreeMismatch and Value panics with ErrStaleIterator. Removing a node with two children
// releases its in-order successor's node instead, whose value moves into the removed node.
// Iterators are comparable with ==, which is the same as Equal.
type Iterator[T any, S constraints.Unsigned] struct {
	a   *arena[T, S]
	i   S
	gen uint32
}

func (u *arena[T, S]) iter(i S) Iterator[T, S] {
	if i == 0 {
		return Iterator[T, S]{}
	}
	return Iterator[T, S]{u, i, u.ns[i].gen}
}

// node of u, panics if u is stale. u mustn't be empty.
func (u Iterator[T, S]) node() *node[T, S] {
	if !u.a.live(u.i, u.gen) {
		panic(ErrStaleIterator)
	}
	return &u.a.ns[u.i]
}

// Valid is true iff u references a live node.
func (u Iterator[T, S]) Valid() bool {
	return u.i != 0 && u.a.live(u.i, u.gen)
}

// Value of the referenced node. Panics with ErrEmptyIterator or ErrStaleIterator if u isn't Valid.
func (u Iterator[T, S]) Value() T {
	if u.i == 0 {
		panic(ErrEmptyIterator)
	}
	return u.node().v
}

// TryValue is Value that reports invalid iterators instead of panicking.
func (u Iterator[T, S]) TryValue() (T, bool) {
	if !u.Valid() {
		return *new(T), false
	}
	return u.a.ns[u.i].v, true
}

// Equal is true iff both reference the same node, or both are empty.
func (u Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return u == o
}

// ValueEqual is true iff both are Valid and hold equal values. Their nodes may differ or live
// in different trees.
func (u Iterator[T, S]) ValueEqual(o Iterator[T, S]) bool {
	a, ok1 := u.TryValue()
	b, ok2 := o.TryValue()
	return ok1 && ok2 && u.a.cmp(a, b) == 0
}

// Inc moves u to its right child.
func (u *Iterator[T, S]) Inc() {
	if u.i != 0 {
		*u = u.a.iter(u.node().r)
	}
}

// Dec moves u to its left child.
func (u *Iterator[T, S]) Dec() {
	if u.i != 0 {
		*u = u.a.iter(u.node().l)
	}
}

// IncN applies Inc n times.
func (u *Iterator[T, S]) IncN(n uint) {
	for ; n > 0 && u.i != 0; n-- {
		u.Inc()
	}
}

// DecN applies Dec n times.
func (u *Iterator[T, S]) DecN(n uint) {
	for ; n > 0 && u.i != 0; n-- {
		u.Dec()
	}
}

// Plus returns u moved n times to the right, u itself is unchanged.
func (u Iterator[T, S]) Plus(n uint) Iterator[T, S] {
	u.IncN(n)
	return u
}

// Minus returns u moved n times to the left, u itself is unchanged.
func (u Iterator[T, S]) Minus(n uint) Iterator[T, S] {
	u.DecN(n)
	return u
}

// Parent of the referenced node. Empty for the root and for the empty iterator.
func (u Iterator[T, S]) Parent() Iterator[T, S] {
	if u.i == 0 {
		return u
	}
	return u.a.iter(u.node().p)
}
