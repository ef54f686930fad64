package Trees

import (
	"github.com/g-m-twostay/go-bstree/Queues"
	"golang.org/x/exp/constraints"
)

// arena owns every node of one tree. ns[0] is the nil sentinel and is never handed out.
// root and sz live here rather than in BSTree so that moving a tree moves them together with
// the nodes, and iterators created before the move keep pointing into their tree.
type arena[T any, S constraints.Unsigned] struct {
	ns       []node[T, S]
	root, sz S
	free     S // head of the free list; node.l is next.
	cmp      func(T, T) int
}

// maxHint bounds how many nodes a capacity hint reserves up front; bigger trees still grow.
const maxHint = 1 << 20

func newArena[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) *arena[T, S] {
	return &arena[T, S]{ns: make([]node[T, S], 1, min(uint64(hint), maxHint)+1), cmp: cmp}
}

// alloc a leaf holding v under parent p. Freed slots are reused before the array grows.
// Panics with ErrCapacity when S can't index another node.
func (u *arena[T, S]) alloc(v T, p S) S {
	i := u.popFree()
	if i == 0 {
		if i = S(len(u.ns)); i == 0 {
			panic(ErrCapacity)
		}
		u.ns = append(u.ns, node[T, S]{})
	}
	n := &u.ns[i]
	n.v, n.l, n.r, n.p = v, 0, 0, p
	u.sz++
	return i
}

// release slot i once. The caller must have unlinked it already.
func (u *arena[T, S]) release(i S) {
	n := &u.ns[i]
	n.v = *new(T)
	n.r, n.p = 0, 0
	n.gen++
	n.l, u.free = u.free, i
	u.sz--
}

// popFree index once. Returns 0 when there's no free index.
func (u *arena[T, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.ns[b].l
	}
	return b
}

// live reports whether slot i is allocated with generation gen.
func (u *arena[T, S]) live(i S, gen uint32) bool {
	return i != 0 && uint(i) < uint(len(u.ns)) && u.ns[i].gen == gen && (u.ns[i].p != 0 || u.root == i)
}

// relink makes the link that points to old point to c instead and fixes c's parent.
// old must be linked in the tree.
func (u *arena[T, S]) relink(old, c S) {
	p := u.ns[old].p
	if p == 0 {
		u.root = c
	} else {
		*u.ns[p].child(old) = c
	}
	if c != 0 {
		u.ns[c].p = p
	}
}

// freeSubtree releases i and all of its descendants breadth first. i must be unlinked.
// Returns the number of released nodes.
func (u *arena[T, S]) freeSubtree(i S) (n S) {
	if i == 0 {
		return 0
	}
	q := Queues.MakeArrayQueue[S](16)
	for q.Push(i); !q.Empty(); n++ {
		c, _ := q.Pop()
		if l := u.ns[c].l; l != 0 {
			q.Push(l)
		}
		if r := u.ns[c].r; r != 0 {
			q.Push(r)
		}
		u.release(c)
	}
	return
}

// reset releases every node. All slots get a new generation, so no earlier iterator stays valid.
func (u *arena[T, S]) reset() {
	u.free = 0
	for i := len(u.ns) - 1; i > 0; i-- {
		n := &u.ns[i]
		n.v = *new(T)
		n.r, n.p = 0, 0
		n.gen++
		n.l, u.free = u.free, S(i)
	}
	u.root, u.sz = 0, 0
}

// copySubtree deep copies the subtree of src rooted at si into u, breadth first. The copy's root
// has no parent; the caller attaches it. Returns the index of the copy's root.
func (u *arena[T, S]) copySubtree(src *arena[T, S], si S) S {
	if si == 0 {
		return 0
	}
	root := u.alloc(src.ns[si].v, 0)
	q := Queues.MakeArrayQueue[[2]S](16) // [index in src, index in u]
	for q.Push([2]S{si, root}); !q.Empty(); {
		pr, _ := q.Pop()
		s := src.ns[pr[0]]
		if s.l != 0 {
			c := u.alloc(src.ns[s.l].v, pr[1])
			u.ns[pr[1]].l = c
			q.Push([2]S{s.l, c})
		}
		if s.r != 0 {
			c := u.alloc(src.ns[s.r].v, pr[1])
			u.ns[pr[1]].r = c
			q.Push([2]S{s.r, c})
		}
	}
	return root
}

// search for v in the subtree rooted at cur. Returns the matching index, or 0 together with the
// last visited index and the comparison result against it.
func (u *arena[T, S]) search(cur S, v T) (found, last S, c int) {
	for cur != 0 {
		last = cur
		if c = u.cmp(v, u.ns[cur].v); c < 0 {
			cur = u.ns[cur].l
		} else if c > 0 {
			cur = u.ns[cur].r
		} else {
			return cur, last, 0
		}
	}
	return 0, last, c
}

func (u *arena[T, S]) leftmost(i S) S {
	for u.ns[i].l != 0 {
		i = u.ns[i].l
	}
	return i
}

func (u *arena[T, S]) rightmost(i S) S {
	for u.ns[i].r != 0 {
		i = u.ns[i].r
	}
	return i
}

// next in in-order after i, using parent links. 0 if i is the last.
func (u *arena[T, S]) next(i S) S {
	if r := u.ns[i].r; r != 0 {
		return u.leftmost(r)
	}
	for p := u.ns[i].p; p != 0; i, p = p, u.ns[p].p {
		if u.ns[p].l == i {
			return p
		}
	}
	return 0
}
