package Trees

import "golang.org/x/exp/constraints"

// A node in the arena. l and r own the children, p is a back reference used only to walk
// towards the root; it never decides what gets released. All three are indexes into
// arena.ns where 0 means nil. While a slot is on the free list, l links to the next free slot.
// gen counts how many times the slot has been released, see Iterator.
type node[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p S
	gen     uint32
}

// child returns the address of the link in n that points to c, or nil if c isn't a child of n.
func (n *node[T, S]) child(c S) *S {
	if n.l == c {
		return &n.l
	} else if n.r == c {
		return &n.r
	}
	return nil
}
