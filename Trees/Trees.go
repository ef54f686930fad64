package Trees

import "golang.org/x/exp/constraints"

// Tree represents a set of ordered values kept in a tree like structure implemented using nodes.
// Receivers that have a bool as a second return value indicate whether the first return value
// is defined. For example, calling Minimum on an empty tree returns (x T, false), where x should
// not be used.
// Methods implemented recursively should be noted, otherwise functions are implemented iteratively.
type Tree[T any, S constraints.Unsigned] interface {
	//Append v to the Tree. Returning true if successful, false if v is already present.
	Append(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v wasn't present.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() S
	//Empty is true iff Size is 0.
	Empty() bool
	//InOrder calls f on the elements in ascending order until f returns false.
	//The tree must not be modified during the iteration.
	InOrder(f func(T) bool)
	//Corrupt returns whether the tree has corrupt structures, such as values out of order,
	//links that don't agree with each other, or a size that doesn't match the nodes.
	Corrupt() bool
}

var _ Tree[int, uint] = (*BSTree[int, uint])(nil)
