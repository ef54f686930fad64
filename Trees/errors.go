package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrTreeMismatch is returned when an iterator doesn't belong to the tree it's used with,
	// either because it comes from another tree or because its node has been released.
	ErrTreeMismatch = errors.New("tree instance and given iterator are mismatched")
	// ErrInvalidArgument is returned when an operation that needs a node gets an empty iterator.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfSubtree is returned by AppendAt when the value can't be placed under the iterator
	// without breaking the order of the whole tree.
	ErrOutOfSubtree = fmt.Errorf("%w: value is outside of the subtree's range", ErrInvalidArgument)

	// ErrEmptyIterator is the panic value of dereferencing an empty iterator.
	ErrEmptyIterator = errors.New("dereference of empty iterator")
	// ErrStaleIterator is the panic value of using an iterator whose node has been released.
	ErrStaleIterator = errors.New("use of stale iterator")
	// ErrCapacity is the panic value when the index type can't address another node.
	ErrCapacity = errors.New("index type exhausted")
)

// MismatchError tells which operation got a mismatched iterator. It unwraps to ErrTreeMismatch.
type MismatchError struct {
	Op string
}

func (e *MismatchError) Error() string {
	return e.Op + ": " + ErrTreeMismatch.Error()
}

func (e *MismatchError) Unwrap() error {
	return ErrTreeMismatch
}

func invalidArgument(op string) error {
	return fmt.Errorf("%s: %w: empty iterator", op, ErrInvalidArgument)
}
