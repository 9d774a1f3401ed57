package seglist

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyList is returned by PopBack, Front and Back when the list
	// holds no elements.
	ErrEmptyList = errors.New("seglist: empty list")

	// ErrInvalidIterator is returned when an iterator operation is not
	// defined for the iterator's current state: dereferencing or advancing
	// a sentinel, retreating past the front, or using an iterator that
	// belongs to a different list.
	ErrInvalidIterator = errors.New("seglist: invalid iterator")

	// ErrBlockFull is returned by a block push when the block already
	// holds capacity elements. It never escapes the List API: the list
	// grows the chain before pushing, so seeing this error through List
	// indicates a bug in the list itself.
	ErrBlockFull = errors.New("seglist: block full")

	// ErrBlockEmpty is returned by a block pop when the block holds no
	// elements. Like ErrBlockFull it never escapes the List API.
	ErrBlockEmpty = errors.New("seglist: block empty")
)

// ErrIndexOutOfRange indicates an index at or beyond the list length.
//
// It is also returned when an element index fails the per-block bounds
// re-check, which guards against a desync between the list size and the
// block chain.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("seglist: index %d out of range [0, %d)", e.Index, e.Len)
}
