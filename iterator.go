package seglist

import "iter"

// iterState tags an iterator position. Sentinel positions carry an
// explicit tag instead of overloading a nil block pointer.
type iterState uint8

const (
	stateBeforeBegin iterState = iota
	stateValid
	statePastEnd
)

// Iterator is a position within a list's block chain. It is in exactly
// one of three states: before the first element, on an element, or past
// the last element. Only the on-element state is dereferenceable.
//
// PushBack and PopBack leave iterators valid (no element moves);
// Insert and Erase invalidate every iterator at or after the mutation
// point, and using an invalidated iterator is undefined.
type Iterator[T any] struct {
	list  *List[T]
	state iterState
	block *Block[T]
	index int
}

// Begin returns an iterator on the first element, or a before-begin
// sentinel if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	if l.size == 0 {
		return Iterator[T]{list: l, state: stateBeforeBegin}
	}
	return Iterator[T]{list: l, state: stateValid, block: l.head}
}

// End returns the past-the-end sentinel.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{list: l, state: statePastEnd}
}

// Valid reports whether the iterator is on a dereferenceable element.
func (it Iterator[T]) Valid() bool {
	return it.state == stateValid
}

// Value returns the element under the iterator.
func (it Iterator[T]) Value() (T, error) {
	var zero T
	if it.state != stateValid || it.block == nil || it.index < 0 || it.index >= it.block.count {
		return zero, ErrInvalidIterator
	}
	return it.block.items[it.index], nil
}

// Set replaces the element under the iterator with v.
func (it Iterator[T]) Set(v T) error {
	if it.state != stateValid || it.block == nil || it.index < 0 || it.index >= it.block.count {
		return ErrInvalidIterator
	}
	it.block.items[it.index] = v
	return nil
}

// Next advances the iterator one element toward the tail. Stepping off
// the last element lands on the past-the-end sentinel. Advancing a
// sentinel fails with ErrInvalidIterator.
func (it *Iterator[T]) Next() error {
	if it.state != stateValid || it.list == nil || it.block == nil {
		return ErrInvalidIterator
	}
	it.index++
	if it.index == it.list.blockSize {
		if it.block.next != nil {
			it.block = it.block.next
			it.index = 0
		} else {
			it.toPastEnd()
		}
	} else if it.index == it.block.count {
		// Live-element boundary of a partial tail block.
		it.toPastEnd()
	}
	return nil
}

// Prev moves the iterator one element toward the head. Stepping off the
// first element lands on the before-begin sentinel. From the
// past-the-end sentinel, Prev re-enters the list at the last element
// (or lands before-begin when the list is empty). Retreating from
// before-begin fails with ErrInvalidIterator.
func (it *Iterator[T]) Prev() error {
	switch it.state {
	case stateValid:
		if it.list == nil || it.block == nil {
			return ErrInvalidIterator
		}
		if it.index == 0 {
			if it.block.prev != nil {
				it.block = it.block.prev
				it.index = it.list.blockSize - 1
			} else {
				it.state = stateBeforeBegin
				it.block = nil
				it.index = 0
			}
		} else {
			it.index--
		}
		return nil
	case statePastEnd:
		if it.list == nil {
			return ErrInvalidIterator
		}
		if it.list.size == 0 {
			it.state = stateBeforeBegin
			return nil
		}
		it.state = stateValid
		it.block = it.list.tail
		it.index = it.list.tail.count - 1
		return nil
	default:
		return ErrInvalidIterator
	}
}

// Equal reports whether two iterators address the same position of the
// same list. Sentinels of a kind compare equal; valid iterators compare
// by block and offset.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if it.list != other.list || it.state != other.state {
		return false
	}
	if it.state != stateValid {
		return true
	}
	return it.block == other.block && it.index == other.index
}

func (it *Iterator[T]) toPastEnd() {
	it.state = statePastEnd
	it.block = nil
	it.index = 0
}

// All returns an index/value sequence over the list in order. The
// sequence is restartable; mutating the list mid-iteration through
// Insert or Erase is undefined.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for b := l.head; b != nil; b = b.next {
			for j := 0; j < b.count; j++ {
				if !yield(i, b.items[j]) {
					return
				}
				i++
			}
		}
	}
}

// Backward returns an index/value sequence over the list from the last
// element to the first.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.size - 1
		for b := l.tail; b != nil; b = b.prev {
			for j := b.count - 1; j >= 0; j-- {
				if !yield(i, b.items[j]) {
					return
				}
				i--
			}
		}
	}
}

// Values returns a value-only sequence over the list in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for b := l.head; b != nil; b = b.next {
			for j := 0; j < b.count; j++ {
				if !yield(b.items[j]) {
					return
				}
			}
		}
	}
}
