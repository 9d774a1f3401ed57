package seglist

// Block is a fixed-capacity contiguous run of elements, the unit of
// allocation for a List. Blocks are linked into a chain by the list;
// every block except the tail is kept full.
//
// Blocks are created and recycled exclusively through the list's
// Allocator. User code only ever observes blocks through the read-only
// accessors.
type Block[T any] struct {
	items []T
	count int

	prev *Block[T]
	next *Block[T]
}

// Capacity returns the number of element slots, fixed at allocation.
func (b *Block[T]) Capacity() int { return len(b.items) }

// Size returns the number of live elements in the block.
func (b *Block[T]) Size() int { return b.count }

// Empty reports whether the block holds no elements.
func (b *Block[T]) Empty() bool { return b.count == 0 }

// pushBack appends v at the first free slot.
func (b *Block[T]) pushBack(v T) error {
	if b.count == len(b.items) {
		return ErrBlockFull
	}
	b.items[b.count] = v
	b.count++
	return nil
}

// popBack removes the last live element.
//
// The vacated slot is zeroed. Classic unrolled-list implementations
// leave it untouched; here the zeroing matters so a popped element's
// referents become collectible immediately.
func (b *Block[T]) popBack() error {
	if b.count == 0 {
		return ErrBlockEmpty
	}
	b.count--
	var zero T
	b.items[b.count] = zero
	return nil
}

// reset detaches the block from any chain and drops its live count.
// Live slots are left as-is; callers that need them cleared go through
// Allocator.Destroy.
func (b *Block[T]) reset() {
	b.prev = nil
	b.next = nil
	b.count = 0
}
