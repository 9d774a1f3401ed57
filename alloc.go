package seglist

import "sync/atomic"

// Allocator is the block allocation strategy for a List. The list
// requests storage one block at a time and pairs every call: a block
// obtained via Allocate+Construct is eventually released via
// Destroy+Deallocate.
//
// Implement this interface to instrument or replace block placement.
// CountingAllocator wraps any Allocator with allocation accounting and
// is what the test suite uses to assert exact allocation counts.
type Allocator[T any] interface {
	// Allocate obtains raw storage for one block of the given capacity.
	Allocate(capacity int) *Block[T]

	// Construct prepares an allocated block for use: no links, no live
	// elements.
	Construct(b *Block[T])

	// Destroy tears down a block's live elements before release.
	Destroy(b *Block[T])

	// Deallocate releases a destroyed block's storage.
	Deallocate(b *Block[T])
}

// HeapAllocator is the default Allocator. Blocks live on the Go heap;
// Deallocate only severs the reference and leaves reclamation to the
// garbage collector.
type HeapAllocator[T any] struct{}

// NewHeapAllocator creates the default heap-backed allocator.
func NewHeapAllocator[T any]() *HeapAllocator[T] {
	return &HeapAllocator[T]{}
}

// Allocate implements Allocator.
func (HeapAllocator[T]) Allocate(capacity int) *Block[T] {
	return &Block[T]{items: make([]T, capacity)}
}

// Construct implements Allocator.
func (HeapAllocator[T]) Construct(b *Block[T]) {
	b.reset()
}

// Destroy implements Allocator. Live slots are zeroed so their
// referents become collectible even if the block is recycled.
func (HeapAllocator[T]) Destroy(b *Block[T]) {
	var zero T
	for i := 0; i < b.count; i++ {
		b.items[i] = zero
	}
	b.count = 0
}

// Deallocate implements Allocator.
func (HeapAllocator[T]) Deallocate(b *Block[T]) {
	b.items = nil
}

// CountingAllocator wraps an inner Allocator and counts every call.
// Counters are atomic, so a counting allocator may be shared across
// independent lists.
type CountingAllocator[T any] struct {
	inner Allocator[T]

	allocates   atomic.Int64
	constructs  atomic.Int64
	destroys    atomic.Int64
	deallocates atomic.Int64
}

// NewCountingAllocator wraps inner with allocation accounting.
// If inner is nil, a HeapAllocator is used.
func NewCountingAllocator[T any](inner Allocator[T]) *CountingAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}
	return &CountingAllocator[T]{inner: inner}
}

// Allocate implements Allocator.
func (c *CountingAllocator[T]) Allocate(capacity int) *Block[T] {
	c.allocates.Add(1)
	return c.inner.Allocate(capacity)
}

// Construct implements Allocator.
func (c *CountingAllocator[T]) Construct(b *Block[T]) {
	c.constructs.Add(1)
	c.inner.Construct(b)
}

// Destroy implements Allocator.
func (c *CountingAllocator[T]) Destroy(b *Block[T]) {
	c.destroys.Add(1)
	c.inner.Destroy(b)
}

// Deallocate implements Allocator.
func (c *CountingAllocator[T]) Deallocate(b *Block[T]) {
	c.deallocates.Add(1)
	c.inner.Deallocate(b)
}

// Allocates returns the number of Allocate calls observed.
func (c *CountingAllocator[T]) Allocates() int64 { return c.allocates.Load() }

// Constructs returns the number of Construct calls observed.
func (c *CountingAllocator[T]) Constructs() int64 { return c.constructs.Load() }

// Destroys returns the number of Destroy calls observed.
func (c *CountingAllocator[T]) Destroys() int64 { return c.destroys.Load() }

// Deallocates returns the number of Deallocate calls observed.
func (c *CountingAllocator[T]) Deallocates() int64 { return c.deallocates.Load() }

// Live returns the number of blocks allocated but not yet deallocated.
// Zero after a List.Clear means no block leaked.
func (c *CountingAllocator[T]) Live() int64 {
	return c.allocates.Load() - c.deallocates.Load()
}
