// Package seglist provides a generic unrolled (segmented) linked list:
// a sequence container stored as a chain of fixed-capacity blocks.
//
// Compared to a single growable array, the chain never relocates
// existing elements when the tail grows or shrinks, so tail mutation is
// amortized O(1) and leaves every iterator and element position intact.
// Compared to a plain linked list, elements sit contiguously inside
// blocks, keeping per-element overhead and pointer chasing low.
//
// # Quick Start
//
//	l := seglist.New[int]()
//	for i := 0; i < 100; i++ {
//	    l.PushBack(i)
//	}
//	v, _ := l.At(42)        // nearest-end block walk, bounds-checked
//	for i, v := range l.All() {
//	    fmt.Println(i, v)
//	}
//
// # Block Topology
//
// Every block except the tail is full. Cap() is always a multiple of
// BlockSize(), and Blocks() == Cap()/BlockSize(). When a PopBack
// empties the tail block, the block is detached and kept warm as a
// single reserved block, so a push/pop cycle at a block boundary costs
// no allocator round trips:
//
//	l := seglist.NewWithSize[int](21)  // exactly one full block
//	l.PushBack(0)                      // allocates block two
//	l.PopBack()                        // block two becomes the reserved block
//	l.PushBack(0)                      // reuses it: zero allocations
//
// Clear releases everything, including the reserved block.
//
// # Iterators
//
// An Iterator is in one of three explicit states: before the first
// element, on an element, or past the last element. Only the on-element
// state is dereferenceable; misuse fails with ErrInvalidIterator rather
// than corrupting the traversal.
//
// PushBack and PopBack never invalidate iterators. Insert and Erase
// shift elements and invalidate every iterator at or after the mutation
// point; both return a fresh iterator to continue from.
//
// # Allocation Strategy
//
// Block storage is requested through the Allocator interface, one block
// at a time. The default HeapAllocator uses the Go heap; wrap any
// allocator in a CountingAllocator to observe exact allocate/free
// counts, as the package's own tests do.
//
// # Concurrency
//
// A List assumes exclusive access. Using one list from multiple
// goroutines without external synchronization is undefined behavior by
// contract; distinct lists are fully independent.
package seglist
