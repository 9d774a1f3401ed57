package seglist

import (
	"iter"
	"math"
)

// List is a sequence container backed by a chain of fixed-capacity
// blocks. Appending and removing at the tail are amortized O(1) and
// never move existing elements; indexed access walks the chain from
// whichever end is nearer.
//
// The zero value is not usable; construct lists with New, NewWithSize,
// NewWithValue, FromSlice or Collect.
//
// A List is not safe for concurrent use. Every operation assumes the
// caller holds exclusive access.
type List[T any] struct {
	head     *Block[T]
	tail     *Block[T]
	reserved *Block[T]

	size       int
	capacity   int
	blockCount int

	blockSize int
	alloc     Allocator[T]
	logger    *Logger
}

// Stats is a point-in-time snapshot of a list's block topology.
type Stats struct {
	Len      int  // live element count
	Cap      int  // total slots across chained blocks
	Blocks   int  // chained block count (excludes the reserved block)
	Reserved bool // whether a detached block is cached for reuse
}

// New creates an empty list.
func New[T any](optFns ...Option[T]) *List[T] {
	opts := defaultOptions[T]()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &List[T]{
		blockSize: opts.blockSize,
		alloc:     opts.allocator,
		logger:    opts.logger,
	}
}

// NewWithSize creates a list holding n zero values.
func NewWithSize[T any](n int, optFns ...Option[T]) *List[T] {
	l := New[T](optFns...)
	var zero T
	for i := 0; i < n; i++ {
		l.PushBack(zero)
	}
	return l
}

// NewWithValue creates a list holding n copies of v.
func NewWithValue[T any](n int, v T, optFns ...Option[T]) *List[T] {
	l := New[T](optFns...)
	for i := 0; i < n; i++ {
		l.PushBack(v)
	}
	return l
}

// FromSlice creates a list holding the values in order.
func FromSlice[T any](values []T, optFns ...Option[T]) *List[T] {
	l := New[T](optFns...)
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Collect creates a list holding the values produced by seq, in order.
func Collect[T any](seq iter.Seq[T], optFns ...Option[T]) *List[T] {
	l := New[T](optFns...)
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// Cap returns the total number of element slots across the chained
// blocks. It is always a multiple of BlockSize and never below Len.
func (l *List[T]) Cap() int { return l.capacity }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Blocks returns the number of blocks in the chain. The reserved block,
// if any, is not counted.
func (l *List[T]) Blocks() int { return l.blockCount }

// BlockSize returns the per-block element capacity.
func (l *List[T]) BlockSize() int { return l.blockSize }

// MaxLen returns the largest length the list could reach. There is no
// structural bound below address-space exhaustion.
func (l *List[T]) MaxLen() int { return math.MaxInt }

// Allocator returns the block allocation strategy in use.
func (l *List[T]) Allocator() Allocator[T] { return l.alloc }

// Stats returns a snapshot of the list's block topology.
func (l *List[T]) Stats() Stats {
	return Stats{
		Len:      l.size,
		Cap:      l.capacity,
		Blocks:   l.blockCount,
		Reserved: l.reserved != nil,
	}
}

// Front returns the first element.
func (l *List[T]) Front() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmptyList
	}
	return l.head.items[0], nil
}

// Back returns the last element.
func (l *List[T]) Back() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmptyList
	}
	return l.tail.items[l.tail.count-1], nil
}

// At returns the element at index i. The owning block is located from
// whichever end of the chain is nearer, so the cost is
// O(min(i, Len()-i)) link traversals.
func (l *List[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, &ErrIndexOutOfRange{Index: i, Len: l.size}
	}
	b := l.locateBlock(i / l.blockSize)
	elem := i % l.blockSize
	if elem >= b.count {
		// Guards against a size/chain desync.
		return zero, &ErrIndexOutOfRange{Index: i, Len: l.size}
	}
	return b.items[elem], nil
}

// Set replaces the element at index i with v. Same bounds rules and
// traversal cost as At.
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= l.size {
		return &ErrIndexOutOfRange{Index: i, Len: l.size}
	}
	b := l.locateBlock(i / l.blockSize)
	elem := i % l.blockSize
	if elem >= b.count {
		return &ErrIndexOutOfRange{Index: i, Len: l.size}
	}
	b.items[elem] = v
	return nil
}

// PushBack appends v at the tail. Amortized O(1); existing elements
// never move, so iterators and element positions stay valid.
func (l *List[T]) PushBack(v T) {
	if l.size == l.capacity {
		l.growTail()
	}
	if err := l.tail.pushBack(v); err != nil {
		panic("seglist: internal invariant: " + err.Error())
	}
	l.size++
}

// PopBack removes the last element. Amortized O(1). If the tail block
// empties, it is detached and either cached as the reserved block (at
// most one is kept) or released through the allocator.
func (l *List[T]) PopBack() error {
	if l.size == 0 {
		return ErrEmptyList
	}
	if err := l.tail.popBack(); err != nil {
		panic("seglist: internal invariant: " + err.Error())
	}
	l.size--
	if l.tail.count == 0 {
		l.retireTail()
	}
	return nil
}

// Insert inserts v before pos, shifting every element from pos onward
// one slot toward the tail. Cost is O(distance from pos to the end).
// pos may be End(), which appends. On success the returned iterator
// addresses the inserted element.
//
// Insert invalidates every iterator at or after pos; the returned
// iterator replaces pos.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	if pos.list != l {
		return Iterator[T]{}, ErrInvalidIterator
	}
	switch pos.state {
	case statePastEnd:
		l.PushBack(v)
		return Iterator[T]{list: l, state: stateValid, block: l.tail, index: l.tail.count - 1}, nil
	case stateValid:
		idx, ok := l.indexOf(pos.block, pos.index)
		if !ok || pos.index < 0 || pos.index >= pos.block.count {
			return Iterator[T]{}, ErrInvalidIterator
		}
		if l.size == l.capacity {
			l.growTail()
		}
		l.tail.count++
		l.size++
		dst := l.slotAt(l.size - 1)
		for j := l.size - 1; j > idx; j-- {
			src := l.prevSlot(dst)
			dst.b.items[dst.i] = src.b.items[src.i]
			dst = src
		}
		dst.b.items[dst.i] = v
		return Iterator[T]{list: l, state: stateValid, block: dst.b, index: dst.i}, nil
	default:
		return Iterator[T]{}, ErrInvalidIterator
	}
}

// Erase removes the element at pos, shifting every later element one
// slot toward the head. Cost is O(distance from pos to the end). If the
// tail block empties it is retired under the same cache-or-free policy
// as PopBack. On success the returned iterator addresses the element
// that followed the erased one, or End() if none remains.
//
// Erase invalidates every iterator at or after pos; the returned
// iterator replaces pos.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if pos.list != l || pos.state != stateValid {
		return Iterator[T]{}, ErrInvalidIterator
	}
	idx, ok := l.indexOf(pos.block, pos.index)
	if !ok || pos.index < 0 || pos.index >= pos.block.count {
		return Iterator[T]{}, ErrInvalidIterator
	}

	dst := l.slotAt(idx)
	for j := idx; j < l.size-1; j++ {
		src := l.nextSlot(dst)
		dst.b.items[dst.i] = src.b.items[src.i]
		dst = src
	}
	var zero T
	dst.b.items[dst.i] = zero
	l.tail.count--
	l.size--
	if l.tail.count == 0 {
		l.retireTail()
	}

	if idx == l.size {
		return l.End(), nil
	}
	s := l.slotAt(idx)
	return Iterator[T]{list: l, state: stateValid, block: s.b, index: s.i}, nil
}

// Clear releases every block, including the reserved one, and resets
// the list to its freshly constructed state. Unlike PopBack, Clear
// keeps no warm cache: the next PushBack allocates.
func (l *List[T]) Clear() {
	for b := l.head; b != nil; {
		next := b.next
		l.alloc.Destroy(b)
		l.alloc.Deallocate(b)
		b = next
	}
	if l.reserved != nil {
		l.alloc.Destroy(l.reserved)
		l.alloc.Deallocate(l.reserved)
		l.reserved = nil
	}
	l.head = nil
	l.tail = nil
	l.size = 0
	l.capacity = 0
	l.blockCount = 0
	l.logger.Debug("cleared list", "block_size", l.blockSize)
}

// Clone returns a deep copy: fresh blocks holding the same values,
// allocated through the same strategy. The reserved block is neither
// shared nor copied.
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{
		blockSize: l.blockSize,
		alloc:     l.alloc,
		logger:    l.logger,
	}
	for b := l.head; b != nil; b = b.next {
		for i := 0; i < b.count; i++ {
			out.PushBack(b.items[i])
		}
	}
	return out
}

// growTail extends the chain by one block, reusing the reserved block
// when one is cached and allocating otherwise.
func (l *List[T]) growTail() {
	var b *Block[T]
	if l.reserved != nil {
		b = l.reserved
		l.reserved = nil
		l.logger.Debug("reusing reserved block", "blocks", l.blockCount+1)
	} else {
		b = l.alloc.Allocate(l.blockSize)
		l.alloc.Construct(b)
		l.logger.Debug("allocated block", "blocks", l.blockCount+1)
	}
	b.prev = l.tail
	b.next = nil
	if l.tail != nil {
		l.tail.next = b
	} else {
		l.head = b
	}
	l.tail = b
	l.blockCount++
	l.capacity += l.blockSize
}

// retireTail detaches the empty tail block and caches it as the
// reserved block, or releases it if one is already cached. This
// capacity-one cache is what keeps repeated push/pop at a block
// boundary from thrashing the allocator.
func (l *List[T]) retireTail() {
	b := l.tail
	l.tail = b.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.blockCount--
	l.capacity -= l.blockSize

	if l.reserved != nil {
		l.alloc.Destroy(b)
		l.alloc.Deallocate(b)
		l.logger.Debug("freed block", "blocks", l.blockCount)
	} else {
		b.reset()
		l.reserved = b
		l.logger.Debug("cached reserved block", "blocks", l.blockCount)
	}
}

// locateBlock returns the chain block holding the given block number,
// walking from whichever end is nearer.
func (l *List[T]) locateBlock(blockNumber int) *Block[T] {
	switch {
	case blockNumber == 0:
		return l.head
	case blockNumber == l.blockCount-1:
		return l.tail
	case blockNumber <= l.blockCount/2:
		b := l.head
		for i := 0; i < blockNumber; i++ {
			b = b.next
		}
		return b
	default:
		b := l.tail
		for i := l.blockCount - 1; i > blockNumber; i-- {
			b = b.prev
		}
		return b
	}
}

// indexOf maps a (block, offset) position to its global index, or
// reports that the block is not in the chain.
func (l *List[T]) indexOf(b *Block[T], i int) (int, bool) {
	base := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur == b {
			return base + i, true
		}
		base += l.blockSize
	}
	return 0, false
}

// slot addresses one element position inside a chained block.
type slot[T any] struct {
	b *Block[T]
	i int
}

func (l *List[T]) slotAt(idx int) slot[T] {
	return slot[T]{b: l.locateBlock(idx / l.blockSize), i: idx % l.blockSize}
}

func (l *List[T]) nextSlot(s slot[T]) slot[T] {
	if s.i+1 == l.blockSize {
		return slot[T]{b: s.b.next, i: 0}
	}
	return slot[T]{b: s.b, i: s.i + 1}
}

func (l *List[T]) prevSlot(s slot[T]) slot[T] {
	if s.i == 0 {
		return slot[T]{b: s.b.prev, i: l.blockSize - 1}
	}
	return slot[T]{b: s.b, i: s.i - 1}
}
