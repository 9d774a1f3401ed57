package seglist

// DefaultBlockSize is the per-block element capacity used when
// WithBlockSize is not given.
const DefaultBlockSize = 21

type options[T any] struct {
	blockSize int
	allocator Allocator[T]
	logger    *Logger
}

// Option configures List construction.
type Option[T any] func(*options[T])

// WithBlockSize sets the per-block element capacity. Values below 1
// fall back to DefaultBlockSize. The block size is fixed for the
// lifetime of the list.
func WithBlockSize[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n < 1 {
			n = DefaultBlockSize
		}
		o.blockSize = n
	}
}

// WithAllocator sets the block allocation strategy. If nil is passed,
// the default HeapAllocator is used.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(o *options[T]) {
		if a == nil {
			a = HeapAllocator[T]{}
		}
		o.allocator = a
	}
}

// WithLogger sets the structured logger for block lifecycle tracing.
// Block allocation, reserved-block reuse and release are logged at
// Debug. If nil is passed, logging is disabled.
func WithLogger[T any](l *Logger) Option[T] {
	return func(o *options[T]) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		blockSize: DefaultBlockSize,
		allocator: HeapAllocator[T]{},
		logger:    NoopLogger(),
	}
}
