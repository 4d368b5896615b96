package vector

import (
	"unsafe"

	"github.com/pkg/errors"
)

// MaxAllocBytes bounds a single Heap allocation.
const MaxAllocBytes = 1 << 40

// Allocator acquires and releases raw element slots. It knows nothing about
// element lifecycle: Allocate returns n zeroed slots (len == cap == n) and
// Deallocate takes back a buffer previously returned by the same allocator.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
}

// Heap allocates slots from the Go heap. The zero value is ready to use.
type Heap[T any] struct{}

// NewHeap returns a heap allocator for T.
func NewHeap[T any]() Heap[T] { return Heap[T]{} }

// Allocate returns n zeroed slots. Returns nil for n == 0.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "allocate %d slots", n)
	}
	if n == 0 {
		return nil, nil
	}
	if uint64(n) > MaxAllocBytes/uint64(slotSize[T]()) {
		return nil, errors.Wrapf(ErrAllocationFailure, "allocate %d slots of %d bytes", n, slotSize[T]())
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; the garbage collector reclaims the buffer.
func (Heap[T]) Deallocate([]T) {}

// slotSize returns the size of one slot in bytes, at least 1 so that
// zero-sized element types still have a finite slot budget.
func slotSize[T any]() int {
	var zero T
	if s := int(unsafe.Sizeof(zero)); s > 0 {
		return s
	}
	return 1
}
