package vector

import "github.com/pkg/errors"

// DefaultChunkSize is the default chunk size for new arenas, in slots.
const DefaultChunkSize = 1 << 10

// chunk is one block of slots within an arena. Slots at and beyond offset
// are always zero.
type chunk[T any] struct {
	buf    []T
	offset int
}

// Arena is a chunked bump allocator of typed slots. Buffers are carved
// sequentially out of chunks; Deallocate only reclaims a buffer when it is
// the most recent allocation of its chunk, everything else is reclaimed in
// bulk by Reset. Not goroutine-safe; wrap it in Synchronized to share it.
//
// Typical usage: one arena per request or batch, many short-lived vectors
// built on it, then Reset (or Release) once they are all gone.
//
// The zero value is ready to use with DefaultChunkSize; its first chunk is
// allocated on the first Allocate.
type Arena[T any] struct {
	chunks    []chunk[T]
	chunkSize int
	current   int
	released  bool
}

// NewArena creates a new Arena with the specified chunk size in slots.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena[T]{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Allocate returns n zeroed slots carved from the arena. The buffer has
// len == cap == n so appending to it can never spill into a neighbour.
// Returns nil for n == 0. Panics if the arena has been released.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "arena allocate %d slots", n)
	}
	if n == 0 {
		return nil, nil
	}
	a.panicIfReleased()
	if uint64(n) > MaxAllocBytes/uint64(slotSize[T]()) {
		return nil, errors.Wrapf(ErrAllocationFailure, "arena allocate %d slots", n)
	}

	if len(a.chunks) == 0 {
		a.grow(n)
		return a.chunks[0].take(n), nil
	}
	// Fast path: the current chunk has room
	if c := &a.chunks[a.current]; c.offset+n <= len(c.buf) {
		return c.take(n), nil
	}
	return a.allocateSlow(n), nil
}

// allocateSlow moves on to the next chunk with room, growing the arena
// when none is left.
func (a *Arena[T]) allocateSlow(n int) []T {
	for i := a.current + 1; i < len(a.chunks); i++ {
		if c := &a.chunks[i]; c.offset+n <= len(c.buf) {
			a.current = i
			return c.take(n)
		}
	}
	a.grow(n)
	return a.chunks[a.current].take(n)
}

func (c *chunk[T]) take(n int) []T {
	start := c.offset
	c.offset += n
	return c.buf[start:c.offset:c.offset]
}

// Deallocate returns buf to the arena. When buf is the tail allocation of
// its chunk the offset is rolled back and the slots are reused by the next
// Allocate; otherwise they stay reserved until Reset. Deallocating into a
// released arena is a no-op.
func (a *Arena[T]) Deallocate(buf []T) {
	n := len(buf)
	if n == 0 || a.chunks == nil {
		return
	}
	clear(buf)
	for i := range a.chunks {
		c := &a.chunks[i]
		if c.offset >= n && &c.buf[c.offset-n] == &buf[0] {
			c.offset -= n
			if i < a.current {
				a.current = i
			}
			return
		}
	}
}

// Reset clears every chunk and rewinds all offsets, keeping the chunks for
// reuse. Buffers handed out before Reset must no longer be used.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		c := &a.chunks[i]
		clear(c.buf[:c.offset])
		c.offset = 0
	}
	a.current = 0
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent Allocate or Reset will panic.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.current = 0
	a.released = true
}

// grow appends a new chunk of at least min slots and makes it current.
func (a *Arena[T]) grow(min int) {
	if a.chunkSize <= 0 {
		a.chunkSize = DefaultChunkSize
	}
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.current = len(a.chunks) - 1
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.released {
		panic("vector: arena use after Release()")
	}
}
