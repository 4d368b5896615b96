package vector

import "sync"

// Synchronized is a mutex-protected wrapper around an Allocator so that one
// stateful allocator (an Arena, a Limited budget) can back vectors owned by
// different goroutines. It does not make any Vector safe for concurrent use.
type Synchronized[T any] struct {
	mu   sync.Mutex
	base Allocator[T]
}

// NewSynchronized wraps base. A nil base means Heap.
func NewSynchronized[T any](base Allocator[T]) *Synchronized[T] {
	if base == nil {
		base = Heap[T]{}
	}
	return &Synchronized[T]{base: base}
}

// Allocate thread-safely forwards to the wrapped allocator.
func (s *Synchronized[T]) Allocate(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.base.Allocate(n)
}

// Deallocate thread-safely forwards to the wrapped allocator.
func (s *Synchronized[T]) Deallocate(buf []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base.Deallocate(buf)
}

// Do runs fn with the lock held, for reading metrics off the wrapped
// allocator or resetting it while other goroutines allocate.
func (s *Synchronized[T]) Do(fn func(base Allocator[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.base)
}
