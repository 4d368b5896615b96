package vector

import "github.com/pkg/errors"

// Limited caps the number of slots outstanding through a wrapped allocator.
// A request that would exceed the budget fails with ErrAllocationFailure and
// reaches nothing underneath.
type Limited[T any] struct {
	base      Allocator[T]
	budget    int
	inUse     int
	failAfter int // successful allocations left before forced failure; <0 disables
}

// NewLimited wraps base with a budget of slots. A nil base means Heap.
func NewLimited[T any](base Allocator[T], budget int) *Limited[T] {
	if base == nil {
		base = Heap[T]{}
	}
	return &Limited[T]{base: base, budget: budget, failAfter: -1}
}

// FailAfter makes the allocator fail every request after k more successful
// ones, regardless of budget. A negative k disables the countdown.
func (l *Limited[T]) FailAfter(k int) {
	l.failAfter = k
}

// Allocate returns n slots from the wrapped allocator if the budget allows.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if l.failAfter == 0 {
		return nil, errors.Wrapf(ErrAllocationFailure, "injected failure allocating %d slots", n)
	}
	if n > l.budget-l.inUse {
		return nil, errors.Wrapf(ErrAllocationFailure, "%d slots requested, %d of %d available",
			n, l.budget-l.inUse, l.budget)
	}
	buf, err := l.base.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.inUse += len(buf)
	if l.failAfter > 0 {
		l.failAfter--
	}
	return buf, nil
}

// Deallocate returns buf to the wrapped allocator and refunds the budget.
func (l *Limited[T]) Deallocate(buf []T) {
	l.inUse -= len(buf)
	l.base.Deallocate(buf)
}

// InUse returns the number of slots currently charged against the budget.
func (l *Limited[T]) InUse() int { return l.inUse }

// Budget returns the configured slot budget.
func (l *Limited[T]) Budget() int { return l.budget }
