package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapAllocate(t *testing.T) {
	h := NewHeap[int64]()

	buf, err := h.Allocate(10)
	require.NoError(t, err)
	require.Len(t, buf, 10)
	require.Equal(t, 10, cap(buf))
	for _, x := range buf {
		require.Zero(t, x)
	}

	empty, err := h.Allocate(0)
	require.NoError(t, err)
	require.Nil(t, empty)

	_, err = h.Allocate(-1)
	require.ErrorIs(t, err, ErrNegativeSize)

	_, err = h.Allocate(math.MaxInt)
	require.ErrorIs(t, err, ErrAllocationFailure)
	require.Contains(t, err.Error(), "of 8 bytes")

	require.NotPanics(t, func() { h.Deallocate(buf) })
}

func TestHeapZeroSizedElements(t *testing.T) {
	buf, err := NewHeap[struct{}]().Allocate(1000)
	require.NoError(t, err)
	require.Len(t, buf, 1000)
}

func TestLimited(t *testing.T) {
	l := NewLimited[int](nil, 10)
	require.Equal(t, 10, l.Budget())

	b1, err := l.Allocate(6)
	require.NoError(t, err)
	require.Equal(t, 6, l.InUse())

	_, err = l.Allocate(5)
	require.ErrorIs(t, err, ErrAllocationFailure)
	require.Contains(t, err.Error(), "5 slots requested, 4 of 10 available")
	require.Equal(t, 6, l.InUse())

	l.Deallocate(b1)
	require.Equal(t, 0, l.InUse())

	b2, err := l.Allocate(10)
	require.NoError(t, err)
	require.Len(t, b2, 10)

	empty, err := l.Allocate(0)
	require.NoError(t, err)
	require.Nil(t, empty)
}

func TestLimitedFailAfter(t *testing.T) {
	l := NewLimited[int](nil, 100)
	l.FailAfter(2)

	for i := 0; i < 2; i++ {
		_, err := l.Allocate(1)
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := l.Allocate(1)
		require.ErrorIs(t, err, ErrAllocationFailure)
	}
	require.Equal(t, 2, l.InUse())

	l.FailAfter(-1)
	_, err := l.Allocate(1)
	require.NoError(t, err)
}

func TestLimitedPropagatesBaseFailure(t *testing.T) {
	inner := NewLimited[int](nil, 4)
	outer := NewLimited[int](inner, 100)

	_, err := outer.Allocate(8)
	require.ErrorIs(t, err, ErrAllocationFailure)
	require.Equal(t, 0, outer.InUse())
}
