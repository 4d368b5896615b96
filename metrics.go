package vector

// ArenaMetrics is a snapshot of an arena's chunks, counted in slots of T.
type ArenaMetrics struct {
	SizeInUse   int     // Slots carved out and not rolled back
	Capacity    int     // Slots across all chunks
	Available   int     // Slots left in the current chunk before the next one is used
	NumChunks   int     // Chunks held, oversized ones included
	ChunkSize   int     // Slots in a regular chunk
	Utilization float64 // SizeInUse / Capacity; 0 with no chunks
}

// Metrics walks the chunks once and reports their usage. An arena that has
// not allocated yet, or has been released, holds no chunks and reports only
// its chunk size.
func (a *Arena[T]) Metrics() ArenaMetrics {
	m := ArenaMetrics{NumChunks: len(a.chunks), ChunkSize: a.ChunkSize()}
	for i, c := range a.chunks {
		m.SizeInUse += c.offset
		m.Capacity += len(c.buf)
		if i == a.current {
			m.Available = len(c.buf) - c.offset
		}
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.SizeInUse) / float64(m.Capacity)
	}
	return m
}

// SizeInUse returns the number of slots currently handed out.
func (a *Arena[T]) SizeInUse() int { return a.Metrics().SizeInUse }

// NumChunks returns the number of chunks held.
func (a *Arena[T]) NumChunks() int { return len(a.chunks) }

// Capacity returns the number of slots across all chunks.
func (a *Arena[T]) Capacity() int { return a.Metrics().Capacity }

// Utilization returns SizeInUse over Capacity.
func (a *Arena[T]) Utilization() float64 { return a.Metrics().Utilization }

// ChunkSize returns the slots in a regular chunk. Requests larger than that
// get a chunk of their own.
func (a *Arena[T]) ChunkSize() int {
	if a.chunkSize <= 0 {
		return DefaultChunkSize
	}
	return a.chunkSize
}

// Counting decorates an allocator with allocation statistics.
type Counting[T any] struct {
	base Allocator[T]
	m    AllocatorMetrics
}

// AllocatorMetrics is a snapshot of a Counting allocator.
type AllocatorMetrics struct {
	Allocations   int // Successful non-empty Allocate calls
	Deallocations int // Non-empty Deallocate calls
	Failures      int // Allocate calls that returned an error
	SlotsInUse    int // Slots allocated and not yet deallocated
	PeakSlots     int // High-water mark of SlotsInUse
}

// NewCounting wraps base. A nil base means Heap.
func NewCounting[T any](base Allocator[T]) *Counting[T] {
	if base == nil {
		base = Heap[T]{}
	}
	return &Counting[T]{base: base}
}

// Allocate forwards to the wrapped allocator and records the outcome.
func (c *Counting[T]) Allocate(n int) ([]T, error) {
	buf, err := c.base.Allocate(n)
	if err != nil {
		c.m.Failures++
		return nil, err
	}
	if len(buf) > 0 {
		c.m.Allocations++
		c.m.SlotsInUse += len(buf)
		if c.m.SlotsInUse > c.m.PeakSlots {
			c.m.PeakSlots = c.m.SlotsInUse
		}
	}
	return buf, nil
}

// Deallocate forwards to the wrapped allocator and records the release.
func (c *Counting[T]) Deallocate(buf []T) {
	if len(buf) > 0 {
		c.m.Deallocations++
		c.m.SlotsInUse -= len(buf)
	}
	c.base.Deallocate(buf)
}

// Metrics returns a snapshot of the counters.
func (c *Counting[T]) Metrics() AllocatorMetrics {
	return c.m
}

// Outstanding reports whether any allocation has not been returned.
func (c *Counting[T]) Outstanding() bool {
	return c.m.Allocations != c.m.Deallocations || c.m.SlotsInUse != 0
}
