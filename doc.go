// Package vector implements an allocator-aware, generic dynamic array for Go.
//
// # Overview
//
// A Vector owns exactly one contiguous buffer and tracks its logical length
// and physical capacity independently. Storage comes from a pluggable
// Allocator; element lifecycle (construct, copy, assign, destroy) comes
// from a separate Lifecycle. The two never call each other, so the same
// container works over the Go heap, an arena, a budgeted allocator or any
// decorator stack of those.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	_ = v.PushBack(5)
//	_ = v.PushBack(7)
//	_ = v.Resize(5) // [5 7 0 0 0]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Growth
//
// Appending to a full vector grows capacity from 0 to 1 and doubles it
// afterwards (0, 1, 2, 4, 8, ...). Reserve and ShrinkToFit allocate exactly
// the requested number of slots. Reallocation moves elements; it never runs
// the lifecycle's Copy.
//
// # Value Semantics
//
//   - Clone and CopyFrom deep-copy through Lifecycle.Copy and never alias
//     the source's storage.
//   - Take and MoveFrom transfer ownership in O(1) without touching
//     elements.
//   - Swap exchanges two vectors in O(1) and never fails.
//
// # Failure Model
//
// The only runtime failures are allocation failures (ErrAllocationFailure)
// and errors returned by Lifecycle hooks. Construction, Clone, Reserve,
// ShrinkToFit and CopyFrom into a too-small vector leave everything as it
// was when they fail. CopyFrom into a vector that already has the capacity
// overwrites in place and may stop half way; the vector then mixes old and
// new elements but still holds only live ones.
//
// Indexing outside [0, Len()) is a caller error and is not checked.
//
// # Allocators
//
//	a := vector.NewArena[int](0) // Use default chunk size
//	defer a.Release()
//
//	v := vector.New(vector.WithAllocator[int](a))
//	defer v.Release()
//
// Decorators compose: NewCounting for statistics, NewLimited for a slot
// budget, NewLogged for zap logging, NewSynchronized to share one allocator
// between goroutines.
//
// # Thread Safety
//
// A Vector is not goroutine-safe. Concurrent use of one vector needs
// external locking.
package vector
