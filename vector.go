package vector

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Vector is a growable contiguous sequence over a single buffer obtained
// from an Allocator. Slots [0, Len()) hold live elements; slots
// [Len(), Cap()) are raw and zeroed. A Vector has one owner and is not safe
// for concurrent use.
//
// The zero value is an empty vector on the Go heap with the Trivial
// lifecycle.
type Vector[T any] struct {
	storage []T // len(storage) == capacity; nil iff capacity == 0
	length  int
	alloc   Allocator[T]
	ops     Lifecycle[T]
}

// Option configures a new Vector.
type Option[T any] func(*Vector[T])

// WithAllocator sets the allocator that provides the vector's storage.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(v *Vector[T]) { v.alloc = a }
}

// WithLifecycle sets how elements are constructed, copied and destroyed.
func WithLifecycle[T any](ops Lifecycle[T]) Option[T] {
	return func(v *Vector[T]) { v.ops = ops }
}

// New returns an empty vector with no storage.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewSized returns a vector of n value-initialized elements with capacity n.
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "new vector of %d elements", n)
	}
	v := New(opts...)
	buf, err := v.allocate(n)
	if err != nil {
		return nil, errors.Wrapf(err, "new vector of %d elements", n)
	}
	if err := v.construct(buf, 0, n); err != nil {
		v.deallocate(buf)
		return nil, errors.Wrapf(err, "new vector of %d elements", n)
	}
	v.storage, v.length = buf, n
	return v, nil
}

// Of returns a vector holding a copy of each item, in order, with capacity
// len(items).
func Of[T any](items []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.copyFrom(items, len(items)); err != nil {
		return nil, errors.Wrapf(err, "vector of %d items", len(items))
	}
	return v, nil
}

// Clone returns a deep copy of v sharing its allocator and lifecycle. The
// copy has the same capacity as v and never aliases v's storage. On failure
// nothing is left allocated.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{alloc: v.alloc, ops: v.ops}
	if err := c.copyFrom(v.Slice(), v.Cap()); err != nil {
		return nil, errors.Wrap(err, "clone")
	}
	return c, nil
}

// Take moves other's contents into a new vector in O(1). No element is
// touched. other is left empty with no storage and stays usable.
func Take[T any](other *Vector[T]) *Vector[T] {
	v := &Vector[T]{alloc: other.alloc, ops: other.ops}
	v.Swap(other)
	return v
}

// CopyFrom makes v an element-wise copy of other.
//
// When v cannot hold other's elements a complete copy is built first and
// swapped in, so on failure v is unchanged. Otherwise v's storage is reused:
// the overlapping elements are assigned, missing ones copy-constructed and
// excess ones destroyed down to other's length. A failure on that path
// leaves v partly overwritten; it still holds only live elements and can be
// released safely.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	src := other.Slice()

	if v.Cap() < len(src) {
		tmp := &Vector[T]{alloc: v.alloc, ops: v.ops}
		if err := tmp.copyFrom(src, other.Cap()); err != nil {
			return errors.Wrap(err, "copy assign")
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	ops := v.lifecycle()
	overlap := min(v.length, len(src))
	for i := 0; i < overlap; i++ {
		if err := ops.Assign(&v.storage[i], src[i]); err != nil {
			return errors.Wrapf(err, "copy assign element %d", i)
		}
	}
	for i := v.length; i < len(src); i++ {
		x, err := ops.Copy(src[i])
		if err != nil {
			return errors.Wrapf(err, "copy assign element %d", i)
		}
		v.storage[i] = x
		v.length = i + 1
	}
	if len(src) < v.length {
		v.destroy(v.storage, len(src), v.length)
		v.length = len(src)
	}
	return nil
}

// MoveFrom exchanges v's state with other's in O(1). v's previous contents
// end up in other, which the caller is expected to Release.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Swap(other)
}

// Swap exchanges length, capacity, storage, allocator and lifecycle with
// other. It never fails and touches no element.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *Vector[T]) {
	a.Swap(b)
}

// Reserve ensures capacity for at least n elements. When n exceeds the
// current capacity exactly n slots are allocated and the live elements are
// moved over in order. On failure v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrNegativeSize, "reserve %d slots", n)
	}
	if n <= v.Cap() {
		return nil
	}
	return errors.Wrapf(v.reallocate(n), "reserve %d slots", n)
}

// ShrinkToFit reduces capacity to Len(). On failure v is unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	if v.length == v.Cap() {
		return nil
	}
	if v.length == 0 {
		v.deallocate(v.storage)
		v.storage = nil
		return nil
	}
	return errors.Wrapf(v.reallocate(v.length), "shrink to fit %d slots", v.length)
}

// Resize sets the length to n. New elements are value-initialized; excess
// elements are destroyed. If constructing a new element fails, the ones
// already built are destroyed and the length is left as it was, though the
// capacity may have grown.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrNegativeSize, "resize to %d", n)
	}
	if err := v.Reserve(n); err != nil {
		return errors.Wrapf(err, "resize to %d", n)
	}
	switch {
	case n > v.length:
		if err := v.construct(v.storage, v.length, n); err != nil {
			return errors.Wrapf(err, "resize to %d", n)
		}
	case n < v.length:
		v.destroy(v.storage, n, v.length)
	}
	v.length = n
	return nil
}

// PushBack moves x into a new last slot, growing the storage if full:
// capacity 0 grows to 1, anything else doubles.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.grow(v.length + 1); err != nil {
		return errors.Wrap(err, "push back")
	}
	v.storage[v.length] = x
	v.length++
	return nil
}

// PushBackCopy is PushBack with the new slot built by the lifecycle's Copy.
func (v *Vector[T]) PushBackCopy(x T) error {
	if err := v.grow(v.length + 1); err != nil {
		return errors.Wrap(err, "push back")
	}
	y, err := v.lifecycle().Copy(x)
	if err != nil {
		return errors.Wrap(err, "push back copy")
	}
	v.storage[v.length] = y
	v.length++
	return nil
}

// Append moves xs onto the end, growing at most once. xs may alias v's
// own storage, as in v.Append(v.Slice()...).
func (v *Vector[T]) Append(xs ...T) error {
	need := v.length + len(xs)
	if need <= v.Cap() {
		v.length += copy(v.storage[v.length:], xs)
		return nil
	}
	buf, err := v.allocate(v.nextCap(need))
	if err != nil {
		return errors.Wrapf(err, "append %d elements", len(xs))
	}
	copy(buf, v.storage[:v.length])
	copy(buf[v.length:], xs)
	v.replaceStorage(buf)
	v.length = need
	return nil
}

// Clear destroys every element and keeps the storage.
func (v *Vector[T]) Clear() {
	v.destroy(v.storage, 0, v.length)
	v.length = 0
}

// Release destroys every element and returns the storage to the allocator,
// leaving v empty. Calling it again, or on a moved-from vector, is a no-op.
func (v *Vector[T]) Release() {
	v.Clear()
	v.deallocate(v.storage)
	v.storage = nil
}

// At returns a reference to element i. The caller guarantees
// 0 <= i < Len(); no further check is made.
func (v *Vector[T]) At(i int) *T { return &v.storage[i] }

// Get returns element i. Same contract as At.
func (v *Vector[T]) Get(i int) T { return v.storage[i] }

// Set destroys element i and moves x into its slot. Same contract as At.
func (v *Vector[T]) Set(i int, x T) {
	v.lifecycle().Destroy(&v.storage[i])
	v.storage[i] = x
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.storage) }

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int { return 0 }

// End returns the position one past the last element.
func (v *Vector[T]) End() int { return v.length }

// Slice returns the live elements as a view of the storage. The view is
// valid until the next operation that reallocates, swaps or moves v.
func (v *Vector[T]) Slice() []T {
	return v.storage[:v.length:v.length]
}

// All iterates over the live elements front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.storage[i]) {
				return
			}
		}
	}
}

// Backward iterates over the live elements back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.length - 1; i >= 0; i-- {
			if !yield(i, v.storage[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vector[len=%d cap=%d]", v.length, v.Cap())
	end := min(v.length, 100)
	if end == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, " %v", v.storage[:end])
	if end < v.length {
		b.WriteString(" ...")
	}
	return b.String()
}

func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		return Heap[T]{}
	}
	return v.alloc
}

func (v *Vector[T]) lifecycle() Lifecycle[T] {
	if v.ops == nil {
		return Trivial[T]{}
	}
	return v.ops
}

func (v *Vector[T]) allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	return v.allocator().Allocate(n)
}

func (v *Vector[T]) deallocate(buf []T) {
	if len(buf) > 0 {
		v.allocator().Deallocate(buf)
	}
}

// grow ensures capacity for need elements following the doubling rule.
func (v *Vector[T]) grow(need int) error {
	if need <= v.Cap() {
		return nil
	}
	return v.reallocate(v.nextCap(need))
}

// nextCap doubles the capacity, starting from 1, until need fits.
func (v *Vector[T]) nextCap(need int) int {
	next := max(v.Cap(), 1)
	for next < need {
		if next > math.MaxInt/2 {
			return need
		}
		next *= 2
	}
	return next
}

// reallocate moves the live elements into a fresh buffer of n slots.
func (v *Vector[T]) reallocate(n int) error {
	buf, err := v.allocate(n)
	if err != nil {
		return err
	}
	copy(buf, v.storage[:v.length])
	v.replaceStorage(buf)
	return nil
}

// replaceStorage clears and returns the old storage once its live elements
// have been moved into buf, then installs buf.
func (v *Vector[T]) replaceStorage(buf []T) {
	old := v.storage
	clear(old[:v.length])
	v.deallocate(old)
	v.storage = buf
}

// copyFrom fills an empty v with copies of src in a fresh buffer of
// capacity slots. On failure the copied prefix is destroyed, the buffer
// released and v left untouched.
func (v *Vector[T]) copyFrom(src []T, capacity int) error {
	buf, err := v.allocate(capacity)
	if err != nil {
		return err
	}
	ops := v.lifecycle()
	for i := range src {
		x, err := ops.Copy(src[i])
		if err != nil {
			v.destroy(buf, 0, i)
			v.deallocate(buf)
			return errors.Wrapf(err, "copy element %d", i)
		}
		buf[i] = x
	}
	v.storage, v.length = buf, len(src)
	return nil
}

// construct value-initializes buf[from:to]. On failure the elements built
// so far are destroyed.
func (v *Vector[T]) construct(buf []T, from, to int) error {
	ops := v.lifecycle()
	for i := from; i < to; i++ {
		x, err := ops.Construct()
		if err != nil {
			v.destroy(buf, from, i)
			return errors.Wrapf(err, "construct element %d", i)
		}
		buf[i] = x
	}
	return nil
}

// destroy ends buf[from:to] in reverse order and zeroes the slots.
func (v *Vector[T]) destroy(buf []T, from, to int) {
	ops := v.lifecycle()
	for i := to - 1; i >= from; i-- {
		ops.Destroy(&buf[i])
	}
	clear(buf[from:to])
}
