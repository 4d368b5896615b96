package vector

// Lifecycle is the element half of storage management: how a slot becomes
// a live element and how it stops being one. The vector never calls an
// allocator for any of these, and the allocator never calls them.
//
// Construct builds a value-initialized element. Copy builds a new element
// from src and must not share mutable state with it. Assign overwrites a
// live element with a copy of src. Destroy ends the life of a live element;
// the vector zeroes the slot afterwards. Construct, Copy and Assign may fail.
type Lifecycle[T any] interface {
	Construct() (T, error)
	Copy(src T) (T, error)
	Assign(dst *T, src T) error
	Destroy(v *T)
}

// Trivial is the lifecycle of plain values: zero value, assignment copies,
// nothing to destroy. It is the default.
type Trivial[T any] struct{}

// Construct returns the zero value.
func (Trivial[T]) Construct() (T, error) {
	var zero T
	return zero, nil
}

// Copy returns src itself.
func (Trivial[T]) Copy(src T) (T, error) { return src, nil }

// Assign stores src in dst.
func (Trivial[T]) Assign(dst *T, src T) error {
	*dst = src
	return nil
}

// Destroy does nothing.
func (Trivial[T]) Destroy(*T) {}

// Funcs builds a Lifecycle out of optional functions. A nil field behaves
// like Trivial. A nil AssignFn with a non-nil CopyFn assigns by
// copy-constructing from src, then destroying dst and storing the copy.
type Funcs[T any] struct {
	ConstructFn func() (T, error)
	CopyFn      func(src T) (T, error)
	AssignFn    func(dst *T, src T) error
	DestroyFn   func(v *T)
}

// Construct calls ConstructFn, or returns the zero value.
func (f Funcs[T]) Construct() (T, error) {
	if f.ConstructFn != nil {
		return f.ConstructFn()
	}
	return Trivial[T]{}.Construct()
}

// Copy calls CopyFn, or returns src itself.
func (f Funcs[T]) Copy(src T) (T, error) {
	if f.CopyFn != nil {
		return f.CopyFn(src)
	}
	return src, nil
}

// Assign calls AssignFn. Without one it copies src first and only then
// destroys and replaces dst, so a failed copy leaves dst untouched.
func (f Funcs[T]) Assign(dst *T, src T) error {
	if f.AssignFn != nil {
		return f.AssignFn(dst, src)
	}
	if f.CopyFn == nil {
		*dst = src
		return nil
	}
	v, err := f.CopyFn(src)
	if err != nil {
		return err
	}
	f.Destroy(dst)
	*dst = v
	return nil
}

// Destroy calls DestroyFn if set.
func (f Funcs[T]) Destroy(v *T) {
	if f.DestroyFn != nil {
		f.DestroyFn(v)
	}
}
