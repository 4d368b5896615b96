package vector

import "golang.org/x/exp/constraints"

// Equal reports whether a and b have the same length and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.storage[i], b.storage[i]) {
			return false
		}
	}
	return true
}

// CompareFunc orders a and b lexicographically: the first differing pair
// over the shared prefix decides, otherwise the shorter vector is less.
// cmp returns a negative number, zero or a positive number like cmp.Compare.
func CompareFunc[T any](a, b *Vector[T], cmp func(x, y T) int) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := cmp(a.storage[i], b.storage[i]); c != 0 {
			return c
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	}
	return 0
}

// Compare is CompareFunc with the natural ordering of T.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

func Less[T constraints.Ordered](a, b *Vector[T]) bool         { return Compare(a, b) < 0 }
func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool    { return Compare(a, b) <= 0 }
func Greater[T constraints.Ordered](a, b *Vector[T]) bool      { return Compare(a, b) > 0 }
func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }
