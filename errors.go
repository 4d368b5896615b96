package vector

import "github.com/pkg/errors"

var (
	// ErrAllocationFailure is returned when an allocator cannot satisfy a
	// request. Operations wrap it with context; match with errors.Is.
	ErrAllocationFailure = errors.New("vector: allocation failure")

	// ErrNegativeSize is returned for a negative length or capacity argument.
	ErrNegativeSize = errors.New("vector: negative size")
)
