package vector

import "go.uber.org/zap"

// Logged decorates an allocator with structured logging: every slot
// request and release at debug level, every failure at warn level.
type Logged[T any] struct {
	base   Allocator[T]
	logger *zap.Logger
}

// NewLogged wraps base. A nil base means Heap; a nil logger means zap.NewNop.
func NewLogged[T any](base Allocator[T], logger *zap.Logger) *Logged[T] {
	if base == nil {
		base = Heap[T]{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logged[T]{
		base:   base,
		logger: logger.With(zap.Int("slot size", slotSize[T]())),
	}
}

// Allocate forwards to the wrapped allocator and logs the outcome.
func (l *Logged[T]) Allocate(n int) ([]T, error) {
	buf, err := l.base.Allocate(n)
	if err != nil {
		l.logger.Warn("allocate failed",
			zap.Int("slots", n),
			zap.Error(err),
		)
		return nil, err
	}
	if ce := l.logger.Check(zap.DebugLevel, "allocate"); ce != nil {
		ce.Write(zap.Int("slots", n))
	}
	return buf, nil
}

// Deallocate logs the release and forwards to the wrapped allocator.
func (l *Logged[T]) Deallocate(buf []T) {
	if ce := l.logger.Check(zap.DebugLevel, "deallocate"); ce != nil {
		ce.Write(zap.Int("slots", len(buf)))
	}
	l.base.Deallocate(buf)
}
