package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLogged[int64](NewLimited[int64](nil, 8), zap.New(core))

	buf, err := l.Allocate(4)
	require.NoError(t, err)
	l.Deallocate(buf)

	_, err = l.Allocate(16)
	require.ErrorIs(t, err, ErrAllocationFailure)

	entries := logs.All()
	require.Len(t, entries, 3)

	require.Equal(t, "allocate", entries[0].Message)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, int64(4), entries[0].ContextMap()["slots"])
	require.Equal(t, int64(8), entries[0].ContextMap()["slot size"])

	require.Equal(t, "deallocate", entries[1].Message)
	require.Equal(t, int64(4), entries[1].ContextMap()["slots"])

	require.Equal(t, "allocate failed", entries[2].Message)
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
	require.Contains(t, entries[2].ContextMap()["error"], "allocation failure")
}

func TestLoggedSkipsDebugAboveLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	v := New(WithAllocator[int](NewLogged[int](nil, zap.New(core))))
	for i := 0; i < 10; i++ {
		require.NoError(t, v.PushBack(i))
	}
	v.Release()
	require.Zero(t, logs.Len())
}

func TestLoggedNilLogger(t *testing.T) {
	l := NewLogged[int](nil, nil)
	require.NotPanics(t, func() {
		buf, err := l.Allocate(2)
		require.NoError(t, err)
		l.Deallocate(buf)
	})
}
