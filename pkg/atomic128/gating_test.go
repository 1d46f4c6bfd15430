package atomic128

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srediag/atomic128/api"
)

func TestFencedExchangeGating(t *testing.T) {
	b := fencedBackend(t)
	require.Equal(t, FencedExchange, b.Kind())

	v := NewFrom(3, 4, WithBackend(b))
	other := NewFrom(8, 8, WithBackend(b))
	calls := map[api.Op]func() error{
		api.GetOpaque:   func() error { return v.GetOpaque(other) },
		api.GetAcquire:  func() error { return v.GetAcquire(other) },
		api.GetVolatile: func() error { return v.GetVolatile(other) },
		api.SetOpaque:   func() error { return v.SetOpaque(other) },
		api.SetRelease:  func() error { return v.SetRelease(other) },
		api.SetVolatile: func() error { return v.SetVolatile(other) },
		api.WeakCompareAndSetRelease: func() error {
			_, err := v.WeakCompareAndSetRelease(NewFrom(3, 4, WithBackend(b)), other)
			return err
		},
	}
	for i := 0; i < 100; i++ {
		for op, call := range calls {
			err := call()
			require.ErrorIs(t, err, ErrUnsupportedOperation, op.String())
			require.True(t, errors.Is(err, errors.ErrUnsupported), op.String())
			require.False(t, b.Supports(op))
		}
	}
	assert.Equal(t, uint64(3), v.High())
	assert.Equal(t, uint64(4), v.Low())
	assert.Equal(t, uint64(8), other.High())

	expected := NewFrom(3, 4, WithBackend(b))
	assert.True(t, v.CompareAndSet(expected, other))
	assert.True(t, v.Equal(other))
	assert.False(t, v.CompareAndSet(expected, NewFrom(1, 1, WithBackend(b))))
	assert.True(t, expected.Equal(other))
}

func TestFullOrderingSupportsEverything(t *testing.T) {
	b := fullBackend(t)
	for _, op := range api.Ops() {
		assert.True(t, b.Supports(op), op.String())
	}
}

func TestResolve(t *testing.T) {
	hostBackend(t)
	t.Setenv(EnvBackend, "full-ordering")
	cfg := DefaultConfig()
	require.NoError(t, VerifyConfig(cfg))
	b, err := Resolve(t.Context(), cfg)
	if errors.Is(err, ErrNoBackend) {
		t.Skipf("full-ordering unavailable: %v", err)
	}
	require.NoError(t, err)
	assert.Equal(t, FullOrdering, b.Kind())

	t.Setenv(EnvBackend, "bogus")
	assert.Error(t, VerifyConfig(DefaultConfig()))
}
