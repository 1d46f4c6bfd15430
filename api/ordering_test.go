package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpOrderings(t *testing.T) {
	tests := []struct {
		op               Op
		success, failure Ordering
	}{
		{GetOpaque, Opaque, None},
		{GetAcquire, Acquire, None},
		{GetVolatile, Volatile, None},
		{SetOpaque, Opaque, None},
		{SetRelease, Release, None},
		{SetVolatile, Volatile, None},
		{CompareAndSet, Volatile, Volatile},
		{WeakCompareAndSetRelease, Release, Opaque},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			s, f := tt.op.Orderings()
			assert.Equal(t, tt.success, s)
			assert.Equal(t, tt.failure, f)
		})
	}
}

func TestOpsCoversEveryEntryPoint(t *testing.T) {
	all := Ops()
	assert.Len(t, all, 8)
	loads, stores, cas := 0, 0, 0
	for _, op := range all {
		switch {
		case op.IsLoad():
			loads++
		case op.IsStore():
			stores++
		case op.IsCAS():
			cas++
		}
	}
	assert.Equal(t, 3, loads)
	assert.Equal(t, 3, stores)
	assert.Equal(t, 2, cas)
}

func TestInvalidValues(t *testing.T) {
	assert.Equal(t, "invalid", Op(42).String())
	assert.Equal(t, "invalid", Ordering(-1).String())
	s, f := Op(-3).Orderings()
	assert.Equal(t, None, s)
	assert.Equal(t, None, f)
	assert.Equal(t, "volatile", Volatile.String())
}
