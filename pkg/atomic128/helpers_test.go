package atomic128

import (
	"testing"
)

func hostBackend(t testing.TB) *Backend {
	t.Helper()
	b, err := DefaultBackend()
	if err != nil {
		t.Skipf("no 128-bit backend on this host: %v", err)
	}
	return b
}

func fencedBackend(t testing.TB) *Backend {
	t.Helper()
	b, err := NewFencedBackend()
	if err != nil {
		t.Skipf("no fenced-exchange backend on this host: %v", err)
	}
	return b
}

func fullBackend(t testing.TB) *Backend {
	t.Helper()
	b, err := NewFullBackend()
	if err != nil {
		t.Skipf("no full-ordering backend on this host: %v", err)
	}
	return b
}
