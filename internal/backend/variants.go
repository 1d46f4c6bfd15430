package backend

import (
	"fmt"
	"runtime"

	"github.com/srediag/atomic128/internal/platform"
)

// NewFenced builds the fenced-exchange backend: the strong compare-and-set
// is its only entry point.
func NewFenced(f platform.Features) (*Backend, error) {
	p, ok := fencedPrimitives(f)
	if !ok {
		return nil, fmt.Errorf("%w: %s needs a double-word compare-and-exchange on %s", ErrNoBackend, FencedExchange, runtime.GOARCH)
	}
	return newBackend(FencedExchange, primitives{cas: p.cas}), nil
}

// NewFull builds the full-ordering backend.
func NewFull(f platform.Features) (*Backend, error) {
	p, ok := fullPrimitives(f)
	if !ok {
		return nil, fmt.Errorf("%w: %s needs ordered 128-bit loads and stores on %s", ErrNoBackend, FullOrdering, runtime.GOARCH)
	}
	return newBackend(FullOrdering, p), nil
}
