// Package backend realizes the atomic128 ordering contracts on top of the
// 128-bit primitives the host actually provides.
//
// A Backend is a fixed table of eight entry points. An entry point is either
// present, in which case it maps directly onto a hardware sequence with the
// ordering listed in package api, or absent, in which case calling it returns
// ErrUnsupported every time. Absent entry points are never emulated with a
// weaker or stronger sequence.
//
// Two variants exist:
//
//   - fenced-exchange: only the strong compare-and-set, built on a
//     double-word compare-and-exchange that carries an implicit full fence
//     (LOCK CMPXCHG16B on amd64).
//   - full-ordering: every entry point, each with its own ordering.
//
// Every address handed to a Backend must be 16-byte aligned and writable.
package backend

import (
	"errors"
	"fmt"

	"github.com/srediag/atomic128/api"
)

// Kind distinguishes the backend variants.
type Kind int

const (
	FencedExchange Kind = iota + 1
	FullOrdering
)

func (k Kind) String() string {
	switch k {
	case FencedExchange:
		return "fenced-exchange"
	case FullOrdering:
		return "full-ordering"
	default:
		return "unknown"
	}
}

var (
	// ErrUnsupported is returned by entry points the backend does not have.
	ErrUnsupported = fmt.Errorf("atomic128: operation not supported by backend: %w", errors.ErrUnsupported)
	// ErrNoBackend means no backend can be built for the platform.
	ErrNoBackend = errors.New("atomic128: no 128-bit atomic backend available")
)

type (
	loadFunc  func(addr *[2]uint64) [2]uint64
	storeFunc func(addr *[2]uint64, v [2]uint64)
	casFunc   func(addr *[2]uint64, old, new [2]uint64) (prev [2]uint64, swapped bool)
	weakFunc  func(addr *[2]uint64, old, new [2]uint64) bool
)

// primitives is the raw entry point table; a nil field is an absent entry.
type primitives struct {
	loadOpaque    loadFunc
	loadAcquire   loadFunc
	loadVolatile  loadFunc
	storeOpaque   storeFunc
	storeRelease  storeFunc
	storeVolatile storeFunc
	cas           casFunc
	weakRelease   weakFunc
}

func (p *primitives) has(op api.Op) bool {
	switch op {
	case api.GetOpaque:
		return p.loadOpaque != nil
	case api.GetAcquire:
		return p.loadAcquire != nil
	case api.GetVolatile:
		return p.loadVolatile != nil
	case api.SetOpaque:
		return p.storeOpaque != nil
	case api.SetRelease:
		return p.storeRelease != nil
	case api.SetVolatile:
		return p.storeVolatile != nil
	case api.CompareAndSet:
		return p.cas != nil
	case api.WeakCompareAndSetRelease:
		return p.weakRelease != nil
	}
	return false
}

// Backend is immutable once built and safe for concurrent use.
type Backend struct {
	name string
	kind Kind
	p    primitives

	// unsupported holds one preallocated error per absent entry point.
	unsupported map[api.Op]error
}

func newBackend(kind Kind, p primitives) *Backend {
	b := &Backend{
		name:        kind.String(),
		kind:        kind,
		p:           p,
		unsupported: make(map[api.Op]error),
	}
	for _, op := range api.Ops() {
		if !p.has(op) {
			b.unsupported[op] = fmt.Errorf("%w: %s on %s", ErrUnsupported, op, b.name)
		}
	}
	return b
}

func (b *Backend) Name() string { return b.name }

func (b *Backend) Kind() Kind { return b.kind }

// Supports reports whether op is present.
func (b *Backend) Supports(op api.Op) bool { return b.p.has(op) }

// Supported lists the present entry points in api.Ops order.
func (b *Backend) Supported() []api.Op {
	var ops []api.Op
	for _, op := range api.Ops() {
		if b.p.has(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

func (b *Backend) String() string { return b.name }

func (b *Backend) GetOpaque(addr *[2]uint64) ([2]uint64, error) {
	if b.p.loadOpaque == nil {
		return [2]uint64{}, b.unsupported[api.GetOpaque]
	}
	return b.p.loadOpaque(addr), nil
}

func (b *Backend) GetAcquire(addr *[2]uint64) ([2]uint64, error) {
	if b.p.loadAcquire == nil {
		return [2]uint64{}, b.unsupported[api.GetAcquire]
	}
	return b.p.loadAcquire(addr), nil
}

func (b *Backend) GetVolatile(addr *[2]uint64) ([2]uint64, error) {
	if b.p.loadVolatile == nil {
		return [2]uint64{}, b.unsupported[api.GetVolatile]
	}
	return b.p.loadVolatile(addr), nil
}

func (b *Backend) SetOpaque(addr *[2]uint64, v [2]uint64) error {
	if b.p.storeOpaque == nil {
		return b.unsupported[api.SetOpaque]
	}
	b.p.storeOpaque(addr, v)
	return nil
}

func (b *Backend) SetRelease(addr *[2]uint64, v [2]uint64) error {
	if b.p.storeRelease == nil {
		return b.unsupported[api.SetRelease]
	}
	b.p.storeRelease(addr, v)
	return nil
}

func (b *Backend) SetVolatile(addr *[2]uint64, v [2]uint64) error {
	if b.p.storeVolatile == nil {
		return b.unsupported[api.SetVolatile]
	}
	b.p.storeVolatile(addr, v)
	return nil
}

// CompareAndSet replaces *addr with new iff it equals old. prev is the value
// observed by the operation: old on success, the current value on failure.
// Both arms are sequentially consistent. Every backend has this entry point.
func (b *Backend) CompareAndSet(addr *[2]uint64, old, new [2]uint64) (prev [2]uint64, swapped bool) {
	return b.p.cas(addr, old, new)
}

// WeakCompareAndSetRelease is a single compare-and-set attempt that may fail
// even when *addr equals old. Release ordering on success, opaque on failure.
func (b *Backend) WeakCompareAndSetRelease(addr *[2]uint64, old, new [2]uint64) (bool, error) {
	if b.p.weakRelease == nil {
		return false, b.unsupported[api.WeakCompareAndSetRelease]
	}
	return b.p.weakRelease(addr, old, new), nil
}
