package atomic128

import (
	"unsafe"
)

// noCopy makes go vet's copylocks check flag Values copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Value is a 128-bit integer supporting atomic operations.
//
// A Value must not be copied after first use; share it by pointer. The zero
// Value is valid: it holds 0 in LowFirst order and uses the default backend.
type Value struct {
	_ noCopy

	// The 16-byte aligned pair is cell[0:2] or cell[1:3]; words picks it.
	cell    [3]uint64
	order   WordOrder
	backend *Backend
}

// Option configures a Value at construction.
type Option func(*Value)

// WithWordOrder sets the word order. The default is NativeWordOrder().
func WithWordOrder(o WordOrder) Option {
	return func(v *Value) { v.order = o & 1 }
}

// WithBackend binds the Value to b instead of the process-wide default.
func WithBackend(b *Backend) Option {
	return func(v *Value) { v.backend = b }
}

// New returns a Value holding 0.
//
// Without WithBackend it uses DefaultBackend and panics if that cannot be
// resolved: a process without a backend cannot provide 128-bit atomics at
// all.
func New(opts ...Option) *Value {
	v := &Value{order: NativeWordOrder()}
	for _, opt := range opts {
		opt(v)
	}
	if v.backend == nil {
		v.backend = mustDefaultBackend()
	}
	return v
}

// NewFrom returns a Value holding high:low.
func NewFrom(high, low uint64, opts ...Option) *Value {
	v := New(opts...)
	v.Set(high, low)
	return v
}

// NewCopy returns a Value holding the current value of src.
// The copy is not atomic.
func NewCopy(src *Value, opts ...Option) *Value {
	v := New(opts...)
	v.CopyFrom(src)
	return v
}

//go:nosplit
func (v *Value) words() *[2]uint64 {
	p := unsafe.Pointer(&v.cell[0])
	return (*[2]uint64)(unsafe.Add(p, uintptr(p)&8))
}

// in returns the value of v laid out in order o.
func (v *Value) in(o WordOrder) [2]uint64 {
	w := v.words()
	s := uint8(v.order^o) & 1
	return [2]uint64{w[s], w[s^1]}
}

// put stores w, laid out in order o, into v.
func (v *Value) put(o WordOrder, w [2]uint64) {
	d := v.words()
	s := uint8(v.order^o) & 1
	d[s], d[s^1] = w[0], w[1]
}

func (v *Value) be() *Backend {
	if v.backend != nil {
		return v.backend
	}
	return mustDefaultBackend()
}

// Order returns the word order fixed at construction.
func (v *Value) Order() WordOrder { return v.order }

// Backend returns the backend ordered operations are delegated to.
func (v *Value) Backend() *Backend { return v.be() }

// CopyFrom copies src into v, honouring both word orders. Not atomic: use it
// to prepare CAS operands, not as a substitute for an ordered load.
func (v *Value) CopyFrom(src *Value) {
	v.put(src.order, *src.words())
}

// High returns the most significant word. Not atomic.
func (v *Value) High() uint64 { return v.words()[v.order.msw()] }

// Low returns the least significant word. Not atomic.
func (v *Value) Low() uint64 { return v.words()[v.order.lsw()] }

// SetHigh sets the most significant word. Not atomic.
func (v *Value) SetHigh(high uint64) { v.words()[v.order.msw()] = high }

// SetLow sets the least significant word. Not atomic.
func (v *Value) SetLow(low uint64) { v.words()[v.order.lsw()] = low }

// Set sets both words. Not atomic.
func (v *Value) Set(high, low uint64) {
	w := v.words()
	w[v.order.msw()] = high
	w[v.order.lsw()] = low
}

// Words returns the physical words, lower address first. Not atomic.
func (v *Value) Words() (a, b uint64) {
	w := v.words()
	return w[0], w[1]
}

// SetWords sets the physical words, lower address first. Not atomic.
func (v *Value) SetWords(a, b uint64) {
	w := v.words()
	w[0], w[1] = a, b
}

// Uint64 returns the least significant word.
func (v *Value) Uint64() uint64 { return v.Low() }

// GetOpaque atomically loads v into result with opaque ordering.
func (v *Value) GetOpaque(result *Value) error {
	w, err := v.be().GetOpaque(v.words())
	if err != nil {
		return err
	}
	result.put(v.order, w)
	return nil
}

// GetAcquire atomically loads v into result with acquire ordering.
func (v *Value) GetAcquire(result *Value) error {
	w, err := v.be().GetAcquire(v.words())
	if err != nil {
		return err
	}
	result.put(v.order, w)
	return nil
}

// GetVolatile atomically loads v into result with sequentially consistent
// ordering.
func (v *Value) GetVolatile(result *Value) error {
	w, err := v.be().GetVolatile(v.words())
	if err != nil {
		return err
	}
	result.put(v.order, w)
	return nil
}

// SetOpaque atomically stores src into v with opaque ordering.
func (v *Value) SetOpaque(src *Value) error {
	return v.be().SetOpaque(v.words(), src.in(v.order))
}

// SetRelease atomically stores src into v with release ordering.
func (v *Value) SetRelease(src *Value) error {
	return v.be().SetRelease(v.words(), src.in(v.order))
}

// SetVolatile atomically stores src into v with sequentially consistent
// ordering.
func (v *Value) SetVolatile(src *Value) error {
	return v.be().SetVolatile(v.words(), src.in(v.order))
}

// CompareAndSet atomically sets v to candidate if v equals expected, with
// sequentially consistent ordering on both outcomes. It is available on
// every backend.
//
// On failure the value v held at the time of the comparison is written into
// expected, so a retry loop can recompute from expected without reloading.
// On success expected is left untouched.
func (v *Value) CompareAndSet(expected, candidate *Value) bool {
	prev, ok := v.be().CompareAndSet(v.words(), expected.in(v.order), candidate.in(v.order))
	if !ok {
		expected.put(v.order, prev)
	}
	return ok
}

// WeakCompareAndSetRelease makes a single attempt to set v to candidate if v
// equals expected. It may report false even when they are equal; callers
// must treat that like a mismatch and retry. Release ordering on success, no
// ordering beyond atomicity on failure. expected is never modified; reload
// with an ordered Get before retrying.
func (v *Value) WeakCompareAndSetRelease(expected, candidate *Value) (bool, error) {
	return v.be().WeakCompareAndSetRelease(v.words(), expected.in(v.order), candidate.in(v.order))
}
