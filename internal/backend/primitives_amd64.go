//go:build amd64 && !noasm

// Go declarations for primitives_amd64.s.
//
// The fenced-exchange variant is LOCK CMPXCHG16B alone. The full-ordering
// variant adds aligned VMOVDQA loads and stores, which Intel and AMD
// guarantee to be single-copy atomic on every processor that enumerates AVX.
// Under x86-TSO a plain load is already acquire and a plain store is already
// release; the sequential store is followed by MFENCE so that sequential
// loads need no fence.

package backend

import "github.com/srediag/atomic128/internal/platform"

// cmpxchg16b performs LOCK CMPXCHG16B on addr. prev is the value the
// instruction observed.
//
//go:noescape
func cmpxchg16b(addr *[2]uint64, old, new [2]uint64) (prev [2]uint64, swapped bool)

// load128 is an aligned VMOVDQA load.
//
//go:noescape
func load128(addr *[2]uint64) (v [2]uint64)

// store128 is an aligned VMOVDQA store.
//
//go:noescape
func store128(addr *[2]uint64, v [2]uint64)

// store128Fence is store128 followed by MFENCE.
//
//go:noescape
func store128Fence(addr *[2]uint64, v [2]uint64)

// CMPXCHG16B never fails spuriously, so the weak form is the strong one
// with the observed value dropped.
func weakCmpxchg16b(addr *[2]uint64, old, new [2]uint64) bool {
	_, ok := cmpxchg16b(addr, old, new)
	return ok
}

func fencedPrimitives(f platform.Features) (primitives, bool) {
	if !f.CX16 {
		return primitives{}, false
	}
	return primitives{cas: cmpxchg16b}, true
}

func fullPrimitives(f platform.Features) (primitives, bool) {
	if !f.CX16 || !f.AVX {
		return primitives{}, false
	}
	return primitives{
		loadOpaque:    load128,
		loadAcquire:   load128,
		loadVolatile:  load128,
		storeOpaque:   store128,
		storeRelease:  store128,
		storeVolatile: store128Fence,
		cas:           cmpxchg16b,
		weakRelease:   weakCmpxchg16b,
	}, true
}
