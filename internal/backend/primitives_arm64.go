//go:build arm64 && !noasm

// Go declarations for primitives_arm64.s.
//
// Every sequence is built from exclusive pairs. A pair load is only
// single-copy atomic once the matching store-exclusive succeeds, so loads
// write the observed value back and retry on a lost reservation. Ordering
// comes from the acquire (LDAXP) and release (STLXP) forms; the sequential
// forms use both. The compare-and-set loops retry only when the reservation
// is lost, never on a value mismatch.

package backend

import "github.com/srediag/atomic128/internal/platform"

//go:noescape
func loadRelaxed(addr *[2]uint64) (v [2]uint64)

//go:noescape
func loadAcquire(addr *[2]uint64) (v [2]uint64)

//go:noescape
func loadSeqCst(addr *[2]uint64) (v [2]uint64)

//go:noescape
func storeRelaxed(addr *[2]uint64, v [2]uint64)

//go:noescape
func storeRelease(addr *[2]uint64, v [2]uint64)

//go:noescape
func storeSeqCst(addr *[2]uint64, v [2]uint64)

// casSeqCst is a strong compare-and-set with LDAXP/STLXP on both arms.
//
//go:noescape
func casSeqCst(addr *[2]uint64, old, new [2]uint64) (prev [2]uint64, swapped bool)

// casWeakRelease is one LDXP/STLXP attempt. It reports false on a mismatch
// and on a lost reservation alike.
//
//go:noescape
func casWeakRelease(addr *[2]uint64, old, new [2]uint64) (swapped bool)

func fencedPrimitives(platform.Features) (primitives, bool) {
	return primitives{cas: casSeqCst}, true
}

func fullPrimitives(platform.Features) (primitives, bool) {
	return primitives{
		loadOpaque:    loadRelaxed,
		loadAcquire:   loadAcquire,
		loadVolatile:  loadSeqCst,
		storeOpaque:   storeRelaxed,
		storeRelease:  storeRelease,
		storeVolatile: storeSeqCst,
		cas:           casSeqCst,
		weakRelease:   casWeakRelease,
	}, true
}
