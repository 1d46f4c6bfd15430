// Package atomic128 provides a 128-bit integer with atomic load, store and
// compare-and-set on 64-bit hosts.
//
// A Value is two 64-bit words held in one 16-byte aligned cell. Its WordOrder,
// fixed at construction, says which physical word is the most significant.
// Every ordered operation treats the cell as one indivisible unit: no caller
// ever observes one word from before an update and the other from after it.
//
// Ordered operations are delegated to a Backend resolved once per process
// (or injected with WithBackend). Which operations exist depends on the
// backend:
//
//	operation                   fenced-exchange   full-ordering
//	GetOpaque/Acquire/Volatile  ErrUnsupported    yes
//	SetOpaque/Release/Volatile  ErrUnsupported    yes
//	CompareAndSet               yes               yes
//	WeakCompareAndSetRelease    ErrUnsupported    yes
//
// Nothing in this package retries. Read-modify-write is a caller loop:
//
//	cur := atomic128.New()
//	next := atomic128.New()
//	v.GetAcquire(cur)
//	for {
//		next.CopyFrom(cur)
//		next.Add(1)
//		if v.CompareAndSet(cur, next) {
//			break
//		}
//		// cur now holds the value that beat us.
//	}
//
// High, Low, Set, Add and CopyFrom are plain, non-atomic accesses meant for
// values the caller owns exclusively, such as the cur and next above.
package atomic128
