// Package api defines the memory-ordering contracts every atomic128 backend
// must uphold.
//
// The catalog is pure data: it names the ordering levels, the eight backend
// entry points, and the ordering each entry point carries on its success and
// failure arms. Backends and the value type consult it; nothing here holds
// state.
package api

// Ordering is a memory-ordering level, from weakest to strongest.
type Ordering int

const (
	// None marks an arm that does not exist (loads and stores have no
	// failure arm).
	None Ordering = iota
	// Opaque accesses are whole-width and never torn, but may be reordered
	// freely with respect to other memory operations.
	Opaque
	// Acquire loads keep every later memory operation after them and
	// synchronize with the release store whose value they observe.
	Acquire
	// Release stores keep every earlier memory operation before them.
	Release
	// Volatile is sequential consistency: acquire and release together, and
	// one total order over all volatile operations observed by every thread.
	Volatile
)

var orderingNames = [...]string{
	None:     "none",
	Opaque:   "opaque",
	Acquire:  "acquire",
	Release:  "release",
	Volatile: "volatile",
}

func (o Ordering) String() string {
	if o < 0 || int(o) >= len(orderingNames) {
		return "invalid"
	}
	return orderingNames[o]
}

// Op identifies one backend entry point.
type Op int

const (
	GetOpaque Op = iota
	GetAcquire
	GetVolatile
	SetOpaque
	SetRelease
	SetVolatile
	CompareAndSet
	WeakCompareAndSetRelease

	opCount
)

type opInfo struct {
	name             string
	success, failure Ordering
}

var ops = [opCount]opInfo{
	GetOpaque:                {"getOpaque", Opaque, None},
	GetAcquire:               {"getAcquire", Acquire, None},
	GetVolatile:              {"getVolatile", Volatile, None},
	SetOpaque:                {"setOpaque", Opaque, None},
	SetRelease:               {"setRelease", Release, None},
	SetVolatile:              {"setVolatile", Volatile, None},
	CompareAndSet:            {"compareAndSet", Volatile, Volatile},
	WeakCompareAndSetRelease: {"weakCompareAndSetRelease", Release, Opaque},
}

// Ops returns every entry point in declaration order.
func Ops() []Op {
	all := make([]Op, opCount)
	for i := range all {
		all[i] = Op(i)
	}
	return all
}

func (op Op) valid() bool { return op >= 0 && op < opCount }

func (op Op) String() string {
	if !op.valid() {
		return "invalid"
	}
	return ops[op].name
}

// Orderings returns the ordering applied when op succeeds and when it fails.
// Plain loads and stores always "succeed"; their failure arm is None.
func (op Op) Orderings() (success, failure Ordering) {
	if !op.valid() {
		return None, None
	}
	return ops[op].success, ops[op].failure
}

// IsLoad reports whether op reads the cell without writing it.
func (op Op) IsLoad() bool { return op >= GetOpaque && op <= GetVolatile }

// IsStore reports whether op unconditionally writes the cell.
func (op Op) IsStore() bool { return op >= SetOpaque && op <= SetVolatile }

// IsCAS reports whether op is a compare-and-set.
func (op Op) IsCAS() bool { return op == CompareAndSet || op == WeakCompareAndSetRelease }
