package atomic128

import (
	"cmp"
	"fmt"
)

// Compare orders values as unsigned 128-bit integers: the most significant
// words decide, the least significant words break ties. Word order and raw
// memory layout play no part. Not atomic.
func (v *Value) Compare(o *Value) int {
	if c := cmp.Compare(v.High(), o.High()); c != 0 {
		return c
	}
	return cmp.Compare(v.Low(), o.Low())
}

// Equal reports whether v and o hold the same number. Not atomic.
func (v *Value) Equal(o *Value) bool {
	return v.High() == o.High() && v.Low() == o.Low()
}

// String formats v as 0x followed by 32 hex digits.
func (v *Value) String() string {
	return fmt.Sprintf("0x%016x%016x", v.High(), v.Low())
}
