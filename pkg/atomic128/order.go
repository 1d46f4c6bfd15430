package atomic128

import "golang.org/x/sys/cpu"

// WordOrder maps the two physical words of a Value to their roles.
type WordOrder uint8

const (
	// LowFirst puts the least significant word at the lower address, the
	// natural layout of a 128-bit integer on little-endian hosts.
	LowFirst WordOrder = iota
	// HighFirst puts the most significant word at the lower address.
	HighFirst
)

// NativeWordOrder is the order matching the host byte order.
func NativeWordOrder() WordOrder {
	if cpu.IsBigEndian {
		return HighFirst
	}
	return LowFirst
}

// Reversed returns the other order.
func (o WordOrder) Reversed() WordOrder { return o ^ 1 }

// lsw and msw are the physical indices of each role. For LowFirst (0) the
// least significant word is index 0, for HighFirst (1) it is index 1.
func (o WordOrder) lsw() uint8 { return uint8(o) }
func (o WordOrder) msw() uint8 { return uint8(o) ^ 1 }

func (o WordOrder) String() string {
	if o == HighFirst {
		return "high-first"
	}
	return "low-first"
}
