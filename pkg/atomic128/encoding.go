package atomic128

import (
	"encoding/binary"
	"fmt"

	"github.com/sugawarayuuta/sonnet"
)

const binarySize = 16

type jsonValue struct {
	High uint64 `json:"high"`
	Low  uint64 `json:"low"`
}

// MarshalJSON encodes v as {"high":H,"low":L}. Not atomic.
func (v *Value) MarshalJSON() ([]byte, error) {
	return sonnet.Marshal(jsonValue{High: v.High(), Low: v.Low()})
}

// UnmarshalJSON decodes {"high":H,"low":L} into v. Not atomic.
func (v *Value) UnmarshalJSON(data []byte) error {
	var j jsonValue
	if err := sonnet.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("atomic128: decode json: %w", err)
	}
	v.Set(j.High, j.Low)
	return nil
}

// AppendBinary appends 16 big-endian bytes, most significant word first.
func (v *Value) AppendBinary(b []byte) ([]byte, error) {
	b = binary.BigEndian.AppendUint64(b, v.High())
	return binary.BigEndian.AppendUint64(b, v.Low()), nil
}

// MarshalBinary encodes v as 16 big-endian bytes. Not atomic.
func (v *Value) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, binarySize))
}

// UnmarshalBinary decodes the MarshalBinary form into v. Not atomic.
func (v *Value) UnmarshalBinary(data []byte) error {
	if len(data) != binarySize {
		return fmt.Errorf("atomic128: decode binary: want %d bytes, got %d", binarySize, len(data))
	}
	v.Set(binary.BigEndian.Uint64(data), binary.BigEndian.Uint64(data[8:]))
	return nil
}
