package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code pairs a symbol with its sequence of bits.
type Code struct {
	// Key holds a copy of the symbol.
	Key []byte

	// Packed holds the bits, least significant bit of Packed[0] first.
	// It is never empty.
	Packed []byte

	// LastBit marks the end of the code: only the bits of the final byte
	// of Packed strictly below LastBit are part of it.
	LastBit byte
}

// emptyCode returns the code of the root, with room for sizeHint bits.
func emptyCode(sizeHint int) Code {
	packed := make([]byte, 1, sizeHint/8+1)
	return Code{Packed: packed, LastBit: 1}
}

// Len returns the number of bits in the code.
func (hc Code) Len() int {
	if len(hc.Packed) == 0 {
		return 0
	}
	return (len(hc.Packed)-1)*8 + bitIndex(hc.LastBit)
}

// Bit returns bit i of the code, counting from the root.
func (hc Code) Bit(i int) bool {
	return hc.Packed[i/8]&(1<<(i%8)) != 0
}

// extend returns a new code one bit longer than hc.  hc is not modified.
func (hc Code) extend(bit bool) Code {
	packed := make([]byte, len(hc.Packed), max(cap(hc.Packed), len(hc.Packed)+1))
	copy(packed, hc.Packed)

	last := len(packed) - 1
	if bit {
		packed[last] |= hc.LastBit
	} else {
		packed[last] &^= hc.LastBit
	}

	next := hc.LastBit << 1
	if hc.LastBit == 0x80 {
		packed = append(packed, 0)
		next = 1
	}
	return Code{Packed: packed, LastBit: next}
}

// HasPrefix reports whether the bits of prefix are the leading bits of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	n := prefix.Len()
	if n > hc.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the bits of the code in path order, quoted.
func (hc Code) String() string {
	var buf strings.Builder
	n := hc.Len()
	for i := 0; i < n; i++ {
		if hc.Bit(i) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}
