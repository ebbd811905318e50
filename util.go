package huffman

import (
	mathbits "math/bits"
)

// bitIndex returns the position of the single set bit of mask.
func bitIndex(mask byte) int {
	return mathbits.TrailingZeros8(mask)
}

// bitWriter appends bits to a byte buffer, least significant bit first.
// The buffer doubles whenever a write might not fit.
type bitWriter struct {
	buf  []byte
	bits uint64
}

func newBitWriter() *bitWriter {
	return &bitWriter{buf: make([]byte, 2)}
}

// writeCode appends every bit of hc.
func (w *bitWriter) writeCode(hc *Code) {
	need := int(w.bits/8) + len(hc.Packed)
	for need >= len(w.buf) {
		grown := make([]byte, 2*len(w.buf))
		copy(grown, w.buf)
		w.buf = grown
	}

	n := hc.Len()
	for i := 0; i < n; i++ {
		if hc.Bit(i) {
			w.buf[w.bits/8] |= 1 << (w.bits % 8)
		}
		w.bits++
	}
}

// bytes returns the buffer trimmed to the bytes that hold written bits.
func (w *bitWriter) bytes() []byte {
	return w.buf[:(w.bits+7)/8:(w.bits+7)/8]
}
