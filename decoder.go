package huffman

import (
	"fmt"
)

// Decode walks tree once per symbol, consuming one bit of encoded per step
// (least significant bit of each byte first): a 0 bit goes left, a 1 bit
// goes right.  Each leaf reached appends its symbol to the output.
//
// Exactly bits bits are consumed.  Running out of bits in the middle of a
// code is reported as ErrTruncated.
//
func Decode(encoded []byte, bits uint64, tree *Node) ([]byte, error) {
	if tree == nil || tree.IsLeaf() {
		return nil, ErrInvalidTree
	}
	if bits > uint64(len(encoded))*8 {
		return nil, fmt.Errorf("%w: %d bits requested from %d bytes", ErrTruncated, bits, len(encoded))
	}

	out := make([]byte, 0, len(encoded))
	var pos uint64
	for pos < bits {
		n := tree
		for !n.IsLeaf() {
			if pos == bits {
				return nil, fmt.Errorf("%w: stream ends inside a code after %d symbols", ErrTruncated, len(out))
			}
			if encoded[pos/8]&(1<<(pos%8)) == 0 {
				n = n.Left
			} else {
				n = n.Right
			}
			pos++
		}
		out = append(out, n.Sequence...)
	}
	return out, nil
}
