package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/icza/bitio"

	"github.com/fusedbloxxer/huffman-compression/hashtable"
	"github.com/fusedbloxxer/huffman-compression/node"
)

// A frame is laid out as follows, most significant bit first:
//
//     "HUF"                 3 bytes
//     original length       32 bits
//     distinct symbols k    9 bits  (1 .. 256)
//     k × (symbol, count)   8 + 32 bits, symbols strictly ascending
//     payload bit count     64 bits
//     (padding to a byte boundary)
//     payload               the packed bitstream produced by Encode
//
// Both ends build the tree from a frequency table filled in ascending symbol
// order, so the tree the decoder rebuilds matches the encoder's bit for bit.

var frameMagic = [3]byte{'H', 'U', 'F'}

type symbolCount struct {
	symbol byte
	count  uint64
}

// Marshal encodes data into a self-describing frame that Unmarshal can
// decode without any other state.
func Marshal(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	counts, err := countBytes(data)
	if err != nil {
		return nil, err
	}

	var payload []byte
	var bits uint64
	if len(counts) > 1 {
		root, err := canonicalTree(counts)
		if err != nil {
			return nil, err
		}
		enc, err := encodeWithTree(data, root, DefaultBuckets)
		if err != nil {
			return nil, err
		}
		payload, bits = enc.Bytes, enc.Bits
		enc.Destroy()
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	w.TryWrite(frameMagic[:])
	w.TryWriteBits(uint64(len(data)), 32)
	w.TryWriteBits(uint64(len(counts)), 9)
	for _, sc := range counts {
		w.TryWriteByte(sc.symbol)
		w.TryWriteBits(sc.count, 32)
	}
	w.TryWriteBits(bits, 64)
	w.TryAlign()
	w.TryWrite(payload)
	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a frame produced by Marshal.
func Unmarshal(frame []byte) ([]byte, error) {
	r := bitio.NewReader(bytes.NewReader(frame))

	var magic [3]byte
	r.TryRead(magic[:])
	length := r.TryReadBits(32)
	k := int(r.TryReadBits(9))
	if r.TryError != nil {
		return nil, fmt.Errorf("%w: short header: %v", ErrCorrupt, r.TryError)
	}
	if magic != frameMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, magic[:])
	}
	if k < 1 || k > 256 {
		return nil, fmt.Errorf("%w: %d distinct symbols", ErrCorrupt, k)
	}

	counts := make([]symbolCount, k)
	var total uint64
	for i := range counts {
		counts[i].symbol = r.TryReadByte()
		counts[i].count = r.TryReadBits(32)
		if r.TryError != nil {
			return nil, fmt.Errorf("%w: short symbol table: %v", ErrCorrupt, r.TryError)
		}
		if counts[i].count == 0 {
			return nil, fmt.Errorf("%w: zero count for symbol 0x%02x", ErrCorrupt, counts[i].symbol)
		}
		if i > 0 && counts[i].symbol <= counts[i-1].symbol {
			return nil, fmt.Errorf("%w: symbols out of order", ErrCorrupt)
		}
		total += counts[i].count
	}
	if total != length {
		return nil, fmt.Errorf("%w: counts sum to %d, length is %d", ErrCorrupt, total, length)
	}

	bits := r.TryReadBits(64)
	if r.TryError != nil {
		return nil, fmt.Errorf("%w: short header: %v", ErrCorrupt, r.TryError)
	}
	r.Align()
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if k == 1 {
		if bits != 0 {
			return nil, fmt.Errorf("%w: payload for a single symbol", ErrCorrupt)
		}
		return bytes.Repeat([]byte{counts[0].symbol}, int(length)), nil
	}

	root, err := canonicalTree(counts)
	if err != nil {
		return nil, err
	}
	defer node.Destroy(root)

	out, err := Decode(payload, bits, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if uint64(len(out)) != length {
		return nil, fmt.Errorf("%w: decoded %d bytes, expected %d", ErrCorrupt, len(out), length)
	}
	return out, nil
}

// countBytes returns the occurrences of every byte value in data, in
// ascending byte order.
func countBytes(data []byte) ([]symbolCount, error) {
	table, err := NewFrequencyTable(data, 1, DefaultBuckets, ParseSequences)
	if err != nil {
		return nil, err
	}
	defer table.Destroy()

	var byValue [256]uint64
	table.Walk(func(_ int, n *Node) bool {
		byValue[n.Sequence[0]] = n.Count
		return true
	})

	counts := make([]symbolCount, 0, table.Len())
	for symbol, count := range byValue {
		if count != 0 {
			counts = append(counts, symbolCount{byte(symbol), count})
		}
	}
	return counts, nil
}

// canonicalTree builds the tree for counts from a table filled in the order
// given.
func canonicalTree(counts []symbolCount) (*Node, error) {
	table, err := hashtable.New[struct{}](DefaultBuckets)
	if err != nil {
		return nil, err
	}
	for _, sc := range counts {
		n, _, err := table.Insert([]byte{sc.symbol})
		if err != nil {
			table.Destroy()
			return nil, err
		}
		n.Count = sc.count
	}
	return TreeFromTable(table, Weak)
}
