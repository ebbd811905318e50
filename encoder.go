package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fusedbloxxer/huffman-compression/node"
)

// Encoding is the result of Encode.
type Encoding struct {
	// Bytes holds the packed bitstream, trimmed to the bytes that hold
	// code bits.
	Bytes []byte

	// Bits is the exact number of significant bits in Bytes.
	Bits uint64

	// Tree is the Huffman tree the codes were read from.  It is needed to
	// decode Bytes.
	Tree *Node

	// Table maps each input byte to its code.
	Table *CodeTable
}

// Encode builds a Huffman code for the bytes of data and packs data with it.
// Every byte is one symbol.
//
// On failure, everything built so far is released before returning.
//
func Encode(data []byte, opts ...Option) (*Encoding, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	o := makeOptions(opts)

	root, err := BuildTree(data, 1, ParseSequences, opts...)
	if err != nil {
		return nil, err
	}
	return encodeWithTree(data, root, o.buckets)
}

func encodeWithTree(data []byte, root *Node, buckets int) (*Encoding, error) {
	table, err := NewCodeTable(root, buckets)
	if err != nil {
		node.Destroy(root)
		return nil, err
	}

	packed, bits, err := pack(data, table)
	if err != nil {
		table.Destroy()
		node.Destroy(root)
		return nil, err
	}

	return &Encoding{
		Bytes: packed,
		Bits:  bits,
		Tree:  root,
		Table: table,
	}, nil
}

func pack(data []byte, table *CodeTable) ([]byte, uint64, error) {
	w := newBitWriter()
	for i := range data {
		hc, found := table.Lookup(data[i : i+1])
		if !found {
			return nil, 0, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrMissingCode, data[i], i)
		}
		w.writeCode(hc)
	}
	return w.bytes(), w.bits, nil
}

// Decode unpacks e.Bytes with e.Tree.
func (e *Encoding) Decode() ([]byte, error) {
	return Decode(e.Bytes, e.Bits, e.Tree)
}

// Destroy releases the tree and the code table.
func (e *Encoding) Destroy() {
	e.Table.Destroy()
	node.Destroy(e.Tree)
	e.Table = nil
	e.Tree = nil
}

// Dump writes a programmer-readable debugging dump of the encoding to the
// given writer.
func (e *Encoding) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoding{\n")
	fmt.Fprintf(&buf, "\tBits = %d\n", e.Bits)
	fmt.Fprintf(&buf, "\tBytes = %d\n", len(e.Bytes))
	fmt.Fprintf(&buf, "\tWeight = %d\n", e.Tree.Count)
	for _, hc := range e.Table.Codes() {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", hc.Key, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
