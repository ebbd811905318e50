package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"

	"github.com/fusedbloxxer/huffman-compression/hashtable"
	"github.com/fusedbloxxer/huffman-compression/node"
)

// CodeTable maps each symbol of a Huffman tree to its Code.
type CodeTable struct {
	table   *hashtable.Table[*Code]
	maxBits int
}

// NewCodeTable walks the tree rooted at root and records the code of every
// leaf in a table with the given number of buckets.  A left step appends a 0
// bit and a right step appends a 1 bit.
func NewCodeTable(root *Node, buckets int) (*CodeTable, error) {
	if root == nil {
		return nil, ErrInvalidTree
	}
	if root.IsLeaf() {
		return nil, ErrSingleSymbol
	}

	table, err := hashtable.New[*Code](buckets)
	if err != nil {
		return nil, err
	}
	ct := &CodeTable{table: table, maxBits: root.Span}
	if err := ct.collect(root, emptyCode(root.Span)); err != nil {
		table.Destroy()
		return nil, err
	}
	return ct, nil
}

func (ct *CodeTable) collect(n *Node, path Code) error {
	if n.IsLeaf() {
		assert.Assertf(path.Len() <= ct.maxBits, "code of %d bits exceeds bound %d", path.Len(), ct.maxBits)

		entry, created, err := ct.table.Insert(n.Sequence)
		if err != nil {
			return err
		}
		assert.Assertf(created, "symbol %q appears twice in the tree", n.Sequence)

		entry.Value = &Code{
			Key:     entry.Sequence,
			Packed:  path.Packed,
			LastBit: path.LastBit,
		}
		return nil
	}

	if n.Left != nil {
		if err := ct.collect(n.Left, path.extend(false)); err != nil {
			return err
		}
	}
	if n.Right != nil {
		if err := ct.collect(n.Right, path.extend(true)); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the code for symbol.
func (ct *CodeTable) Lookup(symbol []byte) (*Code, bool) {
	if ct == nil {
		return nil, false
	}
	n := ct.table.Find(symbol)
	if n == nil {
		return nil, false
	}
	return n.Value, true
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	if ct == nil {
		return 0
	}
	return ct.table.Len()
}

// Codes returns every code, sorted by symbol.
func (ct *CodeTable) Codes() []*Code {
	if ct == nil {
		return nil
	}
	out := make([]*Code, 0, ct.table.Len())
	ct.table.Walk(func(_ int, n *node.Node[*Code]) bool {
		out = append(out, n.Value)
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return node.Compare(out[i].Key, out[j].Key) < 0
	})
	return out
}

// Dump writes a programmer-readable listing of the table to the given
// writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, hc := range ct.Codes() {
		fmt.Fprintf(&buf, "\t%q = %s\n", hc.Key, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Destroy releases the table.
func (ct *CodeTable) Destroy() {
	if ct == nil {
		return
	}
	ct.table.Destroy()
}
