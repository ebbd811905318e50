// Package entropy computes Shannon entropy over frequency tables and
// Huffman trees.
package entropy

import (
	"math"

	huffman "github.com/fusedbloxxer/huffman-compression"
)

// Term returns -p*log2(p) for p = count/total, or 0 when either is zero.
func Term(count, total uint64) float64 {
	if count == 0 || total == 0 {
		return 0
	}
	p := float64(count) / float64(total)
	return -p * math.Log2(p)
}

// Table returns the entropy, in bits per symbol, of the counts in table
// relative to total.
func Table(table *huffman.FrequencyTable, total uint64) float64 {
	var h float64
	table.Walk(func(_ int, n *huffman.Node) bool {
		h += Term(n.Count, total)
		return true
	})
	return h
}

// Sequences returns the entropy of the overlapping windows of specifier
// bytes in data.
func Sequences(data []byte, specifier int, buckets int) (float64, error) {
	table, err := huffman.NewFrequencyTable(data, specifier, buckets, huffman.ParseSequences)
	if err != nil {
		return 0, err
	}
	defer table.Destroy()
	return Table(table, uint64(len(data)-specifier+1)), nil
}

// Words returns the entropy of the whitespace-delimited words of data.
func Words(data []byte, buckets int) (float64, error) {
	table, err := huffman.NewFrequencyTable(data, 1, buckets, huffman.ParseWords)
	if err != nil {
		return 0, err
	}
	defer table.Destroy()

	var total uint64
	table.Walk(func(_ int, n *huffman.Node) bool {
		total += n.Count
		return true
	})
	return Table(table, total), nil
}

// Tree returns the entropy of the leaf weights of a Huffman tree, relative
// to the root's weight.
func Tree(root *huffman.Node) float64 {
	if root == nil {
		return 0
	}
	var h float64
	huffman.Leaves(root, func(leaf *huffman.Node, _ int) {
		h += Term(leaf.Count, root.Count)
	})
	return h
}

// AverageCodeLength returns the expected number of code bits per symbol for
// the tree rooted at root.
func AverageCodeLength(root *huffman.Node) float64 {
	if root == nil || root.Count == 0 {
		return 0
	}
	var bits uint64
	huffman.Leaves(root, func(leaf *huffman.Node, depth int) {
		bits += leaf.Count * uint64(depth)
	})
	return float64(bits) / float64(root.Count)
}
