package huffman

import (
	"fmt"

	"github.com/fusedbloxxer/huffman-compression/hashtable"
	"github.com/fusedbloxxer/huffman-compression/node"
)

// Node is a cell of a frequency table or of a Huffman tree.
type Node = node.Node[struct{}]

// FrequencyTable maps each symbol to its number of occurrences.
type FrequencyTable = hashtable.Table[struct{}]

// DefaultBuckets is the bucket count used when none is configured.
const DefaultBuckets = 128

// Parser splits data into symbols and inserts each one into table.
type Parser func(table *FrequencyTable, data []byte, specifier int) error

// ParseSequences inserts every window of specifier consecutive bytes,
// advancing one byte at a time, so windows overlap.  There are
// len(data) - specifier + 1 windows.
func ParseSequences(table *FrequencyTable, data []byte, specifier int) error {
	if specifier < 1 || specifier > len(data) {
		return fmt.Errorf("%w: %d for %d bytes", ErrInvalidSpecifier, specifier, len(data))
	}
	for i := 0; i+specifier <= len(data); i++ {
		if _, _, err := table.Insert(data[i : i+specifier]); err != nil {
			return err
		}
	}
	return nil
}

// ParseWords inserts every run of bytes delimited by ASCII whitespace.  The
// specifier is ignored.
func ParseWords(table *FrequencyTable, data []byte, specifier int) error {
	for i := 0; i < len(data); {
		if isSpace(data[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(data) && !isSpace(data[j]) {
			j++
		}
		if _, _, err := table.Insert(data[i:j]); err != nil {
			return err
		}
		i = j
	}
	return nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// NewFrequencyTable counts the symbols that parse finds in data, using a
// table with the given number of buckets.
func NewFrequencyTable(data []byte, specifier int, buckets int, parse Parser) (*FrequencyTable, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if parse == nil {
		parse = ParseSequences
	}
	table, err := hashtable.New[struct{}](buckets)
	if err != nil {
		return nil, err
	}
	if err := parse(table, data, specifier); err != nil {
		table.Destroy()
		return nil, err
	}
	if table.Len() == 0 {
		table.Destroy()
		return nil, ErrEmptyInput
	}
	return table, nil
}
