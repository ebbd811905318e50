package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when the input buffer is nil or empty.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrInvalidSpecifier is returned for a window width below 1 or larger
	// than the input.
	ErrInvalidSpecifier = errors.New("huffman: invalid specifier")

	// ErrInvalidMode is returned for an ownership mode other than Weak or
	// Deep.
	ErrInvalidMode = errors.New("huffman: invalid ownership mode")

	// ErrSingleSymbol is returned when the input has only one distinct
	// symbol, so no code can be assigned.
	ErrSingleSymbol = errors.New("huffman: only one distinct symbol")

	// ErrInvalidTree is returned when decoding with a nil or single-leaf
	// tree.
	ErrInvalidTree = errors.New("huffman: invalid tree")

	// ErrMissingCode is returned when a symbol has no entry in the code
	// table.
	ErrMissingCode = errors.New("huffman: missing code")

	// ErrTruncated is returned when a bitstream ends in the middle of a
	// code.
	ErrTruncated = errors.New("huffman: truncated bitstream")

	// ErrTooLarge is returned by Marshal for inputs whose length does not
	// fit the frame header.
	ErrTooLarge = errors.New("huffman: input too large")

	// ErrCorrupt is returned by Unmarshal for malformed frames.
	ErrCorrupt = errors.New("huffman: corrupt frame")
)
