// Package huffman implements Huffman coding over byte-sequence symbols.
//
// The codec is built in phases.  A frequency table (a hashtable.Table whose
// buckets are AVL trees) counts every symbol; its nodes are moved into a
// minheap.Heap and merged two at a time into a single tree; the tree is
// walked to produce a code table; and the code table packs the input into
// a bitstream, least significant bit first.
//
// The raw bitstream produced by Encode carries no header: it can only be
// decoded with the same tree.  Marshal and Unmarshal wrap it in a small
// frame that records the symbol counts, so the tree can be rebuilt.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/AVL_tree>
//
package huffman
