// Package hufftree builds prefix-free binary codes for arbitrary
// alphabets using Huffman's algorithm, and encodes and decodes symbol
// sequences with them.
//
// A Tree is built once from a frequency table and is immutable
// afterward; it may be shared freely across concurrent Encode and
// Decode calls without synchronization.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package hufftree
