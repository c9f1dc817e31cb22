package hufftree

import (
	"fmt"
)

// CodeTable maps each symbol of the alphabet to its prefix-free code.
// Tables are derived from a built Tree and hold no reference to it; no
// code in a table is a prefix of another, which the tree structure
// guarantees.
type CodeTable[S comparable] map[S]Code

// Encode encodes text into a single bit sequence by concatenating each
// symbol's code, in text order.  The table must cover every symbol
// present in the text: build it from a frequency table over the same
// text, or over a superset alphabet.
//
// Fails wrapping ErrUnknownSymbol on the first symbol missing from the
// table; no partial output is returned.
func (ct CodeTable[S]) Encode(text []S) (Code, error) {
	size := 0
	for _, sym := range text {
		code, found := ct[sym]
		if !found {
			return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, sym)
		}
		size += len(code)
	}

	out := make(Code, 0, size)
	for _, sym := range text {
		out = append(out, ct[sym]...)
	}
	return out, nil
}
