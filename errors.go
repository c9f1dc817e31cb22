package hufftree

import (
	"errors"
)

// All failures in this package stem from invalid input, not transient
// conditions; retrying the same call with the same arguments cannot
// succeed.  Returned errors wrap one of these sentinels, so callers can
// classify them with errors.Is.
var (
	// ErrInsufficientAlphabet is returned by New when the frequency
	// table has fewer than two entries: a single symbol has no
	// discriminating path in a binary tree.
	ErrInsufficientAlphabet = errors.New("alphabet has fewer than two distinct symbols")

	// ErrDuplicateSymbol is returned by New when the same symbol
	// appears in more than one frequency table entry.
	ErrDuplicateSymbol = errors.New("duplicate symbol in frequency table")

	// ErrInvalidCount is returned by New when an entry's count is zero
	// or negative.
	ErrInvalidCount = errors.New("symbol count is not positive")

	// ErrUnknownSymbol is returned by Encode when the text contains a
	// symbol with no entry in the code table.
	ErrUnknownSymbol = errors.New("symbol has no code")

	// ErrTruncatedCode is returned by Decode when the bit sequence ends
	// in the middle of a code, i.e. at an internal node.
	ErrTruncatedCode = errors.New("bit sequence ends in the middle of a code")

	// ErrEmptyTree is returned by Decode when the tree was never
	// successfully built.
	ErrEmptyTree = errors.New("tree was never built")
)
