package hufftree

import (
	"fmt"
	"strconv"
)

// Bit is a single binary digit.
type Bit byte

// Valid Bit values.
const (
	Zero Bit = 0
	One  Bit = 1
)

// Code represents a sequence of bits.  The bit at index 0 is the first
// bit of the sequence.  Bits are kept as individual values rather than
// packed into machine words, so a Code's length is bounded only by the
// depth of the tree that produced it.
//
// Codes are treated as immutable once derived; operations that extend a
// Code return a fresh one.
type Code []Bit

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(s string) (Code, error) {
	code := make(Code, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			code[i] = Zero
		case '1':
			code[i] = One
		default:
			return nil, fmt.Errorf("invalid bit %q at offset %d", s[i], i)
		}
	}
	return code, nil
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if len(p) > len(c) {
		return false
	}
	for i, bit := range p {
		if c[i] != bit {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (c Code) String() string {
	if len(c) == 0 {
		return "\"\""
	}
	buf := make([]byte, len(c))
	for i, bit := range c {
		buf[i] = '0' + byte(bit)
	}
	return strconv.Quote(string(buf))
}

var _ fmt.Stringer = Code(nil)

// appendBit returns a copy of c with bit appended.  The copy keeps
// sibling codes independent while the derivation walk branches.
func (c Code) appendBit(bit Bit) Code {
	out := make(Code, len(c)+1)
	copy(out, c)
	out[len(c)] = bit
	return out
}
