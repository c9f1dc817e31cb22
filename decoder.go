package hufftree

import (
	"fmt"
)

// Decode decodes bits back into the text it encodes by walking the tree
// from the root: 0 selects the left child, 1 the right child; reaching
// a leaf emits its symbol and resets the walk to the root.  An empty
// bit sequence decodes to empty text.
//
// Fails with ErrEmptyTree if the tree was never built, and wrapping
// ErrTruncatedCode if the bits run out at an internal node.
func (t *Tree[S]) Decode(bits Code) ([]S, error) {
	if t == nil || t.root == nil {
		return nil, ErrEmptyTree
	}

	out := make([]S, 0, len(bits)/t.minDepth)
	cur := t.root
	for _, bit := range bits {
		branch := cur.(*internal[S])
		if bit == Zero {
			cur = branch.left
		} else {
			cur = branch.right
		}
		if l, ok := cur.(*leaf[S]); ok {
			out = append(out, l.symbol)
			cur = t.root
		}
	}
	if cur != t.root {
		return nil, fmt.Errorf("%w after %d symbols", ErrTruncatedCode, len(out))
	}
	return out, nil
}
