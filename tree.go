package hufftree

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"maps"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman coding tree over an alphabet of symbols of type S.
// A Tree is immutable once New returns and may be shared freely across
// concurrent Encode and Decode calls.
type Tree[S comparable] struct {
	root     node[S]
	table    CodeTable[S]
	minDepth int
	maxDepth int
}

// New builds a Huffman tree from a frequency table and derives its code
// table.  Each entry must name a distinct symbol with a positive count;
// the table must have at least two entries.
//
// The classic greedy merge is used: one leaf per entry goes into a
// min-priority-queue on weight, then the two minimum nodes are popped
// and rejoined under a fresh internal node until one node remains.
// Ties between equal weights are broken by node creation order, oldest
// first, which makes the tree shape a deterministic function of entry
// order.  O(n log n) for n entries.
//
// Fails wrapping ErrInsufficientAlphabet, ErrDuplicateSymbol or
// ErrInvalidCount.
func New[S comparable](freqs []FrequencyEntry[S]) (*Tree[S], error) {
	if len(freqs) < 2 {
		return nil, fmt.Errorf("%w: got %d entries", ErrInsufficientAlphabet, len(freqs))
	}

	seen := make(map[S]struct{}, len(freqs))
	h := nodeHeap[S]{list: make([]node[S], 0, len(freqs))}
	for i, entry := range freqs {
		if entry.Count <= 0 {
			return nil, fmt.Errorf("%w: symbol %v has count %d", ErrInvalidCount, entry.Symbol, entry.Count)
		}
		if _, dup := seen[entry.Symbol]; dup {
			return nil, fmt.Errorf("%w: symbol %v", ErrDuplicateSymbol, entry.Symbol)
		}
		seen[entry.Symbol] = struct{}{}
		h.list = append(h.list, &leaf[S]{symbol: entry.Symbol, count: entry.Count, order: i})
	}
	h.Init()

	nextOrder := len(freqs)
	for h.Len() > 1 {
		l := heap.Pop(&h).(node[S])
		r := heap.Pop(&h).(node[S])
		heap.Push(&h, &internal[S]{
			sum:   l.weight() + r.weight(),
			order: nextOrder,
			left:  l,
			right: r,
		})
		nextOrder++
	}
	assert.Assertf(h.Len() == 1, "heap drained to %d nodes, want 1", h.Len())

	t := &Tree[S]{root: heap.Pop(&h).(node[S])}
	t.deriveCodeTable(len(freqs))
	return t, nil
}

// deriveCodeTable walks the tree once, depth first with an explicit
// stack, accumulating the bit path to each leaf: 0 descending left, 1
// descending right.  The table and the shortest and longest code
// lengths are cached on the Tree for all subsequent calls.
func (t *Tree[S]) deriveCodeTable(numSymbols int) {
	type stackItem struct {
		n    node[S]
		code Code
	}

	table := make(CodeTable[S], numSymbols)
	var minDepth, maxDepth int
	var hasMinMax bool

	stack := make([]stackItem, 0, numSymbols)
	stack = append(stack, stackItem{n: t.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := top.n.(type) {
		case *leaf[S]:
			table[n.symbol] = top.code
			size := len(top.code)
			if !hasMinMax {
				hasMinMax = true
				minDepth = size
				maxDepth = size
			} else if minDepth > size {
				minDepth = size
			} else if maxDepth < size {
				maxDepth = size
			}
		case *internal[S]:
			stack = append(stack, stackItem{n: n.right, code: top.code.appendBit(One)})
			stack = append(stack, stackItem{n: n.left, code: top.code.appendBit(Zero)})
		}
	}

	assert.Assertf(len(table) == numSymbols, "derived %d codes for %d symbols", len(table), numSymbols)
	t.table = table
	t.minDepth = minDepth
	t.maxDepth = maxDepth
}

// CodeTable returns the symbol to code mapping derived from this tree.
// The returned map is an independent snapshot; modifying it does not
// affect the Tree.
func (t *Tree[S]) CodeTable() CodeTable[S] {
	return maps.Clone(t.table)
}

// MinDepth is the bit length of the shortest code in the tree.
func (t *Tree[S]) MinDepth() int {
	return t.minDepth
}

// MaxDepth is the bit length of the longest code in the tree.
func (t *Tree[S]) MaxDepth() int {
	return t.maxDepth
}

// Dump writes a programmer-readable debugging dump of the Tree's code
// assignments to the given writer.
func (t *Tree[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tMinDepth() = %d\n", t.minDepth)
	fmt.Fprintf(&buf, "\tMaxDepth() = %d\n", t.maxDepth)
	rows := make(byCode[S], 0, len(t.table))
	for sym, code := range t.table {
		rows = append(rows, codeRow[S]{sym, code})
	}
	rows.Sort()
	for _, row := range rows {
		fmt.Fprintf(&buf, "\tCode(%v) = %s\n", row.symbol, row.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type codeRow + type byCode {{{

type codeRow[S comparable] struct {
	symbol S
	code   Code
}

type byCode[S comparable] []codeRow[S]

func (list byCode[S]) Sort() {
	sort.Sort(list)
}

func (list byCode[S]) Len() int {
	return len(list)
}

func (list byCode[S]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode[S]) Less(i, j int) bool {
	a, b := list[i].code, list[j].code
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for k := range a {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}

var _ sort.Interface = byCode[int](nil)

// }}}
