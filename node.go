package hufftree

import (
	"container/heap"
)

// node is the sealed variant type for tree nodes: a node is either a
// leaf bound to exactly one symbol, or an internal node owning exactly
// two children.  Each of order and weight is fixed at creation and
// never mutated afterward.
type node[S comparable] interface {
	weight() int
	ord() int
}

// leaf is a terminal node for a single symbol; its weight is the
// symbol's occurrence count.
type leaf[S comparable] struct {
	symbol S
	count  int
	order  int
}

func (l *leaf[S]) weight() int { return l.count }
func (l *leaf[S]) ord() int    { return l.order }

// internal is a non-terminal node; its weight is the sum of its
// children's weights.
type internal[S comparable] struct {
	sum   int
	order int
	left  node[S]
	right node[S]
}

func (n *internal[S]) weight() int { return n.sum }
func (n *internal[S]) ord() int    { return n.order }

// type nodeHeap {{{

// nodeHeap is a min-heap of nodes ordered by weight.  Ties are broken
// by creation order, oldest first: leaves are numbered in frequency
// table order, internal nodes in merge order after all leaves.  The
// order is total, so the heap (and with it the tree shape) is
// deterministic across runs.
type nodeHeap[S comparable] struct {
	list []node[S]
}

func (h *nodeHeap[S]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight() != b.weight() {
		return a.weight() < b.weight()
	}
	return a.ord() < b.ord()
}

func (h *nodeHeap[S]) Push(x any) {
	h.list = append(h.list, x.(node[S]))
}

func (h *nodeHeap[S]) Pop() any {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[int])(nil)

// }}}
