package pathfinding

import "container/heap"

// openSet holds the row-major indices of cells eligible for expansion.
// popLowest returns the member with the lowest fCost; among equal fCosts the
// member inserted first wins.
type openSet interface {
	reset()
	push(idx int)
	contains(idx int) bool
	// fix is called after the fCost of a member changed.
	fix(idx int)
	popLowest() int
	len() int
}

func newOpenSet(kind OpenSetKind, size int, fcost func(idx int) int) openSet {
	if kind == OpenSetHeap {
		return newHeapOpenSet(size, fcost)
	}
	return newLinearOpenSet(size, fcost)
}

// linearOpenSet keeps members in insertion order and scans for the minimum.
type linearOpenSet struct {
	items  []int
	member []bool
	fcost  func(int) int
}

func newLinearOpenSet(size int, fcost func(int) int) *linearOpenSet {
	return &linearOpenSet{
		items:  make([]int, 0, 64),
		member: make([]bool, size),
		fcost:  fcost,
	}
}

func (s *linearOpenSet) reset() {
	for _, idx := range s.items {
		s.member[idx] = false
	}
	s.items = s.items[:0]
}

func (s *linearOpenSet) push(idx int) {
	s.items = append(s.items, idx)
	s.member[idx] = true
}

func (s *linearOpenSet) contains(idx int) bool { return s.member[idx] }

// fix is a no-op: the scan reads fCost at selection time.
func (s *linearOpenSet) fix(int) {}

func (s *linearOpenSet) len() int { return len(s.items) }

func (s *linearOpenSet) popLowest() int {
	best := 0
	bestCost := s.fcost(s.items[0])
	for i := 1; i < len(s.items); i++ {
		// strict < keeps the earliest of equal costs
		if c := s.fcost(s.items[i]); c < bestCost {
			best, bestCost = i, c
		}
	}
	idx := s.items[best]
	// remove while preserving insertion order
	copy(s.items[best:], s.items[best+1:])
	s.items = s.items[:len(s.items)-1]
	s.member[idx] = false
	return idx
}

// heapOpenSet is a binary min-heap ordered by (fCost, seq). seq is assigned
// on first insertion and kept across decrease-key, which reproduces the
// linear scan's first-inserted tie-break.
type heapOpenSet struct {
	h     cellHeap
	fcost func(int) int
	seq   int
}

func newHeapOpenSet(size int, fcost func(int) int) *heapOpenSet {
	pos := make([]int, size)
	for i := range pos {
		pos[i] = -1
	}
	return &heapOpenSet{
		h:     cellHeap{items: make([]heapItem, 0, 64), pos: pos},
		fcost: fcost,
	}
}

func (s *heapOpenSet) reset() {
	for _, it := range s.h.items {
		s.h.pos[it.idx] = -1
	}
	s.h.items = s.h.items[:0]
	s.seq = 0
}

func (s *heapOpenSet) push(idx int) {
	heap.Push(&s.h, heapItem{idx: idx, f: s.fcost(idx), seq: s.seq})
	s.seq++
}

func (s *heapOpenSet) contains(idx int) bool { return s.h.pos[idx] >= 0 }

func (s *heapOpenSet) fix(idx int) {
	p := s.h.pos[idx]
	if p < 0 {
		return
	}
	s.h.items[p].f = s.fcost(idx)
	heap.Fix(&s.h, p)
}

func (s *heapOpenSet) popLowest() int {
	return heap.Pop(&s.h).(heapItem).idx
}

func (s *heapOpenSet) len() int { return s.h.Len() }

// heapItem is one open cell in the heap.
type heapItem struct {
	idx int // row-major cell index
	f   int // fCost snapshot, refreshed by fix
	seq int // insertion order
}

// cellHeap implements heap.Interface and tracks each cell's heap position.
type cellHeap struct {
	items []heapItem
	pos   []int // cell index → position in items, -1 if absent
}

// Len returns the number of items in the heap.
func (h cellHeap) Len() int { return len(h.items) }

// Less orders by fCost, then by insertion sequence.
func (h cellHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// Swap swaps two items and keeps pos in sync.
func (h cellHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].idx] = i
	h.pos[h.items[j].idx] = j
}

// Push appends x; called by heap.Push.
func (h *cellHeap) Push(x interface{}) {
	it := x.(heapItem)
	h.pos[it.idx] = len(h.items)
	h.items = append(h.items, it)
}

// Pop removes the last item; called by heap.Pop.
func (h *cellHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	h.pos[it.idx] = -1
	return it
}
