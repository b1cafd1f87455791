package world

import "sort"

// LaneSource produces the lane for an index.
type LaneSource func(index int) Lane

// Buffer is the window of active lanes, kept sorted ascending by index
// without duplicates. Lanes are appended at the high end and evicted from
// the low end, so the backing slice behaves like a deque.
type Buffer struct {
	lanes  []Lane
	behind int
	ahead  int
}

// NewBuffer creates an empty buffer keeping behind lanes below the player
// and at least ahead lanes above it.
func NewBuffer(behind, ahead int) *Buffer {
	return &Buffer{
		lanes:  make([]Lane, 0, behind+ahead+1),
		behind: behind,
		ahead:  ahead,
	}
}

// Len returns the number of active lanes.
func (b *Buffer) Len() int {
	return len(b.lanes)
}

// Lanes returns the active lanes in ascending index order.
// The slice is owned by the buffer and must not be modified.
func (b *Buffer) Lanes() []Lane {
	return b.lanes
}

// Bounds returns the lowest and highest active index.
func (b *Buffer) Bounds() (lo, hi int, ok bool) {
	if len(b.lanes) == 0 {
		return 0, 0, false
	}
	return b.lanes[0].Index, b.lanes[len(b.lanes)-1].Index, true
}

// search returns the position of the first lane with Index >= index.
func (b *Buffer) search(index int) int {
	return sort.Search(len(b.lanes), func(i int) bool {
		return b.lanes[i].Index >= index
	})
}

// At returns the lane with the given index, or nil when it is not active.
func (b *Buffer) At(index int) *Lane {
	i := b.search(index)
	if i < len(b.lanes) && b.lanes[i].Index == index {
		return &b.lanes[i]
	}
	return nil
}

// Range returns the active lanes with lo <= Index <= hi in ascending order.
func (b *Buffer) Range(lo, hi int) []Lane {
	if hi < lo {
		return nil
	}
	start := b.search(lo)
	end := b.search(hi + 1)
	return b.lanes[start:end]
}

// Insert places a lane at its sorted position, replacing any lane with the same index.
func (b *Buffer) Insert(l Lane) {
	i := b.search(l.Index)
	if i < len(b.lanes) && b.lanes[i].Index == l.Index {
		b.lanes[i] = l
		return
	}
	b.lanes = append(b.lanes, Lane{})
	copy(b.lanes[i+1:], b.lanes[i:])
	b.lanes[i] = l
}

// Resize evicts lanes more than behind rows below playerRow and generates
// lanes until the window reaches ahead rows above it. It returns the
// indices of evicted lanes.
func (b *Buffer) Resize(playerRow int, src LaneSource) []int {
	var evicted []int
	floor := playerRow - b.behind
	n := 0
	for n < len(b.lanes) && b.lanes[n].Index < floor {
		evicted = append(evicted, b.lanes[n].Index)
		n++
	}
	if n > 0 {
		clear(b.lanes[:n])
		b.lanes = b.lanes[n:]
	}

	next := playerRow
	if _, hi, ok := b.Bounds(); ok {
		next = hi + 1
	}
	for next <= playerRow+b.ahead {
		b.lanes = append(b.lanes, src(next))
		next++
	}
	return evicted
}
