package astar

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/wayfinder/gridworld"
)

// entry is one candidate state. priority == g + h(position, goal) always.
type entry struct {
	position gridworld.Position
	priority int
	path     []gridworld.Position
	g        int
	seq      uint64 // insertion order, breaks priority ties
}

// frontier is a min-heap of entries ordered by (priority, seq). Popping by
// that key yields exactly the order of a stable sorted insert: among equal
// priorities the earliest inserted entry comes out first.
//
// members mirrors the positions currently queued; suppression guarantees a
// position is never queued twice, so a set is enough.
type frontier struct {
	heap    *heap.Heap[*entry]
	members mapset.Set[gridworld.Position]
	next    uint64
}

func newFrontier() *frontier {
	return &frontier{
		heap: heap.New[*entry](func(a, b *entry) bool {
			if a.priority != b.priority {
				return a.priority < b.priority
			}
			return a.seq < b.seq
		}),
		members: mapset.New[gridworld.Position](),
	}
}

// insert queues e behind every entry of equal or lower priority.
func (f *frontier) insert(e *entry) {
	e.seq = f.next
	f.next++
	f.heap.Push(e)
	f.members.Put(e.position)
}

// popMin removes and returns the lowest-priority entry.
func (f *frontier) popMin() (*entry, bool) {
	e, ok := f.heap.Pop()
	if !ok {
		return nil, false
	}
	f.members.Remove(e.position)
	return e, true
}

func (f *frontier) isEmpty() bool { return f.heap.Size() == 0 }

func (f *frontier) len() int { return f.heap.Size() }

func (f *frontier) contains(p gridworld.Position) bool { return f.members.Has(p) }
