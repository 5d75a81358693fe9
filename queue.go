package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Entry pairs a payload with the priority it is queued under.
type Entry[T any] struct {
	Payload  T
	Priority uint64
}

// Comparator orders two entries, returning a negative number if a ranks
// before b, a positive number if b ranks before a, and zero if they are
// interchangeable.  It must be a total order.
type Comparator[T any] func(a, b *Entry[T]) int

// ByPriority is a Comparator that orders entries by ascending priority and
// imposes no tie-break of its own.
func ByPriority[T any](a, b *Entry[T]) int {
	switch {
	case a.Priority < b.Priority:
		return -1
	case a.Priority > b.Priority:
		return 1
	default:
		return 0
	}
}

// PriorityQueue is a binary min-heap of entries.  The entry that the
// comparator ranks first is always at the root.
type PriorityQueue[T any] struct {
	h entryHeap[T]
}

// NewPriorityQueue constructs an empty PriorityQueue ordered by cmp.
func NewPriorityQueue[T any](cmp Comparator[T]) *PriorityQueue[T] {
	assert.Assertf(cmp != nil, "priority queue comparator is nil")
	return &PriorityQueue[T]{h: entryHeap[T]{cmp: cmp}}
}

// Len returns the number of queued entries.
func (pq *PriorityQueue[T]) Len() int {
	return pq.h.Len()
}

// Push adds an entry to the queue.
func (pq *PriorityQueue[T]) Push(entry *Entry[T]) error {
	if entry == nil {
		return fmt.Errorf("cannot push nil entry onto priority queue: %w", ErrInvalidArgument)
	}
	heap.Push(&pq.h, entry)
	return nil
}

// Pop removes and returns the minimum entry.
func (pq *PriorityQueue[T]) Pop() (*Entry[T], error) {
	if pq.h.Len() == 0 {
		return nil, fmt.Errorf("cannot pop from priority queue: %w", ErrEmptyContainer)
	}
	return heap.Pop(&pq.h).(*Entry[T]), nil
}

// Peek returns the minimum entry without removing it.
func (pq *PriorityQueue[T]) Peek() (*Entry[T], error) {
	if pq.h.Len() == 0 {
		return nil, fmt.Errorf("cannot peek at priority queue: %w", ErrEmptyContainer)
	}
	return pq.h.list[0], nil
}

// type entryHeap {{{

type entryHeap[T any] struct {
	list []*Entry[T]
	cmp  Comparator[T]
}

func (h *entryHeap[T]) Len() int {
	return len(h.list)
}

func (h *entryHeap[T]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *entryHeap[T]) Less(i, j int) bool {
	return h.cmp(h.list[i], h.list[j]) < 0
}

func (h *entryHeap[T]) Push(x interface{}) {
	h.list = append(h.list, x.(*Entry[T]))
}

func (h *entryHeap[T]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*entryHeap[int])(nil)

// }}}
