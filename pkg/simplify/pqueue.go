package simplify

import (
	"container/heap"

	"github.com/chazu/halfmesh/pkg/halfedge"
)

// pqItem is one slot of the heap, tracking its own position so Remove can
// locate it by edge identity in O(log n) instead of a linear scan.
type pqItem struct {
	record EdgeRecord
	index  int
}

type innerHeap []*pqItem

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].record.Cost != h[j].record.Cost {
		return h[i].record.Cost < h[j].record.Cost
	}
	return h[i].record.Edge < h[j].record.Edge
}

func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *innerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// PQueue is a minimum-priority queue of EdgeRecords, ordered by cost with
// ties broken by edge handle so the ordering is total, supporting
// insertion, peek, pop, and removal of an arbitrary element by the edge
// it records.
type PQueue struct {
	h     innerHeap
	items map[halfedge.EdgeRef]*pqItem
}

// NewPQueue returns an empty queue.
func NewPQueue() *PQueue {
	return &PQueue{items: make(map[halfedge.EdgeRef]*pqItem)}
}

// Len reports the number of records currently queued.
func (q *PQueue) Len() int { return q.h.Len() }

// Insert adds r to the queue. Inserting a record for an edge that is
// already queued replaces the earlier one.
func (q *PQueue) Insert(r EdgeRecord) {
	if old, ok := q.items[r.Edge]; ok {
		heap.Remove(&q.h, old.index)
		delete(q.items, r.Edge)
	}
	item := &pqItem{record: r}
	heap.Push(&q.h, item)
	q.items[r.Edge] = item
}

// Top returns the cheapest queued record without removing it.
func (q *PQueue) Top() (EdgeRecord, bool) {
	if q.h.Len() == 0 {
		return EdgeRecord{}, false
	}
	return q.h[0].record, true
}

// Pop removes and returns the cheapest queued record.
func (q *PQueue) Pop() (EdgeRecord, bool) {
	if q.h.Len() == 0 {
		return EdgeRecord{}, false
	}
	item := heap.Pop(&q.h).(*pqItem)
	delete(q.items, item.record.Edge)
	return item.record, true
}

// Remove deletes the record for e, if queued. It reports whether a
// record was present.
func (q *PQueue) Remove(e halfedge.EdgeRef) bool {
	item, ok := q.items[e]
	if !ok {
		return false
	}
	heap.Remove(&q.h, item.index)
	delete(q.items, e)
	return true
}

// All returns every currently queued record, in no particular order.
func (q *PQueue) All() []EdgeRecord {
	recs := make([]EdgeRecord, 0, len(q.h))
	for _, item := range q.h {
		recs = append(recs, item.record)
	}
	return recs
}
