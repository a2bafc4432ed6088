package search

import (
	"container/heap"

	"github.com/katalvlaran/pathviz/grid"
)

// Key orders queue entries lexicographically: Primary first, then Secondary.
// Single-key strategies leave Secondary at zero, so ties fall back to heap
// order.
type Key struct {
	Primary   float64
	Secondary float64
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool {
	if k.Primary != o.Primary {
		return k.Primary < o.Primary
	}
	return k.Secondary < o.Secondary
}

// Item is one queue entry. Cost is the accumulated cost at push time, so a
// stale entry still carries the value it was pushed with.
type Item struct {
	Point grid.Point
	Key   Key
	Cost  float64
}

// Queue is a min-priority queue of Items using lazy decrease-key: improving a
// node pushes a fresh entry and the caller skips stale ones on pop.
type Queue struct {
	pq itemPQ
}

// NewQueue returns an empty queue with room for capacity entries.
func NewQueue(capacity int) *Queue {
	q := &Queue{pq: make(itemPQ, 0, capacity)}
	heap.Init(&q.pq)

	return q
}

// Push inserts p with key and the cost it was reached at.
// Complexity: O(log N).
func (q *Queue) Push(p grid.Point, key Key, cost float64) {
	heap.Push(&q.pq, &Item{Point: p, Key: key, Cost: cost})
}

// Pop removes and returns the entry with the smallest key. The queue must not
// be empty.
// Complexity: O(log N).
func (q *Queue) Pop() Item {
	return *heap.Pop(&q.pq).(*Item)
}

// Len returns the number of entries, stale ones included.
func (q *Queue) Len() int { return q.pq.Len() }

// itemPQ implements heap.Interface over *Item ordered by Key.
type itemPQ []*Item

func (pq itemPQ) Len() int            { return len(pq) }
func (pq itemPQ) Less(i, j int) bool  { return pq[i].Key.Less(pq[j].Key) }
func (pq itemPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*Item)) }

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
