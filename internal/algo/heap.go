package algo

import (
	"container/heap"
	"sort"
)

// qitem wraps a candidate with its insertion sequence number, which
// breaks f ties FIFO so dequeue order is deterministic.
type qitem struct {
	c     *Candidate
	seq   uint64
	index int
}

type candidateHeap []*qitem

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	if h[i].c.F != h[j].c.F {
		return h[i].c.F < h[j].c.F
	}
	return h[i].seq < h[j].seq
}
func (h candidateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *candidateHeap) Push(x any) {
	it := x.(*qitem)
	it.index = len(*h)
	*h = append(*h, it)
}
func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return it
}

// CandidateQueue is a min-heap over candidates ordered by ascending f,
// FIFO within equal keys.
type CandidateQueue struct {
	h   candidateHeap
	seq uint64
}

// NewCandidateQueue creates an empty queue.
func NewCandidateQueue() *CandidateQueue {
	return &CandidateQueue{}
}

// Len returns the number of queued candidates.
func (q *CandidateQueue) Len() int { return len(q.h) }

// Push enqueues a candidate.
func (q *CandidateQueue) Push(c *Candidate) {
	q.seq++
	heap.Push(&q.h, &qitem{c: c, seq: q.seq})
}

// Pop removes and returns the minimum-f candidate, or nil when empty.
func (q *CandidateQueue) Pop() *Candidate {
	if len(q.h) == 0 {
		return nil
	}
	return heap.Pop(&q.h).(*qitem).c
}

// Clear empties the queue. The sequence counter keeps running so ties
// stay FIFO across connections.
func (q *CandidateQueue) Clear() {
	q.h = q.h[:0]
}

// PeekK returns up to k smallest candidates without removing them.
// Used for visualization only.
func (q *CandidateQueue) PeekK(k int) []*Candidate {
	items := make([]*qitem, len(q.h))
	copy(items, q.h)
	sort.Slice(items, func(i, j int) bool {
		if items[i].c.F != items[j].c.F {
			return items[i].c.F < items[j].c.F
		}
		return items[i].seq < items[j].seq
	})
	if k > len(items) {
		k = len(items)
	}
	out := make([]*Candidate, k)
	for i := 0; i < k; i++ {
		out[i] = items[i].c
	}
	return out
}
