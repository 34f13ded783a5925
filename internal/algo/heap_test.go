package algo

import "testing"

func TestCandidateQueueOrdersByF(t *testing.T) {
	q := NewCandidateQueue()
	q.Push(&Candidate{Port: 1, F: 3})
	q.Push(&Candidate{Port: 2, F: 1})
	q.Push(&Candidate{Port: 3, F: 2})

	var got []int
	for c := q.Pop(); c != nil; c = q.Pop() {
		got = append(got, int(c.Port))
	}
	want := []int{2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order = %v, want %v", got, want)
		}
	}
}

func TestCandidateQueueFIFOTies(t *testing.T) {
	q := NewCandidateQueue()
	for i := 1; i <= 5; i++ {
		q.Push(&Candidate{Port: 10, F: 1, Hops: i})
	}

	for i := 1; i <= 5; i++ {
		c := q.Pop()
		if c.Hops != i {
			t.Fatalf("equal-f candidates must dequeue FIFO: got insertion %d at position %d", c.Hops, i)
		}
	}
}

func TestCandidateQueuePeekK(t *testing.T) {
	q := NewCandidateQueue()
	q.Push(&Candidate{Port: 1, F: 5})
	q.Push(&Candidate{Port: 2, F: 1})
	q.Push(&Candidate{Port: 3, F: 3})

	peek := q.PeekK(2)
	if len(peek) != 2 || peek[0].Port != 2 || peek[1].Port != 3 {
		t.Errorf("PeekK(2) returned wrong candidates: %v", peek)
	}
	if q.Len() != 3 {
		t.Errorf("PeekK must not remove candidates, len = %d", q.Len())
	}
	if got := q.PeekK(10); len(got) != 3 {
		t.Errorf("PeekK beyond len should clamp, got %d", len(got))
	}
}

func TestCandidateQueueClear(t *testing.T) {
	q := NewCandidateQueue()
	q.Push(&Candidate{Port: 1, F: 1})
	q.Clear()
	if q.Len() != 0 || q.Pop() != nil {
		t.Error("Clear should empty the queue")
	}
}
