package event

import "github.com/lixenwraith/math-snake/constants"

// Queue is a fixed-size FIFO ring of markers with value semantics: copying a Queue
// copies its contents, so sessions holding one never share state.
//
// Overflow: oldest markers overwritten when full
type Queue struct {
	markers [constants.EventQueueSize]Marker
	head    uint64 // Read index
	tail    uint64 // Write index
}

// Push appends m, overwriting the oldest marker when full
func (q *Queue) Push(m Marker) {
	q.markers[q.tail&constants.EventBufferMask] = m
	q.tail++
	if q.tail-q.head > constants.EventQueueSize {
		q.head = q.tail - constants.EventQueueSize
	}
}

// Consume returns all pending markers in FIFO order and empties the queue
func (q *Queue) Consume() []Marker {
	out := q.Peek()
	q.head = q.tail
	return out
}

// Peek returns pending markers in FIFO order without consuming them
func (q *Queue) Peek() []Marker {
	n := q.Len()
	if n == 0 {
		return nil
	}
	out := make([]Marker, 0, n)
	for i := q.head; i < q.tail; i++ {
		out = append(out, q.markers[i&constants.EventBufferMask])
	}
	return out
}

// Len returns pending marker count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Clear discards all pending markers
func (q *Queue) Clear() {
	*q = Queue{}
}
