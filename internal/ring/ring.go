// Package ring provides the FIFO used for tick submission queues.
//
// Elements are stored by value in one backing slice that only grows, so a
// queue that has reached its working size stops allocating.
package ring

// Queue is a growable circular FIFO. The zero value is ready to use.
type Queue[T any] struct {
	buf  []T
	head int
	size int
}

// New creates a queue with room for capacity elements.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the size of the backing slice.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Push appends v at the back.
func (q *Queue[T]) Push(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Pop removes and returns the front element. The vacated cell is zeroed so
// the queue does not keep references alive.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	if q.size == 0 {
		q.head = 0
	}
	return v, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// Clear drops all elements, keeping the backing slice.
func (q *Queue[T]) Clear() {
	var zero T
	for i := 0; i < q.size; i++ {
		q.buf[(q.head+i)%len(q.buf)] = zero
	}
	q.head, q.size = 0, 0
}

func (q *Queue[T]) grow() {
	n := len(q.buf) * 2
	if n == 0 {
		n = 8
	}
	buf := make([]T, n)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
