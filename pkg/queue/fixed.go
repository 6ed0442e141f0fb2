package queue

import "errors"

var _ Queue[int] = (*Fixed[int])(nil)

// ErrOverflow is returned when enqueueing into a full queue.
var ErrOverflow = errors.New("queue capacity exceeded")

// Fixed is a bounded FIFO queue backed by a single preallocated slice.
// Capacity is exact (no power-of-two rounding) and never changes after
// construction; operations do not allocate. It is NOT thread-safe:
// confine each instance to one goroutine or guard it externally.
type Fixed[T any] struct {
	slots    []T     // backing storage, len(slots) == capacity
	start    int     // index of the front item
	length   int     // number of occupied slots
	releaser func(T) // optional teardown callback, see WithReleaser
}

// NewFixed creates an empty queue holding at most capacity items.
// Negative capacities are treated as zero. A zero-capacity queue is
// valid: every Enqueue overflows and every Dequeue reports empty.
func NewFixed[T any](capacity int) *Fixed[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Fixed[T]{
		slots: make([]T, capacity),
	}
}

// WithReleaser sets the callback Close invokes once per remaining item.
func (q *Fixed[T]) WithReleaser(release func(T)) *Fixed[T] {
	q.releaser = release
	return q
}

// Enqueue adds an item. Returns ErrOverflow if the queue is full; a
// failed enqueue does not modify the queue and the caller keeps the item.
func (q *Fixed[T]) Enqueue(item T) error {
	if q.length == len(q.slots) {
		return ErrOverflow
	}
	q.slots[(q.start+q.length)%len(q.slots)] = item
	q.length++
	return nil
}

// Dequeue removes and returns the front item. Returns false if the queue
// is empty. The vacated slot is zeroed so the queue drops its reference.
func (q *Fixed[T]) Dequeue() (T, bool) {
	var zero T
	if q.length == 0 {
		return zero, false
	}
	item := q.slots[q.start]
	q.slots[q.start] = zero
	q.start = (q.start + 1) % len(q.slots)
	q.length--
	return item, true
}

// Len returns the current item count.
func (q *Fixed[T]) Len() int { return q.length }

// IsEmpty returns true if the queue holds no items.
func (q *Fixed[T]) IsEmpty() bool { return q.length == 0 }

// IsFull returns true if the queue is at capacity.
func (q *Fixed[T]) IsFull() bool { return q.length == len(q.slots) }

// Capacity returns maximum queue size.
func (q *Fixed[T]) Capacity() int { return len(q.slots) }

// Close drains the queue front to back, invoking the releaser exactly
// once per remaining item. Each slot is vacated before its callback
// runs. After Close the queue is empty and remains usable; closing an
// empty queue is a no-op. Defer Close where early returns must still
// release queued items.
func (q *Fixed[T]) Close() {
	for {
		item, ok := q.Dequeue()
		if !ok {
			return
		}
		if q.releaser != nil {
			q.releaser(item)
		}
	}
}
