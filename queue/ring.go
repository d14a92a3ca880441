// Package queue provides the fixed-size FIFO buffer used by TakeLast and SkipLast.
package queue

import (
	"github.com/denismitr/enumerable/utils"
	"github.com/pkg/errors"
)

var (
	ErrOverflow = errors.New("queue is full")
	ErrEmpty    = errors.New("queue is empty")
)

// RingQueue is a bounded FIFO queue. It is not safe for concurrent use.
type RingQueue[T any] struct {
	head  int
	tail  int
	count int
	buf   []T
}

// NewRingQueue creates a queue holding at most size items. A size below 1 is treated as 1.
func NewRingQueue[T any](size int) *RingQueue[T] {
	if size < 1 {
		size = 1
	}

	return &RingQueue[T]{
		buf: make([]T, size),
	}
}

func (q *RingQueue[T]) Len() int {
	return q.count
}

func (q *RingQueue[T]) Cap() int {
	return len(q.buf)
}

func (q *RingQueue[T]) IsEmpty() bool {
	return q.count == 0
}

func (q *RingQueue[T]) IsFull() bool {
	return q.count == len(q.buf)
}

func (q *RingQueue[T]) Enqueue(item T) error {
	if q.IsFull() {
		return errors.Wrapf(ErrOverflow, "capacity %d", len(q.buf))
	}

	q.buf[q.head] = item
	q.head = (q.head + 1) % len(q.buf)
	q.count++

	return nil
}

func (q *RingQueue[T]) Peek() (T, error) {
	if q.count == 0 {
		return utils.GetZero[T](), ErrEmpty
	}

	return q.buf[q.tail], nil
}

func (q *RingQueue[T]) Dequeue() (T, error) {
	if q.count == 0 {
		return utils.GetZero[T](), ErrEmpty
	}

	result := q.buf[q.tail]
	q.buf[q.tail] = utils.GetZero[T]()
	q.tail = (q.tail + 1) % len(q.buf)
	q.count--

	return result, nil
}

// Push enqueues item, evicting and returning the oldest item when the queue is full.
func (q *RingQueue[T]) Push(item T) (evicted T, ok bool) {
	if q.IsFull() {
		evicted, _ = q.Dequeue()
		ok = true
	}

	_ = q.Enqueue(item)
	return evicted, ok
}
