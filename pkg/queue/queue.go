// queue package

package queue

import "errors"

var (
	// ErrQueueFull is returned by TryEnqueue when the queue is at capacity.
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueClosed is returned when enqueueing onto a closed queue.
	ErrQueueClosed = errors.New("queue is closed")
)

// Queue represents a bounded FIFO queue safe for concurrent use.
type Queue[T any] interface {
	// TryEnqueue adds an item without blocking.
	TryEnqueue(item T) error
	// Dequeue blocks until an item is available or the queue is closed.
	Dequeue() (T, bool)
	// C exposes the queue for use in select statements.
	C() <-chan T
	Size() int
	ReadAllMessages() []T
	ClearQueue()
	Close()
}
