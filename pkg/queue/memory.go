package queue

import "sync"

// InMemoryQueue implements an in-memory queue.
type InMemoryQueue[T any] struct {
	ch     chan T
	lock   sync.RWMutex
	closed bool
}

// NewInMemoryQueue creates a new queue holding at most size items.
func NewInMemoryQueue[T any](size int) *InMemoryQueue[T] {
	return &InMemoryQueue[T]{
		ch: make(chan T, size),
	}
}

// TryEnqueue adds an item to the end of the queue, failing instead of blocking when full.
func (q *InMemoryQueue[T]) TryEnqueue(item T) error {
	q.lock.RLock()
	defer q.lock.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.ch <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue removes and returns the item from the front of the queue.
// ok is false once the queue is closed and drained.
func (q *InMemoryQueue[T]) Dequeue() (item T, ok bool) {
	item, ok = <-q.ch
	return item, ok
}

func (q *InMemoryQueue[T]) C() <-chan T {
	return q.ch
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	return len(q.ch)
}

// ReadAllMessages reads all pending messages in the queue
func (q *InMemoryQueue[T]) ReadAllMessages() []T {
	var items []T
	for {
		select {
		case item, ok := <-q.ch:
			if !ok {
				return items
			}
			items = append(items, item)
		default:
			return items
		}
	}
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue[T]) ClearQueue() {
	q.ReadAllMessages()
}

// Close stops the queue from accepting items. Pending items can still be read.
func (q *InMemoryQueue[T]) Close() {
	q.lock.Lock()
	defer q.lock.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}
