package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_order(t *testing.T) {
	q := NewInMemoryQueue[int](3)
	for i := 1; i <= 3; i++ {
		require.NoError(t, q.TryEnqueue(i))
	}
	assert.Equal(t, 3, q.Size())
	assert.ErrorIs(t, q.TryEnqueue(4), ErrQueueFull)

	item, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 1, item)
	assert.Equal(t, []int{2, 3}, q.ReadAllMessages())
	assert.Nil(t, q.ReadAllMessages())
}

func TestInMemoryQueue_Close(t *testing.T) {
	q := NewInMemoryQueue[string](2)
	require.NoError(t, q.TryEnqueue("a"))
	q.Close()
	q.Close()

	assert.ErrorIs(t, q.TryEnqueue("b"), ErrQueueClosed)
	item, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "a", item)
	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestInMemoryQueue_ClearQueue(t *testing.T) {
	q := NewInMemoryQueue[int](4)
	require.NoError(t, q.TryEnqueue(1))
	require.NoError(t, q.TryEnqueue(2))
	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_concurrentProducers(t *testing.T) {
	q := NewInMemoryQueue[int](100)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				assert.NoError(t, q.TryEnqueue(base*10+j))
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, q.ReadAllMessages(), 100)
}
