package app

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRunsEveryJobExactlyOnce(t *testing.T) {
	q := newMutationQueue()
	defer q.Close()

	var mu sync.Mutex
	var got []int
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_ = q.Do(func() error {
				mu.Lock()
				got = append(got, i)
				mu.Unlock()
				return nil
			})
		}(i)
	}
	close(start)
	wg.Wait()

	require.Len(t, got, 10)
	seen := make(map[int]bool, 10)
	for _, i := range got {
		assert.False(t, seen[i], "job %d ran twice", i)
		seen[i] = true
	}
}

func TestQueueReturnsJobError(t *testing.T) {
	q := newMutationQueue()
	defer q.Close()

	boom := errors.New("boom")
	assert.ErrorIs(t, q.Do(func() error { return boom }), boom)

	// A failing job must not wedge the worker.
	assert.NoError(t, q.Do(func() error { return nil }))
}

func TestQueueCloseDrainsThenRejects(t *testing.T) {
	q := newMutationQueue()

	ran := false
	require.NoError(t, q.Do(func() error { ran = true; return nil }))
	assert.True(t, ran)

	q.Close()
	q.Close() // idempotent

	assert.ErrorIs(t, q.Do(func() error { return nil }), errQueueClosed)
}
