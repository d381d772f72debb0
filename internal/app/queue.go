package app

import (
	"errors"
	"sync"
)

// mutationQueue is the serialization point for all load-modify-write
// cycles of a store instance. A single worker goroutine consumes an
// unbounded FIFO of mutation closures, so no two mutations ever
// overlap, regardless of how many callers submit concurrently.
//
// The queue is unbounded so a burst of submitters never blocks each
// other on enqueue; each submitter blocks only on its own reply.
// A failing mutation releases the queue for the next entry.
//
// The signal channel (buffered, size 1) coalesces wakeups for the
// worker loop.
type mutationQueue struct {
	mu     sync.Mutex
	jobs   []func()
	closed bool
	signal chan struct{}
	done   chan struct{}
}

// errQueueClosed is returned for submissions after Close.
var errQueueClosed = errors.New("store is closed")

func newMutationQueue() *mutationQueue {
	q := &mutationQueue{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

// Do submits a mutation closure and blocks until the worker has run
// it, returning the closure's error. Submissions cannot be aborted
// once enqueued.
func (q *mutationQueue) Do(fn func() error) error {
	errc := make(chan error, 1)
	if !q.enqueue(func() { errc <- fn() }) {
		return errQueueClosed
	}
	return <-errc
}

// enqueue appends a job and wakes the worker. Returns false if the
// queue is closed.
func (q *mutationQueue) enqueue(job func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.jobs = append(q.jobs, job)
	select {
	case q.signal <- struct{}{}:
	default:
	}
	return true
}

// Close stops the worker after the pending jobs drain.
func (q *mutationQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()
	select {
	case q.signal <- struct{}{}:
	default:
	}
	<-q.done
}

func (q *mutationQueue) run() {
	defer close(q.done)
	for {
		job, ok := q.next()
		if !ok {
			return
		}
		job()
	}
}

// next blocks until a job is available or the queue is closed and
// drained.
func (q *mutationQueue) next() (func(), bool) {
	for {
		q.mu.Lock()
		if len(q.jobs) > 0 {
			job := q.jobs[0]
			q.jobs = q.jobs[1:]
			q.mu.Unlock()
			return job, true
		}
		closed := q.closed
		q.mu.Unlock()
		if closed {
			return nil, false
		}
		<-q.signal
	}
}
