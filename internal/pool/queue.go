// Package pool implements a fixed-size worker pool over a FIFO job queue,
// using the same lock-and-condition-variable protocol as a pthread-backed
// thread pool: a worker blocks on the pool's condition variable while the
// queue is empty and the pool is running, and wakes on either a new job or
// shutdown.
package pool

// node is one link in the queue's backing list.
type node[T any] struct {
	job  Job[T]
	next *node[T]
}

// Job pairs a unit of work with its argument. The routine is invoked with
// arg exactly once, by whichever worker dequeues it.
type Job[T any] struct {
	Routine func(T)
	Arg     T
}

// Queue is an unsynchronized FIFO. Callers that share a Queue across
// goroutines (Pool does) must guard every method call with their own lock;
// Queue itself does no locking, matching fifo.c's contract that the
// threadpool's mutex — not the queue — owns mutual exclusion.
type Queue[T any] struct {
	head, tail *node[T]
	length     int
	disposer   func(T)
}

// NewQueue returns an empty queue. disposer is invoked, once per abandoned
// job, by Destroy; pass a no-op if jobs carry nothing that needs disposal.
func NewQueue[T any](disposer func(T)) *Queue[T] {
	return &Queue[T]{disposer: disposer}
}

// Len returns the number of queued jobs.
func (q *Queue[T]) Len() int { return q.length }

// IsEmpty reports whether the queue holds no jobs.
func (q *Queue[T]) IsEmpty() bool { return q.length == 0 }

// Enqueue appends job to the tail of the queue.
func (q *Queue[T]) Enqueue(job Job[T]) {
	n := &node[T]{job: job}
	if q.tail == nil {
		q.head = n
		q.tail = n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.length++
}

// Dequeue removes and returns the job at the head of the queue. The second
// return value is false if the queue was empty, in which case the first
// return value is the zero Job.
func (q *Queue[T]) Dequeue() (Job[T], bool) {
	if q.head == nil {
		return Job[T]{}, false
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.length--
	return n.job, true
}

// Destroy removes every remaining job, passing each job's argument to the
// queue's disposer without running its routine. It mirrors fifo_destroy's
// drain-via-payLoadDestructor behavior.
func (q *Queue[T]) Destroy() {
	for n := q.head; n != nil; n = n.next {
		q.disposer(n.job.Arg)
	}
	q.head = nil
	q.tail = nil
	q.length = 0
}
