package pool

import (
	"fmt"
	"sync"
)

// ErrInvalidSize is returned by New when asked for a pool of size <= 0.
var ErrInvalidSize = fmt.Errorf("pool: size must be positive")

// Pool runs jobs of type T across a fixed number of worker goroutines,
// dispatched from a single shared Queue. It reproduces the mutex +
// condition-variable protocol of a pthread-backed thread pool rather than
// Go's more usual channel-based worker pool, because callers depend on its
// exact signaling contract:
//
//   - Enqueue wakes exactly one worker on the empty-to-nonempty transition;
//     it never wakes a worker for a job added to an already-nonempty queue,
//     since that worker is already draining the queue.
//   - Destroy wakes every worker at once (broadcast), and each worker exits
//     only after confirming the queue has nothing left for it.
//   - Destroy drains the queue by running every job still queued when it
//     is called; the workers exit only after the queue is empty.
type Pool[T any] struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   *Queue[T]
	running bool
	wg      sync.WaitGroup
}

// New starts a pool of n worker goroutines, idle until the first job is
// enqueued. It returns ErrInvalidSize if n <= 0.
func New[T any](n int) (*Pool[T], error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	p := &Pool[T]{
		queue:   NewQueue[T](func(T) {}),
		running: true,
	}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p, nil
}

// worker is the body run by every pool goroutine. It blocks on cond while
// the pool is running and the queue is empty, and exits once the pool has
// been shut down and the queue has been fully drained of real work.
func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for p.running && p.queue.IsEmpty() {
			p.cond.Wait()
		}
		if !p.running && p.queue.IsEmpty() {
			p.mu.Unlock()
			return
		}
		job, ok := p.queue.Dequeue()
		p.mu.Unlock()
		if !ok {
			continue
		}
		job.Routine(job.Arg)
	}
}

// Enqueue schedules routine to run with arg on some worker goroutine. If
// the pool has already been destroyed, the job is silently dropped —
// ownership of arg stays with the caller, who sees no error and no
// execution.
func (p *Pool[T]) Enqueue(routine func(T), arg T) {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	wasEmpty := p.queue.IsEmpty()
	p.queue.Enqueue(Job[T]{Routine: routine, Arg: arg})
	if wasEmpty {
		p.cond.Signal()
	}
	p.mu.Unlock()
}

// Destroy stops the pool: it wakes every worker, then waits for all of them
// to exit. A worker that wakes to find the queue non-empty keeps dequeuing
// and running jobs even after running is false, so every job accepted
// before Destroy was called still executes; only once the queue is drained
// does a worker exit. The final queue.Destroy() call is therefore a no-op
// disposer pass over an already-empty queue. Destroy must be called at most
// once.
func (p *Pool[T]) Destroy() {
	p.mu.Lock()
	p.running = false
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()

	p.mu.Lock()
	p.queue.Destroy()
	p.mu.Unlock()
}
