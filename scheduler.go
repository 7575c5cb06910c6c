package when

import "sync"

// Scheduler is the opaque task queue the core depends on (§6). The core
// never assumes anything about how enqueued tasks are eventually run beyond
// two guarantees: Run() is invoked outside the caller's stack, and tasks
// enqueued in sequence run in that same order (FIFO).
type Scheduler interface {
	Enqueue(task func())
}

// queueScheduler is the built-in FIFO scheduler: a single worker goroutine
// draining an unbounded slice-backed queue, guarded by a mutex/cond pair the
// way quantcast-promise's CompletablePromise guards its own state, plus a
// sync.WaitGroup exposing Idle() the way SaatvikAwasthi-go-promise's
// pkg/sync.go exposes WaitForPromises().
//
// A single worker goroutine is deliberate, not an oversight: spec §5
// requires reactions to drain in strict attachment order, and a worker pool
// could run two queued tasks concurrently on different goroutines and let
// either finish first, which would make that guarantee unenforceable. The
// unused-parallelism headroom this leaves on the table is exactly the
// "single-threaded cooperative" model spec.md's NON-GOALS ask for.
type queueScheduler struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []func()
	wg    sync.WaitGroup
}

// NewScheduler returns the default FIFO scheduler, backed by a single
// worker goroutine (see the type doc for why).
func NewScheduler() Scheduler {
	s := &queueScheduler{}
	s.cond = sync.NewCond(&s.mu)
	go s.run()
	return s
}

func (s *queueScheduler) Enqueue(fn func()) {
	s.wg.Add(1)
	s.mu.Lock()
	s.queue = append(s.queue, fn)
	s.mu.Unlock()
	s.cond.Signal()
}

func (s *queueScheduler) run() {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 {
			s.cond.Wait()
		}
		fn := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		fn()
		s.wg.Done()
	}
}

// Idle blocks until every task enqueued so far has run, mirroring
// SaatvikAwasthi-go-promise's WaitForPromises. Intended for tests and for
// demo programs that need a deterministic join point before exiting.
func (s *queueScheduler) Idle() {
	s.wg.Wait()
}
