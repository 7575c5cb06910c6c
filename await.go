package when

import (
	"context"
	"sync"
)

// blockingWaiter bridges the asynchronous core back to synchronous code that
// needs to block for a result — a goroutine's main body, a CLI, a test.
// Adapted from quantcast-promise's CompletablePromise.Get: the same
// mutex/cond.Wait pattern used there to block until a one-shot state
// transition, rewired here to wait on the always-async Then dispatch instead
// of a synchronous in-process Complete/Reject call.
type blockingWaiter struct {
	mutex sync.Mutex
	cond  *sync.Cond
	done  bool
	value Result
	err   error
}

func newBlockingWaiter() *blockingWaiter {
	w := &blockingWaiter{}
	w.cond = sync.NewCond(&w.mutex)
	return w
}

func (w *blockingWaiter) complete(value Result, err error) {
	w.mutex.Lock()
	if w.done {
		w.mutex.Unlock()
		return
	}
	w.done, w.value, w.err = true, value, err
	w.mutex.Unlock()
	w.cond.Broadcast()
}

// wait blocks until complete has run, or ctx is done, whichever comes first.
func (w *blockingWaiter) wait(ctx context.Context) (Result, error) {
	if ctx == nil {
		w.mutex.Lock()
		for !w.done {
			w.cond.Wait()
		}
		value, err := w.value, w.err
		w.mutex.Unlock()
		return value, err
	}

	done := make(chan struct{})
	go func() {
		w.mutex.Lock()
		for !w.done {
			w.cond.Wait()
		}
		w.mutex.Unlock()
		close(done)
	}()

	select {
	case <-done:
		w.mutex.Lock()
		value, err := w.value, w.err
		w.mutex.Unlock()
		return value, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Await blocks the calling goroutine until this promise settles (or ctx is
// canceled), returning its fulfillment value or its rejection reason as an
// error. Not part of the Promises/A+ surface — the core stays non-blocking
// throughout; Await is an opt-in bridge for synchronous call sites, the Go
// analogue of the blocking Get() the teacher's CompletablePromise exposed.
func (p *Promise) Await(ctx context.Context) (Result, error) {
	w := newBlockingWaiter()
	p.Then(
		func(v, _ Result) Result {
			w.complete(v, nil)
			return nil
		},
		func(r, _ Result) Result {
			if err, ok := r.(error); ok {
				w.complete(nil, err)
			} else {
				w.complete(nil, &PanicError{Value: r})
			}
			return nil
		},
		nil,
	)
	return w.wait(ctx)
}
