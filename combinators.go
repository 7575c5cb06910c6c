package when

import "sync"

// Resolve returns x as a trusted promise: if x already is one, it is
// returned unchanged (§8: "for all trusted promises X: resolve(X) === X");
// otherwise x is classified and wrapped.
func (c *Core) Resolve(x Result) *Promise {
	if p, ok := x.(*Promise); ok && p.core == c {
		return p
	}
	return c.wrap(classify(c, x, nil))
}

// Reject returns a promise already settled rejected with reason.
func (c *Core) Reject(reason Result) *Promise {
	return c.wrap(rejectedHandler{core: c, reason: reason})
}

// indexedResult captures a settled value together with its original
// position, the same index-then-counter technique
// SaatvikAwasthi-go-promise/pkg/static.go uses for All/AllSettled.
type indexedResult struct {
	index int
	value Result
	err   bool
	data  Result
}

// All resolves with a slice of every input's fulfilled value, in input
// order, once all have fulfilled; it rejects with the first rejection seen,
// per §4.5. An empty input fulfills immediately with an empty slice.
func (c *Core) All(xs []Result) *Promise {
	if len(xs) == 0 {
		return c.Resolve([]Result{})
	}

	d := newDeferredHandler(c)
	results := make([]Result, len(xs))
	var mu sync.Mutex
	remaining := len(xs)

	for i, x := range xs {
		idx := i
		c.Resolve(x).Then(
			func(v, _ Result) Result {
				mu.Lock()
				results[idx] = v
				remaining--
				done := remaining == 0
				mu.Unlock()
				if done {
					d.resolve(append([]Result(nil), results...))
				}
				return nil
			},
			func(r, _ Result) Result {
				d.reject(r)
				return nil
			},
			nil,
		)
	}

	return c.wrap(d)
}

// AllSettled resolves once every input has settled, fulfilled or rejected,
// with one StateSnapshot per input in input order. Grounded on
// SaatvikAwasthi-go-promise/pkg/static.go's AllSettled.
func (c *Core) AllSettled(xs []Result) *Promise {
	if len(xs) == 0 {
		return c.Resolve([]StateSnapshot{})
	}

	d := newDeferredHandler(c)
	results := make([]StateSnapshot, len(xs))
	var mu sync.Mutex
	remaining := len(xs)

	settle := func(idx int, snap StateSnapshot) {
		mu.Lock()
		results[idx] = snap
		remaining--
		done := remaining == 0
		mu.Unlock()
		if done {
			d.resolve(append([]StateSnapshot(nil), results...))
		}
	}

	for i, x := range xs {
		idx := i
		c.Resolve(x).Then(
			func(v, _ Result) Result {
				settle(idx, StateSnapshot{State: StateFulfilled, Value: v})
				return nil
			},
			func(r, _ Result) Result {
				settle(idx, StateSnapshot{State: StateRejected, Reason: r})
				return nil
			},
			nil,
		)
	}

	return c.wrap(d)
}

// Race settles with the first input to settle, in enqueue order under the
// scheduler's FIFO guarantee. An empty input returns the Core's singleton
// Empty() promise by identity, per §8.
func (c *Core) Race(xs []Result) *Promise {
	if len(xs) == 0 {
		return c.Empty()
	}

	d := newDeferredHandler(c)
	for _, x := range xs {
		c.Resolve(x).Then(
			func(v, _ Result) Result { d.resolve(v); return nil },
			func(r, _ Result) Result { d.reject(r); return nil },
			nil,
		)
	}
	return c.wrap(d)
}

// Any fulfills with the first input to fulfill, or rejects with an
// AggregateError of every rejection reason if all inputs reject. Grounded on
// SaatvikAwasthi-go-promise/pkg/static.go's Any.
func (c *Core) Any(xs []Result) *Promise {
	if len(xs) == 0 {
		return c.Reject(&AggregateError{Message: "when: Any called with no promises"})
	}

	d := newDeferredHandler(c)
	reasons := make([]Result, len(xs))
	var mu sync.Mutex
	remaining := len(xs)

	for i, x := range xs {
		idx := i
		c.Resolve(x).Then(
			func(v, _ Result) Result { d.resolve(v); return nil },
			func(r, _ Result) Result {
				mu.Lock()
				reasons[idx] = r
				remaining--
				done := remaining == 0
				mu.Unlock()
				if done {
					d.reject(&AggregateError{
						Message: "when: all promises were rejected",
						Reasons: reasons,
					})
				}
				return nil
			},
			nil,
		)
	}
	return c.wrap(d)
}

// PromiseWithResolvers exposes the resolve/reject/notify triple alongside
// the promise they drive, for bridging callback-style APIs without writing
// a resolver closure. Grounded on
// joeycumines-go-utilpkg/eventloop's PromiseWithResolvers.
func (c *Core) PromiseWithResolvers() (p *Promise, resolve func(Result), reject func(Result), notify func(Result)) {
	d := newDeferredHandler(c)
	return c.wrap(d), d.resolve, d.reject, d.notify
}
