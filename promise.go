package when

// Promise is an opaque handle to a value that is eventually fulfilled or
// rejected. Two construction paths exist — NewPromise (runs a resolver) and
// Core.wrap (built internally around an already-known Handler) — but both
// expose the identical chaining surface, per §3.
type Promise struct {
	core    *Core
	handler Handler
}

// Resolver is invoked synchronously by NewPromise; any panic inside it
// becomes a rejection (§7).
type Resolver func(resolve func(Result), reject func(Result), notify func(Result))

// NewPromise constructs a user-facing promise backed by a fresh Deferred and
// runs resolver against it synchronously, catching any panic as a rejection.
func NewPromise(core *Core, resolver Resolver) *Promise {
	d := newDeferredHandler(core)
	func() {
		defer func() {
			if r := recover(); r != nil {
				d.reject(panicToReason(r))
			}
		}()
		resolver(d.resolve, d.reject, d.notify)
	}()
	return core.wrap(d)
}

// Then registers onFulfilled/onRejected/onProgress (any of which may be nil)
// against this promise's eventual settlement and returns a new promise for
// the result, per §4.3. The callbacks receive (value, receiver); receiver is
// nil unless Then is called directly on a promise returned by With/WithThis.
// The promise Then returns carries no receiver.
func (p *Promise) Then(onFulfilled, onRejected, onProgress func(Result, Result) Result) *Promise {
	to := newDeferredHandler(p.core)
	p.handler.when(reaction{
		to:          to,
		onFulfilled: onFulfilled,
		onRejected:  onRejected,
		onProgress:  onProgress,
	})
	return p.core.wrap(to)
}

// Catch is shorthand for Then(nil, onRejected, nil).
func (p *Promise) Catch(onRejected func(Result, Result) Result) *Promise {
	return p.Then(nil, onRejected, nil)
}

// Otherwise is an alias for Catch, matching the naming §6 lists alongside
// it ("catch(onRejected) / otherwise(onRejected)").
func (p *Promise) Otherwise(onRejected func(Result, Result) Result) *Promise {
	return p.Catch(onRejected)
}

// Finally runs fn regardless of settlement outcome and passes the original
// settlement through unchanged — a pure convenience over Then with no new
// invariant (see SPEC_FULL.md's Supplemented Features).
func (p *Promise) Finally(fn func()) *Promise {
	return p.Then(
		func(v, _ Result) Result { fn(); return v },
		func(r, _ Result) Result { fn(); return p.core.Reject(r) },
		nil,
	)
}

// With returns a chainable promise whose reactions (onFulfilled/onRejected/
// onProgress passed to Then on the returned promise) receive thisArg as their
// receiver argument. The binding covers only that one link: promises chained
// further from it (via Then, Catch, Finally) pass a nil receiver again. A
// non-standard extension (§9) with no A+ compliance guarantee.
func (p *Promise) With(thisArg Result) *Promise {
	return p.core.wrap(followingHandler{
		target:         p.handler,
		receiver:       thisArg,
		receiverIsUsed: true,
	})
}

// WithThis is an alias for With, matching §6's naming
// ("with(thisArg) / withThis(thisArg)").
func (p *Promise) WithThis(thisArg Result) *Promise {
	return p.With(thisArg)
}

// Inspect returns a synchronous snapshot of this promise's current state.
func (p *Promise) Inspect() StateSnapshot {
	return p.handler.inspect()
}

// Done subscribes reporter-visible diagnostics to this chain's outcome: if
// the chain ends up rejected and onRejected is nil, the rejection is
// reported as unhandled via the Core's Reporter instead of being silently
// absorbed. The core's own algorithm never does this automatically (§7:
// "unhandled rejections are not reported by the core") — Done is the opt-in
// surface for hosts that want it anyway, terminal in the sense that it
// returns nothing further to chain from.
func (p *Promise) Done(onFulfilled, onRejected func(Result, Result) Result) {
	core := p.core
	p.Then(
		onFulfilled,
		func(reason, receiver Result) Result {
			if onRejected != nil {
				return onRejected(reason, receiver)
			}
			core.reporter.ReportUnhandledRejection(reason)
			return nil
		},
		nil,
	)
}
