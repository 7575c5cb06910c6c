package when

// Handler is the polymorphic internal state of a promise. Every promise owns
// exactly one Handler; a Handler may be shared by several promises (most
// notably when resolving one promise with another adopts its handler
// directly rather than nesting).
//
// Concrete kinds: fulfilledHandler, rejectedHandler, *deferredHandler,
// followingHandler, emptyHandler. A thenable is a *deferredHandler that has
// already had an AssimilateTask enqueued against it at construction time.
type Handler interface {
	// when schedules a reaction against this handler's eventual state. It
	// must never invoke onFulfilled, onRejected, or onProgress synchronously
	// — every path that dispatches the reaction goes through core.enqueue.
	when(reaction reaction)

	// traverse collapses chains of Following/resolved-Deferred handlers to
	// their ultimate settled or still-pending tail.
	traverse() Handler

	// inspect returns a synchronous snapshot of this handler's state.
	inspect() StateSnapshot
}

// reaction bundles the seven logical arguments a `when` call carries in the
// spec: the downstream Deferred itself (standing in for the resolve/notify
// continuations and the task context), the receiver to bind user callbacks
// to, and the three optional user callbacks. Bundling them keeps task payloads and handler.when signatures
// from growing an unwieldy parameter list.
type reaction struct {
	to          *deferredHandler
	receiver    Result
	onFulfilled func(Result, Result) Result
	onRejected  func(Result, Result) Result
	onProgress  func(Result, Result) Result
}

// fulfilledHandler is a terminal handler for a settled, successful value.
type fulfilledHandler struct {
	core  *Core
	value Result
}

func (h fulfilledHandler) when(r reaction) {
	h.core.enqueue(&fulfillTask{reaction: r, value: h.value})
}

func (h fulfilledHandler) traverse() Handler { return h }

func (h fulfilledHandler) inspect() StateSnapshot {
	return StateSnapshot{State: StateFulfilled, Value: h.value}
}

// rejectedHandler is a terminal handler for a settled, failed value.
type rejectedHandler struct {
	core   *Core
	reason Result
}

func (h rejectedHandler) when(r reaction) {
	h.core.enqueue(&rejectTask{reaction: r, reason: h.reason})
}

func (h rejectedHandler) traverse() Handler { return h }

func (h rejectedHandler) inspect() StateSnapshot {
	return StateSnapshot{State: StateRejected, Reason: h.reason}
}

// emptyHandler never settles. It backs the Empty() promise and the singleton
// result of Race(nil)/Race([]Result{}).
type emptyHandler struct{}

func (emptyHandler) when(reaction) {}

func (h emptyHandler) traverse() Handler { return h }

func (emptyHandler) inspect() StateSnapshot {
	return StateSnapshot{State: StatePending}
}

// followingHandler forwards to another handler, optionally rebinding the
// receiver passed through `when`. It is the sole vehicle for the With/WithThis
// extension (§9): a non-standard receiver-rebinding facility with no A+
// compliance guarantee of its own, layered on top of the ordinary forwarding
// a trusted-promise adoption already needs.
type followingHandler struct {
	target         Handler
	receiver       Result
	receiverIsUsed bool
}

func (h followingHandler) when(r reaction) {
	if h.receiverIsUsed {
		r.receiver = h.receiver
	}
	h.target.traverse().when(r)
}

func (h followingHandler) traverse() Handler { return h.target.traverse() }

func (h followingHandler) inspect() StateSnapshot { return h.target.traverse().inspect() }
