package when

// Thenable is the Go-idiomatic stand-in for "any value with a callable .then
// property": since Go has no dynamic property lookup, assimilation targets
// an explicit interface instead of reading a field. This collapses the
// source model's two distinct edge cases ("exception while reading .then"
// and "exception during .then invocation") into a single one — the call to
// Then itself is the only place a foreign implementation can misbehave, and
// recover() in assimilateTask.Run catches both the source's cases in one
// guard. See DESIGN.md for the tradeoff this simplification makes.
//
// Then must invoke at most one of resolve/reject itself, any number of
// times (later calls are absorbed by Deferred idempotence, I1), plus any
// number of notify calls before that.
type Thenable interface {
	Then(resolve func(Result), reject func(Result), notify func(Result))
}

// classify implements the resolution algorithm of §4.1: it turns an
// arbitrary value into the Handler that represents its eventual promise
// state. self is the Deferred performing the resolution, used to detect
// self-adoption cycles (I4): x is rejected as a cycle when its handler
// chain, once traversed, ends at self.
func classify(core *Core, x Result, self *deferredHandler) Handler {
	if p, ok := x.(*Promise); ok {
		if p.core == core && p.handler.traverse() == Handler(self) {
			return rejectedHandler{core: core, reason: &TypeError{
				Message: "promise resolved with itself",
			}}
		}
		return p.handler
	}
	if t, ok := x.(Thenable); ok {
		return newThenableHandler(core, t)
	}
	return fulfilledHandler{core: core, value: x}
}

// newThenableHandler builds a Deferred pre-loaded with an AssimilateTask, per
// §4.2: "A Thenable handler is structurally a Deferred that has already
// enqueued an AssimilateTask at construction."
func newThenableHandler(core *Core, t Thenable) *deferredHandler {
	d := newDeferredHandler(core)
	core.enqueue(&assimilateTask{deferred: d, thenable: t})
	return d
}
