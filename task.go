package when

// task is a scheduler work item. The scheduler invokes Run() outside the
// stack of whatever enqueued it, per the always-async discipline (I2).
type task interface {
	Run()
}

// fulfillTask applies a reaction's onFulfilled (or passes the value through
// unchanged) and resolves the downstream Deferred with the result.
type fulfillTask struct {
	reaction reaction
	value    Result
}

func (t *fulfillTask) Run() {
	if t.reaction.onFulfilled == nil {
		t.reaction.to.resolve(t.value)
		return
	}
	result, recovered := tryCatch(t.reaction.to.core, t.reaction.onFulfilled, t.value, t.reaction.receiver)
	if recovered != nil {
		t.reaction.to.join(recovered)
		return
	}
	t.reaction.to.resolve(result)
}

// rejectTask applies a reaction's onRejected to a rejection reason. If
// onRejected is absent, the rejection propagates unchanged by resolving the
// downstream Deferred with a fresh Rejected handler (note: resolve, not
// reject — §4.3 — so that a handler which recovers normally un-rejects the
// chain while an absent handler still forwards the original reason).
type rejectTask struct {
	reaction reaction
	reason   Result
}

func (t *rejectTask) Run() {
	if t.reaction.onRejected == nil {
		t.reaction.to.join(rejectedHandler{core: t.reaction.to.core, reason: t.reason})
		return
	}
	result, recovered := tryCatch(t.reaction.to.core, t.reaction.onRejected, t.reason, t.reaction.receiver)
	if recovered != nil {
		t.reaction.to.join(recovered)
		return
	}
	t.reaction.to.resolve(result)
}

// tryCatch invokes f with receiver bound and x as its sole argument. On a
// normal return it reports (value, nil). On a recovered panic it reports
// (nil, handler) where handler is a rejectedHandler wrapping the recovered
// value, ready to be joined onto a Deferred directly — bypassing classify,
// since a panic must always become a rejection, never a re-classified
// fulfillment value.
func tryCatch(core *Core, f func(Result, Result) Result, x Result, receiver Result) (value Result, recovered Handler) {
	defer func() {
		if r := recover(); r != nil {
			recovered = rejectedHandler{core: core, reason: panicToReason(r)}
		}
	}()
	return f(x, receiver), nil
}

// assimilateTask invokes a foreign Thenable's Then method, guarding against
// a synchronous panic by rejecting the Deferred with the recovered value.
// The three callbacks it passes route straight into the Deferred's own
// resolve/reject/notify, so a foreign implementation that resolves
// synchronously still goes through ordinary re-classification (§4.1's note
// that synchronous resolution still routes through the Deferred's normal
// resolve path).
type assimilateTask struct {
	deferred *deferredHandler
	thenable Thenable
}

func (t *assimilateTask) Run() {
	defer func() {
		if r := recover(); r != nil {
			t.deferred.reject(panicToReason(r))
		}
	}()
	t.thenable.Then(t.deferred.resolve, t.deferred.reject, t.deferred.notify)
}

// progressTask replays a notify value through every consumer that was
// present in the queue at the moment notify was called. A panic from a
// user progress callback is caught and forwarded as the notification
// payload itself, not as a rejection — an intentional asymmetry with
// fulfillment/rejection handling (§9, Open Questions). Either way, the
// (possibly transformed) value is forwarded to the consumer's own
// downstream Deferred, the same passthrough-when-absent rule §4.3 gives
// onFulfilled/onRejected, so a notification keeps propagating through a
// chain instead of dead-ending at the first link with no onProgress.
type progressTask struct {
	consumers []*forwardingTask
	value     Result
}

func (t *progressTask) Run() {
	for _, c := range t.consumers {
		value := t.value
		if c.reaction.onProgress != nil {
			func() {
				defer func() {
					if r := recover(); r != nil {
						value = panicToReason(r)
					}
				}()
				value = c.reaction.onProgress(value, c.reaction.receiver)
			}()
		}
		c.reaction.to.notify(value)
	}
}

// forwardingTask carries a pending reaction. While queued on a
// deferredHandler it has no target; once the Deferred joins, the drain loop
// stamps target and enqueues the task, so Run() replays the reaction against
// the now-settled (or still-adopting) handler.
type forwardingTask struct {
	reaction reaction
	target   Handler
}

func (t *forwardingTask) Run() {
	t.target.when(t.reaction)
}

// fatalErrorTask is the escape hatch of §6: it reports a stored error in a
// fresh task so it surfaces at the top level instead of being silently
// absorbed by the promise machinery. The core never uses this for ordinary
// rejections — only errors recovered by Core.enqueue from a task.Run() that
// panicked outright (see core.go), which a Reporter must not swallow.
type fatalErrorTask struct {
	core *Core
	err  error
}

func (t *fatalErrorTask) Run() {
	t.core.reportFatal(t.err)
}
