package when

import "sync"

// deferredHandler is the only handler kind that implements resolve/reject/
// notify meaningfully. It starts pending with an empty consumer queue and
// makes exactly one transition: once `join` runs, it is permanently locked
// onto whatever handler its resolution classified, even if that handler is
// itself still pending (adoption, not settlement, per I3).
//
// A thenable handler (§4.2) is simply a *deferredHandler that has had an
// AssimilateTask enqueued against it at construction, before anything else
// can call resolve/reject on it.
type deferredHandler struct {
	core *Core

	mu       sync.Mutex
	joined   bool
	followed Handler           // set once joined; may itself still be pending
	queue    []*forwardingTask // consumer queue; released (nilled) after drain
}

func newDeferredHandler(core *Core) *deferredHandler {
	return &deferredHandler{core: core}
}

func (h *deferredHandler) when(r reaction) {
	h.mu.Lock()
	if h.joined {
		followed := h.followed
		h.mu.Unlock()
		followed.traverse().when(r)
		return
	}
	task := &forwardingTask{reaction: r}
	h.queue = append(h.queue, task)
	h.mu.Unlock()
}

// traverse collapses a still-pending deferredHandler to itself (it has
// nothing further to collapse to yet); once joined it delegates to the
// followed handler's own traverse, which recurses through any further
// adoption chain.
func (h *deferredHandler) traverse() Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.joined {
		return h.followed.traverse()
	}
	return h
}

func (h *deferredHandler) inspect() StateSnapshot {
	h.mu.Lock()
	joined, followed := h.joined, h.followed
	h.mu.Unlock()
	if !joined {
		return StateSnapshot{State: StatePending}
	}
	return followed.traverse().inspect()
}

// resolve classifies x (with this handler as the cycle-detection "self") and
// joins to the result. Idempotent: a second and later call is silently
// absorbed, per I1.
func (h *deferredHandler) resolve(x Result) {
	h.join(classify(h.core, x, h))
}

// reject joins directly to a terminal Rejected handler. Idempotent like
// resolve.
func (h *deferredHandler) reject(reason Result) {
	h.join(rejectedHandler{core: h.core, reason: reason})
}

// join performs the one-shot pending→committed transition and drains the
// consumer queue. Queued reactions are replayed as freshly enqueued
// forwardingTasks rather than invoked inline, preserving always-async
// dispatch (I2) even for reactions attached while this handler was pending.
func (h *deferredHandler) join(committed Handler) {
	h.mu.Lock()
	if h.joined {
		h.mu.Unlock()
		return
	}
	h.joined = true
	h.followed = committed
	queue := h.queue
	h.queue = nil
	h.mu.Unlock()

	target := committed.traverse()
	for _, task := range queue {
		task.target = target
		h.core.enqueue(task)
	}
}

// notify enqueues a ProgressTask snapshotting the consumer queue as it
// stands right now. Consumers attached after this call see only future
// notifications (or none, if this was the last one before settlement).
func (h *deferredHandler) notify(value Result) {
	h.mu.Lock()
	if h.joined {
		h.mu.Unlock()
		return
	}
	snapshot := make([]*forwardingTask, len(h.queue))
	copy(snapshot, h.queue)
	h.mu.Unlock()

	h.core.enqueue(&progressTask{consumers: snapshot, value: value})
}
