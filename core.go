package when

import "sync"

// Core owns the scheduler every promise constructed through it dispatches
// reactions against, plus the reporter and decorator from its Option set.
// It is the Go counterpart of the "make function with an environment
// configuration" factory contract in §6.
type Core struct {
	scheduler Scheduler
	reporter  Reporter
	decorate  func(*Promise) *Promise

	emptyOnce sync.Once
	empty     *Promise
}

// New constructs a Core. With no options it gets a fresh private
// NewScheduler() and a NopReporter — fine for tests, but production code
// typically supplies WithScheduler and WithReporter explicitly.
func New(opts ...Option) *Core {
	c := resolveOptions(opts)
	return &Core{
		scheduler: c.scheduler,
		reporter:  c.reporter,
		decorate:  c.decorate,
	}
}

// enqueue hands t off to the scheduler, wrapped so that a task.Run() which
// escapes with a panic is recovered and routed through the fatal path
// instead of silently killing the worker goroutine driving the scheduler
// (which would wedge every promise still pending against this Core). Every
// panic a well-behaved task can produce on behalf of user code —
// onFulfilled/onRejected/onProgress, a foreign thenable's Then — is already
// caught closer to the source (tryCatch, assimilateTask, progressTask); what
// reaches here is a genuinely unexpected failure inside the machinery
// itself. A panic out of a fatalErrorTask (a host-supplied Reporter that
// panics while handling a fatal report) is recovered and dropped rather than
// routed to the fatal path again.
func (c *Core) enqueue(t task) {
	c.scheduler.Enqueue(func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if _, isFatal := t.(*fatalErrorTask); isFatal {
				// The fatal path itself panicked (a broken Reporter). Stop
				// here rather than requeue another fatalErrorTask against
				// the same Reporter, which would loop forever.
				return
			}
			c.fatal(panicToReason(r).(error))
		}()
		t.Run()
	})
}

// reportFatal routes through the Core's Reporter; invoked only by
// fatalErrorTask, never from ordinary rejection handling.
func (c *Core) reportFatal(err error) {
	c.reporter.ReportFatal(err)
}

// fatal enqueues a FatalErrorTask, the escape hatch of §6. The library
// itself never calls this for ordinary rejections; it is reached only via
// enqueue's own panic recovery, above.
func (c *Core) fatal(err error) {
	c.enqueue(&fatalErrorTask{core: c, err: err})
}

// wrap builds an internal-kind Promise around an already-known handler and
// applies the Core's decorator, if any, per §6's "decorate: optional ...
// invoked on the constructed Promise type; its return value replaces it."
func (c *Core) wrap(h Handler) *Promise {
	p := &Promise{core: c, handler: h}
	if c.decorate != nil {
		return c.decorate(p)
	}
	return p
}

// idleWaiter is implemented by schedulers that can report "nothing left to
// run" (the built-in queueScheduler does). Idle is a no-op against a
// Scheduler that doesn't support it.
type idleWaiter interface {
	Idle()
}

// Idle blocks until every task enqueued against this Core's scheduler so far
// has run, if the scheduler supports that notion. Useful for tests and
// short-lived programs that need a deterministic join point before exiting.
func (c *Core) Idle() {
	if iw, ok := c.scheduler.(idleWaiter); ok {
		iw.Idle()
	}
}

// Empty returns the Core's singleton never-settling promise (§4.5, §9: "the
// source caches emptyPromise in the closure"). Constructed lazily and once,
// so every call against the same Core returns the identical instance —
// required for Race([])'s documented identity guarantee (§8).
func (c *Core) Empty() *Promise {
	c.emptyOnce.Do(func() {
		c.empty = c.wrap(emptyHandler{})
	})
	return c.empty
}
