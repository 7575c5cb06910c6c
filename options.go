package when

// config holds the resolved factory configuration (§6: "the core is
// instantiated by calling a make function with an environment
// configuration").
type config struct {
	scheduler Scheduler
	reporter  Reporter
	decorate  func(*Promise) *Promise
}

// Option configures a Core at construction time, grounded on
// joeycumines-go-utilpkg/eventloop's LoopOption/resolveLoopOptions shape.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) { f(c) }

// WithScheduler supplies the scheduler every Core-owned promise dispatches
// reactions through. Required in spirit (§6); New falls back to
// NewScheduler() if omitted so callers that don't care about the task
// queue's identity aren't forced to construct one.
func WithScheduler(s Scheduler) Option {
	return optionFunc(func(c *config) { c.scheduler = s })
}

// WithReporter supplies the Reporter used for the fatal-error path and,
// optionally, unhandled-rejection diagnostics. Defaults to a no-op Reporter.
func WithReporter(r Reporter) Option {
	return optionFunc(func(c *config) { c.reporter = r })
}

// WithDecorator registers a post-construction wrapper applied to every
// Promise a Core hands back from NewPromise/Then/the combinators — the
// "decorate" factory option of §6. The decorator's return value replaces
// the promise the caller receives.
func WithDecorator(decorate func(*Promise) *Promise) Option {
	return optionFunc(func(c *config) { c.decorate = decorate })
}

func resolveOptions(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(c)
	}
	if c.scheduler == nil {
		c.scheduler = NewScheduler()
	}
	if c.reporter == nil {
		c.reporter = NopReporter{}
	}
	return c
}
