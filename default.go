package when

import "sync"

var (
	defaultCoreOnce sync.Once
	defaultCore     *Core
)

// Default returns the package-level Core, created lazily on first use with
// its own private scheduler. Package-level NewPromiseDefault/Resolve/Reject/
// All/AllSettled/Race/Any/Empty operate against it, mirroring how most of the retrieved pack's
// single-module libraries expose a ready-to-use top-level API alongside an
// explicit constructor for callers who want isolation (multiple independent
// schedulers, a custom Reporter, and so on).
func Default() *Core {
	defaultCoreOnce.Do(func() {
		defaultCore = New()
	})
	return defaultCore
}

// NewPromiseDefault constructs a promise against the default Core.
func NewPromiseDefault(resolver Resolver) *Promise {
	return NewPromise(Default(), resolver)
}

// Resolve wraps x as a trusted promise of the default Core.
func Resolve(x Result) *Promise { return Default().Resolve(x) }

// Reject returns a promise of the default Core already rejected with reason.
func Reject(reason Result) *Promise { return Default().Reject(reason) }

// Empty returns the default Core's singleton never-settling promise.
func Empty() *Promise { return Default().Empty() }

// All resolves against the default Core; see Core.All.
func All(xs []Result) *Promise { return Default().All(xs) }

// AllSettled resolves against the default Core; see Core.AllSettled.
func AllSettled(xs []Result) *Promise { return Default().AllSettled(xs) }

// Race resolves against the default Core; see Core.Race.
func Race(xs []Result) *Promise { return Default().Race(xs) }

// Any resolves against the default Core; see Core.Any.
func Any(xs []Result) *Promise { return Default().Any(xs) }
