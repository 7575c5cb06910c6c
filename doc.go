// Package when implements the core of an asynchronous-value (promise)
// library: a state machine for values that are eventually fulfilled or
// rejected, the algorithm for assimilating arbitrary thenables into trusted
// promises, and the always-async scheduling discipline that keeps reactions
// from ever firing inside the call that attached them.
//
// The package follows the shape of Promises/A+ with two deliberate,
// documented extensions: a notify side-channel for progress updates, and
// optional per-chain receiver rebinding via [Promise.With]. Both are
// disabled by simply never using them.
//
// A [Core] owns the microtask [Scheduler] that every reaction is dispatched
// through; construct one with [New] and a [Scheduler] (see [NewScheduler]
// for the built-in FIFO implementation), or use the package-level functions
// ([NewPromiseDefault], [Resolve], [Reject], [All], [Race], [Empty]) which operate
// against a lazily-created default [Core].
package when
