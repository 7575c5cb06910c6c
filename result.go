package when

// Result is the value carried by a settled promise: a fulfillment value or a
// rejection reason. It can be any type, matching the dynamic typing of the
// value being ported from.
type Result = any

// PromiseState is the externally observable lifecycle state of a promise,
// as returned by [Promise.Inspect].
type PromiseState int

const (
	// StatePending means the promise has not yet settled.
	StatePending PromiseState = iota
	// StateFulfilled means the promise settled successfully with a value.
	StateFulfilled
	// StateRejected means the promise settled unsuccessfully with a reason.
	StateRejected
)

// String returns a human-readable name for the state.
func (s PromiseState) String() string {
	switch s {
	case StateFulfilled:
		return "fulfilled"
	case StateRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// StateSnapshot is the synchronous view of a promise's state returned by
// [Promise.Inspect]. Value is meaningful only when State is StateFulfilled,
// Reason only when it is StateRejected; a pending snapshot carries neither.
type StateSnapshot struct {
	State  PromiseState
	Value  Result
	Reason Result
}
