package when

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllEmptyFulfillsWithEmptySlice(t *testing.T) {
	core, sched := newTestCore()
	p := core.All(nil)
	sched.Idle()
	snap := p.Inspect()
	require.Equal(t, StateFulfilled, snap.State)
	assert.Equal(t, []Result{}, snap.Value)
}

func TestAllPreservesIndexOrderRegardlessOfSettlementOrder(t *testing.T) {
	core, sched := newTestCore()

	slow, resolveSlow, _, _ := core.PromiseWithResolvers()
	xs := []Result{1, core.Resolve(2), slow}

	p := core.All(xs)
	sched.Idle()
	assert.Equal(t, StatePending, p.Inspect().State)

	resolveSlow(3)
	sched.Idle()

	snap := p.Inspect()
	require.Equal(t, StateFulfilled, snap.State)
	assert.Equal(t, []Result{1, 2, 3}, snap.Value)
}

func TestAllRejectsOnFirstRejection(t *testing.T) {
	core, sched := newTestCore()
	boom := errors.New("boom")

	p := core.All([]Result{1, core.Reject(boom), core.Resolve(2)})
	sched.Idle()
	snap := p.Inspect()
	require.Equal(t, StateRejected, snap.State)
	assert.Equal(t, boom, snap.Reason)
}

func TestRaceEmptyIsTheSameSingletonAsEmpty(t *testing.T) {
	core, _ := newTestCore()
	assert.Same(t, core.Empty(), core.Race(nil))
	assert.Same(t, core.Empty(), core.Race(nil))
}

func TestRaceSettlesWithFirstInEnqueueOrder(t *testing.T) {
	core, sched := newTestCore()

	pendingForever, _, _, _ := core.PromiseWithResolvers()
	p := core.Race([]Result{pendingForever, core.Resolve("a"), core.Resolve("b")})

	sched.Idle()
	snap := p.Inspect()
	require.Equal(t, StateFulfilled, snap.State)
	assert.Equal(t, "a", snap.Value)
}

func TestAllSettledReportsEverySettlement(t *testing.T) {
	core, sched := newTestCore()
	boom := errors.New("boom")

	p := core.AllSettled([]Result{core.Resolve(1), core.Reject(boom)})
	sched.Idle()

	snap := p.Inspect()
	require.Equal(t, StateFulfilled, snap.State)
	results := snap.Value.([]StateSnapshot)
	require.Len(t, results, 2)
	assert.Equal(t, StateFulfilled, results[0].State)
	assert.Equal(t, 1, results[0].Value)
	assert.Equal(t, StateRejected, results[1].State)
	assert.Equal(t, boom, results[1].Reason)
}

func TestAnyFulfillsWithFirstSuccessAndAggregatesAllFailures(t *testing.T) {
	core, sched := newTestCore()
	e1, e2 := errors.New("e1"), errors.New("e2")

	ok := core.Any([]Result{core.Reject(e1), core.Resolve("yes")})
	sched.Idle()
	assert.Equal(t, "yes", ok.Inspect().Value)

	allFail := core.Any([]Result{core.Reject(e1), core.Reject(e2)})
	sched.Idle()
	snap := allFail.Inspect()
	require.Equal(t, StateRejected, snap.State)
	agg, ok2 := snap.Reason.(*AggregateError)
	require.True(t, ok2)
	assert.ElementsMatch(t, []Result{e1, e2}, agg.Reasons)
}
