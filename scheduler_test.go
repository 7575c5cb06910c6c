package when

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerQueueDrainsInAttachmentOrder(t *testing.T) {
	core, sched := newTestCore()

	pending, resolve, _, _ := core.PromiseWithResolvers()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		pending.Then(func(Result, Result) Result {
			order = append(order, i)
			return nil
		}, nil, nil)
	}

	resolve("go")
	sched.Idle()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestNotifyDeliversOnlyToConsumersPresentAtCallTime(t *testing.T) {
	core, sched := newTestCore()

	pending, resolve, _, notify := core.PromiseWithResolvers()

	var early, late []Result
	pending.Then(nil, nil, func(v, _ Result) Result {
		early = append(early, v)
		return v
	})

	notify("first")
	sched.Idle()

	pending.Then(nil, nil, func(v, _ Result) Result {
		late = append(late, v)
		return v
	})

	notify("second")
	sched.Idle()
	resolve("done")
	sched.Idle()

	assert.Equal(t, []Result{"first", "second"}, early)
	assert.Equal(t, []Result{"second"}, late)
}

func TestNotifyPropagatesThroughAChainWithNoIntermediateHandler(t *testing.T) {
	core, sched := newTestCore()

	pending, _, _, notify := core.PromiseWithResolvers()

	var got Result
	pending.
		Then(func(v, _ Result) Result { return v }, nil, nil). // no onProgress: passthrough
		Then(nil, nil, func(v, _ Result) Result {
			got = v
			return v
		})

	notify("halfway")
	sched.Idle()

	assert.Equal(t, "halfway", got)
}

func TestNotifyTransformedByOnProgressPropagatesToNextLink(t *testing.T) {
	core, sched := newTestCore()

	pending, _, _, notify := core.PromiseWithResolvers()

	var got Result
	pending.
		Then(nil, nil, func(v, _ Result) Result { return v.(int) * 2 }).
		Then(nil, nil, func(v, _ Result) Result {
			got = v
			return v
		})

	notify(21)
	sched.Idle()

	assert.Equal(t, 42, got)
}

func TestSchedulerIsFIFOAcrossUnrelatedPromises(t *testing.T) {
	sched := NewScheduler().(*queueScheduler)
	core := New(WithScheduler(sched))

	var order []string
	a := core.Resolve("a")
	b := core.Resolve("b")

	a.Then(func(Result, Result) Result { order = append(order, "a"); return nil }, nil, nil)
	b.Then(func(Result, Result) Result { order = append(order, "b"); return nil }, nil, nil)

	sched.Idle()
	require.Len(t, order, 2)
	assert.Equal(t, []string{"a", "b"}, order)
}
