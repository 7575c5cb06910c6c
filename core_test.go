package when

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingReporter captures fatal reports instead of logging them, so
// tests can assert on what reached the Reporter boundary.
type recordingReporter struct {
	fatals []error
}

func (r *recordingReporter) ReportFatal(err error) {
	r.fatals = append(r.fatals, err)
}

func (r *recordingReporter) ReportUnhandledRejection(Result) {}

// panickingTask is a task that always panics, standing in for a genuinely
// unexpected failure inside task.Run() — not a user-callback panic, which
// is already caught closer to the source by tryCatch/assimilateTask/
// progressTask.
type panickingTask struct{}

func (panickingTask) Run() { panic("boom") }

func TestEnqueuePanicIsRecoveredAndRoutedToFatalReporter(t *testing.T) {
	reporter := &recordingReporter{}
	sched := NewScheduler().(*queueScheduler)
	core := New(WithScheduler(sched), WithReporter(reporter))

	core.enqueue(panickingTask{})
	sched.Idle()

	require.Len(t, reporter.fatals, 1)
	perr, ok := reporter.fatals[0].(*PanicError)
	require.True(t, ok)
	assert.Equal(t, "boom", perr.Value)
}

// panickingReporter panics out of ReportFatal itself, simulating a broken
// host-supplied Reporter. enqueue's recovery must not requeue a second
// fatalErrorTask against it forever.
type panickingReporter struct {
	calls int
}

func (r *panickingReporter) ReportFatal(error) {
	r.calls++
	panic("reporter is broken")
}

func (r *panickingReporter) ReportUnhandledRejection(Result) {}

func TestFatalErrorTaskPanicDoesNotLoopForever(t *testing.T) {
	reporter := &panickingReporter{}
	sched := NewScheduler().(*queueScheduler)
	core := New(WithScheduler(sched), WithReporter(reporter))

	core.enqueue(panickingTask{})
	sched.Idle()

	assert.Equal(t, 1, reporter.calls)
}
