package when

import "github.com/rs/zerolog"

// Reporter is the observation boundary the core writes to: the fatal-error
// path of §6 and, optionally, a host-registered unhandled-rejection hook.
// The resolution algorithm and handler dispatch never call a Reporter
// themselves on the settlement hot path — only these two explicit surfaces
// do, so ordinary chaining stays free of I/O.
type Reporter interface {
	// ReportFatal is invoked by FatalErrorTask.Run. The core has already
	// decided this error cannot be represented as an ordinary rejection.
	ReportFatal(err error)

	// ReportUnhandledRejection is invoked by Promise.Done (see promise.go)
	// when the promise settles rejected and Done was given no onRejected.
	// The core's own algorithm never calls this automatically (the spec notes
	// "unhandled rejections are not reported by the core"); Done is the
	// opt-in path for a host.
	ReportUnhandledRejection(reason Result)
}

// ZerologReporter reports through a zerolog.Logger, the structured logger
// used across the retrieved pack's heavier services (e.g.
// casualjim-bubo). Fatal errors log at the Error level rather than calling
// zerolog's own Fatal/Panic (which would os.Exit/panic the process) —
// surfacing the error is the library's job, deciding whether it's fatal to
// the process is the host's.
type ZerologReporter struct {
	Logger zerolog.Logger
}

func (r ZerologReporter) ReportFatal(err error) {
	r.Logger.Error().Err(err).Msg("when: fatal error escaped promise chain")
}

func (r ZerologReporter) ReportUnhandledRejection(reason Result) {
	r.Logger.Warn().Interface("reason", reason).Msg("when: unhandled promise rejection")
}

// NopReporter discards everything; it's the default so constructing a Core
// without WithReporter doesn't require wiring a logger.
type NopReporter struct{}

func (NopReporter) ReportFatal(error)               {}
func (NopReporter) ReportUnhandledRejection(Result) {}
