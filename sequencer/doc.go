// Package sequencer composes an Axis, a TimingSource, and an internal
// Scheduler into a single observable stream of cue enter/change/exit
// transitions.
//
// What:
//
//   - Sequencer[K, D] tracks an active set: every cue whose interval
//     currently covers the timing source's position.
//   - Three reconciliation paths keep the active set in sync: Axis
//     mutations, timing-source vector changes, and scheduler due
//     batches — each documented in spec.md §4.6 and mirrored here as
//     onAxisEvent, onTimingChange, and onSchedulerDue.
//   - Map-like accessors (Has, Get, Keys, Values, Entries, Len) expose
//     the active set for read-only inspection.
//   - Ready() returns a channel that closes exactly once, the moment
//     the timing source itself becomes ready.
//
// Why: callers want one subscription (Sequencer's change callback)
// instead of stitching Axis, motion, and Scheduler events together
// themselves.
//
// Errors: ErrNotReady — returned by Vector when called before the
// timing source has signalled readiness.
//
// Invariant: after any reconciliation, for every key K in the active
// set, cues[K].Interval covers the position at evaluate(vector, now),
// modulo the scheduler's timer resolution for scheduler-driven
// transitions.
package sequencer
