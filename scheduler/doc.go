// Package scheduler pre-fetches upcoming endpoint crossings for a
// moving playhead and delivers them, batched, as each one comes due.
//
// What:
//
//   - Scheduler[K, D] holds a position window derived from the current
//     motion.Vector and a configured lookahead, a due-queue of projected
//     crossings within that window, and one armed clock.Timer.
//   - SetVector recomputes the window, re-queries the Axis, rebuilds the
//     queue, and re-arms the timer — cancelling any pending one first.
//   - Callback subscribers receive the full batch of entries due at or
//     before the firing clock tick, in endpoint order.
//
// Why: the sequencer needs advance notice of interval boundary
// crossings so it can emit enter/exit transitions without polling the
// Axis on every tick.
//
// Complexity: SetVector costs one Axis.Lookup (O(N) in the worst case)
// plus O(M·T), where M is the number of cues touching the window and T
// is the (small, fixed) number of endpoints per cue. Firing drains the
// due batch in O(B) per tick.
//
// Errors: SetVector rejects an invalid motion.Vector with
// motion.ErrInvalidVector and leaves prior state untouched.
//
// Invariant: after any SetVector, every endpoint crossing whose
// due-time falls in [now, now+lookahead] under the new vector is
// present in the queue exactly once.
package scheduler
