// Package axis implements the interval index: a map of key to cue
// backed by a sorted endpoint index over every cue's interval
// boundaries.
//
// What:
//
//   - Axis[K, D] stores Cue[K, D] values under unique keys.
//   - Update applies a batch of insertions/removals/replacements
//     atomically and reports a per-key Delta for each affected key.
//   - Lookup answers "which cues overlap this interval" (or, for a
//     zero-width query, "which cues cover this point").
//   - Callback subscribers receive every batch's EventMap synchronously.
//
// Why:
//
//   - scheduler re-queries Axis.Lookup on every SetVector to find which
//     cues are reachable within its lookahead window.
//   - sequencer subscribes to Axis's callback to keep its active set in
//     lockstep with cue insertions, removals, and interval changes.
//
// Complexity:
//
//   - Update: O(B·(log N + N)) for small batches, O((N+B)·log(N+B)) for
//     large ones, per the strategy documented on sortedIndex.update.
//   - Lookup: O(N) in the worst case: finding the cues that cover q's
//     boundaries scans every stored endpoint at or below each boundary.
//
// Errors:
//
//   - ErrInvalidInterval (re-exported from package interval): any cue in
//     an Update batch with Low > High, or an illegal empty interval,
//     aborts the entire batch — no partial state change.
//
// Invariant: after any Update, for every key present in the Axis, both
// of that cue's interval endpoints are present exactly once in the
// endpoint index; for every absent key, neither endpoint is present.
package axis
