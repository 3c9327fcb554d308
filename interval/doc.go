// Package interval implements the endpoint algebra of cueseq: ordering
// half-open interval boundaries and classifying how two intervals relate
// to one another.
//
// What:
//
//   - Endpoint totally orders interval boundaries, including the
//     simultaneous low/high boundary of a singular (point) interval.
//   - Interval validates and tests point containment.
//   - Relation classifies how two intervals relate: OutsideLeft,
//     OverlapLeft, Covered, Equal, Covers, OverlapRight, OutsideRight.
//
// Why:
//
//   - axis builds its sorted endpoint index on Endpoint's total order.
//   - scheduler uses the same ordering to sequence crossings that fall
//     due at the same instant; sequencer uses it to order the
//     transitions of one batch.
//   - axis needs Relation to answer "does this window intersect that
//     cue's interval" cheaply, without re-deriving the comparison logic
//     at each call site.
//
// Errors:
//
//   - ErrInvalidInterval: Low > High, or an empty interval (Low == High
//     with at least one exclusive bound).
package interval
