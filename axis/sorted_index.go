package axis

import (
	"sort"

	"github.com/katalvlaran/cueseq/interval"
)

// bulkRebuildThreshold is the batch-size cutoff below which update
// splices elements in one at a time, and above which it rebuilds the
// whole slice via flag-filter, concat, sort, and dedup. Per spec, the
// splice strategy costs O(B·(log N + N)); the rebuild strategy costs
// O((N+B)·log(N+B)) — cheaper once B stops being small relative to N.
const bulkRebuildThreshold = 100

// sortedIndex holds a deduplicated, ascending sequence of endpoint
// values in interval.Cmp order. It knows nothing about cues or keys —
// that bookkeeping belongs to Axis, which owns reference counts per
// endpoint so several cues can share an identical boundary value.
type sortedIndex struct {
	values []interval.Endpoint
}

// update applies (prev ∪ toInsert) \ toRemove. Duplicate insertions and
// removals of absent values are silently ignored — the contract is
// idempotent.
func (s *sortedIndex) update(toRemove, toInsert []interval.Endpoint) {
	if len(toRemove) == 0 && len(toInsert) == 0 {
		return
	}
	if len(toRemove)+len(toInsert) <= bulkRebuildThreshold {
		s.updateSmall(toRemove, toInsert)
		return
	}
	s.updateBulk(toRemove, toInsert)
}

func (s *sortedIndex) updateSmall(toRemove, toInsert []interval.Endpoint) {
	for _, e := range toRemove {
		if i, found := s.search(e); found {
			s.values = append(s.values[:i], s.values[i+1:]...)
		}
	}
	for _, e := range toInsert {
		i, found := s.search(e)
		if found {
			continue
		}
		i = ^i
		s.values = append(s.values, interval.Endpoint{})
		copy(s.values[i+1:], s.values[i:])
		s.values[i] = e
	}
}

func (s *sortedIndex) updateBulk(toRemove, toInsert []interval.Endpoint) {
	removeSet := make(map[interval.Endpoint]struct{}, len(toRemove))
	for _, e := range toRemove {
		removeSet[e] = struct{}{}
	}

	merged := make([]interval.Endpoint, 0, len(s.values)+len(toInsert))
	for _, e := range s.values {
		if _, dead := removeSet[e]; !dead {
			merged = append(merged, e)
		}
	}
	merged = append(merged, toInsert...)

	sort.Slice(merged, func(i, j int) bool {
		return interval.Cmp(merged[i], merged[j]) < 0
	})

	deduped := merged[:0]
	for i, e := range merged {
		if i == 0 || interval.Cmp(e, deduped[len(deduped)-1]) != 0 {
			deduped = append(deduped, e)
		}
	}
	s.values = deduped
}

// search returns (i, true) when x is present at index i, or (^i, false)
// when absent, where i is the index x would occupy if inserted. The
// absent form is always negative (^0 is -1), so an index of 0 always
// means "found at 0"; callers that need the insertion point take ^i
// after checking found.
func (s *sortedIndex) search(x interval.Endpoint) (int, bool) {
	n := len(s.values)
	i := sort.Search(n, func(i int) bool {
		return interval.Cmp(s.values[i], x) >= 0
	})
	if i < n && interval.Cmp(s.values[i], x) == 0 {
		return i, true
	}
	return ^i, false
}

// lt returns the index of the greatest value strictly less than x, or
// -1 if none exists.
func (s *sortedIndex) lt(x interval.Endpoint) int {
	i, _ := s.search(x)
	if i < 0 {
		i = ^i
	}
	if i == 0 {
		return -1
	}
	return i - 1
}

// le returns the index of the greatest value less than or equal to x,
// or -1 if none exists.
func (s *sortedIndex) le(x interval.Endpoint) int {
	if i, found := s.search(x); found {
		return i
	}
	return s.lt(x)
}

// ge returns the index of the least value greater than or equal to x,
// or -1 if none exists.
func (s *sortedIndex) ge(x interval.Endpoint) int {
	i, _ := s.search(x)
	if i < 0 {
		i = ^i
	}
	if i >= len(s.values) {
		return -1
	}
	return i
}

// gt returns the index of the least value strictly greater than x, or
// -1 if none exists.
func (s *sortedIndex) gt(x interval.Endpoint) int {
	i, found := s.search(x)
	if found {
		i++
	} else {
		i = ^i
	}
	if i >= len(s.values) {
		return -1
	}
	return i
}

// min returns the smallest stored value, or false if the index is empty.
func (s *sortedIndex) min() (interval.Endpoint, bool) {
	if len(s.values) == 0 {
		return interval.Endpoint{}, false
	}
	return s.values[0], true
}

// max returns the largest stored value, or false if the index is empty.
func (s *sortedIndex) max() (interval.Endpoint, bool) {
	if len(s.values) == 0 {
		return interval.Endpoint{}, false
	}
	return s.values[len(s.values)-1], true
}

// clear empties the index.
func (s *sortedIndex) clear() {
	s.values = nil
}

// items returns every stored endpoint in ascending order. The returned
// slice is owned by the caller.
func (s *sortedIndex) items() []interval.Endpoint {
	out := make([]interval.Endpoint, len(s.values))
	copy(out, s.values)
	return out
}

// lookup returns every stored endpoint whose Value lies within iv,
// honoring iv's inclusivity.
func (s *sortedIndex) lookup(iv interval.Interval) []interval.Endpoint {
	lo := sort.Search(len(s.values), func(i int) bool {
		return s.values[i].Value >= iv.Low
	})
	var out []interval.Endpoint
	for i := lo; i < len(s.values); i++ {
		e := s.values[i]
		if e.Value > iv.High {
			break
		}
		if iv.Covers(e.Value) {
			out = append(out, e)
		}
	}
	return out
}
